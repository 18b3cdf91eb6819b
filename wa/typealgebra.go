// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wa

// refSupertypes holds the direct reference-type subtyping edges: key is a
// subtype, value is the set of its direct supertypes. CheckType walks
// one hop, which is all the lattice spec.md §4.1 defines: Nullref sits
// under every reference type, and Funcref/Externref/Exnref all sit
// under Anyref.
var refSupertypes = map[Type][]Type{
	Nullref:   {Funcref, Externref, Exnref, Anyref},
	Funcref:   {Anyref},
	Externref: {Anyref},
	Exnref:    {Anyref},
}

func isRefSubtype(actual, expected Type) bool {
	if actual == expected {
		return true
	}
	for _, super := range refSupertypes[actual] {
		if super == expected {
			return true
		}
	}
	return false
}

// CheckType reports whether a value of type actual may be used where
// expected is required: either of them is Any (the unreachable-code
// wildcard), actual equals expected, or both are reference types and
// actual is a subtype of expected.
func CheckType(actual, expected Type) bool {
	if expected == Any || actual == Any {
		return true
	}
	if actual == expected {
		return true
	}
	if actual.IsReference() && expected.IsReference() {
		return isRefSubtype(actual, expected)
	}
	return false
}

// ExpandBlockType resolves a block/loop/if/try signature against the
// module's type section, returning the parameter and result vectors the
// TypeChecker should pop/push. types is the module's type table;
// ExpandBlockType never mutates it.
func ExpandBlockType(bt BlockType, types []FuncType) (params, results TypeVector, ok bool) {
	if !bt.IsTypeIndex {
		if bt.Inline == Void {
			return nil, nil, true
		}
		return nil, TypeVector{bt.Inline}, true
	}
	if int(bt.Index) >= len(types) {
		return nil, nil, false
	}
	sig := types[bt.Index]
	return sig.Params, sig.Results, true
}
