// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wa

// BlockType is the encoded signature of a block/loop/if/try: either an
// inline result arity (void or one value type) or a signed type index
// into the module's type section, in which case Index holds the value
// and IsTypeIndex is set.
type BlockType struct {
	Inline      Type // valid when !IsTypeIndex
	Index       Index
	IsTypeIndex bool
}

// VoidBlockType is the block signature with no parameters and no results.
var VoidBlockType = BlockType{Inline: Void}

// InlineBlockType returns the block signature with no parameters and a
// single result t (or none, if t is Void).
func InlineBlockType(t Type) BlockType {
	return BlockType{Inline: t}
}

// TypeIndexBlockType returns the block signature that refers to the
// module type at idx for its full parameter and result lists.
func TypeIndexBlockType(idx Index) BlockType {
	return BlockType{Index: idx, IsTypeIndex: true}
}

func (b BlockType) String() string {
	if b.IsTypeIndex {
		return "type#" + b.Index.String()
	}
	return b.Inline.String()
}
