// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wa

// Type is a WebAssembly value type, extended with the placeholder type
// the validator needs that never appears in an encoded module: Any (the
// unreachable-code wildcard). Block signatures that refer to the
// module's type section are represented by BlockType, not by a Type.
type Type uint8

const (
	Void = Type(iota)

	I32
	I64
	F32
	F64
	V128

	Funcref
	Externref
	Exnref
	Nullref
	Anyref

	// Any unifies with every expected type. The TypeChecker synthesizes
	// it when popping from a frame already marked unreachable; it must
	// never occur as a real operand produced by a concrete instruction.
	Any

	numConcreteTypes
)

func (t Type) String() string {
	switch t {
	case Void:
		return "void"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case V128:
		return "v128"
	case Funcref:
		return "funcref"
	case Externref:
		return "externref"
	case Exnref:
		return "exnref"
	case Nullref:
		return "nullref"
	case Anyref:
		return "anyref"
	case Any:
		return "any"
	default:
		return "<invalid type>"
	}
}

// IsReference reports whether t is one of the reference types, including
// Nullref. The Any placeholder is not a reference type.
func (t Type) IsReference() bool {
	switch t {
	case Funcref, Externref, Exnref, Nullref, Anyref:
		return true
	default:
		return false
	}
}

// IsNumeric reports whether t is one of the four scalar numeric types.
func (t Type) IsNumeric() bool {
	switch t {
	case I32, I64, F32, F64:
		return true
	default:
		return false
	}
}

var typeEncoding = map[Type]byte{
	I32:       0x7f,
	I64:       0x7e,
	F32:       0x7d,
	F64:       0x7c,
	V128:      0x7b,
	Funcref:   0x70,
	Externref: 0x6f,
	Exnref:    0x69,
	Void:      0x40,
}

// Encode as WebAssembly. Result is undefined if t has no encoding (the
// Any/Nullref/Anyref placeholders never appear in an encoded module).
func (t Type) Encode() byte {
	return typeEncoding[t]
}

// TypeVector is an ordered sequence of value types, used for function
// parameter and result lists and for control-frame label signatures.
type TypeVector []Type

func (v TypeVector) Equal(other TypeVector) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i] != other[i] {
			return false
		}
	}
	return true
}

func (v TypeVector) String() string {
	s := "["
	for i, t := range v {
		if i > 0 {
			s += ", "
		}
		s += t.String()
	}
	return s + "]"
}

// Clone returns an independent copy, so callers may hold on to a vector
// taken from a control frame without aliasing the frame's storage.
func (v TypeVector) Clone() TypeVector {
	if v == nil {
		return nil
	}
	c := make(TypeVector, len(v))
	copy(c, v)
	return c
}
