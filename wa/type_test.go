// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wa

import "testing"

func TestTypeVectorEqual(t *testing.T) {
	a := TypeVector{I32, I64}
	b := TypeVector{I32, I64}
	c := TypeVector{I64, I32}

	if !a.Equal(b) {
		t.Error("equal vectors reported unequal")
	}
	if a.Equal(c) {
		t.Error("differently-ordered vectors reported equal")
	}
	if a.Equal(TypeVector{I32}) {
		t.Error("differently-sized vectors reported equal")
	}
}

func TestTypeVectorClone(t *testing.T) {
	a := TypeVector{I32, I64}
	b := a.Clone()
	b[0] = F32

	if a[0] != I32 {
		t.Error("Clone aliased the original backing array")
	}
	if TypeVector(nil).Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}

func TestTypeIsReference(t *testing.T) {
	for _, ty := range []Type{Funcref, Externref, Exnref, Nullref, Anyref} {
		if !ty.IsReference() {
			t.Errorf("%s should be a reference type", ty)
		}
	}
	for _, ty := range []Type{I32, I64, F32, F64, V128, Any} {
		if ty.IsReference() {
			t.Errorf("%s should not be a reference type", ty)
		}
	}
}

func TestTypeIsNumeric(t *testing.T) {
	for _, ty := range []Type{I32, I64, F32, F64} {
		if !ty.IsNumeric() {
			t.Errorf("%s should be numeric", ty)
		}
	}
	if V128.IsNumeric() {
		t.Error("v128 should not be numeric")
	}
}
