// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wa

import "testing"

func TestCheckType(t *testing.T) {
	for _, x := range []struct {
		actual, expected Type
		ok                bool
	}{
		{I32, I32, true},
		{I32, I64, false},
		{Any, I32, true},
		{I32, Any, true},
		{Nullref, Funcref, true},
		{Nullref, Externref, true},
		{Nullref, Exnref, true},
		{Nullref, Anyref, true},
		{Funcref, Anyref, true},
		{Externref, Anyref, true},
		{Exnref, Anyref, true},
		{Anyref, Funcref, false},
		{Funcref, Externref, false},
		{Funcref, Funcref, true},
	} {
		if got := CheckType(x.actual, x.expected); got != x.ok {
			t.Errorf("CheckType(%s, %s) = %v, want %v", x.actual, x.expected, got, x.ok)
		}
	}
}

func TestExpandBlockTypeInline(t *testing.T) {
	params, results, ok := ExpandBlockType(VoidBlockType, nil)
	if !ok || params != nil || results != nil {
		t.Fatalf("void block type: got (%v, %v, %v)", params, results, ok)
	}

	params, results, ok = ExpandBlockType(InlineBlockType(I32), nil)
	if !ok || params != nil || !results.Equal(TypeVector{I32}) {
		t.Fatalf("inline i32 block type: got (%v, %v, %v)", params, results, ok)
	}
}

func TestExpandBlockTypeIndex(t *testing.T) {
	types := []FuncType{
		{Params: TypeVector{I32, I32}, Results: TypeVector{I64}},
	}

	params, results, ok := ExpandBlockType(TypeIndexBlockType(0), types)
	if !ok || !params.Equal(TypeVector{I32, I32}) || !results.Equal(TypeVector{I64}) {
		t.Fatalf("type-indexed block type: got (%v, %v, %v)", params, results, ok)
	}

	_, _, ok = ExpandBlockType(TypeIndexBlockType(1), types)
	if ok {
		t.Fatal("expected out-of-range type index to fail")
	}
}
