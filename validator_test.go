// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wasmvalidate

import (
	"testing"

	"github.com/tsavola/wasmvalidate/feature"
	"github.com/tsavola/wasmvalidate/wa"
	"github.com/tsavola/wasmvalidate/wa/opcode"
)

func TestValidatorAcceptsWellFormedModule(t *testing.T) {
	v := New(feature.MVP())

	sig := v.OnType(wa.TypeVector{wa.I32, wa.I32}, wa.TypeVector{wa.I32})
	funcIdx, _ := v.OnFunction(1, wa.Var{Index: sig})
	v.OnExport(2, ExportFunc, wa.Var{Index: funcIdx}, "add")

	v.BeginFunctionBody(3, funcIdx)
	v.LocalGet(4, 0)
	v.LocalGet(5, 1)
	v.Apply(6, opcode.I32Add)
	v.EndFunctionBody(7)
	v.EndModule(8)

	if !v.Valid() {
		t.Fatalf("expected a valid module, got diagnostics: %s", v.Format())
	}
	if len(v.Diagnostics()) != 0 {
		t.Fatalf("expected zero diagnostics, got %d", len(v.Diagnostics()))
	}
}

func TestValidatorRejectsDuplicateExport(t *testing.T) {
	v := New(feature.MVP())

	sig := v.OnType(nil, nil)
	funcIdx, _ := v.OnFunction(1, wa.Var{Index: sig})
	v.OnExport(2, ExportFunc, wa.Var{Index: funcIdx}, "f")
	v.OnExport(3, ExportFunc, wa.Var{Index: funcIdx}, "f")
	v.EndModule(4)

	if v.Valid() {
		t.Fatal("a module with a duplicate export should not be valid")
	}
	if len(v.Diagnostics()) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d: %s", len(v.Diagnostics()), v.Format())
	}
}
