// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validator

import (
	"strings"
	"testing"

	"golang.org/x/xerrors"

	"github.com/tsavola/wasmvalidate/feature"
	"github.com/tsavola/wasmvalidate/internal/errors"
	"github.com/tsavola/wasmvalidate/internal/errorsink"
	"github.com/tsavola/wasmvalidate/internal/typecheck"
	"github.com/tsavola/wasmvalidate/wa"
	"github.com/tsavola/wasmvalidate/wa/opcode"
)

func newModule(f feature.Set) (*ModuleContext, *errorsink.Sink) {
	sink := &errorsink.Sink{}
	return New(f, sink), sink
}

// Scenario 1: valid add.
func TestValidAddModule(t *testing.T) {
	m, sink := newModule(feature.MVP())

	sig := m.OnType(wa.TypeVector{wa.I32, wa.I32}, wa.TypeVector{wa.I32})
	funcIdx, ok := m.OnFunction(1, wa.Var{Index: sig})
	if !ok {
		t.Fatal("OnFunction should succeed")
	}

	m.BeginFunctionBody(2, funcIdx)
	m.LocalGet(3, 0)
	m.LocalGet(4, 1)
	m.Apply(5, opcode.I32Add)
	m.EndFunctionBody(6)
	m.EndModule(7)

	if !sink.OK() {
		t.Fatalf("expected zero errors, got: %s", sink.Format())
	}
}

// Scenario 2: type mismatch.
func TestTypeMismatchInAdd(t *testing.T) {
	m, sink := newModule(feature.MVP())

	sig := m.OnType(wa.TypeVector{wa.I32, wa.I32}, wa.TypeVector{wa.I32})
	funcIdx, _ := m.OnFunction(1, wa.Var{Index: sig})

	m.BeginFunctionBody(2, funcIdx)
	m.LocalGet(3, 0)
	m.Apply(4, opcode.F32Const)
	m.Apply(5, opcode.I32Add)
	m.EndFunctionBody(6)

	if sink.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d: %s", sink.Len(), sink.Format())
	}
	msg := sink.Entries()[0].Err.Error()
	if !strings.Contains(msg, "i32") || !strings.Contains(msg, "f32") {
		t.Errorf("diagnostic should mention i32 and f32, got %q", msg)
	}
	if !xerrors.Is(sink.Entries()[0].Err, errors.ErrTypeMismatch) {
		t.Error("diagnostic should categorize as a type mismatch")
	}
}

// Scenario 3: unreachable polymorphism.
func TestUnreachablePolymorphism(t *testing.T) {
	m, sink := newModule(feature.MVP())

	sig := m.OnType(nil, wa.TypeVector{wa.I32})
	funcIdx, _ := m.OnFunction(1, wa.Var{Index: sig})

	m.BeginFunctionBody(2, funcIdx)
	m.Unreachable(3)
	m.Apply(4, opcode.I32Add)
	m.EndFunctionBody(5)

	if !sink.OK() {
		t.Fatalf("expected zero errors, got: %s", sink.Format())
	}
}

// Scenario 4: duplicate export.
func TestDuplicateExport(t *testing.T) {
	m, sink := newModule(feature.MVP())

	sig := m.OnType(nil, nil)
	funcIdx, _ := m.OnFunction(1, wa.Var{Index: sig})

	if !m.OnExport(2, ExportFunc, wa.Var{Index: funcIdx}, "f") {
		t.Fatal("first export of \"f\" should succeed")
	}
	if m.OnExport(3, ExportFunc, wa.Var{Index: funcIdx}, "f") {
		t.Fatal("second export of \"f\" should fail")
	}

	if sink.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d: %s", sink.Len(), sink.Format())
	}
	want := `duplicate export "f"`
	if !strings.Contains(sink.Entries()[0].Err.Error(), want) {
		t.Errorf("diagnostic = %q, want substring %q", sink.Entries()[0].Err.Error(), want)
	}
}

// Scenario 5: shared memory without max.
func TestSharedMemoryWithoutMax(t *testing.T) {
	m, sink := newModule(feature.Set{Threads: true})

	_, ok := m.OnMemory(1, wa.Limits{Initial: 1, HasMax: false, IsShared: true})
	if ok {
		t.Fatal("a shared memory without a max size should fail")
	}

	want := "shared memories must have max sizes"
	found := false
	for _, e := range sink.Entries() {
		if strings.Contains(e.Err.Error(), want) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a diagnostic containing %q, got: %s", want, sink.Format())
	}
}

// Scenario 6: global initializer referencing a mutable global.
func TestGlobalInitReferencingMutableGlobal(t *testing.T) {
	m, sink := newModule(feature.Set{MutableGlobals: true})

	mutableImport, _ := m.OnGlobalImport(1, wa.I32, true)
	g := m.OnGlobal(2, wa.I32, false)

	if m.OnGlobalInitExprGlobalGet(3, g, wa.Var{Index: mutableImport}) {
		t.Fatal("initializer referencing a mutable global should fail")
	}

	want := "cannot reference a mutable global"
	found := false
	for _, e := range sink.Entries() {
		if strings.Contains(e.Err.Error(), want) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a diagnostic containing %q, got: %s", want, sink.Format())
	}
}

// Scenario 7: br_table arity mismatch.
func TestBrTableArityMismatch(t *testing.T) {
	m, sink := newModule(feature.MVP())

	sig := m.OnType(nil, nil)
	funcIdx, _ := m.OnFunction(1, wa.Var{Index: sig})

	m.BeginFunctionBody(2, funcIdx)
	m.Block(3, wa.InlineBlockType(wa.I32))       // depth 1 once the next block opens
	m.Block(4, wa.TypeIndexBlockType(m.OnType(nil, wa.TypeVector{wa.I32, wa.I32})))
	m.Apply(5, opcode.I32Const)
	m.Apply(6, opcode.I32Const)
	m.Apply(7, opcode.I32Const) // br_table index
	if m.BrTable(8, []wa.Index{1}, 0) {
		t.Fatal("br_table targets with mismatched arity should fail")
	}

	found := false
	for _, e := range sink.Entries() {
		if xerrors.Is(e.Err, errors.ErrTypeMismatch) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a type-mismatch diagnostic, got: %s", sink.Format())
	}
}

// Scenario 8: end_module sees an undeclared ref.func from a global
// initializer.
func TestEndModuleRejectsUndeclaredRefFunc(t *testing.T) {
	m, sink := newModule(feature.Set{RefTypes: true})

	sig := m.OnType(nil, nil)
	for i := 0; i < 6; i++ {
		m.OnFunction(wa.Pos(i), wa.Var{Index: sig})
	}

	g := m.OnGlobal(10, wa.Funcref, false)
	if !m.OnGlobalInitExprRefFunc(11, g, wa.Var{Index: 5}) {
		t.Fatal("ref.func naming a declared function index should succeed at declaration time")
	}

	if m.EndModule(12) {
		t.Fatal("end_module should fail: function 5 was never named by an elem segment")
	}

	want := "function is not declared"
	found := false
	for _, e := range sink.Entries() {
		if strings.Contains(e.Err.Error(), want) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a diagnostic containing %q, got: %s", want, sink.Format())
	}
}

func TestEndModuleAcceptsDeclaredRefFunc(t *testing.T) {
	m, sink := newModule(feature.Set{RefTypes: true})

	sig := m.OnType(nil, nil)
	m.OnFunction(1, wa.Var{Index: sig})

	g := m.OnGlobal(2, wa.Funcref, false)
	m.OnGlobalInitExprRefFunc(3, g, wa.Var{Index: 0})
	m.OnElemSegmentElemExprRefFunc(4, wa.Var{Index: 0})

	if !m.EndModule(5) {
		t.Fatalf("end_module should succeed once the function is declared, got: %s", sink.Format())
	}
}

func TestOnlyOneMemoryAllowed(t *testing.T) {
	m, _ := newModule(feature.MVP())
	if _, ok := m.OnMemory(1, wa.Limits{Initial: 1}); !ok {
		t.Fatal("first memory should succeed")
	}
	if _, ok := m.OnMemory(2, wa.Limits{Initial: 1}); ok {
		t.Fatal("a second memory should fail")
	}
}

func TestTableRequiresReferenceType(t *testing.T) {
	m, _ := newModule(feature.MVP())
	if _, ok := m.OnTable(1, wa.I32, wa.Limits{Initial: 0}); ok {
		t.Fatal("a table with a non-reference element type should fail")
	}
}

func TestCallIndirectRequiresFuncrefTable(t *testing.T) {
	m, _ := newModule(feature.Set{RefTypes: true})
	sig := m.OnType(nil, nil)
	tableIdx, _ := m.OnTable(1, wa.Externref, wa.Limits{Initial: 1})
	funcIdx, _ := m.OnFunction(2, wa.Var{Index: sig})

	m.BeginFunctionBody(3, funcIdx)
	m.Apply(4, opcode.I32Const)
	if m.CallIndirect(5, wa.Var{Index: tableIdx}, wa.Var{Index: sig}) {
		t.Fatal("call_indirect through an externref table should fail")
	}
}

func TestDataDropRequiresDeclaredMemory(t *testing.T) {
	m, _ := newModule(feature.Set{BulkMemory: true})
	// DataCount precedes Code in the lifecycle; a data.drop in a
	// function body resolves its segment index against the declared
	// count, not the not-yet-seen data section.
	m.OnDataCount(1, 1)
	if m.DataDrop(2, 0) {
		t.Fatal("data.drop with no declared memory should fail, preserving the original tool's quirk")
	}
}

func TestDataDropSegmentIndexResolvesAgainstDeclaredCount(t *testing.T) {
	m, _ := newModule(feature.Set{BulkMemory: true})
	m.OnMemory(1, wa.Limits{Initial: 1})
	m.OnDataCount(2, 1)
	if !m.DataDrop(3, 0) {
		t.Fatal("data.drop referencing a segment within the declared count should succeed even before the data section")
	}
	if m.DataDrop(4, 1) {
		t.Fatal("data.drop referencing a segment past the declared count should fail")
	}
}

func TestAlignmentMustNotExceedNatural(t *testing.T) {
	m, _ := newModule(feature.MVP())
	m.OnMemory(1, wa.Limits{Initial: 1})
	sig := m.OnType(nil, nil)
	funcIdx, _ := m.OnFunction(2, wa.Var{Index: sig})

	m.BeginFunctionBody(3, funcIdx)
	m.Apply(4, opcode.I32Const)
	if m.Load(5, opcode.I32Load, wa.Var{}, 8) {
		t.Fatal("alignment 8 exceeds i32.load's natural alignment of 4")
	}
}

func TestLocalIndexOutOfRange(t *testing.T) {
	m, _ := newModule(feature.MVP())
	sig := m.OnType(wa.TypeVector{wa.I32}, nil)
	funcIdx, _ := m.OnFunction(1, wa.Var{Index: sig})

	m.BeginFunctionBody(2, funcIdx)
	if m.LocalGet(3, 1) {
		t.Fatal("local index 1 is out of range for a single-parameter function")
	}
}

func TestEventRequiresNoResults(t *testing.T) {
	m, _ := newModule(feature.Set{Exceptions: true})
	sig := m.OnType(nil, wa.TypeVector{wa.I32})
	if _, ok := m.OnEvent(1, wa.Var{Index: sig}); ok {
		t.Fatal("an event signature with results should fail")
	}
}

func TestReturnCallRequiresCompatibleResults(t *testing.T) {
	m, _ := newModule(feature.Set{TailCall: true})
	calleeSig := m.OnType(nil, wa.TypeVector{wa.I64})
	callee, _ := m.OnFunction(1, wa.Var{Index: calleeSig})

	callerSig := m.OnType(nil, wa.TypeVector{wa.I32})
	caller, _ := m.OnFunction(2, wa.Var{Index: callerSig})

	m.BeginFunctionBody(3, caller)
	if m.ReturnCall(4, wa.Var{Index: callee}) {
		t.Fatal("return_call to a callee with incompatible results should fail")
	}
}

func TestPhaseAdvancesMonotonically(t *testing.T) {
	m, _ := newModule(feature.MVP())
	if m.Phase() != PhaseTypes {
		t.Fatalf("initial phase = %v, want PhaseTypes", m.Phase())
	}
	m.OnMemory(1, wa.Limits{Initial: 1})
	if m.Phase() != PhaseMemories {
		t.Fatalf("phase after OnMemory = %v, want PhaseMemories", m.Phase())
	}
	sig := m.OnType(nil, nil)
	if m.Phase() != PhaseMemories {
		t.Fatalf("OnType should not move the phase backward, got %v", m.Phase())
	}
	_ = sig
}

func TestCheckerDepthTracksOpenFrames(t *testing.T) {
	m, _ := newModule(feature.MVP())
	sig := m.OnType(nil, nil)
	funcIdx, _ := m.OnFunction(1, wa.Var{Index: sig})

	m.BeginFunctionBody(2, funcIdx)
	m.Block(3, wa.VoidBlockType)
	m.Block(4, wa.VoidBlockType)

	// Depth counts the open blocks (not the function frame), and
	// CurrentKind reflects the innermost frame.
	if d := m.checker.Depth(); d != 2 {
		t.Fatalf("Depth() = %d with two open blocks, want 2", d)
	}
	if k := m.checker.CurrentKind(); k != typecheck.Block {
		t.Fatalf("CurrentKind() = %v, want block", k)
	}
	m.End(5)
	m.End(6)
	if d := m.checker.Depth(); d != 0 {
		t.Fatalf("Depth() = %d after closing both blocks, want 0", d)
	}
	m.EndFunctionBody(7)
}

func TestElemSegmentOffsetAcceptsI32Const(t *testing.T) {
	m, _ := newModule(feature.MVP())
	m.OnTable(1, wa.Funcref, wa.Limits{Initial: 1})
	m.OnElemSegment(2, ElemActive, wa.Var{}, wa.Funcref)
	if !m.OnElemSegmentInitExprConst(3, wa.I32) {
		t.Fatal("i32.const element segment offset should succeed")
	}
}

func TestElemSegmentOffsetRejectsNonI32Const(t *testing.T) {
	m, _ := newModule(feature.MVP())
	m.OnTable(1, wa.Funcref, wa.Limits{Initial: 1})
	m.OnElemSegment(2, ElemActive, wa.Var{}, wa.Funcref)
	if m.OnElemSegmentInitExprConst(3, wa.F64) {
		t.Fatal("a non-i32 constant element segment offset should fail")
	}
}

func TestElemSegmentOffsetAcceptsImmutableI32Global(t *testing.T) {
	m, _ := newModule(feature.MVP())
	g, _ := m.OnGlobalImport(1, wa.I32, false)
	m.OnTable(2, wa.Funcref, wa.Limits{Initial: 1})
	m.OnElemSegment(3, ElemActive, wa.Var{}, wa.Funcref)
	if !m.OnElemSegmentInitExprGlobalGet(4, wa.Var{Index: g}) {
		t.Fatal("an immutable i32 global should be accepted as an element segment offset")
	}
}

func TestElemSegmentOffsetRejectsMutableGlobal(t *testing.T) {
	m, _ := newModule(feature.Set{MutableGlobals: true})
	g, _ := m.OnGlobalImport(1, wa.I32, true)
	m.OnTable(2, wa.Funcref, wa.Limits{Initial: 1})
	m.OnElemSegment(3, ElemActive, wa.Var{}, wa.Funcref)
	if m.OnElemSegmentInitExprGlobalGet(4, wa.Var{Index: g}) {
		t.Fatal("a mutable global should be rejected as an element segment offset")
	}
}

func TestElemSegmentOffsetRejectsOtherExpr(t *testing.T) {
	m, _ := newModule(feature.MVP())
	m.OnTable(1, wa.Funcref, wa.Limits{Initial: 1})
	m.OnElemSegment(2, ElemActive, wa.Var{}, wa.Funcref)
	if m.OnElemSegmentInitExprOther(3) {
		t.Fatal("an offset expression other than i32.const/global.get should fail")
	}
}

func TestDataSegmentOffsetAcceptsI32Const(t *testing.T) {
	m, _ := newModule(feature.MVP())
	m.OnMemory(1, wa.Limits{Initial: 1})
	m.OnDataSegment(2, DataActive, wa.Var{})
	if !m.OnDataSegmentInitExprConst(3, wa.I32) {
		t.Fatal("i32.const data segment offset should succeed")
	}
}

func TestDataSegmentOffsetRejectsMutableGlobal(t *testing.T) {
	m, _ := newModule(feature.Set{MutableGlobals: true})
	g, _ := m.OnGlobalImport(1, wa.I32, true)
	m.OnMemory(2, wa.Limits{Initial: 1})
	m.OnDataSegment(3, DataActive, wa.Var{})
	if m.OnDataSegmentInitExprGlobalGet(4, wa.Var{Index: g}) {
		t.Fatal("a mutable global should be rejected as a data segment offset")
	}
}

func TestDataSegmentOffsetRejectsOtherExpr(t *testing.T) {
	m, _ := newModule(feature.MVP())
	m.OnMemory(1, wa.Limits{Initial: 1})
	m.OnDataSegment(2, DataActive, wa.Var{})
	if m.OnDataSegmentInitExprOther(3) {
		t.Fatal("an offset expression other than i32.const/global.get should fail")
	}
}
