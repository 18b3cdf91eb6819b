// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typecheck

import (
	"testing"

	"golang.org/x/xerrors"

	"github.com/tsavola/wasmvalidate/internal/errors"
	"github.com/tsavola/wasmvalidate/internal/errorsink"
	"github.com/tsavola/wasmvalidate/wa"
)

func newChecker() *Checker {
	return New(&errorsink.Sink{})
}

func TestAddI32I32ToI32(t *testing.T) {
	c := newChecker()
	c.BeginFunction(wa.TypeVector{wa.I32})
	c.Push(wa.I32)
	c.Push(wa.I32)
	if !c.Apply(0, wa.TypeVector{wa.I32, wa.I32}, wa.TypeVector{wa.I32}) {
		t.Fatal("i32.add should type-check")
	}
	if !c.EndFunction(0) {
		t.Fatal("function body should end cleanly")
	}
}

func TestPopExpectMismatchRecordsTypeMismatch(t *testing.T) {
	sink := &errorsink.Sink{}
	c := New(sink)
	c.BeginFunction(nil)
	c.Push(wa.I64)
	if c.PopExpect(0, wa.I32) {
		t.Fatal("popping i64 expecting i32 should fail")
	}
	if sink.OK() {
		t.Fatal("a diagnostic should have been recorded")
	}
	if !xerrors.Is(sink.Entries()[0].Err, errors.ErrTypeMismatch) {
		t.Errorf("diagnostic category = %v, want ErrTypeMismatch", sink.Entries()[0].Err)
	}
}

func TestStackUnderflowFailsOutsideUnreachable(t *testing.T) {
	c := newChecker()
	c.BeginFunction(nil)
	if _, ok := c.PopAny(0); ok {
		t.Error("popping an empty reachable frame should fail")
	}
}

func TestUnreachableFrameSynthesizesAny(t *testing.T) {
	c := newChecker()
	c.BeginFunction(wa.TypeVector{wa.I32})
	c.SetUnreachable()
	// Any further pop succeeds by synthesizing wa.Any, whatever type is
	// expected.
	if !c.PopExpect(0, wa.I32) {
		t.Error("unreachable frame should tolerate popping an expected type out of nothing")
	}
	if !c.PopExpect(0, wa.F64) {
		t.Error("unreachable frame should tolerate popping any type out of nothing")
	}
	if !c.EndFunction(0) {
		t.Error("unreachable function body with no stack residue should end cleanly")
	}
}

func TestEndFunctionRejectsExtraValues(t *testing.T) {
	c := newChecker()
	c.BeginFunction(nil)
	c.Push(wa.I32)
	if c.EndFunction(0) {
		t.Fatal("leftover operand should fail EndFunction")
	}
}

func TestEndFunctionRejectsUnclosedBlock(t *testing.T) {
	c := newChecker()
	c.BeginFunction(nil)
	c.PushLabel(0, Block, nil, nil)
	if c.EndFunction(0) {
		t.Fatal("unclosed block should fail EndFunction")
	}
}

func TestBlockParamsAndResults(t *testing.T) {
	c := newChecker()
	c.BeginFunction(wa.TypeVector{wa.I32})
	c.Push(wa.I32)
	if !c.PushLabel(0, Block, wa.TypeVector{wa.I32}, wa.TypeVector{wa.I32}) {
		t.Fatal("block entry should type-check")
	}
	if !c.End(0) {
		t.Fatal("block should close cleanly, reproducing its param on the parent stack")
	}
	if !c.EndFunction(0) {
		t.Fatal("function should end cleanly with the block's result on the stack")
	}
}

func TestLoopLabelTargetsEntryTypes(t *testing.T) {
	c := newChecker()
	c.BeginFunction(nil)
	c.Push(wa.I32)
	c.PushLabel(0, Loop, wa.TypeVector{wa.I32}, nil)
	types, ok := c.LabelTypes(0)
	if !ok || !types.Equal(wa.TypeVector{wa.I32}) {
		t.Fatalf("loop label types = %v, ok=%v, want [i32]", types, ok)
	}
}

func TestBlockLabelTargetsExitTypes(t *testing.T) {
	c := newChecker()
	c.BeginFunction(nil)
	c.PushLabel(0, Block, nil, wa.TypeVector{wa.F64})
	types, ok := c.LabelTypes(0)
	if !ok || !types.Equal(wa.TypeVector{wa.F64}) {
		t.Fatalf("block label types = %v, ok=%v, want [f64]", types, ok)
	}
}

func TestBrBranchesOutAndGoesUnreachable(t *testing.T) {
	c := newChecker()
	c.BeginFunction(nil)
	c.PushLabel(0, Block, nil, wa.TypeVector{wa.I32})
	c.Push(wa.I32)
	if !c.Br(0, 0) {
		t.Fatal("br 0 with a matching i32 on the stack should succeed")
	}
	if c.CurrentKind() != Block {
		t.Fatalf("CurrentKind() = %v after br, want Block (br does not close the frame)", c.CurrentKind())
	}
	if !c.End(0) {
		t.Fatal("block should still close cleanly: the unreachable frame tolerates the missing result")
	}
}

func TestBrDepthOutOfRange(t *testing.T) {
	c := newChecker()
	c.BeginFunction(nil)
	c.PushLabel(0, Block, nil, nil)
	if c.Br(0, 5) {
		t.Fatal("branching past the function boundary should fail")
	}
}

func TestBrIfLeavesValuesInPlace(t *testing.T) {
	c := newChecker()
	c.BeginFunction(nil)
	c.PushLabel(0, Block, nil, wa.TypeVector{wa.I32})
	c.Push(wa.I32)
	c.Push(wa.I32) // condition
	if !c.BrIf(0, 0) {
		t.Fatal("br_if should succeed with a matching label type under the condition")
	}
	// The label's i32 should still be on the stack (fallthrough case).
	if !c.End(0) {
		t.Fatal("block should close cleanly: br_if never consumes the label's values")
	}
}

func TestBrTableRequiresConsistentArity(t *testing.T) {
	c := newChecker()
	c.BeginFunction(nil)
	c.PushLabel(0, Block, nil, wa.TypeVector{wa.I32})
	c.PushLabel(0, Block, nil, wa.TypeVector{wa.I32, wa.I32})
	c.Push(wa.I32)
	c.Push(wa.I32)
	c.Push(wa.I32) // br_table index
	if c.BrTable(0, []int{1}, 0) {
		t.Fatal("br_table targets with mismatched arity should fail")
	}
}

func TestElseWithoutMatchingIf(t *testing.T) {
	c := newChecker()
	c.BeginFunction(nil)
	c.PushLabel(0, Block, nil, nil)
	if c.Else(0) {
		t.Fatal("else inside a plain block should fail")
	}
}

func TestIfElseEndRoundTrip(t *testing.T) {
	c := newChecker()
	c.BeginFunction(wa.TypeVector{wa.I32})
	c.PushLabel(0, If, nil, wa.TypeVector{wa.I32})
	c.Push(wa.I32)
	if !c.Else(0) {
		t.Fatal("else should close the then-arm cleanly")
	}
	c.Push(wa.I32)
	if !c.End(0) {
		t.Fatal("end should close the else-arm cleanly")
	}
	if !c.EndFunction(0) {
		t.Fatal("function should end with the if's result on the stack")
	}
}

func TestCatchPushesExnref(t *testing.T) {
	c := newChecker()
	c.BeginFunction(nil)
	c.PushLabel(0, Try, nil, nil)
	if !c.Catch(0) {
		t.Fatal("catch should close the guarded try arm cleanly")
	}
	if !c.PopExpect(0, wa.Exnref) {
		t.Error("catch should push an exnref onto the stack")
	}
	if !c.End(0) {
		t.Fatal("end should close the catch arm cleanly")
	}
}

func TestCatchAllDoesNotPushExnref(t *testing.T) {
	c := newChecker()
	c.BeginFunction(nil)
	c.PushLabel(0, Try, nil, nil)
	if !c.CatchAll(0) {
		t.Fatal("catch_all should close the guarded try arm cleanly")
	}
	if _, ok := c.PopAny(0); ok {
		t.Error("catch_all should not push anything onto the stack")
	}
}

func TestRethrowRequiresEnclosingCatch(t *testing.T) {
	c := newChecker()
	c.BeginFunction(nil)
	if c.Rethrow(0) {
		t.Fatal("rethrow outside of a catch should fail")
	}
	c.PushLabel(0, Try, nil, nil)
	c.Catch(0)
	c.PopAny(0) // discard the exnref catch pushed
	if !c.Rethrow(0) {
		t.Fatal("rethrow inside a catch arm should succeed")
	}
}

func TestThrowGoesUnreachable(t *testing.T) {
	c := newChecker()
	c.BeginFunction(nil)
	c.Push(wa.I32)
	if !c.Throw(0, wa.TypeVector{wa.I32}) {
		t.Fatal("throw with a matching parameter on the stack should succeed")
	}
	if !c.EndFunction(0) {
		t.Fatal("an unreachable function body should tolerate a missing result")
	}
}

func TestBrOnExnRequiresExactLabelMatch(t *testing.T) {
	c := newChecker()
	c.BeginFunction(nil)
	c.PushLabel(0, Block, nil, wa.TypeVector{wa.I32})
	c.Push(wa.Exnref)
	if c.BrOnExn(0, 0, wa.TypeVector{wa.I64}) {
		t.Fatal("br_on_exn should fail when the label types don't exactly equal the event's params")
	}
}

func TestSelectRequiresMatchingOperands(t *testing.T) {
	c := newChecker()
	c.BeginFunction(wa.TypeVector{wa.I32})
	c.Push(wa.I32)
	c.Push(wa.I32)
	c.Push(wa.I32) // condition
	if !c.Select(0) {
		t.Fatal("select over two i32 operands should succeed")
	}
	if !c.EndFunction(0) {
		t.Fatal("function should end with the selected i32 on the stack")
	}
}

func TestSelectRejectsReferenceTypesWithoutImmediate(t *testing.T) {
	c := newChecker()
	c.BeginFunction(nil)
	c.Push(wa.Funcref)
	c.Push(wa.Funcref)
	c.Push(wa.I32)
	if c.Select(0) {
		t.Fatal("untyped select over reference types should fail")
	}
}

func TestSelectTypedAcceptsReferenceTypes(t *testing.T) {
	c := newChecker()
	c.BeginFunction(wa.TypeVector{wa.Funcref})
	c.Push(wa.Funcref)
	c.Push(wa.Funcref)
	c.Push(wa.I32)
	if !c.SelectTyped(0, wa.Funcref) {
		t.Fatal("select with a funcref type immediate should succeed")
	}
	if !c.EndFunction(0) {
		t.Fatal("function should end with the selected funcref on the stack")
	}
}

func TestRefIsNullRequiresReferenceType(t *testing.T) {
	c := newChecker()
	c.BeginFunction(wa.TypeVector{wa.I32})
	c.Push(wa.I32)
	if c.RefIsNull(0) {
		t.Fatal("ref.is_null over a numeric type should fail")
	}
}

func TestReturnPopsDeclaredResultsAndGoesUnreachable(t *testing.T) {
	c := newChecker()
	c.BeginFunction(wa.TypeVector{wa.I32})
	c.Push(wa.I32)
	if !c.Return(0) {
		t.Fatal("return with a matching result on the stack should succeed")
	}
	if !c.EndFunction(0) {
		t.Fatal("an unreachable function body should tolerate having no further stack residue")
	}
}
