// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package typecheck implements the abstract-stack interpreter that
// checks one function body at a time: the operand stack, the control
// stack, and the per-instruction transition rules. It knows nothing
// about module-level declaration tables; a caller (the validator
// package's ModuleContext) resolves module-parameterized signatures
// (call, local.get, block types, ...) and drives this package with the
// resolved types.
package typecheck

import (
	"github.com/tsavola/wasmvalidate/internal/errors"
	"github.com/tsavola/wasmvalidate/internal/errorsink"
	"github.com/tsavola/wasmvalidate/wa"
)

// Checker is the operand stack plus control stack for a single function
// body. A fresh one (or a reused one, via BeginFunction) is needed for
// each function.
type Checker struct {
	sink        *errorsink.Sink
	stack       []wa.Type
	frames      []frame
	funcResults wa.TypeVector
}

// New returns a Checker that records diagnostics into sink.
func New(sink *errorsink.Sink) *Checker {
	return &Checker{sink: sink}
}

func (c *Checker) fail(pos wa.Pos, err error) {
	c.sink.Add(pos, err)
}

func (c *Checker) curFrame() *frame { return &c.frames[len(c.frames)-1] }

// Depth is the block nesting depth, i.e. the number of open
// block/loop/if/try frames not counting the implicit function frame.
func (c *Checker) Depth() int { return len(c.frames) - 1 }

// CurrentKind reports the innermost frame's kind.
func (c *Checker) CurrentKind() Kind { return c.curFrame().kind }

// BeginFunction resets the checker and opens the implicit outer frame
// for a function whose declared results are results.
func (c *Checker) BeginFunction(results wa.TypeVector) {
	c.stack = c.stack[:0]
	c.frames = c.frames[:0]
	c.funcResults = results
	c.frames = append(c.frames, frame{kind: Function, results: results, height: 0})
}

// EndFunction verifies the final operand stack matches the function's
// declared results and that exactly the function frame remains.
func (c *Checker) EndFunction(pos wa.Pos) bool {
	ok := true
	if len(c.frames) != 1 {
		c.fail(pos, errors.Categorizef(errors.ErrShapeViolation,
			"function body ended with %d unclosed block(s)", len(c.frames)-1))
		ok = false
	}
	if !c.checkStackMatches(pos, c.funcResults) {
		ok = false
	}
	return ok
}

// Push places an operand on top of the stack.
func (c *Checker) Push(t wa.Type) { c.stack = append(c.stack, t) }

// PushVector pushes a sequence of operands, in order.
func (c *Checker) PushVector(ts wa.TypeVector) {
	for _, t := range ts {
		c.Push(t)
	}
}

// pop removes and returns the top operand. If the stack has been
// consumed down to the current frame's entry height, it synthesizes an
// Any if the frame is unreachable (the polymorphic-stack rule), or
// reports the underflow via ok=false otherwise.
func (c *Checker) pop() (wa.Type, bool) {
	f := c.curFrame()
	if len(c.stack) > f.height {
		t := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]
		return t, true
	}
	if f.unreachable {
		return wa.Any, true
	}
	return wa.Any, false
}

// PopAny pops and returns one operand of any type, failing on
// underflow.
func (c *Checker) PopAny(pos wa.Pos) (wa.Type, bool) {
	t, ok := c.pop()
	if !ok {
		c.fail(pos, errors.Categorizef(errors.ErrTypeMismatch, "type mismatch: stack underflow"))
	}
	return t, ok
}

// PopExpect pops one operand and checks it against expected.
func (c *Checker) PopExpect(pos wa.Pos, expected wa.Type) bool {
	actual, ok := c.pop()
	if !ok {
		c.fail(pos, errors.Categorizef(errors.ErrTypeMismatch,
			"type mismatch: expected %s, got nothing (stack underflow)", expected))
		return false
	}
	if !wa.CheckType(actual, expected) {
		c.fail(pos, errors.Categorizef(errors.ErrTypeMismatch,
			"type mismatch: expected %s, got %s", expected, actual))
		return false
	}
	return true
}

// PopVectorExpect pops len(expected) operands, rightmost-on-top
// (expected[0] is popped last), checking each against its expected
// type. All positions are attempted even if an earlier one fails, so a
// single call can surface multiple diagnostics.
func (c *Checker) PopVectorExpect(pos wa.Pos, expected wa.TypeVector) bool {
	ok := true
	for i := len(expected) - 1; i >= 0; i-- {
		if !c.PopExpect(pos, expected[i]) {
			ok = false
		}
	}
	return ok
}

// PeekVectorExpect checks that the top len(expected) operands are
// present and compatible with expected, without consuming them: used by
// br_if, where control may fall through and the values must still be
// there afterward.
func (c *Checker) PeekVectorExpect(pos wa.Pos, expected wa.TypeVector) bool {
	n := len(expected)
	saved := make([]wa.Type, n)
	ok := true
	for i := n - 1; i >= 0; i-- {
		t, popOk := c.pop()
		if !popOk {
			c.fail(pos, errors.Categorizef(errors.ErrTypeMismatch,
				"type mismatch: expected %s, got nothing (stack underflow)", expected[i]))
			ok = false
		} else if !wa.CheckType(t, expected[i]) {
			c.fail(pos, errors.Categorizef(errors.ErrTypeMismatch,
				"type mismatch: expected %s, got %s", expected[i], t))
			ok = false
		}
		saved[i] = t
	}
	for _, t := range saved {
		c.Push(t)
	}
	return ok
}

// Apply is the common case for instructions with a fixed, module-
// independent signature (numeric ops, memory/bulk-memory ops, SIMD
// lane ops, ...): pop the operand signature, push the result
// signature.
func (c *Checker) Apply(pos wa.Pos, pop, push wa.TypeVector) bool {
	ok := c.PopVectorExpect(pos, pop)
	c.PushVector(push)
	return ok
}

// checkStackMatches verifies the operand stack above the current
// frame's entry height equals expected exactly (order and type), except
// that an unreachable frame's polymorphic stack tolerates residue of
// type Any: only concrete over-supply beyond what's expected is still
// flagged.
func (c *Checker) checkStackMatches(pos wa.Pos, expected wa.TypeVector) bool {
	f := c.curFrame()
	ok := c.PopVectorExpect(pos, expected)
	if extra := len(c.stack) - f.height; extra > 0 {
		concrete := extra
		if f.unreachable {
			concrete = 0
			for _, t := range c.stack[f.height:] {
				if t != wa.Any {
					concrete++
				}
			}
		}
		if concrete > 0 {
			c.fail(pos, errors.Categorizef(errors.ErrTypeMismatch,
				"type mismatch: %d extra value(s) on the stack", concrete))
			ok = false
		}
		c.stack = c.stack[:f.height]
	}
	return ok
}

// SetUnreachable marks the current frame unreachable and clears its
// operand stack back to its entry height, per the unreachable/return
// transition.
func (c *Checker) SetUnreachable() {
	f := c.curFrame()
	f.unreachable = true
	c.stack = c.stack[:f.height]
}

// Return implements the `return` instruction: pop the function's
// declared results, then go unreachable.
func (c *Checker) Return(pos wa.Pos) bool {
	ok := c.PopVectorExpect(pos, c.funcResults)
	c.SetUnreachable()
	return ok
}

// FuncResults returns the enclosing function's declared results, for
// return_call/return_call_indirect's compatibility check.
func (c *Checker) FuncResults() wa.TypeVector { return c.funcResults }

// PushLabel opens a block/loop/if/try frame: params are popped off the
// enclosing stack (checked against the block's declared parameter
// types) and then preloaded back onto the stack as the new frame's
// initial contents.
func (c *Checker) PushLabel(pos wa.Pos, kind Kind, params, results wa.TypeVector) bool {
	ok := c.PopVectorExpect(pos, params)
	height := len(c.stack)
	c.frames = append(c.frames, frame{kind: kind, params: params.Clone(), results: results.Clone(), height: height})
	c.PushVector(params)
	return ok
}

// Else closes the `then` arm of an if and opens the `else` arm.
func (c *Checker) Else(pos wa.Pos) bool {
	f := c.curFrame()
	if f.kind != If {
		c.fail(pos, errors.Categorizef(errors.ErrShapeViolation, "else without matching if"))
		return false
	}
	ok := c.checkStackMatches(pos, f.results)
	c.stack = c.stack[:f.height]
	c.PushVector(f.params)
	f.kind = Else
	f.unreachable = false
	return ok
}

// Catch closes the guarded arm of a try and opens its catch arm.
func (c *Checker) Catch(pos wa.Pos) bool {
	f := c.curFrame()
	if f.kind != Try {
		c.fail(pos, errors.Categorizef(errors.ErrShapeViolation, "catch without matching try"))
		return false
	}
	ok := c.checkStackMatches(pos, f.results)
	c.stack = c.stack[:f.height]
	f.kind = Catch
	f.unreachable = false
	c.Push(wa.Exnref)
	return ok
}

// CatchAll closes the guarded arm of a try (or a preceding catch arm)
// and opens its catch-all arm: unlike Catch, no exnref is pushed, since
// catch_all does not bind the caught exception.
func (c *Checker) CatchAll(pos wa.Pos) bool {
	f := c.curFrame()
	if f.kind != Try && f.kind != Catch {
		c.fail(pos, errors.Categorizef(errors.ErrShapeViolation, "catch_all without matching try"))
		return false
	}
	ok := c.checkStackMatches(pos, f.results)
	c.stack = c.stack[:f.height]
	f.kind = Catch
	f.unreachable = false
	return ok
}

// End closes the current block/loop/if/try/else/catch frame, pushing
// its results onto the parent frame's stack. Callers must not invoke
// End on the outermost function frame; use EndFunction instead.
func (c *Checker) End(pos wa.Pos) bool {
	f := c.curFrame()
	ok := c.checkStackMatches(pos, f.results)
	results := f.results
	c.stack = c.stack[:f.height]
	c.frames = c.frames[:len(c.frames)-1]
	c.PushVector(results)
	return ok
}

// LabelTypes resolves the branch-target types for a branch with nesting
// depth (0 = innermost open frame).
func (c *Checker) LabelTypes(depth int) (wa.TypeVector, bool) {
	if depth < 0 || depth >= len(c.frames) {
		return nil, false
	}
	return c.frames[len(c.frames)-1-depth].labelTypes(), true
}

// Br implements `br L`.
func (c *Checker) Br(pos wa.Pos, depth int) bool {
	types, ok := c.LabelTypes(depth)
	if !ok {
		c.fail(pos, errors.Categorizef(errors.ErrIndexOutOfRange, "branch depth out of range: %d", depth))
		return false
	}
	okTypes := c.PopVectorExpect(pos, types)
	c.SetUnreachable()
	return okTypes
}

// BrIf implements `br_if L`: the i32 condition is popped; the label
// types are checked but, since control may fall through, left in
// place.
func (c *Checker) BrIf(pos wa.Pos, depth int) bool {
	ok := c.PopExpect(pos, wa.I32)
	types, okIdx := c.LabelTypes(depth)
	if !okIdx {
		c.fail(pos, errors.Categorizef(errors.ErrIndexOutOfRange, "branch depth out of range: %d", depth))
		return false
	}
	return c.PeekVectorExpect(pos, types) && ok
}

// BrTable implements `br_table L* LD`: every target (including the
// default) must have the same arity and pairwise-compatible types.
// Compatibility is judged against the default target's types, which is
// what the operand stack is ultimately checked against.
func (c *Checker) BrTable(pos wa.Pos, depths []int, defaultDepth int) bool {
	ok := c.PopExpect(pos, wa.I32)

	defaultTypes, okIdx := c.LabelTypes(defaultDepth)
	if !okIdx {
		c.fail(pos, errors.Categorizef(errors.ErrIndexOutOfRange, "branch depth out of range: %d", defaultDepth))
		return false
	}

	for _, d := range depths {
		types, okIdx := c.LabelTypes(d)
		if !okIdx {
			c.fail(pos, errors.Categorizef(errors.ErrIndexOutOfRange, "branch depth out of range: %d", d))
			ok = false
			continue
		}
		if len(types) != len(defaultTypes) {
			c.fail(pos, errors.Categorizef(errors.ErrTypeMismatch,
				"br_table labels have inconsistent arity: %d vs %d", len(types), len(defaultTypes)))
			ok = false
			continue
		}
		for i := range types {
			if !wa.CheckType(types[i], defaultTypes[i]) && !wa.CheckType(defaultTypes[i], types[i]) {
				c.fail(pos, errors.Categorizef(errors.ErrTypeMismatch,
					"br_table labels have incompatible types: %s vs %s", types[i], defaultTypes[i]))
				ok = false
			}
		}
	}

	if !c.PopVectorExpect(pos, defaultTypes) {
		ok = false
	}
	c.SetUnreachable()
	return ok
}

// RequireEnclosingCatch reports whether some frame up to the function
// boundary is a Catch frame, as `rethrow` requires.
func (c *Checker) RequireEnclosingCatch(pos wa.Pos) bool {
	for i := len(c.frames) - 1; i >= 0; i-- {
		if c.frames[i].kind == Catch {
			return true
		}
	}
	c.fail(pos, errors.Categorizef(errors.ErrShapeViolation, "rethrow outside of catch"))
	return false
}

// Rethrow implements `rethrow`.
func (c *Checker) Rethrow(pos wa.Pos) bool {
	ok := c.RequireEnclosingCatch(pos)
	c.SetUnreachable()
	return ok
}

// Throw implements `throw ev`, given the resolved event parameter
// types.
func (c *Checker) Throw(pos wa.Pos, params wa.TypeVector) bool {
	ok := c.PopVectorExpect(pos, params)
	c.SetUnreachable()
	return ok
}

// BrOnExn implements `br_on_exn L ev`: pop an exnref, require the
// target label's types equal the event's parameter types exactly, push
// the exnref back.
func (c *Checker) BrOnExn(pos wa.Pos, depth int, eventParams wa.TypeVector) bool {
	ok := c.PopExpect(pos, wa.Exnref)
	types, okIdx := c.LabelTypes(depth)
	if !okIdx {
		c.fail(pos, errors.Categorizef(errors.ErrIndexOutOfRange, "branch depth out of range: %d", depth))
		ok = false
	} else if !types.Equal(eventParams) {
		c.fail(pos, errors.Categorizef(errors.ErrTypeMismatch,
			"br_on_exn label type %s does not match event type %s", types, eventParams))
		ok = false
	}
	c.Push(wa.Exnref)
	return ok
}

// Select implements the legacy, untyped `select`.
func (c *Checker) Select(pos wa.Pos) bool {
	ok := c.PopExpect(pos, wa.I32)
	t2, ok2 := c.pop()
	t1, ok1 := c.pop()
	if !ok1 || !ok2 {
		c.fail(pos, errors.Categorizef(errors.ErrTypeMismatch, "type mismatch: stack underflow in select"))
		c.Push(wa.Any)
		return false
	}
	result := t1
	switch {
	case t1 == wa.Any:
		result = t2
	case t2 == wa.Any:
		result = t1
	case t1 != t2:
		c.fail(pos, errors.Categorizef(errors.ErrTypeMismatch,
			"select operands have different types: %s, %s", t1, t2))
		ok = false
	}
	if result != wa.Any && result.IsReference() {
		c.fail(pos, errors.Categorizef(errors.ErrShapeViolation,
			"select without type immediate cannot be used with reference types: %s", result))
		ok = false
	}
	c.Push(result)
	return ok
}

// SelectTyped implements the reference-types-proposal typed `select t`.
func (c *Checker) SelectTyped(pos wa.Pos, t wa.Type) bool {
	ok := c.PopExpect(pos, wa.I32)
	ok = c.PopExpect(pos, t) && ok
	ok = c.PopExpect(pos, t) && ok
	c.Push(t)
	return ok
}

// RefIsNull implements `ref.is_null`.
func (c *Checker) RefIsNull(pos wa.Pos) bool {
	t, ok := c.pop()
	if !ok {
		c.fail(pos, errors.Categorizef(errors.ErrTypeMismatch, "type mismatch: stack underflow"))
	} else if t != wa.Any && !t.IsReference() {
		c.fail(pos, errors.Categorizef(errors.ErrTypeMismatch,
			"type mismatch: expected a reference type, got %s", t))
		ok = false
	}
	c.Push(wa.I32)
	return ok
}
