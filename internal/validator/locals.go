// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validator

import (
	"sort"

	"github.com/tsavola/wasmvalidate/internal/errors"
	"github.com/tsavola/wasmvalidate/wa"
)

// BeginFunctionBody resets the per-function state (locals, checker
// stack/control stack) for funcIdx: its declared parameters become the
// function's first local-declaration segment.
func (m *ModuleContext) BeginFunctionBody(pos wa.Pos, funcIdx wa.Index) bool {
	m.advance(PhaseCode)
	ft, ok := m.funcOf(pos, wa.Var{Index: funcIdx, Pos: pos})
	if !ok {
		ft = wa.FuncType{}
	}

	m.curFunc = funcIdx
	m.curLocals = m.curLocals[:0]
	end := wa.Index(0)
	for _, t := range ft.Params {
		end++
		m.curLocals = append(m.curLocals, localDecl{typ: t, end: end})
	}

	m.checker.BeginFunction(ft.Results)
	return ok
}

// OnLocalDecl appends a run-length local-declaration segment of count
// locals of type t, following immediately after the function's
// parameters and any previously declared segments.
func (m *ModuleContext) OnLocalDecl(pos wa.Pos, count wa.Index, t wa.Type) bool {
	prevEnd := wa.Index(0)
	if n := len(m.curLocals); n > 0 {
		prevEnd = m.curLocals[n-1].end
	}
	total := uint64(prevEnd) + uint64(count)
	if total >= uint64(maxLocals) {
		m.fail(pos, errors.Categorizef(errors.ErrLimitViolation, "too many locals: %d exceeds the limit of %d", total, maxLocals))
		return false
	}
	if count == 0 {
		return true
	}
	m.curLocals = append(m.curLocals, localDecl{typ: t, end: prevEnd + count})
	return true
}

// LocalType resolves a local variable's declared type via binary
// search over the run-length segments.
func (m *ModuleContext) LocalType(pos wa.Pos, idx wa.Index) (wa.Type, bool) {
	i := sort.Search(len(m.curLocals), func(i int) bool {
		return idx < m.curLocals[i].end
	})
	if i == len(m.curLocals) {
		m.fail(pos, errors.Categorizef(errors.ErrIndexOutOfRange, "local index out of range: %s", idx))
		return wa.Any, false
	}
	return m.curLocals[i].typ, true
}

// EndFunctionBody closes out the function body: the checker verifies
// the final operand stack matches the declared results and that
// exactly one control frame remains open.
func (m *ModuleContext) EndFunctionBody(pos wa.Pos) bool {
	return m.checker.EndFunction(pos)
}
