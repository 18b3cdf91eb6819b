// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package validator implements the module-level declaration tables and
// cross-reference rules that drive a typecheck.Checker through one
// function body at a time. It is the entry point an external
// binary/text parser calls as it streams module-structural and
// instruction-level events; validator itself never reads any encoding.
package validator

import (
	"github.com/tsavola/wasmvalidate/feature"
	"github.com/tsavola/wasmvalidate/internal/errors"
	"github.com/tsavola/wasmvalidate/internal/errorsink"
	"github.com/tsavola/wasmvalidate/internal/typecheck"
	"github.com/tsavola/wasmvalidate/wa"
)

// Phase names the lifecycle stretch the module is presumed to be in.
// It is advisory bookkeeping: the event methods advance it, no
// diagnostic reads it, and it is never itself the source of a
// validation error, per the out-of-order-events rule (the parser, not
// this package, owns section ordering).
type Phase int

const (
	PhaseTypes = Phase(iota)
	PhaseImports
	PhaseFuncs
	PhaseTables
	PhaseMemories
	PhaseGlobals
	PhaseEvents
	PhaseExports
	PhaseStart
	PhaseElemSegments
	PhaseDataCount
	PhaseCode
	PhaseDataSegments
	PhaseEndModule
)

// placeholderGlobal is the synthetic value returned for a global lookup
// that failed: every call site shares this instance, so tests may
// compare by identity as well as by value.
var placeholderGlobal = wa.MakeGlobalType(wa.Any, true)

type localDecl struct {
	typ wa.Type
	end wa.Index
}

// maxLocals is the practical ceiling on a function's total local count.
const maxLocals = wa.Index(1 << 28)

// ElemSegmentKind distinguishes the three element-segment modes the
// bulk-memory and reference-types proposals introduced.
type ElemSegmentKind int

const (
	ElemActive = ElemSegmentKind(iota)
	ElemPassive
	ElemDeclarative
)

// DataSegmentKind distinguishes active from passive data segments.
type DataSegmentKind int

const (
	DataActive = DataSegmentKind(iota)
	DataPassive
)

// ExportKind is the table an export's item_var is resolved against.
type ExportKind int

const (
	ExportFunc = ExportKind(iota)
	ExportTable
	ExportMemory
	ExportGlobal
	ExportEvent
)

// ModuleContext owns the declaration tables of a single module and
// drives a typecheck.Checker for each function body. It plays the role
// spec.md calls the SharedValidator. A fresh instance is needed for
// each module; it is not reusable once end_module has been called.
type ModuleContext struct {
	features feature.Set
	sink     *errorsink.Sink
	checker  *typecheck.Checker

	phase Phase

	types    []wa.FuncType
	funcs    []wa.FuncType
	tables   []wa.TableType
	memories []wa.MemoryType
	globals  []wa.GlobalType
	events   []wa.EventType

	numImportedGlobals int

	exportNames   map[string]struct{}
	declaredFuncs map[wa.Index]struct{}
	initExprFuncs []wa.Var

	haveStart bool

	elemSegments wa.Index
	dataSegments wa.Index

	haveDataCount     bool
	expectedDataCount wa.Index

	curFunc   wa.Index
	curLocals []localDecl
}

// New returns a ModuleContext that validates against features and
// records diagnostics into sink.
func New(features feature.Set, sink *errorsink.Sink) *ModuleContext {
	return &ModuleContext{
		features:      features,
		sink:          sink,
		checker:       typecheck.New(sink),
		exportNames:   make(map[string]struct{}),
		declaredFuncs: make(map[wa.Index]struct{}),
	}
}

// Phase reports the furthest lifecycle stretch the events seen so far
// have advanced to; it never moves backward. No check reads it.
func (m *ModuleContext) Phase() Phase { return m.phase }

func (m *ModuleContext) advance(p Phase) {
	if p > m.phase {
		m.phase = p
	}
}

func (m *ModuleContext) fail(pos wa.Pos, err error) {
	m.sink.Add(pos, err)
}

func (m *ModuleContext) requireFeatureNamed(pos wa.Pos, enabled bool, construct, feature string) bool {
	if enabled {
		return true
	}
	m.fail(pos, errors.Categorizef(errors.ErrFeatureDisabled, "%s requires the %s feature", construct, feature))
	return false
}

// TypeOf resolves a declared module type by index, reporting ok=false
// (and recording a diagnostic) if idx is out of range.
func (m *ModuleContext) TypeOf(pos wa.Pos, idx wa.Index) (wa.FuncType, bool) {
	if int(idx) >= len(m.types) {
		m.fail(pos, errors.Categorizef(errors.ErrIndexOutOfRange, "type index out of range: %s", idx))
		return wa.FuncType{}, false
	}
	return m.types[idx], true
}

func (m *ModuleContext) funcOf(pos wa.Pos, v wa.Var) (wa.FuncType, bool) {
	if int(v.Index) >= len(m.funcs) {
		m.fail(pos, errors.Categorizef(errors.ErrIndexOutOfRange, "function index out of range: %s", v.Index))
		return wa.FuncType{}, false
	}
	return m.funcs[v.Index], true
}

func (m *ModuleContext) tableOf(pos wa.Pos, v wa.Var) (wa.TableType, bool) {
	if int(v.Index) >= len(m.tables) {
		m.fail(pos, errors.Categorizef(errors.ErrIndexOutOfRange, "table index out of range: %s", v.Index))
		return wa.TableType{}, false
	}
	return m.tables[v.Index], true
}

func (m *ModuleContext) memoryOf(pos wa.Pos, v wa.Var) (wa.MemoryType, bool) {
	if int(v.Index) >= len(m.memories) {
		m.fail(pos, errors.Categorizef(errors.ErrIndexOutOfRange, "memory index out of range: %s", v.Index))
		return wa.MemoryType{}, false
	}
	return m.memories[v.Index], true
}

func (m *ModuleContext) globalOf(pos wa.Pos, v wa.Var) (wa.GlobalType, bool) {
	if int(v.Index) >= len(m.globals) {
		m.fail(pos, errors.Categorizef(errors.ErrIndexOutOfRange, "global index out of range: %s", v.Index))
		return placeholderGlobal, false
	}
	return m.globals[v.Index], true
}

func (m *ModuleContext) eventOf(pos wa.Pos, v wa.Var) (wa.EventType, bool) {
	if int(v.Index) >= len(m.events) {
		m.fail(pos, errors.Categorizef(errors.ErrIndexOutOfRange, "event index out of range: %s", v.Index))
		return wa.EventType{}, false
	}
	return m.events[v.Index], true
}
