// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validator

import (
	"github.com/tsavola/wasmvalidate/internal/errors"
	"github.com/tsavola/wasmvalidate/wa"
)

// OnType records a declared function signature and returns its index.
// It always succeeds.
func (m *ModuleContext) OnType(params, results wa.TypeVector) wa.Index {
	m.advance(PhaseTypes)
	idx := wa.Index(len(m.types))
	m.types = append(m.types, wa.FuncType{Params: params, Results: results})
	return idx
}

// OnFunction declares a function (imported or defined) whose signature
// is types[sig.Index].
func (m *ModuleContext) OnFunction(pos wa.Pos, sig wa.Var) (wa.Index, bool) {
	m.advance(PhaseFuncs)
	ft, ok := m.TypeOf(pos, sig.Index)
	if !ok {
		ft = wa.FuncType{}
	}
	if len(ft.Results) > 1 {
		if !m.requireFeatureNamed(pos, m.features.MultiValue, "multiple result values", "multi_value") {
			ok = false
		}
	}
	idx := wa.Index(len(m.funcs))
	m.funcs = append(m.funcs, ft)
	return idx, ok
}

// OnTable declares a table.
func (m *ModuleContext) OnTable(pos wa.Pos, elem wa.Type, limits wa.Limits) (wa.Index, bool) {
	m.advance(PhaseTables)
	ok := true

	if !elem.IsReference() {
		m.fail(pos, errors.Categorizef(errors.ErrShapeViolation, "table element type must be a reference type, got %s", elem))
		ok = false
	}
	if !m.features.RefTypes {
		if len(m.tables) >= 1 {
			m.fail(pos, errors.Categorizef(errors.ErrFeatureDisabled, "multiple tables require the reference_types feature"))
			ok = false
		}
		if elem != wa.Funcref {
			m.fail(pos, errors.Categorizef(errors.ErrFeatureDisabled, "non-funcref tables require the reference_types feature"))
			ok = false
		}
	}
	if limits.IsShared {
		m.fail(pos, errors.Categorizef(errors.ErrLimitViolation, "tables cannot be shared"))
		ok = false
	}
	if !checkLimits(pos, m, limits, wa.MaxTableElems) {
		ok = false
	}

	idx := wa.Index(len(m.tables))
	m.tables = append(m.tables, wa.TableType{Element: elem, Limits: limits})
	return idx, ok
}

// OnMemory declares a linear memory.
func (m *ModuleContext) OnMemory(pos wa.Pos, limits wa.Limits) (wa.Index, bool) {
	m.advance(PhaseMemories)
	ok := true

	if len(m.memories) >= 1 {
		m.fail(pos, errors.Categorizef(errors.ErrShapeViolation, "only one memory is allowed"))
		ok = false
	}
	if limits.IsShared {
		if !m.requireFeatureNamed(pos, m.features.Threads, "shared memories", "threads") {
			ok = false
		}
		if !limits.HasMax {
			m.fail(pos, errors.Categorizef(errors.ErrLimitViolation, "shared memories must have max sizes"))
			ok = false
		}
	}
	if !checkLimits(pos, m, limits, uint64(wa.MaxPages)) {
		ok = false
	}

	idx := wa.Index(len(m.memories))
	m.memories = append(m.memories, wa.MemoryType{Limits: limits})
	return idx, ok
}

func checkLimits(pos wa.Pos, m *ModuleContext, limits wa.Limits, absoluteMax uint64) bool {
	ok := true
	if limits.Initial > absoluteMax {
		m.fail(pos, errors.Categorizef(errors.ErrLimitViolation, "initial size exceeds the maximum allowed: %d > %d", limits.Initial, absoluteMax))
		ok = false
	}
	if limits.HasMax {
		if limits.Max > absoluteMax {
			m.fail(pos, errors.Categorizef(errors.ErrLimitViolation, "max size exceeds the maximum allowed: %d > %d", limits.Max, absoluteMax))
			ok = false
		}
		if limits.Initial > limits.Max {
			m.fail(pos, errors.Categorizef(errors.ErrLimitViolation, "initial size exceeds max size: %d > %d", limits.Initial, limits.Max))
			ok = false
		}
	}
	return ok
}

// OnGlobalImport declares an imported global. Imported globals always
// occupy a prefix of the globals table.
func (m *ModuleContext) OnGlobalImport(pos wa.Pos, t wa.Type, mutable bool) (wa.Index, bool) {
	m.advance(PhaseGlobals)
	ok := true
	if mutable {
		if !m.requireFeatureNamed(pos, m.features.MutableGlobals, "mutable global imports", "mutable_globals") {
			ok = false
		}
	}
	idx := wa.Index(len(m.globals))
	m.globals = append(m.globals, wa.MakeGlobalType(t, mutable))
	m.numImportedGlobals++
	return idx, ok
}

// OnGlobal declares a non-imported global. Its initializer is validated
// separately through OnGlobalInitExpr*.
func (m *ModuleContext) OnGlobal(pos wa.Pos, t wa.Type, mutable bool) wa.Index {
	m.advance(PhaseGlobals)
	idx := wa.Index(len(m.globals))
	m.globals = append(m.globals, wa.MakeGlobalType(t, mutable))
	return idx
}

// OnGlobalInitExprConst validates a `T.const` initializer for globals[g].
func (m *ModuleContext) OnGlobalInitExprConst(pos wa.Pos, g wa.Index, t wa.Type) bool {
	gt, ok := m.globalOf(pos, wa.Var{Index: g, Pos: pos})
	if !ok {
		return false
	}
	if !wa.CheckType(t, gt.Type()) {
		m.fail(pos, errors.Categorizef(errors.ErrConstExpr, "global initializer type mismatch: expected %s, got %s", gt.Type(), t))
		return false
	}
	return true
}

// OnGlobalInitExprGlobalGet validates a `global.get ref` initializer:
// ref must name an already-declared imported, immutable global of a
// compatible type.
func (m *ModuleContext) OnGlobalInitExprGlobalGet(pos wa.Pos, g wa.Index, ref wa.Var) bool {
	gt, ok := m.globalOf(pos, wa.Var{Index: g, Pos: pos})
	if !ok {
		return false
	}
	refType, refOk := m.globalOf(pos, ref)
	if !refOk {
		return false
	}
	ok = true
	if int(ref.Index) >= m.numImportedGlobals {
		m.fail(ref.Pos, errors.Categorizef(errors.ErrConstExpr, "initializer expression cannot reference a non-imported global"))
		ok = false
	}
	if refType.Mutable() {
		m.fail(ref.Pos, errors.Categorizef(errors.ErrConstExpr, "initializer expression cannot reference a mutable global"))
		ok = false
	}
	if !wa.CheckType(refType.Type(), gt.Type()) {
		m.fail(ref.Pos, errors.Categorizef(errors.ErrConstExpr, "global initializer type mismatch: expected %s, got %s", gt.Type(), refType.Type()))
		ok = false
	}
	return ok
}

// OnGlobalInitExprRefNull validates a `ref.null` initializer.
func (m *ModuleContext) OnGlobalInitExprRefNull(pos wa.Pos, g wa.Index) bool {
	gt, ok := m.globalOf(pos, wa.Var{Index: g, Pos: pos})
	if !ok {
		return false
	}
	if !gt.Type().IsReference() {
		m.fail(pos, errors.Categorizef(errors.ErrConstExpr, "ref.null initializer requires a reference-typed global, got %s", gt.Type()))
		return false
	}
	return true
}

// OnGlobalInitExprRefFunc validates a `ref.func f` initializer; f is
// recorded for the deferred end_module declared-function check.
func (m *ModuleContext) OnGlobalInitExprRefFunc(pos wa.Pos, g wa.Index, f wa.Var) bool {
	gt, ok := m.globalOf(pos, wa.Var{Index: g, Pos: pos})
	if !ok {
		return false
	}
	if _, funcOk := m.funcOf(pos, f); !funcOk {
		return false
	}
	ok = true
	if !wa.CheckType(wa.Funcref, gt.Type()) {
		m.fail(pos, errors.Categorizef(errors.ErrConstExpr, "ref.func initializer requires a funcref-compatible global, got %s", gt.Type()))
		ok = false
	}
	m.initExprFuncs = append(m.initExprFuncs, f)
	return ok
}

// OnEvent declares an exception-handling event (legacy proposal). Its
// signature must have no results.
func (m *ModuleContext) OnEvent(pos wa.Pos, sig wa.Var) (wa.Index, bool) {
	m.advance(PhaseEvents)
	ok := true
	if !m.requireFeatureNamed(pos, m.features.Exceptions, "events", "exceptions") {
		ok = false
	}
	ft, typeOk := m.TypeOf(pos, sig.Index)
	if !typeOk {
		ok = false
	}
	if len(ft.Results) != 0 {
		m.fail(pos, errors.Categorizef(errors.ErrShapeViolation, "event signatures cannot have results"))
		ok = false
	}
	idx := wa.Index(len(m.events))
	m.events = append(m.events, wa.EventType{Params: ft.Params})
	return idx, ok
}

// OnExport declares an export. name must be unique across the module;
// itemVar must resolve against the table named by kind.
func (m *ModuleContext) OnExport(pos wa.Pos, kind ExportKind, itemVar wa.Var, name string) bool {
	m.advance(PhaseExports)
	ok := true
	if _, dup := m.exportNames[name]; dup {
		m.fail(pos, errors.Categorizef(errors.ErrShapeViolation, "duplicate export %q", name))
		ok = false
	} else {
		m.exportNames[name] = struct{}{}
	}

	switch kind {
	case ExportFunc:
		if _, funcOk := m.funcOf(pos, itemVar); !funcOk {
			ok = false
		}
	case ExportTable:
		if _, tableOk := m.tableOf(pos, itemVar); !tableOk {
			ok = false
		}
	case ExportMemory:
		if _, memOk := m.memoryOf(pos, itemVar); !memOk {
			ok = false
		}
	case ExportGlobal:
		if _, globalOk := m.globalOf(pos, itemVar); !globalOk {
			ok = false
		}
	case ExportEvent:
		if _, eventOk := m.eventOf(pos, itemVar); !eventOk {
			ok = false
		}
	}
	return ok
}

// OnStart declares the module's start function: at most one is
// allowed, and it must take no parameters and return no results.
func (m *ModuleContext) OnStart(pos wa.Pos, funcVar wa.Var) bool {
	m.advance(PhaseStart)
	ok := true
	if m.haveStart {
		m.fail(pos, errors.Categorizef(errors.ErrShapeViolation, "only one start function is allowed"))
		ok = false
	}
	m.haveStart = true

	ft, funcOk := m.funcOf(pos, funcVar)
	if !funcOk {
		return false
	}
	if len(ft.Params) != 0 || len(ft.Results) != 0 {
		m.fail(pos, errors.Categorizef(errors.ErrShapeViolation, "start function must have no parameters and no results"))
		ok = false
	}
	return ok
}

// OnElemSegment declares an element segment. Active segments reference
// a table; passive and declarative segments require bulk_memory and
// reference_types respectively.
func (m *ModuleContext) OnElemSegment(pos wa.Pos, kind ElemSegmentKind, tableVar wa.Var, elemType wa.Type) bool {
	m.advance(PhaseElemSegments)
	ok := true

	if !elemType.IsReference() {
		m.fail(pos, errors.Categorizef(errors.ErrShapeViolation, "element segment type must be a reference type, got %s", elemType))
		ok = false
	}

	switch kind {
	case ElemActive:
		if _, tableOk := m.tableOf(pos, tableVar); !tableOk {
			ok = false
		}
	case ElemPassive:
		if !m.requireFeatureNamed(pos, m.features.BulkMemory, "passive element segments", "bulk_memory") {
			ok = false
		}
	case ElemDeclarative:
		if !m.requireFeatureNamed(pos, m.features.RefTypes, "declarative element segments", "reference_types") {
			ok = false
		}
	}

	m.elemSegments++
	return ok
}

// OnElemSegmentInitExprConst validates an active element segment's
// `i32.const` table offset.
func (m *ModuleContext) OnElemSegmentInitExprConst(pos wa.Pos, t wa.Type) bool {
	if t != wa.I32 {
		m.fail(pos, errors.Categorizef(errors.ErrConstExpr, "element segment offset must be i32, got %s", t))
		return false
	}
	return true
}

// OnElemSegmentInitExprGlobalGet validates an active element segment's
// `global.get ref` table offset: ref must name an immutable i32
// global.
func (m *ModuleContext) OnElemSegmentInitExprGlobalGet(pos wa.Pos, ref wa.Var) bool {
	return m.checkSegmentOffsetGlobal(pos, ref)
}

// OnElemSegmentInitExprOther rejects any offset expression other than
// i32.const or global.get.
func (m *ModuleContext) OnElemSegmentInitExprOther(pos wa.Pos) bool {
	m.fail(pos, errors.Categorizef(errors.ErrConstExpr, "element segment offset must be i32.const or global.get"))
	return false
}

// checkSegmentOffsetGlobal validates an element or data segment
// offset's `global.get ref`: ref must name an already-declared,
// immutable, i32 global.
func (m *ModuleContext) checkSegmentOffsetGlobal(pos wa.Pos, ref wa.Var) bool {
	gt, ok := m.globalOf(pos, ref)
	if !ok {
		return false
	}
	ok = true
	if gt.Mutable() {
		m.fail(ref.Pos, errors.Categorizef(errors.ErrConstExpr, "segment offset cannot reference a mutable global"))
		ok = false
	}
	if gt.Type() != wa.I32 {
		m.fail(ref.Pos, errors.Categorizef(errors.ErrConstExpr, "segment offset global must be i32, got %s", gt.Type()))
		ok = false
	}
	return ok
}

// OnElemSegmentElemExprRefFunc records f as a declared function: one
// eligible to be named from a `ref.func` instruction elsewhere,
// including a global initializer.
func (m *ModuleContext) OnElemSegmentElemExprRefFunc(pos wa.Pos, f wa.Var) bool {
	if _, ok := m.funcOf(pos, f); !ok {
		return false
	}
	m.declaredFuncs[f.Index] = struct{}{}
	return true
}

// OnDataCount records the module's declared data-segment count, ahead
// of the data section itself.
func (m *ModuleContext) OnDataCount(pos wa.Pos, n wa.Index) {
	m.advance(PhaseDataCount)
	m.haveDataCount = true
	m.expectedDataCount = n
}

// OnDataSegment declares a data segment. Active segments reference a
// memory; passive segments require bulk_memory and reference no memory.
func (m *ModuleContext) OnDataSegment(pos wa.Pos, kind DataSegmentKind, memoryVar wa.Var) bool {
	m.advance(PhaseDataSegments)
	ok := true

	switch kind {
	case DataActive:
		if _, memOk := m.memoryOf(pos, memoryVar); !memOk {
			ok = false
		}
	case DataPassive:
		if !m.requireFeatureNamed(pos, m.features.BulkMemory, "passive data segments", "bulk_memory") {
			ok = false
		}
	}

	m.dataSegments++
	return ok
}

// OnDataSegmentInitExprConst validates an active data segment's
// `i32.const` memory offset.
func (m *ModuleContext) OnDataSegmentInitExprConst(pos wa.Pos, t wa.Type) bool {
	if t != wa.I32 {
		m.fail(pos, errors.Categorizef(errors.ErrConstExpr, "data segment offset must be i32, got %s", t))
		return false
	}
	return true
}

// OnDataSegmentInitExprGlobalGet validates an active data segment's
// `global.get ref` memory offset: ref must name an immutable i32
// global.
func (m *ModuleContext) OnDataSegmentInitExprGlobalGet(pos wa.Pos, ref wa.Var) bool {
	return m.checkSegmentOffsetGlobal(pos, ref)
}

// OnDataSegmentInitExprOther rejects any offset expression other than
// i32.const or global.get.
func (m *ModuleContext) OnDataSegmentInitExprOther(pos wa.Pos) bool {
	m.fail(pos, errors.Categorizef(errors.ErrConstExpr, "data segment offset must be i32.const or global.get"))
	return false
}

// EndModule performs the checks that can only be settled once the
// whole event stream has been seen: every ref.func named by a global
// initializer must eventually have been declared by some element
// segment.
func (m *ModuleContext) EndModule(pos wa.Pos) bool {
	m.advance(PhaseEndModule)
	ok := true
	for _, ref := range m.initExprFuncs {
		if _, declared := m.declaredFuncs[ref.Index]; !declared {
			m.fail(ref.Pos, errors.Categorizef(errors.ErrConstExpr, "function is not declared: %s", ref.Index))
			ok = false
		}
	}
	if m.haveDataCount && m.dataSegments != m.expectedDataCount {
		m.fail(pos, errors.Categorizef(errors.ErrShapeViolation, "data segment count mismatch: declared %s, saw %s", m.expectedDataCount, m.dataSegments))
		ok = false
	}
	return ok
}
