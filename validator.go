// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wasmvalidate

import (
	"github.com/tsavola/wasmvalidate/feature"
	"github.com/tsavola/wasmvalidate/internal/errorsink"
	"github.com/tsavola/wasmvalidate/internal/validator"
)

// ExportKind selects which declaration table an export's item index is
// resolved against.
type ExportKind = validator.ExportKind

const (
	ExportFunc   = validator.ExportFunc
	ExportTable  = validator.ExportTable
	ExportMemory = validator.ExportMemory
	ExportGlobal = validator.ExportGlobal
	ExportEvent  = validator.ExportEvent
)

// ElemSegmentKind distinguishes active, passive and declarative
// element segments.
type ElemSegmentKind = validator.ElemSegmentKind

const (
	ElemActive      = validator.ElemActive
	ElemPassive     = validator.ElemPassive
	ElemDeclarative = validator.ElemDeclarative
)

// DataSegmentKind distinguishes active from passive data segments.
type DataSegmentKind = validator.DataSegmentKind

const (
	DataActive  = validator.DataActive
	DataPassive = validator.DataPassive
)

// Validator drives the validation of a single module: a caller issues
// module-structural and instruction-level events against it (see
// internal/validator.ModuleContext, embedded below, for the event
// methods) and inspects Diagnostics/Valid once done, or after any
// individual event whose bool result was false.
//
// A Validator is single-use: construct a fresh one per module with New.
type Validator struct {
	*validator.ModuleContext
	sink *errorsink.Sink
}

// New returns a Validator that accepts the proposals enabled in
// features.
func New(features feature.Set) *Validator {
	sink := &errorsink.Sink{}
	return &Validator{
		ModuleContext: validator.New(features, sink),
		sink:          sink,
	}
}

// Diagnostics returns every diagnostic recorded so far, in emission
// order. The slice is owned by the Validator; callers must not mutate
// it.
func (v *Validator) Diagnostics() []errorsink.Entry { return v.sink.Entries() }

// Valid reports whether no diagnostic has been recorded. Call it after
// EndModule for a final verdict; calling it earlier only reflects
// events seen so far.
func (v *Validator) Valid() bool { return v.sink.OK() }

// Format renders every recorded diagnostic as one line each, in
// emission order.
func (v *Validator) Format() string { return v.sink.Format() }
