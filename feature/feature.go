// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package feature holds the validator's proposal feature flags: a
// plain value struct passed into the validator constructor, the same
// shape the teacher uses for compile.Config/compile.ModuleConfig.
package feature

// Set is the full collection of proposal gates the validator
// recognizes. All fields default to disabled (MVP-only) when the zero
// value is used.
type Set struct {
	MultiValue     bool
	RefTypes       bool
	MutableGlobals bool
	Threads        bool
	BulkMemory     bool
	SIMD           bool
	Exceptions     bool
	TailCall       bool
	SignExtension  bool

	// SaturatingFloatToInt gates the non-trapping float-to-int
	// conversions; see DESIGN.md for why this module keeps one field
	// rather than the two some proposal documents name separately.
	SaturatingFloatToInt bool
}

// All returns a Set with every proposal enabled, useful for tests that
// want the richest instruction set available.
func All() Set {
	return Set{
		MultiValue:           true,
		RefTypes:             true,
		MutableGlobals:       true,
		Threads:              true,
		BulkMemory:           true,
		SIMD:                 true,
		Exceptions:           true,
		TailCall:             true,
		SignExtension:        true,
		SaturatingFloatToInt: true,
	}
}

// MVP returns the zero Set: no post-MVP proposal enabled.
func MVP() Set { return Set{} }
