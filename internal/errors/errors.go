// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors defines the error shape shared by every diagnostic the
// validator emits, so that callers can xerrors.Is/As against a stable
// set of category sentinels regardless of which specific check produced
// the message.
package errors

import (
	"fmt"
)

type moduleError struct {
	text  string
	cause error
}

func ModuleError(text string) error {
	return &moduleError{text, nil}
}

func ModuleErrorf(format string, args ...interface{}) error {
	return &moduleError{fmt.Sprintf(format, args...), nil}
}

func WrapModuleError(cause error, text string) error {
	return &moduleError{text, cause}
}

func (e *moduleError) Error() string       { return e.text }
func (e *moduleError) PublicError() string { return e.text }
func (e *moduleError) ModuleError() bool   { return true }
func (e *moduleError) Unwrap() error       { return e.cause }

// Category sentinels, one per error kind from the specification's error
// handling design. A check constructs its message with Categorizef and
// the category, so every diagnostic both reads as specific prose and
// answers true to xerrors.Is(err, errors.ErrIndexOutOfRange) and so on.
var (
	ErrIndexOutOfRange = ModuleError("index out of range")
	ErrTypeMismatch    = ModuleError("type mismatch")
	ErrShapeViolation  = ModuleError("shape violation")
	ErrLimitViolation  = ModuleError("limit violation")
	ErrAlignment       = ModuleError("alignment violation")
	ErrFeatureDisabled = ModuleError("feature disabled")
	ErrConstExpr       = ModuleError("invalid constant expression")
)

type categorized struct {
	*moduleError
	category error
}

// Categorize wraps a message so xerrors.Is(err, category) succeeds while
// Error() still reports the specific text.
func Categorize(category error, text string) error {
	return &categorized{&moduleError{text, category}, category}
}

func Categorizef(category error, format string, args ...interface{}) error {
	return Categorize(category, fmt.Sprintf(format, args...))
}

func (e *categorized) Is(target error) bool { return target == e.category }
