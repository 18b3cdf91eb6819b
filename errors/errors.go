// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors exports the validator's error categories without
// requiring callers to import the internal package that defines them.
package errors

import (
	internal "github.com/tsavola/wasmvalidate/internal/errors"
)

// Category sentinels. Match a diagnostic's category with
// golang.org/x/xerrors.Is(err, errors.ErrTypeMismatch) and so on.
var (
	ErrIndexOutOfRange = internal.ErrIndexOutOfRange
	ErrTypeMismatch    = internal.ErrTypeMismatch
	ErrShapeViolation  = internal.ErrShapeViolation
	ErrLimitViolation  = internal.ErrLimitViolation
	ErrAlignment       = internal.ErrAlignment
	ErrFeatureDisabled = internal.ErrFeatureDisabled
	ErrConstExpr       = internal.ErrConstExpr
)

// ModuleError reports whether err is one of the validator's own
// diagnostics about a module's well-formedness, as opposed to a
// programming error in how a caller drives this package's API.
func ModuleError(err error) bool {
	type moduleError interface{ ModuleError() bool }
	me, ok := err.(moduleError)
	return ok && me.ModuleError()
}
