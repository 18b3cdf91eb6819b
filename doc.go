// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wasmvalidate implements a WebAssembly module validator: given
// a sequence of module-structural and instruction-level events, it
// decides whether the module is well-formed and accumulates diagnostic
// messages when it is not.
//
// Errors
//
// Diagnostics are accumulated into an errorsink.Sink rather than
// returned directly; most event methods also return a bool for
// convenience (false if that event recorded at least one diagnostic).
// A module is valid iff the Validator's sink recorded nothing by the
// time EndModule returns. Category sentinels for comparing diagnostics
// with golang.org/x/xerrors.Is are in the errors subpackage.
package wasmvalidate
