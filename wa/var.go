// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wa

import "strconv"

// Index is a 32-bit identifier into one of the module's declaration
// tables (types, funcs, tables, memories, globals, events, ...).
type Index uint32

func (i Index) String() string { return strconv.FormatUint(uint64(i), 10) }

// Pos is a byte offset into the event stream the parser is driving the
// validator from. It plays the role the original source's expression
// location pointer plays: a best-effort pointer for diagnostics, not a
// guarantee of line/column accuracy. The binary/text parser is external
// to this module, so Pos is opaque to everything except ErrorSink.
type Pos int64

// Var couples an index with the position of the reference to it, so
// that an out-of-range lookup can report where the bad reference
// occurred rather than only which table overflowed.
type Var struct {
	Index Index
	Pos   Pos
}
