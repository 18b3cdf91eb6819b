// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wa

// MaxTableElems is the absolute maximum number of elements a table may
// declare, per the core specification (2^32 - 1).
const MaxTableElems = uint64(1<<32 - 1)

// TableType is a table declaration: its element type (always a
// reference type) and its size limits.
type TableType struct {
	Element Type
	Limits  Limits
}

func (t TableType) String() string {
	return t.Element.String() + "[" + t.Limits.String() + "]"
}
