// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wa

// PageSize is the fixed linear-memory page size.
const PageSize = 65536

// MaxPages is the absolute maximum number of pages a memory may declare.
const MaxPages = 65536

// MemoryType is a memory declaration: its size limits, measured in pages.
type MemoryType struct {
	Limits Limits
}

func (m MemoryType) String() string {
	return "memory[" + m.Limits.String() + "]"
}
