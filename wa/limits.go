// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wa

import "strconv"

// Limits describes the initial and (optional) maximum size of a table or
// memory, and whether it is shared between threads.
type Limits struct {
	Initial  uint64
	Max      uint64 // meaningful only if HasMax
	HasMax   bool
	IsShared bool
}

func (l Limits) String() string {
	if !l.HasMax {
		return strconv.FormatUint(l.Initial, 10)
	}
	return strconv.FormatUint(l.Initial, 10) + ".." + strconv.FormatUint(l.Max, 10)
}
