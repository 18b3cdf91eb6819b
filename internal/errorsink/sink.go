// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errorsink is the append-only diagnostic list every validation
// run writes to. It is deliberately dumb: it never inspects or filters
// what it is given, so that the accumulation policy (spec §7) lives
// entirely in the validator and type checker, not here.
package errorsink

import (
	"strconv"

	"github.com/tsavola/wasmvalidate/wa"
)

// Severity of a recorded entry. The specification never asks for
// anything but Error today; the field exists so a future warning-level
// check does not need a breaking type change.
type Severity int

const (
	Error Severity = iota
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Entry is one recorded diagnostic.
type Entry struct {
	Severity Severity
	Pos      wa.Pos
	Err      error
}

func (e Entry) String() string {
	return strconv.FormatInt(int64(e.Pos), 10) + ": " + e.Severity.String() + ": " + e.Err.Error()
}

// Sink collects diagnostics in emission order. The zero value is ready
// to use.
type Sink struct {
	entries []Entry
}

// Add records one diagnostic. It never returns an error itself: sinking
// a diagnostic cannot fail.
func (s *Sink) Add(pos wa.Pos, err error) {
	s.entries = append(s.entries, Entry{Error, pos, err})
}

// Entries returns the recorded diagnostics in emission order. The slice
// is owned by the sink; callers must not mutate it.
func (s *Sink) Entries() []Entry { return s.entries }

// Len reports how many diagnostics have been recorded.
func (s *Sink) Len() int { return len(s.entries) }

// OK reports whether no diagnostic has been recorded.
func (s *Sink) OK() bool { return len(s.entries) == 0 }

// Format renders every entry as one line, in emission order.
func (s *Sink) Format() string {
	out := ""
	for i, e := range s.entries {
		if i > 0 {
			out += "\n"
		}
		out += e.String()
	}
	return out
}
