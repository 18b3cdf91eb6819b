// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errorsink

import (
	"errors"
	"testing"

	"github.com/tsavola/wasmvalidate/wa"
)

func TestEmptySinkIsOK(t *testing.T) {
	var s Sink
	if !s.OK() {
		t.Error("zero-value Sink should be OK")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if s.Format() != "" {
		t.Errorf("Format() = %q, want empty", s.Format())
	}
}

func TestAddRecordsInOrder(t *testing.T) {
	var s Sink
	s.Add(wa.Pos(1), errors.New("first"))
	s.Add(wa.Pos(2), errors.New("second"))

	if s.OK() {
		t.Error("non-empty sink should not be OK")
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	entries := s.Entries()
	if entries[0].Err.Error() != "first" || entries[1].Err.Error() != "second" {
		t.Errorf("entries out of order: %v", entries)
	}
}

func TestFormatRendersOneLinePerEntry(t *testing.T) {
	var s Sink
	s.Add(wa.Pos(5), errors.New("boom"))
	want := "5: error: boom"
	if got := s.Format(); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}
