// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typecheck

import "github.com/tsavola/wasmvalidate/wa"

// Kind identifies the control construct a frame was opened by.
type Kind byte

const (
	// Function is the implicit outermost frame pushed by BeginFunction.
	Function = Kind(iota)
	Block
	Loop
	If
	Else
	Try
	Catch
)

func (k Kind) String() string {
	switch k {
	case Function:
		return "function"
	case Block:
		return "block"
	case Loop:
		return "loop"
	case If:
		return "if"
	case Else:
		return "else"
	case Try:
		return "try"
	case Catch:
		return "catch"
	default:
		return "<invalid frame kind>"
	}
}

// frame is one entry of the control stack: a scope with its own operand
// stack "floor" (height), its declared label signature, and whether it
// has gone unreachable.
type frame struct {
	kind        Kind
	params      wa.TypeVector
	results     wa.TypeVector
	height      int
	unreachable bool
}

// labelTypes returns the operand types a branch targeting this frame's
// label expects: a loop's label is its entry (params), everything
// else's label is its exit (results).
func (f frame) labelTypes() wa.TypeVector {
	if f.kind == Loop {
		return f.params
	}
	return f.results
}
