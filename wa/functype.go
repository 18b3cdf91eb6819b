// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wa

// FuncType is a declared module type: a parameter list and a result
// list, stored once per entry of the module's type section and referred
// to by index everywhere else (function signatures, block signatures,
// call_indirect signatures).
type FuncType struct {
	Params  TypeVector
	Results TypeVector
}

func (f FuncType) Equal(other FuncType) bool {
	return f.Params.Equal(other.Params) && f.Results.Equal(other.Results)
}

func (f FuncType) String() (s string) {
	s = "("
	for i, t := range f.Params {
		if i > 0 {
			s += ", "
		}
		s += t.String()
	}
	s += ")"

	switch len(f.Results) {
	case 0:
	case 1:
		s += " " + f.Results[0].String()
	default:
		s += " " + f.Results.String()
	}

	return
}
