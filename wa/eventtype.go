// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wa

// EventType is an exception-handling event declaration (legacy
// exceptions proposal): the parameter types carried by the exception.
// Events never have results.
type EventType struct {
	Params TypeVector
}

func (e EventType) String() string {
	return "event" + e.Params.String()
}
