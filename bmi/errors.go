// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bmi exposes the basin model through a fixed, orchestrator-facing
// set of operations (initialize/update/update_until/get_*/set_value/
// finalize), the consumed/exposed surface of a Basic Model Interface. The
// driving loop that decides when to call update belongs to the
// orchestrator, not to this package.
package bmi

import "fmt"

// Code is one of the four BMI return codes. Success is the zero value.
type Code int

const (
	OK Code = iota
	BadArgument
	Unknown
	UnableToOpen
	BadName
)

func (c Code) String() string {
	switch c {
	case OK:
		return "OK"
	case BadArgument:
		return "BAD_ARGUMENT"
	case Unknown:
		return "UNKNOWN"
	case UnableToOpen:
		return "UNABLE_TO_OPEN"
	case BadName:
		return "BAD_NAME"
	default:
		return "UNKNOWN"
	}
}

// Error carries a Code alongside the usual message, so callers that need
// the original integer-returning BMI contract can recover it with AsCode
// (or the Code field) rather than parsing Error().
type Error struct {
	Code Code
	Msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("bmi: %s: %s", e.Code, e.Msg) }

func errf(code Code, format string, args ...interface{}) error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// AsCode extracts the Code from err, returning OK for nil and Unknown for
// any other error not produced by this package.
func AsCode(err error) Code {
	if err == nil {
		return OK
	}
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	return Unknown
}
