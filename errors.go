package main

import (
	"errors"
	"fmt"
)

//
// Manifest constants for the interpreter's error messages.  These
// are the only texts the user ever sees for a failed statement,
// so keep them short and upper case, like the rest of the dialect
//

const (
	ESYNTAXERROR    = "SYNTAX ERROR"
	EUNDEFINED      = "VARIABLE NOT DEFINED"
	EDIVISIONBYZERO = "DIVIDE BY ZERO"
	ELINENUMBER     = "LINE NUMBER ERROR"
	EINVALIDNUMBER  = "INVALID NUMBER"
	EINPUTABORTED   = "INPUT ABORTED"
	EINTERRUPTED    = "Interrupted"
)

var errSyntax = errors.New(ESYNTAXERROR)            //nolint:staticcheck
var errUndefined = errors.New(EUNDEFINED)           //nolint:staticcheck
var errDivisionByZero = errors.New(EDIVISIONBYZERO) //nolint:staticcheck
var errLineNumber = errors.New(ELINENUMBER)         //nolint:staticcheck
var errInputAborted = errors.New(EINPUTABORTED)     //nolint:staticcheck
var errInterrupted = errors.New(EINTERRUPTED)       //nolint:staticcheck

//
// A syntax error remembers the line it was found in and the location
// of the offending token, so the REPL can highlight it.  A location
// of zero means the whole line is suspect (e.g. premature end of input)
//

func (e *syntaxError) Error() string {
	return ESYNTAXERROR
}

func (e *syntaxError) Unwrap() error {
	return errSyntax
}

//
// Runtime errors raised while a stored program is running carry the
// number of the line being executed
//

func (e *runtimeError) Error() string {

	if e.lineNo == 0 {
		return e.err.Error()
	}

	return fmt.Sprintf("%s at line %d", e.err.Error(), e.lineNo)
}

func (e *runtimeError) Unwrap() error {
	return e.err
}

func runtimeErrorAt(err error, lineNo int) error {

	if err == nil {
		return nil
	}

	var re *runtimeError
	if errors.As(err, &re) {
		return err
	}

	return &runtimeError{err: err, lineNo: lineNo}
}
