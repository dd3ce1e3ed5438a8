package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

//
// RUN.  Reset the statistics, interpret the program, and print the
// statistics if requested.  Variable bindings are NOT reset, only
// CLEAR does that
//

func executeRun(prog *program, state *evalState, con console) error {

	g.running.Store(true)
	defer func() {
		g.running.Store(false)
	}()

	g.interrupted.Store(false)

	resetStatistics()

	initClock()

	err := runProgram(prog, state, con)

	printStatistics(con)

	return err
}

//
// The run loop.  The position is a line number; after each statement
// we either honor a pending jump, or advance to the next line in
// sequence.  We stop when END has been executed, or when we run off
// the end of the program with no jump pending.  Any error aborts the
// whole run
//

func runProgram(prog *program, state *evalState, con console) error {

	var curLineNo int

	state.resetControl()

	lineNo, ok := prog.firstLineNumber()

	for {
		if state.hasEnded() {
			return nil
		}

		if target, jump := state.consumeJump(); jump {
			if prog.lookup(target) == nil {
				return runtimeErrorAt(errLineNumber, curLineNo)
			}

			lineNo, ok = target, true
			continue
		}

		if !ok {
			return nil
		}

		line := prog.lookup(lineNo)
		basicAssert(line != nil, "run loop lost its line")

		curLineNo = line.number

		if err := checkInterrupts(); err != nil {
			return runtimeErrorAt(err, curLineNo)
		}

		if g.traceExec {
			fmt.Fprintln(con, line.text)
		}

		if line.stmt != nil {
			if err := executeStmt(line.stmt, state, con); err != nil {
				return runtimeErrorAt(err, curLineNo)
			}

			s.numStatements++
		}

		lineNo, ok = prog.nextLineNumber(lineNo)
	}
}

//
// Execute a single statement.  Control transfer is only ever
// requested here; the run loop decides what it means
//

func executeStmt(stmt statement, state *evalState, con console) error {

	switch stmt := stmt.(type) {
	default:
		unexpectedTypeError(stmt)

	case *letStmt:
		return executeLet(stmt, state, con)

	case *printStmt:
		return executePrint(stmt, state, con)

	case *inputStmt:
		return executeInput(stmt, state, con)

	case *endStmt:
		state.signalEnd()

	case *gotoStmt:
		state.requestJump(stmt.target)

	case *ifStmt:
		return executeIf(stmt, state)
	}

	return nil
}

func executeLet(stmt *letStmt, state *evalState, con console) error {

	value, err := evaluate(stmt.value, state)
	if err != nil {
		return err
	}

	traceVar(con, state, stmt.name, value)

	state.setValue(stmt.name, value)

	return nil
}

func executePrint(stmt *printStmt, state *evalState, con console) error {

	value, err := evaluate(stmt.value, state)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(con, value)

	return err
}

//
// Keep asking until we get a valid integer.  The only ways out
// without a value are the input running dry or the user hitting ^C
//

func executeInput(stmt *inputStmt, state *evalState, con console) error {

	var value int64

	prompt := g.settings.InputPrompt
	if prompt == "" {
		prompt = inputPrompt
	}

	for {
		text, err := con.readLine(prompt, false)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return errInputAborted
			}

			return err
		}

		//
		// A stream cannot be woken up by ^C, so the interrupt is
		// only seen once the read completes
		//

		if err := checkInterrupts(); err != nil {
			return err
		}

		if value, err = convertInt(text); err == nil {
			break
		}

		fmt.Fprintln(con, EINVALIDNUMBER)
	}

	traceVar(con, state, stmt.name, value)

	state.setValue(stmt.name, value)

	return nil
}

//
// Convert the text of an INPUT response to an integer.  Surrounding
// blanks are ignored, a leading sign is allowed
//

func convertInt(s string) (int64, error) {

	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

func executeIf(stmt *ifStmt, state *evalState) error {

	var holds bool

	l, err := evaluate(stmt.lhs, state)
	if err != nil {
		return err
	}

	r, err := evaluate(stmt.rhs, state)
	if err != nil {
		return err
	}

	switch stmt.op {
	default:
		fatalError(fmt.Sprintf("Unexpected comparison %q", stmt.op))

	case "=":
		holds = l == r

	case "<":
		holds = l < r

	case ">":
		holds = l > r
	}

	if holds {
		state.requestJump(stmt.target)
	}

	return nil
}

//
// Statements typed without a line number.  Only PRINT, LET and INPUT
// make sense outside a running program
//

func executeImmediate(text string, state *evalState, con console) error {

	ts := newTokenScanner(text)

	stmt, err := parseStatement(ts)
	if err != nil {
		return err
	}

	if stmt == nil {
		return nil
	}

	switch stmt.(type) {
	default:
		return &syntaxError{line: text, loc: ts.tokens[0].loc}

	case *letStmt, *printStmt, *inputStmt:
	}

	return executeStmt(stmt, state, con)
}

func executeList(prog *program, w io.Writer) {

	for text := range prog.list() {
		fmt.Fprintln(w, text)
	}
}

func executeClear(prog *program, state *evalState) {

	prog.clear()
	state.clear()
}
