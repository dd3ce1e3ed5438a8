package main

import (
	"fmt"
	"io"
	"strings"
)

func executeHelp(w io.Writer, topic string) {

	if topic == "" {
		fmt.Fprintln(w, "clear")
		fmt.Fprintln(w, "help")
		fmt.Fprintln(w, "list")
		fmt.Fprintln(w, "quit")
		fmt.Fprintln(w, "run")
		fmt.Fprintln(w, "stats")
		fmt.Fprintln(w, "trace")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Statements: LET PRINT INPUT GOTO IF-THEN END REM")
		fmt.Fprintln(w, "Type a line number followed by a statement to store it,")
		fmt.Fprintln(w, "or the line number alone to delete it")
		return
	}

	switch strings.ToUpper(topic) {
	default:
		fmt.Fprintf(w, "No help for %q\n", topic)

	case kwClear:
		fmt.Fprintln(w, "Erase the current program and all variables")

	case kwHelp:
		fmt.Fprintln(w, "List commands, or describe the named one")

	case kwList:
		fmt.Fprintln(w, "List the current program in line number order")

	case kwQuit:
		fmt.Fprintln(w, "Exit from BASIC")

	case kwRun:
		fmt.Fprintln(w, "Execute the current program from its first line")

	case kwStats:
		fmt.Fprintln(w, "Toggle printing execution statistics when the"+
			" program stops")

	case kwTrace:
		fmt.Fprintln(w, "Toggle tracing of statement execution, variable"+
			" modification or parsed statements")
		fmt.Fprintln(w, "\ttrace exec")
		fmt.Fprintln(w, "\ttrace vars")
		fmt.Fprintln(w, "\ttrace dump")
		fmt.Fprintln(w, "\ttrace <variable name>")

	case kwLet:
		fmt.Fprintln(w, "LET var = expr\tAssign the value of expr to var")

	case kwPrint:
		fmt.Fprintln(w, "PRINT expr\tPrint the value of expr")

	case kwInput:
		fmt.Fprintln(w, "INPUT var\tRead an integer from the terminal into var")

	case kwGoto:
		fmt.Fprintln(w, "GOTO n\tContinue execution at line n")

	case kwIf:
		fmt.Fprintln(w, "IF expr op expr THEN n\tContinue at line n if the"+
			" comparison (=, < or >) holds")

	case kwEnd:
		fmt.Fprintln(w, "END\tStop the program")

	case kwRem:
		fmt.Fprintln(w, "REM text\tComment, ignored")
	}
}
