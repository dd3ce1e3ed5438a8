package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// resetInterp puts the interpreter globals back to a pristine state,
// with the console reading from input and writing to the returned buffer.
func resetInterp(t *testing.T, input string) *bytes.Buffer {
	t.Helper()

	var out bytes.Buffer

	g.program = newProgram()
	g.state = newEvalState()
	g.con = newStreamConsole(strings.NewReader(input), &out)
	g.interactive = false
	g.exiting = false
	g.interrupted.Store(false)
	applySettings(defaultSettings())

	for name := range tracedVarsMap {
		delete(tracedVarsMap, name)
	}

	t.Cleanup(func() {
		applySettings(defaultSettings())
		g.exiting = false
	})

	return &out
}

func feedLines(t *testing.T, lines ...string) {
	t.Helper()
	for _, line := range lines {
		require.NoError(t, processLine(line), "processLine(%q)", line)
	}
}

func Test_processLine_storesAndDeletes(t *testing.T) {
	resetInterp(t, "")

	feedLines(t,
		"20 PRINT 2",
		"10 LET X = 1",
		"30 END",
	)
	require.Equal(t, 3, g.program.len())
	require.Equal(t, "10 LET X = 1", g.program.get(10))

	feedLines(t, "20")
	require.Equal(t, 2, g.program.len())
	require.Equal(t, "", g.program.get(20))

	// deleting a line that is not there is harmless
	feedLines(t, "25")
	require.Equal(t, 2, g.program.len())
}

func Test_processLine_rejectsBadLines(t *testing.T) {
	resetInterp(t, "")

	for _, line := range []string{
		"10 LET = 5",
		"10 PRINT",
		"10 GOTO X",
		"10 FROB 1",
		"= 5",
	} {
		t.Run(line, func(t *testing.T) {
			require.ErrorIs(t, processLine(line), errSyntax)
			require.Equal(t, 0, g.program.len())
		})
	}

	require.ErrorIs(t, processLine("0 PRINT 1"), errLineNumber)
	require.Equal(t, 0, g.program.len())
}

func Test_processLine_immediate(t *testing.T) {
	out := resetInterp(t, "")

	feedLines(t,
		"LET A = 6",
		"let B = A * 7",
		"PRINT B",
	)
	require.Equal(t, "42\n", out.String())

	require.ErrorIs(t, processLine("GOTO 10"), errSyntax)
	require.ErrorIs(t, processLine("END"), errSyntax)
	require.ErrorIs(t, processLine("IF 1 = 1 THEN 10"), errSyntax)
}

func Test_processLine_commands(t *testing.T) {
	out := resetInterp(t, "")

	feedLines(t,
		"20 PRINT X + 1",
		"10 LET X = 4",
		"list",
	)
	require.Equal(t, "10 LET X = 4\n20 PRINT X + 1\n", out.String())

	out.Reset()
	feedLines(t, "RUN")
	require.Equal(t, "5\n", out.String())

	// RUN leaves the bindings in place
	out.Reset()
	feedLines(t, "PRINT X")
	require.Equal(t, "4\n", out.String())

	feedLines(t, "CLEAR")
	require.Equal(t, 0, g.program.len())
	require.ErrorIs(t, processLine("PRINT X"), errUndefined)

	require.ErrorIs(t, processLine("RUN 10"), errSyntax)
	require.ErrorIs(t, processLine("TRACE"), errSyntax)
	require.ErrorIs(t, processLine("HELP LET PRINT"), errSyntax)

	feedLines(t, "QUIT")
	require.True(t, g.exiting)
}

func Test_processLines_batch(t *testing.T) {
	resetInterp(t, "")

	var out bytes.Buffer

	src := strings.Join([]string{
		"10 LET N = 3",
		"20 PRINT N",
		"30 LET N = N - 1",
		"40 IF N > 0 THEN 20",
		"50 GOTO",
		"RUN",
	}, "\n")

	require.NoError(t, processLines(newStreamConsole(strings.NewReader(src), io.Discard), &out))
	require.Equal(t, "line 5: SYNTAX ERROR\n", out.String())

	// batch output from RUN goes to the console
	con := g.con.(*streamConsole)
	require.Equal(t, "3\n2\n1\n", con.out.(*bytes.Buffer).String())
}

func Test_reportError(t *testing.T) {
	resetInterp(t, "")

	var out bytes.Buffer

	reportError(&out, runtimeErrorAt(errDivisionByZero, 30))
	require.Equal(t, "DIVIDE BY ZERO at line 30\n", out.String())

	out.Reset()
	g.interactive = true
	reportError(&out, processLine("10 LET PRINT = 5"))
	require.Equal(t,
		"10 LET "+colorRedSeq+"PRINT"+colorResetSeq+" = 5\nSYNTAX ERROR\n",
		out.String())
}

func Test_processLines_sharedInput(t *testing.T) {
	out := resetInterp(t, "10 INPUT X\n20 PRINT X\nRUN\n5\n")

	var errs bytes.Buffer

	// the program and the answers to its INPUT come from one stream
	require.NoError(t, processLines(g.con, &errs))
	require.Equal(t, "", errs.String())
	require.Equal(t, " ? 5\n", out.String())
	require.Equal(t, 2, g.program.len())
}

func Test_processLine_keepsRawText(t *testing.T) {
	out := resetInterp(t, "")

	feedLines(t, "  10 PRINT 1  ", "\t", "20  LET A = 2")
	require.Equal(t, "  10 PRINT 1  ", g.program.get(10))
	require.Equal(t, "20  LET A = 2", g.program.get(20))

	feedLines(t, "LIST")
	require.Equal(t, "  10 PRINT 1  \n20  LET A = 2\n", out.String())
}
