package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_executeHelp(t *testing.T) {
	var out bytes.Buffer

	executeHelp(&out, "")
	require.Contains(t, out.String(), "trace\n")
	require.Contains(t, out.String(), "Statements: LET PRINT INPUT GOTO IF-THEN END REM\n")

	out.Reset()
	executeHelp(&out, "goto")
	require.Equal(t, "GOTO n\tContinue execution at line n\n", out.String())

	out.Reset()
	executeHelp(&out, "FROB")
	require.Equal(t, "No help for \"FROB\"\n", out.String())
}
