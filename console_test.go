package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_streamConsole(t *testing.T) {
	var out bytes.Buffer

	con := newStreamConsole(strings.NewReader("one\r\ntwo\nthree"), &out)

	for _, want := range []string{"one", "two", "three"} {
		line, err := con.readLine("? ", false)
		require.NoError(t, err)
		require.Equal(t, want, line)
	}

	_, err := con.readLine("", true)
	require.ErrorIs(t, err, io.EOF)

	require.Equal(t, "? ? ? ", out.String())

	_, err = io.WriteString(con, "x\n")
	require.NoError(t, err)
	require.Equal(t, "? ? ? x\n", out.String())
}
