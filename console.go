package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/danswartzendruber/liner"
)

//
// The console is where program output goes and where both the
// command loop and INPUT statements read lines from.  history says
// whether the line belongs in the scrollback history, which is only
// true for the command loop
//

type console interface {
	io.Writer
	readLine(prompt string, history bool) (string, error)
}

//
// Interactive console on a terminal, with line editing.  We use
// the two Liner instances set up by setupLiners
//

type linerConsole struct {
	parser *liner.State
	input  *liner.State
	out    io.Writer
}

func newLinerConsole() *linerConsole {

	return &linerConsole{parser: g.parserLiner, input: g.inputLiner,
		out: os.Stdout}
}

func (c *linerConsole) Write(p []byte) (int, error) {

	return c.out.Write(p)
}

func (c *linerConsole) readLine(prompt string, history bool) (string, error) {

	l := c.input
	if history {
		l = c.parser
	}

	return readLine(l, prompt, history && g.settings.History)
}

//
// Console over plain streams.  Used when standard input is not a
// terminal, and by the tests to script INPUT responses
//

type streamConsole struct {
	in  *bufio.Reader
	out io.Writer
}

func newStreamConsole(r io.Reader, w io.Writer) *streamConsole {

	return &streamConsole{in: bufio.NewReader(r), out: w}
}

func (c *streamConsole) Write(p []byte) (int, error) {

	return c.out.Write(p)
}

//
// A final line without a newline is still a line; io.EOF is only
// returned once there is nothing left at all
//

func (c *streamConsole) readLine(prompt string, history bool) (string, error) {

	if prompt != "" {
		fmt.Fprint(c.out, prompt)
	}

	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimRight(line, "\r\n"), nil
		}

		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}
