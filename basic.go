package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"runtime/pprof"
	"strconv"
	"strings"
	"syscall"
)

func main() {

	//
	// We need to close the Liner instances in reverse order, to make
	// sure we end up back in normal (cooked) terminal mode
	//

	defer func() {
		cleanupLiners()
	}()

	initEnv()

	switch len(os.Args) {
	default:
		crash("Usage: basic [program]")

	case 1:
		// nothing to do

	case 2:
		if err := loadProgramFile(os.Args[1]); err != nil {
			fmt.Fprintln(g.con, err)
		}
	}

	if g.interactive {
		printVersionInfo(g.con)
	}

	//
	// Run the signal handling code in a goroutine
	//

	go sigHdlr()

	//
	// Loop forever, or until we quit
	//

	for !g.exiting {
		call(commandLoopStep)
	}
}

func initEnv() {

	path, required := settingsPath()

	cfg, err := loadSettings(path, required)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	applySettings(cfg)

	g.program = newProgram()
	g.state = newEvalState()
	g.interactive = isInteractive()

	if g.interactive {
		setupLiners()
		g.con = newLinerConsole()
	} else {
		g.con = newStreamConsole(os.Stdin, os.Stdout)
	}
}

func writeGoroutineStacks() {

	name := "goroutines-stacks"
	mode := (os.O_CREATE | os.O_WRONLY)

	dumpFile, err := os.OpenFile(name, mode, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to open %s (%v)\n", name, err)
		return
	}

	_ = pprof.Lookup("goroutine").WriteTo(dumpFile, 2)

	m := fmt.Sprintf("Dumping goroutine stacks to %v and exiting", name)

	crash(m)
}

func sigHdlr() {

	ch := make(chan os.Signal, 1)

	signal.Ignore(syscall.SIGTSTP)

	signal.Notify(ch, syscall.SIGQUIT)
	signal.Notify(ch, syscall.SIGINT)

	for {
		sig := <-ch

		switch sig {

		default:
			crash(fmt.Sprintf("Unexpected signal %d", sig))

		case syscall.SIGQUIT:
			writeGoroutineStacks() // does not return

		//
		// Outside RUN, with no terminal to read ^C for us, nobody
		// would ever look at the flag, so just quit.  During RUN the
		// flag is checked between statements, and by INPUT once its
		// line arrives
		//

		case syscall.SIGINT:
			if g.running.Load() || g.interactive {
				g.interrupted.Store(true)
			} else {
				crash("")
			}
		}
	}
}

//
// This procedure is called by the panic deferred recovery function.
// Errors in the user's program never get here, they come back as
// error values.  What does get here is either a call to fatalError
// (an interpreter bug we noticed), or a panic from the Go runtime
// (an interpreter bug we did not notice).  For the latter, we walk
// the call stack looking for 'runtime.gopanic', and report the next
// non-runtime frame, which is the code that actually blew up
//

func decodePanic(e any) {

	switch e := e.(type) {
	default:
		var panicFrame runtime.Frame
		var panicSeen bool
		var panicCount int

		pcs := make([]uintptr, 99)

		frames := runtime.CallersFrames(pcs[:runtime.Callers(1, pcs)])

		for {
			frame, more := frames.Next()

			if frame.Function == "runtime.gopanic" {
				panicSeen = true
				panicCount++
			} else if panicSeen {
				if !strings.HasPrefix(frame.Function, "runtime.") {
					panicFrame = frame
					panicSeen = false
				}
			}

			if !more {
				break
			}
		}

		if panicCount == 0 { // impossible?
			crash("Unable to locate panic caller")
		}

		fmt.Printf("%v at %s line %d\n", e, filepath.Base(panicFrame.File),
			panicFrame.Line)

		debug.PrintStack()

	case *basicErrorInfo:
		fmt.Printf("%q at %s line %d\n", e.msg, filepath.Base(e.file), e.line)

		debug.PrintStack()
	}

	g.running.Store(false)
}

//
// Wrapper routine for a function.  We need this so that panic calls
// can be caught and decoded before returning to our caller
//

func call(f func()) {

	defer func() {
		err := recover()
		if err != nil {
			decodePanic(err)
		}
	}()

	f()
}

//
// A couple of handy 'assert' functions
//

func basicAssert(chk bool, msg string) {

	if !chk {
		fatalError(msg)
	}
}

func unexpectedTypeError(item any) {

	fatalError(fmt.Sprintf("Unexpected type %T", item))
}

//
// Runtime errors raised by the interpreter itself.  We find filename
// and line number of our caller, and stuff those into the
// basicErrorInfo structure before calling panic
//

func fatalError(msg string) {

	_, file, line, ok := runtime.Caller(2)
	if !ok {
		crash("Unable to find caller frame!\n")
	}

	msg = strings.TrimRight(msg, "\n")

	panic(&basicErrorInfo{msg, file, line})
}

//
// Read one line at the command prompt and process it.  ^C at the
// prompt just gives a fresh prompt, EOF (^D) exits
//

func commandLoopStep() {

	prompt := ""
	if g.interactive {
		prompt = g.settings.Prompt
	}

	line, err := g.con.readLine(prompt, true)
	if err != nil {
		if errors.Is(err, io.EOF) {
			g.exiting = true
		} else if !errors.Is(err, errInterrupted) {
			crash(err.Error())
		}

		return
	}

	if err := processLine(line); err != nil {
		reportError(g.con, err)
	}
}

//
// Process a single line entered by the user: a command, a numbered
// line to store (or delete, if nothing follows the number), or a
// statement to execute immediately.  Stored lines keep their text
// exactly as typed
//

func processLine(line string) error {

	if strings.TrimSpace(line) == "" {
		return nil
	}

	ts := newTokenScanner(line)
	first := ts.nextToken()

	switch ts.tokenType(first) {
	case numberToken:
		lineNo, err := strconv.Atoi(first)
		if err != nil {
			return ts.errorAtLast()
		}

		if !ts.hasMoreTokens() {
			g.program.remove(lineNo)
			return nil
		}

		return g.program.insert(lineNo, line)

	case wordToken:
		return processCommand(ts, first, line)
	}

	return ts.errorAtLast()
}

func processCommand(ts *tokenScanner, first, line string) error {

	var args []string

	cmd := strings.ToUpper(first)

	switch cmd {
	default:
		return executeImmediate(line, g.state, g.con)

	case kwRun, kwList, kwClear, kwQuit, kwStats:
		if ts.hasMoreTokens() {
			return ts.errorAtNext()
		}

	case kwHelp:
		if arg := ts.nextToken(); arg != "" {
			args = append(args, arg)
		}

		if ts.hasMoreTokens() {
			return ts.errorAtNext()
		}

	case kwTrace:
		for ts.hasMoreTokens() {
			arg := ts.nextToken()
			if ts.tokenType(arg) != wordToken {
				return ts.errorAtLast()
			}

			args = append(args, arg)
		}

		if len(args) == 0 {
			return ts.errorAtNext()
		}
	}

	switch cmd {
	case kwRun:
		return executeRun(g.program, g.state, g.con)

	case kwList:
		executeList(g.program, g.con)

	case kwClear:
		executeClear(g.program, g.state)

	case kwQuit:
		g.exiting = true

	case kwStats:
		executeStats(g.con)

	case kwHelp:
		executeHelp(g.con, strings.Join(args, ""))

	case kwTrace:
		executeTrace(g.con, args)
	}

	return nil
}

//
// Tell the user what went wrong.  For syntax errors on a terminal,
// echo the line with the offending token in red first
//

func reportError(w io.Writer, err error) {

	var se *syntaxError

	if g.interactive && errors.As(err, &se) && se.line != "" &&
		se.loc.pos != 0 {
		fmt.Fprintln(w, colorizeString(se.line, &se.loc, colorRedSeq))
	}

	fmt.Fprintln(w, err.Error())
}

//
// Feed a program file through processLine, as if it had been typed.
// "-" means standard input
//

func loadProgramFile(filename string) error {

	//
	// Standard input is already being read by the console, and INPUT
	// statements run from the batch must see the lines that follow,
	// so we read through the console rather than a second reader
	//

	if filename == "-" {
		return processLines(g.con, g.con)
	}

	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("unable to open %s: %w", filename, err)
	}
	defer f.Close()

	return processLines(newStreamConsole(f, io.Discard), g.con)
}

func processLines(src console, w io.Writer) error {

	for n := 1; !g.exiting; n++ {
		line, err := src.readLine("", false)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return err
		}

		if err := processLine(line); err != nil {
			fmt.Fprintf(w, "line %d: ", n)
			reportError(w, err)
		}
	}

	return nil
}

func printVersionInfo(w io.Writer) {

	fmt.Fprintf(w, "Integer BASIC version %s - built %s\n",
		VERSION, buildTimestampStr)
}
