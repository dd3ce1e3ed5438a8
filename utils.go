package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/danswartzendruber/liner"
	"github.com/tklauser/go-sysconf"
	"golang.org/x/term"
)

//
// Are we talking to a human?  If standard input and output are both
// terminals we use line editing, otherwise we read standard input as
// a plain stream
//

func isInteractive() bool {

	return term.IsTerminal(int(os.Stdin.Fd())) &&
		term.IsTerminal(int(os.Stdout.Fd()))
}

// We create two Liner instances.  One for the parser, and one for
// any INPUT statements.  We do this because we want a scrollback
// history for the parser, but not for user input.  We need to create
// and destroy them in LIFO order, as the Close method is documented
// as 'restoring the terminal to its previous state'
//

func setupLiners() {
	g.parserLiner = setupLiner()
	g.inputLiner = setupLiner()
}

func setupLiner() *liner.State {

	l := liner.NewLiner()

	l.SetCtrlCAborts(true)

	return l
}

//
// Restore terminal state
//
// We need to Close the Liner instances in reverse order, to make
// sure we end up back in cooked mode.  NB: we cannot call (or cause
// to be called) crash(), as that would recurse
//

func cleanupLiners() {
	cleanupLiner(&g.inputLiner)
	cleanupLiner(&g.parserLiner)
}

func cleanupLiner(linerState **liner.State) {

	if *linerState != nil {
		(*linerState).Close()
		*linerState = nil
	}
}

//
// Read a line from the terminal, with editing and (optionally)
// history.  ^C at the prompt comes back as errInterrupted, ^D at
// the beginning of the line as io.EOF
//

func readLine(l *liner.State, prompt string, history bool) (string, error) {

	s, err := l.Prompt(prompt)

	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", errInterrupted
		} else if errors.Is(err, io.EOF) {
			return "", io.EOF
		}

		return "", fmt.Errorf("readLine error: %w", err)
	}

	if history && strings.TrimSpace(s) != "" {
		l.AppendHistory(s)
	}

	return s, nil
}

//
// Check to see if sigHdlr has posted an interrupt
//

func checkInterrupts() error {

	if g.interrupted.Swap(false) {
		return errInterrupted
	}

	return nil
}

func switchSetting(b bool) string {

	if b {
		return "ON"
	} else {
		return "OFF"
	}
}

func pluralize(str string, num int64) string {

	//
	// Oddity: 0 is considered plural
	//

	if num != 1 {
		return str + "s"
	}

	return str
}

//
// Toggle trace flags.  Anything other than EXEC, VARS or DUMP is
// taken to be the name of a variable to (un)trace
//

func executeTrace(w io.Writer, args []string) {

	for _, arg := range args {

		switch strings.ToUpper(arg) {
		default:

			//
			// If (un)tracing specific variables, disable global
			// variable trace flag, if set
			//

			g.traceVars = false
			fmt.Fprintf(w, "Tracing variable %q ", arg)
			if tracedVarsMap[arg] {
				fmt.Fprintln(w, "disabled")
			} else {
				fmt.Fprintln(w, "enabled")
			}
			tracedVarsMap[arg] = !tracedVarsMap[arg]

		case "EXEC":
			g.traceExec = !g.traceExec
			fmt.Fprintf(w, "toggling traceExec %s\n", switchSetting(g.traceExec))

		case "VARS":
			g.traceVars = !g.traceVars
			fmt.Fprintf(w, "toggling traceVars %s\n", switchSetting(g.traceVars))

		case "DUMP":
			g.traceDump = !g.traceDump
			fmt.Fprintf(w, "toggling traceDump %s\n", switchSetting(g.traceDump))
		}
	}
}

func executeStats(w io.Writer) {

	g.printStats = !g.printStats
	fmt.Fprintf(w, "toggling stats %s\n", switchSetting(g.printStats))
}

//
// Initialize the clock
//

func initClock() {

	s.elapsed = time.Now()
	s.utime, s.stime, _ = getCPUInfo()
}

func resetStatistics() {

	s.utime = 0
	s.stime = 0
	s.numStatements = 0
}

func printStatistics(w io.Writer) {

	if !g.printStats {
		return
	}

	fmt.Fprintln(w)
	printCpuUsage(w)
	fmt.Fprintf(w, "%d %s executed\n", s.numStatements,
		pluralize("statement", s.numStatements))
}

func printCpuUsage(w io.Writer) {

	elapsed := time.Since(s.elapsed)

	utime, stime, err := getCPUInfo()
	if err != nil {
		fmt.Fprintf(w, "CPU Usage: elapsed = %s (%v)\n",
			formatCPUTime(int64(elapsed.Seconds())), err)
		return
	}

	fmt.Fprintf(w, "CPU Usage: elapsed = %s / user = %s / system = %s\n",
		formatCPUTime(int64(elapsed.Seconds())),
		formatCPUTime(utime-s.utime), formatCPUTime(stime-s.stime))
}

func formatCPUTime(t int64) string {

	var h, m int64

	if t >= 3600 {
		h = t / 3600
		t = t % 3600
	}

	if t >= 60 {
		m = t / 60
		t = t % 60
	}

	return fmt.Sprintf("%02d:%02d:%02d", h, m, t)
}

//
// Return user and system CPU time for this process, in seconds.
// Fields 14 and 15 of /proc/self/stat are in clock ticks
//

func getCPUInfo() (int64, int64, error) {

	clktck, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil {
		return 0, 0, err
	}

	if clktck <= 0 {
		return 0, 0, fmt.Errorf("bogus clock tick rate %d", clktck)
	}

	contents, err := os.ReadFile("/proc/self/stat")
	if err != nil {
		return 0, 0, err
	}

	return parseCPUTimes(string(contents), clktck)
}

func parseCPUTimes(stat string, clktck int64) (int64, int64, error) {

	//
	// The command name (field 2) is parenthesized and may contain
	// blanks, so start counting fields after the closing paren
	//

	if idx := strings.LastIndexByte(stat, ')'); idx >= 0 {
		stat = stat[idx+1:]
	}

	fields := strings.Fields(stat)
	if len(fields) < 13 {
		return 0, 0, fmt.Errorf("short /proc/self/stat (%d fields)", len(fields))
	}

	utime, err := strconv.ParseInt(fields[11], 10, 64)
	if err != nil {
		return 0, 0, err
	}

	stime, err := strconv.ParseInt(fields[12], 10, 64)
	if err != nil {
		return 0, 0, err
	}

	return utime / clktck, stime / clktck, nil
}

//
// This routine implements replacement of a substring, which can be
// longer, equal or shorter in length than the text it replaces.
// NB: the replaced substring can be empty (e.g. sloc and eloc are
// equal), in which case we're basically inserting the replacement
// string at that location
//

func replaceSubstring(src string, sloc, eloc int, rep string) string {

	return src[0:sloc] + rep + src[eloc:]
}

//
// Return a copy of the input string with the located token wrapped
// in the escape sequence.  A location past the end of the string
// (premature end of input) highlights a trailing blank instead
//

func colorizeString(str string, loc *tokenLoc, esc string) string {

	s := loc.pos - 1
	e := loc.end

	if s < 0 {
		return str
	}

	if s >= len(str) {
		return str + esc + " " + colorResetSeq
	}

	if e > len(str) {
		e = len(str)
	}

	return replaceSubstring(str, s, e, esc+str[s:e]+colorResetSeq)
}

//
// Print a fatal message and abort the process.  We write to standard
// error, since the user may have redirected standard output, and we
// would not see it then.  Make sure to call cleanupLiners, so the
// terminal state is sane
//

func crash(msg string) {

	var w *os.File

	cleanupLiners()

	if msg != "" {
		fd, err := syscall.Dup(int(os.Stderr.Fd()))
		if err == nil {
			os.Stdout.Close()
			os.Stderr.Close()
			w = os.NewFile(uintptr(fd), "stdout on new fd")
		} else {
			w = os.Stderr
		}

		fmt.Fprintln(w, msg)
	}

	os.Exit(1)
}
