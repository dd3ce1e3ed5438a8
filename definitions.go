package main

import (
	"sync/atomic"
	"time"

	"github.com/danswartzendruber/liner"
	"github.com/google/btree"
)

//
// Constants
//

const VERSION = "1.0.0"

const maxLineNumber = 1000000

const myPrompt = "% "

const inputPrompt = " ? "

const btreeDegree = 8

const colorRedSeq = "\033[31m"
const colorResetSeq = "\033[0m"

//
// Statement and command keywords.  Keywords are matched without
// regard to case, but variable names are case sensitive
//

const (
	kwLet   = "LET"
	kwRem   = "REM"
	kwPrint = "PRINT"
	kwInput = "INPUT"
	kwEnd   = "END"
	kwGoto  = "GOTO"
	kwIf    = "IF"
	kwThen  = "THEN"
	kwRun   = "RUN"
	kwList  = "LIST"
	kwHelp  = "HELP"
	kwQuit  = "QUIT"
	kwClear = "CLEAR"
	kwTrace = "TRACE"
	kwStats = "STATS"
)

//
// Names which may not be used as variables
//

var reservedNames = []string{kwLet, kwRem, kwGoto, kwIf, kwThen, kwInput,
	kwPrint, kwEnd, kwList, kwRun, kwQuit, kwHelp, kwClear, kwTrace, kwStats}

//
// Type definitions
//

type tokenKind int

const (
	eofToken tokenKind = iota
	wordToken
	numberToken
	operatorToken
)

//
// Location of a token within its source line.  Positions are 1-based
// byte offsets and end is inclusive
//

type tokenLoc struct {
	pos int
	end int
}

type token struct {
	text string
	kind tokenKind
	loc  tokenLoc
}

type tokenScanner struct {
	line   string
	tokens []token
	idx    int
	last   tokenLoc
}

//
// A single numbered line.  stmt is nil for comments
//

type programLine struct {
	number int
	text   string
	stmt   statement
}

type program struct {
	lines *btree.BTreeG[*programLine]
}

type controlBlock struct {
	jumpTarget  int
	jumpPending bool
	ended       bool
}

type evalState struct {
	bindings map[string]int64
	control  controlBlock
}

type basicErrorInfo struct {
	msg  string
	file string
	line int
}

type syntaxError struct {
	line string
	loc  tokenLoc
}

type runtimeError struct {
	err    error
	lineNo int
}

type settings struct {
	Prompt      string        `yaml:"prompt"`
	InputPrompt string        `yaml:"input_prompt"`
	History     bool          `yaml:"history"`
	Stats       bool          `yaml:"stats"`
	Trace       traceSettings `yaml:"trace"`
}

type traceSettings struct {
	Exec bool `yaml:"exec"`
	Vars bool `yaml:"vars"`
	Dump bool `yaml:"dump"`
}

//
// Global variables
//

var buildTimestampStr string

//
// This structure contains the persistent interpreter state
//

var g struct {
	program     *program
	state       *evalState
	con         console
	parserLiner *liner.State
	inputLiner  *liner.State
	settings    settings
	interrupted atomic.Bool
	running     atomic.Bool
	interactive bool
	exiting     bool
	printStats  bool
	traceExec   bool
	traceVars   bool
	traceDump   bool
}

//
// Runtime statistics for the executing program
//

var s struct {
	elapsed       time.Time
	utime         int64
	stime         int64
	numStatements int64
}

//
// This map is used to keep track of variables which are being traced
//

var tracedVarsMap = make(map[string]bool)
