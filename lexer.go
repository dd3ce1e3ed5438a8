package main

import (
	"strings"
	"text/scanner"
	"unicode"
	"unicode/utf8"
)

//
// The tokenizer turns one line of text into a flat list of tokens
// up front, and the parsers then pull from that list.  There are
// only four kinds of token: words (keywords and variable names),
// unsigned integers, single character operators and the end of the
// line.  Negative numbers are a unary minus followed by a number
//

func newTokenScanner(line string) *tokenScanner {

	var s scanner.Scanner

	ts := &tokenScanner{line: line}

	s.Init(strings.NewReader(line))
	s.Mode = scanner.ScanIdents | scanner.ScanInts
	s.IsIdentRune = basicIdent
	s.Error = dummyScannerError

	for {
		tok := s.Scan()
		if tok == scanner.EOF {
			break
		}

		t := token{text: s.TokenText(), loc: getTokenLoc(&s)}

		switch tok {
		case scanner.Ident:
			t.kind = wordToken

		case scanner.Int:
			t.kind = numberToken

		default:
			t.kind = operatorToken
		}

		ts.tokens = append(ts.tokens, t)
	}

	return ts
}

//
// Return the text of the next token, or "" once the line is used up
//

func (ts *tokenScanner) nextToken() string {

	if ts.idx >= len(ts.tokens) {
		ts.last = ts.endLoc()
		return ""
	}

	t := ts.tokens[ts.idx]
	ts.idx++
	ts.last = t.loc

	return t.text
}

func (ts *tokenScanner) peekToken() string {

	if ts.idx >= len(ts.tokens) {
		return ""
	}

	return ts.tokens[ts.idx].text
}

//
// Push the most recently read token back.  Only one token of
// lookahead is supported, and pushing back "" (end of line) is a NOP
//

func (ts *tokenScanner) saveToken(text string) {

	if text == "" {
		return
	}

	basicAssert(ts.idx > 0 && ts.tokens[ts.idx-1].text == text,
		"saveToken: token "+text+" was not the last one read")

	ts.idx--
}

func (ts *tokenScanner) hasMoreTokens() bool {

	return ts.idx < len(ts.tokens)
}

//
// Classify a token by its text
//

func (ts *tokenScanner) tokenType(text string) tokenKind {

	return classifyToken(text)
}

func classifyToken(text string) tokenKind {

	if text == "" {
		return eofToken
	}

	ch, _ := utf8.DecodeRuneInString(text)

	switch {
	case unicode.IsLetter(ch):
		return wordToken

	case unicode.IsDigit(ch):
		return numberToken

	default:
		return operatorToken
	}
}

//
// Syntax errors point at either the token just read, or the one
// about to be read, so the REPL can highlight the culprit
//

func (ts *tokenScanner) errorAtLast() error {

	return &syntaxError{line: ts.line, loc: ts.last}
}

func (ts *tokenScanner) errorAtNext() error {

	if ts.idx >= len(ts.tokens) {
		return &syntaxError{line: ts.line, loc: ts.endLoc()}
	}

	return &syntaxError{line: ts.line, loc: ts.tokens[ts.idx].loc}
}

//
// The location just past the end of the line, used to diagnose
// a premature end of input
//

func (ts *tokenScanner) endLoc() tokenLoc {

	col := len(ts.line) + 1

	return tokenLoc{pos: col, end: col}
}

//
// This is a dummy to suppress reporting of errors by the scanner
//

func dummyScannerError(s *scanner.Scanner, msg string) {
}

//
// Ident predicate routine for text/scanner.  Identifiers start
// with a letter and continue with letters, digits or underscores
//

func basicIdent(ch rune, pos int) bool {

	if pos == 0 {
		return unicode.IsLetter(ch)
	}

	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_'
}

//
// This function takes the current scanner object, and gins up
// a tokenLoc object.  Because we only ever scan a single line,
// the byte offset into the line is all we need; columns would
// count characters, and could not be used to slice the line
//

func getTokenLoc(s *scanner.Scanner) tokenLoc {

	var loc tokenLoc

	loc.pos = s.Position.Offset + 1
	loc.end = s.Pos().Offset

	if loc.end < loc.pos {
		loc.end = loc.pos
	}

	return loc
}
