package main

import (
	"strconv"
	"strings"
)

//
// Statements, like expressions, are a closed set of node types.
// Each one is built once by its parser and never modified; entering
// a line again builds a new statement
//

type statement interface {
	keyword() string
}

type letStmt struct {
	name  string
	value expr
}

type printStmt struct {
	value expr
}

type inputStmt struct {
	name string
}

type endStmt struct{}

type gotoStmt struct {
	target int
}

type ifStmt struct {
	op     string
	lhs    expr
	rhs    expr
	target int
}

func (*letStmt) keyword() string   { return kwLet }
func (*printStmt) keyword() string { return kwPrint }
func (*inputStmt) keyword() string { return kwInput }
func (*endStmt) keyword() string   { return kwEnd }
func (*gotoStmt) keyword() string  { return kwGoto }
func (*ifStmt) keyword() string    { return kwIf }

//
// Parse one statement.  A blank line or a REM yields a nil statement
// and no error.  Whatever the statement parser leaves behind is a
// syntax error
//

func parseStatement(ts *tokenScanner) (statement, error) {

	var stmt statement
	var err error

	text := ts.nextToken()

	switch ts.tokenType(text) {
	case eofToken:
		return nil, nil

	case wordToken:
		// handled below

	default:
		return nil, ts.errorAtLast()
	}

	switch strings.ToUpper(text) {
	default:
		return nil, ts.errorAtLast()

	case kwRem:
		return nil, nil

	case kwLet:
		stmt, err = parseLet(ts)

	case kwPrint:
		stmt, err = parsePrint(ts)

	case kwInput:
		stmt, err = parseInput(ts)

	case kwEnd:
		stmt = &endStmt{}

	case kwGoto:
		stmt, err = parseGoto(ts)

	case kwIf:
		stmt, err = parseIf(ts)
	}

	if err != nil {
		return nil, err
	}

	if ts.hasMoreTokens() {
		return nil, ts.errorAtNext()
	}

	return stmt, nil
}

//
// LET name = expr
//

func parseLet(ts *tokenScanner) (statement, error) {

	name, err := parseVariableName(ts)
	if err != nil {
		return nil, err
	}

	if ts.nextToken() != "=" {
		return nil, ts.errorAtLast()
	}

	value, err := parseExpression(ts)
	if err != nil {
		return nil, err
	}

	return &letStmt{name: name, value: value}, nil
}

//
// PRINT expr
//

func parsePrint(ts *tokenScanner) (statement, error) {

	value, err := parseExpression(ts)
	if err != nil {
		return nil, err
	}

	return &printStmt{value: value}, nil
}

//
// INPUT name
//

func parseInput(ts *tokenScanner) (statement, error) {

	name, err := parseVariableName(ts)
	if err != nil {
		return nil, err
	}

	return &inputStmt{name: name}, nil
}

//
// GOTO n
//

func parseGoto(ts *tokenScanner) (statement, error) {

	target, err := parseTargetLine(ts)
	if err != nil {
		return nil, err
	}

	return &gotoStmt{target: target}, nil
}

//
// IF lhs op rhs THEN n, where op is one of '=', '<' or '>'.  The
// expression parser stops in front of the comparison operator and
// in front of THEN, as neither is an arithmetic operator
//

func parseIf(ts *tokenScanner) (statement, error) {

	lhs, err := readExpression(ts, 0)
	if err != nil {
		return nil, err
	}

	op := ts.nextToken()

	switch op {
	default:
		return nil, ts.errorAtLast()

	case "=", "<", ">":
	}

	rhs, err := readExpression(ts, 0)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(ts.nextToken(), kwThen) {
		return nil, ts.errorAtLast()
	}

	target, err := parseTargetLine(ts)
	if err != nil {
		return nil, err
	}

	return &ifStmt{op: op, lhs: lhs, rhs: rhs, target: target}, nil
}

//
// A variable name is any word that is not a keyword
//

func parseVariableName(ts *tokenScanner) (string, error) {

	name := ts.nextToken()

	if ts.tokenType(name) != wordToken || isReservedName(name) {
		return "", ts.errorAtLast()
	}

	return name, nil
}

func isReservedName(name string) bool {

	for _, rname := range reservedNames {
		if strings.EqualFold(name, rname) {
			return true
		}
	}

	return false
}

//
// The target of a GOTO or IF must be a literal line number.  Whether
// that line exists is only known when the jump is taken
//

func parseTargetLine(ts *tokenScanner) (int, error) {

	text := ts.nextToken()

	if ts.tokenType(text) != numberToken {
		return 0, ts.errorAtLast()
	}

	target, err := strconv.Atoi(text)
	if err != nil {
		return 0, ts.errorAtLast()
	}

	return target, nil
}

//
// Render a statement in canonical form, with its expressions fully
// parenthesized.  TRACE DUMP prints this ahead of the node dump
//

func stmtString(stmt statement) string {

	switch stmt := stmt.(type) {
	default:
		unexpectedTypeError(stmt)

	case *letStmt:
		return kwLet + " " + stmt.name + " = " + exprString(stmt.value)

	case *printStmt:
		return kwPrint + " " + exprString(stmt.value)

	case *inputStmt:
		return kwInput + " " + stmt.name

	case *endStmt:
		return kwEnd

	case *gotoStmt:
		return kwGoto + " " + strconv.Itoa(stmt.target)

	case *ifStmt:
		return kwIf + " " + exprString(stmt.lhs) + " " + stmt.op + " " +
			exprString(stmt.rhs) + " " + kwThen + " " +
			strconv.Itoa(stmt.target)
	}

	panic(nil) // avoid compiler complaint
}
