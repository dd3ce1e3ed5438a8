package main

import (
	"fmt"
	"strconv"
)

//
// Expressions form a closed family of node types.  The marker method
// keeps anything outside this file from posing as an expression, and
// evaluate() switches over the concrete types
//

type expr interface {
	exprNode()
}

type constExpr struct {
	value int64
}

type identExpr struct {
	name string
}

type negateExpr struct {
	operand expr
}

type compoundExpr struct {
	op  string
	lhs expr
	rhs expr
}

func (*constExpr) exprNode()    {}
func (*identExpr) exprNode()    {}
func (*negateExpr) exprNode()   {}
func (*compoundExpr) exprNode() {}

//
// Binding strength of the binary operators.  Anything that is not
// an arithmetic operator binds with strength 0, which ends the
// expression without consuming the token
//

func precedence(op string) int {

	switch op {
	case "+", "-":
		return 1

	case "*", "/":
		return 2
	}

	return 0
}

//
// Parse a complete expression.  Every remaining token must belong
// to it
//

func parseExpression(ts *tokenScanner) (expr, error) {

	e, err := readExpression(ts, 0)
	if err != nil {
		return nil, err
	}

	if ts.hasMoreTokens() {
		return nil, ts.errorAtNext()
	}

	return e, nil
}

//
// Precedence climbing: read a term, then keep folding in operators
// that bind more tightly than prec.  Equal precedence stops the inner
// call, which makes the binary operators left associative
//

func readExpression(ts *tokenScanner, prec int) (expr, error) {

	lhs, err := readTerm(ts)
	if err != nil {
		return nil, err
	}

	for {
		op := ts.nextToken()
		newPrec := precedence(op)

		if newPrec <= prec {
			ts.saveToken(op)
			break
		}

		rhs, err := readExpression(ts, newPrec)
		if err != nil {
			return nil, err
		}

		lhs = &compoundExpr{op: op, lhs: lhs, rhs: rhs}
	}

	return lhs, nil
}

func readTerm(ts *tokenScanner) (expr, error) {

	text := ts.nextToken()

	switch ts.tokenType(text) {
	case eofToken:
		return nil, ts.errorAtLast()

	case numberToken:
		value, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, ts.errorAtLast()
		}

		return &constExpr{value: value}, nil

	case wordToken:
		return &identExpr{name: text}, nil
	}

	switch text {
	case "(":
		e, err := readExpression(ts, 0)
		if err != nil {
			return nil, err
		}

		if ts.nextToken() != ")" {
			return nil, ts.errorAtLast()
		}

		return e, nil

	case "-":
		operand, err := readTerm(ts)
		if err != nil {
			return nil, err
		}

		return &negateExpr{operand: operand}, nil
	}

	return nil, ts.errorAtLast()
}

//
// Evaluate an expression against the current variable bindings.
// Operands are evaluated left to right
//

func evaluate(e expr, state *evalState) (int64, error) {

	switch e := e.(type) {
	default:
		unexpectedTypeError(e)

	case *constExpr:
		return e.value, nil

	case *identExpr:
		return state.getValue(e.name)

	case *negateExpr:
		v, err := evaluate(e.operand, state)
		if err != nil {
			return 0, err
		}

		return -v, nil

	case *compoundExpr:
		l, err := evaluate(e.lhs, state)
		if err != nil {
			return 0, err
		}

		r, err := evaluate(e.rhs, state)
		if err != nil {
			return 0, err
		}

		switch e.op {
		default:
			fatalError(fmt.Sprintf("Unexpected operator %q", e.op))

		case "+":
			return l + r, nil

		case "-":
			return l - r, nil

		case "*":
			return l * r, nil

		case "/":
			if r == 0 {
				return 0, errDivisionByZero
			}

			return l / r, nil
		}
	}

	panic(nil) // avoid compiler complaint
}

//
// Render an expression fully parenthesized, so the shape of the
// tree is visible (used by the trace code)
//

func exprString(e expr) string {

	switch e := e.(type) {
	default:
		unexpectedTypeError(e)

	case *constExpr:
		return strconv.FormatInt(e.value, 10)

	case *identExpr:
		return e.name

	case *negateExpr:
		return "-" + exprString(e.operand)

	case *compoundExpr:
		return "(" + exprString(e.lhs) + " " + e.op + " " +
			exprString(e.rhs) + ")"
	}

	panic(nil) // avoid compiler complaint
}
