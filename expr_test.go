package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParseExpr(t *testing.T, text string) expr {
	t.Helper()
	e, err := parseExpression(newTokenScanner(text))
	require.NoError(t, err, "parseExpression(%q)", text)
	return e
}

func Test_evaluate(t *testing.T) {
	state := newEvalState()
	state.setValue("X", 5)
	state.setValue("y", -2)

	for _, tc := range []struct {
		text  string
		value int64
		shape string
	}{
		{"1 + 2 * 3", 7, "(1 + (2 * 3))"},
		{"(1 + 2) * 3", 9, "((1 + 2) * 3)"},
		{"10 - 4 - 3", 3, "((10 - 4) - 3)"},
		{"100 / 10 / 5", 2, "((100 / 10) / 5)"},
		{"7 / 2", 3, "(7 / 2)"},
		{"-7 / 2", -3, "(-7 / 2)"},
		{"-X * 2", -10, "(-X * 2)"},
		{"-(X + 1)", -6, "-(X + 1)"},
		{"X * y - 1", -11, "((X * y) - 1)"},
		{"X - -3", 8, "(X - -3)"},
		{"((X))", 5, "X"},
		{"2 * 3 + 4 * 5", 26, "((2 * 3) + (4 * 5))"},
	} {
		t.Run(tc.text, func(t *testing.T) {
			e := mustParseExpr(t, tc.text)
			require.Equal(t, tc.shape, exprString(e))

			value, err := evaluate(e, state)
			require.NoError(t, err)
			require.Equal(t, tc.value, value)
		})
	}
}

func Test_evaluate_errors(t *testing.T) {
	state := newEvalState()
	state.setValue("Z", 0)

	_, err := evaluate(mustParseExpr(t, "1 / Z"), state)
	require.ErrorIs(t, err, errDivisionByZero)

	_, err = evaluate(mustParseExpr(t, "1 + nope"), state)
	require.ErrorIs(t, err, errUndefined)

	// the left operand is evaluated first
	_, err = evaluate(mustParseExpr(t, "nope / 0"), state)
	require.ErrorIs(t, err, errUndefined)
}

func Test_parseExpression_errors(t *testing.T) {
	for _, text := range []string{
		"",
		"1 +",
		"(1 + 2",
		"1 + 2)",
		"1 2",
		"* 3",
		"X = 1",
		"99999999999999999999",
	} {
		t.Run(text, func(t *testing.T) {
			_, err := parseExpression(newTokenScanner(text))
			require.ErrorIs(t, err, errSyntax)
		})
	}
}
