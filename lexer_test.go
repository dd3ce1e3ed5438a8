package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_tokenScanner(t *testing.T) {
	ts := newTokenScanner("10 LET x_1 = Y*(3+20)")

	var texts []string
	var kinds []tokenKind
	for ts.hasMoreTokens() {
		text := ts.nextToken()
		texts = append(texts, text)
		kinds = append(kinds, ts.tokenType(text))
	}

	require.Equal(t, []string{
		"10", "LET", "x_1", "=", "Y", "*", "(", "3", "+", "20", ")",
	}, texts)
	require.Equal(t, []tokenKind{
		numberToken, wordToken, wordToken, operatorToken, wordToken,
		operatorToken, operatorToken, numberToken, operatorToken,
		numberToken, operatorToken,
	}, kinds)

	require.Equal(t, "", ts.nextToken())
	require.Equal(t, eofToken, ts.tokenType(""))
}

func Test_tokenScanner_pushback(t *testing.T) {
	ts := newTokenScanner("PRINT 1")

	require.Equal(t, "PRINT", ts.peekToken())
	require.Equal(t, "PRINT", ts.nextToken())
	ts.saveToken("PRINT")
	require.Equal(t, "PRINT", ts.nextToken())
	require.Equal(t, "1", ts.nextToken())

	// pushing back the end of the line changes nothing
	require.Equal(t, "", ts.nextToken())
	ts.saveToken("")
	require.False(t, ts.hasMoreTokens())
	require.Equal(t, "", ts.peekToken())
}

func Test_tokenScanner_locations(t *testing.T) {
	ts := newTokenScanner("LET AB = 1")

	require.Equal(t, []tokenLoc{
		{pos: 1, end: 3},
		{pos: 5, end: 6},
		{pos: 8, end: 8},
	}, []tokenLoc{ts.tokens[0].loc, ts.tokens[1].loc, ts.tokens[2].loc})

	ts.nextToken()
	ts.nextToken()

	var se *syntaxError
	require.ErrorAs(t, ts.errorAtLast(), &se)
	require.Equal(t, tokenLoc{pos: 5, end: 6}, se.loc)
	require.Equal(t, "LET AB = 1", se.line)

	require.ErrorAs(t, ts.errorAtNext(), &se)
	require.Equal(t, tokenLoc{pos: 8, end: 8}, se.loc)

	ts.nextToken()
	ts.nextToken()
	require.ErrorAs(t, ts.errorAtNext(), &se)
	require.Equal(t, tokenLoc{pos: 11, end: 11}, se.loc)
}

func Test_tokenScanner_lastTokenLoc(t *testing.T) {
	ts := newTokenScanner("PRINT 123")
	require.Equal(t, tokenLoc{pos: 7, end: 9}, ts.tokens[1].loc)
}

func Test_classifyToken(t *testing.T) {
	for _, tc := range []struct {
		text string
		kind tokenKind
	}{
		{"", eofToken},
		{"abc", wordToken},
		{"Été", wordToken},
		{"42", numberToken},
		{"+", operatorToken},
		{"\"", operatorToken},
	} {
		t.Run(tc.text, func(t *testing.T) {
			require.Equal(t, tc.kind, classifyToken(tc.text))
		})
	}
}
