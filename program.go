package main

import (
	"fmt"
	"iter"

	"github.com/goforj/godump"
	"github.com/google/btree"
)

//
// The stored program is a B-tree of lines keyed by line number.
// These wrappers hide the B-tree from the rest of the interpreter,
// and give us one place to hang the trace hooks
//

func newProgram() *program {

	return &program{lines: btree.NewG[*programLine](btreeDegree, lineLess)}
}

func lineLess(a, b *programLine) bool {

	return a.number < b.number
}

func lineKey(number int) *programLine {

	return &programLine{number: number}
}

//
// Parse the text of a line and store it under the given number,
// replacing any line already there.  The text is the line as the
// user typed it, so a leading line number is skipped before parsing.
// If the text does not parse, the program is left untouched
//

func (p *program) insert(number int, text string) error {

	if number < 1 || number > maxLineNumber {
		return errLineNumber
	}

	ts := newTokenScanner(text)

	if ts.tokenType(ts.peekToken()) == numberToken {
		ts.nextToken()
	}

	stmt, err := parseStatement(ts)
	if err != nil {
		return err
	}

	if g.traceDump && stmt != nil {
		fmt.Println(stmtString(stmt))
		godump.Dump(stmt)
	}

	p.lines.ReplaceOrInsert(&programLine{number: number, text: text, stmt: stmt})

	return nil
}

//
// Removing a line that does not exist is a NOP
//

func (p *program) remove(number int) {

	p.lines.Delete(lineKey(number))
}

func (p *program) lookup(number int) *programLine {

	line, ok := p.lines.Get(lineKey(number))
	if !ok {
		return nil
	}

	return line
}

//
// Return the text of a line, or "" if there is no such line
//

func (p *program) get(number int) string {

	if line := p.lookup(number); line != nil {
		return line.text
	}

	return ""
}

func (p *program) firstLineNumber() (int, bool) {

	line, ok := p.lines.Min()
	if !ok {
		return 0, false
	}

	return line.number, true
}

//
// Return the smallest line number strictly greater than the one
// passed in
//

func (p *program) nextLineNumber(number int) (int, bool) {

	var next int
	var found bool

	p.lines.AscendGreaterOrEqual(lineKey(number+1), func(line *programLine) bool {
		next, found = line.number, true
		return false
	})

	return next, found
}

func (p *program) len() int {

	return p.lines.Len()
}

func (p *program) clear() {

	p.lines.Clear(false)
}

//
// The program text in line number order.  The sequence walks the
// tree afresh each time it is ranged over
//

func (p *program) list() iter.Seq[string] {

	return func(yield func(string) bool) {
		p.lines.Ascend(func(line *programLine) bool {
			return yield(line.text)
		})
	}
}
