package main

import (
	"fmt"
	"io"
)

//
// The evaluation state holds the variable bindings, plus the control
// registers through which GOTO, IF and END talk to the run loop.
// Bindings survive RUN; only CLEAR wipes them
//

func newEvalState() *evalState {

	return &evalState{bindings: make(map[string]int64)}
}

//
// This function takes a variable name and returns its current value
//

func (st *evalState) getValue(name string) (int64, error) {

	v, ok := st.bindings[name]
	if !ok {
		return 0, errUndefined
	}

	return v, nil
}

func (st *evalState) setValue(name string, value int64) {

	st.bindings[name] = value
}

func (st *evalState) isDefined(name string) bool {

	_, ok := st.bindings[name]

	return ok
}

func (st *evalState) requestJump(target int) {

	st.control.jumpTarget = target
	st.control.jumpPending = true
}

func (st *evalState) signalEnd() {

	st.control.ended = true
}

func (st *evalState) hasEnded() bool {

	return st.control.ended
}

//
// Read and clear any pending jump.  The run loop calls this once
// per step
//

func (st *evalState) consumeJump() (int, bool) {

	if !st.control.jumpPending {
		return 0, false
	}

	target := st.control.jumpTarget
	st.control = controlBlock{ended: st.control.ended}

	return target, true
}

func (st *evalState) resetControl() {

	st.control = controlBlock{}
}

//
// Initialize the evaluation state to pristine state
//

func (st *evalState) clear() {

	st.bindings = make(map[string]int64)
	st.resetControl()
}

//
// Report an assignment if the variable (or all variables) is being
// traced
//

func traceVar(w io.Writer, st *evalState, name string, nval int64) {

	if !g.traceVars && !tracedVarsMap[name] {
		return
	}

	if st.isDefined(name) {
		fmt.Fprintf(w, "Variable %s changed from %d to %d\n", name,
			st.bindings[name], nval)
	} else {
		fmt.Fprintf(w, "Variable %s set to %d\n", name, nval)
	}
}
