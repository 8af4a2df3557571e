package fsa

import (
	"errors"
	"fmt"
)

var (
	// ErrConstruction is returned when an automaton is built from a malformed
	// definition.
	ErrConstruction = errors.New("invalid automaton definition")

	// ErrUndefinedTransition is returned when a DFA has no transition for the
	// current state and symbol.
	ErrUndefinedTransition = errors.New("undefined transition")

	// ErrUnknownState is returned when a DFA reaches a state that has no row in
	// its transition table.
	ErrUnknownState = errors.New("unknown state")

	// ErrLabelCollision is returned when two distinct subsets are given the
	// same label during subset construction.
	ErrLabelCollision = errors.New("subset label collision")

	// ErrTooComplex is returned when subset construction would exceed its
	// work limit.
	ErrTooComplex = errors.New("automaton too complex to determinize")
)

// TransitionError describes a failed deterministic step.
type TransitionError struct {
	// Step is the zero-based index of the symbol being consumed.
	Step   int
	State  any
	Symbol any
	Err    error
}

// Error names the step, state and symbol that failed.
func (e *TransitionError) Error() string {
	return fmt.Sprintf("step %d: state %v on %v: %v", e.Step, e.State, e.Symbol, e.Err)
}

// Unwrap returns ErrUndefinedTransition or ErrUnknownState.
func (e *TransitionError) Unwrap() error {
	return e.Err
}
