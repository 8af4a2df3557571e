package fsa

import (
	"cmp"
	"fmt"
	"iter"
)

// DFA is a deterministic finite automaton. Every state it can reach is
// expected to have a transition for every symbol it will be asked to
// consume; a missing one is reported as ErrUndefinedTransition.
type DFA[S, A cmp.Ordered] struct {
	base[S, map[A]S]
	index *stateIndex[S]
}

// NewDFA builds a DFA from its transition table, start state and final
// states.
func NewDFA[S, A cmp.Ordered](transitions map[S]map[A]S, start S, finals Set[S]) (*DFA[S, A], error) {
	return NewDFAFromArgs(DFAArgs[S, A]{
		Transitions: transitions,
		Start:       start,
		Finals:      finals,
	})
}

// NewDFAFromArgs builds a DFA from a definition bundle.
func NewDFAFromArgs[S, A cmp.Ordered](args DFAArgs[S, A]) (*DFA[S, A], error) {
	if args.Transitions == nil {
		return nil, fmt.Errorf("%w: nil transition table", ErrConstruction)
	}

	t := copyDeterministic(args.Transitions)
	return &DFA[S, A]{
		base: base[S, map[A]S]{
			transitions: t,
			start:       args.Start,
			finals:      args.Finals.clone(),
		},
		index: newStateIndex(universe(t, args.Start, func(row map[A]S) []S {
			targets := make([]S, 0, len(row))
			for _, next := range row {
				targets = append(targets, next)
			}
			return targets
		})),
	}, nil
}

// Alphabet returns every symbol of the table in ascending order.
func (d *DFA[S, A]) Alphabet() []A {
	return rowKeys(d.transitions)
}

// Args returns a copy of the definition of d.
func (d *DFA[S, A]) Args() DFAArgs[S, A] {
	return DFAArgs[S, A]{
		Transitions: copyDeterministic(d.transitions),
		Start:       d.start,
		Finals:      d.finals.clone(),
	}
}

// Next returns the state d moves to from state on sym.
func (d *DFA[S, A]) Next(state S, sym A) (S, error) {
	return d.step(state, sym, 0)
}

func (d *DFA[S, A]) step(state S, sym A, step int) (S, error) {
	var empty S
	row, ok := d.transitions[state]
	if !ok {
		return empty, &TransitionError{Step: step, State: state, Symbol: sym, Err: ErrUnknownState}
	}
	next, ok := row[sym]
	if !ok {
		return empty, &TransitionError{Step: step, State: state, Symbol: sym, Err: ErrUndefinedTransition}
	}
	return next, nil
}

// Transition yields the state before any symbol is consumed and then the
// state after each symbol, |input|+1 values in all. If a step fails the
// sequence yields the error once and stops.
func (d *DFA[S, A]) Transition(input []A) iter.Seq2[S, error] {
	return func(yield func(S, error) bool) {
		current := d.start
		if !yield(current, nil) {
			return
		}
		for i, sym := range input {
			next, err := d.step(current, sym, i)
			if err != nil {
				yield(next, err)
				return
			}
			current = next
			if !yield(current, nil) {
				return
			}
		}
	}
}

// Run returns the state d is in after consuming input.
func (d *DFA[S, A]) Run(input []A) (S, error) {
	var last S
	for state, err := range d.Transition(input) {
		if err != nil {
			return state, err
		}
		last = state
	}
	return last, nil
}

// Accept reports whether d stops in a final state after consuming input.
// A failed step is returned as a *TransitionError.
func (d *DFA[S, A]) Accept(input []A) (bool, error) {
	state, err := d.Run(input)
	if err != nil {
		return false, err
	}
	return d.IsFinal(state), nil
}

// Shrink returns the definition of d restricted to the states reachable from
// the start state. Final states that cannot be reached are dropped.
func (d *DFA[S, A]) Shrink() DFAArgs[S, A] {
	live := reachable(d.index, d.start, d.successors)

	t := make(map[S]map[A]S)
	for _, s := range d.index.members(live) {
		row, ok := d.transitions[s]
		if !ok {
			continue
		}
		r := make(map[A]S, len(row))
		for a, next := range row {
			r[a] = next
		}
		t[s] = r
	}

	finals := NewSet[S]()
	for s := range d.finals {
		if i, ok := d.index.pos[s]; ok && live.Test(i) {
			finals[s] = struct{}{}
		}
	}

	return DFAArgs[S, A]{
		Transitions: t,
		Start:       d.start,
		Finals:      finals,
	}
}

// IsEmpty reports whether d accepts no input at all.
func (d *DFA[S, A]) IsEmpty() bool {
	return isEmpty(d.index, d.start, d.finals, d.successors)
}

func (d *DFA[S, A]) successors(s S) []S {
	row := d.transitions[s]
	next := make([]S, 0, len(row))
	for _, target := range row {
		next = append(next, target)
	}
	return next
}
