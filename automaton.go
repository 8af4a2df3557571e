// Package fsa simulates deterministic, non-deterministic and epsilon
// non-deterministic finite automata, and converts the non-deterministic kinds
// into equivalent DFAs by subset construction.
//
// Automata are built once from a transition table, a start state and a set of
// final states, and are immutable afterwards. Derived automata (a shrunk DFA,
// the result of subset construction) are returned as new Args values.
package fsa

import (
	"cmp"
	"maps"
	"slices"
)

// Automaton is what every automaton kind offers.
type Automaton[S, A cmp.Ordered] interface {
	// States returns every state that has a row in the transition table, in
	// ascending order.
	States() []S

	// Alphabet returns every real symbol used by the transition table, in
	// ascending order. Epsilon is never included.
	Alphabet() []A

	// Accept reports whether the automaton accepts input.
	Accept(input []A) (bool, error)
}

var (
	_ Automaton[string, string] = (*DFA[string, string])(nil)
	_ Automaton[string, string] = (*NFA[string, string])(nil)
	_ Automaton[string, string] = (*ENFA[string, string])(nil)
)

// base holds the definition shared by every automaton kind. R is the type of
// a transition table row.
type base[S cmp.Ordered, R any] struct {
	transitions map[S]R
	start       S
	finals      Set[S]
}

// States returns the keys of the transition table in ascending order.
func (b *base[S, R]) States() []S {
	return slices.Sorted(maps.Keys(b.transitions))
}

// Start returns the start state.
func (b *base[S, R]) Start() S {
	return b.start
}

// Finals returns the final states in ascending order.
func (b *base[S, R]) Finals() []S {
	return b.finals.Sorted()
}

// IsFinal reports whether s is a final state.
func (b *base[S, R]) IsFinal(s S) bool {
	return b.finals.Has(s)
}

// rowKeys returns the sorted union of the keys of every row.
func rowKeys[S cmp.Ordered, K cmp.Ordered, V any](t map[S]map[K]V) []K {
	var keys []K
	for _, row := range t {
		for k := range row {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return slices.Compact(keys)
}
