package fsa

import (
	"cmp"
	"slices"
)

// Automata builds small DFAs that are total over a fixed alphabet. States are
// numbered from 0, which is always the start state.
type Automata[A cmp.Ordered] struct {
	alphabet []A
}

// NewAutomata returns a factory for DFAs over alphabet.
func NewAutomata[A cmp.Ordered](alphabet ...A) *Automata[A] {
	sorted := slices.Clone(alphabet)
	slices.Sort(sorted)
	return &Automata[A]{alphabet: slices.Compact(sorted)}
}

// loop sends every symbol from state to dest.
func (f *Automata[A]) loop(t map[int]map[A]int, state, dest int) {
	row := make(map[A]int, len(f.alphabet))
	for _, a := range f.alphabet {
		row[a] = dest
	}
	t[state] = row
}

// MakeEmpty
// Returns a DFA accepting nothing.
func (f *Automata[A]) MakeEmpty() DFAArgs[int, A] {
	t := make(map[int]map[A]int)
	f.loop(t, 0, 0)
	return DFAArgs[int, A]{Transitions: t, Start: 0, Finals: NewSet[int]()}
}

// MakeEmptyString
// Returns a DFA accepting only the empty sequence.
func (f *Automata[A]) MakeEmptyString() DFAArgs[int, A] {
	t := make(map[int]map[A]int)
	f.loop(t, 0, 1)
	f.loop(t, 1, 1)
	return DFAArgs[int, A]{Transitions: t, Start: 0, Finals: NewSet(0)}
}

// MakeAnyString
// Returns a DFA accepting every sequence.
func (f *Automata[A]) MakeAnyString() DFAArgs[int, A] {
	t := make(map[int]map[A]int)
	f.loop(t, 0, 0)
	return DFAArgs[int, A]{Transitions: t, Start: 0, Finals: NewSet(0)}
}

// MakeString returns a DFA accepting exactly seq. Symbols of seq missing from
// the factory's alphabet are added to the produced table.
func (f *Automata[A]) MakeString(seq []A) DFAArgs[int, A] {
	g := NewAutomata(append(slices.Clone(f.alphabet), seq...)...)
	dead := len(seq) + 1

	t := make(map[int]map[A]int)
	for i, a := range seq {
		g.loop(t, i, dead)
		t[i][a] = i + 1
	}
	g.loop(t, len(seq), dead)
	g.loop(t, dead, dead)
	return DFAArgs[int, A]{Transitions: t, Start: 0, Finals: NewSet(len(seq))}
}
