package fsa

import (
	"cmp"
	"fmt"
	"slices"
)

// Args is the immutable definition of an automaton: its transition table,
// start state and final states. Constructors accept an Args and derivations
// such as DFA.Shrink and subset construction return one, so a result can be
// handed to whichever automaton kind should consume it.
type Args[S cmp.Ordered, R any] struct {
	Transitions map[S]R
	Start       S
	Finals      Set[S]
}

// DFAArgs maps each (state, symbol) pair to exactly one target.
type DFAArgs[S, A cmp.Ordered] = Args[S, map[A]S]

// NFAArgs maps each (state, symbol) pair to a set of targets. A missing
// symbol and an empty target slice both mean "no transition"; a nil target
// slice is rejected.
type NFAArgs[S, A cmp.Ordered] = Args[S, map[A][]S]

// ENFAArgs is NFAArgs whose symbols may also be Epsilon.
type ENFAArgs[S, A cmp.Ordered] = Args[S, map[Symbol[A]][]S]

func copyDeterministic[S, A cmp.Ordered](t map[S]map[A]S) map[S]map[A]S {
	out := make(map[S]map[A]S, len(t))
	for s, row := range t {
		r := make(map[A]S, len(row))
		for a, next := range row {
			r[a] = next
		}
		out[s] = r
	}
	return out
}

func copyNondeterministic[S cmp.Ordered, K comparable](t map[S]map[K][]S) map[S]map[K][]S {
	out := make(map[S]map[K][]S, len(t))
	for s, row := range t {
		r := make(map[K][]S, len(row))
		for k, targets := range row {
			r[k] = slices.Clone(targets)
		}
		out[s] = r
	}
	return out
}

// validateTargets rejects nil target slices. An explicit dead transition must
// be written as an empty set, []S{}.
func validateTargets[S cmp.Ordered, K comparable](t map[S]map[K][]S) error {
	if t == nil {
		return fmt.Errorf("%w: nil transition table", ErrConstruction)
	}
	for s, row := range t {
		for k, targets := range row {
			if targets == nil {
				return fmt.Errorf("%w: state %v on %v has a nil target, use an empty set for a dead transition",
					ErrConstruction, s, k)
			}
		}
	}
	return nil
}
