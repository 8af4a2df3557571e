package fsa

import (
	"cmp"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// stateIndex numbers every state an automaton can ever be in (table keys,
// transition targets and the start state) so that state sets can be held in
// bit sets. States are numbered in ascending order, which makes every derived
// enumeration deterministic.
type stateIndex[S cmp.Ordered] struct {
	states []S
	pos    map[S]uint
}

func newStateIndex[S cmp.Ordered](states []S) *stateIndex[S] {
	sorted := slices.Clone(states)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	x := &stateIndex[S]{
		states: sorted,
		pos:    make(map[S]uint, len(sorted)),
	}
	for i, s := range sorted {
		x.pos[s] = uint(i)
	}
	return x
}

// universe collects the start state, every table key and every target.
func universe[S cmp.Ordered, R any](t map[S]R, start S, targets func(R) []S) []S {
	states := []S{start}
	for s, row := range t {
		states = append(states, s)
		states = append(states, targets(row)...)
	}
	return states
}

func (x *stateIndex[S]) len() uint {
	return uint(len(x.states))
}

func (x *stateIndex[S]) empty() *bitset.BitSet {
	return bitset.New(x.len())
}

// set returns the bit set of states. States outside the index are dropped.
func (x *stateIndex[S]) set(states ...S) *bitset.BitSet {
	b := x.empty()
	for _, s := range states {
		if i, ok := x.pos[s]; ok {
			b.Set(i)
		}
	}
	return b
}

// finals is like set but takes a Set.
func (x *stateIndex[S]) finals(finals Set[S]) *bitset.BitSet {
	b := x.empty()
	for s := range finals {
		if i, ok := x.pos[s]; ok {
			b.Set(i)
		}
	}
	return b
}

// members returns the states of b in ascending order. The result is never nil.
func (x *stateIndex[S]) members(b *bitset.BitSet) []S {
	out := make([]S, 0, b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		out = append(out, x.states[i])
	}
	return out
}

// subset returns the set whose bits are those of mask, for full enumeration.
func (x *stateIndex[S]) subset(mask uint64) *bitset.BitSet {
	b := x.empty()
	for i := uint(0); i < x.len(); i++ {
		if mask&(1<<i) != 0 {
			b.Set(i)
		}
	}
	return b
}
