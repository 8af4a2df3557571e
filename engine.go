package fsa

import (
	"cmp"

	"github.com/bits-and-blooms/bitset"
)

// engine is the state-set machinery shared by NFA and ENFA. K is the key type
// of a table row: A for an NFA, Symbol[A] for an ε-NFA.
type engine[S cmp.Ordered, K comparable] struct {
	index   *stateIndex[S]
	rows    []map[K]*bitset.BitSet
	symbols map[K]int
	finals  *bitset.BitSet
	cache   *moveCache[*bitset.BitSet]
}

func newEngine[S cmp.Ordered, K comparable](t map[S]map[K][]S, start S, finals Set[S], cacheSize int) *engine[S, K] {
	index := newStateIndex(universe(t, start, func(row map[K][]S) []S {
		var targets []S
		for _, ts := range row {
			targets = append(targets, ts...)
		}
		return targets
	}))

	e := &engine[S, K]{
		index:   index,
		rows:    make([]map[K]*bitset.BitSet, index.len()),
		symbols: make(map[K]int),
		finals:  index.finals(finals),
		cache:   newMoveCache[*bitset.BitSet](cacheSize),
	}
	for s, row := range t {
		r := make(map[K]*bitset.BitSet, len(row))
		for k, targets := range row {
			if _, ok := e.symbols[k]; !ok {
				e.symbols[k] = len(e.symbols)
			}
			r[k] = index.set(targets...)
		}
		e.rows[index.pos[s]] = r
	}
	return e
}

// move returns the union of the targets of every state in set on sym. A
// missing entry and an empty target set both contribute nothing. The returned
// set may be shared with the cache and must not be modified.
func (e *engine[S, K]) move(sym K, set *bitset.BitSet) *bitset.BitSet {
	id, ok := e.symbols[sym]
	if !ok || set.None() {
		return e.index.empty()
	}

	key := newMoveKey(id, set)
	if v, ok := e.cache.Get(key); ok {
		return v
	}

	out := e.index.empty()
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		if t := e.rows[i][sym]; t != nil {
			out.InPlaceUnion(t)
		}
	}

	// the key keeps its own copy so callers stay free to reuse theirs
	e.cache.Set(newMoveKey(id, set.Clone()), out)
	return out
}

// closure returns the smallest superset of set closed under moves on sym.
func (e *engine[S, K]) closure(sym K, set *bitset.BitSet) *bitset.BitSet {
	out := set.Clone()
	if _, ok := e.symbols[sym]; !ok {
		return out
	}

	work := make([]uint, 0, out.Count())
	for i, ok := out.NextSet(0); ok; i, ok = out.NextSet(i + 1) {
		work = append(work, i)
	}
	for len(work) > 0 {
		i := work[len(work)-1]
		work = work[:len(work)-1]

		t := e.rows[i][sym]
		if t == nil {
			continue
		}
		for j, ok := t.NextSet(0); ok; j, ok = t.NextSet(j + 1) {
			if !out.Test(j) {
				out.Set(j)
				work = append(work, j)
			}
		}
	}
	return out
}

func (e *engine[S, K]) accepting(set *bitset.BitSet) bool {
	return set.IntersectionCardinality(e.finals) > 0
}
