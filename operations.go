package fsa

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// reachable returns the states reachable from start, breadth first. Each
// state is visited once.
func reachable[S cmp.Ordered](x *stateIndex[S], start S, next func(S) []S) *bitset.BitSet {
	live := x.empty()
	i, ok := x.pos[start]
	if !ok {
		return live
	}

	workList := []S{start}
	live.Set(i)
	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]

		for _, dest := range next(s) {
			j, ok := x.pos[dest]
			if ok && !live.Test(j) {
				live.Set(j)
				workList = append(workList, dest)
			}
		}
	}
	return live
}

// isEmpty reports whether no final state is reachable from start.
func isEmpty[S cmp.Ordered](x *stateIndex[S], start S, finals Set[S], next func(S) []S) bool {
	if len(finals) == 0 {
		// Common case: nothing to reach
		return true
	}
	if finals.Has(start) {
		// Accepts the empty input
		return false
	}
	return reachable(x, start, next).IntersectionCardinality(x.finals(finals)) == 0
}

// Label returns the canonical name of a set of states: the distinct states
// in ascending order, each in Go syntax (strings are quoted), separated by
// commas and wrapped in braces. Distinct sets always get distinct labels.
func Label[S cmp.Ordered](states []S) string {
	sorted := slices.Clone(states)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	var sb strings.Builder
	sb.WriteByte('{')
	for i, s := range sorted {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%#v", s)
	}
	sb.WriteByte('}')
	return sb.String()
}

// labeler names subsets during one subset construction and checks that no
// label is ever shared by two distinct subsets.
type labeler[S cmp.Ordered] struct {
	index   *stateIndex[S]
	seen    map[string]*bitset.BitSet
	members map[string][]S
}

func newLabeler[S cmp.Ordered](x *stateIndex[S]) *labeler[S] {
	return &labeler[S]{
		index:   x,
		seen:    make(map[string]*bitset.BitSet),
		members: make(map[string][]S),
	}
}

// label returns the label of set and whether it is new.
func (l *labeler[S]) label(set *bitset.BitSet) (string, bool, error) {
	members := l.index.members(set)
	name := Label(members)
	if prev, ok := l.seen[name]; ok {
		if !prev.Equal(set) {
			return "", false, fmt.Errorf("%w: %s names both %v and %v",
				ErrLabelCollision, name, l.members[name], members)
		}
		return name, false, nil
	}
	l.seen[name] = set.Clone()
	l.members[name] = members
	return name, true, nil
}

// Powerset is the result of subset construction.
type Powerset[S, A cmp.Ordered] struct {
	// Args defines the DFA. Its states are subset labels, see Label.
	Args DFAArgs[string, A]

	// Members maps every DFA state to the NFA states it stands for.
	Members map[string][]S
}

// DFA builds the automaton defined by p.Args.
func (p *Powerset[S, A]) DFA() (*DFA[string, A], error) {
	return NewDFAFromArgs(p.Args)
}

// determinize runs subset construction. step maps a subset and a symbol to
// the next subset; start is the first subset. The empty subset stands for the
// dead state, so the produced table is total over alphabet for every state it
// declares.
func determinize[S, A cmp.Ordered](x *stateIndex[S], alphabet []A, start, finals *bitset.BitSet,
	step func(A, *bitset.BitSet) *bitset.BitSet, o *determinizeOptions) (*Powerset[S, A], error) {

	l := newLabeler(x)
	t := make(map[string]map[A]string)
	accept := NewSet[string]()

	addRow := func(set *bitset.BitSet, name string) ([]*bitset.BitSet, error) {
		var fresh []*bitset.BitSet
		row := make(map[A]string, len(alphabet))
		for _, a := range alphabet {
			next := step(a, set)
			nextName, isNew, err := l.label(next)
			if err != nil {
				return nil, err
			}
			if isNew {
				fresh = append(fresh, next)
			}
			row[a] = nextName
		}
		t[name] = row
		if set.IntersectionCardinality(finals) > 0 {
			accept[name] = struct{}{}
		}
		return fresh, nil
	}

	startName, _, err := l.label(start)
	if err != nil {
		return nil, err
	}

	if o.reachableOnly {
		workList := []*bitset.BitSet{start}
		for len(workList) > 0 {
			set := workList[0]
			workList = workList[1:]

			name, _, err := l.label(set)
			if err != nil {
				return nil, err
			}
			fresh, err := addRow(set, name)
			if err != nil {
				return nil, err
			}
			if len(l.seen) > o.subsetLimit {
				return nil, fmt.Errorf("%w: more than %d subsets", ErrTooComplex, o.subsetLimit)
			}
			workList = append(workList, fresh...)
		}
	} else {
		n := x.len()
		if int(n) > o.stateLimit || n > maxEnumerableStates {
			return nil, fmt.Errorf("%w: %d states exceed the limit of %d", ErrTooComplex, n, min(o.stateLimit, maxEnumerableStates))
		}
		for mask := uint64(0); mask < 1<<n; mask++ {
			set := x.subset(mask)
			name, _, err := l.label(set)
			if err != nil {
				return nil, err
			}
			if _, err := addRow(set, name); err != nil {
				return nil, err
			}
		}
	}

	return &Powerset[S, A]{
		Args: DFAArgs[string, A]{
			Transitions: t,
			Start:       startName,
			Finals:      accept,
		},
		Members: l.members,
	}, nil
}
