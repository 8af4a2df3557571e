package fsa

import (
	"cmp"
	"iter"

	"github.com/bits-and-blooms/bitset"
)

// NFA is a non-deterministic finite automaton. Its current configuration is
// a set of states; a (state, symbol) pair with no entry, or with an empty
// target set, leads nowhere.
type NFA[S, A cmp.Ordered] struct {
	base[S, map[A][]S]
	engine *engine[S, A]
}

// NewNFA builds an NFA from its transition table, start state and final
// states.
func NewNFA[S, A cmp.Ordered](transitions map[S]map[A][]S, start S, finals Set[S], opts ...Option) (*NFA[S, A], error) {
	return NewNFAFromArgs(NFAArgs[S, A]{
		Transitions: transitions,
		Start:       start,
		Finals:      finals,
	}, opts...)
}

// NewNFAFromArgs builds an NFA from a definition bundle.
func NewNFAFromArgs[S, A cmp.Ordered](args NFAArgs[S, A], opts ...Option) (*NFA[S, A], error) {
	if err := validateTargets(args.Transitions); err != nil {
		return nil, err
	}
	o := newOptions(opts...)

	t := copyNondeterministic(args.Transitions)
	finals := args.Finals.clone()
	return &NFA[S, A]{
		base: base[S, map[A][]S]{
			transitions: t,
			start:       args.Start,
			finals:      finals,
		},
		engine: newEngine(t, args.Start, finals, o.cacheSize),
	}, nil
}

// Alphabet returns every symbol of the table in ascending order.
func (n *NFA[S, A]) Alphabet() []A {
	return rowKeys(n.transitions)
}

// Args returns a copy of the definition of n.
func (n *NFA[S, A]) Args() NFAArgs[S, A] {
	return NFAArgs[S, A]{
		Transitions: copyNondeterministic(n.transitions),
		Start:       n.start,
		Finals:      n.finals.clone(),
	}
}

// Move returns, in ascending order, every state reachable from some state in
// states by one transition on sym. States unknown to n contribute nothing.
func (n *NFA[S, A]) Move(sym A, states []S) []S {
	x := n.engine.index
	return x.members(n.engine.move(sym, x.set(states...)))
}

func (n *NFA[S, A]) startSet() *bitset.BitSet {
	return n.engine.index.set(n.start)
}

// Transition yields the set of current states before any symbol is consumed
// and after each symbol, |input|+1 values in all, each in ascending order.
func (n *NFA[S, A]) Transition(input []A) iter.Seq[[]S] {
	return func(yield func([]S) bool) {
		for set := range n.sets(input) {
			if !yield(n.engine.index.members(set)) {
				return
			}
		}
	}
}

func (n *NFA[S, A]) sets(input []A) iter.Seq[*bitset.BitSet] {
	return func(yield func(*bitset.BitSet) bool) {
		current := n.startSet()
		if !yield(current) {
			return
		}
		for _, sym := range input {
			current = n.engine.move(sym, current)
			if !yield(current) {
				return
			}
		}
	}
}

// Run returns the set of states n is in after consuming input.
func (n *NFA[S, A]) Run(input []A) []S {
	return n.engine.index.members(n.last(input))
}

func (n *NFA[S, A]) last(input []A) *bitset.BitSet {
	var current *bitset.BitSet
	for set := range n.sets(input) {
		current = set
	}
	return current
}

// Accept reports whether some state n can be in after consuming input is
// final. The error is always nil.
func (n *NFA[S, A]) Accept(input []A) (bool, error) {
	return n.engine.accepting(n.last(input)), nil
}

// Determinize converts n into an equivalent DFA by subset construction.
//
// By default every subset of n's states is enumerated, which is exponential
// in the number of states and is refused with ErrTooComplex above the limit
// set by WithStateLimit. WithReachableOnly builds only the subsets reachable
// from the start.
func (n *NFA[S, A]) Determinize(opts ...DeterminizeOption) (*Powerset[S, A], error) {
	return determinize(n.engine.index, n.Alphabet(), n.startSet(), n.engine.finals,
		func(sym A, set *bitset.BitSet) *bitset.BitSet {
			return n.engine.move(sym, set)
		}, newDeterminizeOptions(opts...))
}

// ToDFAArgs is Determinize returning only the DFA definition.
func (n *NFA[S, A]) ToDFAArgs(opts ...DeterminizeOption) (DFAArgs[string, A], error) {
	p, err := n.Determinize(opts...)
	if err != nil {
		return DFAArgs[string, A]{}, err
	}
	return p.Args, nil
}
