package fsa

import (
	"cmp"
	"iter"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// ENFA is an NFA whose table may also hold Epsilon transitions. The current
// configuration is always closed under epsilon moves: the start set is the
// closure of the start state and every step is a move followed by a closure.
type ENFA[S, A cmp.Ordered] struct {
	base[S, map[Symbol[A]][]S]
	engine *engine[S, Symbol[A]]
}

// NewENFA builds an ε-NFA from its transition table, start state and final
// states.
func NewENFA[S, A cmp.Ordered](transitions map[S]map[Symbol[A]][]S, start S, finals Set[S], opts ...Option) (*ENFA[S, A], error) {
	return NewENFAFromArgs(ENFAArgs[S, A]{
		Transitions: transitions,
		Start:       start,
		Finals:      finals,
	}, opts...)
}

// NewENFAFromArgs builds an ε-NFA from a definition bundle.
func NewENFAFromArgs[S, A cmp.Ordered](args ENFAArgs[S, A], opts ...Option) (*ENFA[S, A], error) {
	if err := validateTargets(args.Transitions); err != nil {
		return nil, err
	}
	o := newOptions(opts...)

	t := copyNondeterministic(args.Transitions)
	finals := args.Finals.clone()
	return &ENFA[S, A]{
		base: base[S, map[Symbol[A]][]S]{
			transitions: t,
			start:       args.Start,
			finals:      finals,
		},
		engine: newEngine(t, args.Start, finals, o.cacheSize),
	}, nil
}

// Alphabet returns the real symbols of the table; see Symbols for the list
// including epsilon.
func (e *ENFA[S, A]) Alphabet() []A {
	var out []A
	for _, sym := range e.Symbols() {
		if !sym.IsEpsilon() {
			out = append(out, sym.Value())
		}
	}
	return out
}

// Symbols returns every transition label of the table, epsilon first when
// present.
func (e *ENFA[S, A]) Symbols() []Symbol[A] {
	var syms []Symbol[A]
	for _, row := range e.transitions {
		for sym := range row {
			syms = append(syms, sym)
		}
	}
	slices.SortFunc(syms, compareSymbols[A])
	return slices.Compact(syms)
}

// Args returns a copy of the definition of e.
func (e *ENFA[S, A]) Args() ENFAArgs[S, A] {
	return ENFAArgs[S, A]{
		Transitions: copyNondeterministic(e.transitions),
		Start:       e.start,
		Finals:      e.finals.clone(),
	}
}

// Closure returns, in ascending order, the smallest set containing states
// and closed under epsilon moves. States unknown to e are dropped.
func (e *ENFA[S, A]) Closure(states []S) []S {
	x := e.engine.index
	return x.members(e.closure(x.set(states...)))
}

// Move returns the states reachable from states by exactly one transition on
// sym, without taking epsilon moves on either side.
func (e *ENFA[S, A]) Move(sym A, states []S) []S {
	x := e.engine.index
	return x.members(e.engine.move(On(sym), x.set(states...)))
}

func (e *ENFA[S, A]) closure(set *bitset.BitSet) *bitset.BitSet {
	return e.engine.closure(Epsilon[A](), set)
}

// step is a move on sym followed by an epsilon closure.
func (e *ENFA[S, A]) step(sym A, set *bitset.BitSet) *bitset.BitSet {
	return e.closure(e.engine.move(On(sym), set))
}

func (e *ENFA[S, A]) startSet() *bitset.BitSet {
	return e.closure(e.engine.index.set(e.start))
}

// Transition yields the epsilon closure of the start state and then the
// closed set of current states after each symbol, |input|+1 values in all.
func (e *ENFA[S, A]) Transition(input []A) iter.Seq[[]S] {
	return func(yield func([]S) bool) {
		for set := range e.sets(input) {
			if !yield(e.engine.index.members(set)) {
				return
			}
		}
	}
}

func (e *ENFA[S, A]) sets(input []A) iter.Seq[*bitset.BitSet] {
	return func(yield func(*bitset.BitSet) bool) {
		current := e.startSet()
		if !yield(current) {
			return
		}
		for _, sym := range input {
			current = e.step(sym, current)
			if !yield(current) {
				return
			}
		}
	}
}

// Run returns the closed set of states e is in after consuming input.
func (e *ENFA[S, A]) Run(input []A) []S {
	return e.engine.index.members(e.last(input))
}

func (e *ENFA[S, A]) last(input []A) *bitset.BitSet {
	var current *bitset.BitSet
	for set := range e.sets(input) {
		current = set
	}
	return current
}

// Accept reports whether some state e can be in after consuming input is
// final. The error is always nil.
func (e *ENFA[S, A]) Accept(input []A) (bool, error) {
	return e.engine.accepting(e.last(input)), nil
}

// Determinize converts e into an equivalent DFA by subset construction,
// folding epsilon moves away. The DFA starts in the subset labelled by the
// epsilon closure of e's start state. See NFA.Determinize for the options.
func (e *ENFA[S, A]) Determinize(opts ...DeterminizeOption) (*Powerset[S, A], error) {
	return determinize(e.engine.index, e.Alphabet(), e.startSet(), e.engine.finals,
		e.step, newDeterminizeOptions(opts...))
}

// ToDFAArgs is Determinize returning only the DFA definition.
func (e *ENFA[S, A]) ToDFAArgs(opts ...DeterminizeOption) (DFAArgs[string, A], error) {
	p, err := e.Determinize(opts...)
	if err != nil {
		return DFAArgs[string, A]{}, err
	}
	return p.Args, nil
}

// ToNFAArgs removes epsilon transitions, keeping e's states. A state q moves
// on a to the closure of the a-moves of the closure of q, and q is final when
// its closure holds a final state. The start state is unchanged.
func (e *ENFA[S, A]) ToNFAArgs() NFAArgs[S, A] {
	x := e.engine.index
	alphabet := e.Alphabet()

	t := make(map[S]map[A][]S, len(e.transitions))
	for s := range e.transitions {
		from := e.closure(x.set(s))
		row := make(map[A][]S, len(alphabet))
		for _, a := range alphabet {
			row[a] = x.members(e.step(a, from))
		}
		t[s] = row
	}

	finals := NewSet[S]()
	for _, s := range x.states {
		if e.engine.accepting(e.closure(x.set(s))) {
			finals[s] = struct{}{}
		}
	}

	return NFAArgs[S, A]{
		Transitions: t,
		Start:       e.start,
		Finals:      finals,
	}
}
