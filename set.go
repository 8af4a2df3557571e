package fsa

import (
	"cmp"
	"maps"
	"slices"
)

// Set is an unordered set of states.
type Set[S cmp.Ordered] map[S]struct{}

// NewSet returns a set holding items.
func NewSet[S cmp.Ordered](items ...S) Set[S] {
	s := make(Set[S], len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Has reports whether x is in the set.
func (s Set[S]) Has(x S) bool {
	_, ok := s[x]
	return ok
}

// Len returns the number of elements.
func (s Set[S]) Len() int {
	return len(s)
}

// Sorted returns the elements in ascending order.
func (s Set[S]) Sorted() []S {
	return slices.Sorted(maps.Keys(s))
}

// clone always returns a non-nil set, even for a nil receiver.
func (s Set[S]) clone() Set[S] {
	out := make(Set[S], len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}
