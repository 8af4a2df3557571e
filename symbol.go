package fsa

import (
	"cmp"
	"fmt"
)

// Symbol labels an ε-NFA transition. It is either a real input symbol created
// with On, or the empty transition returned by Epsilon. An epsilon Symbol never
// equals On(x) for any x, including the empty string.
type Symbol[A cmp.Ordered] struct {
	value   A
	epsilon bool
}

// On wraps a real input symbol.
func On[A cmp.Ordered](a A) Symbol[A] {
	return Symbol[A]{value: a}
}

// Epsilon returns the empty-transition label.
func Epsilon[A cmp.Ordered]() Symbol[A] {
	return Symbol[A]{epsilon: true}
}

// IsEpsilon reports whether s is the empty-transition label.
func (s Symbol[A]) IsEpsilon() bool {
	return s.epsilon
}

// Value returns the wrapped symbol, or the zero value for epsilon.
func (s Symbol[A]) Value() A {
	return s.value
}

// String prints epsilon as "ε" and a real symbol as its value.
func (s Symbol[A]) String() string {
	if s.epsilon {
		return "ε"
	}
	return fmt.Sprint(s.value)
}

// compareSymbols orders epsilon before every real symbol.
func compareSymbols[A cmp.Ordered](a, b Symbol[A]) int {
	switch {
	case a.epsilon && b.epsilon:
		return 0
	case a.epsilon:
		return -1
	case b.epsilon:
		return 1
	}
	return cmp.Compare(a.value, b.value)
}
