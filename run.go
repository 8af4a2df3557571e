package fsa

import "cmp"

// Symbols splits s into one-rune string symbols, so that "101" reads as the
// sequence "1", "0", "1".
func Symbols(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// AcceptString reports whether a accepts s read one rune at a time.
func AcceptString[S cmp.Ordered](a Automaton[S, string], s string) (bool, error) {
	return a.Accept(Symbols(s))
}
