package fsa

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// binaryStrings returns every string over {0,1} of length 1 to maxLen.
func binaryStrings(maxLen int) []string {
	var out []string
	level := []string{""}
	for n := 1; n <= maxLen; n++ {
		next := make([]string, 0, 2*len(level))
		for _, prefix := range level {
			next = append(next, prefix+"0", prefix+"1")
		}
		out = append(out, next...)
		level = next
	}
	return out
}

func binaryValue(t *testing.T, s string) int64 {
	v, err := strconv.ParseInt(s, 2, 64)
	require.NoError(t, err)
	return v
}

func lastFive(s string) string {
	if len(s) <= 5 {
		return s
	}
	return s[len(s)-5:]
}

// onesModThree accepts strings whose number of "1"s is a multiple of 3.
func onesModThreeArgs() DFAArgs[string, string] {
	return DFAArgs[string, string]{
		Transitions: map[string]map[string]string{
			"q0": {"0": "q0", "1": "q1"},
			"q1": {"0": "q1", "1": "q2"},
			"q2": {"0": "q2", "1": "q0"},
		},
		Start:  "q0",
		Finals: NewSet("q0"),
	}
}

// valueModThreeArgs accepts binary numbers not divisible by 3. modulo-2 is
// unreachable.
func valueModThreeArgs() DFAArgs[string, string] {
	return DFAArgs[string, string]{
		Transitions: map[string]map[string]string{
			"modulo0":  {"0": "modulo0", "1": "modulo1"},
			"modulo1":  {"0": "modulo-1", "1": "modulo0"},
			"modulo-1": {"0": "modulo1", "1": "modulo-1"},
			"modulo-2": {"0": "modulo-2", "1": "modulo-2"},
		},
		Start:  "modulo0",
		Finals: NewSet("modulo1", "modulo-1"),
	}
}

// lastFiveArgs accepts strings with a "1" among their last five symbols.
func lastFiveArgs() NFAArgs[string, string] {
	return NFAArgs[string, string]{
		Transitions: map[string]map[string][]string{
			"q0": {"0": {"q0"}, "1": {"q0", "q1"}},
			"q1": {"0": {"q2"}, "1": {"q2"}},
			"q2": {"0": {"q3"}, "1": {"q3"}},
			"q3": {"0": {"q4"}, "1": {"q4"}},
			"q4": {"0": {"q5"}, "1": {"q5"}},
			"q5": {"0": {}, "1": {}},
		},
		Start:  "q0",
		Finals: NewSet("q1", "q2", "q3", "q4", "q5"),
	}
}

// modTwoOrThreeArgs accepts an optional "0b" prefix followed by a binary
// number divisible by 2 or by 3.
func modTwoOrThreeArgs() NFAArgs[string, string] {
	return NFAArgs[string, string]{
		Transitions: map[string]map[string][]string{
			"start":      {"0": {"0", "binary%2=0", "binary%3=0"}, "1": {"binary%2=1", "binary%3=1"}},
			"0":          {"0": {"0", "binary%2=0", "binary%3=0"}, "1": {"binary%2=1", "binary%3=1"}, "b": {"b"}},
			"b":          {"0": {"binary%2=0", "binary%3=0"}, "1": {"binary%2=1", "binary%3=1"}},
			"binary%2=0": {"0": {"binary%2=0"}, "1": {"binary%2=1"}, "b": {}},
			"binary%2=1": {"0": {"binary%2=0"}, "1": {"binary%2=1"}, "b": {}},
			"binary%3=0": {"0": {"binary%3=0"}, "1": {"binary%3=1"}},
			"binary%3=1": {"0": {"binary%3=2"}, "1": {"binary%3=0"}},
			"binary%3=2": {"0": {"binary%3=1"}, "1": {"binary%3=2"}},
		},
		Start:  "start",
		Finals: NewSet("0", "binary%2=0", "binary%3=0"),
	}
}

func modTwoOrThree(t *testing.T, s string) bool {
	s = strings.TrimPrefix(s, "0b")
	v := binaryValue(t, s)
	return v%2 == 0 || v%3 == 0
}

// divisibleArgs accepts binary numbers divisible by 2 or by 3. The epsilon
// move from q0 starts the parity tracker q1/q2 next to the modulo 3 tracker
// q0/q3/q4.
func divisibleArgs() ENFAArgs[string, string] {
	eps := Epsilon[string]()
	zero, one := On("0"), On("1")
	return ENFAArgs[string, string]{
		Transitions: map[string]map[Symbol[string]][]string{
			"q0": {zero: {"q0"}, one: {"q3"}, eps: {"q1"}},
			"q1": {zero: {"q1"}, one: {"q2"}},
			"q2": {zero: {"q1"}, one: {"q2"}},
			"q3": {zero: {"q4"}, one: {"q0"}},
			"q4": {zero: {"q3"}, one: {"q4"}},
		},
		Start:  "q0",
		Finals: NewSet("q0", "q1"),
	}
}
