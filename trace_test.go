package fsa

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDFA_TraceTransition(t *testing.T) {
	d, err := NewDFAFromArgs(onesModThreeArgs())
	require.NoError(t, err)

	var buf bytes.Buffer
	var traced []string
	for state, err := range d.TraceTransition(&buf, Symbols("110")) {
		require.NoError(t, err)
		traced = append(traced, state)
	}

	var plain []string
	for state := range d.Transition(Symbols("110")) {
		plain = append(plain, state)
	}
	assert.Equal(t, plain, traced)
	assert.Equal(t, "q0 --1--> q1\nq1 --1--> q2\nq2 --0--> q2\n", buf.String())

	t.Run("failure", func(t *testing.T) {
		var buf bytes.Buffer
		var last error
		for _, err := range d.TraceTransition(&buf, Symbols("1x")) {
			last = err
		}
		assert.ErrorIs(t, last, ErrUndefinedTransition)

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "q0 --1--> q1", lines[0])
		assert.True(t, strings.HasPrefix(lines[1], "q1 --x--> step 1:"), lines[1])
	})
}

func TestNFA_TraceTransition(t *testing.T) {
	n, err := NewNFAFromArgs(lastFiveArgs())
	require.NoError(t, err)

	var buf bytes.Buffer
	var traced [][]string
	for states := range n.TraceTransition(&buf, Symbols("10")) {
		traced = append(traced, states)
	}

	var plain [][]string
	for states := range n.Transition(Symbols("10")) {
		plain = append(plain, states)
	}
	assert.Equal(t, plain, traced)
	assert.Equal(t, "[q0] --1--> [q0 q1]\n[q0 q1] --0--> [q0 q2]\n", buf.String())

	// stopping early writes nothing further
	buf.Reset()
	for range n.TraceTransition(&buf, Symbols("10")) {
		break
	}
	assert.Empty(t, buf.String())
}

func TestENFA_TraceTransition(t *testing.T) {
	e, err := NewENFAFromArgs(divisibleArgs())
	require.NoError(t, err)

	var buf bytes.Buffer
	var traced [][]string
	for states := range e.TraceTransition(&buf, Symbols("1")) {
		traced = append(traced, states)
	}
	assert.Equal(t, [][]string{{"q0", "q1"}, {"q2", "q3"}}, traced)
	assert.Equal(t, "[q0 q1] --1, ε--> [q2 q3]\n", buf.String())
}

func TestWriteTable(t *testing.T) {
	t.Run("dfa", func(t *testing.T) {
		d, err := NewDFAFromArgs(valueModThreeArgs())
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, d.WriteTable(&buf))
		out := buf.String()
		assert.Contains(t, out, "->modulo0")
		assert.Contains(t, out, "*modulo1")
		assert.Contains(t, out, "*modulo-1")
		assert.Contains(t, out, "modulo-2")
	})

	t.Run("nfa", func(t *testing.T) {
		n, err := NewNFAFromArgs(lastFiveArgs())
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, n.WriteTable(&buf))
		out := buf.String()
		assert.Contains(t, out, "->q0")
		assert.Contains(t, out, "[q0 q1]")
		assert.Contains(t, out, "*q5")
		assert.Contains(t, out, "∅")
	})

	t.Run("enfa", func(t *testing.T) {
		e, err := NewENFAFromArgs(divisibleArgs())
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, e.WriteTable(&buf))
		out := buf.String()
		assert.Contains(t, out, "->*q0")
		assert.Contains(t, out, "ε")
		assert.Contains(t, out, "[q1]")
	})
}
