package fsa

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"maps"
	"slices"

	"github.com/olekukonko/tablewriter"
)

// TraceTransition yields exactly what Transition yields and writes one line
// per consumed symbol to w, such as "q0 --1--> q1".
func (d *DFA[S, A]) TraceTransition(w io.Writer, input []A) iter.Seq2[S, error] {
	return func(yield func(S, error) bool) {
		i := 0
		var previous S
		for state, err := range d.Transition(input) {
			switch {
			case err != nil:
				fmt.Fprintf(w, "%v --%v--> %v\n", previous, input[i-1], err)
			case i > 0:
				fmt.Fprintf(w, "%v --%v--> %v\n", previous, input[i-1], state)
			}
			if !yield(state, err) {
				return
			}
			previous = state
			i++
		}
	}
}

// TraceTransition yields exactly what Transition yields and writes one line
// per consumed symbol to w, such as "[q0] --1--> [q0 q1]".
func (n *NFA[S, A]) TraceTransition(w io.Writer, input []A) iter.Seq[[]S] {
	return traceSets(w, n.Transition(input), input, "")
}

// TraceTransition yields exactly what Transition yields and writes one line
// per consumed symbol to w, such as "[q0 q1] --1, ε--> [q2 q3]".
func (e *ENFA[S, A]) TraceTransition(w io.Writer, input []A) iter.Seq[[]S] {
	return traceSets(w, e.Transition(input), input, ", ε")
}

func traceSets[S, A any](w io.Writer, seq iter.Seq[[]S], input []A, suffix string) iter.Seq[[]S] {
	return func(yield func([]S) bool) {
		i := 0
		var previous []S
		for states := range seq {
			if i > 0 {
				fmt.Fprintf(w, "%v --%v%s--> %v\n", previous, input[i-1], suffix, states)
			}
			if !yield(states) {
				return
			}
			previous = states
			i++
		}
	}
}

// WriteTable renders the transition table of d to w.
func (d *DFA[S, A]) WriteTable(w io.Writer) error {
	var rows [][]string
	for _, s := range d.States() {
		row := d.transitions[s]
		for _, a := range slices.Sorted(maps.Keys(row)) {
			rows = append(rows, []string{stateCell(s, d.start, d.finals), fmt.Sprint(a), fmt.Sprint(row[a])})
		}
	}
	return renderTable(w, rows)
}

// WriteTable renders the transition table of n to w.
func (n *NFA[S, A]) WriteTable(w io.Writer) error {
	var rows [][]string
	for _, s := range n.States() {
		row := n.transitions[s]
		for _, a := range slices.Sorted(maps.Keys(row)) {
			rows = append(rows, []string{stateCell(s, n.start, n.finals), fmt.Sprint(a), targetsCell(row[a])})
		}
	}
	return renderTable(w, rows)
}

// WriteTable renders the transition table of e to w.
func (e *ENFA[S, A]) WriteTable(w io.Writer) error {
	var rows [][]string
	for _, s := range e.States() {
		row := e.transitions[s]
		syms := make([]Symbol[A], 0, len(row))
		for sym := range row {
			syms = append(syms, sym)
		}
		slices.SortFunc(syms, compareSymbols[A])
		for _, sym := range syms {
			rows = append(rows, []string{stateCell(s, e.start, e.finals), sym.String(), targetsCell(row[sym])})
		}
	}
	return renderTable(w, rows)
}

func renderTable(w io.Writer, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header("State", "Symbol", "Next")
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// stateCell marks the start state with "->" and final states with "*".
func stateCell[S cmp.Ordered](s, start S, finals Set[S]) string {
	cell := fmt.Sprint(s)
	if finals.Has(s) {
		cell = "*" + cell
	}
	if s == start {
		cell = "->" + cell
	}
	return cell
}

func targetsCell[S cmp.Ordered](targets []S) string {
	if len(targets) == 0 {
		return "∅"
	}
	sorted := slices.Clone(targets)
	slices.Sort(sorted)
	return fmt.Sprint(slices.Compact(sorted))
}
