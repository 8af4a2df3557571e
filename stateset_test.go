package fsa

import (
	"reflect"
	"testing"
)

func TestNewStateIndex(t *testing.T) {
	tests := []struct {
		name       string
		states     []string
		wantStates []string
	}{
		{
			name:       "Normal case",
			states:     []string{"q2", "q0", "q1"},
			wantStates: []string{"q0", "q1", "q2"},
		},
		{
			name:       "Duplicates",
			states:     []string{"b", "a", "b", "a"},
			wantStates: []string{"a", "b"},
		},
		{
			name:       "Empty",
			states:     nil,
			wantStates: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := newStateIndex(tt.states)
			if len(x.states) != len(tt.wantStates) || (len(x.states) > 0 && !reflect.DeepEqual(x.states, tt.wantStates)) {
				t.Errorf("states mismatch: got %v, want %v", x.states, tt.wantStates)
			}
			for i, s := range x.states {
				if x.pos[s] != uint(i) {
					t.Errorf("position of %v: got %d, want %d", s, x.pos[s], i)
				}
			}
			if x.len() != uint(len(tt.wantStates)) {
				t.Errorf("len mismatch: got %d, want %d", x.len(), len(tt.wantStates))
			}
		})
	}
}

func TestUniverse(t *testing.T) {
	table := map[int]map[string][]int{
		1: {"a": {2, 9}},
		2: {"b": {}},
	}
	x := newStateIndex(universe(table, 5, func(row map[string][]int) []int {
		var out []int
		for _, targets := range row {
			out = append(out, targets...)
		}
		return out
	}))

	if want := []int{1, 2, 5, 9}; !reflect.DeepEqual(x.states, want) {
		t.Errorf("universe mismatch: got %v, want %v", x.states, want)
	}
}

func TestStateIndexSets(t *testing.T) {
	x := newStateIndex([]string{"a", "b", "c", "d"})

	t.Run("set drops unknown states", func(t *testing.T) {
		b := x.set("d", "zz", "a")
		if got := x.members(b); !reflect.DeepEqual(got, []string{"a", "d"}) {
			t.Errorf("members mismatch: got %v", got)
		}
	})

	t.Run("members of the empty set", func(t *testing.T) {
		got := x.members(x.empty())
		if got == nil || len(got) != 0 {
			t.Errorf("want a non-nil empty slice, got %#v", got)
		}
	})

	t.Run("finals", func(t *testing.T) {
		b := x.finals(NewSet("c", "b", "nope"))
		if !b.Equal(x.set("b", "c")) {
			t.Errorf("finals mismatch: got %v", x.members(b))
		}
	})

	t.Run("subset", func(t *testing.T) {
		tests := []struct {
			mask uint64
			want []string
		}{
			{0, []string{}},
			{0b0001, []string{"a"}},
			{0b1010, []string{"b", "d"}},
			{0b1111, []string{"a", "b", "c", "d"}},
		}
		for _, tt := range tests {
			got := x.members(x.subset(tt.mask))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("subset %04b: got %v, want %v", tt.mask, got, tt.want)
			}
			if !x.subset(tt.mask).Equal(x.set(tt.want...)) {
				t.Errorf("subset %04b differs from the set of its members", tt.mask)
			}
		}
	})

	t.Run("hash", func(t *testing.T) {
		if hashSet(x.set("a", "c")) != hashSet(x.subset(0b0101)) {
			t.Errorf("equal sets hash differently")
		}
	})
}
