package ordered_test

import (
	"testing"

	"github.com/gx-org/fuser/base/ordered"
)

type entry struct {
	k string
	v int
}

func TestMap(t *testing.T) {
	tests := []struct {
		entries []entry
		want    []entry
	}{
		{
			entries: []entry{
				{k: "a", v: 1},
				{k: "b", v: 2},
				{k: "c", v: 3},
			},
			want: []entry{
				{k: "a", v: 1},
				{k: "b", v: 2},
				{k: "c", v: 3},
			},
		},
		{
			entries: []entry{
				{k: "a", v: 1},
				{k: "b", v: 2},
				{k: "a", v: 3},
			},
			want: []entry{
				{k: "a", v: 3},
				{k: "b", v: 2},
			},
		},
	}
	for ti, test := range tests {
		m := ordered.NewMap[string, int]()
		for _, entry := range test.entries {
			m.Store(entry.k, entry.v)
		}
		if m.Size() != len(test.want) {
			t.Errorf("test %d: map has %d entries but want %d", ti, m.Size(), len(test.want))
			continue
		}
		i := 0
		for k, v := range m.Iter() {
			want := test.want[i]
			if k != want.k || v != want.v {
				t.Errorf("test %d: entry %d is (%s, %d) but want (%s, %d)", ti, i, k, v, want.k, want.v)
			}
			i++
		}
	}
}

func TestMapSwap(t *testing.T) {
	m := ordered.NewMap[string, int]()
	m.Store("a", 1)
	m.Store("b", 2)
	if err := m.Swap("a", 3); err != nil {
		t.Fatalf("cannot swap existing key: %v", err)
	}
	if v, _ := m.Load("a"); v != 3 {
		t.Errorf("value for a is %d but want 3", v)
	}
	var keys []string
	for k := range m.Keys() {
		keys = append(keys, k)
	}
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("keys after swap are %v but want [a b]", keys)
	}
	if err := m.Swap("c", 4); err == nil {
		t.Errorf("swap of an absent key did not return an error")
	}
}
