package llrb

import (
	"errors"
	"slices"
	"testing"
)

func TestAllIsRestartable(t *testing.T) {
	m := New[int, string]()
	for _, k := range []int{3, 1, 2} {
		m.Insert(k, string(rune('a'+k-1)))
	}
	for range 2 {
		var keys []int
		var vals []string
		for k, v := range m.All() {
			keys = append(keys, k)
			vals = append(vals, v)
		}
		if !slices.Equal(keys, []int{1, 2, 3}) || !slices.Equal(vals, []string{"a", "b", "c"}) {
			t.Errorf("unexpected iteration result %v %v", keys, vals)
		}
	}
	if got := slices.Collect(m.Values()); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("unexpected values %v", got)
	}
}

func TestAllStopsEarly(t *testing.T) {
	m := New[int, int]()
	for k := range 100 {
		m.Insert(k, k)
	}
	cnt := 0
	for k := range m.Keys() {
		if k == 9 {
			break
		}
		cnt++
	}
	if cnt != 9 {
		t.Errorf("expected to visit 9 keys before break, visited %d", cnt)
	}
}

func TestEachReturnsCallbackError(t *testing.T) {
	m := New[int, int]()
	for k := range 10 {
		m.Insert(k, k)
	}
	stop := errors.New("stop")
	var seen []int
	err := m.Each(func(k, _ int) error {
		seen = append(seen, k)
		if k == 4 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Fatalf("expected callback error to be returned, got %v", err)
	}
	if !slices.Equal(seen, []int{0, 1, 2, 3, 4}) {
		t.Errorf("unexpected visit order %v", seen)
	}
	if err := m.Each(nil); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for nil callback, got %v", err)
	}
}

func TestRange(t *testing.T) {
	m := New[int, int]()
	for k := 0; k < 50; k += 5 {
		m.Insert(k, k)
	}
	var got []int
	for k := range m.Range(12, 30) {
		got = append(got, k)
	}
	if !slices.Equal(got, []int{15, 20, 25, 30}) {
		t.Errorf("unexpected range result %v", got)
	}
	got = got[:0]
	for k := range m.Range(30, 12) {
		got = append(got, k)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result for inverted bounds, got %v", got)
	}
	got = got[:0]
	for k := range m.Range(-100, 100) {
		got = append(got, k)
		if k == 10 {
			break
		}
	}
	if !slices.Equal(got, []int{0, 5, 10}) {
		t.Errorf("unexpected range with early break %v", got)
	}
}

func TestLevels(t *testing.T) {
	m := New[int, int]()
	for range m.Levels() {
		t.Errorf("empty map should yield no levels")
	}
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		m.Insert(k, k)
	}
	var levels [][]int
	for level := range m.Levels() {
		var keys []int
		for _, n := range level {
			keys = append(keys, n.Key)
			if n.Red {
				t.Errorf("expected all nodes black, %d is red", n.Key)
			}
		}
		levels = append(levels, keys)
	}
	want := [][]int{{5}, {3, 8}, {1, 4, 7, 9}}
	if !slices.EqualFunc(levels, want, slices.Equal[[]int]) {
		t.Errorf("unexpected levels %v", levels)
	}
}

func TestLevelsParentIndex(t *testing.T) {
	m := New[int, int]()
	for k := 1; k <= 10; k++ {
		m.Insert(k, k)
	}
	var prev []NodeInfo[int, int]
	numRed := 0
	for level := range m.Levels() {
		for _, n := range level {
			if n.Red {
				numRed++
			}
			if prev == nil {
				if n.Parent != -1 || n.Depth != 0 {
					t.Errorf("root must have parent -1 and depth 0, has %d/%d", n.Parent, n.Depth)
				}
				continue
			}
			p := prev[n.Parent]
			if n.Depth != p.Depth+1 {
				t.Errorf("depth of %d is %d, parent depth is %d", n.Key, n.Depth, p.Depth)
			}
		}
		prev = level
	}
	if numRed != 2 { // 6 and 9 for sequence 1…10
		t.Errorf("expected 2 red nodes, found %d", numRed)
	}
}
