package generics

import (
	"cmp"
	"github.com/stretchr/testify/assert"
	"slices"
	"testing"
)

func TestSortedKeys(t *testing.T) {
	m := map[int]string{1: "1", 5: "5", 3: "3"}
	// Since the builtin map iterator in Go is deliberately non-deterministic, we
	// run it a bunch of times to show it is stably sorted.
	want := []int{1, 3, 5}
	for range 100 {
		got := slices.Collect(SortedKeys(m))
		if !slices.Equal(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestKeysSlice(t *testing.T) {
	got := KeysSlice(map[string]int{"a": 1, "b": 2})
	slices.Sort(got)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestSetTryInsert(t *testing.T) {
	s := MakeSet[string](10)
	assert.Len(t, s, 0)
	assert.False(t, s.Has("a"))
	assert.True(t, s.TryInsert("a"))
	assert.True(t, s.Has("a"))
	assert.False(t, s.TryInsert("a"))
	assert.True(t, s.TryInsert("b"))
	assert.Len(t, s, 2)
}

func TestSetSortedFunc(t *testing.T) {
	s := MakeSet[int]()
	for _, v := range []int{5, -1, 3, 0} {
		s.TryInsert(v)
	}
	assert.Equal(t, []int{-1, 0, 3, 5}, s.SortedFunc(cmp.Compare[int]))
	assert.Equal(t, []int{5, 3, 0, -1}, s.SortedFunc(func(a, b int) int { return cmp.Compare(b, a) }))
}

func TestStack(t *testing.T) {
	var s Stack[int]
	_, ok := s.Pop()
	assert.False(t, ok)

	s.Push(1, 2)
	s.Push(3)
	assert.Equal(t, 3, s.Len())
	for _, want := range []int{3, 2, 1} {
		got, ok := s.Pop()
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 0, s.Len())
}
