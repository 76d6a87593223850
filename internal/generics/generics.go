// Package generics implements generic data structure functions missing from the stdlib.
package generics

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// KeysSlice returns a newly allocated slice with the keys of the map, in no particular order.
func KeysSlice[M interface{ ~map[K]V }, K comparable, V any](m M) []K {
	return slices.Collect(maps.Keys(m))
}

// SortedKeys returns an iterator over the sorted keys of the given map.
//
// It extracts the keys, sort them and then iterate over, so it's convenient but not fast.
func SortedKeys[M interface{ ~map[K]V }, K cmp.Ordered, V any](m M) iter.Seq[K] {
	sortedKeys := KeysSlice(m)
	slices.Sort(sortedKeys)
	return slices.Values(sortedKeys)
}

// Set implements a Set for the key type T.
type Set[T comparable] map[T]struct{}

// MakeSet returns an empty Set of the given type. Size is optional, and if given
// will reserve the expected size.
func MakeSet[T comparable](size ...int) Set[T] {
	if len(size) == 0 {
		return make(Set[T])
	}
	return make(Set[T], size[0])
}

// Has returns true if Set s has the given key.
func (s Set[T]) Has(key T) bool {
	_, found := s[key]
	return found
}

// TryInsert inserts key and reports whether it was not yet in the set.
func (s Set[T]) TryInsert(key T) bool {
	if s.Has(key) {
		return false
	}
	s[key] = struct{}{}
	return true
}

// SortedFunc returns the elements of the set in a newly allocated slice, sorted with cmpFn.
func (s Set[T]) SortedFunc(cmpFn func(a, b T) int) []T {
	elements := slices.Collect(maps.Keys(s))
	slices.SortFunc(elements, cmpFn)
	return elements
}

// Stack is a LIFO work-list. The zero value is an empty stack ready to use.
type Stack[T any] struct {
	items []T
}

// Push appends the items to the top of the stack, the last one ending on top.
func (s *Stack[T]) Push(items ...T) {
	s.items = append(s.items, items...)
}

// Pop removes and returns the item at the top. ok is false if the stack was empty.
func (s *Stack[T]) Pop() (item T, ok bool) {
	n := len(s.items)
	if n == 0 {
		return item, false
	}
	item = s.items[n-1]
	s.items = s.items[:n-1]
	return item, true
}

// Len returns the number of items in the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}
