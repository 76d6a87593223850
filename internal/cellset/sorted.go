package cellset

import (
	"github.com/janpfeifer/droplet/internal/geom"
	"github.com/janpfeifer/droplet/internal/parameters"
	"github.com/pkg/errors"
	"slices"
)

func init() {
	Register("sorted", newSortedFactory)
}

// sortedSet keeps the Morton keys of its cells in a sorted slice: lookups are a binary search, and
// insertions shift the tail of the slice.
type sortedSet struct {
	bounds geom.Bounds
	keys   []uint64
}

func newSortedFactory(bounds geom.Bounds, _ parameters.Params) (Factory, error) {
	if !bounds.Packable() {
		return nil, errors.Errorf("bounds %s too large for Morton keys (max %d cells per axis)",
			bounds, 1<<geom.MortonBits)
	}
	return func() Set {
		return &sortedSet{bounds: bounds}
	}, nil
}

func (s *sortedSet) Has(c geom.Cube) bool {
	if !s.bounds.Contains(c) {
		return false
	}
	_, found := slices.BinarySearch(s.keys, s.bounds.Pack(c))
	return found
}

func (s *sortedSet) Insert(c geom.Cube) bool {
	if !s.bounds.Contains(c) {
		panicOutOfBounds(c, s.bounds)
	}
	key := s.bounds.Pack(c)
	pos, found := slices.BinarySearch(s.keys, key)
	if found {
		return false
	}
	s.keys = slices.Insert(s.keys, pos, key)
	return true
}

func (s *sortedSet) Len() int { return len(s.keys) }
