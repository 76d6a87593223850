package cellset

import (
	"github.com/janpfeifer/droplet/internal/geom"
	"github.com/janpfeifer/droplet/internal/parameters"
	"github.com/pkg/errors"
)

func init() {
	Register("dense", newDenseFactory)
}

const (
	// DefaultMaxDenseCells is the default limit of cells (bits) the dense implementation accepts to allocate.
	DefaultMaxDenseCells = int64(1) << 30

	// MaxDenseCells is the largest accepted value for the "max_cells" parameter.
	MaxDenseCells = int64(1) << 40
)

// denseSet is a bitmap over all the cells of the bounds, indexed by geom.Bounds.Index.
type denseSet struct {
	bounds geom.Bounds
	bits   []uint64
	count  int
}

func newDenseFactory(bounds geom.Bounds, params parameters.Params) (Factory, error) {
	maxCells, err := parameters.PopParamOr(params, "max_cells", DefaultMaxDenseCells)
	if err != nil {
		return nil, err
	}
	if maxCells <= 0 || maxCells > MaxDenseCells {
		return nil, errors.Errorf("max_cells must be in [1, %d], got %d", MaxDenseCells, maxCells)
	}
	volume := bounds.Volume()
	if volume > maxCells {
		return nil, errors.Errorf("bounds %s hold %d cells, more than max_cells=%d", bounds, volume, maxCells)
	}
	numWords := (volume + 63) / 64
	return func() Set {
		return &denseSet{bounds: bounds, bits: make([]uint64, numWords)}
	}, nil
}

func (s *denseSet) Has(c geom.Cube) bool {
	if !s.bounds.Contains(c) {
		return false
	}
	idx := s.bounds.Index(c)
	return s.bits[idx>>6]&(1<<(idx&63)) != 0
}

func (s *denseSet) Insert(c geom.Cube) bool {
	if !s.bounds.Contains(c) {
		panicOutOfBounds(c, s.bounds)
	}
	idx := s.bounds.Index(c)
	word, mask := &s.bits[idx>>6], uint64(1)<<(idx&63)
	if *word&mask != 0 {
		return false
	}
	*word |= mask
	s.count++
	return true
}

func (s *denseSet) Len() int { return s.count }
