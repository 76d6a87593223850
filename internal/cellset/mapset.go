package cellset

import (
	"github.com/janpfeifer/droplet/internal/generics"
	"github.com/janpfeifer/droplet/internal/geom"
	"github.com/janpfeifer/droplet/internal/parameters"
	"github.com/pkg/errors"
)

func init() {
	Register("map", newMapFactory)
}

// mapSet is a Set backed by a Go map.
type mapSet generics.Set[geom.Cube]

func newMapFactory(_ geom.Bounds, params parameters.Params) (Factory, error) {
	capacity, err := parameters.PopParamOr(params, "capacity", int64(0))
	if err != nil {
		return nil, err
	}
	if capacity < 0 || capacity > MaxCapacity {
		return nil, errors.Errorf("capacity must be in [0, %d], got %d", MaxCapacity, capacity)
	}
	return func() Set {
		return mapSet(generics.MakeSet[geom.Cube](int(capacity)))
	}, nil
}

func (s mapSet) Has(c geom.Cube) bool    { return generics.Set[geom.Cube](s).Has(c) }
func (s mapSet) Insert(c geom.Cube) bool { return generics.Set[geom.Cube](s).TryInsert(c) }
func (s mapSet) Len() int                { return len(s) }
