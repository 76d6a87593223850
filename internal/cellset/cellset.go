// Package cellset provides sets of lattice cells with pluggable implementations.
//
// Implementations register themselves by name (see Register) and are selected at run time by a configuration
// string of the form "name:key1=value1,key2=value2", see New. The registered ones are:
//
//   - map: a Go map of cubes. Parameter "capacity" (at most MaxCapacity) pre-allocates space. Works for any bounds.
//   - dense: a bitmap covering the bounds, one bit per cell. Parameter "max_cells" (default 1<<30, at most
//     MaxDenseCells) limits the volume of the bounds it accepts.
//   - sorted: a sorted slice of Morton keys, an ordered set. Requires packable bounds (see geom.Bounds.Packable).
//   - hashed: an open-addressing hash table of Morton keys hashed with xxhash. Parameter "capacity" is the
//     initial number of slots. Requires packable bounds.
//
// Except for map, inserting a cell outside the bounds the set was created for panics with an error wrapping
// geom.ErrInvalidGeometry, and looking one up returns false.
package cellset

import (
	"github.com/janpfeifer/droplet/internal/generics"
	"github.com/janpfeifer/droplet/internal/geom"
	"github.com/janpfeifer/droplet/internal/parameters"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"slices"
	"strings"
)

// Set of lattice cells.
type Set interface {
	// Has returns whether c is in the set.
	Has(c geom.Cube) bool

	// Insert adds c to the set and returns true if it was not there yet.
	Insert(c geom.Cube) bool

	// Len returns the number of cells in the set.
	Len() int
}

// Factory creates empty sets, all configured the same way.
type Factory func() Set

// Builder validates the parameters for an implementation and returns a Factory for sets
// that will hold cells within bounds. It should pop the parameters it uses from params.
type Builder func(bounds geom.Bounds, params parameters.Params) (Factory, error)

const (
	// DefaultConfig is used by New when config is empty.
	DefaultConfig = "map"

	// MaxCapacity is the largest "capacity" parameter accepted by the implementations that take one.
	MaxCapacity = int64(1) << 32
)

var registry = make(map[string]Builder)

// Register a Set implementation under the given name. It is meant to be called from init() functions.
func Register(name string, builder Builder) {
	if _, found := registry[name]; found {
		klog.Warningf("cellset: implementation %q registered twice, overriding it", name)
	}
	registry[name] = builder
}

// Registered returns the sorted names of the registered implementations.
func Registered() []string {
	return slices.Collect(generics.SortedKeys(registry))
}

// New returns a Factory for the implementation selected by config, for sets holding cells within bounds.
//
// If config is empty, DefaultConfig is used.
func New(config string, bounds geom.Bounds) (Factory, error) {
	if config == "" {
		config = DefaultConfig
	}
	name, params, err := parameters.Parse(config)
	if err != nil {
		return nil, err
	}
	builder, found := registry[name]
	if !found {
		return nil, errors.Errorf("unknown cell set implementation %q, registered ones are: %s",
			name, strings.Join(Registered(), ", "))
	}
	factory, err := builder(bounds, params)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to configure cell set %q", config)
	}
	if err := params.CheckAllUsed(); err != nil {
		return nil, errors.WithMessagef(err, "cell set %q", config)
	}
	klog.V(2).Infof("cellset: using %q for bounds %s", config, bounds)
	return factory, nil
}

// panicOutOfBounds is used by the bounded implementations on insertion of a cell outside their bounds.
func panicOutOfBounds(c geom.Cube, bounds geom.Bounds) {
	panic(errors.Wrapf(geom.ErrInvalidGeometry, "cell (%s) inserted out of the cell set bounds %s", c, bounds))
}
