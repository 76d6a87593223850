// Package droplet computes the surface area of a solid made of unit cubes, in particular its exterior
// surface area: the faces reachable from the outside, excluding the walls of fully enclosed air pockets.
//
// The exterior air is found with a flood fill over the bounds of the solid expanded by one cell: the expanded
// box is connected around the solid, so a fill started at its corner reaches every exterior cell. Each cube
// face is then classified by the cell on its other side: another cube (hidden), exterior air (exposed) or
// enclosed air (trapped).
//
// Example:
//
//	area, err := droplet.SurfaceArea(cubes, droplet.WithCellSet("dense"))
package droplet

import (
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/droplet/internal/cellset"
	"github.com/janpfeifer/droplet/internal/geom"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"slices"
)

var (
	// ErrEmptyInput is returned when there are no cubes.
	ErrEmptyInput = errors.New("no cubes given")

	// ErrOutOfRange is returned for cubes with a coordinate outside [geom.MinCoord, geom.MaxCoord].
	ErrOutOfRange = errors.New("cube coordinate out of range")

	// ErrTooLarge is returned when the bounds expanded by one hold more cells than the limit set
	// with WithMaxCells.
	ErrTooLarge = errors.New("droplet too large")
)

// DefaultMaxCells is the default limit of cells in the expanded bounds, see WithMaxCells.
const DefaultMaxCells = cellset.DefaultMaxDenseCells

// Droplet is a solid made of unit cubes.
//
// The exterior air and the classification of the faces are computed on first use and cached.
// A Droplet is not safe for concurrent use, but distinct Droplets are independent.
type Droplet struct {
	cubes   []geom.Cube // Deduplicated, in canonical order.
	solid   cellset.Set
	bounds  geom.Bounds // Tight bounds of the cubes.
	box     geom.Bounds // bounds expanded by one cell.
	factory cellset.Factory

	exterior cellset.Set
	faces    *faceCounts
}

type options struct {
	cellSet  string
	maxCells int64
}

// Option configures a Droplet, see New.
type Option func(o *options)

// WithCellSet selects the cell set implementation used for the cubes and the exterior air,
// see cellset.New for the configuration format. The default is cellset.DefaultConfig.
func WithCellSet(config string) Option {
	return func(o *options) {
		o.cellSet = config
	}
}

// WithMaxCells limits the number of cells of the bounds expanded by one, which bounds the memory used
// by the flood fill. It must be > 0. The default is DefaultMaxCells.
func WithMaxCells(maxCells int64) Option {
	return func(o *options) {
		o.maxCells = maxCells
	}
}

// New creates a Droplet from the given cubes. Duplicate cubes are collapsed into one.
//
// It fails with ErrEmptyInput if there are no cubes, with ErrOutOfRange if a coordinate is outside
// [geom.MinCoord, geom.MaxCoord], with ErrTooLarge if the expanded bounds exceed the cells limit
// (see WithMaxCells), or if the cell set configuration is invalid.
func New(cubes []geom.Cube, opts ...Option) (*Droplet, error) {
	o := options{maxCells: DefaultMaxCells}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxCells <= 0 {
		return nil, errors.Errorf("max cells must be > 0, got %d", o.maxCells)
	}
	bounds, ok := geom.BoundsOf(cubes)
	if !ok {
		return nil, ErrEmptyInput
	}
	for i, c := range cubes {
		if !c.InRange() {
			return nil, errors.Wrapf(ErrOutOfRange, "cube #%d (%s)", i, c)
		}
	}
	d := &Droplet{bounds: bounds, box: bounds.Expand(1)}
	if volume := d.box.Volume(); volume > o.maxCells {
		return nil, errors.Wrapf(ErrTooLarge, "expanded bounds %s hold %d cells, more than the limit of %d",
			d.box, volume, o.maxCells)
	}
	var err error
	d.factory, err = cellset.New(o.cellSet, d.box)
	if err != nil {
		return nil, err
	}
	d.solid = d.factory()
	d.cubes = make([]geom.Cube, 0, len(cubes))
	for _, c := range cubes {
		if d.solid.Insert(c) {
			d.cubes = append(d.cubes, c)
		}
	}
	if duplicates := len(cubes) - len(d.cubes); duplicates > 0 {
		klog.V(1).Infof("droplet: %d duplicate cubes collapsed", duplicates)
	}
	slices.SortFunc(d.cubes, geom.Cube.Compare)
	return d, nil
}

// SurfaceArea is a shortcut to create a Droplet and return its exterior surface area.
func SurfaceArea(cubes []geom.Cube, opts ...Option) (int, error) {
	d, err := New(cubes, opts...)
	if err != nil {
		return 0, err
	}
	return d.ExteriorSurfaceArea()
}

// Cubes returns the distinct cubes, in canonical order (see geom.Cube.Compare). It must not be modified.
func (d *Droplet) Cubes() []geom.Cube { return d.cubes }

// TotalSurfaceArea counts every cube face not shared with another cube, including the walls of
// enclosed air pockets.
func (d *Droplet) TotalSurfaceArea() int {
	var area int
	for _, c := range d.cubes {
		for _, n := range c.NeighboursIter() {
			if !d.solid.Has(n) {
				area++
			}
		}
	}
	return area
}

// ExteriorSurfaceArea counts the cube faces in contact with the exterior air.
//
// An error wrapping geom.ErrInvalidGeometry means an internal invariant failed, and no area is returned.
func (d *Droplet) ExteriorSurfaceArea() (area int, err error) {
	err = exceptions.TryCatch[error](func() {
		area = d.classify().exterior
	})
	if err != nil {
		return 0, err
	}
	return area, nil
}

// ExposedFaces returns the faces in contact with the exterior air, in canonical order (see geom.Side.Compare).
func (d *Droplet) ExposedFaces() (faces []geom.Side, err error) {
	err = exceptions.TryCatch[error](func() {
		faces = d.classify().exposed.SortedFunc(geom.Side.Compare)
	})
	if err != nil {
		return nil, err
	}
	return faces, nil
}
