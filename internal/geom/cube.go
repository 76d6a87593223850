// Package geom holds the lattice geometry of a voxel solid: unit cubes at integer coordinates,
// the six axis directions, the faces (sides) between adjacent cells and axis-aligned bounds.
package geom

import (
	"cmp"
	"fmt"
	"github.com/pkg/errors"
	"iter"
	"math"
)

// ErrInvalidGeometry is returned (or raised as a panic, inside algorithms) when a geometric invariant
// does not hold. It indicates a logic defect, not a bad input.
var ErrInvalidGeometry = errors.New("invalid geometry")

const (
	// MinCoord and MaxCoord are the accepted coordinate limits: one unit is reserved at each end
	// of the int32 range, so bounds can always be expanded by one.
	MinCoord = math.MinInt32 + 1
	MaxCoord = math.MaxInt32 - 1
)

// Axis is one of the three coordinate axes.
type Axis uint8

const (
	X Axis = iota
	Y
	Z

	// NumAxes is also used as the invalid Axis.
	NumAxes
)

var axisNames = [NumAxes]string{"x", "y", "z"}

// String returns "x", "y" or "z".
func (a Axis) String() string {
	if a >= NumAxes {
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
	return axisNames[a]
}

// Direction is a unit step along one axis, in either sense.
type Direction uint8

const (
	NegX Direction = iota
	PosX
	NegY
	PosY
	NegZ
	PosZ

	// NumDirections of the 6-connected neighbourhood.
	NumDirections
)

// Directions enumerates the 6 directions, in the order of the constants.
var Directions = [NumDirections]Direction{NegX, PosX, NegY, PosY, NegZ, PosZ}

var directionNames = [NumDirections]string{"-x", "+x", "-y", "+y", "-z", "+z"}

// DirectionOf returns the direction along axis, towards larger coordinates if positive.
func DirectionOf(axis Axis, positive bool) Direction {
	d := Direction(axis) * 2
	if positive {
		d++
	}
	return d
}

// Axis of the direction.
func (d Direction) Axis() Axis { return Axis(d >> 1) }

// Positive returns whether the direction points towards larger coordinates.
func (d Direction) Positive() bool { return d&1 == 1 }

// Sign is +1 for positive directions and -1 otherwise.
func (d Direction) Sign() int32 {
	if d.Positive() {
		return 1
	}
	return -1
}

// String returns "-x", "+x", ...
func (d Direction) String() string {
	if d >= NumDirections {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// Cube is the position of a unit cube (or an empty unit cell) in the integer lattice.
type Cube struct {
	X, Y, Z int32
}

// Add returns the component-wise sum.
func (c Cube) Add(c2 Cube) Cube {
	return Cube{c.X + c2.X, c.Y + c2.Y, c.Z + c2.Z}
}

// Step returns the adjacent cell in the given direction.
func (c Cube) Step(d Direction) Cube {
	return c.WithCoord(d.Axis(), c.Coord(d.Axis())+d.Sign())
}

// Coord returns the coordinate along the given axis.
func (c Cube) Coord(axis Axis) int32 {
	switch axis {
	case X:
		return c.X
	case Y:
		return c.Y
	default:
		return c.Z
	}
}

// WithCoord returns a copy of c with the coordinate along axis replaced by v.
func (c Cube) WithCoord(axis Axis, v int32) Cube {
	switch axis {
	case X:
		c.X = v
	case Y:
		c.Y = v
	default:
		c.Z = v
	}
	return c
}

// Compare orders cubes by x, then y, then z. This is the canonical scan order.
func (c Cube) Compare(c2 Cube) int {
	if r := cmp.Compare(c.X, c2.X); r != 0 {
		return r
	}
	if r := cmp.Compare(c.Y, c2.Y); r != 0 {
		return r
	}
	return cmp.Compare(c.Z, c2.Z)
}

// InRange returns whether all coordinates are within [MinCoord, MaxCoord].
func (c Cube) InRange() bool {
	for axis := range NumAxes {
		if v := c.Coord(axis); v < MinCoord || v > MaxCoord {
			return false
		}
	}
	return true
}

// String returns the "x,y,z" input format of the cube.
func (c Cube) String() string {
	return fmt.Sprintf("%d,%d,%d", c.X, c.Y, c.Z)
}

// NeighboursIter iterates over the 6 face-adjacent cells, in the order of Directions.
func (c Cube) NeighboursIter() iter.Seq2[Direction, Cube] {
	return func(yield func(Direction, Cube) bool) {
		for _, d := range Directions {
			if !yield(d, c.Step(d)) {
				return
			}
		}
	}
}
