package geom

import (
	"cmp"
	"github.com/pkg/errors"
	"math"
	"strconv"
	"strings"
)

// Side is the unit square face shared by two face-adjacent cells.
//
// It is stored canonically as the cell on the negative side (Low) and the axis the face is
// perpendicular to, so the same face reached from either cell compares (and hashes) equal.
type Side struct {
	Low  Cube
	Axis Axis
}

// SideOf returns the face of cube c in direction d.
func SideOf(c Cube, d Direction) Side {
	if d.Positive() {
		return Side{Low: c, Axis: d.Axis()}
	}
	return Side{Low: c.Step(d), Axis: d.Axis()}
}

// SideBetween returns the face shared by cells a and b, given in any order.
// It fails with ErrInvalidGeometry if a and b are not face-adjacent.
func SideBetween(a, b Cube) (Side, error) {
	for d, n := range a.NeighboursIter() {
		if n == b {
			return SideOf(a, d), nil
		}
	}
	return Side{}, errors.Wrapf(ErrInvalidGeometry, "cells (%s) and (%s) are not adjacent", a, b)
}

// High is the cell on the positive side of the face.
func (s Side) High() Cube {
	return s.Low.Step(DirectionOf(s.Axis, true))
}

// Cells returns the two cells separated by the face.
func (s Side) Cells() (low, high Cube) {
	return s.Low, s.High()
}

// Doubled returns the face center in half-integer coordinates, scaled by 2: exactly one
// component (the one along Axis) is odd.
func (s Side) Doubled() (d [3]int64) {
	for axis := range NumAxes {
		d[axis] = 2 * int64(s.Low.Coord(axis))
	}
	d[s.Axis]++
	return
}

// SideFromDoubled converts doubled half-integer coordinates back to a Side. It fails with
// ErrInvalidGeometry unless exactly one component is odd and all cells fit the lattice.
func SideFromDoubled(d [3]int64) (Side, error) {
	s := Side{Axis: NumAxes}
	for axis := range NumAxes {
		v := d[axis]
		if v%2 != 0 {
			if s.Axis != NumAxes {
				return Side{}, errors.Wrapf(ErrInvalidGeometry, "side %v has more than one half-integer coordinate", d)
			}
			s.Axis = axis
			v-- // Floor for both positive and negative odd numbers.
		}
		v /= 2
		if v < math.MinInt32 || v > math.MaxInt32 {
			return Side{}, errors.Wrapf(ErrInvalidGeometry, "side %v out of range", d)
		}
		s.Low = s.Low.WithCoord(axis, int32(v))
	}
	if s.Axis == NumAxes {
		return Side{}, errors.Wrapf(ErrInvalidGeometry, "side %v has no half-integer coordinate", d)
	}
	return s, nil
}

// Compare orders sides by their (doubled) center coordinates, x first.
func (s Side) Compare(s2 Side) int {
	d, d2 := s.Doubled(), s2.Doubled()
	for axis := range NumAxes {
		if r := cmp.Compare(d[axis], d2[axis]); r != 0 {
			return r
		}
	}
	return 0
}

// String returns the face center in half-integer coordinates, e.g. "1.5,2,3".
func (s Side) String() string {
	d := s.Doubled()
	parts := make([]string, NumAxes)
	for axis := range NumAxes {
		if d[axis]%2 == 0 {
			parts[axis] = strconv.FormatInt(d[axis]/2, 10)
		} else {
			parts[axis] = strconv.FormatFloat(float64(d[axis])/2, 'f', 1, 64)
		}
	}
	return strings.Join(parts, ",")
}
