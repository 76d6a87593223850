package geom

import (
	"fmt"
	"math"
	"math/bits"
)

// Bounds is an axis-aligned box of cells, Min and Max inclusive.
type Bounds struct {
	Min, Max Cube
}

// BoundsOf returns the per-axis extrema of the cubes. ok is false if cubes is empty, in which case
// the bounds are undefined.
//
// Notice that the minimum and maximum are taken independently for each axis: Min and Max are
// usually not cubes of the set.
func BoundsOf(cubes []Cube) (b Bounds, ok bool) {
	if len(cubes) == 0 {
		return
	}
	b = Bounds{Min: cubes[0], Max: cubes[0]}
	for _, c := range cubes[1:] {
		b = b.Extend(c)
	}
	return b, true
}

// Extend returns the smallest bounds containing both b and c.
func (b Bounds) Extend(c Cube) Bounds {
	b.Min = Cube{min(b.Min.X, c.X), min(b.Min.Y, c.Y), min(b.Min.Z, c.Z)}
	b.Max = Cube{max(b.Max.X, c.X), max(b.Max.Y, c.Y), max(b.Max.Z, c.Z)}
	return b
}

// Expand returns the bounds grown by n cells in every direction. The caller must make sure
// the result does not overflow (see MinCoord and MaxCoord).
func (b Bounds) Expand(n int32) Bounds {
	b.Min = b.Min.Add(Cube{-n, -n, -n})
	b.Max = b.Max.Add(Cube{n, n, n})
	return b
}

// Contains returns whether c is inside the bounds.
func (b Bounds) Contains(c Cube) bool {
	return c.X >= b.Min.X && c.X <= b.Max.X &&
		c.Y >= b.Min.Y && c.Y <= b.Max.Y &&
		c.Z >= b.Min.Z && c.Z <= b.Max.Z
}

// Size returns the number of cells along each axis.
func (b Bounds) Size() (size [NumAxes]int64) {
	for axis := range NumAxes {
		size[axis] = int64(b.Max.Coord(axis)) - int64(b.Min.Coord(axis)) + 1
	}
	return
}

// Volume returns the number of cells in the bounds, saturated at math.MaxInt64.
func (b Bounds) Volume() int64 {
	volume := uint64(1)
	for _, s := range b.Size() {
		hi, lo := bits.Mul64(volume, uint64(s))
		if hi != 0 || lo > math.MaxInt64 {
			return math.MaxInt64
		}
		volume = lo
	}
	return int64(volume)
}

// Index returns the linear index of c in the bounds, x varying fastest. c must be contained in b.
func (b Bounds) Index(c Cube) int64 {
	size := b.Size()
	return offset(c.X, b.Min.X) + size[X]*(offset(c.Y, b.Min.Y)+size[Y]*offset(c.Z, b.Min.Z))
}

func offset(v, origin int32) int64 {
	return int64(v) - int64(origin)
}

// String returns "[min .. max]".
func (b Bounds) String() string {
	return fmt.Sprintf("[%s .. %s]", b.Min, b.Max)
}

// MortonBits is the number of bits per axis used by Pack.
const MortonBits = 21

// Packable returns whether every cell of the bounds can be packed in a Morton key, that is,
// whether each axis spans at most 2^21 cells.
func (b Bounds) Packable() bool {
	for _, s := range b.Size() {
		if s > 1<<MortonBits {
			return false
		}
	}
	return true
}

// Pack returns the Morton (Z-order) key of c, relative to b.Min. Cells close in space get close keys.
// c must be contained in b and b must be Packable.
func (b Bounds) Pack(c Cube) uint64 {
	return part1By2(uint64(offset(c.X, b.Min.X))) |
		part1By2(uint64(offset(c.Y, b.Min.Y)))<<1 |
		part1By2(uint64(offset(c.Z, b.Min.Z)))<<2
}

// part1By2 spreads the lower 21 bits of x so there are two zero bits between each of them.
func part1By2(x uint64) uint64 {
	x &= 0x1fffff
	x = (x | (x << 32)) & 0x1f00000000ffff
	x = (x | (x << 16)) & 0x1f0000ff0000ff
	x = (x | (x << 8)) & 0x100f00f00f00f00f
	x = (x | (x << 4)) & 0x10c30c30c30c30c3
	x = (x | (x << 2)) & 0x1249249249249249
	return x
}
