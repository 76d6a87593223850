package geom_test

import (
	. "github.com/janpfeifer/droplet/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"slices"
	"testing"
)

func TestDirections(t *testing.T) {
	for _, d := range Directions {
		assert.Equal(t, d, DirectionOf(d.Axis(), d.Positive()))
		assert.Equal(t, Cube{}, Cube{}.Step(d).Step(DirectionOf(d.Axis(), !d.Positive())))
	}
	assert.Equal(t, Cube{0, 0, -1}, Cube{}.Step(NegZ))
	assert.Equal(t, Cube{1, 0, 0}, Cube{}.Step(PosX))
	assert.Equal(t, int32(-1), NegY.Sign())
	assert.Equal(t, "+y", PosY.String())
	assert.Equal(t, "z", Z.String())
}

func TestNeighbours(t *testing.T) {
	c := Cube{1, 2, 3}
	want := [NumDirections]Cube{{0, 2, 3}, {2, 2, 3}, {1, 1, 3}, {1, 3, 3}, {1, 2, 2}, {1, 2, 4}}
	var got []Cube
	for d, n := range c.NeighboursIter() {
		assert.Equal(t, c, n.Step(DirectionOf(d.Axis(), !d.Positive())))
		got = append(got, n)
	}
	assert.Equal(t, want[:], got)
}

func TestCubeCompare(t *testing.T) {
	cubes := []Cube{{1, 0, 0}, {0, 2, 0}, {0, 1, 5}, {0, 1, -5}, {-1, 9, 9}}
	slices.SortFunc(cubes, Cube.Compare)
	assert.Equal(t, []Cube{{-1, 9, 9}, {0, 1, -5}, {0, 1, 5}, {0, 2, 0}, {1, 0, 0}}, cubes)
	assert.Equal(t, "-1,9,9", cubes[0].String())
}

func TestSides(t *testing.T) {
	a, b := Cube{2, 2, 2}, Cube{2, 3, 2}

	// The same face is built from either cell.
	ab, err := SideBetween(a, b)
	require.NoError(t, err)
	ba, err := SideBetween(b, a)
	require.NoError(t, err)
	assert.Equal(t, ab, ba)
	assert.Equal(t, ab, SideOf(a, PosY))
	assert.Equal(t, ab, SideOf(b, NegY))
	assert.Equal(t, "2,2.5,2", ab.String())
	low, high := ab.Cells()
	assert.Equal(t, a, low)
	assert.Equal(t, b, high)

	_, err = SideBetween(a, Cube{3, 3, 2})
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	// Negative coordinates.
	s := SideOf(Cube{0, -3, 0}, NegX)
	assert.Equal(t, "-0.5,-3,0", s.String())
	assert.Equal(t, [3]int64{-1, -6, 0}, s.Doubled())
}

func TestSideFromDoubled(t *testing.T) {
	for _, c := range []Cube{{0, 0, 0}, {-1, 5, -7}, {1000, -1000, 3}} {
		for _, d := range Directions {
			s := SideOf(c, d)
			got, err := SideFromDoubled(s.Doubled())
			require.NoError(t, err)
			assert.Equal(t, s, got)
		}
	}
	_, err := SideFromDoubled([3]int64{2, 4, 6})
	assert.ErrorIs(t, err, ErrInvalidGeometry)
	_, err = SideFromDoubled([3]int64{1, 3, 6})
	assert.ErrorIs(t, err, ErrInvalidGeometry)
	_, err = SideFromDoubled([3]int64{1 << 40, 0, 1})
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestSideCompare(t *testing.T) {
	sides := []Side{
		SideOf(Cube{1, 1, 1}, PosX), // 1.5,1,1
		SideOf(Cube{1, 1, 1}, NegX), // 0.5,1,1
		SideOf(Cube{1, 1, 1}, PosZ), // 1,1,1.5
		SideOf(Cube{1, 1, 1}, NegY), // 1,0.5,1
	}
	slices.SortFunc(sides, Side.Compare)
	got := make([]string, len(sides))
	for ii, s := range sides {
		got[ii] = s.String()
	}
	assert.Equal(t, []string{"0.5,1,1", "1,0.5,1", "1,1,1.5", "1.5,1,1"}, got)
}

func TestBounds(t *testing.T) {
	_, ok := BoundsOf(nil)
	assert.False(t, ok)

	// Extrema are per axis: no single cube holds both minima.
	b, ok := BoundsOf([]Cube{{1, 5, 0}, {3, -2, 2}, {0, 0, 7}})
	require.True(t, ok)
	assert.Equal(t, Bounds{Min: Cube{0, -2, 0}, Max: Cube{3, 5, 7}}, b)
	assert.Equal(t, [NumAxes]int64{4, 8, 8}, b.Size())
	assert.Equal(t, int64(256), b.Volume())

	e := b.Expand(1)
	assert.Equal(t, Bounds{Min: Cube{-1, -3, -1}, Max: Cube{4, 6, 8}}, e)
	assert.True(t, e.Contains(Cube{-1, -3, -1}))
	assert.True(t, e.Contains(Cube{4, 6, 8}))
	assert.False(t, e.Contains(Cube{5, 0, 0}))
	assert.False(t, e.Contains(Cube{0, -4, 0}))

	assert.Equal(t, int64(0), b.Index(b.Min))
	assert.Equal(t, b.Volume()-1, b.Index(b.Max))
	assert.Equal(t, int64(1), b.Index(Cube{1, -2, 0}))
	assert.Equal(t, int64(4), b.Index(Cube{0, -1, 0}))
	assert.Equal(t, int64(32), b.Index(Cube{0, -2, 1}))

	huge := Bounds{Min: Cube{MinCoord, MinCoord, MinCoord}, Max: Cube{MaxCoord, MaxCoord, MaxCoord}}
	assert.Equal(t, int64(1<<63-1), huge.Volume())
	assert.False(t, huge.Packable())
}

func TestMortonPacking(t *testing.T) {
	b := Bounds{Min: Cube{-5, -5, -5}, Max: Cube{20, 20, 20}}
	require.True(t, b.Packable())
	seen := make(map[uint64]bool)
	for x := b.Min.X; x <= b.Max.X; x++ {
		for y := b.Min.Y; y <= b.Max.Y; y++ {
			for z := b.Min.Z; z <= b.Max.Z; z++ {
				c := Cube{x, y, z}
				key := b.Pack(c)
				require.False(t, seen[key], "duplicate key for %s", c)
				seen[key] = true
				require.Less(t, key, uint64(1)<<(3*MortonBits))
			}
		}
	}
	assert.Equal(t, uint64(0), b.Pack(b.Min))
	assert.Equal(t, uint64(0b111), b.Pack(Cube{-4, -4, -4}))
}

func TestInRange(t *testing.T) {
	assert.True(t, Cube{MinCoord, 0, MaxCoord}.InRange())
	assert.False(t, Cube{MinCoord - 1, 0, 0}.InRange())
	assert.False(t, Cube{0, 0, MaxCoord + 1}.InRange())
}
