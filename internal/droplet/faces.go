package droplet

import (
	"github.com/janpfeifer/droplet/internal/generics"
	"github.com/janpfeifer/droplet/internal/geom"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// faceCounts is the classification of all the cube faces of a droplet.
type faceCounts struct {
	hidden, exterior, trapped int
	exposed                   generics.Set[geom.Side]
}

// classify enumerates the six faces of every cube and classifies them by the cell on the other side.
// Faces between two cubes are counted once per cube.
//
// It panics with an error wrapping geom.ErrInvalidGeometry if a face does not resolve to a lattice face,
// if it has no cube on either side, or if an exposed face shows up twice.
func (d *Droplet) classify() *faceCounts {
	if d.faces != nil {
		return d.faces
	}
	exterior := d.exteriorAir()
	counts := &faceCounts{exposed: generics.MakeSet[geom.Side]()}
	for _, c := range d.cubes {
		for _, n := range c.NeighboursIter() {
			side := resolveSide(c, n)
			low, high := side.Cells()
			neighbourSolid := d.solid.Has(n)
			switch {
			case !d.solid.Has(low) && !d.solid.Has(high):
				panic(errors.Wrapf(geom.ErrInvalidGeometry, "face %s has no cube on either side", side))
			case neighbourSolid:
				counts.hidden++
			case exterior.Has(n):
				if !counts.exposed.TryInsert(side) {
					panic(errors.Wrapf(geom.ErrInvalidGeometry, "exposed face %s enumerated twice", side))
				}
				counts.exterior++
			default:
				counts.trapped++
			}
		}
	}
	klog.V(2).Infof("droplet: %d cubes, faces: %d exterior, %d trapped, %d hidden",
		len(d.cubes), counts.exterior, counts.trapped, counts.hidden)
	d.faces = counts
	return counts
}

// resolveSide returns the face between the adjacent cells a and b, checked against its half-integer
// encoding. It panics with an error wrapping geom.ErrInvalidGeometry if the cells don't share a face.
func resolveSide(a, b geom.Cube) geom.Side {
	side, err := geom.SideBetween(a, b)
	if err != nil {
		panic(err)
	}
	decoded, err := geom.SideFromDoubled(side.Doubled())
	if err != nil {
		panic(err)
	}
	if decoded != side {
		panic(errors.Wrapf(geom.ErrInvalidGeometry, "face %s decodes to %s", side, decoded))
	}
	return side
}
