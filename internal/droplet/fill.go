package droplet

import (
	"github.com/janpfeifer/droplet/internal/cellset"
	"github.com/janpfeifer/droplet/internal/generics"
	"github.com/janpfeifer/droplet/internal/geom"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// exteriorAir returns the set of air cells of the expanded box connected to its corner.
//
// It panics with an error wrapping geom.ErrInvalidGeometry if the corner is a cube.
func (d *Droplet) exteriorAir() cellset.Set {
	if d.exterior != nil {
		return d.exterior
	}
	start := d.box.Min
	if d.solid.Has(start) {
		panic(errors.Wrapf(geom.ErrInvalidGeometry, "flood fill start cell (%s) is a cube, bounds %s",
			start, d.bounds))
	}
	exterior := d.factory()
	exterior.Insert(start)
	var toVisit generics.Stack[geom.Cube]
	toVisit.Push(start)
	var maxPending int
	for {
		maxPending = max(maxPending, toVisit.Len())
		c, ok := toVisit.Pop()
		if !ok {
			break
		}
		for _, n := range c.NeighboursIter() {
			if !d.box.Contains(n) || d.solid.Has(n) {
				continue
			}
			if exterior.Insert(n) {
				toVisit.Push(n)
			}
		}
	}
	klog.V(2).Infof("droplet: flood fill of %s reached %d exterior cells, max %d pending",
		d.box, exterior.Len(), maxPending)
	d.exterior = exterior
	return exterior
}
