package droplet

import (
	"github.com/chewxy/math32"
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/droplet/internal/geom"
)

// Stats summarizes a Droplet.
type Stats struct {
	// Cubes is the number of distinct cubes.
	Cubes int

	// Bounds are the tight bounds of the cubes.
	Bounds geom.Bounds

	// ExteriorCells is the number of air cells reached by the flood fill, in the bounds expanded by one.
	ExteriorCells int64

	// InteriorCells is the number of enclosed air cells.
	InteriorCells int64

	// TotalArea counts all faces not shared by two cubes, ExteriorArea those touching the exterior air
	// and TrappedArea those touching enclosed air. TotalArea = ExteriorArea + TrappedArea.
	TotalArea, ExteriorArea, TrappedArea int

	// Sphericity of the droplet with its air pockets filled: the ratio of the surface area of a sphere
	// of the same volume to ExteriorArea. It is 1 for a sphere and about 0.806 for a single cube.
	Sphericity float32
}

// Stats returns the statistics of the droplet. It fails only if an internal invariant fails, see
// ExteriorSurfaceArea.
func (d *Droplet) Stats() (stats Stats, err error) {
	err = exceptions.TryCatch[error](func() {
		counts := d.classify()
		exteriorCells := int64(d.exterior.Len())
		stats = Stats{
			Cubes:         len(d.cubes),
			Bounds:        d.bounds,
			ExteriorCells: exteriorCells,
			InteriorCells: d.box.Volume() - int64(len(d.cubes)) - exteriorCells,
			TotalArea:     counts.exterior + counts.trapped,
			ExteriorArea:  counts.exterior,
			TrappedArea:   counts.trapped,
		}
		stats.Sphericity = sphericity(float32(int64(stats.Cubes)+stats.InteriorCells), float32(stats.ExteriorArea))
	})
	if err != nil {
		return Stats{}, err
	}
	return stats, nil
}

// sphericity returns π^(1/3)·(6V)^(2/3) / A.
func sphericity(volume, area float32) float32 {
	if area == 0 {
		return 0
	}
	return math32.Pow(math32.Pi, 1.0/3.0) * math32.Pow(6*volume, 2.0/3.0) / area
}
