package raster

import "queenboard/internal/mathutil"

type clipVert struct {
	view  mathutil.Vec3
	world mathutil.Vec3
}

// clipNear clips the triangle in poly[0:3] against the view plane z = near, in place.
// It returns the resulting vertex count: 0 (fully behind), 3, or 4.
func clipNear(poly *[4]clipVert, near float64) int {
	var in [3]bool
	count := 0
	for k := 0; k < 3; k++ {
		in[k] = poly[k].view[2] >= near
		if in[k] {
			count++
		}
	}
	switch count {
	case 3:
		return 3
	case 0:
		return 0
	}

	src := [3]clipVert{poly[0], poly[1], poly[2]}
	n := 0
	for k := 0; k < 3; k++ {
		a, b := src[k], src[(k+1)%3]
		ain, bin := in[k], in[(k+1)%3]
		if ain {
			poly[n] = a
			n++
		}
		if ain != bin {
			t := (near - a.view[2]) / (b.view[2] - a.view[2])
			poly[n] = clipVert{
				view:  a.view.Lerp(b.view, t),
				world: a.world.Lerp(b.world, t),
			}
			poly[n].view[2] = near
			n++
		}
	}
	return n
}
