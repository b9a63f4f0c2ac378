// Package geometry builds triangle meshes for the primitive solids the board is made of.
// All primitives are centered on the origin with Y as the axis of revolution.
package geometry

import (
	"math"

	"queenboard/internal/mathutil"
)

// Geometry holds an indexed triangle list in local space.
type Geometry struct {
	Verts []mathutil.Vec3
	Tris  [][3]int
}

// Bounds returns the axis-aligned extent of all vertices.
func (g *Geometry) Bounds() (min, max mathutil.Vec3) {
	if len(g.Verts) == 0 {
		return
	}
	min, max = g.Verts[0], g.Verts[0]
	for _, v := range g.Verts[1:] {
		for k := 0; k < 3; k++ {
			min[k] = math.Min(min[k], v[k])
			max[k] = math.Max(max[k], v[k])
		}
	}
	return min, max
}

// Box returns an axis-aligned box of the given width (X), height (Y) and depth (Z).
func Box(w, h, d float64) *Geometry {
	x, y, z := w/2, h/2, d/2
	g := &Geometry{
		Verts: []mathutil.Vec3{
			{-x, -y, -z}, {x, -y, -z}, {x, y, -z}, {-x, y, -z},
			{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z},
		},
	}
	quads := [6][4]int{
		{0, 3, 2, 1}, // back
		{4, 5, 6, 7}, // front
		{0, 4, 7, 3}, // left
		{1, 2, 6, 5}, // right
		{3, 7, 6, 2}, // top
		{0, 1, 5, 4}, // bottom
	}
	for _, q := range quads {
		g.addQuad(q[0], q[1], q[2], q[3])
	}
	return g
}

// Cylinder returns a capped frustum with radiusTop at +h/2 and radiusBottom at -h/2.
// A zero radius collapses that end into a single apex vertex.
func Cylinder(radiusTop, radiusBottom, h float64, segments int) *Geometry {
	if segments < 3 {
		segments = 3
	}
	g := &Geometry{}
	top := g.ring(radiusTop, h/2, segments)
	bottom := g.ring(radiusBottom, -h/2, segments)

	for i := 0; i < segments; i++ {
		j := (i + 1) % segments
		switch {
		case radiusTop == 0:
			g.Tris = append(g.Tris, [3]int{top[0], bottom[i], bottom[j]})
		case radiusBottom == 0:
			g.Tris = append(g.Tris, [3]int{top[i], bottom[0], top[j]})
		default:
			g.addQuad(top[i], bottom[i], bottom[j], top[j])
		}
	}

	if radiusTop > 0 {
		g.cap(top, h/2, false)
	}
	if radiusBottom > 0 {
		g.cap(bottom, -h/2, true)
	}
	return g
}

// Cone returns a cone with its apex at +h/2.
func Cone(radius, h float64, segments int) *Geometry {
	return Cylinder(0, radius, h, segments)
}

// Sphere returns a UV sphere. Pole rows collapse to a single triangle per segment.
func Sphere(radius float64, widthSegments, heightSegments int) *Geometry {
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}
	g := &Geometry{}
	cols := widthSegments + 1
	for iy := 0; iy <= heightSegments; iy++ {
		theta := float64(iy) / float64(heightSegments) * math.Pi
		for ix := 0; ix <= widthSegments; ix++ {
			phi := float64(ix) / float64(widthSegments) * 2 * math.Pi
			g.Verts = append(g.Verts, mathutil.Vec3{
				-radius * math.Cos(phi) * math.Sin(theta),
				radius * math.Cos(theta),
				radius * math.Sin(phi) * math.Sin(theta),
			})
		}
	}
	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := iy*cols + ix + 1
			b := iy*cols + ix
			c := (iy+1)*cols + ix
			d := (iy+1)*cols + ix + 1
			if iy != 0 {
				g.Tris = append(g.Tris, [3]int{a, b, d})
			}
			if iy != heightSegments-1 {
				g.Tris = append(g.Tris, [3]int{b, c, d})
			}
		}
	}
	return g
}

// ring appends the vertices of a horizontal circle and returns their indices.
// A zero radius appends one vertex.
func (g *Geometry) ring(radius, y float64, segments int) []int {
	if radius == 0 {
		g.Verts = append(g.Verts, mathutil.Vec3{0, y, 0})
		return []int{len(g.Verts) - 1}
	}
	idx := make([]int, segments)
	for i := 0; i < segments; i++ {
		a := float64(i) / float64(segments) * 2 * math.Pi
		idx[i] = len(g.Verts)
		g.Verts = append(g.Verts, mathutil.Vec3{radius * math.Sin(a), y, radius * math.Cos(a)})
	}
	return idx
}

func (g *Geometry) cap(ring []int, y float64, flip bool) {
	center := len(g.Verts)
	g.Verts = append(g.Verts, mathutil.Vec3{0, y, 0})
	n := len(ring)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if flip {
			g.Tris = append(g.Tris, [3]int{center, ring[j], ring[i]})
		} else {
			g.Tris = append(g.Tris, [3]int{center, ring[i], ring[j]})
		}
	}
}

// addQuad splits a quad into (a, b, c) and (a, c, d).
func (g *Geometry) addQuad(a, b, c, d int) {
	g.Tris = append(g.Tris, [3]int{a, b, c}, [3]int{a, c, d})
}
