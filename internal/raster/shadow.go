package raster

import (
	"math"

	"queenboard/internal/mathutil"
	"queenboard/internal/scene"
)

// ShadowMap is an orthographic depth buffer rendered from a directional light.
// Depth is distance along the light direction; smaller is closer to the light.
type ShadowMap struct {
	Size  int
	Depth []float64

	origin mathutil.Vec3
	basis  mathutil.Mat3 // rows: right, up, forward of the light
	cam    scene.ShadowCamera
	bias   float64
	soft   bool
}

// NewShadowMap allocates a size×size map.
func NewShadowMap(size int) *ShadowMap {
	sm := &ShadowMap{}
	sm.resize(size)
	return sm
}

func (sm *ShadowMap) resize(size int) {
	if size < 1 {
		size = 1
	}
	if sm.Size == size && sm.Depth != nil {
		return
	}
	sm.Size = size
	sm.Depth = make([]float64, size*size)
}

// Begin clears the map and aims it along l.
func (sm *ShadowMap) Begin(l *scene.DirectionalLight) {
	sm.resize(l.Shadow.MapSize)
	sm.origin = l.Position
	sm.basis = mathutil.LookBasis(l.Position, l.Target, mathutil.UpY)
	sm.cam = l.Shadow.Camera
	sm.bias = l.Shadow.Bias
	sm.soft = l.Shadow.Soft
	for i := range sm.Depth {
		sm.Depth[i] = math.Inf(1)
	}
}

// project returns the map texel coordinates and light depth of p.
func (sm *ShadowMap) project(p mathutil.Vec3) (u, v, d float64) {
	l := sm.basis.MulVec3(p.Sub(sm.origin))
	w := sm.cam.Right - sm.cam.Left
	h := sm.cam.Top - sm.cam.Bottom
	size := float64(sm.Size)
	u = (l[0] - sm.cam.Left) / w * size
	v = (sm.cam.Top - l[1]) / h * size
	return u, v, l[2]
}

// DrawTriangle rasterizes a caster triangle into the map, keeping the nearest depth.
func (sm *ShadowMap) DrawTriangle(a, b, c mathutil.Vec3) {
	x0, y0, z0 := sm.project(a)
	x1, y1, z1 := sm.project(b)
	x2, y2, z2 := sm.project(c)

	size := sm.Size
	minX := int(math.Floor(math.Min(math.Min(x0, x1), x2)))
	maxX := int(math.Ceil(math.Max(math.Max(x0, x1), x2)))
	minY := int(math.Floor(math.Min(math.Min(y0, y1), y2)))
	maxY := int(math.Ceil(math.Max(math.Max(y0, y1), y2)))
	if minX < 0 {
		minX = 0
	}
	if maxX >= size {
		maxX = size - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= size {
		maxY = size - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-12 && det < 1e-12 {
		return
	}
	invDet := 1.0 / det
	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	near, far := sm.cam.Near, sm.cam.Far
	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * size
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1
			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}
			z := w0*z0 + w1*z1 + w2*z2
			if z < near || z > far {
				continue
			}
			if i := rowOff + sx; z < sm.Depth[i] {
				sm.Depth[i] = z
			}
		}
	}
}

// Visibility returns the lit fraction of p in [0, 1]. Points outside the shadow camera are lit.
func (sm *ShadowMap) Visibility(p mathutil.Vec3) float64 {
	u, v, d := sm.project(p)
	if d < sm.cam.Near || d > sm.cam.Far {
		return 1
	}
	cx, cy := int(math.Floor(u)), int(math.Floor(v))
	if !sm.soft {
		return sm.sample(cx, cy, d)
	}
	var lit float64
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			lit += sm.sample(cx+dx, cy+dy, d)
		}
	}
	return lit / 9
}

func (sm *ShadowMap) sample(x, y int, d float64) float64 {
	if x < 0 || y < 0 || x >= sm.Size || y >= sm.Size {
		return 1
	}
	if d-sm.bias > sm.Depth[y*sm.Size+x] {
		return 0
	}
	return 1
}
