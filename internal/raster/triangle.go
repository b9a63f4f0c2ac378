package raster

import (
	"math"

	"queenboard/internal/mathutil"
)

// ScreenVert is a projected vertex. InvZ is 1/view depth; WorldOverZ is the world
// position times InvZ, both of which interpolate linearly in screen space.
type ScreenVert struct {
	X, Y       float64
	InvZ       float64
	WorldOverZ mathutil.Vec3
}

// RasterizeTriangle fills one flat-shaded triangle with z-buffer test, shadow lookup,
// ACES tone mapping and sRGB encoding.
//
// This is the HOT PATH: no allocation inside the pixel loop.
// sm may be nil, in which case the shadowable light counts as fully visible.
func RasterizeTriangle(fb *FrameBuffer, v *[3]ScreenVert, fs *FaceShade, sm *ShadowMap, exposure float64) {
	x0, y0, z0 := v[0].X, v[0].Y, v[0].InvZ
	x1, y1, z1 := v[1].X, v[1].Y, v[1].InvZ
	x2, y2, z2 := v[2].X, v[2].Y, v[2].InvZ

	// Bounding box
	minX := int(math.Floor(math.Min(math.Min(x0, x1), x2)))
	maxX := int(math.Ceil(math.Max(math.Max(x0, x1), x2)))
	minY := int(math.Floor(math.Min(math.Min(y0, y1), y2)))
	maxY := int(math.Ceil(math.Max(math.Max(y0, y1), y2)))

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	useShadow := sm != nil && fs.Shadowable != (mathutil.Vec3{})
	lit, shd := fs.Lit, fs.Shadowable
	wz0, wz1, wz2 := v[0].WorldOverZ, v[1].WorldOverZ, v[2].WorldOverZ

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}
			fb.ZBuf[zIdx] = z

			vis := 1.0
			if useShadow {
				inv := 1 / z
				world := mathutil.Vec3{
					(w0*wz0[0] + w1*wz1[0] + w2*wz2[0]) * inv,
					(w0*wz0[1] + w1*wz1[1] + w2*wz2[1]) * inv,
					(w0*wz0[2] + w1*wz1[2] + w2*wz2[2]) * inv,
				}
				vis = sm.Visibility(world)
			}

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = encode(lit[0]+shd[0]*vis, exposure)
			fb.Color[pxIdx+1] = encode(lit[1]+shd[1]*vis, exposure)
			fb.Color[pxIdx+2] = encode(lit[2]+shd[2]*vis, exposure)
			fb.Color[pxIdx+3] = 255
		}
	}
}
