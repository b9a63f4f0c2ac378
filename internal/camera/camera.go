// Package camera holds the perspective camera the renderer projects through.
package camera

import (
	"math"

	"queenboard/internal/mathutil"
)

const (
	DefaultFOV  = 75.0
	DefaultNear = 0.1
	DefaultFar  = 1000.0
)

// Perspective is a pinhole camera. Orientation is kept as a look-at basis.
type Perspective struct {
	Position mathutil.Vec3
	FOV      float64 // vertical, degrees
	Aspect   float64
	Near     float64
	Far      float64

	basis  mathutil.Mat3 // rows: right, up, forward
	target mathutil.Vec3
}

// NewPerspective returns a camera at the origin looking down -Z.
func NewPerspective(fov, aspect, near, far float64) *Perspective {
	if aspect <= 0 {
		aspect = 1
	}
	c := &Perspective{FOV: fov, Aspect: aspect, Near: near, Far: far}
	c.LookAt(mathutil.Vec3{0, 0, -1})
	return c
}

// LookAt orients the camera toward target with +Y as world up.
func (c *Perspective) LookAt(target mathutil.Vec3) {
	c.target = target
	c.basis = mathutil.LookBasis(c.Position, target, mathutil.UpY)
}

// Target returns the point last passed to LookAt.
func (c *Perspective) Target() mathutil.Vec3 {
	return c.target
}

// Basis returns the view rotation (rows right, up, forward).
func (c *Perspective) Basis() mathutil.Mat3 {
	return c.basis
}

// Direction returns the unit forward vector.
func (c *Perspective) Direction() mathutil.Vec3 {
	return c.basis.Row(2)
}

// SetAspect updates the projection after a resize. Non-positive sizes are ignored.
func (c *Perspective) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float64(width) / float64(height)
}

// ToView maps a world point to view space: x right, y up, z distance ahead of the camera.
func (c *Perspective) ToView(p mathutil.Vec3) mathutil.Vec3 {
	return c.basis.MulVec3(p.Sub(c.Position))
}

// ViewToScreen projects a view-space point with z > 0 to pixel coordinates
// on a width×height target. Y grows downward.
func (c *Perspective) ViewToScreen(v mathutil.Vec3, width, height int) (sx, sy float64) {
	f := 1 / math.Tan(mathutil.Deg2Rad(c.FOV)/2)
	ndcX := v[0] * f / (v[2] * c.Aspect)
	ndcY := v[1] * f / v[2]
	sx = (ndcX + 1) * 0.5 * float64(width)
	sy = (1 - ndcY) * 0.5 * float64(height)
	return sx, sy
}

// Clone returns an independent copy.
func (c *Perspective) Clone() *Perspective {
	cp := *c
	return &cp
}
