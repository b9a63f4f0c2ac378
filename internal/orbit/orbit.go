// Package orbit rotates and zooms a camera around a fixed target from pointer-drag
// and wheel input, smoothing motion by decaying the accumulated input each frame.
//
// A Controller belongs to the frame loop goroutine: event handlers and Update must
// not run concurrently.
package orbit

import (
	"math"

	"queenboard/internal/camera"
	"queenboard/internal/mathutil"
)

const (
	MinRadius = 5.0
	MaxRadius = 50.0
	MinPolar  = 0.1
	MaxPolar  = math.Pi - 0.1

	// RotateSpeed converts dragged pixels to radians.
	RotateSpeed = 0.01

	ZoomInScale  = 0.995
	ZoomOutScale = 1.005

	DefaultDampingFactor = 0.05
)

// Controller is the camera rig: target, pending input and damping state.
type Controller struct {
	camera *camera.Perspective

	Target        mathutil.Vec3
	EnableDamping bool
	DampingFactor float64 // fraction of pending input consumed per frame, in [0, 1]

	spherical mathutil.Spherical // offset from target after the last Update
	delta     mathutil.Spherical // pending Theta/Phi; Radius unused
	scale     float64

	dragging     bool
	lastX, lastY float64
}

// New returns a damped controller orbiting cam around the origin.
func New(cam *camera.Perspective) *Controller {
	return &Controller{
		camera:        cam,
		EnableDamping: true,
		DampingFactor: DefaultDampingFactor,
		scale:         1,
	}
}

// Camera returns the controlled camera.
func (c *Controller) Camera() *camera.Perspective {
	return c.camera
}

// PointerDown starts a drag at screen coordinates (x, y).
func (c *Controller) PointerDown(x, y float64) {
	c.dragging = true
	c.lastX, c.lastY = x, y
}

// PointerMove accumulates rotation while dragging; otherwise it is ignored.
func (c *Controller) PointerMove(x, y float64) {
	if !c.dragging {
		return
	}
	dx := (x - c.lastX) * RotateSpeed
	dy := (y - c.lastY) * RotateSpeed
	c.delta.Theta -= dx
	c.delta.Phi -= dy
	c.lastX, c.lastY = x, y
}

// PointerUp ends the drag. Pending rotation keeps decaying through Update.
func (c *Controller) PointerUp() {
	c.dragging = false
}

// Wheel zooms in for deltaY < 0 and out otherwise, in any drag state.
func (c *Controller) Wheel(deltaY float64) {
	if deltaY < 0 {
		c.scale *= ZoomInScale
	} else {
		c.scale *= ZoomOutScale
	}
}

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool {
	return c.dragging
}

// Pending returns the rotation (azimuth, polar) and zoom scale not yet consumed.
func (c *Controller) Pending() (theta, phi, scale float64) {
	return c.delta.Theta, c.delta.Phi, c.scale
}

// Spherical returns the camera offset from the target as of the last Update.
func (c *Controller) Spherical() mathutil.Spherical {
	return c.spherical
}

// Update applies pending input to the camera and decays it. Call once per frame before drawing.
func (c *Controller) Update() {
	offset := c.camera.Position.Sub(c.Target)

	s := mathutil.SphericalFromVec3(offset)
	s.Theta += c.delta.Theta
	s.Phi += c.delta.Phi
	s.Radius *= c.scale

	s.Radius = mathutil.Clamp(s.Radius, MinRadius, MaxRadius)
	s.Phi = mathutil.Clamp(s.Phi, MinPolar, MaxPolar)
	c.spherical = s

	c.camera.Position = c.Target.Add(s.Vec3())
	c.camera.LookAt(c.Target)

	if c.EnableDamping {
		keep := 1 - mathutil.Clamp(c.DampingFactor, 0, 1)
		c.delta.Theta *= keep
		c.delta.Phi *= keep
		c.scale = 1 + (c.scale-1)*keep
	} else {
		c.delta = mathutil.Spherical{}
		c.scale = 1
	}
}
