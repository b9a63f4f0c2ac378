package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"queenboard/internal/mathutil"
)

func TestTargetProjectsToCenter(t *testing.T) {
	c := NewPerspective(DefaultFOV, 4.0/3.0, DefaultNear, DefaultFar)
	c.Position = mathutil.Vec3{4, 8, 9.6}
	c.LookAt(mathutil.Vec3{})

	v := c.ToView(mathutil.Vec3{})
	assert.InDelta(t, c.Position.Len(), v[2], 1e-9)

	sx, sy := c.ViewToScreen(v, 640, 480)
	assert.InDelta(t, 320, sx, 1e-6)
	assert.InDelta(t, 240, sy, 1e-6)
}

func TestScreenOrientation(t *testing.T) {
	c := NewPerspective(90, 1, DefaultNear, DefaultFar)
	c.Position = mathutil.Vec3{0, 0, 10}
	c.LookAt(mathutil.Vec3{})

	// +X world is to the right, +Y world is up (smaller screen y)
	sx, _ := c.ViewToScreen(c.ToView(mathutil.Vec3{1, 0, 0}), 100, 100)
	assert.Greater(t, sx, 50.0)
	_, sy := c.ViewToScreen(c.ToView(mathutil.Vec3{0, 1, 0}), 100, 100)
	assert.Less(t, sy, 50.0)

	// fov 90 at distance 10: x=10 reaches the right edge
	sx, _ = c.ViewToScreen(c.ToView(mathutil.Vec3{10, 0, 0}), 100, 100)
	assert.InDelta(t, 100, sx, 1e-9)
}

func TestSetAspect(t *testing.T) {
	c := NewPerspective(DefaultFOV, 1, DefaultNear, DefaultFar)
	c.SetAspect(1920, 1080)
	assert.InDelta(t, 1920.0/1080.0, c.Aspect, 1e-12)

	c.SetAspect(0, 1080)
	assert.InDelta(t, 1920.0/1080.0, c.Aspect, 1e-12)
}
