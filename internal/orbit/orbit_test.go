package orbit

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"queenboard/internal/camera"
	"queenboard/internal/mathutil"
)

func newController(pos mathutil.Vec3) *Controller {
	cam := camera.NewPerspective(camera.DefaultFOV, 1, camera.DefaultNear, camera.DefaultFar)
	cam.Position = pos
	c := New(cam)
	c.Update()
	return c
}

func TestRadiusClampedUnderZoom(t *testing.T) {
	c := newController(mathutil.Vec3{4, 8, 9.6})

	for i := 0; i < 2000; i++ {
		c.Wheel(-1)
		c.Update()
		r := c.Spherical().Radius
		require.GreaterOrEqual(t, r, MinRadius)
		require.LessOrEqual(t, r, MaxRadius)
	}
	assert.InDelta(t, MinRadius, c.Spherical().Radius, 1e-9)
	assert.InDelta(t, MinRadius, c.Camera().Position.Len(), 1e-9)

	for i := 0; i < 5000; i++ {
		c.Wheel(1)
		c.Update()
		r := c.Spherical().Radius
		require.GreaterOrEqual(t, r, MinRadius)
		require.LessOrEqual(t, r, MaxRadius)
	}
	assert.InDelta(t, MaxRadius, c.Spherical().Radius, 1e-9)
}

func TestRadiusClampedRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := newController(mathutil.Vec3{0, 3, 3})
	for i := 0; i < 3000; i++ {
		if rng.Intn(2) == 0 {
			c.Wheel(-rng.Float64())
		} else {
			c.Wheel(rng.Float64())
		}
		if rng.Intn(3) == 0 {
			c.Update()
		}
		c.Update()
		r := c.Camera().Position.Sub(c.Target).Len()
		require.GreaterOrEqual(t, r, MinRadius-1e-9)
		require.LessOrEqual(t, r, MaxRadius+1e-9)
	}
}

func TestPolarClampedUnderDrag(t *testing.T) {
	c := newController(mathutil.Vec3{4, 8, 9.6})

	c.PointerDown(0, 0)
	for y := 0.0; y < 5000; y += 37 {
		c.PointerMove(y/3, y)
		c.Update()
		phi := c.Spherical().Phi
		require.GreaterOrEqual(t, phi, MinPolar)
		require.LessOrEqual(t, phi, MaxPolar)
	}
	assert.InDelta(t, MinPolar, c.Spherical().Phi, 1e-9)

	for y := 5000.0; y > -20000; y -= 53 {
		c.PointerMove(0, y)
		c.Update()
		phi := c.Spherical().Phi
		require.GreaterOrEqual(t, phi, MinPolar)
		require.LessOrEqual(t, phi, MaxPolar)
	}
	assert.InDelta(t, MaxPolar, c.Spherical().Phi, 1e-9)
}

func TestDragAccumulatesScaledDelta(t *testing.T) {
	c := newController(mathutil.Vec3{0, 5, 10})

	c.PointerDown(100, 100)
	c.PointerMove(110, 95)
	theta, phi, _ := c.Pending()
	assert.InDelta(t, -0.1, theta, 1e-12)
	assert.InDelta(t, 0.05, phi, 1e-12)

	// deltas are measured from the last recorded point
	c.PointerMove(120, 95)
	theta, _, _ = c.Pending()
	assert.InDelta(t, -0.2, theta, 1e-12)
}

func TestMoveIgnoredWhenIdle(t *testing.T) {
	c := newController(mathutil.Vec3{0, 5, 10})
	c.PointerMove(500, 500)
	theta, phi, _ := c.Pending()
	assert.Zero(t, theta)
	assert.Zero(t, phi)

	c.PointerDown(0, 0)
	c.PointerUp()
	assert.False(t, c.Dragging())
	c.PointerMove(50, 50)
	theta, _, _ = c.Pending()
	assert.Zero(t, theta)
}

func TestPendingSurvivesPointerUp(t *testing.T) {
	c := newController(mathutil.Vec3{0, 5, 10})
	c.PointerDown(0, 0)
	c.PointerMove(30, 0)
	c.PointerUp()

	theta, _, _ := c.Pending()
	assert.InDelta(t, -0.3, theta, 1e-12)
}

func TestWheelIndependentOfDrag(t *testing.T) {
	c := newController(mathutil.Vec3{0, 5, 10})
	c.Wheel(-3)
	_, _, s := c.Pending()
	assert.InDelta(t, ZoomInScale, s, 1e-12)

	c.PointerDown(0, 0)
	c.Wheel(3)
	_, _, s = c.Pending()
	assert.InDelta(t, ZoomInScale*ZoomOutScale, s, 1e-12)

	// zero delta counts as zoom out
	c.Wheel(0)
	_, _, s = c.Pending()
	assert.InDelta(t, ZoomInScale*ZoomOutScale*ZoomOutScale, s, 1e-12)
}

func TestDampedDecayMonotone(t *testing.T) {
	c := newController(mathutil.Vec3{0, 5, 10})
	c.PointerDown(0, 0)
	c.PointerMove(40, -25)
	c.PointerUp()
	for i := 0; i < 20; i++ {
		c.Wheel(1)
	}

	prevTheta, prevPhi, prevScale := c.Pending()
	require.Less(t, prevTheta, 0.0)
	require.Greater(t, prevPhi, 0.0)
	require.Greater(t, prevScale, 1.0)

	for i := 0; i < 200; i++ {
		c.Update()
		theta, phi, scale := c.Pending()

		assert.Less(t, math.Abs(theta), math.Abs(prevTheta))
		assert.Less(t, math.Abs(phi), math.Abs(prevPhi))
		assert.Less(t, math.Abs(scale-1), math.Abs(prevScale-1))

		assert.LessOrEqual(t, theta, 0.0, "azimuth delta never changes sign")
		assert.GreaterOrEqual(t, phi, 0.0, "polar delta never changes sign")
		assert.GreaterOrEqual(t, scale, 1.0, "zoom never overshoots rest")

		prevTheta, prevPhi, prevScale = theta, phi, scale
	}
}

func TestDampedDecayRate(t *testing.T) {
	c := newController(mathutil.Vec3{0, 5, 10})
	c.DampingFactor = 0.25
	c.PointerDown(0, 0)
	c.PointerMove(100, 0)
	c.Wheel(-1)
	c.Update()

	theta, _, scale := c.Pending()
	assert.InDelta(t, -1*0.75, theta, 1e-12)
	assert.InDelta(t, 1+(ZoomInScale-1)*0.75, scale, 1e-12)
}

func TestUndampedResetsInOneUpdate(t *testing.T) {
	c := newController(mathutil.Vec3{0, 5, 10})
	c.EnableDamping = false
	c.PointerDown(0, 0)
	c.PointerMove(25, 13)
	c.Wheel(-1)
	c.Wheel(-1)
	c.Update()

	theta, phi, scale := c.Pending()
	assert.Zero(t, theta)
	assert.Zero(t, phi)
	assert.Equal(t, 1.0, scale)
}

func TestUpdateRotatesAroundTarget(t *testing.T) {
	c := newController(mathutil.Vec3{0, 0, 10})
	c.Target = mathutil.Vec3{}
	c.EnableDamping = false
	before := c.Spherical()

	c.PointerDown(0, 0)
	c.PointerMove(-50, 0) // drag left: azimuth increases by 0.5
	c.Update()

	after := c.Spherical()
	assert.InDelta(t, before.Theta+0.5, after.Theta, 1e-9)
	assert.InDelta(t, before.Radius, after.Radius, 1e-9)
	assert.InDelta(t, 10, c.Camera().Position.Len(), 1e-9)
	assert.True(t, c.Camera().Direction().ApproxEqual(c.Camera().Position.Scale(-0.1), 1e-9))
}

func TestUpdateWithOffsetTarget(t *testing.T) {
	c := newController(mathutil.Vec3{0, 10, 10})
	c.Target = mathutil.Vec3{1, 0, 1}
	c.Update()
	assert.Equal(t, mathutil.Vec3{1, 0, 1}, c.Camera().Target())
	r := c.Camera().Position.Sub(c.Target).Len()
	assert.GreaterOrEqual(t, r, MinRadius)
}

func TestHandleDispatch(t *testing.T) {
	c := newController(mathutil.Vec3{0, 5, 10})
	for _, ev := range []Event{
		{Kind: PointerDown, X: 10, Y: 10},
		{Kind: PointerMove, X: 20, Y: 10},
		{Kind: Wheel, DeltaY: -1},
		{Kind: PointerUp},
	} {
		c.Handle(ev)
	}
	theta, _, scale := c.Pending()
	assert.InDelta(t, -0.1, theta, 1e-12)
	assert.InDelta(t, ZoomInScale, scale, 1e-12)
	assert.False(t, c.Dragging())
	assert.Equal(t, "wheel", Wheel.String())
}
