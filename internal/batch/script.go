package batch

import "queenboard/internal/orbit"

// Script lists the input events delivered before each frame's tick.
type Script [][]orbit.Event

// Turntable drags the camera horizontally by stepPx every frame, which orbits it around
// the board at stepPx·orbit.RotateSpeed radians per frame plus damping carry-over.
// When zoomEvery > 0 a zoom-in wheel notch is added every zoomEvery frames.
func Turntable(frames int, stepPx float64, zoomEvery int) Script {
	if frames <= 0 {
		return nil
	}
	s := make(Script, frames)
	for i := range s {
		var evs []orbit.Event
		if i == 0 {
			evs = append(evs, orbit.Event{Kind: orbit.PointerDown})
		}
		evs = append(evs, orbit.Event{Kind: orbit.PointerMove, X: float64(i+1) * stepPx})
		if zoomEvery > 0 && i > 0 && i%zoomEvery == 0 {
			evs = append(evs, orbit.Event{Kind: orbit.Wheel, DeltaY: -1})
		}
		if i == frames-1 {
			evs = append(evs, orbit.Event{Kind: orbit.PointerUp})
		}
		s[i] = evs
	}
	return s
}
