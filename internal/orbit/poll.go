package orbit

// PointerState is the pointer as sampled once per frame by a polling input API.
// WheelY is positive when scrolling up.
type PointerState struct {
	X, Y    float64
	Pressed bool
	WheelY  float64
}

// Poller turns successive pointer samples into the events the controller consumes.
type Poller struct {
	pressed bool
	x, y    float64
}

// Events compares s with the previous sample and returns the resulting events in order.
func (p *Poller) Events(s PointerState) []Event {
	var evs []Event
	switch {
	case s.Pressed && !p.pressed:
		evs = append(evs, Event{Kind: PointerDown, X: s.X, Y: s.Y})
	case s.Pressed && (s.X != p.x || s.Y != p.y):
		evs = append(evs, Event{Kind: PointerMove, X: s.X, Y: s.Y})
	case !s.Pressed && p.pressed:
		evs = append(evs, Event{Kind: PointerUp, X: s.X, Y: s.Y})
	}
	if s.WheelY != 0 {
		evs = append(evs, Event{Kind: Wheel, X: s.X, Y: s.Y, DeltaY: -s.WheelY})
	}
	p.pressed, p.x, p.y = s.Pressed, s.X, s.Y
	return evs
}
