package orbit

// EventKind identifies a low-level input event.
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	Wheel
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "pointer-down"
	case PointerMove:
		return "pointer-move"
	case PointerUp:
		return "pointer-up"
	case Wheel:
		return "wheel"
	}
	return "unknown"
}

// Event is one pointer or wheel input. X/Y are screen coordinates; DeltaY is the
// wheel delta, negative when scrolling up.
type Event struct {
	Kind   EventKind
	X, Y   float64
	DeltaY float64
}

// Handle dispatches ev to the matching handler.
func (c *Controller) Handle(ev Event) {
	switch ev.Kind {
	case PointerDown:
		c.PointerDown(ev.X, ev.Y)
	case PointerMove:
		c.PointerMove(ev.X, ev.Y)
	case PointerUp:
		c.PointerUp()
	case Wheel:
		c.Wheel(ev.DeltaY)
	}
}
