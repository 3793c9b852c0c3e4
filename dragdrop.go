package dragdrop

import "math"

// Vec2 is a 2D vector used for page positions, deltas, and scale factors.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in page coordinates. The coordinate
// system has its origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
	MouseButtonRight                     // secondary (right) mouse button
)

// InputKind identifies the physical input that started a drag session.
// It is fixed for the lifetime of the session.
type InputKind uint8

const (
	InputMouseLeft  InputKind = iota // left (or middle) mouse button
	InputMouseRight                  // right mouse button
	InputTouch                       // single-finger touch
)

func (k InputKind) String() string {
	switch k {
	case InputMouseLeft:
		return "left"
	case InputMouseRight:
		return "right"
	case InputTouch:
		return "touch"
	}
	return "unknown"
}

// Mode is the observable state of a Controller.
type Mode uint8

const (
	ModeIdle           Mode = iota // no session
	ModeDragPending                // drag entered, move threshold not crossed
	ModeDragActive                 // drag start fired
	ModeGesturePending             // gesture accepted, sensitivity not reached
	ModeGestureActive              // gesture moves are being delivered
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDragPending:
		return "drag-pending"
	case ModeDragActive:
		return "drag-active"
	case ModeGesturePending:
		return "gesture-pending"
	case ModeGestureActive:
		return "gesture-active"
	}
	return "unknown"
}

// EventType identifies a kind of interaction event reported to an EntityStore.
type EventType uint8

const (
	EventDragStart    EventType = iota // fires once when a drag commits
	EventDragMove                      // fires for every delivered drag move
	EventDragEnd                       // fires when a committed drag finishes or is cancelled
	EventGestureStart                  // fires when a gesture start is accepted
	EventGestureMove                   // fires for every delivered gesture move
	EventGestureEnd                    // fires when a gesture session ends
)

// surfaceScale returns the ratio between a surface's layout size and its
// rendered bounding box. The rendered size is rounded to whole pixels first
// so subpixel transforms do not produce scale noise.
func surfaceScale(s Surface) Vec2 {
	scale := Vec2{X: 1, Y: 1}
	if s == nil {
		return scale
	}
	w, h := s.OffsetSize()
	rect := s.BoundingRect()
	if rw := math.Round(rect.Width); rw > 0 && w > 0 {
		scale.X = w / rw
	}
	if rh := math.Round(rect.Height); rh > 0 && h > 0 {
		scale.Y = h / rh
	}
	return scale
}
