package dragdrop

import "sync/atomic"

// ListenerType identifies a native event type. Document listeners are keyed
// by it.
type ListenerType uint8

const (
	MouseDown ListenerType = iota
	MouseMove
	MouseUp
	TouchStart
	TouchMove
	TouchEnd
	KeyDown
	numListenerTypes
)

func (t ListenerType) String() string {
	switch t {
	case MouseDown:
		return "mousedown"
	case MouseMove:
		return "mousemove"
	case MouseUp:
		return "mouseup"
	case TouchStart:
		return "touchstart"
	case TouchMove:
		return "touchmove"
	case TouchEnd:
		return "touchend"
	case KeyDown:
		return "keydown"
	}
	return "unknown"
}

// KeyEscape is the Key value of an Escape key-down event.
const KeyEscape = "Escape"

// Touch is a single contact point in page coordinates.
type Touch struct {
	ID           int
	PageX, PageY float64
}

// Event is a native input event as delivered by a host.
//
// Hosts must allocate a fresh Event for every native event. The first
// coordinator that sees a pointer-down stamps it with a process-wide sequence
// number, and that number is what distinguishes one physical pointer-down
// from another: reusing an Event value, or copying a claimed one, makes it
// count as the same pointer-down.
type Event struct {
	Type ListenerType

	// Mouse fields (MouseDown, MouseMove, MouseUp).
	Button       MouseButton
	PageX, PageY float64

	// Touch fields. Touches holds every contact still on the surface;
	// ChangedTouches holds the contacts that changed in this event (for
	// TouchEnd, the lifted ones).
	Touches        []Touch
	ChangedTouches []Touch

	// Key is set for KeyDown events.
	Key string

	defaultPrevented bool
	seq              uint64
}

var eventSeq atomic.Uint64

// sequence returns the event's identity, assigning the next sequence number
// on first use.
func (e *Event) sequence() uint64 {
	if e.seq == 0 {
		e.seq = eventSeq.Add(1)
	}
	return e.seq
}

// PreventDefault marks the event as consumed so the host skips its default
// handling (text selection, scrolling).
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a handler called PreventDefault.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// IsTouch reports whether e is a touch event.
func (e *Event) IsTouch() bool {
	return e.Type == TouchStart || e.Type == TouchMove || e.Type == TouchEnd
}

// position returns the page position carried by e. Touch events use the
// first active contact; a TouchEnd without remaining contacts falls back to
// the first lifted one.
func (e *Event) position() (x, y float64, ok bool) {
	if e == nil {
		return 0, 0, false
	}
	if !e.IsTouch() {
		if e.Type == KeyDown {
			return 0, 0, false
		}
		return e.PageX, e.PageY, true
	}
	if e.Type == TouchEnd && len(e.ChangedTouches) > 0 {
		return e.ChangedTouches[0].PageX, e.ChangedTouches[0].PageY, true
	}
	if len(e.Touches) > 0 {
		return e.Touches[0].PageX, e.Touches[0].PageY, true
	}
	if len(e.ChangedTouches) > 0 {
		return e.ChangedTouches[0].PageX, e.ChangedTouches[0].PageY, true
	}
	return 0, 0, false
}
