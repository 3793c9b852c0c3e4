package dragdrop

import "math"

// DragState is the snapshot passed to drag and drop callbacks.
type DragState struct {
	// Page position of the pointer for this event.
	PageX, PageY float64
	// Page position where the session started.
	OriginX, OriginY float64
	// Raw displacement from the origin in page pixels.
	DeltaX, DeltaY float64
	// Displacement from the origin in the source surface's layout pixels.
	DX, DY float64

	Kind     InputKind
	Canceled bool // set when the session ended without a release event
	Source   Surface
	Event    *Event // nil when the session was cancelled

	coord         DragCoordinator
	data          any
	accepted      bool
	acceptMessage string
}

func newDragState(e *Event, sess *dragSession, src Surface, coord DragCoordinator) *DragState {
	st := &DragState{
		OriginX: sess.origin.X,
		OriginY: sess.origin.Y,
		Kind:    sess.kind,
		Source:  src,
		Event:   e,
		coord:   coord,
	}
	x, y, ok := e.position()
	if !ok {
		// Cancelled or key-triggered: report the last known position.
		x, y = sess.last.X, sess.last.Y
		st.Canceled = e == nil || e.Type == KeyDown
	}
	st.PageX, st.PageY = x, y
	st.DeltaX = x - sess.origin.X
	st.DeltaY = y - sess.origin.Y
	st.DX = st.DeltaX * sess.scale.X
	st.DY = st.DeltaY * sess.scale.Y
	return st
}

// Moved reports whether the pointer left its origin.
func (s *DragState) Moved() bool {
	return s.DeltaX != 0 || s.DeltaY != 0
}

// StartDrag registers this session as the live drag with the coordinator.
// An OnDragStart callback that does not call StartDrag vetoes the drag.
func (s *DragState) StartDrag(data any) {
	s.data = data
	if s.coord != nil {
		s.coord.Begin(s, data)
	}
}

// Data returns the payload of the live drag, as passed to StartDrag.
func (s *DragState) Data() any {
	return s.data
}

// Accept marks the drop target currently receiving OnDragOver as willing to
// take the drop. The message is free-form host data (for example a drop
// position hint).
func (s *DragState) Accept(message string) {
	s.accepted = true
	s.acceptMessage = message
}

// Reject withdraws a previous Accept within the same OnDragOver call.
func (s *DragState) Reject() {
	s.accepted = false
	s.acceptMessage = ""
}

// Accepted reports whether a drop target accepted this state.
func (s *DragState) Accepted() bool {
	return s.accepted
}

// AcceptMessage returns the message passed to Accept.
func (s *DragState) AcceptMessage() string {
	return s.acceptMessage
}

// GestureState is the snapshot passed to gesture callbacks.
type GestureState struct {
	// Finger positions at gesture start.
	Origin1, Origin2 Vec2
	// Distance and angle between the fingers at gesture start.
	BaseDistance, BaseAngle float64

	// Current finger positions.
	Touch1, Touch2 Vec2
	// Per-finger displacement from its origin, in layout pixels.
	DX1, DY1, DX2, DY2 float64
	// Current distance and angle between the fingers.
	Distance, Angle float64
	// Distance / BaseDistance (1 when BaseDistance is zero).
	Scale float64
	// Angle - BaseAngle, normalized to (-π, π].
	Rotation float64
	// Midpoint between the fingers.
	CenterX, CenterY float64

	// Measured is false when the event did not carry exactly two touches.
	Measured bool
	Event    *Event
}

func newGestureState(e *Event, sess *gestureSession) *GestureState {
	st := &GestureState{
		Origin1:      sess.origin,
		Origin2:      sess.origin2,
		BaseDistance: sess.baseDistance,
		BaseAngle:    sess.baseAngle,
		Scale:        1,
		Event:        e,
	}
	if e == nil || len(e.Touches) != 2 {
		return st
	}
	t1, t2 := e.Touches[0], e.Touches[1]
	st.Measured = true
	st.Touch1 = Vec2{X: t1.PageX, Y: t1.PageY}
	st.Touch2 = Vec2{X: t2.PageX, Y: t2.PageY}
	st.DX1 = (t1.PageX - sess.origin.X) * sess.scale.X
	st.DY1 = (t1.PageY - sess.origin.Y) * sess.scale.Y
	st.DX2 = (t2.PageX - sess.origin2.X) * sess.scale.X
	st.DY2 = (t2.PageY - sess.origin2.Y) * sess.scale.Y

	dx := t2.PageX - t1.PageX
	dy := t2.PageY - t1.PageY
	st.Distance = math.Sqrt(dx*dx + dy*dy)
	st.Angle = math.Atan2(dy, dx)
	if sess.baseDistance > 0 {
		st.Scale = st.Distance / sess.baseDistance
	}
	st.Rotation = normalizeAngle(st.Angle - sess.baseAngle)
	st.CenterX = (t1.PageX + t2.PageX) / 2
	st.CenterY = (t1.PageY + t2.PageY) / 2
	return st
}

// Moved returns the displacement magnitude compared against the gesture
// sensitivity: the largest of the per-finger deltas, the change in finger
// distance, and the arc each finger travelled through the rotation.
func (s *GestureState) Moved() float64 {
	if !s.Measured {
		return 0
	}
	m := math.Max(math.Abs(s.DX1), math.Abs(s.DY1))
	m = math.Max(m, math.Abs(s.DX2))
	m = math.Max(m, math.Abs(s.DY2))
	m = math.Max(m, math.Abs(s.Distance-s.BaseDistance))
	m = math.Max(m, math.Abs(s.Rotation)*s.BaseDistance/2)
	return m
}

func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
