package dragdrop

// session is one live interaction. A Controller holds either nil (idle), a
// *dragSession, or a *gestureSession; every field is sampled fresh when the
// session is created, so nothing carries over between sessions.
type session interface {
	mode() Mode
}

type dragSession struct {
	kind   InputKind
	origin Vec2
	scale  Vec2
	last   Vec2 // last page position seen, reported on cancel
	active bool

	listeners *listenerScope
}

func (s *dragSession) mode() Mode {
	if s.active {
		return ModeDragActive
	}
	return ModeDragPending
}

func (s *dragSession) track(e *Event) {
	if x, y, ok := e.position(); ok {
		s.last = Vec2{X: x, Y: y}
	}
}

type gestureSession struct {
	origin       Vec2
	origin2      Vec2
	scale        Vec2
	baseDistance float64
	baseAngle    float64
	active       bool

	listeners *listenerScope
}

func (s *gestureSession) mode() Mode {
	if s.active {
		return ModeGestureActive
	}
	return ModeGesturePending
}

// --- Listener scope ---

// listenerScope owns the document-level listeners of one session. Acquiring
// it raises the target's dragging flag; release removes every listener it
// added and lowers the flag. Release is idempotent.
type listenerScope struct {
	target   EventTarget
	handles  []ListenerHandle
	released bool
}

func acquireListeners(target EventTarget) *listenerScope {
	target.SetDragging(true)
	return &listenerScope{target: target}
}

func (l *listenerScope) add(t ListenerType, fn func(*Event)) {
	if l.released {
		return
	}
	l.handles = append(l.handles, l.target.AddEventListener(t, fn))
}

func (l *listenerScope) release() {
	if l == nil || l.released {
		return
	}
	l.released = true
	for i, h := range l.handles {
		h.Remove()
		l.handles[i] = nil
	}
	l.handles = l.handles[:0]
	l.target.SetDragging(false)
}
