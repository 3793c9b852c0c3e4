package dragdrop

import "go.uber.org/zap"

// enterDrag starts a pending drag session for a mouse-down or single-touch
// start.
func (c *Controller) enterDrag(e *Event) bool {
	if !c.coord.ClaimPointerDown(e) {
		// Another session already started from this event.
		return false
	}
	x, y, _ := e.position()
	sess := &dragSession{
		kind:   inputKindOf(e),
		origin: Vec2{X: x, Y: y},
		last:   Vec2{X: x, Y: y},
		scale:  surfaceScale(c.element),
	}

	sess.listeners = acquireListeners(c.target)
	if sess.kind == InputTouch {
		sess.listeners.add(TouchMove, func(ev *Event) { c.onDragTouchMove(sess, ev) })
		sess.listeners.add(TouchEnd, func(ev *Event) { c.finishDrag(sess, ev) })
	} else {
		sess.listeners.add(MouseMove, func(ev *Event) { c.onDragMouseMove(sess, ev) })
		sess.listeners.add(MouseUp, func(ev *Event) { c.finishDrag(sess, ev) })
	}
	sess.listeners.add(KeyDown, c.onKeyDown)
	c.sess = sess

	c.log.Debug("drag pending",
		zap.Stringer("kind", sess.kind),
		zap.Float64("x", x), zap.Float64("y", y),
		zap.Float64("scaleX", sess.scale.X), zap.Float64("scaleY", sess.scale.Y))

	if c.cfg.ImmediateDragStart {
		c.commitDrag(sess, newDragState(e, sess, c.element, c.coord), false)
	}
	e.PreventDefault()
	return true
}

func inputKindOf(e *Event) InputKind {
	if e.IsTouch() {
		return InputTouch
	}
	if e.Button == MouseButtonRight {
		return InputMouseRight
	}
	return InputMouseLeft
}

// commitDrag moves a pending session to active and fires OnDragStart. If the
// start callback did not register a live drag with the coordinator the
// session ends immediately. deliver passes st on to OnDragMove as the first
// move. It reports whether the session is still live.
func (c *Controller) commitDrag(sess *dragSession, st *DragState, deliver bool) bool {
	sess.active = true
	c.log.Debug("drag start", zap.Float64("x", st.PageX), zap.Float64("y", st.PageY))
	c.cfg.OnDragStart(st)
	c.emitDrag(EventDragStart, st)
	if c.sess != sess {
		// Cancelled from inside the callback.
		return false
	}
	if !c.coord.IsActive() {
		c.log.Debug("drag vetoed by start callback")
		c.finishDrag(sess, nil)
		return false
	}
	c.coord.Move(st)
	if deliver {
		c.deliverDragMove(st)
	}
	return c.sess == sess
}

func (c *Controller) deliverDragMove(st *DragState) {
	if c.cfg.OnDragMove != nil {
		c.cfg.OnDragMove(st)
	}
	c.emitDrag(EventDragMove, st)
}

func (c *Controller) onDragMouseMove(sess *dragSession, e *Event) {
	if c.sess != sess {
		return
	}
	sess.track(e)
	st := newDragState(e, sess, c.element, c.coord)
	if !sess.active {
		if !st.Moved() {
			return
		}
		if c.commitDrag(sess, st, true) {
			e.PreventDefault()
		}
		return
	}
	c.coord.Move(st)
	c.deliverDragMove(st)
	e.PreventDefault()
}

func (c *Controller) onDragTouchMove(sess *dragSession, e *Event) {
	if c.sess != sess {
		return
	}
	if len(e.Touches) != 1 {
		// Touch drags need exactly one finger; anything else is a release.
		c.finishDrag(sess, e)
		return
	}
	c.onDragMouseMove(sess, e)
}

// finishDrag returns the controller to idle. e is the release event, or nil
// when the session was cancelled. Only a committed session reports an end,
// and only a real release is offered to the drop target.
func (c *Controller) finishDrag(sess *dragSession, e *Event) {
	if c.sess != sess {
		return
	}
	c.sess = nil
	sess.listeners.release()
	sess.track(e)

	st := newDragState(e, sess, c.element, c.coord)
	if sess.active {
		if !st.Canceled {
			c.coord.Drop(st)
		}
		if c.cfg.OnDragEnd != nil {
			c.cfg.OnDragEnd(st)
		}
		c.emitDrag(EventDragEnd, st)
		c.log.Debug("drag end",
			zap.Bool("canceled", st.Canceled),
			zap.Float64("dx", st.DX), zap.Float64("dy", st.DY))
	} else {
		c.log.Debug("pending drag dropped")
	}
	c.coord.End(st)
}
