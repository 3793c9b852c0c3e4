package dragdrop

import (
	"math"

	"go.uber.org/zap"
)

// enterGesture samples the two-finger baseline and asks OnGestureStart
// whether to proceed. A refused gesture attaches nothing.
func (c *Controller) enterGesture(e *Event) bool {
	if !c.coord.ClaimPointerDown(e) {
		return false
	}
	t1, t2 := e.Touches[0], e.Touches[1]
	sess := &gestureSession{
		origin:  Vec2{X: t1.PageX, Y: t1.PageY},
		origin2: Vec2{X: t2.PageX, Y: t2.PageY},
		scale:   surfaceScale(c.element),
	}
	dx := t2.PageX - t1.PageX
	dy := t2.PageY - t1.PageY
	sess.baseDistance = math.Sqrt(dx*dx + dy*dy)
	sess.baseAngle = math.Atan2(dy, dx)

	st := newGestureState(e, sess)
	if !c.cfg.OnGestureStart(st) {
		c.log.Debug("gesture refused by start callback")
		return false
	}
	if c.sess != nil {
		// The start callback began something else; leave it alone.
		return false
	}

	sess.listeners = acquireListeners(c.target)
	sess.listeners.add(TouchMove, func(ev *Event) { c.onGestureMove(sess, ev) })
	sess.listeners.add(TouchEnd, func(*Event) { c.finishGesture(sess) })
	sess.listeners.add(KeyDown, c.onKeyDown)
	c.sess = sess
	c.emitGesture(EventGestureStart, st)

	c.log.Debug("gesture pending",
		zap.Float64("distance", sess.baseDistance),
		zap.Float64("angle", sess.baseAngle))
	e.PreventDefault()
	return true
}

// onGestureMove withholds moves until the sensitivity is reached, then
// delivers every measured move. Moves that do not carry exactly two touches
// (a third finger landed) are skipped.
func (c *Controller) onGestureMove(sess *gestureSession, e *Event) {
	if c.sess != sess {
		return
	}
	st := newGestureState(e, sess)
	if !st.Measured {
		return
	}
	if !sess.active {
		if st.Moved() < c.cfg.sensitivity() {
			return
		}
		sess.active = true
		c.log.Debug("gesture active", zap.Float64("moved", st.Moved()))
	}
	c.cfg.OnGestureMove(st)
	c.emitGesture(EventGestureMove, st)
}

// finishGesture returns the controller to idle and notifies OnGestureEnd.
func (c *Controller) finishGesture(sess *gestureSession) {
	if c.sess != sess {
		return
	}
	c.sess = nil
	sess.listeners.release()
	if c.cfg.OnGestureEnd != nil {
		c.cfg.OnGestureEnd()
	}
	c.emitGesture(EventGestureEnd, nil)
	c.log.Debug("gesture end")
}
