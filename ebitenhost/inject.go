package ebitenhost

import (
	"math"

	"github.com/phanxgames/dragdrop"
)

// Synthetic touch IDs used by InjectPinch. Real Ebitengine touch IDs are
// small positive integers, so these never collide in practice.
const (
	pinchTouch1 = -1
	pinchTouch2 = -2
)

// InjectPress queues a left-button press at the given screen coordinates.
// Each injected event consumes one Update and suppresses real input for
// that frame.
func (h *Host) InjectPress(x, y float64) {
	h.injectPointer(x, y, true, dragdrop.MouseButtonLeft)
}

// InjectMove queues a cursor move with the left button held. Use it between
// InjectPress and InjectRelease to simulate a drag.
func (h *Host) InjectMove(x, y float64) {
	h.injectPointer(x, y, true, dragdrop.MouseButtonLeft)
}

// InjectRelease queues a release of every mouse button at the given screen
// coordinates.
func (h *Host) InjectRelease(x, y float64) {
	h.injectPointer(x, y, false, dragdrop.MouseButtonLeft)
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (h *Host) InjectClick(x, y float64) {
	h.InjectPress(x, y)
	h.InjectRelease(x, y)
}

// InjectDrag queues a left-button drag: press at (fromX, fromY), frames-2
// linearly interpolated moves, and release at (toX, toY). The sequence
// consumes frames frames, at least 2.
func (h *Host) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	h.InjectButtonDrag(dragdrop.MouseButtonLeft, fromX, fromY, toX, toY, frames)
}

// InjectButtonDrag is InjectDrag with an explicit mouse button.
func (h *Host) InjectButtonDrag(button dragdrop.MouseButton, fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	h.injectPointer(fromX, fromY, true, button)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		h.injectPointer(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t, true, button)
	}
	h.injectPointer(toX, toY, false, button)
}

// InjectTouches queues a frame in which exactly the given touches are on the
// surface. An empty call lifts every touch.
func (h *Host) InjectTouches(touches ...dragdrop.Touch) {
	h.injectQueue = append(h.injectQueue, frameInput{
		hasTouches: true,
		touches:    touches,
	})
}

// InjectPinch queues a horizontal two-finger pinch centred on (cx, cy). The
// fingers start fromDist apart, spread or close to toDist over the
// following frames, and lift on the last frame. Consumes frames frames, at
// least 3.
func (h *Host) InjectPinch(cx, cy, fromDist, toDist float64, frames int) {
	if frames < 3 {
		frames = 3
	}
	steps := frames - 2
	h.InjectTouches(pinchTouches(cx, cy, fromDist)...)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		h.InjectTouches(pinchTouches(cx, cy, fromDist+(toDist-fromDist)*t)...)
	}
	h.InjectTouches()
}

func pinchTouches(cx, cy, dist float64) []dragdrop.Touch {
	half := math.Abs(dist) / 2
	return []dragdrop.Touch{
		{ID: pinchTouch1, PageX: cx - half, PageY: cy},
		{ID: pinchTouch2, PageX: cx + half, PageY: cy},
	}
}

// InjectEscape queues an Escape key press.
func (h *Host) InjectEscape() {
	h.injectQueue = append(h.injectQueue, frameInput{escape: true})
}

// Pending returns the number of queued injected frames.
func (h *Host) Pending() int {
	return len(h.injectQueue)
}

func (h *Host) injectPointer(x, y float64, pressed bool, button dragdrop.MouseButton) {
	m := mouseInput{x: x, y: y}
	if pressed {
		switch button {
		case dragdrop.MouseButtonRight:
			m.right = true
		case dragdrop.MouseButtonMiddle:
			m.middle = true
		default:
			m.left = true
		}
	}
	h.injectQueue = append(h.injectQueue, frameInput{hasMouse: true, mouse: m})
}

// nextInjected pops one frame from the inject queue.
func (h *Host) nextInjected() (frameInput, bool) {
	if len(h.injectQueue) == 0 {
		return frameInput{}, false
	}
	in := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue[len(h.injectQueue)-1] = frameInput{}
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]
	return in, true
}
