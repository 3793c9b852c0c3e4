// Package ebitenhost drives a dragdrop.Document from Ebitengine input.
//
// Ebitengine exposes input as per-frame state rather than events. Host polls
// the mouse, touches and the Escape key once per Update and turns the
// changes since the previous frame into native-style events: MouseDown,
// MouseMove and MouseUp for the cursor, TouchStart, TouchMove and TouchEnd
// carrying the full touch list, and KeyDown for Escape.
//
//	host := ebitenhost.New(doc)
//
//	func (g *Game) Update() error {
//		g.host.Update()
//		g.manager.Update(1.0 / float32(ebiten.TPS()))
//		return nil
//	}
package ebitenhost

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/dragdrop"
)

const maxTouches = 10

// Host polls Ebitengine input and dispatches it to a Document.
type Host struct {
	doc *dragdrop.Document

	mouseDown      bool
	button         dragdrop.MouseButton
	mouseX, mouseY float64

	// Touches currently on the surface, in the order they landed.
	touches  []dragdrop.Touch
	touchIDs []ebiten.TouchID

	injectQueue []frameInput
	runner      *TestRunner

	poll func(h *Host) frameInput
}

// New creates a Host dispatching into doc.
func New(doc *dragdrop.Document) *Host {
	return &Host{doc: doc, poll: pollEbiten}
}

// Document returns the document the host dispatches into.
func (h *Host) Document() *dragdrop.Document {
	return h.doc
}

// Touches returns the touches currently on the surface.
func (h *Host) Touches() []dragdrop.Touch {
	return h.touches
}

// Update reads one frame of input and dispatches the resulting events. Call
// it once per ebiten.Game Update. Injected input, when queued, replaces real
// input for the frame.
func (h *Host) Update() {
	if h.runner != nil {
		h.runner.step(h)
	}
	if in, ok := h.nextInjected(); ok {
		h.feed(in)
		return
	}
	h.feed(h.poll(h))
}

// frameInput is one frame of pointer and keyboard state.
type frameInput struct {
	hasMouse bool
	mouse    mouseInput

	hasTouches bool
	touches    []dragdrop.Touch

	escape bool
}

type mouseInput struct {
	x, y                float64
	left, right, middle bool
}

// pressed reports whether any button is down and which one wins. Left beats
// right beats middle.
func (m mouseInput) pressed() (bool, dragdrop.MouseButton) {
	switch {
	case m.left:
		return true, dragdrop.MouseButtonLeft
	case m.right:
		return true, dragdrop.MouseButtonRight
	case m.middle:
		return true, dragdrop.MouseButtonMiddle
	}
	return false, dragdrop.MouseButtonLeft
}

func pollEbiten(h *Host) frameInput {
	mx, my := ebiten.CursorPosition()
	in := frameInput{
		hasMouse: true,
		mouse: mouseInput{
			x:      float64(mx),
			y:      float64(my),
			left:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
			right:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
			middle: ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		},
		hasTouches: true,
		escape:     inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
	h.touchIDs = ebiten.AppendTouchIDs(h.touchIDs[:0])
	for _, id := range h.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		in.touches = append(in.touches, dragdrop.Touch{
			ID:    int(id),
			PageX: float64(tx),
			PageY: float64(ty),
		})
	}
	return in
}

// feed dispatches the difference between in and the previous frame.
func (h *Host) feed(in frameInput) {
	if in.escape {
		h.doc.Dispatch(&dragdrop.Event{Type: dragdrop.KeyDown, Key: dragdrop.KeyEscape})
	}
	if in.hasTouches {
		h.feedTouches(in.touches)
	}
	if in.hasMouse {
		h.feedMouse(in.mouse)
	}
}

// feedTouches reports lifted touches first, then moves, then new touches.
// Each event carries the touches on the surface after it happened.
func (h *Host) feedTouches(cur []dragdrop.Touch) {
	if len(cur) > maxTouches {
		cur = cur[:maxTouches]
	}

	var remaining, lifted, moved []dragdrop.Touch
	for _, prev := range h.touches {
		t, ok := findTouch(cur, prev.ID)
		if !ok {
			lifted = append(lifted, prev)
			continue
		}
		if t.PageX != prev.PageX || t.PageY != prev.PageY {
			moved = append(moved, t)
		}
		remaining = append(remaining, t)
	}
	var added []dragdrop.Touch
	for _, t := range cur {
		if _, ok := findTouch(h.touches, t.ID); !ok {
			added = append(added, t)
		}
	}

	if len(lifted) > 0 {
		h.touches = remaining
		h.doc.Dispatch(&dragdrop.Event{
			Type:           dragdrop.TouchEnd,
			Touches:        slices.Clip(remaining),
			ChangedTouches: lifted,
		})
	}
	if len(moved) > 0 {
		h.touches = remaining
		h.doc.Dispatch(&dragdrop.Event{
			Type:           dragdrop.TouchMove,
			Touches:        slices.Clip(remaining),
			ChangedTouches: moved,
		})
	}
	h.touches = remaining
	if len(added) > 0 {
		h.touches = append(slices.Clip(remaining), added...)
		h.doc.Dispatch(&dragdrop.Event{
			Type:           dragdrop.TouchStart,
			Touches:        h.touches,
			ChangedTouches: added,
		})
	}
}

func findTouch(ts []dragdrop.Touch, id int) (dragdrop.Touch, bool) {
	for _, t := range ts {
		if t.ID == id {
			return t, true
		}
	}
	return dragdrop.Touch{}, false
}

// feedMouse runs the press/move/release state machine for the cursor. The
// button is captured at press time and reported until release.
func (h *Host) feedMouse(m mouseInput) {
	moved := m.x != h.mouseX || m.y != h.mouseY
	h.mouseX, h.mouseY = m.x, m.y
	pressed, button := m.pressed()

	switch {
	case pressed && !h.mouseDown:
		h.mouseDown = true
		h.button = button
		h.dispatchMouse(dragdrop.MouseDown)
	case !pressed && h.mouseDown:
		h.mouseDown = false
		h.dispatchMouse(dragdrop.MouseUp)
	case moved:
		h.dispatchMouse(dragdrop.MouseMove)
	}
}

func (h *Host) dispatchMouse(typ dragdrop.ListenerType) {
	h.doc.Dispatch(&dragdrop.Event{
		Type:   typ,
		Button: h.button,
		PageX:  h.mouseX,
		PageY:  h.mouseY,
	})
}
