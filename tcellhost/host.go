// Package tcellhost drives a dragdrop.Document from tcell terminal events.
//
// Terminals report the mouse as a button mask on every motion event. Host
// compares each mask with the previous one to produce MouseDown, MouseMove
// and MouseUp, and turns the Escape key into KeyDown. Coordinates are cell
// columns and rows.
package tcellhost

import (
	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/dragdrop"
)

const buttonMask = tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle

// Host translates tcell events into Document events.
type Host struct {
	doc *dragdrop.Document

	buttons tcell.ButtonMask
	button  dragdrop.MouseButton
	x, y    int
}

// New creates a Host dispatching into doc.
func New(doc *dragdrop.Document) *Host {
	return &Host{doc: doc}
}

// Document returns the document the host dispatches into.
func (h *Host) Document() *dragdrop.Document {
	return h.doc
}

// HandleEvent dispatches ev if it is a mouse or Escape key event. It reports
// whether the event was consumed.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventMouse:
		x, y := e.Position()
		h.handleMouse(x, y, e.Buttons())
		return true
	case *tcell.EventKey:
		if e.Key() != tcell.KeyEscape {
			return false
		}
		h.doc.Dispatch(&dragdrop.Event{Type: dragdrop.KeyDown, Key: dragdrop.KeyEscape})
		return true
	}
	return false
}

func (h *Host) handleMouse(x, y int, buttons tcell.ButtonMask) {
	moved := x != h.x || y != h.y
	h.x, h.y = x, y

	// Wheel events often omit held buttons; keep the previous state.
	if buttons&(tcell.WheelUp|tcell.WheelDown|tcell.WheelLeft|tcell.WheelRight) != 0 {
		return
	}

	prev := h.buttons
	h.buttons = buttons & buttonMask
	switch {
	case prev == 0 && h.buttons != 0:
		h.button = convertButton(h.buttons)
		h.dispatch(dragdrop.MouseDown)
	case prev != 0 && h.buttons == 0:
		h.dispatch(dragdrop.MouseUp)
	case moved:
		h.dispatch(dragdrop.MouseMove)
	}
}

func convertButton(b tcell.ButtonMask) dragdrop.MouseButton {
	switch {
	case b&tcell.ButtonPrimary != 0:
		return dragdrop.MouseButtonLeft
	case b&tcell.ButtonSecondary != 0:
		return dragdrop.MouseButtonRight
	default:
		return dragdrop.MouseButtonMiddle
	}
}

func (h *Host) dispatch(typ dragdrop.ListenerType) {
	h.doc.Dispatch(&dragdrop.Event{
		Type:   typ,
		Button: h.button,
		PageX:  float64(h.x),
		PageY:  float64(h.y),
	})
}
