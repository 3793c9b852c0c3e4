package dragdrop

// EventTarget is the document-level event source a Controller attaches its
// transient move/end/key listeners to. It also carries the process-wide
// "dragging" flag sibling UI can query.
//
// Every session calls SetDragging(true) once when it starts and
// SetDragging(false) once when it ends. Dragging reports true while any
// session that raised the flag is still live.
type EventTarget interface {
	AddEventListener(t ListenerType, fn func(*Event)) ListenerHandle
	SetDragging(on bool)
	Dragging() bool
}

// ListenerHandle removes a registered listener or element.
type ListenerHandle interface {
	Remove()
}

// Surface is a host element: something with a layout size and a rendered
// bounding box in page coordinates. The two differ when the element is drawn
// under a scale transform.
type Surface interface {
	// OffsetSize returns the untransformed layout size.
	OffsetSize() (width, height float64)
	// BoundingRect returns the rendered box in page coordinates.
	BoundingRect() Rect
}

// Element is a basic Surface: a layout box drawn at (X, Y) with an optional
// render scale. A zero ScaleX or ScaleY is treated as 1.
type Element struct {
	Name          string
	X, Y          float64
	Width, Height float64
	ScaleX        float64
	ScaleY        float64
}

// OffsetSize implements Surface.
func (el *Element) OffsetSize() (float64, float64) {
	return el.Width, el.Height
}

// BoundingRect implements Surface.
func (el *Element) BoundingRect() Rect {
	sx, sy := el.ScaleX, el.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return Rect{X: el.X, Y: el.Y, Width: el.Width * sx, Height: el.Height * sy}
}

// --- Listener registry ---

type listener struct {
	id uint32
	fn func(*Event)
}

type elementEntry struct {
	id      uint32
	surface Surface
	fn      func(*Event) bool
}

// Document is the default EventTarget. Hosts feed native events into it with
// Dispatch; pointer-down events are first routed to the topmost registered
// element under the pointer, then every event goes to the document-level
// listeners of its type.
//
// Document is not safe for concurrent use; call it from the update loop.
type Document struct {
	listeners [numListenerTypes][]listener
	elements  []elementEntry
	nextID    uint32
	dragging  int // live sessions holding the dragging flag
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// CallbackHandle allows removing a registered listener or element.
type CallbackHandle struct {
	id      uint32
	doc     *Document
	typ     ListenerType
	element bool
}

// Remove unregisters the listener or element. Removing twice is a no-op.
func (h CallbackHandle) Remove() {
	if h.doc == nil {
		return
	}
	if h.element {
		h.doc.removeElement(h.id)
		return
	}
	h.doc.listeners[h.typ] = removeListener(h.doc.listeners[h.typ], h.id)
}

func removeListener(s []listener, id uint32) []listener {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = listener{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (d *Document) removeElement(id uint32) {
	for i := range d.elements {
		if d.elements[i].id == id {
			copy(d.elements[i:], d.elements[i+1:])
			d.elements[len(d.elements)-1] = elementEntry{}
			d.elements = d.elements[:len(d.elements)-1]
			return
		}
	}
}

// AddEventListener registers a document-level listener for t.
func (d *Document) AddEventListener(t ListenerType, fn func(*Event)) ListenerHandle {
	d.nextID++
	id := d.nextID
	d.listeners[t] = append(d.listeners[t], listener{id: id, fn: fn})
	return CallbackHandle{id: id, doc: d, typ: t}
}

// AddElement registers a surface that receives pointer-down events landing
// inside its bounding rect. Elements added later are on top. fn returns true
// when it handled the event, which stops routing to elements underneath.
func (d *Document) AddElement(s Surface, fn func(*Event) bool) ListenerHandle {
	d.nextID++
	id := d.nextID
	d.elements = append(d.elements, elementEntry{id: id, surface: s, fn: fn})
	return CallbackHandle{id: id, doc: d, element: true}
}

// ListenerCount returns the number of document-level listeners currently
// registered, across all types.
func (d *Document) ListenerCount() int {
	n := 0
	for _, ls := range d.listeners {
		n += len(ls)
	}
	return n
}

// SetDragging raises or lowers the dragging flag for one session. Raises are
// counted, so the flag stays set until every raise has been lowered. Extra
// lowers are ignored.
func (d *Document) SetDragging(on bool) {
	if on {
		d.dragging++
		return
	}
	if d.dragging > 0 {
		d.dragging--
	}
}

// Dragging reports whether a drag or gesture session, pending or active, is
// in progress anywhere on the document.
func (d *Document) Dragging() bool {
	return d.dragging > 0
}

// Dispatch delivers e. Listeners removed by an earlier handler during the
// same dispatch are skipped; listeners added during dispatch wait for the
// next event.
func (d *Document) Dispatch(e *Event) {
	if e.Type == MouseDown || e.Type == TouchStart {
		d.routeDown(e)
	}

	snapshot := append([]listener(nil), d.listeners[e.Type]...)
	for _, l := range snapshot {
		if !d.hasListener(e.Type, l.id) {
			continue
		}
		l.fn(e)
	}
}

func (d *Document) hasListener(t ListenerType, id uint32) bool {
	for _, l := range d.listeners[t] {
		if l.id == id {
			return true
		}
	}
	return false
}

// routeDown hands a pointer-down to the topmost element containing it.
func (d *Document) routeDown(e *Event) {
	x, y, ok := downPosition(e)
	if !ok {
		return
	}
	snapshot := append([]elementEntry(nil), d.elements...)
	for i := len(snapshot) - 1; i >= 0; i-- {
		el := snapshot[i]
		if !el.surface.BoundingRect().Contains(x, y) {
			continue
		}
		if el.fn(e) {
			return
		}
	}
}

// downPosition is where a pointer-down landed: the newest contact for
// touches, the cursor for mice.
func downPosition(e *Event) (float64, float64, bool) {
	if e.Type == TouchStart {
		if n := len(e.ChangedTouches); n > 0 {
			return e.ChangedTouches[n-1].PageX, e.ChangedTouches[n-1].PageY, true
		}
		if n := len(e.Touches); n > 0 {
			return e.Touches[n-1].PageX, e.Touches[n-1].PageY, true
		}
		return 0, 0, false
	}
	return e.PageX, e.PageY, true
}
