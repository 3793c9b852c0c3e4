package dragdrop

import "go.uber.org/zap"

// Config declares a Controller's callbacks and options. Leaving a callback
// nil disables the trigger path it belongs to: without OnDragStart no drag
// starts, and without both OnGestureStart and OnGestureMove no gesture
// starts. Drop-target callbacks are only registered when OnDragOver is set.
type Config struct {
	OnDragStart func(*DragState)
	OnDragMove  func(*DragState)
	OnDragEnd   func(*DragState)

	OnDragOver  func(*DragState)
	OnDragLeave func(*DragState)
	OnDrop      func(*DragState)

	// OnGestureStart returns false to refuse the gesture.
	OnGestureStart func(*GestureState) bool
	OnGestureMove  func(*GestureState)
	OnGestureEnd   func()

	// OnElement is called whenever the controller's element changes.
	OnElement func(Surface)

	Options

	// Store receives interaction events tagged with EntityID.
	Store    EntityStore
	EntityID uint32

	// Logger receives session transitions at debug level. Nil disables
	// logging.
	Logger *zap.Logger
}

// capabilities is decided once per pointer-down from the declared callbacks.
type capabilities struct {
	drag    bool
	gesture bool
}

func (cfg *Config) capabilities() capabilities {
	return capabilities{
		drag:    cfg.OnDragStart != nil,
		gesture: cfg.OnGestureStart != nil && cfg.OnGestureMove != nil,
	}
}

type entry uint8

const (
	entryNone entry = iota
	entryDrag
	entryGesture
)

// classify decides which session a pointer-down enters.
func classify(e *Event, caps capabilities) entry {
	switch e.Type {
	case MouseDown:
		if caps.drag {
			return entryDrag
		}
	case TouchStart:
		switch len(e.Touches) {
		case 1:
			if caps.drag {
				return entryDrag
			}
		case 2:
			if caps.gesture {
				return entryGesture
			}
		}
	}
	return entryNone
}

// Controller turns pointer-downs on one surface into drag and gesture
// sessions. It attaches transient listeners to its EventTarget while a
// session is live and guarantees they are removed on every exit path.
//
// A Controller is driven synchronously from the host's event loop and is not
// safe for concurrent use.
type Controller struct {
	cfg     Config
	target  EventTarget
	coord   DragCoordinator
	log     *zap.Logger
	element Surface
	mounted ListenerHandle
	sess    session
}

// NewController creates an idle controller. target receives the session
// listeners; coord arbitrates the live drag and drop targets.
func NewController(target EventTarget, coord DragCoordinator, cfg Config) *Controller {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		cfg:    cfg,
		target: target,
		coord:  coord,
		log:    log.Named("dragdrop"),
	}
}

// Mode returns the current session state.
func (c *Controller) Mode() Mode {
	if c.sess == nil {
		return ModeIdle
	}
	return c.sess.mode()
}

// Element returns the current host element, or nil.
func (c *Controller) Element() Surface {
	return c.element
}

// Initiator reports whether the element starts drags or gestures at all.
// Hosts use it to mark the element (cursor, "drag-initiator" styling).
func (c *Controller) Initiator() bool {
	caps := c.cfg.capabilities()
	return caps.drag || c.cfg.OnGestureStart != nil
}

// SetElement records the host element. When OnDragOver is declared the old
// element is deregistered as a drop target and the new one registered.
// Setting the same element again does nothing.
func (c *Controller) SetElement(s Surface) {
	if s == c.element {
		return
	}
	if c.element != nil && c.cfg.OnDragOver != nil {
		c.coord.RemoveDropHandlers(c.element)
	}
	c.element = s
	if c.cfg.OnElement != nil {
		c.cfg.OnElement(s)
	}
	if s != nil && c.cfg.OnDragOver != nil {
		c.coord.AddDropHandlers(s, DropHandlers{
			OnDragOver:  c.cfg.OnDragOver,
			OnDragLeave: c.cfg.OnDragLeave,
			OnDrop:      c.cfg.OnDrop,
		})
	}
}

// Mount sets s as the element and registers it with doc so pointer-downs
// landing on it reach PointerDown.
func (c *Controller) Mount(doc *Document, s Surface) {
	if c.mounted != nil {
		c.mounted.Remove()
	}
	c.SetElement(s)
	c.mounted = doc.AddElement(s, c.PointerDown)
}

// Unmount tears the controller down: the element is deregistered from the
// document and the drop-target registry, and any live session is cancelled.
func (c *Controller) Unmount() {
	if c.mounted != nil {
		c.mounted.Remove()
		c.mounted = nil
	}
	if c.element != nil && c.cfg.OnDragOver != nil {
		c.coord.RemoveDropHandlers(c.element)
	}
	c.element = nil
	c.Cancel()
}

// PointerDown classifies a native pointer-down and enters the matching
// session. It reports whether the event was handled.
func (c *Controller) PointerDown(e *Event) bool {
	if e == nil {
		return false
	}
	switch classify(e, c.cfg.capabilities()) {
	case entryDrag:
		c.Cancel()
		return c.enterDrag(e)
	case entryGesture:
		// A second finger joining our own drag does not turn it into a
		// gesture; the drag ends on its own when it sees two touches. The
		// event is consumed so elements underneath cannot start one either.
		if _, dragging := c.sess.(*dragSession); dragging {
			c.log.Debug("gesture refused: own drag in progress")
			return true
		}
		// Another controller's session, pending included, holds the
		// target's dragging flag.
		if c.coord.IsActive() || (c.sess == nil && c.target.Dragging()) {
			c.log.Debug("gesture refused: another session is live")
			return false
		}
		c.Cancel()
		return c.enterGesture(e)
	}
	return false
}

// Cancel ends the live session as if the pointer was lost. A committed drag
// receives OnDragEnd with Canceled set; a pending drag ends silently; a
// gesture receives OnGestureEnd. Cancel is a no-op when idle and safe to call
// from inside callbacks.
func (c *Controller) Cancel() {
	switch s := c.sess.(type) {
	case *dragSession:
		c.finishDrag(s, nil)
	case *gestureSession:
		c.finishGesture(s)
	}
}

func (c *Controller) onKeyDown(e *Event) {
	if e.Key == KeyEscape {
		c.log.Debug("escape pressed, cancelling session", zap.Stringer("mode", c.Mode()))
		c.Cancel()
	}
}
