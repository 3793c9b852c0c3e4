package dragdrop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Fixtures ---

// countingTarget wraps a Document and counts listener attach/detach calls
// and dragging flag transitions.
type countingTarget struct {
	*Document
	added   int
	removed int
	flags   []bool
}

type countingHandle struct {
	h ListenerHandle
	t *countingTarget
}

func (h countingHandle) Remove() {
	h.t.removed++
	h.h.Remove()
}

func (t *countingTarget) AddEventListener(lt ListenerType, fn func(*Event)) ListenerHandle {
	t.added++
	return countingHandle{h: t.Document.AddEventListener(lt, fn), t: t}
}

func (t *countingTarget) SetDragging(on bool) {
	t.flags = append(t.flags, on)
	t.Document.SetDragging(on)
}

type recordingStore struct {
	events []InteractionEvent
}

func (s *recordingStore) EmitEvent(e InteractionEvent) {
	s.events = append(s.events, e)
}

func (s *recordingStore) types() []EventType {
	out := make([]EventType, len(s.events))
	for i, e := range s.events {
		out[i] = e.Type
	}
	return out
}

type harness struct {
	doc    *Document
	target *countingTarget
	mgr    *Manager
	el     *Element
	ctrl   *Controller

	starts []*DragState
	moves  []*DragState
	ends   []*DragState
}

func newHarness(t *testing.T, mutate func(*harness, *Config)) *harness {
	t.Helper()
	h := &harness{
		doc: NewDocument(),
		mgr: NewManager(),
		el:  &Element{Name: "surface", Width: 400, Height: 400},
	}
	h.target = &countingTarget{Document: h.doc}
	cfg := Config{
		OnDragStart: func(s *DragState) {
			h.starts = append(h.starts, s)
			s.StartDrag("payload")
		},
		OnDragMove: func(s *DragState) { h.moves = append(h.moves, s) },
		OnDragEnd:  func(s *DragState) { h.ends = append(h.ends, s) },
	}
	if mutate != nil {
		mutate(h, &cfg)
	}
	h.ctrl = NewController(h.target, h.mgr, cfg)
	h.ctrl.Mount(h.doc, h.el)
	return h
}

func (h *harness) dispatch(e *Event) *Event {
	h.doc.Dispatch(e)
	return e
}

func (h *harness) assertIdle(t *testing.T) {
	t.Helper()
	assert.Equal(t, ModeIdle, h.ctrl.Mode())
	assert.Zero(t, h.doc.ListenerCount(), "document listeners leaked")
	assert.Equal(t, h.target.added, h.target.removed, "attach/detach imbalance")
	assert.False(t, h.doc.Dragging(), "dragging flag still set")
}

func mouseEvent(t ListenerType, x, y float64) *Event {
	return &Event{Type: t, PageX: x, PageY: y}
}

func touchEvent(t ListenerType, pts ...Vec2) *Event {
	ts := make([]Touch, len(pts))
	for i, p := range pts {
		ts[i] = Touch{ID: i + 1, PageX: p.X, PageY: p.Y}
	}
	e := &Event{Type: t, Touches: ts}
	if t == TouchStart && len(ts) > 0 {
		e.ChangedTouches = ts[len(ts)-1:]
	}
	return e
}

func touchEnd(lifted Vec2, remaining ...Vec2) *Event {
	e := touchEvent(TouchEnd, remaining...)
	e.ChangedTouches = []Touch{{ID: 99, PageX: lifted.X, PageY: lifted.Y}}
	return e
}

func keyEvent(key string) *Event {
	return &Event{Type: KeyDown, Key: key}
}

// --- Classifier ---

func TestClassify(t *testing.T) {
	all := capabilities{drag: true, gesture: true}
	tests := []struct {
		name string
		e    *Event
		caps capabilities
		want entry
	}{
		{"mouse with drag", mouseEvent(MouseDown, 0, 0), all, entryDrag},
		{"mouse without drag", mouseEvent(MouseDown, 0, 0), capabilities{gesture: true}, entryNone},
		{"one touch", touchEvent(TouchStart, Vec2{}), all, entryDrag},
		{"one touch without drag", touchEvent(TouchStart, Vec2{}), capabilities{gesture: true}, entryNone},
		{"two touches", touchEvent(TouchStart, Vec2{}, Vec2{X: 10}), all, entryGesture},
		{"two touches without gesture", touchEvent(TouchStart, Vec2{}, Vec2{X: 10}), capabilities{drag: true}, entryNone},
		{"three touches", touchEvent(TouchStart, Vec2{}, Vec2{X: 10}, Vec2{X: 20}), all, entryNone},
		{"move is not a down", mouseEvent(MouseMove, 0, 0), all, entryNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.e, tt.caps))
		})
	}
}

func TestCapabilities_GestureNeedsStartAndMove(t *testing.T) {
	cfg := Config{OnGestureStart: func(*GestureState) bool { return true }}
	assert.False(t, cfg.capabilities().gesture)
	cfg.OnGestureMove = func(*GestureState) {}
	assert.True(t, cfg.capabilities().gesture)
}

func TestPointerDown_UnsupportedIsIgnored(t *testing.T) {
	h := newHarness(t, nil)

	e := touchEvent(TouchStart, Vec2{X: 10, Y: 10}, Vec2{X: 20, Y: 20}, Vec2{X: 30, Y: 30})
	assert.False(t, h.ctrl.PointerDown(e))
	assert.False(t, h.ctrl.PointerDown(nil))
	h.assertIdle(t)
	assert.Zero(t, h.target.added)
}

func TestPointerDown_NoDragHandler(t *testing.T) {
	h := newHarness(t, func(_ *harness, cfg *Config) { cfg.OnDragStart = nil })

	h.dispatch(mouseEvent(MouseDown, 10, 10))
	h.dispatch(mouseEvent(MouseMove, 50, 50))
	h.dispatch(mouseEvent(MouseUp, 50, 50))

	assert.Empty(t, h.moves)
	assert.Empty(t, h.ends)
	h.assertIdle(t)
	assert.False(t, h.ctrl.Initiator())
}

// --- Drag sub-machine ---

func TestDrag_MouseScenario(t *testing.T) {
	h := newHarness(t, nil)

	down := h.dispatch(mouseEvent(MouseDown, 100, 100))
	assert.True(t, down.DefaultPrevented())
	assert.Equal(t, ModeDragPending, h.ctrl.Mode())
	assert.True(t, h.doc.Dragging())

	h.dispatch(mouseEvent(MouseMove, 100, 100))
	assert.Empty(t, h.starts, "zero displacement must not start the drag")
	assert.Equal(t, ModeDragPending, h.ctrl.Mode())

	move := h.dispatch(mouseEvent(MouseMove, 105, 100))
	require.Len(t, h.starts, 1)
	assert.Equal(t, 100.0, h.starts[0].OriginX)
	assert.Equal(t, 100.0, h.starts[0].OriginY)
	assert.Equal(t, InputMouseLeft, h.starts[0].Kind)
	assert.True(t, move.DefaultPrevented())
	assert.Equal(t, ModeDragActive, h.ctrl.Mode())
	require.Len(t, h.moves, 1, "the committing move is delivered as the first move")
	assert.Same(t, h.starts[0], h.moves[0])

	h.dispatch(mouseEvent(MouseUp, 105, 100))
	require.Len(t, h.ends, 1)
	assert.Equal(t, 5.0, h.ends[0].DeltaX)
	assert.Equal(t, 0.0, h.ends[0].DeltaY)
	assert.False(t, h.ends[0].Canceled)

	assert.Equal(t, []bool{true, false}, h.target.flags)
	h.assertIdle(t)
	assert.False(t, h.mgr.IsActive())
}

func TestDrag_SingleStart(t *testing.T) {
	h := newHarness(t, nil)

	h.dispatch(mouseEvent(MouseDown, 10, 10))
	const n = 25
	for i := 1; i <= n; i++ {
		h.dispatch(mouseEvent(MouseMove, 10+float64(i), 10))
	}
	h.dispatch(mouseEvent(MouseUp, 10+n, 10))

	assert.Len(t, h.starts, 1)
	assert.Len(t, h.moves, n)
	assert.Len(t, h.ends, 1)
	h.assertIdle(t)
}

func TestDrag_PendingEndsSilently(t *testing.T) {
	tests := []struct {
		name string
		end  func(h *harness)
	}{
		{"cancel", func(h *harness) { h.ctrl.Cancel() }},
		{"release without move", func(h *harness) { h.dispatch(mouseEvent(MouseUp, 10, 10)) }},
		{"escape", func(h *harness) { h.dispatch(keyEvent(KeyEscape)) }},
		{"unmount", func(h *harness) { h.ctrl.Unmount() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, nil)
			h.dispatch(mouseEvent(MouseDown, 10, 10))
			require.Equal(t, ModeDragPending, h.ctrl.Mode())

			tt.end(h)

			assert.Empty(t, h.starts)
			assert.Empty(t, h.ends, "a drag that never moved must not report an end")
			h.assertIdle(t)
		})
	}
}

func TestDrag_ListenerBalance(t *testing.T) {
	tests := []struct {
		name   string
		finish func(h *harness)
	}{
		{"release", func(h *harness) { h.dispatch(mouseEvent(MouseUp, 40, 40)) }},
		{"cancel", func(h *harness) { h.ctrl.Cancel() }},
		{"escape", func(h *harness) { h.dispatch(keyEvent(KeyEscape)) }},
		{"unmount", func(h *harness) { h.ctrl.Unmount() }},
		{"new pointer down", func(h *harness) {
			h.dispatch(mouseEvent(MouseDown, 60, 60))
			h.dispatch(mouseEvent(MouseUp, 60, 60))
		}},
	}
	for _, tt := range tests {
		for _, moves := range []int{0, 1, 5} {
			t.Run(tt.name, func(t *testing.T) {
				h := newHarness(t, nil)
				h.dispatch(mouseEvent(MouseDown, 20, 20))
				for i := 1; i <= moves; i++ {
					h.dispatch(mouseEvent(MouseMove, 20+float64(i), 20))
				}
				tt.finish(h)
				h.assertIdle(t)
				assert.Equal(t, len(h.starts), len(h.ends), "end must fire iff start fired")
			})
		}
	}
}

func TestDrag_OtherKeysDoNotCancel(t *testing.T) {
	h := newHarness(t, nil)
	h.dispatch(mouseEvent(MouseDown, 10, 10))
	h.dispatch(mouseEvent(MouseMove, 20, 10))

	h.dispatch(keyEvent("a"))
	assert.Equal(t, ModeDragActive, h.ctrl.Mode())

	h.dispatch(keyEvent(KeyEscape))
	require.Len(t, h.ends, 1)
	assert.True(t, h.ends[0].Canceled)
	assert.Equal(t, 20.0, h.ends[0].PageX, "cancel reports the last known position")
	h.assertIdle(t)
}

func TestDrag_ScaleAdjustedDelta(t *testing.T) {
	h := newHarness(t, func(h *harness, _ *Config) {
		// 200 layout pixels rendered into a 100 pixel box.
		h.el.Width, h.el.Height = 200, 200
		h.el.ScaleX, h.el.ScaleY = 0.5, 0.5
	})

	h.dispatch(mouseEvent(MouseDown, 50, 50))
	h.dispatch(mouseEvent(MouseMove, 60, 50))

	require.Len(t, h.moves, 1)
	assert.Equal(t, 10.0, h.moves[0].DeltaX)
	assert.Equal(t, 20.0, h.moves[0].DX)
	assert.Equal(t, 0.0, h.moves[0].DY)
}

func TestSurfaceScale(t *testing.T) {
	tests := []struct {
		name  string
		el    Surface
		wantX float64
		wantY float64
	}{
		{"nil surface", nil, 1, 1},
		{"untransformed", &Element{Width: 100, Height: 50}, 1, 1},
		{"half size", &Element{Width: 200, Height: 100, ScaleX: 0.5, ScaleY: 0.5}, 2, 2},
		{"subpixel rect is rounded", &Element{Width: 100, Height: 100, ScaleX: 0.996, ScaleY: 1.004}, 1, 1},
		{"empty rect", &Element{}, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := surfaceScale(tt.el)
			assert.InDelta(t, tt.wantX, got.X, 1e-9)
			assert.InDelta(t, tt.wantY, got.Y, 1e-9)
		})
	}
}

func TestDrag_RightButton(t *testing.T) {
	h := newHarness(t, nil)
	e := mouseEvent(MouseDown, 10, 10)
	e.Button = MouseButtonRight
	h.dispatch(e)
	h.dispatch(mouseEvent(MouseMove, 15, 10))

	require.Len(t, h.starts, 1)
	assert.Equal(t, InputMouseRight, h.starts[0].Kind)
}

func TestDrag_ImmediateStart(t *testing.T) {
	h := newHarness(t, func(_ *harness, cfg *Config) { cfg.ImmediateDragStart = true })

	h.dispatch(mouseEvent(MouseDown, 10, 10))
	require.Len(t, h.starts, 1)
	assert.Equal(t, ModeDragActive, h.ctrl.Mode())
	assert.Empty(t, h.moves, "no move is delivered without movement")

	h.dispatch(mouseEvent(MouseUp, 10, 10))
	require.Len(t, h.ends, 1)
	assert.False(t, h.ends[0].Moved())
	h.assertIdle(t)
}

func TestDrag_StartCallbackVeto(t *testing.T) {
	h := newHarness(t, func(h *harness, cfg *Config) {
		cfg.OnDragStart = func(s *DragState) { h.starts = append(h.starts, s) }
	})

	h.dispatch(mouseEvent(MouseDown, 10, 10))
	h.dispatch(mouseEvent(MouseMove, 30, 10))

	assert.Len(t, h.starts, 1)
	assert.Empty(t, h.moves)
	require.Len(t, h.ends, 1)
	assert.True(t, h.ends[0].Canceled)
	h.assertIdle(t)

	h.dispatch(mouseEvent(MouseMove, 40, 10))
	assert.Empty(t, h.moves, "moves after a veto are not delivered")
}

func TestDrag_CancelFromMoveCallback(t *testing.T) {
	h := newHarness(t, func(h *harness, cfg *Config) {
		cfg.OnDragMove = func(s *DragState) {
			h.moves = append(h.moves, s)
			h.ctrl.Cancel()
			h.ctrl.Cancel()
		}
	})

	h.dispatch(mouseEvent(MouseDown, 10, 10))
	h.dispatch(mouseEvent(MouseMove, 20, 10))
	h.dispatch(mouseEvent(MouseMove, 30, 10))

	assert.Len(t, h.moves, 1)
	require.Len(t, h.ends, 1)
	assert.True(t, h.ends[0].Canceled)
	h.assertIdle(t)
}

func TestDrag_NewPointerDownCancelsExisting(t *testing.T) {
	h := newHarness(t, nil)
	h.dispatch(mouseEvent(MouseDown, 10, 10))
	h.dispatch(mouseEvent(MouseMove, 20, 10))

	h.dispatch(mouseEvent(MouseDown, 100, 100))
	require.Len(t, h.ends, 1)
	assert.True(t, h.ends[0].Canceled)
	assert.Equal(t, ModeDragPending, h.ctrl.Mode())

	h.dispatch(mouseEvent(MouseMove, 110, 100))
	require.Len(t, h.starts, 2)
	assert.Equal(t, 100.0, h.starts[1].OriginX, "origin is sampled fresh per session")
}

func TestDrag_SameEventCannotStartTwice(t *testing.T) {
	h := newHarness(t, nil)
	other := NewController(h.doc, h.mgr, Config{OnDragStart: func(s *DragState) { s.StartDrag(nil) }})

	e := mouseEvent(MouseDown, 10, 10)
	assert.True(t, h.ctrl.PointerDown(e))
	assert.False(t, other.PointerDown(e))
	assert.Equal(t, ModeIdle, other.Mode())
	assert.Equal(t, ModeDragPending, h.ctrl.Mode())
}

func TestDrag_StaleListenerIsIgnored(t *testing.T) {
	h := newHarness(t, nil)
	h.dispatch(mouseEvent(MouseDown, 10, 10))
	sess := h.ctrl.sess.(*dragSession)
	h.ctrl.Cancel()

	assert.NotPanics(t, func() {
		h.ctrl.onDragMouseMove(sess, mouseEvent(MouseMove, 50, 50))
		h.ctrl.onDragTouchMove(sess, touchEvent(TouchMove, Vec2{X: 50}))
		h.ctrl.finishDrag(sess, mouseEvent(MouseUp, 50, 50))
	})
	assert.Empty(t, h.starts)
	assert.Empty(t, h.ends)
	h.assertIdle(t)
}

// --- Touch drags ---

func TestDrag_TouchRelease(t *testing.T) {
	h := newHarness(t, nil)

	h.dispatch(touchEvent(TouchStart, Vec2{X: 10, Y: 10}))
	assert.Equal(t, ModeDragPending, h.ctrl.Mode())
	h.dispatch(touchEvent(TouchMove, Vec2{X: 20, Y: 10}))
	require.Len(t, h.starts, 1)
	assert.Equal(t, InputTouch, h.starts[0].Kind)

	h.dispatch(touchEnd(Vec2{X: 30, Y: 12}))
	require.Len(t, h.ends, 1)
	assert.Equal(t, 20.0, h.ends[0].DeltaX)
	assert.Equal(t, 2.0, h.ends[0].DeltaY)
	assert.False(t, h.ends[0].Canceled)
	h.assertIdle(t)
}

func TestDrag_TouchSecondFingerEnds(t *testing.T) {
	h := newHarness(t, nil)

	h.dispatch(touchEvent(TouchStart, Vec2{X: 10, Y: 10}))
	h.dispatch(touchEvent(TouchMove, Vec2{X: 20, Y: 10}))
	h.dispatch(touchEvent(TouchMove, Vec2{X: 25, Y: 10}, Vec2{X: 200, Y: 200}))

	assert.Len(t, h.moves, 1)
	require.Len(t, h.ends, 1)
	assert.False(t, h.ends[0].Canceled, "losing the single-finger shape ends like a release")
	assert.Equal(t, 15.0, h.ends[0].DeltaX)
	h.assertIdle(t)
}

func TestDrag_MouseListenersIgnoreTouches(t *testing.T) {
	h := newHarness(t, nil)
	h.dispatch(mouseEvent(MouseDown, 10, 10))
	h.dispatch(touchEvent(TouchMove, Vec2{X: 50, Y: 50}))
	h.dispatch(touchEnd(Vec2{X: 50, Y: 50}))

	assert.Equal(t, ModeDragPending, h.ctrl.Mode())
	h.ctrl.Cancel()
	h.assertIdle(t)
}

// --- Mutual exclusion ---

func TestGestureDoesNotStartDuringDrag(t *testing.T) {
	var gestureStarts int
	h := newHarness(t, func(_ *harness, cfg *Config) {
		cfg.OnGestureStart = func(*GestureState) bool { gestureStarts++; return true }
		cfg.OnGestureMove = func(*GestureState) {}
	})

	h.dispatch(touchEvent(TouchStart, Vec2{X: 10, Y: 10}))
	require.Equal(t, ModeDragPending, h.ctrl.Mode())

	second := touchEvent(TouchStart, Vec2{X: 10, Y: 10}, Vec2{X: 60, Y: 60})
	assert.True(t, h.ctrl.PointerDown(second), "the second finger is consumed by the drag")
	assert.Zero(t, gestureStarts)
	assert.Equal(t, ModeDragPending, h.ctrl.Mode())

	h.dispatch(touchEvent(TouchMove, Vec2{X: 12, Y: 10}, Vec2{X: 60, Y: 60}))
	assert.Empty(t, h.ends, "pending drag ends silently")
	h.assertIdle(t)
}

func TestGestureDoesNotStartDuringOtherControllersDrag(t *testing.T) {
	tests := []struct {
		name   string
		dragEl *Element
		second Vec2
		commit bool
	}{
		{"nested, pending", &Element{X: 50, Y: 50, Width: 100, Height: 100}, Vec2{X: 120, Y: 120}, false},
		{"nested, committed", &Element{X: 50, Y: 50, Width: 100, Height: 100}, Vec2{X: 120, Y: 120}, true},
		{"beside, pending", &Element{Width: 100, Height: 100}, Vec2{X: 250, Y: 50}, false},
		{"beside, committed", &Element{Width: 100, Height: 100}, Vec2{X: 250, Y: 50}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDocument()
			mgr := NewManager()
			var gestures, ends int

			outer := NewController(doc, mgr, Config{
				OnGestureStart: func(*GestureState) bool { gestures++; return true },
				OnGestureMove:  func(*GestureState) {},
			})
			outer.Mount(doc, &Element{Name: "outer", Width: 400, Height: 400})
			inner := NewController(doc, mgr, Config{
				OnDragStart: func(s *DragState) { s.StartDrag(nil) },
				OnDragEnd:   func(*DragState) { ends++ },
			})
			inner.Mount(doc, tt.dragEl)

			finger := Vec2{X: 60, Y: 60}
			doc.Dispatch(touchEvent(TouchStart, finger))
			want := ModeDragPending
			if tt.commit {
				finger = Vec2{X: 70, Y: 60}
				doc.Dispatch(touchEvent(TouchMove, finger))
				want = ModeDragActive
			}
			require.Equal(t, want, inner.Mode())

			doc.Dispatch(touchEvent(TouchStart, finger, tt.second))
			assert.Zero(t, gestures)
			assert.Equal(t, ModeIdle, outer.Mode())
			assert.Equal(t, want, inner.Mode())
			assert.True(t, doc.Dragging())

			doc.Dispatch(touchEvent(TouchMove, finger, Vec2{X: tt.second.X + 20, Y: tt.second.Y}))
			assert.Zero(t, gestures)
			assert.Equal(t, ModeIdle, outer.Mode())
			assert.Equal(t, ModeIdle, inner.Mode())
			assert.False(t, doc.Dragging())
			assert.Zero(t, doc.ListenerCount())
			if tt.commit {
				assert.Equal(t, 1, ends)
			} else {
				assert.Zero(t, ends)
			}
		})
	}
}

func TestDraggingFlagHeldUntilLastSessionEnds(t *testing.T) {
	doc := NewDocument()
	mgr := NewManager()
	newDraggable := func(el *Element) *Controller {
		c := NewController(doc, mgr, Config{OnDragStart: func(s *DragState) { s.StartDrag(nil) }})
		c.Mount(doc, el)
		return c
	}
	a := newDraggable(&Element{Width: 50, Height: 50})
	b := newDraggable(&Element{X: 100, Width: 50, Height: 50})

	doc.Dispatch(mouseEvent(MouseDown, 10, 10))
	doc.Dispatch(mouseEvent(MouseDown, 110, 10))
	require.Equal(t, ModeDragPending, a.Mode())
	require.Equal(t, ModeDragPending, b.Mode())

	a.Cancel()
	assert.True(t, doc.Dragging(), "b is still live")
	b.Cancel()
	assert.False(t, doc.Dragging())
}

// --- ECS bridge ---

func TestDrag_EmitsToStore(t *testing.T) {
	store := &recordingStore{}
	h := newHarness(t, func(_ *harness, cfg *Config) {
		cfg.Store = store
		cfg.EntityID = 7
	})

	h.dispatch(mouseEvent(MouseDown, 10, 10))
	h.dispatch(mouseEvent(MouseMove, 20, 10))
	h.dispatch(mouseEvent(MouseMove, 30, 10))
	h.dispatch(mouseEvent(MouseUp, 30, 10))

	assert.Equal(t, []EventType{EventDragStart, EventDragMove, EventDragMove, EventDragEnd}, store.types())
	for _, e := range store.events {
		assert.Equal(t, uint32(7), e.EntityID)
	}
	assert.Equal(t, 20.0, store.events[3].DX)
}

// --- Element wiring ---

func TestSetElement_OnElementCallback(t *testing.T) {
	var seen []Surface
	h := newHarness(t, func(_ *harness, cfg *Config) {
		cfg.OnElement = func(s Surface) { seen = append(seen, s) }
	})
	h.ctrl.SetElement(h.el)
	next := &Element{Name: "next", Width: 10, Height: 10}
	h.ctrl.SetElement(next)

	assert.Equal(t, []Surface{h.el, next}, seen)
	assert.Equal(t, Surface(next), h.ctrl.Element())
	assert.True(t, h.ctrl.Initiator())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "idle", ModeIdle.String())
	assert.Equal(t, "drag-active", ModeDragActive.String())
	assert.Equal(t, "gesture-pending", ModeGesturePending.String())
	assert.Equal(t, "touch", InputTouch.String())
	assert.Equal(t, "keydown", KeyDown.String())
}
