// Package dragdrop is the pointer-interaction core for draggable and
// gesture-sensitive surfaces.
//
// A [Controller] watches one host surface. It turns raw pointer input (mouse,
// single-finger touch, two-finger touch) into three protocols: drag, gesture,
// and drop-target hover tracking. It disambiguates the input kinds, holds a
// session pending until the pointer actually moves, scales deltas from
// rendered to layout pixels, and removes every listener it attached no matter
// how the session ends.
//
// # Quick start
//
//	doc := dragdrop.NewDocument()
//	mgr := dragdrop.NewManager()
//
//	box := &dragdrop.Element{Name: "box", X: 100, Y: 100, Width: 60, Height: 60}
//	ctrl := dragdrop.NewController(doc, mgr, dragdrop.Config{
//		OnDragStart: func(s *dragdrop.DragState) { s.StartDrag("box") },
//		OnDragMove: func(s *dragdrop.DragState) {
//			// s.DX, s.DY: displacement from the origin in layout pixels
//		},
//		OnDragEnd: func(s *dragdrop.DragState) {},
//	})
//	ctrl.Mount(doc, box)
//
// Feed native events with [Document.Dispatch], or use one of the host
// adapters: [github.com/phanxgames/dragdrop/ebitenhost] polls Ebitengine
// mouse and touch input every frame, and
// [github.com/phanxgames/dragdrop/tcellhost] translates terminal mouse
// events.
//
// # Sessions
//
// A pointer-down enters a pending session. A drag commits (OnDragStart) on
// the first move away from the origin, or immediately with
// [Options.ImmediateDragStart]. OnDragStart must call [DragState.StartDrag]
// or the drag is vetoed. A two-finger touch asks OnGestureStart, then waits
// until the fingers move by [Options.GestureSensitivity] before delivering
// OnGestureMove. Escape, [Controller.Cancel] and [Controller.Unmount] end any
// session; a drag that never committed ends without a callback.
//
// # Drop targets
//
// Controllers that declare OnDragOver register their element with the
// [DragCoordinator]. The default [Manager] hit-tests targets on every drag
// move, tracks the one that called [DragState.Accept], and delivers OnDrop
// on release.
package dragdrop
