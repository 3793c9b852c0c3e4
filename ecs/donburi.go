package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/dragdrop"
)

// InteractionEventType carries every dragdrop interaction event unchanged.
var InteractionEventType = events.NewEventType[dragdrop.InteractionEvent]()

// DragEvent is a drag start, move or end for one entity.
type DragEvent struct {
	Type     dragdrop.EventType
	EntityID uint32
	Kind     dragdrop.InputKind
	// Page position of the pointer.
	X, Y float64
	// Displacement from the drag origin in layout pixels.
	DX, DY   float64
	Canceled bool
}

// GestureEvent is a gesture start, move or end for one entity. End events
// carry no measurement: Scale is 1 and the other fields are zero.
type GestureEvent struct {
	Type             dragdrop.EventType
	EntityID         uint32
	CenterX, CenterY float64
	Scale            float64
	Rotation         float64
}

// DragEventType and GestureEventType split the interaction stream by
// protocol, so movement systems and pinch/zoom systems subscribe only to
// what they handle.
var (
	DragEventType    = events.NewEventType[DragEvent]()
	GestureEventType = events.NewEventType[GestureEvent]()
)

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world. Each
// event is published to InteractionEventType and to DragEventType or
// GestureEventType; consume them with Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) dragdrop.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event dragdrop.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)

	switch event.Type {
	case dragdrop.EventDragStart, dragdrop.EventDragMove, dragdrop.EventDragEnd:
		DragEventType.Publish(s.world, DragEvent{
			Type:     event.Type,
			EntityID: event.EntityID,
			Kind:     event.Kind,
			X:        event.PageX,
			Y:        event.PageY,
			DX:       event.DX,
			DY:       event.DY,
			Canceled: event.Canceled,
		})
	case dragdrop.EventGestureStart, dragdrop.EventGestureMove, dragdrop.EventGestureEnd:
		ge := GestureEvent{
			Type:     event.Type,
			EntityID: event.EntityID,
			Scale:    1,
		}
		if event.Type != dragdrop.EventGestureEnd {
			ge.CenterX, ge.CenterY = event.CenterX, event.CenterY
			ge.Scale = event.Scale
			ge.Rotation = event.Rotation
		}
		GestureEventType.Publish(s.world, ge)
	}
}
