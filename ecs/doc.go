// Package ecs provides ECS adapters for dragdrop's interaction events.
//
// The primary adapter is [NewDonburiStore], which bridges controller events
// (drag start/move/end, gesture start/move/end) into a [Donburi] world as
// typed events. Subscribe to [InteractionEventType] to receive every event,
// or to [DragEventType] or [GestureEventType] for a single protocol.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	ctrl := dragdrop.NewController(doc, mgr, dragdrop.Config{
//		Store:    store,
//		EntityID: 7,
//		// callbacks...
//	})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
