package dragdrop

// EntityStore is the interface for optional ECS integration.
// When set on a Controller's Config, interaction events are forwarded to it.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type     EventType
	EntityID uint32
	Kind     InputKind
	// Drag fields (valid for EventDragStart, EventDragMove, EventDragEnd)
	PageX    float64
	PageY    float64
	OriginX  float64
	OriginY  float64
	DX       float64
	DY       float64
	Canceled bool
	// Gesture fields (valid for EventGestureStart, EventGestureMove)
	CenterX  float64
	CenterY  float64
	Scale    float64
	Rotation float64
}

func (c *Controller) emitDrag(t EventType, st *DragState) {
	if c.cfg.Store == nil {
		return
	}
	c.cfg.Store.EmitEvent(InteractionEvent{
		Type:     t,
		EntityID: c.cfg.EntityID,
		Kind:     st.Kind,
		PageX:    st.PageX,
		PageY:    st.PageY,
		OriginX:  st.OriginX,
		OriginY:  st.OriginY,
		DX:       st.DX,
		DY:       st.DY,
		Canceled: st.Canceled,
	})
}

func (c *Controller) emitGesture(t EventType, st *GestureState) {
	if c.cfg.Store == nil {
		return
	}
	ev := InteractionEvent{
		Type:     t,
		EntityID: c.cfg.EntityID,
		Kind:     InputTouch,
		Scale:    1,
	}
	if st != nil {
		ev.CenterX = st.CenterX
		ev.CenterY = st.CenterY
		ev.Scale = st.Scale
		ev.Rotation = st.Rotation
	}
	c.cfg.Store.EmitEvent(ev)
}
