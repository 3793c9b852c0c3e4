package dragdrop

// DragCoordinator is the single-owner service that tracks whether a drag is
// live, hit-tests drop targets, and owns the drag avatar. A Controller never
// touches global drag state except through this interface.
type DragCoordinator interface {
	// ClaimPointerDown returns false if e already started a session
	// somewhere, so one physical pointer-down cannot start two sessions.
	// Events are identified by their sequence number, see Event.
	ClaimPointerDown(e *Event) bool
	// Begin makes state's session the live drag, carrying data.
	Begin(state *DragState, data any)
	// IsActive reports whether a drag is live.
	IsActive() bool
	// Move updates hover tracking and the avatar for a drag move.
	Move(state *DragState)
	// Drop delivers a release to the accepting drop target, if any.
	Drop(state *DragState)
	// End clears the live drag and destroys the avatar. Called on every
	// drag exit path, including sessions that never committed.
	End(state *DragState)
	// AddDropHandlers registers s as a drop target.
	AddDropHandlers(s Surface, h DropHandlers)
	// RemoveDropHandlers deregisters s.
	RemoveDropHandlers(s Surface)
}

// DropHandlers are the drop-target callbacks registered for a surface.
type DropHandlers struct {
	OnDragOver  func(*DragState)
	OnDragLeave func(*DragState)
	OnDrop      func(*DragState)
}

type dropTarget struct {
	surface  Surface
	handlers DropHandlers
}

// Manager is the default in-memory DragCoordinator. Drop targets are
// hit-tested against their bounding rects in reverse registration order, so
// the last registered target is on top.
type Manager struct {
	active    bool
	data      any
	source    Surface
	targets   []dropTarget
	dropping  *dropTarget
	lastDown  uint64 // sequence of the last claimed pointer-down
	avatar    *Avatar
	fading    []*Avatar
	avatarFor func(*DragState) *Avatar
}

// NewManager creates a Manager with no drop targets.
func NewManager() *Manager {
	return &Manager{}
}

// SetAvatarFactory installs fn to create the floating avatar when a drag
// begins. A nil fn (the default) disables avatars.
func (m *Manager) SetAvatarFactory(fn func(*DragState) *Avatar) {
	m.avatarFor = fn
}

// ClaimPointerDown implements DragCoordinator.
func (m *Manager) ClaimPointerDown(e *Event) bool {
	if e == nil {
		return false
	}
	seq := e.sequence()
	if seq == m.lastDown {
		return false
	}
	m.lastDown = seq
	return true
}

// Begin implements DragCoordinator.
func (m *Manager) Begin(state *DragState, data any) {
	m.active = true
	m.data = data
	m.source = state.Source
	m.dropping = nil
	if m.avatarFor != nil {
		m.avatar = m.avatarFor(state)
		if m.avatar != nil {
			m.avatar.moveTo(state.PageX, state.PageY)
		}
	}
}

// IsActive implements DragCoordinator.
func (m *Manager) IsActive() bool {
	return m.active
}

// Data returns the payload of the live drag, or nil.
func (m *Manager) Data() any {
	return m.data
}

// Source returns the surface that started the live drag, or nil.
func (m *Manager) Source() Surface {
	return m.source
}

// Avatar returns the avatar of the live drag, or nil.
func (m *Manager) Avatar() *Avatar {
	return m.avatar
}

// Move implements DragCoordinator. The topmost target under the pointer
// receives OnDragOver; if it accepts, it becomes the dropping target and
// the previous one receives OnDragLeave.
func (m *Manager) Move(state *DragState) {
	if !m.active {
		return
	}
	state.data = m.data
	if m.avatar != nil {
		m.avatar.moveTo(state.PageX, state.PageY)
	}

	var accepted *dropTarget
	for i := len(m.targets) - 1; i >= 0; i-- {
		t := &m.targets[i]
		if !t.surface.BoundingRect().Contains(state.PageX, state.PageY) {
			continue
		}
		if t.handlers.OnDragOver == nil {
			continue
		}
		state.accepted = false
		t.handlers.OnDragOver(state)
		if state.accepted {
			accepted = t
		}
		break
	}
	m.setDropping(accepted, state)
}

func (m *Manager) setDropping(t *dropTarget, state *DragState) {
	if m.dropping != nil && (t == nil || m.dropping.surface != t.surface) {
		if m.dropping.handlers.OnDragLeave != nil {
			m.dropping.handlers.OnDragLeave(state)
		}
	}
	if t == nil {
		m.dropping = nil
		return
	}
	cp := *t
	m.dropping = &cp
}

// Drop implements DragCoordinator.
func (m *Manager) Drop(state *DragState) {
	if !m.active || m.dropping == nil {
		return
	}
	state.data = m.data
	if m.dropping.handlers.OnDrop != nil {
		m.dropping.handlers.OnDrop(state)
	}
}

// End implements DragCoordinator.
func (m *Manager) End(state *DragState) {
	if m.dropping != nil && m.dropping.handlers.OnDragLeave != nil {
		m.dropping.handlers.OnDragLeave(state)
	}
	if m.avatar != nil {
		m.avatar.destroy()
		m.fading = append(m.fading, m.avatar)
	}
	m.active = false
	m.data = nil
	m.source = nil
	m.dropping = nil
	m.avatar = nil
}

// AddDropHandlers implements DragCoordinator. Registering a surface again
// replaces its handlers.
func (m *Manager) AddDropHandlers(s Surface, h DropHandlers) {
	for i := range m.targets {
		if m.targets[i].surface == s {
			m.targets[i].handlers = h
			return
		}
	}
	m.targets = append(m.targets, dropTarget{surface: s, handlers: h})
}

// RemoveDropHandlers implements DragCoordinator.
func (m *Manager) RemoveDropHandlers(s Surface) {
	for i := range m.targets {
		if m.targets[i].surface == s {
			copy(m.targets[i:], m.targets[i+1:])
			m.targets[len(m.targets)-1] = dropTarget{}
			m.targets = m.targets[:len(m.targets)-1]
			break
		}
	}
	if m.dropping != nil && m.dropping.surface == s {
		m.dropping = nil
	}
}

// TargetCount returns the number of registered drop targets.
func (m *Manager) TargetCount() int {
	return len(m.targets)
}

// Update advances fade-out animations of destroyed avatars by dt seconds and
// forgets those that finished. Call it once per frame.
func (m *Manager) Update(dt float32) {
	n := 0
	for _, a := range m.fading {
		a.Update(dt)
		if !a.Done() {
			m.fading[n] = a
			n++
		}
	}
	for i := n; i < len(m.fading); i++ {
		m.fading[i] = nil
	}
	m.fading = m.fading[:n]
}

// Fading returns avatars that are still fading out after their drag ended.
func (m *Manager) Fading() []*Avatar {
	return m.fading
}
