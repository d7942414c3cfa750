package luigi

// Menu is a popup menu anchored to an element. Items are added before Show; once
// shown, the toolkit owns the menu and frees it when it closes.
type Menu struct {
	element
}

// NewMenu creates a menu anchored to parent.
func NewMenu(parent Element, flags Flags) (*Menu, error) {
	p, err := parentNode(parent)
	if err != nil {
		return nil, err
	}
	n, err := p.env.adopt(p, KindMenu, p.toolkit().MenuCreate(p.handle, uint32(flags)))
	if err != nil {
		return nil, err
	}
	return &Menu{element{n}}, nil
}

// AddItem appends an item that runs fn when chosen.
func (m *Menu) AddItem(flags Flags, label string, fn func()) error {
	if err := m.n.live(); err != nil {
		return err
	}
	if fn == nil {
		return ErrNilCallback
	}
	id := m.n.env.slots.RegisterInvoke(fn)
	m.n.pin(id)
	m.n.toolkit().MenuAddItem(m.n.handle, uint32(flags), []byte(label), id)
	return nil
}

// Show pops the menu up. The wrapper is spent afterwards and reports ErrDestroyed,
// since the toolkit frees the menu on close without notice. Item callbacks move to
// the anchor element and stay reachable until it is destroyed or the environment
// terminates.
func (m *Menu) Show() error {
	if err := m.n.live(); err != nil {
		return err
	}
	m.n.toolkit().MenuShow(m.n.handle)

	anchor := m.n.parent
	for _, id := range m.n.pinned {
		anchor.pin(id)
	}
	m.n.pinned = nil
	m.n.forget()
	m.n.destroyed = true
	m.n.unlink()
	return nil
}
