package luigi

// MDIClient hosts movable child windows.
type MDIClient struct {
	element
}

// NewMDIClient creates an MDI client area inside parent.
func NewMDIClient(parent Element, flags Flags) (*MDIClient, error) {
	p, err := parentNode(parent)
	if err != nil {
		return nil, err
	}
	n, err := p.env.adopt(p, KindMDIClient, p.toolkit().MDIClientCreate(p.handle, uint32(flags)))
	if err != nil {
		return nil, err
	}
	return &MDIClient{element{n}}, nil
}

// MDIChild is a movable child window inside an MDIClient.
type MDIChild struct {
	element
}

// NewMDIChild creates a child window in client at the given initial bounds.
func NewMDIChild(client *MDIClient, flags Flags, bounds Rectangle, title string) (*MDIChild, error) {
	if client == nil {
		return nil, ErrInvalidParent
	}
	p, err := parentNode(client)
	if err != nil {
		return nil, err
	}
	h := p.toolkit().MDIChildCreate(p.handle, uint32(flags), bounds.native(), []byte(title))
	n, err := p.env.adopt(p, KindMDIChild, h)
	if err != nil {
		return nil, err
	}
	return &MDIChild{element{n}}, nil
}
