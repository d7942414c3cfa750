package luigi

// Panel is a layout container. Its flags are fixed at creation.
type Panel struct {
	element
}

// NewPanel creates a panel inside parent.
func NewPanel(parent Element, flags Flags) (*Panel, error) {
	p, err := parentNode(parent)
	if err != nil {
		return nil, err
	}
	n, err := p.env.adopt(p, KindPanel, p.toolkit().PanelCreate(p.handle, uint32(flags)))
	if err != nil {
		return nil, err
	}
	return &Panel{element{n}}, nil
}
