package luigi

// Label displays a line of text.
type Label struct {
	element
}

// NewLabel creates a label inside parent.
func NewLabel(parent Element, flags Flags, text string) (*Label, error) {
	p, err := parentNode(parent)
	if err != nil {
		return nil, err
	}
	n, err := p.env.adopt(p, KindLabel, p.toolkit().LabelCreate(p.handle, uint32(flags), []byte(text)))
	if err != nil {
		return nil, err
	}
	return &Label{element{n}}, nil
}

// SetContent replaces the label text. The bytes are handed over length-prefixed, so
// the text may be empty or contain NUL bytes. Call Refresh to repaint.
func (l *Label) SetContent(text string) error {
	if err := l.n.live(); err != nil {
		return err
	}
	l.n.toolkit().LabelSetContent(l.n.handle, []byte(text))
	return nil
}
