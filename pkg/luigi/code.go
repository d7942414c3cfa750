package luigi

// Code is a read-only source viewer with line numbers.
type Code struct {
	element
}

// NewCode creates a code view inside parent.
func NewCode(parent Element, flags Flags) (*Code, error) {
	p, err := parentNode(parent)
	if err != nil {
		return nil, err
	}
	n, err := p.env.adopt(p, KindCode, p.toolkit().CodeCreate(p.handle, uint32(flags)))
	if err != nil {
		return nil, err
	}
	return &Code{element{n}}, nil
}

// InsertContent appends content, or replaces everything when replace is set.
func (c *Code) InsertContent(content string, replace bool) error {
	if err := c.n.live(); err != nil {
		return err
	}
	c.n.toolkit().CodeInsertContent(c.n.handle, []byte(content), replace)
	return nil
}

// FocusLine scrolls to the zero-based line and highlights it. Out-of-range lines
// are clamped.
func (c *Code) FocusLine(line int) error {
	if err := c.n.live(); err != nil {
		return err
	}
	c.n.toolkit().CodeFocusLine(c.n.handle, cCount(line))
	return nil
}
