package luigi

// HSVA is a colour in hue/saturation/value with opacity, each in [0, 1].
type HSVA struct {
	H, S, V, A float32
}

// ColorPicker is an HSV colour wheel with an optional opacity slider.
type ColorPicker struct {
	element
}

// NewColorPicker creates a colour picker inside parent.
func NewColorPicker(parent Element, flags Flags) (*ColorPicker, error) {
	p, err := parentNode(parent)
	if err != nil {
		return nil, err
	}
	n, err := p.env.adopt(p, KindColorPicker, p.toolkit().ColorPickerCreate(p.handle, uint32(flags)))
	if err != nil {
		return nil, err
	}
	return &ColorPicker{element{n}}, nil
}

// Color returns the current selection.
func (c *ColorPicker) Color() (HSVA, error) {
	if err := c.n.live(); err != nil {
		return HSVA{}, err
	}
	h, s, v, a := c.n.toolkit().ColorPickerColor(c.n.handle)
	return HSVA{H: h, S: s, V: v, A: a}, nil
}

// SetColor sets the selection. Components are clamped to [0, 1].
func (c *ColorPicker) SetColor(color HSVA) error {
	if err := c.n.live(); err != nil {
		return err
	}
	c.n.toolkit().ColorPickerSetColor(c.n.handle,
		unitClamp(color.H), unitClamp(color.S), unitClamp(color.V), unitClamp(color.A))
	return nil
}
