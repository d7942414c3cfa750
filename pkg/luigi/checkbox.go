package luigi

// CheckState is the tri-state value of a checkbox.
type CheckState uint8

const (
	Unchecked CheckState = iota
	Checked
	Indeterminate
)

func (s CheckState) String() string {
	switch s {
	case Unchecked:
		return "unchecked"
	case Checked:
		return "checked"
	case Indeterminate:
		return "indeterminate"
	default:
		return "unknown"
	}
}

// Checkbox is a labelled check box.
type Checkbox struct {
	element
}

// NewCheckbox creates a checkbox inside parent.
func NewCheckbox(parent Element, flags Flags, label string) (*Checkbox, error) {
	p, err := parentNode(parent)
	if err != nil {
		return nil, err
	}
	n, err := p.env.adopt(p, KindCheckbox, p.toolkit().CheckboxCreate(p.handle, uint32(flags), []byte(label)))
	if err != nil {
		return nil, err
	}
	return &Checkbox{element{n}}, nil
}

// State returns the current check state.
func (c *Checkbox) State() (CheckState, error) {
	if err := c.n.live(); err != nil {
		return Unchecked, err
	}
	return CheckState(c.n.toolkit().CheckboxState(c.n.handle)), nil
}
