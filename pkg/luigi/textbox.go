package luigi

// Textbox is a single-line editable text field.
type Textbox struct {
	element
}

// NewTextbox creates a textbox inside parent.
func NewTextbox(parent Element, flags Flags) (*Textbox, error) {
	p, err := parentNode(parent)
	if err != nil {
		return nil, err
	}
	n, err := p.env.adopt(p, KindTextbox, p.toolkit().TextboxCreate(p.handle, uint32(flags)))
	if err != nil {
		return nil, err
	}
	return &Textbox{element{n}}, nil
}

// Text returns a copy of the current content.
func (t *Textbox) Text() (string, error) {
	if err := t.n.live(); err != nil {
		return "", err
	}
	return string(t.n.toolkit().TextboxText(t.n.handle)), nil
}

// Empty reports whether the textbox holds no text.
func (t *Textbox) Empty() (bool, error) {
	text, err := t.Text()
	if err != nil {
		return false, err
	}
	return text == "", nil
}

// Replace replaces the current selection with text. sendChanged makes the toolkit
// emit its value-changed message.
func (t *Textbox) Replace(text string, sendChanged bool) error {
	if err := t.n.live(); err != nil {
		return err
	}
	t.n.toolkit().TextboxReplace(t.n.handle, []byte(text), sendChanged)
	return nil
}

// Clear removes all text.
func (t *Textbox) Clear(sendChanged bool) error {
	if err := t.n.live(); err != nil {
		return err
	}
	t.n.toolkit().TextboxClear(t.n.handle, sendChanged)
	return nil
}
