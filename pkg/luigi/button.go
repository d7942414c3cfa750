package luigi

import (
	"github.com/bnema/goluigi/internal/callback"
	"github.com/bnema/goluigi/pkg/luigi/native"
)

// Button is a clickable push button.
type Button struct {
	element
}

// NewButton creates a button inside parent.
func NewButton(parent Element, flags Flags, label string) (*Button, error) {
	p, err := parentNode(parent)
	if err != nil {
		return nil, err
	}
	n, err := p.env.adopt(p, KindButton, p.toolkit().ButtonCreate(p.handle, uint32(flags), []byte(label)))
	if err != nil {
		return nil, err
	}
	return &Button{element{n}}, nil
}

// OnClick registers fn as the click handler, replacing any previous one. A nil fn
// removes the handler. fn runs on the message-loop thread and may itself call OnClick
// on the same button.
func (b *Button) OnClick(fn func()) error {
	if err := b.n.live(); err != nil {
		return err
	}
	attach := func(cp native.Context) { b.n.toolkit().ButtonSetInvoke(b.n.handle, cp) }
	var register func() callback.ID
	if fn != nil {
		register = func() callback.ID { return b.n.env.slots.RegisterInvoke(fn) }
	}
	b.n.replaceSlot(attach, register)
	return nil
}
