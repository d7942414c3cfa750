package luigi

import "github.com/bnema/goluigi/pkg/luigi/native"

// Window is a top-level native window and the root of a widget tree.
type Window struct {
	element
}

// NewWindow creates a top-level window. Zero width or height asks the toolkit for its
// default size; a toolkit that rejects the size yields a CreationError for KindWindow.
func NewWindow(env *Environment, title string, width, height int, flags Flags) (*Window, error) {
	if err := env.usable(); err != nil {
		return nil, err
	}
	title, err := cString(title)
	if err != nil {
		return nil, err
	}
	h := env.toolkit.WindowCreate(0, uint32(flags), title, cCount(width), cCount(height))
	n, err := env.adopt(nil, KindWindow, h)
	if err != nil {
		return nil, err
	}
	return &Window{element{n}}, nil
}

// Shortcut is a window-level keyboard shortcut.
type Shortcut struct {
	// Key is a native keycode, see Environment.KeycodeLetter.
	Key   int
	Ctrl  bool
	Shift bool
	Alt   bool
	// Invoke runs on the message-loop thread when the shortcut fires.
	Invoke func()
}

// RegisterShortcut adds a keyboard shortcut. The toolkit offers no way to remove a
// shortcut, so its closure stays registered until the window is destroyed or the
// environment terminates.
func (w *Window) RegisterShortcut(s Shortcut) error {
	if err := w.n.live(); err != nil {
		return err
	}
	if s.Invoke == nil {
		return ErrNilCallback
	}
	id := w.n.env.slots.RegisterInvoke(s.Invoke)
	w.n.pin(id)
	spec := native.ShortcutSpec{Code: s.Key, Ctrl: s.Ctrl, Shift: s.Shift, Alt: s.Alt}
	w.n.toolkit().WindowRegisterShortcut(w.n.handle, spec, id)
	return nil
}
