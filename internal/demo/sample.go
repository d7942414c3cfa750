package demo

import (
	"context"
	"fmt"

	"github.com/bnema/goluigi/pkg/luigi"
)

// Sample is a gray panel with three buttons and no behaviour.
type Sample struct {
	Window  *luigi.Window
	Buttons []*luigi.Button
}

// NewSample builds the sample window.
func NewSample(_ context.Context, env *luigi.Environment, opts Options) (*Sample, error) {
	win, err := luigi.NewWindow(env, "Go UI Example", opts.Width, opts.Height, 0)
	if err != nil {
		return nil, fmt.Errorf("sample window: %w", err)
	}
	panel, err := luigi.NewPanel(win, luigi.PanelGray)
	if err != nil {
		return nil, fmt.Errorf("sample panel: %w", err)
	}
	s := &Sample{Window: win}
	for _, text := range []string{"Hello", "World", "Click me!"} {
		b, err := luigi.NewButton(panel, 0, text)
		if err != nil {
			return nil, fmt.Errorf("sample button %q: %w", text, err)
		}
		s.Buttons = append(s.Buttons, b)
	}
	return s, nil
}
