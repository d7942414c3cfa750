package demo

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/goluigi/internal/logging"
	"github.com/bnema/goluigi/pkg/luigi"
)

// Counter is a label with a minus and a plus button.
type Counter struct {
	Window *luigi.Window
	Label  *luigi.Label
	Minus  *luigi.Button
	Plus   *luigi.Button

	count int
	log   *zerolog.Logger
}

// NewCounter builds the counter window.
func NewCounter(ctx context.Context, env *luigi.Environment) (*Counter, error) {
	c := &Counter{log: logging.FromContext(ctx)}

	var err error
	if c.Window, err = luigi.NewWindow(env, "Counter", 200, 150, 0); err != nil {
		return nil, fmt.Errorf("counter window: %w", err)
	}
	panel, err := luigi.NewPanel(c.Window, luigi.PanelWhite|luigi.PanelMediumSpacing)
	if err != nil {
		return nil, fmt.Errorf("counter panel: %w", err)
	}
	if c.Label, err = luigi.NewLabel(panel, 0, formatCount(0)); err != nil {
		return nil, fmt.Errorf("counter label: %w", err)
	}
	buttons, err := luigi.NewPanel(panel, luigi.PanelHorizontal)
	if err != nil {
		return nil, fmt.Errorf("counter buttons: %w", err)
	}
	if c.Minus, err = luigi.NewButton(buttons, 0, "-"); err != nil {
		return nil, fmt.Errorf("minus button: %w", err)
	}
	if c.Plus, err = luigi.NewButton(buttons, 0, "+"); err != nil {
		return nil, fmt.Errorf("plus button: %w", err)
	}

	if err := c.Minus.OnClick(func() { c.add(-1) }); err != nil {
		return nil, err
	}
	if err := c.Plus.OnClick(func() { c.add(1) }); err != nil {
		return nil, err
	}
	return c, nil
}

// Count returns the current value.
func (c *Counter) Count() int {
	return c.count
}

func (c *Counter) add(delta int) {
	c.count += delta
	if err := c.Label.SetContent(formatCount(c.count)); err != nil {
		c.log.Warn().Err(err).Msg("counter label update failed")
		return
	}
	if err := c.Label.Refresh(); err != nil {
		c.log.Warn().Err(err).Msg("counter label refresh failed")
	}
}

func formatCount(n int) string {
	return fmt.Sprintf("%3d", n)
}
