package demo

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/bnema/goluigi/internal/logging"
	"github.com/bnema/goluigi/pkg/luigi"
)

const (
	galleryCapacity = 10
	swatchSize      = 48
)

// Gallery shows every widget kind the binding wraps. Text typed into the input is
// appended to the table; the colour picker drives a swatch; a drop-down menu and a
// Ctrl+L shortcut clear the list.
type Gallery struct {
	Window   *luigi.Window
	Input    *luigi.Textbox
	Add      *luigi.Button
	Items    *luigi.Table
	Enabled  *luigi.Checkbox
	Progress *luigi.Gauge
	Volume   *luigi.Slider
	Log      *luigi.Code
	Picker   *luigi.ColorPicker
	Hex      *luigi.Label
	Apply    *luigi.Button
	Swatch   *luigi.ImageDisplay
	Actions  *luigi.Button
	Desktop  *luigi.MDIClient
	Notes    *luigi.MDIChild

	env   *luigi.Environment
	log   *zerolog.Logger
	rows  []string
	lines int
}

// NewGallery builds the gallery window.
func NewGallery(ctx context.Context, env *luigi.Environment, opts Options) (*Gallery, error) {
	g := &Gallery{env: env, log: logging.FromContext(ctx)}
	if err := g.build(opts); err != nil {
		return nil, err
	}
	if err := g.wire(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Gallery) build(opts Options) error {
	var err error
	if g.Window, err = luigi.NewWindow(g.env, "Widget Gallery", opts.Width, opts.Height, 0); err != nil {
		return fmt.Errorf("gallery window: %w", err)
	}
	root, err := luigi.NewPanel(g.Window, luigi.PanelHorizontal|luigi.PanelGray)
	if err != nil {
		return err
	}

	left, err := luigi.NewPanel(root, luigi.PanelMediumSpacing|luigi.FillVertical)
	if err != nil {
		return err
	}
	if _, err = luigi.NewLabel(left, 0, "New item:"); err != nil {
		return err
	}
	if g.Input, err = luigi.NewTextbox(left, 0); err != nil {
		return err
	}
	if g.Add, err = luigi.NewButton(left, 0, "Add"); err != nil {
		return err
	}
	if g.Enabled, err = luigi.NewCheckbox(left, 0, "Allow colour changes"); err != nil {
		return err
	}
	if g.Progress, err = luigi.NewGauge(left, 0); err != nil {
		return err
	}
	if g.Volume, err = luigi.NewSlider(left, 0); err != nil {
		return err
	}
	if g.Actions, err = luigi.NewButton(left, luigi.ButtonDropDown, "Actions"); err != nil {
		return err
	}

	middle, err := luigi.NewPanel(root, luigi.PanelExpand|luigi.Fill)
	if err != nil {
		return err
	}
	if g.Items, err = luigi.NewTable(middle, luigi.Fill, "#\tItem"); err != nil {
		return err
	}
	if g.Log, err = luigi.NewCode(middle, luigi.Fill|luigi.CodeNoMargin); err != nil {
		return err
	}
	if g.Desktop, err = luigi.NewMDIClient(middle, luigi.Fill); err != nil {
		return err
	}
	if g.Notes, err = luigi.NewMDIChild(g.Desktop, luigi.MDIChildCloseButton, luigi.Rect(10, 260, 10, 130), "Notes"); err != nil {
		return err
	}
	if _, err = luigi.NewLabel(g.Notes, 0, "Ctrl+L clears the list."); err != nil {
		return err
	}

	right, err := luigi.NewPanel(root, luigi.PanelMediumSpacing|luigi.FillVertical)
	if err != nil {
		return err
	}
	if g.Picker, err = luigi.NewColorPicker(right, luigi.ColorPickerHasOpacity); err != nil {
		return err
	}
	if g.Hex, err = luigi.NewLabel(right, 0, "#000000"); err != nil {
		return err
	}
	if g.Apply, err = luigi.NewButton(right, 0, "Apply colour"); err != nil {
		return err
	}
	g.Swatch, err = luigi.NewImageDisplay(right, 0, Fill(0, swatchSize, swatchSize), swatchSize, swatchSize)
	return err
}

func (g *Gallery) wire() error {
	if err := g.Items.OnItem(g.item); err != nil {
		return err
	}
	if err := g.Add.OnClick(g.addItem); err != nil {
		return err
	}
	if err := g.Apply.OnClick(g.applyColor); err != nil {
		return err
	}
	if err := g.Actions.OnClick(g.showActions); err != nil {
		return err
	}
	if err := g.Volume.SetSteps(galleryCapacity); err != nil {
		return err
	}
	return g.Window.RegisterShortcut(luigi.Shortcut{
		Key:    g.env.KeycodeLetter('L'),
		Ctrl:   true,
		Invoke: g.clear,
	})
}

// Rows returns the table contents.
func (g *Gallery) Rows() []string {
	return append([]string(nil), g.rows...)
}

func (g *Gallery) item(it luigi.TableItem) string {
	if it.Index < 0 || it.Index >= len(g.rows) {
		return ""
	}
	if it.Column == 0 {
		return strconv.Itoa(it.Index + 1)
	}
	return g.rows[it.Index]
}

func (g *Gallery) addItem() {
	text, err := g.Input.Text()
	if err != nil {
		g.log.Warn().Err(err).Msg("read input failed")
		return
	}
	if text == "" {
		g.note("nothing to add")
		return
	}
	if len(g.rows) >= galleryCapacity {
		g.note("list is full")
		return
	}
	g.rows = append(g.rows, text)
	g.syncRows()
	if err := g.Input.Clear(false); err != nil {
		g.log.Warn().Err(err).Msg("clear input failed")
	}
	g.note(fmt.Sprintf("added %q", text))
}

func (g *Gallery) clear() {
	g.rows = nil
	g.syncRows()
	g.note("list cleared")
}

func (g *Gallery) syncRows() {
	if err := g.Items.SetItemCount(len(g.rows)); err != nil {
		g.log.Warn().Err(err).Msg("set item count failed")
		return
	}
	_ = g.Items.ResizeColumns()
	_ = g.Items.Refresh()
	_ = g.Progress.SetPosition(float32(len(g.rows)) / galleryCapacity)
	_ = g.Progress.Refresh()
}

func (g *Gallery) applyColor() {
	state, err := g.Enabled.State()
	if err != nil {
		g.log.Warn().Err(err).Msg("read checkbox failed")
		return
	}
	if state != luigi.Checked {
		g.note("colour changes are disabled")
		return
	}
	c, err := g.Picker.Color()
	if err != nil {
		g.log.Warn().Err(err).Msg("read colour failed")
		return
	}
	rgb := g.env.ColorToRGB(c.H, c.S, c.V)
	alpha := uint32(c.A*255+0.5) << 24
	_ = g.Hex.SetContent(fmt.Sprintf("#%06X", rgb))
	_ = g.Hex.Refresh()
	if err := g.Swatch.SetContent(Fill(alpha|rgb, swatchSize, swatchSize), swatchSize, swatchSize); err != nil {
		g.log.Warn().Err(err).Msg("update swatch failed")
		return
	}
	_ = g.Swatch.Refresh()
	g.note(fmt.Sprintf("colour #%06X", rgb))
}

func (g *Gallery) showActions() {
	menu, err := luigi.NewMenu(g.Actions, 0)
	if err != nil {
		g.log.Warn().Err(err).Msg("create menu failed")
		return
	}
	_ = menu.AddItem(0, "Clear list", g.clear)
	_ = menu.AddItem(0, "Reset colour", func() {
		_ = g.Picker.SetColor(luigi.HSVA{A: 1})
		_ = g.Picker.Refresh()
		g.note("colour reset")
	})
	if err := menu.Show(); err != nil {
		g.log.Warn().Err(err).Msg("show menu failed")
	}
}

// note appends a line to the log view and scrolls to it.
func (g *Gallery) note(line string) {
	g.log.Debug().Str("event", line).Msg("gallery")
	if err := g.Log.InsertContent(line+"\n", false); err != nil {
		return
	}
	_ = g.Log.FocusLine(g.lines)
	g.lines++
	_ = g.Log.Refresh()
}

// Fill returns a width*height ARGB buffer of one colour.
func Fill(argb uint32, width, height int) []uint32 {
	bits := make([]uint32, width*height)
	for i := range bits {
		bits[i] = argb
	}
	return bits
}
