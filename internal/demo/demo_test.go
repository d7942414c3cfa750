package demo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/goluigi/pkg/luigi"
	"github.com/bnema/goluigi/pkg/luigi/native"
	"github.com/bnema/goluigi/pkg/luigi/native/fake"
)

func newEnv(t *testing.T, opts ...fake.Option) (*luigi.Environment, *fake.Toolkit) {
	t.Helper()
	tk := fake.New(opts...)
	env := luigi.NewEnvironment(tk)
	env.Init()
	return env, tk
}

func TestCounter_ClicksUpdateLabel(t *testing.T) {
	env, tk := newEnv(t)
	c, err := NewCounter(context.Background(), env)
	require.NoError(t, err)
	assert.Equal(t, "  0", tk.LabelText(c.Label.Handle()))

	tk.Click(c.Plus.Handle())
	tk.Click(c.Plus.Handle())
	tk.Click(c.Minus.Handle())

	assert.Equal(t, 1, c.Count())
	assert.Equal(t, "  1", tk.LabelText(c.Label.Handle()))
	assert.Equal(t, 3, tk.Element(c.Label.Handle()).Refreshes)

	for range 3 {
		tk.Click(c.Minus.Handle())
	}
	assert.Equal(t, " -2", tk.LabelText(c.Label.Handle()))
	assert.Empty(t, tk.Violations())
}

func TestCounter_FailedButtonCreation(t *testing.T) {
	env, _ := newEnv(t, fake.FailCreate("button"))

	_, err := NewCounter(context.Background(), env)

	var ce *luigi.CreationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, luigi.KindButton, ce.Kind)
}

func TestSample_Buttons(t *testing.T) {
	env, tk := newEnv(t)

	s, err := NewSample(context.Background(), env, Options{Width: 800, Height: 600})

	require.NoError(t, err)
	require.Len(t, s.Buttons, 3)
	assert.Equal(t, "Click me!", string(tk.Element(s.Buttons[2].Handle()).Text))
	assert.Zero(t, env.Slots())
}

func TestBuild(t *testing.T) {
	assert.Equal(t, []string{"counter", "gallery", "sample"}, Names())

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			env, tk := newEnv(t)
			require.NoError(t, Build(context.Background(), name, env, Options{Width: 640, Height: 480}))
			assert.Empty(t, tk.Violations())
		})
	}

	env, _ := newEnv(t)
	assert.Error(t, Build(context.Background(), "missing", env, Options{}))
}

func TestGallery_AddItems(t *testing.T) {
	env, tk := newEnv(t)
	g, err := NewGallery(context.Background(), env, Options{})
	require.NoError(t, err)

	tk.Click(g.Add.Handle())
	assert.Empty(t, g.Rows())

	tk.Type(g.Input.Handle(), "apples")
	tk.Click(g.Add.Handle())
	tk.Type(g.Input.Handle(), "pears")
	tk.Click(g.Add.Handle())

	assert.Equal(t, []string{"apples", "pears"}, g.Rows())
	assert.Equal(t, 2, tk.Element(g.Items.Handle()).ItemCount)
	assert.Empty(t, tk.Element(g.Input.Handle()).Text)
	assert.InDelta(t, 0.2, tk.Element(g.Progress.Handle()).Position, 1e-6)

	cell, ok := tk.RequestItem(g.Items.Handle(), native.TableItemRequest{Index: 1, Column: 1})
	require.True(t, ok)
	assert.Equal(t, "pears", cell)
	cell, _ = tk.RequestItem(g.Items.Handle(), native.TableItemRequest{Index: 1, Column: 0})
	assert.Equal(t, "2", cell)
	cell, _ = tk.RequestItem(g.Items.Handle(), native.TableItemRequest{Index: 9})
	assert.Empty(t, cell)

	assert.Contains(t, string(tk.Element(g.Log.Handle()).Text), `added "pears"`)
}

func TestGallery_CapacityLimit(t *testing.T) {
	env, tk := newEnv(t)
	g, err := NewGallery(context.Background(), env, Options{})
	require.NoError(t, err)

	for range galleryCapacity + 2 {
		tk.Type(g.Input.Handle(), "x")
		tk.Click(g.Add.Handle())
	}

	assert.Len(t, g.Rows(), galleryCapacity)
	assert.InDelta(t, 1, tk.Element(g.Progress.Handle()).Position, 1e-6)
	assert.Contains(t, string(tk.Element(g.Log.Handle()).Text), "list is full")
}

func TestGallery_ShortcutClears(t *testing.T) {
	env, tk := newEnv(t)
	g, err := NewGallery(context.Background(), env, Options{})
	require.NoError(t, err)
	tk.Type(g.Input.Handle(), "item")
	tk.Click(g.Add.Handle())

	require.True(t, tk.FireShortcut(g.Window.Handle(), 0))

	assert.Empty(t, g.Rows())
	assert.Zero(t, tk.Element(g.Items.Handle()).ItemCount)
	spec := tk.Element(g.Window.Handle()).Shortcuts[0].Spec
	assert.True(t, spec.Ctrl)
	assert.Equal(t, env.KeycodeLetter('l'), spec.Code)
}

func TestGallery_ApplyColorRequiresCheckbox(t *testing.T) {
	env, tk := newEnv(t)
	g, err := NewGallery(context.Background(), env, Options{})
	require.NoError(t, err)
	require.NoError(t, g.Picker.SetColor(luigi.HSVA{H: 0, S: 1, V: 1, A: 1}))

	tk.Click(g.Apply.Handle())
	assert.Equal(t, "#000000", tk.LabelText(g.Hex.Handle()))

	tk.SetCheck(g.Enabled.Handle(), uint8(luigi.Checked))
	tk.Click(g.Apply.Handle())

	assert.Equal(t, "#FF0000", tk.LabelText(g.Hex.Handle()))
	swatch := tk.Element(g.Swatch.Handle())
	assert.Equal(t, uint32(0xFFFF0000), swatch.Image[0])
	assert.Equal(t, [3]int{swatchSize, swatchSize, swatchSize * 4}, swatch.ImageSize)
}

func TestGallery_ActionsMenu(t *testing.T) {
	env, tk := newEnv(t)
	g, err := NewGallery(context.Background(), env, Options{})
	require.NoError(t, err)
	tk.Type(g.Input.Handle(), "item")
	tk.Click(g.Add.Handle())
	before := env.Slots()

	tk.Click(g.Actions.Handle())

	menu := lastCreated(tk, "MenuCreate")
	require.NotZero(t, menu)
	require.Len(t, tk.Element(menu).Items, 2)
	require.True(t, tk.ChooseMenuItem(menu, 0))
	assert.Empty(t, g.Rows())
	assert.Equal(t, before+2, env.Slots(), "menu items stay registered on their anchor")

	require.NoError(t, g.Window.Destroy())
	assert.Zero(t, env.Slots())
	assert.Empty(t, tk.Violations())
}

func TestFill(t *testing.T) {
	bits := Fill(0xFF112233, 3, 2)

	assert.Len(t, bits, 6)
	for _, b := range bits {
		assert.Equal(t, uint32(0xFF112233), b)
	}
}

// lastCreated returns the handle produced by the most recent constructor call named
// method, found as the newest element whose parent matches the recorded call.
func lastCreated(tk *fake.Toolkit, method string) native.Handle {
	calls := tk.Calls()
	for i := len(calls) - 1; i >= 0; i-- {
		if calls[i].Method != method {
			continue
		}
		var newest native.Handle
		for _, h := range tk.Element(calls[i].Handle).Children {
			if h > newest {
				newest = h
			}
		}
		return newest
	}
	return 0
}
