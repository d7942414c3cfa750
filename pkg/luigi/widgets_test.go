package luigi_test

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/goluigi/pkg/luigi"
	"github.com/bnema/goluigi/pkg/luigi/native"
	"github.com/bnema/goluigi/pkg/luigi/native/fake"
)

func TestTable_ItemHandler(t *testing.T) {
	env, tk := newEnv(t)
	_, panel := newTree(t, env)
	table, err := luigi.NewTable(panel, luigi.Fill, "Name\tValue")
	require.NoError(t, err)
	require.NoError(t, table.SetItemCount(3))
	require.NoError(t, table.OnItem(func(item luigi.TableItem) string {
		return fmt.Sprintf("%d:%d:%t", item.Index, item.Column, item.Selected)
	}))
	require.NoError(t, table.ResizeColumns())

	text, ok := tk.RequestItem(table.Handle(), native.TableItemRequest{Index: 2, Column: 1, Selected: true})

	require.True(t, ok)
	assert.Equal(t, "2:1:true", text)
	assert.Equal(t, 3, tk.Element(table.Handle()).ItemCount)
	assert.Equal(t, "Name\tValue", tk.Element(table.Handle()).Columns)
}

func TestTable_LongCellIsTruncated(t *testing.T) {
	env, tk := newEnv(t)
	_, panel := newTree(t, env)
	table, err := luigi.NewTable(panel, 0, "Col")
	require.NoError(t, err)
	require.NoError(t, table.OnItem(func(luigi.TableItem) string { return strings.Repeat("y", 1000) }))

	text, ok := tk.RequestItem(table.Handle(), native.TableItemRequest{})

	require.True(t, ok)
	assert.Len(t, text, fake.TableBufferSize)
}

func TestTable_NegativeCountAndNilHandler(t *testing.T) {
	env, tk := newEnv(t)
	_, panel := newTree(t, env)
	table, err := luigi.NewTable(panel, 0, "Col")
	require.NoError(t, err)
	require.NoError(t, table.OnItem(func(luigi.TableItem) string { return "x" }))

	require.NoError(t, table.SetItemCount(-5))
	require.NoError(t, table.OnItem(nil))

	assert.Zero(t, tk.Element(table.Handle()).ItemCount)
	_, ok := tk.RequestItem(table.Handle(), native.TableItemRequest{})
	assert.False(t, ok)
	assert.Zero(t, env.Slots())
}

func TestTable_DestroyDetachesHandler(t *testing.T) {
	env, tk := newEnv(t)
	_, panel := newTree(t, env)
	table, err := luigi.NewTable(panel, 0, "Col")
	require.NoError(t, err)
	require.NoError(t, table.OnItem(func(luigi.TableItem) string { return "x" }))

	require.NoError(t, table.Destroy())

	assert.Zero(t, tk.Element(table.Handle()).Handler)
	assert.Zero(t, env.Slots())
}

func TestTable_ColumnsWithNUL(t *testing.T) {
	env, _ := newEnv(t)
	_, panel := newTree(t, env)

	_, err := luigi.NewTable(panel, 0, "a\x00b")

	assert.ErrorIs(t, err, luigi.ErrInvalidString)
}

func TestMenu_ItemsOutliveShow(t *testing.T) {
	env, tk := newEnv(t)
	_, panel := newTree(t, env)
	anchor, err := luigi.NewButton(panel, 0, "File")
	require.NoError(t, err)
	menu, err := luigi.NewMenu(anchor, 0)
	require.NoError(t, err)
	var chosen string
	require.NoError(t, menu.AddItem(0, "Open", func() { chosen = "open" }))
	require.NoError(t, menu.AddItem(0, "Quit", func() { chosen = "quit" }))
	assert.ErrorIs(t, menu.AddItem(0, "Broken", nil), luigi.ErrNilCallback)

	require.NoError(t, menu.Show())

	assert.ErrorIs(t, menu.Refresh(), luigi.ErrDestroyed)
	assert.ErrorIs(t, menu.AddItem(0, "Late", func() {}), luigi.ErrDestroyed)
	require.True(t, tk.ChooseMenuItem(menu.Handle(), 1))
	assert.Equal(t, "quit", chosen)
	assert.Equal(t, 2, env.Slots())

	require.NoError(t, anchor.Destroy())
	assert.Zero(t, env.Slots())
	assert.Empty(t, tk.Violations())
}

func TestWindow_Shortcut(t *testing.T) {
	env, tk := newEnv(t)
	win, _ := newTree(t, env)
	quit := 0

	require.NoError(t, win.RegisterShortcut(luigi.Shortcut{
		Key:    env.KeycodeLetter('q'),
		Ctrl:   true,
		Invoke: func() { quit++ },
	}))
	require.True(t, tk.FireShortcut(win.Handle(), 0))

	assert.Equal(t, 1, quit)
	spec := tk.Element(win.Handle()).Shortcuts[0].Spec
	assert.Equal(t, native.ShortcutSpec{Code: 'q', Ctrl: true}, spec)
	assert.ErrorIs(t, win.RegisterShortcut(luigi.Shortcut{Key: 1}), luigi.ErrNilCallback)
}

func TestTextbox(t *testing.T) {
	env, tk := newEnv(t)
	_, panel := newTree(t, env)
	box, err := luigi.NewTextbox(panel, 0)
	require.NoError(t, err)

	empty, err := box.Empty()
	require.NoError(t, err)
	assert.True(t, empty)

	tk.Type(box.Handle(), "typed")
	text, err := box.Text()
	require.NoError(t, err)
	assert.Equal(t, "typed", text)

	require.NoError(t, box.Clear(false))
	require.NoError(t, box.Replace("fresh", false))
	text, err = box.Text()
	require.NoError(t, err)
	assert.Equal(t, "fresh", text)
}

func TestCheckbox_State(t *testing.T) {
	env, tk := newEnv(t)
	_, panel := newTree(t, env)
	box, err := luigi.NewCheckbox(panel, luigi.CheckboxAllowIndeterminate, "Enable")
	require.NoError(t, err)

	state, err := box.State()
	require.NoError(t, err)
	assert.Equal(t, luigi.Unchecked, state)

	tk.SetCheck(box.Handle(), 2)
	state, err = box.State()
	require.NoError(t, err)
	assert.Equal(t, luigi.Indeterminate, state)
	assert.Equal(t, "indeterminate", state.String())
}

func TestCode_InsertAndFocus(t *testing.T) {
	env, tk := newEnv(t)
	_, panel := newTree(t, env)
	code, err := luigi.NewCode(panel, 0)
	require.NoError(t, err)

	require.NoError(t, code.InsertContent("line 1\n", false))
	require.NoError(t, code.InsertContent("line 2\n", false))
	require.NoError(t, code.FocusLine(1))
	assert.Equal(t, "line 1\nline 2\n", string(tk.Element(code.Handle()).Text))

	require.NoError(t, code.InsertContent("only", true))
	assert.Equal(t, "only", string(tk.Element(code.Handle()).Text))
	assert.Equal(t, 1, tk.Element(code.Handle()).Line)
}

func TestRange_PositionsAreClamped(t *testing.T) {
	env, tk := newEnv(t)
	_, panel := newTree(t, env)
	gauge, err := luigi.NewGauge(panel, 0)
	require.NoError(t, err)
	slider, err := luigi.NewSlider(panel, luigi.SliderVertical)
	require.NoError(t, err)

	tests := []struct {
		in, want float32
	}{
		{in: 0.25, want: 0.25},
		{in: -1, want: 0},
		{in: 3, want: 1},
		{in: float32(math.NaN()), want: 0},
	}
	for _, tt := range tests {
		require.NoError(t, gauge.SetPosition(tt.in))
		require.NoError(t, slider.SetPosition(tt.in))
		assert.Equal(t, tt.want, tk.Element(gauge.Handle()).Position)
		assert.Equal(t, tt.want, tk.Element(slider.Handle()).Position)
	}

	require.NoError(t, slider.SetSteps(-3))
	assert.Zero(t, tk.Element(slider.Handle()).Steps)
	require.NoError(t, slider.SetSteps(10))
	assert.Equal(t, 10, tk.Element(slider.Handle()).Steps)
}

func TestMDI(t *testing.T) {
	env, tk := newEnv(t)
	_, panel := newTree(t, env)
	client, err := luigi.NewMDIClient(panel, luigi.Fill)
	require.NoError(t, err)

	child, err := luigi.NewMDIChild(client, luigi.MDIChildCloseButton, luigi.Rect(10, 210, 20, 120), "Notes")
	require.NoError(t, err)

	assert.Equal(t, native.Rect{L: 10, R: 210, T: 20, B: 120}, tk.Element(child.Handle()).Bounds)
	assert.Equal(t, client.Handle(), tk.Element(child.Handle()).Parent)

	_, err = luigi.NewMDIChild(nil, 0, luigi.Rectangle{}, "x")
	assert.ErrorIs(t, err, luigi.ErrInvalidParent)
}

func TestColorPicker(t *testing.T) {
	env, tk := newEnv(t)
	_, panel := newTree(t, env)
	picker, err := luigi.NewColorPicker(panel, luigi.ColorPickerHasOpacity)
	require.NoError(t, err)

	require.NoError(t, picker.SetColor(luigi.HSVA{H: 0.5, S: 2, V: -1, A: 0.75}))
	got, err := picker.Color()

	require.NoError(t, err)
	assert.Equal(t, luigi.HSVA{H: 0.5, S: 1, V: 0, A: 0.75}, got)
	assert.Equal(t, [4]float32{0.5, 1, 0, 0.75}, tk.Element(picker.Handle()).Color)
}

func TestImageDisplay(t *testing.T) {
	env, tk := newEnv(t)
	_, panel := newTree(t, env)
	bits := make([]uint32, 4*3)

	img, err := luigi.NewImageDisplay(panel, luigi.ImageDisplayZoomFit, bits, 4, 3)
	require.NoError(t, err)
	assert.Equal(t, [3]int{4, 3, 16}, tk.Element(img.Handle()).ImageSize)

	assert.ErrorIs(t, img.SetContent(bits, 5, 3), luigi.ErrInvalidImage)
	assert.ErrorIs(t, img.SetContent(bits, 0, 3), luigi.ErrInvalidImage)
	require.NoError(t, img.SetContent(bits[:6], 3, 2))
	assert.Equal(t, [3]int{3, 2, 12}, tk.Element(img.Handle()).ImageSize)

	_, err = luigi.NewImageDisplay(panel, 0, nil, 1, 1)
	assert.ErrorIs(t, err, luigi.ErrInvalidImage)
}

func TestImageDisplay_OversizedDimensions(t *testing.T) {
	env, tk := newEnv(t)
	_, panel := newTree(t, env)
	bits := make([]uint32, 4)
	img, err := luigi.NewImageDisplay(panel, 0, bits, 2, 2)
	require.NoError(t, err)

	tests := []struct {
		name          string
		width, height int
	}{
		{name: "product wraps negative", width: math.MaxInt, height: 2},
		{name: "height wraps", width: 2, height: math.MaxInt},
		{name: "product wraps to zero", width: math.MaxInt/2 + 1, height: 2},
		{name: "stride past C int", width: math.MaxInt32/4 + 1, height: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, img.SetContent(bits, tt.width, tt.height), luigi.ErrInvalidImage)
			_, err := luigi.NewImageDisplay(panel, 0, bits, tt.width, tt.height)
			assert.ErrorIs(t, err, luigi.ErrInvalidImage)
		})
	}
	assert.Equal(t, [3]int{2, 2, 8}, tk.Element(img.Handle()).ImageSize)
}

func TestMenu_RejectsWrapperChildren(t *testing.T) {
	env, tk := newEnv(t)
	_, panel := newTree(t, env)
	anchor, err := luigi.NewButton(panel, 0, "File")
	require.NoError(t, err)
	menu, err := luigi.NewMenu(anchor, 0)
	require.NoError(t, err)
	before := len(tk.Calls())

	_, err = luigi.NewButton(menu, 0, "inside")
	assert.ErrorIs(t, err, luigi.ErrInvalidParent)
	_, err = luigi.NewMenu(menu, 0)
	assert.ErrorIs(t, err, luigi.ErrInvalidParent)
	assert.Len(t, tk.Calls(), before, "no native constructor may run")

	require.NoError(t, menu.AddItem(0, "Open", func() {}))
	require.NoError(t, menu.Show())
	assert.Equal(t, 1, env.Slots())
	require.NoError(t, anchor.Destroy())
	assert.Zero(t, env.Slots())
	assert.Empty(t, tk.Violations())
}
