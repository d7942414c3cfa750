package luigi_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/goluigi/pkg/luigi"
	"github.com/bnema/goluigi/pkg/luigi/native"
	"github.com/bnema/goluigi/pkg/luigi/native/fake"
)

func TestNewPanel_NilParent(t *testing.T) {
	newEnv(t)

	_, err := luigi.NewPanel(nil, 0)

	assert.ErrorIs(t, err, luigi.ErrInvalidParent)
}

func TestNewWindow_ZeroSizeRejected(t *testing.T) {
	env, tk := newEnv(t, fake.RejectZeroSizeWindows())

	win, err := luigi.NewWindow(env, "empty", 0, 0, 0)

	assert.Nil(t, win)
	var ce *luigi.CreationError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, luigi.KindWindow, ce.Kind)
	assert.ErrorIs(t, err, luigi.ErrCreationFailed)
	assert.Equal(t, "luigi: failed to create window", err.Error())
	names := tk.CallNames()
	assert.Equal(t, "WindowCreate", names[len(names)-1], "no native call may follow a failed constructor")
}

func TestNewWindow_TitleWithNUL(t *testing.T) {
	env, tk := newEnv(t)
	before := len(tk.Calls())

	_, err := luigi.NewWindow(env, "bad\x00title", 100, 100, 0)

	assert.ErrorIs(t, err, luigi.ErrInvalidString)
	assert.Len(t, tk.Calls(), before)
}

func TestCreationFailure_PerKind(t *testing.T) {
	env, _ := newEnv(t, fake.FailCreate("button"))
	_, panel := newTree(t, env)

	_, err := luigi.NewButton(panel, 0, "x")

	var ce *luigi.CreationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, luigi.KindButton, ce.Kind)
}

func TestDestroy_InvalidatesSubtree(t *testing.T) {
	env, tk := newEnv(t)
	win, panel := newTree(t, env)
	label, err := luigi.NewLabel(panel, 0, "hello")
	require.NoError(t, err)
	button, err := luigi.NewButton(panel, 0, "go")
	require.NoError(t, err)
	require.NoError(t, button.OnClick(func() { t.Fatal("destroyed button fired") }))

	require.NoError(t, panel.Destroy())

	assert.ErrorIs(t, label.SetContent("again"), luigi.ErrDestroyed)
	assert.ErrorIs(t, button.OnClick(func() {}), luigi.ErrDestroyed)
	assert.ErrorIs(t, panel.Refresh(), luigi.ErrDestroyed)
	assert.ErrorIs(t, panel.Destroy(), luigi.ErrDestroyed)
	_, err = luigi.NewLabel(panel, 0, "orphan")
	assert.ErrorIs(t, err, luigi.ErrDestroyed)

	assert.NoError(t, win.Refresh())
	assert.Zero(t, env.Slots())
	assert.False(t, tk.Live(button.Handle()))
	assert.False(t, tk.Click(button.Handle()))
	assert.Empty(t, tk.Violations())
}

func TestDestroy_DetachesBeforeDestroying(t *testing.T) {
	env, tk := newEnv(t)
	_, panel := newTree(t, env)
	button, err := luigi.NewButton(panel, 0, "go")
	require.NoError(t, err)
	require.NoError(t, button.OnClick(func() {}))

	require.NoError(t, panel.Destroy())

	calls := tk.Calls()
	require.GreaterOrEqual(t, len(calls), 2)
	detach, destroy := calls[len(calls)-2], calls[len(calls)-1]
	assert.Equal(t, "ButtonSetInvoke", detach.Method)
	assert.Equal(t, button.Handle(), detach.Handle)
	assert.Zero(t, detach.Context)
	assert.Equal(t, "ElementDestroy", destroy.Method)
	assert.Equal(t, panel.Handle(), destroy.Handle)
}

func TestDestroy_WindowRemovesShortcuts(t *testing.T) {
	env, _ := newEnv(t)
	win, _ := newTree(t, env)
	require.NoError(t, win.RegisterShortcut(luigi.Shortcut{Key: 'Q', Ctrl: true, Invoke: func() {}}))
	require.Equal(t, 1, env.Slots())

	require.NoError(t, win.Destroy())

	assert.Zero(t, env.Slots())
	assert.ErrorIs(t, win.RegisterShortcut(luigi.Shortcut{Invoke: func() {}}), luigi.ErrDestroyed)
}

func TestRefresh_ReachesToolkit(t *testing.T) {
	env, tk := newEnv(t)
	win, _ := newTree(t, env)

	require.NoError(t, win.Refresh())

	assert.Equal(t, 1, tk.Element(win.Handle()).Refreshes)
}

func TestElement_ParentLinks(t *testing.T) {
	env, tk := newEnv(t)
	win, panel := newTree(t, env)

	assert.Equal(t, luigi.KindPanel, panel.Kind())
	assert.Equal(t, win.Handle(), tk.Element(panel.Handle()).Parent)
	assert.Equal(t, "panel", panel.Kind().String())
}

func TestLabel_SetContentKeepsLastValue(t *testing.T) {
	env, tk := newEnv(t)
	_, panel := newTree(t, env)
	label, err := luigi.NewLabel(panel, 0, "initial")
	require.NoError(t, err)
	long := strings.Repeat("x", 4096)

	require.NoError(t, label.SetContent(""))
	require.NoError(t, label.SetContent(long))

	assert.Equal(t, long, tk.LabelText(label.Handle()))
}

func TestLabel_ContentMayContainNUL(t *testing.T) {
	env, tk := newEnv(t)
	_, panel := newTree(t, env)
	label, err := luigi.NewLabel(panel, 0, "a\x00b")
	require.NoError(t, err)

	assert.Equal(t, "a\x00b", tk.LabelText(label.Handle()))
}

func TestNativeClose_InvalidatesSubtree(t *testing.T) {
	env, tk := newEnv(t)
	_, panel := newTree(t, env)
	client, err := luigi.NewMDIClient(panel, luigi.Fill)
	require.NoError(t, err)
	child, err := luigi.NewMDIChild(client, luigi.MDIChildCloseButton, luigi.Rect(0, 200, 0, 100), "Notes")
	require.NoError(t, err)
	label, err := luigi.NewLabel(child, 0, "hello")
	require.NoError(t, err)
	img, err := luigi.NewImageDisplay(child, 0, make([]uint32, 4), 2, 2)
	require.NoError(t, err)
	button, err := luigi.NewButton(child, 0, "go")
	require.NoError(t, err)
	require.NoError(t, button.OnClick(func() { t.Fatal("closed button fired") }))
	require.Equal(t, 1, env.Slots())

	require.True(t, tk.CloseNatively(child.Handle()))

	assert.ErrorIs(t, label.SetContent("again"), luigi.ErrDestroyed)
	assert.ErrorIs(t, img.SetContent(make([]uint32, 4), 2, 2), luigi.ErrDestroyed)
	assert.ErrorIs(t, button.OnClick(func() {}), luigi.ErrDestroyed)
	assert.ErrorIs(t, child.Refresh(), luigi.ErrDestroyed)
	assert.ErrorIs(t, child.Destroy(), luigi.ErrDestroyed)
	assert.Zero(t, env.Slots())

	assert.NoError(t, client.Refresh())
	_, err = luigi.NewMDIChild(client, 0, luigi.Rect(0, 50, 0, 50), "Next")
	assert.NoError(t, err)
	assert.Empty(t, tk.Violations())
}

func TestNativeClose_OfWindowInvalidatesShortcuts(t *testing.T) {
	env, tk := newEnv(t)
	win, panel := newTree(t, env)
	require.NoError(t, win.RegisterShortcut(luigi.Shortcut{Key: 'Q', Ctrl: true, Invoke: func() {}}))

	require.True(t, tk.CloseNatively(win.Handle()))

	assert.Zero(t, env.Slots())
	assert.ErrorIs(t, panel.Refresh(), luigi.ErrDestroyed)
	_, err := luigi.NewWindow(env, "again", 10, 10, 0)
	assert.NoError(t, err)
	assert.Empty(t, tk.Violations())
}

func TestNativeDestroyNotice_AfterWrapperDestroyIsIgnored(t *testing.T) {
	env, tk := newEnv(t)
	win, panel := newTree(t, env)
	before := len(tk.Calls())
	require.NoError(t, panel.Destroy())
	after := len(tk.Calls())

	assert.NotPanics(t, func() { env.DispatchDestroyed(panel.Handle()) })

	assert.Len(t, tk.Calls(), after)
	assert.Greater(t, after, before)
	assert.NoError(t, win.Refresh())
	assert.Empty(t, tk.Violations())
}

func TestLimits_ClampedToCInt(t *testing.T) {
	env, tk := newEnv(t)
	win, err := luigi.NewWindow(env, "big", math.MaxInt, -4, 0)
	require.NoError(t, err)
	panel, err := luigi.NewPanel(win, 0)
	require.NoError(t, err)
	table, err := luigi.NewTable(panel, 0, "Col")
	require.NoError(t, err)
	code, err := luigi.NewCode(panel, 0)
	require.NoError(t, err)
	slider, err := luigi.NewSlider(panel, 0)
	require.NoError(t, err)
	client, err := luigi.NewMDIClient(panel, 0)
	require.NoError(t, err)

	require.NoError(t, table.SetItemCount(math.MaxInt))
	require.NoError(t, code.FocusLine(math.MaxInt))
	require.NoError(t, slider.SetSteps(math.MaxInt))
	child, err := luigi.NewMDIChild(client, 0, luigi.Rect(math.MinInt, math.MaxInt, -5, 5), "wide")
	require.NoError(t, err)

	assert.Equal(t, native.Rect{R: math.MaxInt32, B: 0}, tk.Element(win.Handle()).Bounds)
	assert.Equal(t, math.MaxInt32, tk.Element(table.Handle()).ItemCount)
	assert.Equal(t, math.MaxInt32, tk.Element(code.Handle()).Line)
	assert.Equal(t, math.MaxInt32, tk.Element(slider.Handle()).Steps)
	assert.Equal(t, native.Rect{L: math.MinInt32, R: math.MaxInt32, T: -5, B: 5}, tk.Element(child.Handle()).Bounds)
}
