package fake

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/goluigi/pkg/luigi/native"
)

type recorder struct {
	invoked   []native.Context
	items     []native.TableItemRequest
	answer    string
	destroyed []native.Handle
}

func (r *recorder) DispatchInvoke(cp native.Context) {
	r.invoked = append(r.invoked, cp)
}

func (r *recorder) DispatchTableItem(_ native.Context, req native.TableItemRequest) string {
	r.items = append(r.items, req)
	return r.answer
}

func (r *recorder) DispatchDestroyed(h native.Handle) {
	r.destroyed = append(r.destroyed, h)
}

func TestToolkit_CloseNativelyReportsChildrenFirst(t *testing.T) {
	rec := &recorder{}
	tk := New()
	tk.Bind(rec)
	win := tk.WindowCreate(0, 0, "w", 100, 100)
	client := tk.MDIClientCreate(win, 0)
	child := tk.MDIChildCreate(client, 0, native.Rect{R: 50, B: 50}, []byte("c"))
	label := tk.LabelCreate(child, 0, []byte("l"))

	require.True(t, tk.CloseNatively(child))

	assert.Equal(t, []native.Handle{label, child}, rec.destroyed)
	assert.False(t, tk.Live(child))
	assert.False(t, tk.Live(label))
	assert.True(t, tk.Live(client))
	assert.False(t, tk.CloseNatively(child), "already closed")
	assert.Empty(t, tk.Violations())
}

func TestToolkit_InitialiseTwice(t *testing.T) {
	tk := New()
	require.NoError(t, tk.Initialise())
	assert.ErrorIs(t, tk.Initialise(), native.ErrAlreadyInitialised)
	assert.True(t, tk.Initialised())
}

func TestToolkit_DestroyMarksSubtree(t *testing.T) {
	tk := New()
	win := tk.WindowCreate(0, 0, "w", 100, 100)
	panel := tk.PanelCreate(win, 0)
	button := tk.ButtonCreate(panel, 0, []byte("b"))

	tk.ElementDestroy(win)

	assert.False(t, tk.Live(win))
	assert.False(t, tk.Live(panel))
	assert.False(t, tk.Live(button))
	assert.Empty(t, tk.Violations())

	tk.ButtonSetInvoke(button, 7)
	require.Len(t, tk.Violations(), 1)
	assert.Contains(t, tk.Violations()[0], "ButtonSetInvoke on destroyed button")
}

func TestToolkit_FailuresReturnZeroHandles(t *testing.T) {
	tk := New(RejectZeroSizeWindows(), FailCreate("label"))

	assert.Zero(t, tk.WindowCreate(0, 0, "w", 0, 10))
	win := tk.WindowCreate(0, 0, "w", 10, 10)
	require.NotZero(t, win)
	assert.Zero(t, tk.LabelCreate(win, 0, []byte("x")))
	assert.NotZero(t, tk.PanelCreate(win, 0))
}

func TestToolkit_ClickDispatchesAttachedContext(t *testing.T) {
	rec := &recorder{}
	tk := New()
	tk.Bind(rec)
	win := tk.WindowCreate(0, 0, "w", 10, 10)
	button := tk.ButtonCreate(win, 0, []byte("b"))

	assert.False(t, tk.Click(button), "no handler attached")

	tk.ButtonSetInvoke(button, 3)
	assert.True(t, tk.Click(button))
	assert.Equal(t, []native.Context{3}, rec.invoked)

	tk.ElementDestroy(win)
	assert.False(t, tk.Click(button))
	assert.Empty(t, tk.Violations(), "clicking a destroyed button is not a binding error")
}

func TestToolkit_RequestItemTruncates(t *testing.T) {
	rec := &recorder{answer: strings.Repeat("x", TableBufferSize+10)}
	tk := New()
	tk.Bind(rec)
	win := tk.WindowCreate(0, 0, "w", 10, 10)
	table := tk.TableCreate(win, 0, "A\tB")
	tk.TableSetHandler(table, 9)

	text, ok := tk.RequestItem(table, native.TableItemRequest{Index: 2, Column: 1})
	require.True(t, ok)
	assert.Len(t, text, TableBufferSize)
	assert.Equal(t, []native.TableItemRequest{{Index: 2, Column: 1}}, rec.items)
}

func TestToolkit_ChooseMenuItemDestroysMenu(t *testing.T) {
	rec := &recorder{}
	tk := New()
	tk.Bind(rec)
	win := tk.WindowCreate(0, 0, "w", 10, 10)
	menu := tk.MenuCreate(win, 0)
	tk.MenuAddItem(menu, 0, []byte("a"), 11)
	tk.MenuAddItem(menu, 0, []byte("b"), 12)

	assert.False(t, tk.ChooseMenuItem(menu, 0), "menu not shown yet")
	tk.MenuShow(menu)

	assert.True(t, tk.ChooseMenuItem(menu, 1))
	assert.Equal(t, []native.Context{12}, rec.invoked)
	assert.False(t, tk.Live(menu))
}

func TestToolkit_ColorRoundTrip(t *testing.T) {
	tk := New()
	h, s, v, ok := tk.ColorToHSV(0x3366CC)
	require.True(t, ok)
	assert.Equal(t, uint32(0x3366CC), tk.ColorToRGB(h, s, v))
}
