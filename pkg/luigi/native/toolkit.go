// Package native describes the flat, C-style ABI of the Luigi toolkit.
//
// Everything here is deliberately low level: handles are opaque addresses, callbacks
// are (trampoline, context) pairs owned by the backend, and nullable pointers are
// returned as a zero Handle. Application code should use package luigi instead, which
// wraps this surface with ownership and lifetime checks.
package native

import "errors"

// Handle is an opaque address of a toolkit-owned object. Zero means "no object".
type Handle uintptr

// Context is the opaque user-data value handed to the toolkit alongside a trampoline.
// Zero detaches the callback.
type Context uintptr

// ErrAlreadyInitialised is returned by Toolkit.Initialise when the native toolkit was
// already set up in this process.
var ErrAlreadyInitialised = errors.New("native: toolkit already initialised")

// Rect mirrors UIRectangle.
type Rect struct {
	L, R, T, B int32
}

// ShortcutSpec carries the plain-data part of a UIShortcut.
type ShortcutSpec struct {
	Code  int
	Ctrl  bool
	Shift bool
	Alt   bool
}

// TableItemRequest is the decoded payload of UI_MSG_TABLE_GET_ITEM.
type TableItemRequest struct {
	Index    int
	Column   int
	Selected bool
}

// Dispatcher receives trampoline invocations from the toolkit. A backend holds exactly
// one Dispatcher and routes every native callback through it using the Context it was
// registered with.
type Dispatcher interface {
	// DispatchInvoke handles a void (*)(void *cp) callback.
	DispatchInvoke(cp Context)
	// DispatchTableItem answers a table cell request. The returned text is copied into
	// the native buffer, truncated to its capacity.
	DispatchTableItem(cp Context, req TableItemRequest) string
	// DispatchDestroyed reports that the toolkit is destroying the element behind h,
	// whoever asked for it. It fires once per element of the subtree, children first,
	// while h is still a valid address.
	DispatchDestroyed(h Handle)
}

// Toolkit is the consumed native ABI. All methods must be called from the thread that
// runs the message loop.
type Toolkit interface {
	// Bind installs the dispatcher used by the backend trampolines.
	Bind(d Dispatcher)

	Initialise() error
	// FontActivate creates and activates a font. It reports false when the native
	// font constructor returned null.
	FontActivate(name string, size int) bool
	// MessageLoop blocks until the native quit condition and returns its exit code.
	MessageLoop() int

	WindowCreate(owner Handle, flags uint32, title string, width, height int) Handle
	WindowRegisterShortcut(window Handle, spec ShortcutSpec, cp Context)

	PanelCreate(parent Handle, flags uint32) Handle

	LabelCreate(parent Handle, flags uint32, text []byte) Handle
	LabelSetContent(label Handle, text []byte)

	ButtonCreate(parent Handle, flags uint32, label []byte) Handle
	// ButtonSetInvoke attaches the backend's invoke trampoline with cp, or detaches it
	// when cp is zero.
	ButtonSetInvoke(button Handle, cp Context)

	TableCreate(parent Handle, flags uint32, columns string) Handle
	TableSetItemCount(table Handle, count int)
	TableResizeColumns(table Handle)
	// TableSetHandler attaches the table-item trampoline with cp, or detaches it when
	// cp is zero.
	TableSetHandler(table Handle, cp Context)

	TextboxCreate(parent Handle, flags uint32) Handle
	TextboxText(textbox Handle) []byte
	TextboxReplace(textbox Handle, text []byte, sendChanged bool)
	TextboxClear(textbox Handle, sendChanged bool)

	CheckboxCreate(parent Handle, flags uint32, label []byte) Handle
	CheckboxState(checkbox Handle) uint8

	CodeCreate(parent Handle, flags uint32) Handle
	CodeInsertContent(code Handle, content []byte, replace bool)
	CodeFocusLine(code Handle, line int)

	GaugeCreate(parent Handle, flags uint32) Handle
	GaugeSetPosition(gauge Handle, position float32)

	SliderCreate(parent Handle, flags uint32) Handle
	SliderSetPosition(slider Handle, position float32)
	SliderSetSteps(slider Handle, steps int)

	MDIClientCreate(parent Handle, flags uint32) Handle
	MDIChildCreate(parent Handle, flags uint32, bounds Rect, title []byte) Handle

	MenuCreate(parent Handle, flags uint32) Handle
	MenuAddItem(menu Handle, flags uint32, label []byte, cp Context)
	MenuShow(menu Handle)

	ColorPickerCreate(parent Handle, flags uint32) Handle
	ColorPickerColor(picker Handle) (h, s, v, a float32)
	ColorPickerSetColor(picker Handle, h, s, v, a float32)

	ImageDisplayCreate(parent Handle, flags uint32, bits []uint32, width, height, stride int) Handle
	ImageDisplaySetContent(display Handle, bits []uint32, width, height, stride int)

	ElementDestroy(element Handle)
	ElementRefresh(element Handle)

	ColorToHSV(rgb uint32) (h, s, v float32, ok bool)
	ColorToRGB(h, s, v float32) uint32
	MeasureStringWidth(text []byte) int
	MeasureStringHeight() int
	AnimateClock() uint64
	KeycodeLetter(letter byte) int
}
