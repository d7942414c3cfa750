// Package fake is an in-memory native.Toolkit. It keeps a simulated element tree,
// records every call and lets tests fire the callbacks a user would trigger.
//
// The fake is strict about lifetimes: any call that reaches a destroyed or unknown
// handle is recorded as a violation, and firing a callback whose trampoline was
// detached does nothing, exactly like the real toolkit.
package fake

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/bnema/goluigi/pkg/luigi/native"
)

// TableBufferSize mirrors the stack buffer the native table handler writes into.
const TableBufferSize = 256

// Call is one recorded toolkit invocation.
type Call struct {
	Method  string
	Handle  native.Handle
	Context native.Context
}

func (c Call) String() string {
	return fmt.Sprintf("%s(%#x, cp=%d)", c.Method, uintptr(c.Handle), uintptr(c.Context))
}

// Shortcut is a registered window shortcut.
type Shortcut struct {
	Spec    native.ShortcutSpec
	Context native.Context
}

// MenuItem is an item added to a menu.
type MenuItem struct {
	Label   string
	Flags   uint32
	Context native.Context
}

// Element is the simulated state of one native element.
type Element struct {
	Kind      string
	Flags     uint32
	Parent    native.Handle
	Children  []native.Handle
	Destroyed bool

	Text      []byte
	Invoke    native.Context
	Handler   native.Context
	Columns   string
	ItemCount int
	Check     uint8
	Line      int
	Position  float32
	Steps     int
	Bounds    native.Rect
	Color     [4]float32
	Image     []uint32
	ImageSize [3]int
	Shortcuts []Shortcut
	Items     []MenuItem
	Shown     bool
	Refreshes int
}

// Option configures a Toolkit.
type Option func(*Toolkit)

// RejectZeroSizeWindows makes WindowCreate return null for a zero width or height.
func RejectZeroSizeWindows() Option {
	return func(t *Toolkit) { t.rejectZeroSize = true }
}

// FailCreate makes the constructor for the named kind (e.g. "button") return null.
func FailCreate(kinds ...string) Option {
	return func(t *Toolkit) {
		for _, k := range kinds {
			t.failCreate[k] = true
		}
	}
}

// FailFont makes FontActivate report failure.
func FailFont() Option {
	return func(t *Toolkit) { t.failFont = true }
}

// OnLoop sets the script MessageLoop runs instead of blocking. Its result is the loop
// exit code.
func OnLoop(fn func(t *Toolkit) int) Option {
	return func(t *Toolkit) { t.onLoop = fn }
}

// Toolkit is the simulated backend.
type Toolkit struct {
	dispatcher  native.Dispatcher
	initialised bool
	font        string
	fontSize    int
	clock       uint64

	next       native.Handle
	elements   map[native.Handle]*Element
	calls      []Call
	violations []string

	rejectZeroSize bool
	failCreate     map[string]bool
	failFont       bool
	onLoop         func(t *Toolkit) int
}

var _ native.Toolkit = (*Toolkit)(nil)

// New returns an uninitialised fake toolkit.
func New(opts ...Option) *Toolkit {
	t := &Toolkit{
		next:       0x1000,
		elements:   make(map[native.Handle]*Element),
		failCreate: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Calls returns the recorded call log.
func (t *Toolkit) Calls() []Call {
	return slices.Clone(t.calls)
}

// CallNames returns the method names of the recorded calls, in order.
func (t *Toolkit) CallNames() []string {
	names := make([]string, len(t.calls))
	for i, c := range t.calls {
		names[i] = c.Method
	}
	return names
}

// Violations lists calls that reached a destroyed or unknown handle.
func (t *Toolkit) Violations() []string {
	return slices.Clone(t.violations)
}

// Element returns the simulated state behind h, or nil.
func (t *Toolkit) Element(h native.Handle) *Element {
	return t.elements[h]
}

// Live reports whether h names an element that was not destroyed.
func (t *Toolkit) Live(h native.Handle) bool {
	e := t.elements[h]
	return e != nil && !e.Destroyed
}

// Font returns the active font name and size.
func (t *Toolkit) Font() (string, int) {
	return t.font, t.fontSize
}

// Initialised reports whether Initialise succeeded.
func (t *Toolkit) Initialised() bool {
	return t.initialised
}

func (t *Toolkit) record(method string, h native.Handle, cp native.Context) {
	t.calls = append(t.calls, Call{Method: method, Handle: h, Context: cp})
}

// use resolves h for a call, recording a violation if it is not live.
func (t *Toolkit) use(method string, h native.Handle) *Element {
	e := t.elements[h]
	if e == nil {
		t.violations = append(t.violations, fmt.Sprintf("%s on unknown handle %#x", method, uintptr(h)))
		return &Element{}
	}
	if e.Destroyed {
		t.violations = append(t.violations, fmt.Sprintf("%s on destroyed %s %#x", method, e.Kind, uintptr(h)))
	}
	return e
}

// peek resolves h for a simulated user action. Acting on a destroyed element is not a
// violation: it simply has no effect.
func (t *Toolkit) peek(h native.Handle) *Element {
	return t.elements[h]
}

func (t *Toolkit) create(method, kind string, parent native.Handle, flags uint32) (native.Handle, *Element) {
	t.record(method, parent, 0)
	if parent != 0 {
		t.use(method, parent)
	}
	if t.failCreate[kind] {
		return 0, nil
	}
	t.next += 0x10
	h := t.next
	e := &Element{Kind: kind, Flags: flags, Parent: parent}
	t.elements[h] = e
	if p := t.elements[parent]; p != nil {
		p.Children = append(p.Children, h)
	}
	return h, e
}

func (t *Toolkit) Bind(d native.Dispatcher) {
	t.record("Bind", 0, 0)
	t.dispatcher = d
}

func (t *Toolkit) Initialise() error {
	t.record("Initialise", 0, 0)
	if t.initialised {
		return native.ErrAlreadyInitialised
	}
	t.initialised = true
	return nil
}

func (t *Toolkit) FontActivate(name string, size int) bool {
	t.record("FontActivate", 0, 0)
	if t.failFont {
		return false
	}
	t.font, t.fontSize = name, size
	return true
}

func (t *Toolkit) MessageLoop() int {
	t.record("MessageLoop", 0, 0)
	if t.onLoop == nil {
		return 0
	}
	return t.onLoop(t)
}

func (t *Toolkit) WindowCreate(owner native.Handle, flags uint32, title string, width, height int) native.Handle {
	if t.rejectZeroSize && (width == 0 || height == 0) {
		t.record("WindowCreate", owner, 0)
		return 0
	}
	h, e := t.create("WindowCreate", "window", owner, flags)
	if e != nil {
		e.Text = []byte(title)
		// Truncated the way the C int parameters would be.
		e.Bounds = native.Rect{R: int32(width), B: int32(height)}
	}
	return h
}

func (t *Toolkit) WindowRegisterShortcut(window native.Handle, spec native.ShortcutSpec, cp native.Context) {
	t.record("WindowRegisterShortcut", window, cp)
	e := t.use("WindowRegisterShortcut", window)
	e.Shortcuts = append(e.Shortcuts, Shortcut{Spec: spec, Context: cp})
}

func (t *Toolkit) PanelCreate(parent native.Handle, flags uint32) native.Handle {
	h, _ := t.create("PanelCreate", "panel", parent, flags)
	return h
}

func (t *Toolkit) LabelCreate(parent native.Handle, flags uint32, text []byte) native.Handle {
	h, e := t.create("LabelCreate", "label", parent, flags)
	if e != nil {
		e.Text = slices.Clone(text)
	}
	return h
}

func (t *Toolkit) LabelSetContent(label native.Handle, text []byte) {
	t.record("LabelSetContent", label, 0)
	t.use("LabelSetContent", label).Text = slices.Clone(text)
}

func (t *Toolkit) ButtonCreate(parent native.Handle, flags uint32, label []byte) native.Handle {
	h, e := t.create("ButtonCreate", "button", parent, flags)
	if e != nil {
		e.Text = slices.Clone(label)
	}
	return h
}

func (t *Toolkit) ButtonSetInvoke(button native.Handle, cp native.Context) {
	t.record("ButtonSetInvoke", button, cp)
	t.use("ButtonSetInvoke", button).Invoke = cp
}

func (t *Toolkit) TableCreate(parent native.Handle, flags uint32, columns string) native.Handle {
	h, e := t.create("TableCreate", "table", parent, flags)
	if e != nil {
		e.Columns = columns
	}
	return h
}

func (t *Toolkit) TableSetItemCount(table native.Handle, count int) {
	t.record("TableSetItemCount", table, 0)
	t.use("TableSetItemCount", table).ItemCount = int(int32(count))
}

func (t *Toolkit) TableResizeColumns(table native.Handle) {
	t.record("TableResizeColumns", table, 0)
	t.use("TableResizeColumns", table)
}

func (t *Toolkit) TableSetHandler(table native.Handle, cp native.Context) {
	t.record("TableSetHandler", table, cp)
	t.use("TableSetHandler", table).Handler = cp
}

func (t *Toolkit) TextboxCreate(parent native.Handle, flags uint32) native.Handle {
	h, _ := t.create("TextboxCreate", "textbox", parent, flags)
	return h
}

func (t *Toolkit) TextboxText(textbox native.Handle) []byte {
	t.record("TextboxText", textbox, 0)
	return slices.Clone(t.use("TextboxText", textbox).Text)
}

func (t *Toolkit) TextboxReplace(textbox native.Handle, text []byte, sendChanged bool) {
	t.record("TextboxReplace", textbox, 0)
	e := t.use("TextboxReplace", textbox)
	e.Text = append(e.Text, text...)
}

func (t *Toolkit) TextboxClear(textbox native.Handle, sendChanged bool) {
	t.record("TextboxClear", textbox, 0)
	t.use("TextboxClear", textbox).Text = nil
}

func (t *Toolkit) CheckboxCreate(parent native.Handle, flags uint32, label []byte) native.Handle {
	h, e := t.create("CheckboxCreate", "checkbox", parent, flags)
	if e != nil {
		e.Text = slices.Clone(label)
	}
	return h
}

func (t *Toolkit) CheckboxState(checkbox native.Handle) uint8 {
	t.record("CheckboxState", checkbox, 0)
	return t.use("CheckboxState", checkbox).Check
}

func (t *Toolkit) CodeCreate(parent native.Handle, flags uint32) native.Handle {
	h, _ := t.create("CodeCreate", "code", parent, flags)
	return h
}

func (t *Toolkit) CodeInsertContent(code native.Handle, content []byte, replace bool) {
	t.record("CodeInsertContent", code, 0)
	e := t.use("CodeInsertContent", code)
	if replace {
		e.Text = nil
	}
	e.Text = append(e.Text, content...)
}

func (t *Toolkit) CodeFocusLine(code native.Handle, line int) {
	t.record("CodeFocusLine", code, 0)
	t.use("CodeFocusLine", code).Line = int(int32(line))
}

func (t *Toolkit) GaugeCreate(parent native.Handle, flags uint32) native.Handle {
	h, _ := t.create("GaugeCreate", "gauge", parent, flags)
	return h
}

func (t *Toolkit) GaugeSetPosition(gauge native.Handle, position float32) {
	t.record("GaugeSetPosition", gauge, 0)
	t.use("GaugeSetPosition", gauge).Position = position
}

func (t *Toolkit) SliderCreate(parent native.Handle, flags uint32) native.Handle {
	h, _ := t.create("SliderCreate", "slider", parent, flags)
	return h
}

func (t *Toolkit) SliderSetPosition(slider native.Handle, position float32) {
	t.record("SliderSetPosition", slider, 0)
	t.use("SliderSetPosition", slider).Position = position
}

func (t *Toolkit) SliderSetSteps(slider native.Handle, steps int) {
	t.record("SliderSetSteps", slider, 0)
	t.use("SliderSetSteps", slider).Steps = int(int32(steps))
}

func (t *Toolkit) MDIClientCreate(parent native.Handle, flags uint32) native.Handle {
	h, _ := t.create("MDIClientCreate", "mdi-client", parent, flags)
	return h
}

func (t *Toolkit) MDIChildCreate(parent native.Handle, flags uint32, bounds native.Rect, title []byte) native.Handle {
	h, e := t.create("MDIChildCreate", "mdi-child", parent, flags)
	if e != nil {
		e.Bounds = bounds
		e.Text = slices.Clone(title)
	}
	return h
}

func (t *Toolkit) MenuCreate(parent native.Handle, flags uint32) native.Handle {
	h, _ := t.create("MenuCreate", "menu", parent, flags)
	return h
}

func (t *Toolkit) MenuAddItem(menu native.Handle, flags uint32, label []byte, cp native.Context) {
	t.record("MenuAddItem", menu, cp)
	e := t.use("MenuAddItem", menu)
	e.Items = append(e.Items, MenuItem{Label: string(label), Flags: flags, Context: cp})
}

func (t *Toolkit) MenuShow(menu native.Handle) {
	t.record("MenuShow", menu, 0)
	t.use("MenuShow", menu).Shown = true
}

func (t *Toolkit) ColorPickerCreate(parent native.Handle, flags uint32) native.Handle {
	h, e := t.create("ColorPickerCreate", "color-picker", parent, flags)
	if e != nil {
		e.Color = [4]float32{0, 0, 0, 1}
	}
	return h
}

func (t *Toolkit) ColorPickerColor(picker native.Handle) (h, s, v, a float32) {
	t.record("ColorPickerColor", picker, 0)
	c := t.use("ColorPickerColor", picker).Color
	return c[0], c[1], c[2], c[3]
}

func (t *Toolkit) ColorPickerSetColor(picker native.Handle, h, s, v, a float32) {
	t.record("ColorPickerSetColor", picker, 0)
	t.use("ColorPickerSetColor", picker).Color = [4]float32{h, s, v, a}
}

func (t *Toolkit) ImageDisplayCreate(parent native.Handle, flags uint32, bits []uint32, width, height, stride int) native.Handle {
	h, e := t.create("ImageDisplayCreate", "image-display", parent, flags)
	if e != nil {
		e.Image = slices.Clone(bits)
		e.ImageSize = [3]int{width, height, stride}
	}
	return h
}

func (t *Toolkit) ImageDisplaySetContent(display native.Handle, bits []uint32, width, height, stride int) {
	t.record("ImageDisplaySetContent", display, 0)
	e := t.use("ImageDisplaySetContent", display)
	e.Image = slices.Clone(bits)
	e.ImageSize = [3]int{width, height, stride}
}

// ElementDestroy marks the subtree rooted at element destroyed.
func (t *Toolkit) ElementDestroy(element native.Handle) {
	t.record("ElementDestroy", element, 0)
	e := t.use("ElementDestroy", element)
	t.markDestroyed(e)
}

func (t *Toolkit) markDestroyed(e *Element) {
	e.Destroyed = true
	for _, c := range e.Children {
		if child := t.elements[c]; child != nil {
			t.markDestroyed(child)
		}
	}
}

func (t *Toolkit) ElementRefresh(element native.Handle) {
	t.record("ElementRefresh", element, 0)
	t.use("ElementRefresh", element).Refreshes++
}

// ColorToHSV converts like the toolkit. It never fails for a plain RGB value.
func (t *Toolkit) ColorToHSV(rgb uint32) (h, s, v float32, ok bool) {
	t.record("ColorToHSV", 0, 0)
	r := float32((rgb>>16)&0xFF) / 255
	g := float32((rgb>>8)&0xFF) / 255
	b := float32(rgb&0xFF) / 255
	hi := max(r, g, b)
	lo := min(r, g, b)
	v = hi
	if hi == 0 {
		return 0, 0, 0, true
	}
	delta := hi - lo
	s = delta / hi
	if delta == 0 {
		return 0, s, v, true
	}
	switch hi {
	case r:
		h = (g - b) / delta
	case g:
		h = 2 + (b-r)/delta
	default:
		h = 4 + (r-g)/delta
	}
	h /= 6
	if h < 0 {
		h++
	}
	return h, s, v, true
}

// ColorToRGB converts like the toolkit, with hue in [0, 1].
func (t *Toolkit) ColorToRGB(h, s, v float32) uint32 {
	t.record("ColorToRGB", 0, 0)
	h6 := h * 6
	if h6 >= 6 {
		h6 = 0
	}
	i := int(math.Floor(float64(h6)))
	f := h6 - float32(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	u := v * (1 - s*(1-f))
	var r, g, b float32
	switch i {
	case 0:
		r, g, b = v, u, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, u
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = u, p, v
	default:
		r, g, b = v, p, q
	}
	byteOf := func(x float32) uint32 { return uint32(x*255 + 0.5) }
	return byteOf(r)<<16 | byteOf(g)<<8 | byteOf(b)
}

// Glyph metrics of the simulated monospace font.
const (
	GlyphWidth  = 9
	GlyphHeight = 16
)

func (t *Toolkit) MeasureStringWidth(text []byte) int {
	t.record("MeasureStringWidth", 0, 0)
	return len(text) * GlyphWidth
}

func (t *Toolkit) MeasureStringHeight() int {
	t.record("MeasureStringHeight", 0, 0)
	return GlyphHeight
}

// AnimateClock advances by one millisecond per call.
func (t *Toolkit) AnimateClock() uint64 {
	t.record("AnimateClock", 0, 0)
	t.clock++
	return t.clock
}

// KeycodeLetter returns the X11 keysym of an upper-case letter.
func (t *Toolkit) KeycodeLetter(letter byte) int {
	t.record("KeycodeLetter", 0, 0)
	return int(strings.ToLower(string(letter))[0])
}

// Click fires the invoke trampoline of a button, as a user click would. It reports
// whether a handler was attached.
func (t *Toolkit) Click(button native.Handle) bool {
	e := t.peek(button)
	if e == nil || e.Destroyed || e.Invoke == 0 || t.dispatcher == nil {
		return false
	}
	t.dispatcher.DispatchInvoke(e.Invoke)
	return true
}

// FireShortcut triggers the i-th shortcut registered on window.
func (t *Toolkit) FireShortcut(window native.Handle, i int) bool {
	e := t.peek(window)
	if e == nil || e.Destroyed || i < 0 || i >= len(e.Shortcuts) || t.dispatcher == nil {
		return false
	}
	t.dispatcher.DispatchInvoke(e.Shortcuts[i].Context)
	return true
}

// ChooseMenuItem picks the i-th item of a shown menu. The toolkit then destroys the
// menu.
func (t *Toolkit) ChooseMenuItem(menu native.Handle, i int) bool {
	e := t.peek(menu)
	if e == nil || e.Destroyed || !e.Shown || i < 0 || i >= len(e.Items) || t.dispatcher == nil {
		return false
	}
	cp := e.Items[i].Context
	t.markDestroyed(e)
	t.dispatcher.DispatchInvoke(cp)
	return true
}

// CloseNatively destroys the subtree rooted at h the way a user closing an MDI child
// or window would: without the wrappers asking. Every element of the subtree is then
// reported to the dispatcher, children first. The subtree is marked destroyed before
// the reports, so a native call made from DispatchDestroyed shows up in Violations.
func (t *Toolkit) CloseNatively(h native.Handle) bool {
	e := t.peek(h)
	if e == nil || e.Destroyed {
		return false
	}
	t.markDestroyed(e)
	if t.dispatcher != nil {
		t.reportDestroyed(h)
	}
	return true
}

func (t *Toolkit) reportDestroyed(h native.Handle) {
	if e := t.elements[h]; e != nil {
		for _, c := range e.Children {
			t.reportDestroyed(c)
		}
	}
	t.dispatcher.DispatchDestroyed(h)
}

// RequestItem asks the table handler for a cell, truncating the answer to
// TableBufferSize bytes. It reports false when no handler is attached.
func (t *Toolkit) RequestItem(table native.Handle, req native.TableItemRequest) (string, bool) {
	e := t.peek(table)
	if e == nil || e.Destroyed || e.Handler == 0 || t.dispatcher == nil {
		return "", false
	}
	text := t.dispatcher.DispatchTableItem(e.Handler, req)
	if len(text) > TableBufferSize {
		text = text[:TableBufferSize]
	}
	return text, true
}

// LabelText returns the current text of a label.
func (t *Toolkit) LabelText(label native.Handle) string {
	if e := t.elements[label]; e != nil {
		return string(e.Text)
	}
	return ""
}

// SetCheck simulates the user toggling a checkbox.
func (t *Toolkit) SetCheck(checkbox native.Handle, state uint8) {
	t.use("SetCheck", checkbox).Check = state
}

// Type sets the text of a textbox as if typed.
func (t *Toolkit) Type(textbox native.Handle, text string) {
	t.use("Type", textbox).Text = []byte(text)
}
