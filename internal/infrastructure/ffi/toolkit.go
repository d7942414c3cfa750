package ffi

import (
	"math"
	"unsafe"

	"github.com/bnema/goluigi/pkg/luigi/native"
)

// Toolkit implements native.Toolkit on top of the loaded shared library.
type Toolkit struct {
	path string
}

var _ native.Toolkit = (*Toolkit)(nil)

// initialised tracks the process-global native setup.
var initialised bool

// Path returns the library the toolkit was loaded from.
func (t *Toolkit) Path() string { return t.path }

func (t *Toolkit) Bind(d native.Dispatcher) {
	dispatcher = d
}

func (t *Toolkit) Initialise() error {
	if initialised {
		return native.ErrAlreadyInitialised
	}
	fnSetDestroyHandler(destroyHook())
	fnInitialise()
	initialised = true
	return nil
}

func (t *Toolkit) FontActivate(name string, size int) bool {
	return fnFontActivate(name, uint32(size)) != 0
}

func (t *Toolkit) MessageLoop() int {
	return int(fnMessageLoop())
}

func (t *Toolkit) WindowCreate(owner native.Handle, flags uint32, title string, width, height int) native.Handle {
	return native.Handle(fnWindowCreate(uintptr(owner), flags, title, int32(width), int32(height)))
}

func (t *Toolkit) WindowRegisterShortcut(window native.Handle, spec native.ShortcutSpec, cp native.Context) {
	invoke, _ := trampolines()
	fnWindowRegisterShortcut(uintptr(window), uintptr(spec.Code),
		cbool(spec.Ctrl), cbool(spec.Shift), cbool(spec.Alt), invoke, uintptr(cp))
}

func (t *Toolkit) PanelCreate(parent native.Handle, flags uint32) native.Handle {
	return native.Handle(fnPanelCreate(uintptr(parent), flags))
}

func (t *Toolkit) LabelCreate(parent native.Handle, flags uint32, text []byte) native.Handle {
	return native.Handle(fnLabelCreate(uintptr(parent), flags, unsafe.SliceData(text), len(text)))
}

func (t *Toolkit) LabelSetContent(label native.Handle, text []byte) {
	fnLabelSetContent(uintptr(label), unsafe.SliceData(text), len(text))
}

func (t *Toolkit) ButtonCreate(parent native.Handle, flags uint32, label []byte) native.Handle {
	return native.Handle(fnButtonCreate(uintptr(parent), flags, unsafe.SliceData(label), len(label)))
}

func (t *Toolkit) ButtonSetInvoke(button native.Handle, cp native.Context) {
	var invoke uintptr
	if cp != 0 {
		invoke, _ = trampolines()
	}
	fnButtonSetInvoke(uintptr(button), invoke, uintptr(cp))
}

func (t *Toolkit) TableCreate(parent native.Handle, flags uint32, columns string) native.Handle {
	return native.Handle(fnTableCreate(uintptr(parent), flags, columns))
}

func (t *Toolkit) TableSetItemCount(table native.Handle, count int) {
	fnTableSetItemCount(uintptr(table), int32(count))
}

func (t *Toolkit) TableResizeColumns(table native.Handle) {
	fnTableResizeColumns(uintptr(table))
}

func (t *Toolkit) TableSetHandler(table native.Handle, cp native.Context) {
	var handler uintptr
	if cp != 0 {
		_, handler = trampolines()
	}
	fnTableSetHandler(uintptr(table), handler, uintptr(cp))
}

func (t *Toolkit) TextboxCreate(parent native.Handle, flags uint32) native.Handle {
	return native.Handle(fnTextboxCreate(uintptr(parent), flags))
}

func (t *Toolkit) TextboxText(textbox native.Handle) []byte {
	var n int
	ptr := fnTextboxText(uintptr(textbox), &n)
	if ptr == 0 || n <= 0 {
		return nil
	}
	// Copy out: the toolkit reallocates its buffer on every edit.
	return append([]byte(nil), unsafe.Slice((*byte)(unsafe.Pointer(ptr)), n)...)
}

func (t *Toolkit) TextboxReplace(textbox native.Handle, text []byte, sendChanged bool) {
	fnTextboxReplace(uintptr(textbox), unsafe.SliceData(text), len(text), cbool(sendChanged))
}

func (t *Toolkit) TextboxClear(textbox native.Handle, sendChanged bool) {
	fnTextboxClear(uintptr(textbox), cbool(sendChanged))
}

func (t *Toolkit) CheckboxCreate(parent native.Handle, flags uint32, label []byte) native.Handle {
	return native.Handle(fnCheckboxCreate(uintptr(parent), flags, unsafe.SliceData(label), len(label)))
}

func (t *Toolkit) CheckboxState(checkbox native.Handle) uint8 {
	return uint8(fnCheckboxState(uintptr(checkbox)))
}

func (t *Toolkit) CodeCreate(parent native.Handle, flags uint32) native.Handle {
	return native.Handle(fnCodeCreate(uintptr(parent), flags))
}

func (t *Toolkit) CodeInsertContent(code native.Handle, content []byte, replace bool) {
	fnCodeInsertContent(uintptr(code), unsafe.SliceData(content), len(content), cbool(replace))
}

func (t *Toolkit) CodeFocusLine(code native.Handle, line int) {
	fnCodeFocusLine(uintptr(code), int32(line))
}

func (t *Toolkit) GaugeCreate(parent native.Handle, flags uint32) native.Handle {
	return native.Handle(fnGaugeCreate(uintptr(parent), flags))
}

func (t *Toolkit) GaugeSetPosition(gauge native.Handle, position float32) {
	fnGaugeSetPosition(uintptr(gauge), math.Float32bits(position))
}

func (t *Toolkit) SliderCreate(parent native.Handle, flags uint32) native.Handle {
	return native.Handle(fnSliderCreate(uintptr(parent), flags))
}

func (t *Toolkit) SliderSetPosition(slider native.Handle, position float32) {
	fnSliderSetPosition(uintptr(slider), math.Float32bits(position))
}

func (t *Toolkit) SliderSetSteps(slider native.Handle, steps int) {
	fnSliderSetSteps(uintptr(slider), int32(steps))
}

func (t *Toolkit) MDIClientCreate(parent native.Handle, flags uint32) native.Handle {
	return native.Handle(fnMDIClientCreate(uintptr(parent), flags))
}

func (t *Toolkit) MDIChildCreate(parent native.Handle, flags uint32, bounds native.Rect, title []byte) native.Handle {
	return native.Handle(fnMDIChildCreate(uintptr(parent), flags,
		bounds.L, bounds.R, bounds.T, bounds.B, unsafe.SliceData(title), len(title)))
}

func (t *Toolkit) MenuCreate(parent native.Handle, flags uint32) native.Handle {
	return native.Handle(fnMenuCreate(uintptr(parent), flags))
}

func (t *Toolkit) MenuAddItem(menu native.Handle, flags uint32, label []byte, cp native.Context) {
	invoke, _ := trampolines()
	fnMenuAddItem(uintptr(menu), flags, unsafe.SliceData(label), len(label), invoke, uintptr(cp))
}

func (t *Toolkit) MenuShow(menu native.Handle) {
	fnMenuShow(uintptr(menu))
}

func (t *Toolkit) ColorPickerCreate(parent native.Handle, flags uint32) native.Handle {
	return native.Handle(fnColorPickerCreate(uintptr(parent), flags))
}

func (t *Toolkit) ColorPickerColor(picker native.Handle) (h, s, v, a float32) {
	var out [4]uint32
	fnColorPickerGet(uintptr(picker), &out)
	return math.Float32frombits(out[0]), math.Float32frombits(out[1]),
		math.Float32frombits(out[2]), math.Float32frombits(out[3])
}

func (t *Toolkit) ColorPickerSetColor(picker native.Handle, h, s, v, a float32) {
	fnColorPickerSet(uintptr(picker),
		math.Float32bits(h), math.Float32bits(s), math.Float32bits(v), math.Float32bits(a))
}

func (t *Toolkit) ImageDisplayCreate(parent native.Handle, flags uint32, bits []uint32, width, height, stride int) native.Handle {
	return native.Handle(fnImageDisplayCreate(uintptr(parent), flags, unsafe.SliceData(bits),
		uintptr(width), uintptr(height), uintptr(stride)))
}

func (t *Toolkit) ImageDisplaySetContent(display native.Handle, bits []uint32, width, height, stride int) {
	fnImageDisplaySetContent(uintptr(display), unsafe.SliceData(bits),
		uintptr(width), uintptr(height), uintptr(stride))
}

func (t *Toolkit) ElementDestroy(element native.Handle) {
	fnElementDestroy(uintptr(element))
}

func (t *Toolkit) ElementRefresh(element native.Handle) {
	fnElementRefresh(uintptr(element))
}

func (t *Toolkit) ColorToHSV(rgb uint32) (h, s, v float32, ok bool) {
	var out [3]uint32
	if fnColorToHSV(rgb, &out) == 0 {
		return 0, 0, 0, false
	}
	return math.Float32frombits(out[0]), math.Float32frombits(out[1]), math.Float32frombits(out[2]), true
}

func (t *Toolkit) ColorToRGB(h, s, v float32) uint32 {
	return fnColorToRGB(math.Float32bits(h), math.Float32bits(s), math.Float32bits(v))
}

func (t *Toolkit) MeasureStringWidth(text []byte) int {
	return int(fnMeasureStringWidth(unsafe.SliceData(text), len(text)))
}

func (t *Toolkit) MeasureStringHeight() int {
	return int(fnMeasureStringHeight())
}

func (t *Toolkit) AnimateClock() uint64 {
	return fnAnimateClock()
}

func (t *Toolkit) KeycodeLetter(letter byte) int {
	return int(fnKeycodeLetter(int32(letter)))
}

func cbool(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
