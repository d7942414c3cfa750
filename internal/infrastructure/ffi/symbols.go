package ffi

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// Native entry points exported by luigi_shim.c. Pointers travel as uintptr, floats
// as IEEE-754 bit patterns and booleans as int32 so every signature is callable on
// both backends.
var (
	fnSetDestroyHandler func(fn uintptr)
	fnInitialise        func()
	fnFontActivate      func(name string, size uint32) int32
	fnMessageLoop       func() int32

	fnWindowCreate           func(owner uintptr, flags uint32, title string, width, height int32) uintptr
	fnWindowRegisterShortcut func(window uintptr, code uintptr, ctrl, shift, alt int32, invoke, cp uintptr)

	fnPanelCreate func(parent uintptr, flags uint32) uintptr

	fnLabelCreate     func(parent uintptr, flags uint32, text *byte, bytes int) uintptr
	fnLabelSetContent func(label uintptr, text *byte, bytes int)

	fnButtonCreate    func(parent uintptr, flags uint32, label *byte, bytes int) uintptr
	fnButtonSetInvoke func(button uintptr, invoke, cp uintptr)

	fnTableCreate        func(parent uintptr, flags uint32, columns string) uintptr
	fnTableSetItemCount  func(table uintptr, count int32)
	fnTableResizeColumns func(table uintptr)
	fnTableSetHandler    func(table uintptr, handler, cp uintptr)

	fnTextboxCreate  func(parent uintptr, flags uint32) uintptr
	fnTextboxText    func(textbox uintptr, bytes *int) uintptr
	fnTextboxReplace func(textbox uintptr, text *byte, bytes int, sendChanged int32)
	fnTextboxClear   func(textbox uintptr, sendChanged int32)

	fnCheckboxCreate func(parent uintptr, flags uint32, label *byte, bytes int) uintptr
	fnCheckboxState  func(checkbox uintptr) int32

	fnCodeCreate        func(parent uintptr, flags uint32) uintptr
	fnCodeInsertContent func(code uintptr, content *byte, bytes int, replace int32)
	fnCodeFocusLine     func(code uintptr, line int32)

	fnGaugeCreate      func(parent uintptr, flags uint32) uintptr
	fnGaugeSetPosition func(gauge uintptr, position uint32)

	fnSliderCreate      func(parent uintptr, flags uint32) uintptr
	fnSliderSetPosition func(slider uintptr, position uint32)
	fnSliderSetSteps    func(slider uintptr, steps int32)

	fnMDIClientCreate func(parent uintptr, flags uint32) uintptr
	fnMDIChildCreate  func(parent uintptr, flags uint32, l, r, t, b int32, title *byte, bytes int) uintptr

	fnMenuCreate  func(parent uintptr, flags uint32) uintptr
	fnMenuAddItem func(menu uintptr, flags uint32, label *byte, bytes int, invoke, cp uintptr)
	fnMenuShow    func(menu uintptr)

	fnColorPickerCreate func(parent uintptr, flags uint32) uintptr
	fnColorPickerGet    func(picker uintptr, out *[4]uint32)
	fnColorPickerSet    func(picker uintptr, h, s, v, a uint32)

	fnImageDisplayCreate     func(parent uintptr, flags uint32, bits *uint32, width, height, stride uintptr) uintptr
	fnImageDisplaySetContent func(display uintptr, bits *uint32, width, height, stride uintptr)

	fnElementDestroy func(element uintptr)
	fnElementRefresh func(element uintptr)

	fnColorToHSV          func(rgb uint32, out *[3]uint32) int32
	fnColorToRGB          func(h, s, v uint32) uint32
	fnMeasureStringWidth  func(text *byte, bytes int) int32
	fnMeasureStringHeight func() int32
	fnAnimateClock        func() uint64
	fnKeycodeLetter       func(letter int32) int32
)

type symbol struct {
	name string
	fptr any
}

var symbols = []symbol{
	{"luigi_set_destroy_handler", &fnSetDestroyHandler},
	{"luigi_initialise", &fnInitialise},
	{"luigi_font_activate", &fnFontActivate},
	{"luigi_message_loop", &fnMessageLoop},
	{"luigi_window_create", &fnWindowCreate},
	{"luigi_window_register_shortcut", &fnWindowRegisterShortcut},
	{"luigi_panel_create", &fnPanelCreate},
	{"luigi_label_create", &fnLabelCreate},
	{"luigi_label_set_content", &fnLabelSetContent},
	{"luigi_button_create", &fnButtonCreate},
	{"luigi_button_set_invoke", &fnButtonSetInvoke},
	{"luigi_table_create", &fnTableCreate},
	{"luigi_table_set_item_count", &fnTableSetItemCount},
	{"luigi_table_resize_columns", &fnTableResizeColumns},
	{"luigi_table_set_handler", &fnTableSetHandler},
	{"luigi_textbox_create", &fnTextboxCreate},
	{"luigi_textbox_text", &fnTextboxText},
	{"luigi_textbox_replace", &fnTextboxReplace},
	{"luigi_textbox_clear", &fnTextboxClear},
	{"luigi_checkbox_create", &fnCheckboxCreate},
	{"luigi_checkbox_state", &fnCheckboxState},
	{"luigi_code_create", &fnCodeCreate},
	{"luigi_code_insert_content", &fnCodeInsertContent},
	{"luigi_code_focus_line", &fnCodeFocusLine},
	{"luigi_gauge_create", &fnGaugeCreate},
	{"luigi_gauge_set_position", &fnGaugeSetPosition},
	{"luigi_slider_create", &fnSliderCreate},
	{"luigi_slider_set_position", &fnSliderSetPosition},
	{"luigi_slider_set_steps", &fnSliderSetSteps},
	{"luigi_mdi_client_create", &fnMDIClientCreate},
	{"luigi_mdi_child_create", &fnMDIChildCreate},
	{"luigi_menu_create", &fnMenuCreate},
	{"luigi_menu_add_item", &fnMenuAddItem},
	{"luigi_menu_show", &fnMenuShow},
	{"luigi_color_picker_create", &fnColorPickerCreate},
	{"luigi_color_picker_get", &fnColorPickerGet},
	{"luigi_color_picker_set", &fnColorPickerSet},
	{"luigi_image_display_create", &fnImageDisplayCreate},
	{"luigi_image_display_set_content", &fnImageDisplaySetContent},
	{"luigi_element_destroy", &fnElementDestroy},
	{"luigi_element_refresh", &fnElementRefresh},
	{"luigi_color_to_hsv", &fnColorToHSV},
	{"luigi_color_to_rgb", &fnColorToRGB},
	{"luigi_measure_string_width", &fnMeasureStringWidth},
	{"luigi_measure_string_height", &fnMeasureStringHeight},
	{"luigi_animate_clock", &fnAnimateClock},
	{"luigi_keycode_letter", &fnKeycodeLetter},
}

// SymbolNames lists every symbol the backend needs, for diagnostics.
func SymbolNames() []string {
	names := make([]string, len(symbols))
	for i, s := range symbols {
		names[i] = s.name
	}
	return names
}

// bindSymbols resolves every symbol before registering any, so a library missing one
// entry point leaves no half-bound function table behind.
func bindSymbols(lib uintptr) error {
	addrs := make([]uintptr, len(symbols))
	for i, s := range symbols {
		addr, err := lookupSymbol(lib, s.name)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", s.name, err)
		}
		addrs[i] = addr
	}
	for i, s := range symbols {
		purego.RegisterFunc(s.fptr, addrs[i])
	}
	return nil
}
