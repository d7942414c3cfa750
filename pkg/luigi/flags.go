package luigi

// Flags are creation flags. Element-wide flags and widget-specific flags share one
// 32-bit space; the values mirror luigi.h.
type Flags uint32

// Element flags, valid for every widget.
const (
	FillVertical   Flags = 1 << 16
	FillHorizontal Flags = 1 << 17
	ParentPush     Flags = 1 << 19
	TabStop        Flags = 1 << 20
	Disabled       Flags = 1 << 22
	Border         Flags = 1 << 23

	Fill = FillVertical | FillHorizontal
)

const (
	WindowMenu          Flags = 1 << 0
	WindowInspector     Flags = 1 << 1
	WindowCenterInOwner Flags = 1 << 2
	WindowMaximize      Flags = 1 << 3
)

const (
	PanelHorizontal    Flags = 1 << 0
	PanelGray          Flags = 1 << 2
	PanelWhite         Flags = 1 << 3
	PanelExpand        Flags = 1 << 4
	PanelMediumSpacing Flags = 1 << 5
	PanelSmallSpacing  Flags = 1 << 6
	PanelScroll        Flags = 1 << 7
	PanelBorder        Flags = 1 << 8
)

const (
	ButtonSmall    Flags = 1 << 0
	ButtonMenuItem Flags = 1 << 1
	ButtonCanFocus Flags = 1 << 2
	ButtonDropDown Flags = 1 << 3
	ButtonChecked  Flags = 1 << 15
)

const (
	AlignLeft   Flags = 1
	AlignRight  Flags = 2
	AlignCenter Flags = 3
)

const (
	TextboxHideCharacters      Flags = 1 << 0
	CodeNoMargin               Flags = 1 << 0
	CheckboxAllowIndeterminate Flags = 1 << 0
	GaugeVertical              Flags = 1 << 0
	SliderVertical             Flags = 1 << 0
	MenuPlaceAbove             Flags = 1 << 0
	MenuNoScroll               Flags = 1 << 1
	MDIChildCloseButton        Flags = 1 << 0
	ColorPickerHasOpacity      Flags = 1 << 0
	ImageDisplayInteractive    Flags = 1 << 0
	ImageDisplayZoomFit        Flags = 1 << 1
)
