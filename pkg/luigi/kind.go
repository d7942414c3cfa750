package luigi

// Kind names a widget type.
type Kind uint8

const (
	KindWindow Kind = iota + 1
	KindPanel
	KindLabel
	KindButton
	KindTable
	KindTextbox
	KindCheckbox
	KindCode
	KindGauge
	KindSlider
	KindMDIClient
	KindMDIChild
	KindMenu
	KindColorPicker
	KindImageDisplay
)

var kindNames = map[Kind]string{
	KindWindow:       "window",
	KindPanel:        "panel",
	KindLabel:        "label",
	KindButton:       "button",
	KindTable:        "table",
	KindTextbox:      "textbox",
	KindCheckbox:     "checkbox",
	KindCode:         "code",
	KindGauge:        "gauge",
	KindSlider:       "slider",
	KindMDIClient:    "mdi-client",
	KindMDIChild:     "mdi-child",
	KindMenu:         "menu",
	KindColorPicker:  "color-picker",
	KindImageDisplay: "image-display",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}
