package luigi

// ColorToHSV converts a 0xRRGGBB colour. ok is false when the toolkit cannot convert.
func (e *Environment) ColorToHSV(rgb uint32) (h, s, v float32, ok bool) {
	return e.toolkit.ColorToHSV(rgb)
}

// ColorToRGB converts hue, saturation and value in [0, 1] to 0xRRGGBB.
func (e *Environment) ColorToRGB(h, s, v float32) uint32 {
	return e.toolkit.ColorToRGB(unitClamp(h), unitClamp(s), unitClamp(v))
}

// MeasureStringWidth returns the pixel width of text in the active font.
func (e *Environment) MeasureStringWidth(text string) (int, error) {
	if err := e.usable(); err != nil {
		return 0, err
	}
	return e.toolkit.MeasureStringWidth([]byte(text)), nil
}

// MeasureStringHeight returns the line height of the active font.
func (e *Environment) MeasureStringHeight() (int, error) {
	if err := e.usable(); err != nil {
		return 0, err
	}
	return e.toolkit.MeasureStringHeight(), nil
}

// AnimateClock returns the toolkit's animation clock in milliseconds.
func (e *Environment) AnimateClock() uint64 {
	return e.toolkit.AnimateClock()
}

// KeycodeLetter returns the platform keycode of an ASCII letter, for Shortcut.Key.
func (e *Environment) KeycodeLetter(letter rune) int {
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	return e.toolkit.KeycodeLetter(byte(letter))
}
