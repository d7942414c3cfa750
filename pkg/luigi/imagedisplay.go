package luigi

import "math"

const maxImageWidth = math.MaxInt32 / 4

// ImageDisplay shows a 32-bit ARGB bitmap.
type ImageDisplay struct {
	element
}

// NewImageDisplay creates an image display inside parent showing bits, a row-major
// width*height pixel buffer.
func NewImageDisplay(parent Element, flags Flags, bits []uint32, width, height int) (*ImageDisplay, error) {
	p, err := parentNode(parent)
	if err != nil {
		return nil, err
	}
	if err := checkImage(bits, width, height); err != nil {
		return nil, err
	}
	h := p.toolkit().ImageDisplayCreate(p.handle, uint32(flags), bits, width, height, width*4)
	n, err := p.env.adopt(p, KindImageDisplay, h)
	if err != nil {
		return nil, err
	}
	return &ImageDisplay{element{n}}, nil
}

// SetContent replaces the displayed bitmap. The toolkit copies the pixels.
func (d *ImageDisplay) SetContent(bits []uint32, width, height int) error {
	if err := d.n.live(); err != nil {
		return err
	}
	if err := checkImage(bits, width, height); err != nil {
		return err
	}
	d.n.toolkit().ImageDisplaySetContent(d.n.handle, bits, width, height, width*4)
	return nil
}

func checkImage(bits []uint32, width, height int) error {
	// Division keeps width*height from overflowing; the stride is width*4 bytes
	// and must fit a C int too.
	if width <= 0 || height <= 0 || width > maxImageWidth || height > math.MaxInt32 || width > len(bits)/height {
		return ErrInvalidImage
	}
	return nil
}
