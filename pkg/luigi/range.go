package luigi

import "math"

// Gauge is a progress bar.
type Gauge struct {
	element
}

// NewGauge creates a gauge inside parent.
func NewGauge(parent Element, flags Flags) (*Gauge, error) {
	p, err := parentNode(parent)
	if err != nil {
		return nil, err
	}
	n, err := p.env.adopt(p, KindGauge, p.toolkit().GaugeCreate(p.handle, uint32(flags)))
	if err != nil {
		return nil, err
	}
	return &Gauge{element{n}}, nil
}

// SetPosition sets the fill ratio, clamped to [0, 1].
func (g *Gauge) SetPosition(position float32) error {
	if err := g.n.live(); err != nil {
		return err
	}
	g.n.toolkit().GaugeSetPosition(g.n.handle, unitClamp(position))
	return nil
}

// Slider is a draggable value in [0, 1], optionally snapped to steps.
type Slider struct {
	element
}

// NewSlider creates a slider inside parent.
func NewSlider(parent Element, flags Flags) (*Slider, error) {
	p, err := parentNode(parent)
	if err != nil {
		return nil, err
	}
	n, err := p.env.adopt(p, KindSlider, p.toolkit().SliderCreate(p.handle, uint32(flags)))
	if err != nil {
		return nil, err
	}
	return &Slider{element{n}}, nil
}

// SetPosition sets the value, clamped to [0, 1].
func (s *Slider) SetPosition(position float32) error {
	if err := s.n.live(); err != nil {
		return err
	}
	s.n.toolkit().SliderSetPosition(s.n.handle, unitClamp(position))
	return nil
}

// SetSteps sets the number of snap steps. Zero or less disables snapping.
func (s *Slider) SetSteps(steps int) error {
	if err := s.n.live(); err != nil {
		return err
	}
	s.n.toolkit().SliderSetSteps(s.n.handle, cCount(steps))
	return nil
}

func unitClamp(v float32) float32 {
	if math.IsNaN(float64(v)) {
		return 0
	}
	return min(max(v, 0), 1)
}
