package luigi

import "github.com/bnema/goluigi/pkg/luigi/native"

// Rectangle is an edge-based rectangle: left, right, top, bottom.
type Rectangle struct {
	L, R, T, B int
}

// Rect builds a Rectangle from its edges.
func Rect(l, r, t, b int) Rectangle {
	return Rectangle{L: l, R: r, T: t, B: b}
}

// Add adds o edge by edge, the way the toolkit offsets and insets rectangles.
func (a Rectangle) Add(o Rectangle) Rectangle {
	return Rectangle{L: a.L + o.L, R: a.R + o.R, T: a.T + o.T, B: a.B + o.B}
}

// Intersection returns the overlap of a and o. The result is empty (Valid reports
// false) when they do not overlap.
func (a Rectangle) Intersection(o Rectangle) Rectangle {
	return Rectangle{L: max(a.L, o.L), R: min(a.R, o.R), T: max(a.T, o.T), B: min(a.B, o.B)}
}

// Width returns R-L.
func (a Rectangle) Width() int { return a.R - a.L }

// Height returns B-T.
func (a Rectangle) Height() int { return a.B - a.T }

// Valid reports whether the rectangle has a positive area.
func (a Rectangle) Valid() bool { return a.R > a.L && a.B > a.T }

func (a Rectangle) native() native.Rect {
	return native.Rect{L: cInt(a.L), R: cInt(a.R), T: cInt(a.T), B: cInt(a.B)}
}
