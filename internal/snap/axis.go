// internal/snap/axis.go
package snap

import (
	"fmt"
	"strings"
)

// Axis identifies one of the two scroll axes.
type Axis int

const (
	// AxisX is the horizontal (inline) axis.
	AxisX Axis = iota
	// AxisY is the vertical (block) axis.
	AxisY
)

// Axes lists both axes in the order the collector visits them.
var Axes = [2]Axis{AxisX, AxisY}

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Orthogonal returns the other axis.
func (a Axis) Orthogonal() Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}

// Sign is the direction of travel along an axis.
type Sign int

const (
	Negative Sign = -1
	Positive Sign = 1
)

// Direction is a requested navigation direction. Only the four constants
// below are meaningful; Axis and Sign read anything else as Left. Use
// ParseDirection for user input.
type Direction string

const (
	Left  Direction = "left"
	Right Direction = "right"
	Up    Direction = "up"
	Down  Direction = "down"
)

// ParseDirection converts user input (case-insensitive) into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case Left, Right, Up, Down:
		return d, nil
	default:
		return "", fmt.Errorf("unknown scroll direction %q (want left, right, up or down)", s)
	}
}

// Valid reports whether d is one of Left, Right, Up or Down.
func (d Direction) Valid() bool {
	switch d {
	case Left, Right, Up, Down:
		return true
	}
	return false
}

// Axis returns the axis the direction travels along.
func (d Direction) Axis() Axis {
	if d == Up || d == Down {
		return AxisY
	}
	return AxisX
}

// Sign returns Positive for right/down and Negative for left/up.
func (d Direction) Sign() Sign {
	if d == Right || d == Down {
		return Positive
	}
	return Negative
}

// axisDescriptor pulls the per-axis values out of host geometry so the
// collector, resolver and navigator never branch on property names.
type axisDescriptor struct {
	axis Axis

	start       func(Rect) float64
	end         func(Rect) float64
	extent      func(Rect) float64
	scrollStart func(ScrollMetrics) float64
	maxScroll   func(ScrollMetrics) float64
	padding     func(Padding) EdgePair
}

var descriptors = [2]axisDescriptor{
	AxisX: {
		axis:        AxisX,
		start:       func(r Rect) float64 { return r.Left },
		end:         func(r Rect) float64 { return r.Right },
		extent:      func(r Rect) float64 { return r.Width() },
		scrollStart: func(m ScrollMetrics) float64 { return m.ScrollLeft },
		maxScroll:   func(m ScrollMetrics) float64 { return m.ScrollWidth - m.OffsetWidth },
		padding:     func(p Padding) EdgePair { return p.X },
	},
	AxisY: {
		axis:        AxisY,
		start:       func(r Rect) float64 { return r.Top },
		end:         func(r Rect) float64 { return r.Bottom },
		extent:      func(r Rect) float64 { return r.Height() },
		scrollStart: func(m ScrollMetrics) float64 { return m.ScrollTop },
		maxScroll:   func(m ScrollMetrics) float64 { return m.ScrollHeight - m.OffsetHeight },
		padding:     func(p Padding) EdgePair { return p.Y },
	},
}

func descriptorFor(a Axis) axisDescriptor {
	return descriptors[a]
}

// intersects reports whether a and b overlap along the descriptor's axis.
// Touching edges count as intersecting.
func (d axisDescriptor) intersects(a, b Rect) bool {
	return d.end(a) >= d.start(b) && d.start(a) <= d.end(b)
}

// MaxScroll returns scrollable extent minus visible extent for the axis. It
// may be negative for elements whose content fits.
func MaxScroll(m ScrollMetrics, a Axis) float64 {
	return descriptorFor(a).maxScroll(m)
}
