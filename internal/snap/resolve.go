// internal/snap/resolve.go
package snap

import "math"

// Offsets holds the candidate scroll offsets per axis.
type Offsets struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// Axis returns the candidates for a.
func (o Offsets) Axis(a Axis) []float64 {
	if a == AxisY {
		return o.Y
	}
	return o.X
}

// GetScrollSnapPositions returns the scroll offsets at which el's
// descendants are snapped, per axis. Every value lies in [0, maxScroll] and
// no value repeats. Order is start, center, then end candidates, each in
// document order, with later duplicates removed.
func GetScrollSnapPositions(el Element) Offsets {
	return resolveOffsets(el, true)
}

func resolveOffsets(el Element, excludeOffAxis bool) Offsets {
	rect := el.BoundingRect()
	metrics := el.Metrics()
	padding := GetScrollPadding(el)
	positions := GetSnapPositions(el, excludeOffAxis)

	var out Offsets
	for _, axis := range Axes {
		d := descriptorFor(axis)
		candidates := resolveAxis(*positions.Axis(axis), d.extent(rect), d.padding(padding), d.maxScroll(metrics))
		if axis == AxisY {
			out.Y = candidates
		} else {
			out.X = candidates
		}
	}
	return out
}

// resolveAxis turns raw coordinates for one axis into clamped, unique
// scroll offsets.
func resolveAxis(list SnapPositionList, visible float64, pad EdgePair, maxScroll float64) []float64 {
	out := make([]float64, 0, list.Len())
	for _, align := range snapAlignments {
		for _, v := range list.bucket(align) {
			var offset float64
			switch align {
			case AlignStart:
				offset = v - pad.Before
			case AlignCenter:
				offset = v - visible/2
			case AlignEnd:
				offset = v - visible + pad.After
			}
			out = append(out, clamp(offset, 0, maxScroll))
		}
	}
	return unique(out)
}

// clamp mirrors max(lo, min(hi, v)), including its NaN propagation.
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// unique drops exact duplicates, keeping the first occurrence. NaN values
// are treated as equal to each other, matching set semantics in the host.
func unique(values []float64) []float64 {
	seen := make(map[float64]struct{}, len(values))
	sawNaN := false
	out := values[:0]
	for _, v := range values {
		if math.IsNaN(v) {
			if sawNaN {
				continue
			}
			sawNaN = true
			out = append(out, v)
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
