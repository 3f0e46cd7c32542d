// internal/snap/collect.go
package snap

// SnapPositionList holds raw alignment coordinates for one axis, bucketed by
// alignment. Order follows document order and duplicates are kept.
type SnapPositionList struct {
	Start  []float64 `json:"start"`
	Center []float64 `json:"center"`
	End    []float64 `json:"end"`
}

func (l *SnapPositionList) add(a Alignment, v float64) {
	switch a {
	case AlignStart:
		l.Start = append(l.Start, v)
	case AlignCenter:
		l.Center = append(l.Center, v)
	case AlignEnd:
		l.End = append(l.End, v)
	}
}

// bucket returns the coordinates recorded for alignment a.
func (l SnapPositionList) bucket(a Alignment) []float64 {
	switch a {
	case AlignStart:
		return l.Start
	case AlignCenter:
		return l.Center
	case AlignEnd:
		return l.End
	default:
		return nil
	}
}

// Len is the total number of recorded coordinates.
func (l SnapPositionList) Len() int {
	return len(l.Start) + len(l.Center) + len(l.End)
}

// Positions is the collector output for both axes.
type Positions struct {
	X SnapPositionList `json:"x"`
	Y SnapPositionList `json:"y"`
}

// Axis returns the list for a.
func (p *Positions) Axis(a Axis) *SnapPositionList {
	if a == AxisY {
		return &p.Y
	}
	return &p.X
}

// GetSnapPositions walks every descendant of container and records the raw
// snap coordinate of each aligned descendant per axis. Coordinates are
// measured from the container's scroll origin: the bounding-box delta plus
// the container's current scroll offset, so the result does not depend on
// where the container is scrolled to.
//
// With excludeOffAxis set, a descendant is ignored for an axis when it does
// not overlap the container along the other axis, since it can never come
// into view by scrolling that axis.
func GetSnapPositions(container Element, excludeOffAxis bool) Positions {
	var positions Positions

	parentRect := container.BoundingRect()
	metrics := container.Metrics()
	descendants := Descendants(container)

	// Style and geometry are read once per descendant, then reused per axis.
	type measured struct {
		rect  Rect
		align AlignPair
	}
	items := make([]measured, len(descendants))
	for i, child := range descendants {
		items[i] = measured{
			rect:  child.BoundingRect(),
			align: ParseSnapAlign(child.ComputedStyle(PropScrollSnapAlign)),
		}
	}

	for _, axis := range Axes {
		d := descriptorFor(axis)
		ortho := descriptorFor(axis.Orthogonal())
		list := positions.Axis(axis)

		for _, item := range items {
			if excludeOffAxis && !ortho.intersects(parentRect, item.rect) {
				continue
			}
			align := item.align.For(axis)
			if align == AlignNone {
				continue
			}

			offsetStart := d.start(item.rect) - d.start(parentRect) + d.scrollStart(metrics)
			switch align {
			case AlignStart:
				list.add(align, offsetStart)
			case AlignCenter:
				list.add(align, offsetStart+d.extent(item.rect)/2)
			case AlignEnd:
				list.add(align, offsetStart+d.extent(item.rect))
			}
		}
	}

	return positions
}
