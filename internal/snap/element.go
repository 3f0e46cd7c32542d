// internal/snap/element.go
package snap

import "context"

// Computed style properties read by the pipeline.
const (
	PropScrollSnapAlign     = "scroll-snap-align"
	PropScrollPaddingLeft   = "scroll-padding-left"
	PropScrollPaddingTop    = "scroll-padding-top"
	PropScrollPaddingRight  = "scroll-padding-right"
	PropScrollPaddingBottom = "scroll-padding-bottom"
)

// Rect is an element's border box in a coordinate space shared by the
// container and all of its descendants (viewport-relative in browsers).
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// RectFromXYWH builds a Rect from an origin and a size.
func RectFromXYWH(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// ScrollMetrics mirrors scrollWidth/scrollHeight, offsetWidth/offsetHeight
// and scrollLeft/scrollTop of a host element.
type ScrollMetrics struct {
	ScrollWidth  float64 `json:"scrollWidth"`
	ScrollHeight float64 `json:"scrollHeight"`
	OffsetWidth  float64 `json:"offsetWidth"`
	OffsetHeight float64 `json:"offsetHeight"`
	ScrollLeft   float64 `json:"scrollLeft"`
	ScrollTop    float64 `json:"scrollTop"`
}

// Element is the read-only view of host layout the pipeline consumes.
// Implementations are expected to answer from an already captured layout
// state; none of these calls should block.
type Element interface {
	// ComputedStyle returns the resolved value of a CSS property, or "" if
	// the host does not know it.
	ComputedStyle(property string) string
	BoundingRect() Rect
	Metrics() ScrollMetrics
	// Children returns direct element children in document order.
	Children() []Element
}

// ScrollableElement is an Element that can be told to scroll.
type ScrollableElement interface {
	Element
	// ScrollTo starts a scroll toward opts. The motion may still be running
	// when ScrollTo returns; callers must not assume it has completed.
	ScrollTo(ctx context.Context, opts ScrollOptions) error
}

// Behavior is the scroll behavior hint passed to the host.
type Behavior string

const (
	BehaviorAuto    Behavior = "auto"
	BehaviorSmooth  Behavior = "smooth"
	BehaviorInstant Behavior = "instant"
)

// ScrollOptions corresponds to the host's ScrollToOptions. Nil offsets are
// left untouched by the host.
type ScrollOptions struct {
	Left     *float64 `json:"left,omitempty"`
	Top      *float64 `json:"top,omitempty"`
	Behavior Behavior `json:"behavior,omitempty"`
}

// DefaultScrollOptions is used when a caller supplies no options.
func DefaultScrollOptions() ScrollOptions {
	return ScrollOptions{Behavior: BehaviorSmooth}
}

// Descendants returns every element below root in pre-order document order.
func Descendants(root Element) []Element {
	var out []Element
	var walk func(Element)
	walk = func(e Element) {
		for _, child := range e.Children() {
			out = append(out, child)
			walk(child)
		}
	}
	walk(root)
	return out
}
