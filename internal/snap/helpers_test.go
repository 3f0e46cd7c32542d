// internal/snap/helpers_test.go
package snap

import (
	"context"
	"fmt"
)

// fakeElement is an in-memory Element. Rects are stored in page space at
// zero scroll and shifted by the scroll offsets of its ancestors on read.
type fakeElement struct {
	parent   *fakeElement
	style    map[string]string
	page     Rect
	metrics  ScrollMetrics
	children []*fakeElement

	scrolls   []ScrollOptions
	scrollErr error
}

// newFake builds an element whose scroll padding defaults to 0px, as a
// host's computed style would report it.
func newFake(x, y, w, h float64, style map[string]string) *fakeElement {
	merged := map[string]string{
		PropScrollPaddingLeft:   "0px",
		PropScrollPaddingTop:    "0px",
		PropScrollPaddingRight:  "0px",
		PropScrollPaddingBottom: "0px",
	}
	for k, v := range style {
		merged[k] = v
	}
	style = merged
	return &fakeElement{style: style, page: RectFromXYWH(x, y, w, h)}
}

func (f *fakeElement) add(children ...*fakeElement) *fakeElement {
	for _, c := range children {
		c.parent = f
		f.children = append(f.children, c)
	}
	return f
}

func (f *fakeElement) ComputedStyle(property string) string { return f.style[property] }

func (f *fakeElement) BoundingRect() Rect {
	r := f.page
	for p := f.parent; p != nil; p = p.parent {
		r.Left -= p.metrics.ScrollLeft
		r.Right -= p.metrics.ScrollLeft
		r.Top -= p.metrics.ScrollTop
		r.Bottom -= p.metrics.ScrollTop
	}
	return r
}

func (f *fakeElement) Metrics() ScrollMetrics { return f.metrics }

func (f *fakeElement) Children() []Element {
	out := make([]Element, len(f.children))
	for i, c := range f.children {
		out[i] = c
	}
	return out
}

func (f *fakeElement) ScrollTo(_ context.Context, opts ScrollOptions) error {
	f.scrolls = append(f.scrolls, opts)
	return f.scrollErr
}

func align(v string) map[string]string {
	return map[string]string{PropScrollSnapAlign: v}
}

// carousel builds a 100x100 horizontal scroller whose children are 100px
// wide, start-aligned and placed at the given container-relative offsets.
// Content is 450px wide, so maxScroll is 350.
func carousel(scrollLeft float64, starts ...float64) *fakeElement {
	c := newFake(0, 0, 100, 100, nil)
	c.metrics = ScrollMetrics{
		ScrollWidth: 450, ScrollHeight: 100,
		OffsetWidth: 100, OffsetHeight: 100,
		ScrollLeft: scrollLeft,
	}
	for _, s := range starts {
		c.add(newFake(s, 0, 100, 100, align("start")))
	}
	return c
}

func (f *fakeElement) String() string {
	return fmt.Sprintf("fake%v", f.page)
}
