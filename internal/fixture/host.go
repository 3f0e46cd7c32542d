// internal/fixture/host.go
package fixture

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/xkilldash9x/scrollsnap/internal/browser/parser"
	"github.com/xkilldash9x/scrollsnap/internal/snap"
)

// ErrNotFound is returned when no node matches a selector.
var ErrNotFound = errors.New("no element matches selector")

// Host exposes a Document as a tree of snap elements. Scroll commands are
// applied instantly and recorded so callers can inspect them.
type Host struct {
	logger *zap.Logger
	doc    *Document
	root   *Element
}

// Element is a fixture node bound to its place in the tree.
type Element struct {
	host     *Host
	node     *Node
	parent   *Element
	children []*Element
	style    map[parser.Property]parser.Value

	mu      sync.RWMutex
	left    float64
	top     float64
	scrolls []snap.ScrollOptions
}

var _ snap.ScrollableElement = (*Element)(nil)

// NewHost builds the element tree for doc.
func NewHost(doc *Document, logger *zap.Logger) (*Host, error) {
	if doc == nil {
		return nil, fmt.Errorf("fixture document cannot be nil")
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Host{logger: logger.Named("fixture_host"), doc: doc}
	h.root = h.build(doc.Root, nil)
	return h, nil
}

// Open loads the fixture at path and builds a Host for it.
func Open(path string, logger *zap.Logger) (*Host, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	return NewHost(doc, logger)
}

func (h *Host) build(n *Node, parent *Element) *Element {
	el := &Element{
		host:   h,
		node:   n,
		parent: parent,
		style:  computeStyle(n.Style),
	}
	if n.Scroll != nil {
		el.left, el.top = n.Scroll.Left, n.Scroll.Top
	}
	el.children = make([]*Element, 0, len(n.Children))
	for _, c := range n.Children {
		el.children = append(el.children, h.build(c, el))
	}
	return el
}

// Root returns the element for the document's root node.
func (h *Host) Root() *Element { return h.root }

// Viewport returns the document's declared viewport.
func (h *Host) Viewport() Viewport { return h.doc.Viewport }

// Find returns the first element in document order matching selector.
func (h *Host) Find(selector string) (*Element, error) {
	sel, err := parser.ParseSelector(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector '%s': %w", selector, err)
	}
	var found *Element
	var walk func(*Element) bool
	walk = func(e *Element) bool {
		if sel.Matches(e.Tag(), e.node.ID, e.node.Classes) {
			found = e
			return true
		}
		for _, c := range e.children {
			if walk(c) {
				return true
			}
		}
		return false
	}
	if !walk(h.root) {
		return nil, fmt.Errorf("%w: '%s'", ErrNotFound, selector)
	}
	return found, nil
}

// Tag returns the node's tag name, "div" when none was given.
func (e *Element) Tag() string {
	if e.node.Tag == "" {
		return "div"
	}
	return strings.ToLower(e.node.Tag)
}

// ComputedStyle implements snap.Element.
func (e *Element) ComputedStyle(property string) string {
	return string(e.style[parser.Property(strings.ToLower(property))])
}

// BoundingRect implements snap.Element. The node's page box is shifted by
// the current scroll offsets of every ancestor.
func (e *Element) BoundingRect() snap.Rect {
	r := snap.RectFromXYWH(e.node.Rect.X, e.node.Rect.Y, e.node.Rect.Width, e.node.Rect.Height)
	for p := e.parent; p != nil; p = p.parent {
		left, top := p.offsets()
		r.Left -= left
		r.Right -= left
		r.Top -= top
		r.Bottom -= top
	}
	return r
}

// Metrics implements snap.Element. Nodes without a scroll block report
// their own box as the scrollable extent.
func (e *Element) Metrics() snap.ScrollMetrics {
	w, h := e.node.Rect.Width, e.node.Rect.Height
	m := snap.ScrollMetrics{ScrollWidth: w, ScrollHeight: h, OffsetWidth: w, OffsetHeight: h}
	if s := e.node.Scroll; s != nil {
		m.ScrollWidth, m.ScrollHeight = s.Width, s.Height
	}
	m.ScrollLeft, m.ScrollTop = e.offsets()
	return m
}

// Children implements snap.Element.
func (e *Element) Children() []snap.Element {
	out := make([]snap.Element, len(e.children))
	for i, c := range e.children {
		out[i] = c
	}
	return out
}

// ScrollTo implements snap.ScrollableElement. The scroll lands immediately,
// clamped to the scrollable range, whatever the requested behavior.
func (e *Element) ScrollTo(ctx context.Context, opts snap.ScrollOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m := e.Metrics()

	e.mu.Lock()
	if opts.Left != nil {
		e.left = clampScroll(*opts.Left, m.ScrollWidth-m.OffsetWidth)
	}
	if opts.Top != nil {
		e.top = clampScroll(*opts.Top, m.ScrollHeight-m.OffsetHeight)
	}
	e.scrolls = append(e.scrolls, opts)
	left, top := e.left, e.top
	e.mu.Unlock()

	e.host.logger.Debug("Applied scroll.",
		zap.String("element", e.String()),
		zap.Float64("scroll_left", left),
		zap.Float64("scroll_top", top),
		zap.String("behavior", string(opts.Behavior)),
	)
	return nil
}

// Scrolls returns a copy of the scroll commands this element received.
func (e *Element) Scrolls() []snap.ScrollOptions {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]snap.ScrollOptions(nil), e.scrolls...)
}

func (e *Element) String() string {
	var b strings.Builder
	b.WriteString(e.Tag())
	if e.node.ID != "" {
		b.WriteString("#" + e.node.ID)
	}
	for _, c := range e.node.Classes {
		b.WriteString("." + c)
	}
	return b.String()
}

func (e *Element) offsets() (float64, float64) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.left, e.top
}

func clampScroll(v, max float64) float64 {
	return math.Max(0, math.Min(max, v))
}
