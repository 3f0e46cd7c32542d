// internal/browser/snapshot.go
package browser

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/google/uuid"
	json "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/xkilldash9x/scrollsnap/internal/snap"
)

//go:embed snapshot.js
var snapshotJS string

//go:embed scroll.js
var scrollJS string

// ErrElementNotFound is returned when the selector matches nothing in the
// page, or when a snapshotted container has since left the DOM.
var ErrElementNotFound = errors.New("element not found")

// snapshotProperties are the computed style properties captured per node.
var snapshotProperties = []string{
	snap.PropScrollSnapAlign,
	snap.PropScrollPaddingTop,
	snap.PropScrollPaddingRight,
	snap.PropScrollPaddingBottom,
	snap.PropScrollPaddingLeft,
}

// snapshotNode is the wire format produced by snapshot.js.
type snapshotNode struct {
	Tag      string             `json:"tag"`
	ID       string             `json:"id"`
	Rect     snap.Rect          `json:"rect"`
	Metrics  snap.ScrollMetrics `json:"metrics"`
	Style    map[string]string  `json:"style"`
	Children []*snapshotNode    `json:"children"`
}

// Node is a captured element. Accessors answer from the snapshot and never
// touch the browser.
type Node struct {
	data     *snapshotNode
	children []snap.Element
}

var _ snap.Element = (*Node)(nil)

func newNode(data *snapshotNode) *Node {
	n := &Node{data: data, children: make([]snap.Element, 0, len(data.Children))}
	for _, c := range data.Children {
		if c == nil {
			continue
		}
		n.children = append(n.children, newNode(c))
	}
	return n
}

func (n *Node) ComputedStyle(property string) string { return n.data.Style[property] }
func (n *Node) BoundingRect() snap.Rect              { return n.data.Rect }
func (n *Node) Metrics() snap.ScrollMetrics          { return n.data.Metrics }
func (n *Node) Children() []snap.Element             { return n.children }

func (n *Node) String() string {
	if n.data.ID != "" {
		return n.data.Tag + "#" + n.data.ID
	}
	return n.data.Tag
}

// Container is the snapshotted scroll container. Unlike its descendants it
// can be scrolled, addressed in the page by a data-scrollsnap-id tag.
type Container struct {
	*Node
	tag      string
	selector string
	exec     scriptExecutor
}

var _ snap.ScrollableElement = (*Container)(nil)

// Tag is the value of the container's data-scrollsnap-id attribute.
func (c *Container) Tag() string { return c.tag }

// ScrollTo implements snap.ScrollableElement. It returns once the page has
// accepted the scrollTo call; a smooth scroll is still animating then.
func (c *Container) ScrollTo(ctx context.Context, opts snap.ScrollOptions) error {
	script, err := invocation(scrollJS, c.tag, opts)
	if err != nil {
		return err
	}
	raw, err := c.exec.run(ctx, "scrollTo", script)
	if err != nil {
		return err
	}
	var accepted bool
	if err := json.Unmarshal(raw, &accepted); err != nil {
		return fmt.Errorf("failed to decode scrollTo result: %w (payload: %s)", err, string(raw))
	}
	if !accepted {
		return fmt.Errorf("%w: container '%s' is no longer attached", ErrElementNotFound, c.selector)
	}
	c.exec.logger.Debug("Issued scrollTo.",
		zap.String("selector", c.selector),
		zap.Any("options", opts),
	)
	return nil
}

// Refresh captures the container again, picking up scroll offsets and
// layout changes since the last snapshot.
func (c *Container) Refresh(ctx context.Context) (*Container, error) {
	return takeSnapshot(ctx, c.exec, fmt.Sprintf(`[data-scrollsnap-id="%s"]`, c.tag), c.tag, c.selector)
}

// takeSnapshot captures the subtree at selector and tags its root. label is
// the selector reported in errors and logs.
func takeSnapshot(ctx context.Context, exec scriptExecutor, selector, tag, label string) (*Container, error) {
	script, err := invocation(snapshotJS, selector, tag, snapshotProperties)
	if err != nil {
		return nil, err
	}
	raw, err := exec.run(ctx, "snapshot", script)
	if err != nil {
		return nil, fmt.Errorf("snapshot of '%s': %w", label, err)
	}
	root, err := decodeSnapshot(raw)
	if err != nil {
		return nil, fmt.Errorf("snapshot of '%s': %w", label, err)
	}
	if root == nil {
		return nil, fmt.Errorf("%w: '%s'", ErrElementNotFound, label)
	}
	node := newNode(root)
	exec.logger.Debug("Captured layout snapshot.",
		zap.String("selector", label),
		zap.String("tag", tag),
		zap.Int("descendants", len(snap.Descendants(node))),
	)
	return &Container{Node: node, tag: tag, selector: label, exec: exec}, nil
}

// snapshotResult is the envelope returned by snapshot.js. The payload is
// never a bare null.
type snapshotResult struct {
	Found bool          `json:"found"`
	Root  *snapshotNode `json:"root"`
}

// decodeSnapshot parses snapshot.js output. A miss yields a nil node.
func decodeSnapshot(raw []byte) (*snapshotNode, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty snapshot payload")
	}
	var res snapshotResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if !res.Found {
		return nil, nil
	}
	if res.Root == nil {
		return nil, fmt.Errorf("snapshot reported a match but carried no root")
	}
	return res.Root, nil
}

func newTag() string {
	return uuid.NewString()
}
