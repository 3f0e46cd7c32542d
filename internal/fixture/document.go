// internal/fixture/document.go
package fixture

import (
	"bytes"
	"fmt"
	"io"
	"os"

	json "github.com/json-iterator/go"
	"github.com/mitchellh/go-homedir"
)

// Document is a serialized layout: a viewport and a tree of boxes.
type Document struct {
	Viewport Viewport `json:"viewport"`
	Root     *Node    `json:"root"`
}

// Viewport is informational; the host does not clip against it.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Box is a border box in page coordinates with every scroller at zero.
type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Scroll describes a scroll container's content size and current offsets.
type Scroll struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
}

// Node is one element of the layout tree. Style holds inline CSS
// declarations, e.g. "scroll-snap-align: start; scroll-padding: 10px".
type Node struct {
	Tag      string   `json:"tag,omitempty"`
	ID       string   `json:"id,omitempty"`
	Classes  []string `json:"classes,omitempty"`
	Rect     Box      `json:"rect"`
	Scroll   *Scroll  `json:"scroll,omitempty"`
	Style    string   `json:"style,omitempty"`
	Children []*Node  `json:"children,omitempty"`
}

// Decode reads a Document from r.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load reads a Document from disk. A leading ~ in path is expanded.
func Load(path string) (*Document, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand fixture path '%s': %w", path, err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture '%s': %w", expanded, err)
	}
	doc, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", expanded, err)
	}
	return doc, nil
}

func (d *Document) validate() error {
	if d.Root == nil {
		return fmt.Errorf("fixture has no root node")
	}
	var check func(n *Node, path string) error
	check = func(n *Node, path string) error {
		if n == nil {
			return fmt.Errorf("fixture node %s is null", path)
		}
		if n.Rect.Width < 0 || n.Rect.Height < 0 {
			return fmt.Errorf("fixture node %s has a negative size", path)
		}
		for i, c := range n.Children {
			if err := check(c, fmt.Sprintf("%s/%d", path, i)); err != nil {
				return err
			}
		}
		return nil
	}
	return check(d.Root, "root")
}
