// internal/fixture/style.go
package fixture

import (
	"strings"

	"github.com/xkilldash9x/scrollsnap/internal/browser/parser"
	"github.com/xkilldash9x/scrollsnap/internal/snap"
)

// initialValues are what a browser reports for properties nobody set.
var initialValues = map[parser.Property]parser.Value{
	snap.PropScrollSnapAlign:     "none",
	snap.PropScrollPaddingTop:    "auto",
	snap.PropScrollPaddingRight:  "auto",
	snap.PropScrollPaddingBottom: "auto",
	snap.PropScrollPaddingLeft:   "auto",
}

// computeStyle resolves an inline declaration block the way the cascade
// does for a single origin: important declarations beat normal ones and,
// within the same importance, the later declaration wins. Shorthands are
// expanded in place so a later longhand overrides an earlier shorthand and
// vice versa.
func computeStyle(block string) map[parser.Property]parser.Value {
	normal := make(map[parser.Property]parser.Value)
	important := make(map[parser.Property]parser.Value)

	for _, decl := range parser.ParseDeclarationBlock(block) {
		target := normal
		if decl.Important {
			target = important
		}
		for prop, val := range expandShorthand(decl.Property, decl.Value) {
			target[prop] = val
		}
	}

	styles := make(map[parser.Property]parser.Value, len(initialValues)+len(normal))
	for prop, val := range initialValues {
		styles[prop] = val
	}
	for prop, val := range normal {
		styles[prop] = val
	}
	for prop, val := range important {
		styles[prop] = val
	}
	return styles
}

// expandShorthand returns the longhands a declaration sets. Logical
// properties are mapped for a horizontal left-to-right writing mode.
func expandShorthand(prop parser.Property, val parser.Value) map[parser.Property]parser.Value {
	switch prop {
	case "scroll-padding":
		return expand1To4(val, snap.PropScrollPaddingTop, snap.PropScrollPaddingRight, snap.PropScrollPaddingBottom, snap.PropScrollPaddingLeft)
	case "scroll-padding-block":
		return expand1To2(val, snap.PropScrollPaddingTop, snap.PropScrollPaddingBottom)
	case "scroll-padding-inline":
		return expand1To2(val, snap.PropScrollPaddingLeft, snap.PropScrollPaddingRight)
	case "scroll-padding-block-start":
		return map[parser.Property]parser.Value{snap.PropScrollPaddingTop: val}
	case "scroll-padding-block-end":
		return map[parser.Property]parser.Value{snap.PropScrollPaddingBottom: val}
	case "scroll-padding-inline-start":
		return map[parser.Property]parser.Value{snap.PropScrollPaddingLeft: val}
	case "scroll-padding-inline-end":
		return map[parser.Property]parser.Value{snap.PropScrollPaddingRight: val}
	}
	return map[parser.Property]parser.Value{prop: val}
}

func expand1To4(val parser.Value, top, right, bottom, left parser.Property) map[parser.Property]parser.Value {
	parts := strings.Fields(string(val))
	out := make(map[parser.Property]parser.Value, 4)
	switch len(parts) {
	case 1:
		v1 := parser.Value(parts[0])
		out[top], out[right], out[bottom], out[left] = v1, v1, v1, v1
	case 2:
		v1, v2 := parser.Value(parts[0]), parser.Value(parts[1])
		out[top], out[right], out[bottom], out[left] = v1, v2, v1, v2
	case 3:
		v1, v2, v3 := parser.Value(parts[0]), parser.Value(parts[1]), parser.Value(parts[2])
		out[top], out[right], out[bottom], out[left] = v1, v2, v3, v2
	case 4:
		v1, v2, v3, v4 := parser.Value(parts[0]), parser.Value(parts[1]), parser.Value(parts[2]), parser.Value(parts[3])
		out[top], out[right], out[bottom], out[left] = v1, v2, v3, v4
	}
	// Any other arity is invalid and the declaration is dropped.
	return out
}

func expand1To2(val parser.Value, start, end parser.Property) map[parser.Property]parser.Value {
	parts := strings.Fields(string(val))
	out := make(map[parser.Property]parser.Value, 2)
	switch len(parts) {
	case 1:
		out[start], out[end] = parser.Value(parts[0]), parser.Value(parts[0])
	case 2:
		out[start], out[end] = parser.Value(parts[0]), parser.Value(parts[1])
	}
	return out
}
