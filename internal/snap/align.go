// internal/snap/align.go
package snap

import "strings"

// Alignment is a scroll-snap-align keyword for one axis.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignStart
	AlignCenter
	AlignEnd
)

// snapAlignments lists the alignments that produce positions, in the order
// the resolver concatenates them.
var snapAlignments = [3]Alignment{AlignStart, AlignCenter, AlignEnd}

func (a Alignment) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "none"
	}
}

func parseAlignmentToken(tok string) Alignment {
	switch strings.ToLower(tok) {
	case "start":
		return AlignStart
	case "center":
		return AlignCenter
	case "end":
		return AlignEnd
	default:
		return AlignNone
	}
}

// AlignPair is a parsed scroll-snap-align value.
type AlignPair struct {
	Block  Alignment // y
	Inline Alignment // x
}

// For returns the alignment that applies to axis a.
func (p AlignPair) For(a Axis) Alignment {
	if a == AxisY {
		return p.Block
	}
	return p.Inline
}

// ParseSnapAlign parses a computed scroll-snap-align value. The first token
// is the block axis and the second the inline axis; a single token applies
// to both. Anything unrecognised is AlignNone.
func ParseSnapAlign(value string) AlignPair {
	fields := strings.Fields(value)
	switch len(fields) {
	case 0:
		return AlignPair{}
	case 1:
		a := parseAlignmentToken(fields[0])
		return AlignPair{Block: a, Inline: a}
	default:
		return AlignPair{
			Block:  parseAlignmentToken(fields[0]),
			Inline: parseAlignmentToken(fields[1]),
		}
	}
}
