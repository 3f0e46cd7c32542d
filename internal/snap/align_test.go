// internal/snap/align_test.go
package snap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSnapAlign(t *testing.T) {
	tests := []struct {
		input    string
		expected AlignPair
	}{
		{"", AlignPair{AlignNone, AlignNone}},
		{"none", AlignPair{AlignNone, AlignNone}},
		{"start", AlignPair{AlignStart, AlignStart}},
		{"center", AlignPair{AlignCenter, AlignCenter}},
		{"end", AlignPair{AlignEnd, AlignEnd}},
		// Block axis first, inline axis second.
		{"start end", AlignPair{Block: AlignStart, Inline: AlignEnd}},
		{"none center", AlignPair{Block: AlignNone, Inline: AlignCenter}},
		{"  End   START ", AlignPair{Block: AlignEnd, Inline: AlignStart}},
		{"bogus", AlignPair{AlignNone, AlignNone}},
		{"start bogus", AlignPair{Block: AlignStart, Inline: AlignNone}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSnapAlign(tt.input))
		})
	}
}

func TestAlignPairFor(t *testing.T) {
	p := ParseSnapAlign("center end")
	assert.Equal(t, AlignEnd, p.For(AxisX))
	assert.Equal(t, AlignCenter, p.For(AxisY))
	assert.Equal(t, "end", p.For(AxisX).String())
	assert.Equal(t, "none", AlignNone.String())
}
