// internal/snap/padding.go
package snap

import (
	"math"
	"strconv"
	"strings"
)

// EdgePair holds the before/after values of one axis.
type EdgePair struct {
	Before float64 `json:"before"`
	After  float64 `json:"after"`
}

// Padding is the resolved scroll padding of a container.
type Padding struct {
	X EdgePair `json:"x"`
	Y EdgePair `json:"y"`
}

// GetScrollPadding resolves the scroll-padding longhands of el into pixels.
// "auto" resolves to 0 and percentages are taken against the element's
// bounding box. Unparseable values come back as NaN.
func GetScrollPadding(el Element) Padding {
	rect := el.BoundingRect()
	read := func(prop string, size float64) float64 {
		raw := strings.Replace(el.ComputedStyle(prop), "auto", "0px", 1)
		return ParseLength(raw, size)
	}
	return Padding{
		X: EdgePair{
			Before: read(PropScrollPaddingLeft, rect.Width()),
			After:  read(PropScrollPaddingRight, rect.Width()),
		},
		Y: EdgePair{
			Before: read(PropScrollPaddingTop, rect.Height()),
			After:  read(PropScrollPaddingBottom, rect.Height()),
		},
	}
}

// ParseLength converts a resolved CSS length into pixels. The leading number
// is taken as-is; if the value contains a '%' it is scaled against size.
func ParseLength(raw string, size float64) float64 {
	n := parseLeadingFloat(raw)
	if strings.Contains(raw, "%") {
		n = n / 100 * size
	}
	return n
}

// parseLeadingFloat reads the longest numeric prefix of s after leading
// whitespace, the way the host's parseFloat does. No prefix yields NaN.
func parseLeadingFloat(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\r\f")
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		if s[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return math.NaN()
	}
	end := i
	// Exponent only counts if it is complete.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			end = k
		}
	}

	v, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		// Out-of-range exponents still carry a usable ±Inf or 0.
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return v
		}
		return math.NaN()
	}
	return v
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
