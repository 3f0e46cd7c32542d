// internal/snap/resolve_test.go
package snap

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestGetScrollSnapPositions_StartAligned(t *testing.T) {
	got := GetScrollSnapPositions(carousel(0, 0, 100, 250))
	assert.Equal(t, []float64{0, 100, 250}, got.X)
}

func TestGetScrollSnapPositions_CenterExample(t *testing.T) {
	c := newFake(0, 0, 100, 100, nil)
	c.metrics = ScrollMetrics{ScrollWidth: 300, OffsetWidth: 100, ScrollHeight: 100, OffsetHeight: 100}
	c.add(newFake(40, 0, 20, 100, align("none center")))

	// Raw center is 40 + 20/2 = 50; 50 - 100/2 = 0.
	assert.Equal(t, []float64{0}, GetScrollSnapPositions(c).X)
}

func TestGetScrollSnapPositions_PaddingAndEnd(t *testing.T) {
	c := newFake(0, 0, 200, 100, map[string]string{
		PropScrollPaddingLeft:  "20px",
		PropScrollPaddingRight: "10%",
	})
	c.metrics = ScrollMetrics{ScrollWidth: 1000, OffsetWidth: 200, ScrollHeight: 100, OffsetHeight: 100}
	c.add(
		newFake(300, 0, 100, 100, align("none start")),
		newFake(600, 0, 100, 100, align("none end")),
		newFake(500, 0, 100, 100, align("none center")),
	)

	got := GetScrollSnapPositions(c)

	// start: 300-20; center: 550-100; end: 700-200+20.
	assert.Equal(t, []float64{280, 450, 520}, got.X)
	assert.Empty(t, got.Y)
}

func TestGetScrollSnapPositions_ClampAndDedup(t *testing.T) {
	c := newFake(0, 0, 100, 100, nil)
	c.metrics = ScrollMetrics{ScrollWidth: 300, OffsetWidth: 100, ScrollHeight: 100, OffsetHeight: 100}
	c.add(
		newFake(0, 0, 50, 100, align("none start")),
		newFake(0, 0, 50, 100, align("none start")),
		newFake(250, 0, 50, 100, align("none start")),  // 250 -> clamp 200
		newFake(280, 0, 20, 100, align("none start")),  // 280 -> clamp 200, dup
		newFake(10, 0, 20, 100, align("none center")), // 20-50 -> clamp 0, dup
	)

	got := GetScrollSnapPositions(c)
	assert.Equal(t, []float64{0, 200}, got.X)
}

func TestGetScrollSnapPositions_Properties(t *testing.T) {
	c := newFake(0, 0, 120, 90, map[string]string{
		PropScrollPaddingLeft:   "7px",
		PropScrollPaddingRight:  "3px",
		PropScrollPaddingTop:    "5%",
		PropScrollPaddingBottom: "auto",
	})
	c.metrics = ScrollMetrics{ScrollWidth: 700, OffsetWidth: 120, ScrollHeight: 600, OffsetHeight: 90, ScrollLeft: 33, ScrollTop: 12}
	aligns := []string{"start", "center", "end", "start end", "center start", "none", "end center"}
	for i := 0; i < 40; i++ {
		x := float64((i * 37) % 700)
		y := float64((i * 53) % 600)
		c.add(newFake(x, y, float64(10+i%30), float64(15+i%20), align(aligns[i%len(aligns)])))
	}

	got := GetScrollSnapPositions(c)

	for _, axis := range Axes {
		maxScroll := MaxScroll(c.metrics, axis)
		seen := map[float64]bool{}
		for _, v := range got.Axis(axis) {
			assert.GreaterOrEqual(t, v, 0.0, "axis %s", axis)
			assert.LessOrEqual(t, v, maxScroll, "axis %s", axis)
			assert.False(t, seen[v], "duplicate %v on axis %s", v, axis)
			seen[v] = true
		}
	}

	again := GetScrollSnapPositions(c)
	if diff := cmp.Diff(got, again); diff != "" {
		t.Errorf("repeated call differs (-first +second):\n%s", diff)
	}
}

func TestGetScrollSnapPositions_NoQualifyingDescendants(t *testing.T) {
	c := carousel(0)
	c.add(newFake(0, 0, 100, 100, align("none")))
	c.add(newFake(0, 900, 100, 100, align("start"))) // off-axis for x

	got := GetScrollSnapPositions(c)
	assert.Empty(t, got.X)
}

func TestGetScrollSnapPositions_NegativeMaxScroll(t *testing.T) {
	c := newFake(0, 0, 100, 100, nil)
	c.metrics = ScrollMetrics{ScrollWidth: 80, OffsetWidth: 100, ScrollHeight: 100, OffsetHeight: 100}
	c.add(newFake(10, 0, 10, 10, align("start")), newFake(30, 0, 10, 10, align("start")))

	assert.Equal(t, []float64{0}, GetScrollSnapPositions(c).X)
}

func TestUnique(t *testing.T) {
	nan := math.NaN()
	got := unique([]float64{3, 1, 3, nan, 2, nan, 1})
	assert.Len(t, got, 4)
	assert.Equal(t, []float64{3, 1}, got[:2])
	assert.True(t, math.IsNaN(got[2]))
	assert.Equal(t, 2.0, got[3])
}

func TestClampPropagatesNaN(t *testing.T) {
	assert.True(t, math.IsNaN(clamp(math.NaN(), 0, 10)))
	assert.Equal(t, 10.0, clamp(12, 0, 10))
	assert.Equal(t, 0.0, clamp(-3, 0, 10))
}
