// internal/snap/collect_test.go
package snap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestGetSnapPositions_Alignments(t *testing.T) {
	c := newFake(0, 0, 100, 100, nil)
	c.metrics = ScrollMetrics{ScrollWidth: 400, OffsetWidth: 100, ScrollHeight: 100, OffsetHeight: 100}
	c.add(
		newFake(0, 0, 80, 100, align("start")),
		newFake(40, 0, 20, 100, align("center")),
		newFake(200, 0, 50, 100, align("end")),
		newFake(300, 0, 50, 100, align("none")),
		newFake(350, 0, 50, 100, nil),
	)

	got := GetSnapPositions(c, true)

	want := Positions{
		X: SnapPositionList{Start: []float64{0}, Center: []float64{50}, End: []float64{250}},
		// The end-aligned child sits outside the container horizontally, so
		// it never counts for y.
		Y: SnapPositionList{Start: []float64{0}, Center: []float64{50}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GetSnapPositions mismatch (-want +got):\n%s", diff)
	}
}

func TestGetSnapPositions_PerAxisTokens(t *testing.T) {
	c := newFake(0, 0, 100, 100, nil)
	c.add(newFake(10, 20, 30, 40, align("end start")))

	got := GetSnapPositions(c, true)

	assert.Equal(t, []float64{10}, got.X.Start, "inline token drives x")
	assert.Empty(t, got.X.End)
	assert.Equal(t, []float64{60}, got.Y.End, "block token drives y")
	assert.Empty(t, got.Y.Start)
}

func TestGetSnapPositions_DocumentOrderAndDuplicates(t *testing.T) {
	c := newFake(0, 0, 100, 100, nil)
	outer := newFake(100, 0, 100, 100, align("start"))
	outer.add(newFake(150, 0, 10, 10, align("start")))
	c.add(outer, newFake(100, 0, 100, 100, align("start")), newFake(50, 0, 10, 10, align("start")))

	got := GetSnapPositions(c, true)

	assert.Equal(t, []float64{100, 150, 100, 50}, got.X.Start)
}

func TestGetSnapPositions_OffAxisExclusion(t *testing.T) {
	c := newFake(0, 0, 100, 100, nil)
	// Far below the container: irrelevant to horizontal snapping.
	below := newFake(200, 500, 50, 50, align("start"))
	// Far to the right, but vertically inside: relevant to x only.
	right := newFake(300, 10, 50, 50, align("start"))
	c.add(below, right)

	excluded := GetSnapPositions(c, true)
	assert.Equal(t, []float64{300}, excluded.X.Start)
	assert.Empty(t, excluded.Y.Start, "neither child overlaps the container horizontally")

	// below is horizontally outside too, so it is dropped for y as well.
	c2 := newFake(0, 0, 100, 100, nil)
	c2.add(newFake(20, 500, 50, 50, align("start")))
	assert.Equal(t, []float64{500}, GetSnapPositions(c2, true).Y.Start)
	assert.Empty(t, GetSnapPositions(c2, true).X.Start)

	included := GetSnapPositions(c, false)
	assert.Equal(t, []float64{200, 300}, included.X.Start)
	assert.Equal(t, []float64{500, 10}, included.Y.Start)
}

func TestGetSnapPositions_IndependentOfScrollPosition(t *testing.T) {
	atZero := GetSnapPositions(carousel(0, 0, 100, 250), true)
	scrolled := GetSnapPositions(carousel(175, 0, 100, 250), true)

	assert.Equal(t, []float64{0, 100, 250}, atZero.X.Start)
	if diff := cmp.Diff(atZero, scrolled); diff != "" {
		t.Errorf("positions moved with scroll (-zero +scrolled):\n%s", diff)
	}
}

func TestGetSnapPositions_NoDescendants(t *testing.T) {
	got := GetSnapPositions(newFake(0, 0, 100, 100, nil), true)
	assert.Zero(t, got.X.Len())
	assert.Zero(t, got.Y.Len())
}
