// internal/snap/navigate.go
package snap

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// DefaultScrollFuzz is how far past the current position the navigator
// pretends to be before looking for the next snap point. It absorbs
// sub-pixel rounding in element sizes.
const DefaultScrollFuzz = 2.0

// Navigator selects and issues "next snap point" scrolls.
// The zero value is not usable; use NewNavigator.
type Navigator struct {
	logger         *zap.Logger
	fuzz           float64
	excludeOffAxis bool
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithScrollFuzz overrides DefaultScrollFuzz.
func WithScrollFuzz(px float64) Option {
	return func(n *Navigator) { n.fuzz = px }
}

// WithOffAxisExclusion toggles skipping descendants that do not overlap the
// container on the orthogonal axis. Enabled by default.
func WithOffAxisExclusion(enabled bool) Option {
	return func(n *Navigator) { n.excludeOffAxis = enabled }
}

// NewNavigator builds a Navigator. A nil logger is replaced with a no-op.
func NewNavigator(logger *zap.Logger, opts ...Option) *Navigator {
	if logger == nil {
		logger = zap.NewNop()
	}
	n := &Navigator{
		logger:         logger.Named("snap_navigator"),
		fuzz:           DefaultScrollFuzz,
		excludeOffAxis: true,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

var defaultNavigator = NewNavigator(nil)

// ScrollSnapToNext scrolls el to the next snap point in dir using default
// settings. See Navigator.ScrollSnapToNext.
func ScrollSnapToNext(ctx context.Context, el ScrollableElement, dir Direction, opts *ScrollOptions) (ScrollOptions, error) {
	return defaultNavigator.ScrollSnapToNext(ctx, el, dir, opts)
}

// NextSnapOffset returns the offset ScrollSnapToNext would scroll to, using
// default settings.
func NextSnapOffset(el Element, dir Direction) float64 {
	return defaultNavigator.NextSnapOffset(el, dir)
}

// Offsets returns the candidate offsets of el honouring the navigator's
// off-axis setting.
func (n *Navigator) Offsets(el Element) Offsets {
	return resolveOffsets(el, n.excludeOffAxis)
}

// NextSnapOffset computes the target offset along dir's axis without
// scrolling. When no snap point lies ahead it returns the far boundary:
// maxScroll moving forward, 0 moving back.
func (n *Navigator) NextSnapOffset(el Element, dir Direction) float64 {
	axis, sign := dir.Axis(), dir.Sign()
	d := descriptorFor(axis)
	metrics := el.Metrics()

	candidates := n.Offsets(el).Axis(axis)
	current := d.scrollStart(metrics) + n.fuzz*float64(sign)
	return selectNext(candidates, current, sign, d.maxScroll(metrics))
}

// selectNext picks the candidate closest to current that lies strictly
// beyond it in the direction of sign, falling back to the boundary.
func selectNext(candidates []float64, current float64, sign Sign, maxScroll float64) float64 {
	ahead := make([]float64, 0, len(candidates))
	for _, pos := range candidates {
		if (sign == Positive && pos > current) || (sign == Negative && pos < current) {
			ahead = append(ahead, pos)
		}
	}
	if len(ahead) == 0 {
		if sign == Positive {
			return maxScroll
		}
		return 0
	}
	if sign == Positive {
		sort.Float64s(ahead)
	} else {
		sort.Sort(sort.Reverse(sort.Float64Slice(ahead)))
	}
	return ahead[0]
}

// ScrollSnapToNext computes the next snap offset along dir and asks el to
// scroll there. The target is merged into opts; every other field of opts
// is passed through as given. A nil opts means {behavior: smooth}.
//
// An unknown dir is an error and nothing is scrolled. The returned
// ScrollOptions are exactly what was handed to el.ScrollTo.
// The call does not wait for the scroll motion to finish and does not
// cancel a motion already in progress.
func (n *Navigator) ScrollSnapToNext(ctx context.Context, el ScrollableElement, dir Direction, opts *ScrollOptions) (ScrollOptions, error) {
	if !dir.Valid() {
		return ScrollOptions{}, fmt.Errorf("unknown scroll direction %q", string(dir))
	}

	issued := DefaultScrollOptions()
	if opts != nil {
		issued = *opts
	}

	target := n.NextSnapOffset(el, dir)
	if dir.Axis() == AxisX {
		issued.Left = &target
	} else {
		issued.Top = &target
	}

	n.logger.Debug("Scrolling to next snap point.",
		zap.String("direction", string(dir)),
		zap.Float64("target", target),
		zap.String("behavior", string(issued.Behavior)),
	)

	if err := el.ScrollTo(ctx, issued); err != nil {
		return issued, fmt.Errorf("scroll to %s snap point %v: %w", dir, target, err)
	}
	return issued, nil
}
