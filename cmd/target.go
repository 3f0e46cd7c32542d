// File: cmd/target.go
package cmd

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	json "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/scrollsnap/internal/browser"
	"github.com/xkilldash9x/scrollsnap/internal/config"
	"github.com/xkilldash9x/scrollsnap/internal/fixture"
	"github.com/xkilldash9x/scrollsnap/internal/snap"
)

// sourceFlags are the flags shared by every command that reads a layout.
type sourceFlags struct {
	url      string
	fixtures []string
	selector string
}

func (f *sourceFlags) register(cmd *cobra.Command, fixtureUsage string) {
	cmd.Flags().StringVar(&f.url, "url", "", "page to load in a headless browser")
	cmd.Flags().StringSliceVar(&f.fixtures, "fixture", nil, fixtureUsage)
	cmd.Flags().StringVarP(&f.selector, "selector", "s", "", "selector of the scroll container")
	_ = cmd.MarkFlagRequired("selector")
	cmd.MarkFlagsMutuallyExclusive("url", "fixture")
	cmd.MarkFlagsOneRequired("url", "fixture")
}

// single returns the one source a command operates on.
func (f *sourceFlags) single() (string, error) {
	srcs := f.sources()
	if len(srcs) != 1 {
		return "", fmt.Errorf("exactly one --url or --fixture is required, got %d", len(srcs))
	}
	return srcs[0], nil
}

// sources lists every layout source the flags name, URL first.
func (f *sourceFlags) sources() []string {
	if f.url != "" {
		return []string{f.url}
	}
	return f.fixtures
}

// target is an opened scroll container and the means to release it.
type target struct {
	source  string
	element snap.ScrollableElement
	close   func()
	// settleFor keeps the host alive after a scroll was issued.
	settleFor time.Duration
}

// settle blocks for settleFor so an issued scroll can play out before
// close, returning early with ctx's error.
func (t *target) settle(ctx context.Context) error {
	if t.settleFor <= 0 {
		return nil
	}
	timer := time.NewTimer(t.settleFor)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// openTarget loads source and locates selector in it. Sources given with
// --url go through the browser; anything else is a fixture path.
func openTarget(ctx context.Context, cfg config.Interface, logger *zap.Logger, flags *sourceFlags, source string) (*target, error) {
	if flags.url != "" {
		return openPage(ctx, cfg, logger, source, flags.selector)
	}

	host, err := fixture.Open(source, logger)
	if err != nil {
		return nil, err
	}
	el, err := host.Find(flags.selector)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return &target{source: source, element: el, close: func() {}}, nil
}

func openPage(ctx context.Context, cfg config.Interface, logger *zap.Logger, url, selector string) (*target, error) {
	session, err := browser.NewSession(ctx, cfg.Browser(), logger)
	if err != nil {
		return nil, err
	}
	if err := session.Navigate(ctx, url); err != nil {
		session.Close()
		return nil, err
	}
	container, err := session.Snapshot(ctx, selector)
	if err != nil {
		session.Close()
		return nil, err
	}
	return &target{
		source:    url,
		element:   container,
		close:     func() { _ = session.Close() },
		settleFor: cfg.Browser().PostLoadWait,
	}, nil
}

// number is a float64 that encodes NaN and infinities as JSON null.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

func numbers(values []float64) []number {
	out := make([]number, len(values))
	for i, v := range values {
		out[i] = number(v)
	}
	return out
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
