// File: cmd/positions.go
package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xkilldash9x/scrollsnap/internal/observability"
	"github.com/xkilldash9x/scrollsnap/internal/snap"
)

type listOutput struct {
	Start  []number `json:"start"`
	Center []number `json:"center"`
	End    []number `json:"end"`
}

type offsetsOutput struct {
	X []number `json:"x"`
	Y []number `json:"y"`
}

type rawOutput struct {
	X listOutput `json:"x"`
	Y listOutput `json:"y"`
}

// positionsOutput carries Offsets, or Raw when --raw was given.
type positionsOutput struct {
	Source   string         `json:"source"`
	Selector string         `json:"selector"`
	Offsets  *offsetsOutput `json:"offsets,omitempty"`
	Raw      *rawOutput     `json:"raw,omitempty"`
}

func newPositionsCmd(_ *viper.Viper) *cobra.Command {
	var flags sourceFlags
	var raw, includeOffAxis bool

	cmd := &cobra.Command{
		Use:   "positions",
		Short: "Print the snap offsets of a container, per axis.",
		Long: `Print the scroll offsets at which the container snaps. With --raw, print the
collected alignment coordinates before padding, clamping and deduplication.
Several --fixture files are processed concurrently; results keep flag order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := configFromContext(ctx)
			if err != nil {
				return err
			}
			logger := observability.GetLogger().Named("positions")
			if includeOffAxis {
				cfg.SetSnapExcludeOffAxis(false)
			}
			exclude := cfg.Snap().ExcludeOffAxis
			navigator := snap.NewNavigator(logger, snap.WithOffAxisExclusion(exclude))

			sources := flags.sources()
			results := make([]positionsOutput, len(sources))

			g, groupCtx := errgroup.WithContext(ctx)
			g.SetLimit(runtime.NumCPU())
			for i, source := range sources {
				g.Go(func() error {
					t, err := openTarget(groupCtx, cfg, logger, &flags, source)
					if err != nil {
						return err
					}
					defer t.close()

					out := positionsOutput{Source: t.source, Selector: flags.selector}
					if raw {
						p := snap.GetSnapPositions(t.element, exclude)
						out.Raw = &rawOutput{X: toListOutput(p.X), Y: toListOutput(p.Y)}
					} else {
						o := navigator.Offsets(t.element)
						out.Offsets = &offsetsOutput{X: numbers(o.X), Y: numbers(o.Y)}
					}
					results[i] = out
					logger.Debug("Resolved positions.", zap.String("source", source))
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), results)
		},
	}
	flags.register(cmd, "layout fixture file (repeatable, or comma-separated)")
	cmd.Flags().BoolVar(&raw, "raw", false, "print collected coordinates instead of resolved offsets")
	cmd.Flags().BoolVar(&includeOffAxis, "include-off-axis", false, "also count descendants outside the container on the other axis")
	return cmd
}

func toListOutput(l snap.SnapPositionList) listOutput {
	return listOutput{Start: numbers(l.Start), Center: numbers(l.Center), End: numbers(l.End)}
}
