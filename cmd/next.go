// File: cmd/next.go
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xkilldash9x/scrollsnap/internal/observability"
	"github.com/xkilldash9x/scrollsnap/internal/snap"
)

type nextOutput struct {
	Source    string              `json:"source"`
	Selector  string              `json:"selector"`
	Direction snap.Direction      `json:"direction"`
	From      number              `json:"from"`
	Target    number              `json:"target"`
	DryRun    bool                `json:"dry_run"`
	Issued    *snap.ScrollOptions `json:"issued,omitempty"`
}

func newNextCmd(v *viper.Viper) *cobra.Command {
	var flags sourceFlags
	var direction string
	var dryRun bool
	var behavior string

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Scroll a container to its next snap point in a direction.",
		Long: `Scroll a container to the next snap point left, right, up or down. When no
snap point lies ahead, the container scrolls to the end (right/down) or the
start (left/up). The scroll is issued without waiting for it to finish. With
--url the browser stays open for browser.post_load_wait after issuing it and
is then closed; a smooth scroll longer than that is cut short. With --dry-run
only the target is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := configFromContext(ctx)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("behavior") {
				cfg.SetSnapBehavior(behavior)
				snapCfg := cfg.Snap()
				if err := snapCfg.Validate(); err != nil {
					return fmt.Errorf("invalid --behavior: %w", err)
				}
			}
			dir, err := snap.ParseDirection(direction)
			if err != nil {
				return err
			}
			source, err := flags.single()
			if err != nil {
				return err
			}

			logger := observability.GetLogger()
			t, err := openTarget(ctx, cfg, logger, &flags, source)
			if err != nil {
				return err
			}
			defer t.close()

			navigator := snap.NewNavigator(logger,
				snap.WithScrollFuzz(cfg.Snap().ScrollFuzz),
				snap.WithOffAxisExclusion(cfg.Snap().ExcludeOffAxis),
			)

			m := t.element.Metrics()
			from := m.ScrollLeft
			if dir.Axis() == snap.AxisY {
				from = m.ScrollTop
			}

			out := nextOutput{
				Source:    t.source,
				Selector:  flags.selector,
				Direction: dir,
				From:      number(from),
				DryRun:    dryRun,
			}
			if dryRun {
				out.Target = number(navigator.NextSnapOffset(t.element, dir))
				return writeJSON(cmd.OutOrStdout(), out)
			}

			opts := snap.ScrollOptions{Behavior: snap.Behavior(strings.ToLower(cfg.Snap().Behavior))}
			issued, err := navigator.ScrollSnapToNext(ctx, t.element, dir, &opts)
			if err != nil {
				return err
			}
			if dir.Axis() == snap.AxisY {
				out.Target = number(*issued.Top)
			} else {
				out.Target = number(*issued.Left)
			}
			out.Issued = &issued
			if err := writeJSON(cmd.OutOrStdout(), out); err != nil {
				return err
			}
			return t.settle(ctx)
		},
	}
	flags.register(cmd, "layout fixture file")
	cmd.Flags().StringVarP(&direction, "direction", "d", "", "left, right, up or down")
	_ = cmd.MarkFlagRequired("direction")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the target offset without scrolling")
	cmd.Flags().StringVar(&behavior, "behavior", "", "scroll behavior: auto, smooth or instant (default from snap.behavior)")
	cmd.Flags().Float64("fuzz", snap.DefaultScrollFuzz, "pixels added in the travel direction before looking for the next point")
	_ = v.BindPFlag("snap.scroll_fuzz", cmd.Flags().Lookup("fuzz"))
	return cmd
}
