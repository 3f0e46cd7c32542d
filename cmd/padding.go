// File: cmd/padding.go
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xkilldash9x/scrollsnap/internal/observability"
	"github.com/xkilldash9x/scrollsnap/internal/snap"
)

type edgeOutput struct {
	Before number `json:"before"`
	After  number `json:"after"`
}

type paddingOutput struct {
	Source   string     `json:"source"`
	Selector string     `json:"selector"`
	X        edgeOutput `json:"x"`
	Y        edgeOutput `json:"y"`
}

func newPaddingCmd(_ *viper.Viper) *cobra.Command {
	var flags sourceFlags

	cmd := &cobra.Command{
		Use:   "padding",
		Short: "Print the resolved scroll padding of a container in pixels.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := configFromContext(ctx)
			if err != nil {
				return err
			}
			source, err := flags.single()
			if err != nil {
				return err
			}

			t, err := openTarget(ctx, cfg, observability.GetLogger(), &flags, source)
			if err != nil {
				return err
			}
			defer t.close()

			p := snap.GetScrollPadding(t.element)
			return writeJSON(cmd.OutOrStdout(), paddingOutput{
				Source:   t.source,
				Selector: flags.selector,
				X:        edgeOutput{Before: number(p.X.Before), After: number(p.X.After)},
				Y:        edgeOutput{Before: number(p.Y.Before), After: number(p.Y.After)},
			})
		},
	}
	flags.register(cmd, "layout fixture file")
	return cmd
}
