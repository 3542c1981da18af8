package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/xqtrack/apptracker/pkg/tracker"
)

func newScreenCommand(opts *globalOptions) *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "screen PATH",
		Short: "Tracks a screen view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.track(cmd.OutOrStdout(), func(ctx context.Context, client *tracker.Client) (*tracker.Result, error) {
				return client.TrackScreenView(ctx, args[0], title)
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "screen title")
	return cmd
}
