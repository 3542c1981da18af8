package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/xqtrack/apptracker/pkg/tracker"
)

func newEventCommand(opts *globalOptions) *cobra.Command {
	var (
		name  string
		value float64
	)
	cmd := &cobra.Command{
		Use:   "event CATEGORY ACTION",
		Short: "Tracks an event",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			event := &tracker.Event{
				Category: args[0],
				Action:   args[1],
				Name:     name,
			}
			if cmd.Flags().Changed("value") {
				event.Value = tracker.Some(value)
			}
			return opts.track(cmd.OutOrStdout(), func(ctx context.Context, client *tracker.Client) (*tracker.Result, error) {
				return client.TrackEvent(ctx, event)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "name of the object the event acts upon")
	cmd.Flags().Float64Var(&value, "value", 0, "numeric value of the event")
	return cmd
}
