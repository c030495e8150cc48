package main

import (
	"fmt"
	"log/slog"

	"github.com/llaenowyd/splayset/splay"
	"github.com/spf13/cobra"
)

func newHasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "has <item> [items...]",
		Short: "Build a set from items and test whether it contains item",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := parseItems(args)
			if err != nil {
				return err
			}
			probe := items[0]
			s := buildSet(items[1:])

			outcome := s.Splay(probe)
			slog.Debug("splay", "item", probe, "outcome", outcome)

			out := cmd.OutOrStdout()
			if outcome == splay.Found {
				fmt.Fprintf(out, "%d: found\n", probe)
			} else {
				fmt.Fprintf(out, "%d: absent (%s)\n", probe, outcome)
			}
			render(out, s.Root())
			return nil
		},
	}
}
