package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build [items...]",
		Short: "Insert items in order and print the tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := parseItems(args)
			if err != nil {
				return err
			}
			s := buildSet(items)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d items\n", s.Len())
			render(out, s.Root())
			return nil
		},
	}
}
