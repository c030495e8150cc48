package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/llaenowyd/splayset/splay"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "splayset",
		Short: "Build and query splay tree sets of integers",
		Long: `splayset builds a set of integers by inserting them, in order, into a
top-down splay tree, and prints the resulting tree shape.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every insertion")

	rootCmd.AddCommand(newBuildCmd(), newHasCmd())
	return rootCmd
}

func parseItems(args []string) ([]int, error) {
	items := make([]int, 0, len(args))
	for _, arg := range args {
		x, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid item %q: %w", arg, err)
		}
		items = append(items, x)
	}
	return items, nil
}

// buildSet inserts items one at a time, logging where each insertion leaves
// the root.
func buildSet(items []int) *splay.Set[int] {
	s := splay.NewOrderedSet[int]()
	for _, x := range items {
		added := s.Insert(x)
		slog.Debug("insert", "item", x, "added", added, "root", s.Root().Item(), "len", s.Len())
	}
	return s
}
