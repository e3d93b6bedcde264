package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/redlight/internal/storage"
)

var flagReset bool

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show or reset the best score",
	Long: `Print the persisted best score.

Examples:
  redlight best
  redlight best --reset
  redlight best --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runBest,
}

func init() {
	bestCmd.Flags().BoolVar(&flagReset, "reset", false, "Forget the best score")
}

func runBest(cmd *cobra.Command, _ []string) error {
	// Unlike play, there is nothing to fall back to here.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagReset {
		if err := store.ClearBestScore(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Best score reset.")
		return nil
	}

	best, err := store.BestScore()
	if err != nil {
		return err
	}
	if best == 0 {
		fmt.Fprintln(out, "No best score recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'redlight play' to set the first one!")
		return nil
	}
	fmt.Fprintf(out, "Best: %d\n", best)
	return nil
}
