package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gridiron/internal/storage"
)

var (
	flagHistoryMode  string
	flagHistoryLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded season history",
	Long: `Prints the recorded seasons from the league database, most
recent first, plus the championship tallies.

Examples:
  gridiron history
  gridiron history --mode career
  gridiron history --limit 50`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryMode, "mode", "", "Only show seasons from this mode (career, franchise)")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Maximum number of seasons to show")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening league database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	seasons, err := store.Seasons(flagHistoryMode, flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading seasons: %v\n", err)
		os.Exit(1)
	}

	if len(seasons) == 0 {
		fmt.Println("No seasons recorded yet.")
		fmt.Println("Run 'gridiron season' or play a mode to make history.")
		return
	}

	fmt.Println("Season history:")
	fmt.Println()
	fmt.Printf("  %-6s %-10s %-28s %s\n", "Year", "Mode", "Champion", "MVP")
	fmt.Printf("  %-6s %-10s %-28s %s\n", "----", "----", "--------", "---")
	for _, s := range seasons {
		fmt.Printf("  %-6d %-10s %-28s %s\n", s.Year, s.ModeID, s.Champion, s.MVP)
	}

	counts, err := store.ChampionCounts(flagHistoryMode)
	if err != nil || len(counts) == 0 {
		return
	}

	type tally struct {
		name string
		n    int
	}
	tallies := make([]tally, 0, len(counts))
	for name, n := range counts {
		tallies = append(tallies, tally{name, n})
	}
	sort.Slice(tallies, func(i, j int) bool {
		if tallies[i].n != tallies[j].n {
			return tallies[i].n > tallies[j].n
		}
		return tallies[i].name < tallies[j].name
	})

	fmt.Println()
	fmt.Println("Championships:")
	for _, t := range tallies {
		fmt.Printf("  %2d  %s\n", t.n, t.name)
	}
}
