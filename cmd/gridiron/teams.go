package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gridiron/internal/config"
)

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List the league's franchises",
	Long: `Shows the franchises the league is built from, grouped by
conference and division. Use --config to point at a custom league file.`,
	Run: runTeams,
}

func init() {
	teamsCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom league config YAML")
}

func runTeams(cmd *cobra.Command, args []string) {
	lc, err := config.LoadLeague(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading league config: %v\n", err)
		os.Exit(1)
	}

	if len(lc.Franchises) == 0 {
		fmt.Println("No franchises configured.")
		return
	}

	// Group by conference, then division, preserving config order
	type divKey struct{ conf, div string }
	order := make([]divKey, 0)
	groups := make(map[divKey][]config.Franchise)
	for _, f := range lc.Franchises {
		k := divKey{f.Conference, f.Division}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], f)
	}

	fmt.Printf("League franchises (%d teams):\n", len(lc.Franchises))
	for _, k := range order {
		fmt.Printf("\n  %s %s\n", k.conf, k.div)
		for _, f := range groups[k] {
			fmt.Printf("    %s %s\n", f.City, f.Name)
		}
	}

	fmt.Println()
	fmt.Println("Run 'gridiron play franchise' to take them through a season.")
}
