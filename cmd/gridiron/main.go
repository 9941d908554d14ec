// gridiron is a TUI football league simulator for the terminal.
//
// Usage:
//
//	gridiron teams           - List the league's franchises
//	gridiron play <mode>     - Start a play mode (career, franchise)
//	gridiron menu            - Start the interactive mode picker
//	gridiron season          - Simulate seasons headlessly
//	gridiron history         - Show recorded season history
//	gridiron serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible simulations
//	--db <path>     - Set database path (default: ~/.gridiron/league.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/tui-gridiron/internal/modes/career"
	_ "github.com/vovakirdan/tui-gridiron/internal/modes/franchise"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridiron",
	Short: "Gridiron - a football league simulator in your terminal",
	Long: `Gridiron is a terminal-based American football league simulator.
Build a career season by season, or run a whole franchise.

Available commands:
  teams    - List the league's franchises
  play     - Start a play mode directly
  menu     - Interactive mode picker
  season   - Simulate seasons headlessly
  history  - View recorded season history
  serve    - Start SSH server for remote play

Examples:
  gridiron teams
  gridiron play career --name "Jay Star" --position QB
  gridiron play franchise
  gridiron season --count 5
  gridiron serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gridiron/league.db", "Path to league database")

	// Add subcommands
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(seasonCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}
