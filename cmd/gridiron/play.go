package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-gridiron/internal/core"
	"github.com/vovakirdan/tui-gridiron/internal/modes/career"
	"github.com/vovakirdan/tui-gridiron/internal/modes/franchise"
	"github.com/vovakirdan/tui-gridiron/internal/platform/tui"
	"github.com/vovakirdan/tui-gridiron/internal/registry"
	"github.com/vovakirdan/tui-gridiron/internal/storage"
)

var (
	flagConfig   string
	flagName     string
	flagPosition string
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Start a play mode",
	Long: `Start the specified play mode.

Controls:
  0-9        - Choose menu entries
  Up/Down    - Navigate lists
  Enter      - Confirm
  B/Esc      - Back
  P          - Pause the season animation
  Q/Ctrl+C   - Quit

Examples:
  gridiron play franchise
  gridiron play career --name "Jay Star" --position QB
  gridiron play franchise --config ./my-league.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom league config YAML")
	playCmd.Flags().StringVar(&flagName, "name", "", "Career mode: created player's name")
	playCmd.Flags().StringVar(&flagPosition, "position", "", "Career mode: created player's position (QB, WR, RB, TE, LB)")
}

func runPlay(cmd *cobra.Command, args []string) {
	modeID := args[0]

	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Available modes: career, franchise")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and player options before creation
	switch modeID {
	case "career":
		career.SetConfigPath(flagConfig)
		career.SetPlayerName(flagName)
		career.SetPosition(flagPosition)
	case "franchise":
		franchise.SetConfigPath(flagConfig)
	}

	mode, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
		os.Exit(1)
	}

	// Open season storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open league database: %v\n", err)
		// Continue without storage - the mode still works
		store = nil
	}

	runErr := tui.Run(mode, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running mode: %v\n", runErr)
		os.Exit(1)
	}
}
