package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-gridiron/internal/core"
	"github.com/vovakirdan/tui-gridiron/internal/modes/career"
	"github.com/vovakirdan/tui-gridiron/internal/modes/franchise"
	"github.com/vovakirdan/tui-gridiron/internal/platform/tui"
	"github.com/vovakirdan/tui-gridiron/internal/registry"
	"github.com/vovakirdan/tui-gridiron/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive mode picker",
	Long: `Start the simulator in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After a session ends, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Season history
  Q            - Quit

Examples:
  gridiron menu
  gridiron menu --fps 30
  gridiron menu --db ./league.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom league config YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open season storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open league database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	career.SetConfigPath(flagConfig)
	franchise.SetConfigPath(flagConfig)

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsHistory {
			goBack, histErr := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
			if histErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", histErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from history
		}

		modeID := menuResult.ModeID
		if modeID == "" {
			break
		}

		mode, err := registry.Create(modeID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
			continue
		}

		// Fresh seed per session
		cfg.Seed = time.Now().UnixNano()

		if err := tui.Run(mode, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running mode: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
