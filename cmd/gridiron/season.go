package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gridiron/internal/config"
	"github.com/vovakirdan/tui-gridiron/internal/core"
	"github.com/vovakirdan/tui-gridiron/internal/sim"
	"github.com/vovakirdan/tui-gridiron/internal/storage"
)

var (
	flagSeasonCount int
	flagSaveSlot    string
	flagLoadSlot    string
)

var seasonCmd = &cobra.Command{
	Use:   "season",
	Short: "Simulate seasons headlessly",
	Long: `Simulate one or more full seasons without the TUI and print the
results. Season records land in the database like TUI sessions do.

Use --load to resume a saved league and --save to store the league
afterwards under a named slot.

Examples:
  gridiron season
  gridiron season --count 10 --seed 42
  gridiron season --load dynasty --count 3 --save dynasty`,
	Run: runSeason,
}

func init() {
	seasonCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom league config YAML")
	seasonCmd.Flags().IntVar(&flagSeasonCount, "count", 1, "Number of seasons to simulate")
	seasonCmd.Flags().StringVar(&flagSaveSlot, "save", "", "Save the league under this slot name afterwards")
	seasonCmd.Flags().StringVar(&flagLoadSlot, "load", "", "Resume the league saved under this slot name")
}

func runSeason(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gridiron",
	})

	lc, err := config.LoadLeague(flagConfig)
	if err != nil {
		logger.Fatal("cannot load league config", "error", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open league database", "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	var league *sim.League
	if flagLoadSlot != "" {
		if store == nil {
			logger.Fatal("cannot load a save without a database")
		}
		snap, loadErr := store.LoadLeague(flagLoadSlot)
		if loadErr != nil {
			logger.Fatal("cannot load save", "slot", flagLoadSlot, "error", loadErr)
		}
		if snap == nil {
			logger.Fatal("no save with that name", "slot", flagLoadSlot)
		}
		league = sim.RestoreLeague(*snap, lc, rng)
		logger.Info("resumed league", "slot", flagLoadSlot, "year", league.Year)
	} else {
		league = sim.NewLeague(lc, rng)
		league.GenerateRosters()
		logger.Info("built league", "teams", len(league.Teams), "seed", seed)
	}

	count := flagSeasonCount
	if count < 1 {
		count = 1
	}

	for i := 0; i < count; i++ {
		result := league.RunFullSeason()

		rec := core.SeasonRecord{Year: result.Year}
		if t := league.TeamByID(result.ChampionTeamID); t != nil {
			rec.Champion = t.FullName()
		}
		if pid, ok := result.Awards["MVP"]; ok {
			if p := league.PlayerByID(pid); p != nil {
				rec.MVP = p.Name
			}
		}

		logger.Info("season complete",
			"year", rec.Year,
			"champion", rec.Champion,
			"mvp", rec.MVP,
		)

		if store != nil {
			if _, saveErr := store.SaveSeason("franchise", rec); saveErr != nil {
				logger.Warn("could not record season", "error", saveErr)
			}
		}
	}

	if flagSaveSlot != "" {
		if store == nil {
			logger.Fatal("cannot save the league without a database")
		}
		if saveErr := store.SaveLeague(flagSaveSlot, league.Snapshot()); saveErr != nil {
			logger.Fatal("cannot save league", "slot", flagSaveSlot, "error", saveErr)
		}
		logger.Info("league saved", "slot", flagSaveSlot, "year", league.Year)
	}
}
