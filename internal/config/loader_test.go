package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadLeagueEmbeddedDefaults(t *testing.T) {
	cfg, err := LoadLeague("")
	if err != nil {
		t.Fatalf("LoadLeague() failed: %v", err)
	}

	if cfg.Season.Games != 17 {
		t.Errorf("Season.Games = %d, expected 17", cfg.Season.Games)
	}
	if cfg.Season.PlayoffTeams != 14 {
		t.Errorf("Season.PlayoffTeams = %d, expected 14", cfg.Season.PlayoffTeams)
	}
	if cfg.Injuries.ChancePerGame != 0.05 {
		t.Errorf("Injuries.ChancePerGame = %v, expected 0.05", cfg.Injuries.ChancePerGame)
	}
	if cfg.Injuries.SevereChance != 0.2 {
		t.Errorf("Injuries.SevereChance = %v, expected 0.2", cfg.Injuries.SevereChance)
	}
	if len(cfg.Franchises) != 12 {
		t.Errorf("len(Franchises) = %d, expected 12", len(cfg.Franchises))
	}

	// Embedded YAML and the hardcoded fallback must agree
	def := DefaultLeagueConfig()
	if cfg.Season != def.Season {
		t.Errorf("embedded season config %+v differs from hardcoded default %+v", cfg.Season, def.Season)
	}
	if len(cfg.Roster) != len(def.Roster) {
		t.Fatalf("embedded roster has %d slots, hardcoded default has %d", len(cfg.Roster), len(def.Roster))
	}
	for i := range cfg.Roster {
		if cfg.Roster[i] != def.Roster[i] {
			t.Errorf("roster slot %d: embedded %+v differs from default %+v", i, cfg.Roster[i], def.Roster[i])
		}
	}
}

func TestLoadLeagueRosterShape(t *testing.T) {
	cfg, err := LoadLeague("")
	if err != nil {
		t.Fatalf("LoadLeague() failed: %v", err)
	}

	counts := make(map[string]int)
	for _, slot := range cfg.Roster {
		counts[slot.Position] += slot.Count
	}

	expected := map[string]int{"QB": 1, "WR": 3, "RB": 2, "TE": 2, "LB": 4}
	for pos, n := range expected {
		if counts[pos] != n {
			t.Errorf("roster %s count = %d, expected %d", pos, counts[pos], n)
		}
	}
}

func TestLoadLeagueCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "league.yaml")

	custom := `
season:
  games: 4
  playoff_teams: 2
  start_year: 1999
  min_score: 0
  max_score: 7
`
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatalf("cannot write temp config: %v", err)
	}

	cfg, err := LoadLeague(path)
	if err != nil {
		t.Fatalf("LoadLeague(%s) failed: %v", path, err)
	}

	if cfg.Season.Games != 4 {
		t.Errorf("Season.Games = %d, expected 4", cfg.Season.Games)
	}
	if cfg.Season.StartYear != 1999 {
		t.Errorf("Season.StartYear = %d, expected 1999", cfg.Season.StartYear)
	}
}

func TestLoadLeagueMissingCustomPath(t *testing.T) {
	_, err := LoadLeague(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing custom config path")
	}
}
