package storage

import (
	"math/rand"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-gridiron/internal/config"
	"github.com/vovakirdan/tui-gridiron/internal/core"
	"github.com/vovakirdan/tui-gridiron/internal/sim"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveAndQuerySeasons(t *testing.T) {
	store := openTestStore(t)

	records := []core.SeasonRecord{
		{Year: 2025, Champion: "Kansas City Chiefs", MVP: "Kansas City QB1"},
		{Year: 2026, Champion: "Buffalo Bills", MVP: "Buffalo QB1"},
		{Year: 2027, Champion: "Kansas City Chiefs", MVP: "Dallas RB1"},
	}
	for _, rec := range records {
		if _, err := store.SaveSeason("franchise", rec); err != nil {
			t.Fatalf("SaveSeason() failed: %v", err)
		}
	}

	// Different mode
	if _, err := store.SaveSeason("career", core.SeasonRecord{Year: 2025, Champion: "Detroit Lions", MVP: "Test Star"}); err != nil {
		t.Fatalf("SaveSeason() failed: %v", err)
	}

	entries, err := store.Seasons("franchise", 10)
	if err != nil {
		t.Fatalf("Seasons() failed: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("Expected 3 seasons, got %d", len(entries))
	}

	// Should be sorted by year descending
	if entries[0].Year != 2027 || entries[2].Year != 2025 {
		t.Errorf("Seasons not sorted by year descending: %v, %v, %v",
			entries[0].Year, entries[1].Year, entries[2].Year)
	}
	if entries[0].MVP != "Dallas RB1" {
		t.Errorf("Expected MVP 'Dallas RB1', got %q", entries[0].MVP)
	}

	// Empty mode matches everything
	all, err := store.Seasons("", 10)
	if err != nil {
		t.Fatalf("Seasons() failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("Expected 4 seasons across all modes, got %d", len(all))
	}
}

func TestSeasonsLimit(t *testing.T) {
	store := openTestStore(t)

	for year := 2025; year < 2035; year++ {
		if _, err := store.SaveSeason("franchise", core.SeasonRecord{Year: year, Champion: "X", MVP: "Y"}); err != nil {
			t.Fatalf("SaveSeason() failed: %v", err)
		}
	}

	entries, err := store.Seasons("franchise", 3)
	if err != nil {
		t.Fatalf("Seasons() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("Expected 3 seasons with limit 3, got %d", len(entries))
	}
	if entries[0].Year != 2034 {
		t.Errorf("Expected most recent year 2034 first, got %d", entries[0].Year)
	}
}

func TestChampionCounts(t *testing.T) {
	store := openTestStore(t)

	champs := []string{"Kansas City Chiefs", "Buffalo Bills", "Kansas City Chiefs"}
	for i, c := range champs {
		if _, err := store.SaveSeason("franchise", core.SeasonRecord{Year: 2025 + i, Champion: c, MVP: "Y"}); err != nil {
			t.Fatalf("SaveSeason() failed: %v", err)
		}
	}

	counts, err := store.ChampionCounts("franchise")
	if err != nil {
		t.Fatalf("ChampionCounts() failed: %v", err)
	}

	if counts["Kansas City Chiefs"] != 2 {
		t.Errorf("Expected 2 titles for Kansas City Chiefs, got %d", counts["Kansas City Chiefs"])
	}
	if counts["Buffalo Bills"] != 1 {
		t.Errorf("Expected 1 title for Buffalo Bills, got %d", counts["Buffalo Bills"])
	}
}

func TestClearSeasons(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveSeason("franchise", core.SeasonRecord{Year: 2025, Champion: "X", MVP: "Y"}); err != nil {
		t.Fatalf("SaveSeason() failed: %v", err)
	}
	if _, err := store.SaveSeason("career", core.SeasonRecord{Year: 2025, Champion: "X", MVP: "Y"}); err != nil {
		t.Fatalf("SaveSeason() failed: %v", err)
	}

	if err := store.ClearSeasons("franchise"); err != nil {
		t.Fatalf("ClearSeasons() failed: %v", err)
	}

	entries, err := store.Seasons("franchise", 10)
	if err != nil {
		t.Fatalf("Seasons() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected 0 franchise seasons after clear, got %d", len(entries))
	}

	kept, err := store.Seasons("career", 10)
	if err != nil {
		t.Fatalf("Seasons() failed: %v", err)
	}
	if len(kept) != 1 {
		t.Errorf("Expected career seasons untouched, got %d", len(kept))
	}
}

func TestSaveLoadLeagueRoundTrip(t *testing.T) {
	store := openTestStore(t)

	cfg := config.DefaultLeagueConfig()
	league := sim.NewLeague(cfg, rand.New(rand.NewSource(7)))
	league.GenerateRosters()
	league.RunFullSeason()
	snap := league.Snapshot()

	if err := store.SaveLeague("slot1", snap); err != nil {
		t.Fatalf("SaveLeague() failed: %v", err)
	}

	loaded, err := store.LoadLeague("slot1")
	if err != nil {
		t.Fatalf("LoadLeague() failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("LoadLeague() returned nil for existing save")
	}

	if !reflect.DeepEqual(*loaded, snap) {
		t.Error("Loaded snapshot differs from the saved one")
	}
}

func TestSaveLeagueReplacesSlot(t *testing.T) {
	store := openTestStore(t)

	cfg := config.DefaultLeagueConfig()
	league := sim.NewLeague(cfg, rand.New(rand.NewSource(7)))
	league.GenerateRosters()

	if err := store.SaveLeague("slot1", league.Snapshot()); err != nil {
		t.Fatalf("SaveLeague() failed: %v", err)
	}

	league.RunFullSeason()
	if err := store.SaveLeague("slot1", league.Snapshot()); err != nil {
		t.Fatalf("SaveLeague() overwrite failed: %v", err)
	}

	saves, err := store.ListSaves()
	if err != nil {
		t.Fatalf("ListSaves() failed: %v", err)
	}
	if len(saves) != 1 {
		t.Fatalf("Expected 1 save slot, got %d", len(saves))
	}
	if saves[0].Year != league.Year {
		t.Errorf("Expected slot year %d after overwrite, got %d", league.Year, saves[0].Year)
	}
}

func TestLoadLeagueMissing(t *testing.T) {
	store := openTestStore(t)

	loaded, err := store.LoadLeague("nope")
	if err != nil {
		t.Fatalf("LoadLeague() failed: %v", err)
	}
	if loaded != nil {
		t.Error("Expected nil for a missing save slot")
	}
}

func TestDeleteSave(t *testing.T) {
	store := openTestStore(t)

	cfg := config.DefaultLeagueConfig()
	league := sim.NewLeague(cfg, rand.New(rand.NewSource(3)))
	league.GenerateRosters()

	if err := store.SaveLeague("doomed", league.Snapshot()); err != nil {
		t.Fatalf("SaveLeague() failed: %v", err)
	}
	if err := store.DeleteSave("doomed"); err != nil {
		t.Fatalf("DeleteSave() failed: %v", err)
	}

	loaded, err := store.LoadLeague("doomed")
	if err != nil {
		t.Fatalf("LoadLeague() failed: %v", err)
	}
	if loaded != nil {
		t.Error("Save slot still present after delete")
	}
}
