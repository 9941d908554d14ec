package sim

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-gridiron/internal/config"
)

// newTestCareer starts a career on a fully rostered league with the
// tracked player placed on the first team.
func newTestCareer(t *testing.T, seed int64) *Career {
	t.Helper()
	l := newTestLeague(t, seed)
	p := NewCustomPlayer("Test Star", QB)
	l.Teams[0].AddPlayer(p)
	return NewCareer(l, p)
}

func TestRequestTrade(t *testing.T) {
	c := newTestCareer(t, 8)

	c.RequestTrade()

	if !c.TradeRequested {
		t.Error("trade request flag not set")
	}
	if len(c.Messages) != 1 {
		t.Fatalf("got %d messages, expected 1", len(c.Messages))
	}
	if !strings.Contains(c.Messages[0], "trade request") {
		t.Errorf("unexpected acknowledgement message: %q", c.Messages[0])
	}
}

func TestProcessTradeWithoutRequestIsNoop(t *testing.T) {
	c := newTestCareer(t, 8)
	before := c.Player.TeamID

	c.ProcessTrade()

	if c.Player.TeamID != before {
		t.Error("player moved without a pending trade request")
	}
	if len(c.Messages) != 0 {
		t.Error("messages recorded without a pending trade request")
	}
}

func TestProcessTradeSameTeamKeepsRequestPending(t *testing.T) {
	// One-team league: the random destination is always the player's
	// current team, so the move never happens and the request stays
	// pending.
	cfg := config.DefaultLeagueConfig()
	cfg.Franchises = cfg.Franchises[:1]
	rng := rand.New(rand.NewSource(6))
	l := NewLeague(cfg, rng)
	l.GenerateRosters()

	p := NewCustomPlayer("Stuck Star", RB)
	l.Teams[0].AddPlayer(p)
	c := NewCareer(l, p)

	c.RequestTrade()
	c.ProcessTrade()

	if !c.TradeRequested {
		t.Error("trade request cleared without an actual move")
	}
	if p.TeamID != l.Teams[0].ID {
		t.Error("player moved in a one-team league")
	}
}

func TestProcessTradeMovesPlayer(t *testing.T) {
	c := newTestCareer(t, 15)
	origin := c.Player.TeamID

	c.RequestTrade()

	// The pending flag survives same-team draws, so retry until the
	// player actually moves.
	moved := false
	for i := 0; i < 100 && !moved; i++ {
		c.ProcessTrade()
		moved = !c.TradeRequested
	}
	if !moved {
		t.Fatal("trade never resolved across 100 attempts")
	}

	if c.Player.TeamID == origin {
		t.Error("player still on origin team after resolved trade")
	}
	newTeam := c.League.TeamByID(c.Player.TeamID)
	if newTeam == nil {
		t.Fatal("player's team after trade does not exist")
	}
	onRoster := false
	for _, q := range newTeam.Players {
		if q == c.Player {
			onRoster = true
		}
	}
	if !onRoster {
		t.Error("player missing from destination roster")
	}
	for _, q := range c.League.TeamByID(origin).Players {
		if q == c.Player {
			t.Error("player still on origin roster")
		}
	}

	last := c.Messages[len(c.Messages)-1]
	if !strings.Contains(last, "move you in a trade") {
		t.Errorf("expected destination GM trade message, got %q", last)
	}
}

func TestCheckCaptaincyMessage(t *testing.T) {
	// Tracked player alone on the roster: the captaincy re-roll must
	// pick them and record the announcement.
	cfg := config.DefaultLeagueConfig()
	cfg.Franchises = cfg.Franchises[:2]
	rng := rand.New(rand.NewSource(2))
	l := NewLeague(cfg, rng)

	p := NewCustomPlayer("Solo Star", WR)
	l.Teams[0].AddPlayer(p)
	c := NewCareer(l, p)

	c.CheckCaptaincy()

	if !p.Captain {
		t.Error("sole roster player not made captain")
	}
	if len(c.Messages) != 1 || !strings.Contains(c.Messages[0], "team captain") {
		t.Errorf("expected captaincy announcement, got %v", c.Messages)
	}
}

func TestPlayFullSeasonAdvancesLeague(t *testing.T) {
	c := newTestCareer(t, 23)
	startYear := c.League.Year

	result := c.PlayFullSeason()

	if c.League.Year != startYear+1 {
		t.Errorf("league year = %d, expected %d", c.League.Year, startYear+1)
	}
	if result.Year != startYear {
		t.Errorf("result year = %d, expected %d", result.Year, startYear)
	}
	if len(c.League.History) != 1 {
		t.Errorf("history length = %d, expected 1", len(c.League.History))
	}
}

func TestPlayFullSeasonRetirementMessage(t *testing.T) {
	c := newTestCareer(t, 19)

	// Age 80 alone yields propensity (80-34)*5 = 230: every roll retires
	c.Player.Age = 80

	c.PlayFullSeason()

	if !c.Player.Retired {
		t.Fatal("ancient player did not retire")
	}
	found := false
	for _, m := range c.Messages {
		if strings.Contains(m, "has retired") {
			found = true
		}
	}
	if !found {
		t.Errorf("no retirement message recorded, messages: %v", c.Messages)
	}
}

func TestSummaryIdempotent(t *testing.T) {
	c := newTestCareer(t, 27)
	c.PlayFullSeason()

	a := c.Summary()
	b := c.Summary()

	if !reflect.DeepEqual(a, b) {
		t.Errorf("summaries differ without intervening mutation:\n%+v\n%+v", a, b)
	}
}

func TestSummaryKeepsLastTenMessages(t *testing.T) {
	c := newTestCareer(t, 3)

	for i := 0; i < 15; i++ {
		c.addMessage(strings.Repeat("x", i+1))
	}

	s := c.Summary()
	if len(s.Messages) != 10 {
		t.Fatalf("summary has %d messages, expected 10", len(s.Messages))
	}
	if s.Messages[0] != strings.Repeat("x", 6) {
		t.Error("summary did not keep the most recent 10 messages")
	}
	if s.Messages[9] != strings.Repeat("x", 15) {
		t.Error("summary dropped the newest message")
	}
}

func TestSummarySnapshotDoesNotAliasLiveState(t *testing.T) {
	c := newTestCareer(t, 3)
	c.Player.Accolades = []string{"MVP 2025"}
	c.Player.CareerStats = StatLine{StatPassYards: 100}

	s := c.Summary()
	s.Accolades[0] = "tampered"
	s.CareerStats[StatPassYards] = 0

	if c.Player.Accolades[0] != "MVP 2025" {
		t.Error("summary accolades alias player state")
	}
	if c.Player.CareerStats.Get(StatPassYards) != 100 {
		t.Error("summary stats alias player state")
	}
}
