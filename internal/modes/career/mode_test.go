package career

import (
	"testing"

	"github.com/vovakirdan/tui-gridiron/internal/core"
	"github.com/vovakirdan/tui-gridiron/internal/sim"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func digitFrame(d int) core.InputFrame {
	in := core.NewInputFrame()
	in.SetDigit(d)
	return in
}

func actionFrame(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestResetCreatesPlayerOnATeam(t *testing.T) {
	SetPlayerName("Test Star")
	SetPosition("WR")
	defer func() {
		playerName = "Rookie"
		position = sim.QB
	}()

	m := New()
	m.Reset(testConfig(42))

	p := m.career.Player
	if p.Name != "Test Star" {
		t.Errorf("Player name = %q, want %q", p.Name, "Test Star")
	}
	if p.Position != sim.WR {
		t.Errorf("Player position = %v, want WR", p.Position)
	}
	if !p.Custom {
		t.Error("Created player should be marked custom")
	}

	team := m.career.League.TeamByID(p.TeamID)
	if team == nil {
		t.Fatal("Player not placed on any team")
	}
	onRoster := false
	for _, q := range team.Players {
		if q == p {
			onRoster = true
		}
	}
	if !onRoster {
		t.Error("Player missing from team roster")
	}
}

func TestSetPositionRejectsInvalid(t *testing.T) {
	SetPosition("QB")
	SetPosition("KICKER")

	if position != sim.QB {
		t.Errorf("Invalid position overwrote the previous one: %v", position)
	}
}

func TestPlaySeasonFlow(t *testing.T) {
	m := New()
	m.Reset(testConfig(7))
	startYear := m.career.League.Year

	m.Step(digitFrame(1))

	if m.scr != screenSimulating {
		t.Fatalf("Expected simulating screen, got %v", m.scr)
	}
	if m.career.League.Year != startYear+1 {
		t.Errorf("Season should resolve immediately: year = %d, want %d",
			m.career.League.Year, startYear+1)
	}

	state := m.State()
	if len(state.Seasons) != 1 {
		t.Fatalf("Expected 1 pending season record, got %d", len(state.Seasons))
	}
	if state.Seasons[0].Champion == "" || state.Seasons[0].MVP == "" {
		t.Errorf("Season record incomplete: %+v", state.Seasons[0])
	}

	m.Step(actionFrame(core.ActionConfirm))
	if m.scr != screenResult {
		t.Fatalf("Expected result screen, got %v", m.scr)
	}
}

func TestResultReturnsToMenuWhileActive(t *testing.T) {
	m := New()
	m.Reset(testConfig(7))

	m.Step(digitFrame(1))
	m.Step(actionFrame(core.ActionConfirm))
	m.Step(actionFrame(core.ActionConfirm))

	if m.career.Player.Retired {
		t.Skip("player retired on this seed")
	}
	if m.scr != screenMenu {
		t.Errorf("Expected menu after result, got screen %v", m.scr)
	}
}

func TestRetirementEndsCareer(t *testing.T) {
	m := New()
	m.Reset(testConfig(19))

	// Age the player far past any realistic career
	m.career.Player.Age = 80

	m.Step(digitFrame(1))
	if !m.career.Player.Retired {
		t.Fatal("Ancient player did not retire")
	}

	m.Step(actionFrame(core.ActionConfirm)) // simulating -> result
	m.Step(actionFrame(core.ActionConfirm)) // result -> retired
	if m.scr != screenRetired {
		t.Fatalf("Expected retired screen, got %v", m.scr)
	}

	result := m.Step(actionFrame(core.ActionConfirm))
	if !result.State.Done {
		t.Error("Confirm on the retired screen should end the session")
	}
}

func TestTradeRequestFromMenu(t *testing.T) {
	m := New()
	m.Reset(testConfig(5))

	m.Step(digitFrame(2))

	if !m.career.TradeRequested {
		t.Error("Digit 2 should request a trade")
	}
	if len(m.career.Messages) == 0 {
		t.Error("Trade request should record a GM message")
	}
}

func TestMenuScreensAndBack(t *testing.T) {
	tests := []struct {
		name  string
		digit int
		want  screen
	}{
		{"summary", 3, screenSummary},
		{"standings", 4, screenStandings},
		{"messages", 5, screenMessages},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			m.Reset(testConfig(1))

			m.Step(digitFrame(tt.digit))
			if m.scr != tt.want {
				t.Errorf("After digit %d, screen = %v, want %v", tt.digit, m.scr, tt.want)
			}

			m.Step(actionFrame(core.ActionBack))
			if m.scr != screenMenu {
				t.Error("Back should return to the menu")
			}
		})
	}
}

func TestQuitEndsSession(t *testing.T) {
	m := New()
	m.Reset(testConfig(1))

	result := m.Step(actionFrame(core.ActionQuit))
	if !result.State.Done {
		t.Error("Quit should end the session")
	}
}

func TestRenderDoesNotPanic(t *testing.T) {
	dst := core.NewScreen(80, 24)

	screens := []struct {
		name string
		prep func(m *Mode)
	}{
		{"menu", func(m *Mode) {}},
		{"summary", func(m *Mode) { m.Step(digitFrame(3)) }},
		{"standings", func(m *Mode) { m.Step(digitFrame(4)) }},
		{"messages", func(m *Mode) { m.Step(digitFrame(5)) }},
		{"simulating", func(m *Mode) { m.Step(digitFrame(1)) }},
		{"result", func(m *Mode) {
			m.Step(digitFrame(1))
			m.Step(actionFrame(core.ActionConfirm))
		}},
		{"retired", func(m *Mode) {
			m.career.Player.Age = 80
			m.Step(digitFrame(1))
			m.Step(actionFrame(core.ActionConfirm))
			m.Step(actionFrame(core.ActionConfirm))
		}},
	}
	for _, s := range screens {
		t.Run(s.name, func(t *testing.T) {
			m := New()
			m.Reset(testConfig(9))
			s.prep(m)
			m.Render(dst)
		})
	}
}
