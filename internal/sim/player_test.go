package sim

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-gridiron/internal/config"
)

func TestContractAdvanceYear(t *testing.T) {
	c := NewContract(2, 5_000_000)

	if c.Expired() {
		t.Error("fresh 2-year contract should not be expired")
	}

	c.AdvanceYear()
	if c.Years != 1 || c.CurrentYear != 2 {
		t.Errorf("after one advance: years=%d currentYear=%d, expected 1 and 2", c.Years, c.CurrentYear)
	}

	c.AdvanceYear()
	if !c.Expired() {
		t.Error("contract should be expired after advancing through all years")
	}

	// Advancing an expired contract is a no-op; years never go negative
	c.AdvanceYear()
	if c.Years != 0 {
		t.Errorf("years = %d after advancing expired contract, expected 0", c.Years)
	}
	if c.CurrentYear != 3 {
		t.Errorf("currentYear = %d, expected 3", c.CurrentYear)
	}
}

func TestHealthyAndTickInjury(t *testing.T) {
	p := NewPlayer("Test LB1", LB, 25, 80)

	if !p.Healthy() {
		t.Error("player with no injury should be healthy")
	}

	p.Injury = &Injury{Description: "sprain", WeeksOut: 2}
	if p.Healthy() {
		t.Error("player with 2 weeks out should not be healthy")
	}

	p.TickInjury()
	if p.Injury == nil || p.Injury.WeeksOut != 1 {
		t.Error("injury should tick down to 1 week")
	}

	p.TickInjury()
	if p.Injury != nil {
		t.Error("injury should clear once no weeks remain")
	}
	if !p.Healthy() {
		t.Error("player should be healthy after injury clears")
	}
}

func TestRollInjuryOdds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	t.Run("certain sprain", func(t *testing.T) {
		p := NewPlayer("Test RB1", RB, 24, 80)
		p.RollInjury(rng, config.InjuryConfig{ChancePerGame: 1.0, SevereChance: 0.0})
		if p.Injury == nil {
			t.Fatal("injury chance 1.0 must injure")
		}
		if p.Injury.Severe {
			t.Error("severe chance 0.0 must produce a sprain")
		}
		if p.Injury.WeeksOut < 1 || p.Injury.WeeksOut > 4 {
			t.Errorf("sprain weeks out = %d, expected 1-4", p.Injury.WeeksOut)
		}
		if p.Injury.Description != "sprain" {
			t.Errorf("description = %q, expected sprain", p.Injury.Description)
		}
	})

	t.Run("certain severe", func(t *testing.T) {
		p := NewPlayer("Test RB2", RB, 24, 80)
		p.RollInjury(rng, config.InjuryConfig{ChancePerGame: 1.0, SevereChance: 1.0})
		if p.Injury == nil || !p.Injury.Severe {
			t.Fatal("severe chance 1.0 must produce a severe injury")
		}
		if p.Injury.WeeksOut < 5 || p.Injury.WeeksOut > 20 {
			t.Errorf("severe weeks out = %d, expected 5-20", p.Injury.WeeksOut)
		}
		if p.Injury.Description != "torn ligament" {
			t.Errorf("description = %q, expected torn ligament", p.Injury.Description)
		}
	})

	t.Run("never", func(t *testing.T) {
		p := NewPlayer("Test RB3", RB, 24, 80)
		for i := 0; i < 100; i++ {
			p.RollInjury(rng, config.InjuryConfig{ChancePerGame: 0.0, SevereChance: 1.0})
		}
		if p.Injury != nil {
			t.Error("injury chance 0.0 must never injure")
		}
	})
}

func TestUpdateOverallFromStats(t *testing.T) {
	tests := []struct {
		name     string
		overall  int
		stats    StatLine
		expected int
	}{
		{
			name:     "no stats is a no-op",
			overall:  70,
			stats:    nil,
			expected: 70,
		},
		{
			name:     "strong passing season",
			overall:  70,
			stats:    StatLine{StatPassYards: 5000, StatPassTDs: 40},
			expected: 76, // score 130, delta floor(130/20)=6
		},
		{
			name:     "monster season clamps delta to +10",
			overall:  70,
			stats:    StatLine{StatPassYards: 40000, StatPassTDs: 100},
			expected: 80, // score 600, delta clamped to 10
		},
		{
			name:     "rating never exceeds the cap",
			overall:  95,
			stats:    StatLine{StatPassYards: 40000, StatPassTDs: 100},
			expected: 99,
		},
		{
			name:     "receiving stats carry no weight",
			overall:  70,
			stats:    StatLine{StatRecYards: 2000, StatRecTDs: 25},
			expected: 70, // score 0, delta 0
		},
		{
			name:     "quiet season leaves rating unchanged",
			overall:  70,
			stats:    StatLine{StatTackles: 50}, // score 10, delta 0
			expected: 70,
		},
		{
			name:     "tackles move the rating",
			overall:  70,
			stats:    StatLine{StatTackles: 2500}, // score 500, delta clamped to 10
			expected: 80,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer("Test P", QB, 25, tc.overall)
			p.LastSeasonStats = tc.stats
			p.UpdateOverallFromStats()
			if p.Overall != tc.expected {
				t.Errorf("overall = %d, expected %d", p.Overall, tc.expected)
			}
			if p.Overall < MinOverall || p.Overall > MaxOverall {
				t.Errorf("overall %d outside [%d, %d]", p.Overall, MinOverall, MaxOverall)
			}
		})
	}
}

func TestMaybeRetirePropensity(t *testing.T) {
	// Age 36, overall 55, 16th season: propensity 10 (age) + 10 (rating)
	// + 3 (career length) = 23. Replay the roll with a cloned RNG and
	// verify the decision matches roll <= propensity exactly.
	const propensity = 23

	for seed := int64(0); seed < 20; seed++ {
		roll := randBetween(rand.New(rand.NewSource(seed)), 1, 100)

		p := NewPlayer("Old QB", QB, 36, 55)
		p.CareerYears = 15 // MaybeRetire counts this season first -> 16
		p.MaybeRetire(rand.New(rand.NewSource(seed)))

		expectRetired := roll <= propensity
		if p.Retired != expectRetired {
			t.Errorf("seed %d: roll %d, retired = %v, expected %v", seed, roll, p.Retired, expectRetired)
		}
		if p.CareerYears != 16 {
			t.Errorf("seed %d: careerYears = %d, expected 16", seed, p.CareerYears)
		}
		if expectRetired && p.Age != 36 {
			t.Errorf("seed %d: retiring player aged to %d, age should freeze", seed, p.Age)
		}
		if !expectRetired && p.Age != 37 {
			t.Errorf("seed %d: active player age = %d, expected 37", seed, p.Age)
		}
	}
}

func TestMaybeRetireYoungStarNeverRetires(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	p := NewPlayer("Young WR", WR, 23, 85)

	// Zero propensity: no roll in [1, 100] retires this player
	p.MaybeRetire(rng)
	if p.Retired {
		t.Error("player with zero propensity must not retire")
	}
	if p.Age != 24 || p.CareerYears != 1 {
		t.Errorf("age=%d careerYears=%d, expected 24 and 1", p.Age, p.CareerYears)
	}
}

func TestEvaluateHallOfFame(t *testing.T) {
	tests := []struct {
		name      string
		accolades []string
		stats     StatLine
		expected  bool
	}{
		{
			name:     "no merits",
			expected: false,
		},
		{
			name:      "two MVPs",
			accolades: []string{"MVP 2025", "MVP 2027"},
			expected:  true,
		},
		{
			name:      "two Super Bowl MVPs",
			accolades: []string{"Super Bowl MVP 2025", "Super Bowl MVP 2026"},
			expected:  true,
		},
		{
			name: "MVP substring counts Super Bowl MVP toward the MVP tally",
			accolades: []string{"MVP 2025", "Super Bowl MVP 2026"},
			expected:  true,
		},
		{
			name:      "single MVP is not enough",
			accolades: []string{"MVP 2025", "Rookie of the Year 2020"},
			expected:  false,
		},
		{
			name:     "career passing yards",
			stats:    StatLine{StatPassYards: 60001},
			expected: true,
		},
		{
			name:     "career passing yards at threshold is not enough",
			stats:    StatLine{StatPassYards: 60000},
			expected: false,
		},
		{
			name:     "career rushing yards",
			stats:    StatLine{StatRushYards: 15001},
			expected: true,
		},
		{
			name:     "career tackles",
			stats:    StatLine{StatTackles: 2001},
			expected: true,
		},
		{
			name:     "receiving production alone never qualifies",
			stats:    StatLine{StatRecYards: 100000, StatRecTDs: 500},
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer("Candidate", QB, 38, 70)
			p.Retired = true
			p.Accolades = tc.accolades
			if tc.stats != nil {
				p.CareerStats = tc.stats
			}
			p.EvaluateHallOfFame()
			if p.HallOfFame != tc.expected {
				t.Errorf("hallOfFame = %v, expected %v", p.HallOfFame, tc.expected)
			}
		})
	}
}

func TestNewPlayerUniqueIDs(t *testing.T) {
	// Two players sharing name, position and age must still be distinct
	a := NewPlayer("Twin", LB, 25, 80)
	b := NewPlayer("Twin", LB, 25, 80)

	if a.ID == b.ID {
		t.Errorf("two players share id %d", a.ID)
	}
}

func TestNewPlayerClampsOverall(t *testing.T) {
	if p := NewPlayer("Low", LB, 25, 10); p.Overall != MinOverall {
		t.Errorf("overall = %d, expected clamp to %d", p.Overall, MinOverall)
	}
	if p := NewPlayer("High", LB, 25, 150); p.Overall != MaxOverall {
		t.Errorf("overall = %d, expected clamp to %d", p.Overall, MaxOverall)
	}
}
