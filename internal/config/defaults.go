package config

import (
	_ "embed"
)

//go:embed defaults/league.yaml
var defaultLeagueYAML []byte

// DefaultLeagueConfig returns the built-in league configuration. Values
// mirror defaults/league.yaml and exist as a last-resort fallback if the
// embedded YAML fails to parse.
func DefaultLeagueConfig() LeagueConfig {
	return LeagueConfig{
		Season: SeasonConfig{
			Games:        17,
			PlayoffTeams: 14,
			StartYear:    2025,
			MinScore:     10,
			MaxScore:     40,
		},
		Injuries: InjuryConfig{
			ChancePerGame: 0.05,
			SevereChance:  0.2,
		},
		FreeAgency: FreeAgencyConfig{
			MinYears:      1,
			MaxYears:      5,
			SalaryPerYear: 5_000_000,
		},
		Roster: []RosterSlot{
			{Position: "QB", Count: 1, MinAge: 22, MaxAge: 34, MinOverall: 70, MaxOverall: 90, MinContractYears: 1, MaxContractYears: 5, SalaryPerYear: 15_000_000},
			{Position: "WR", Count: 3, MinAge: 21, MaxAge: 32, MinOverall: 65, MaxOverall: 90, MinContractYears: 1, MaxContractYears: 4, SalaryPerYear: 8_000_000},
			{Position: "RB", Count: 2, MinAge: 21, MaxAge: 30, MinOverall: 70, MaxOverall: 88, MinContractYears: 1, MaxContractYears: 4, SalaryPerYear: 7_000_000},
			{Position: "TE", Count: 2, MinAge: 22, MaxAge: 32, MinOverall: 68, MaxOverall: 88, MinContractYears: 1, MaxContractYears: 4, SalaryPerYear: 6_000_000},
			{Position: "LB", Count: 4, MinAge: 22, MaxAge: 32, MinOverall: 70, MaxOverall: 90, MinContractYears: 1, MaxContractYears: 4, SalaryPerYear: 6_000_000},
		},
		Franchises: []Franchise{
			{City: "Buffalo", Name: "Bills", Conference: "AFC", Division: "East"},
			{City: "Miami", Name: "Dolphins", Conference: "AFC", Division: "East"},
			{City: "New England", Name: "Patriots", Conference: "AFC", Division: "East"},
			{City: "New York", Name: "Jets", Conference: "AFC", Division: "East"},
			{City: "Kansas City", Name: "Chiefs", Conference: "AFC", Division: "West"},
			{City: "Las Vegas", Name: "Raiders", Conference: "AFC", Division: "West"},
			{City: "Los Angeles", Name: "Chargers", Conference: "AFC", Division: "West"},
			{City: "Denver", Name: "Broncos", Conference: "AFC", Division: "West"},
			{City: "Dallas", Name: "Cowboys", Conference: "NFC", Division: "East"},
			{City: "Philadelphia", Name: "Eagles", Conference: "NFC", Division: "East"},
			{City: "New York", Name: "Giants", Conference: "NFC", Division: "East"},
			{City: "Washington", Name: "Commanders", Conference: "NFC", Division: "East"},
		},
	}
}
