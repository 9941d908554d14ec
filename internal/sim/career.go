package sim

import "fmt"

// Number of GM messages the career summary surfaces.
const summaryMessageCount = 10

// Career is a single-player career session over a league: one tracked
// player, a pending-trade flag, and the GM message feed. The league and
// player are shared references; Career owns neither.
type Career struct {
	League *League
	Player *Player

	TradeRequested bool
	Messages       []string
}

// NewCareer starts a career session tracking the given player.
func NewCareer(league *League, player *Player) *Career {
	return &Career{League: league, Player: player}
}

// addMessage stores a GM message to show in menus.
func (c *Career) addMessage(text string) {
	c.Messages = append(c.Messages, text)
}

// CheckCaptaincy re-rolls the tracked player's team captain and records a
// GM message if the tracked player got the nod.
func (c *Career) CheckCaptaincy() {
	team := c.League.TeamByID(c.Player.TeamID)
	if team == nil {
		return
	}

	newCaptain := team.RandomCaptainUpdate(c.League.rng)
	if newCaptain == c.Player && newCaptain != nil {
		c.addMessage(team.GM.AnnounceCaptain(c.Player))
	}
}

// RequestTrade flags a pending trade request and records the GM's
// acknowledgement. The player is not moved until the next season starts.
func (c *Career) RequestTrade() {
	c.TradeRequested = true
	if team := c.League.TeamByID(c.Player.TeamID); team != nil {
		c.addMessage(team.GM.TalkTrade(c.Player, true))
	}
}

// ProcessTrade resolves a pending trade request by moving the player to a
// uniformly random team. Drawing the player's current team means no move
// happens and the request stays pending; the flag only clears on an
// actual move.
func (c *Career) ProcessTrade() {
	if !c.TradeRequested {
		return
	}

	oldTeam := c.League.TeamByID(c.Player.TeamID)
	newTeam := c.League.RandomTeam()

	if newTeam.ID == c.Player.TeamID {
		return
	}

	if oldTeam != nil {
		oldTeam.RemovePlayer(c.Player)
	}
	newTeam.AddPlayer(c.Player)
	c.TradeRequested = false

	c.addMessage(newTeam.GM.TalkTrade(c.Player, false))
}

// PlayFullSeason resolves any pending trade, runs one league season,
// re-rolls captaincy, and records GM messages for awards won by the
// tracked player and for their retirement.
func (c *Career) PlayFullSeason() SeasonResult {
	c.ProcessTrade()

	result := c.League.RunFullSeason()

	c.CheckCaptaincy()

	for awardName, pid := range result.Awards {
		if pid != c.Player.ID {
			continue
		}
		if team := c.League.TeamByID(c.Player.TeamID); team != nil {
			c.addMessage(team.GM.PraisePlayer(c.Player, awardName))
		}
	}

	if c.Player.Retired {
		c.addMessage(fmt.Sprintf("%s has retired from the NFL.", c.Player.Name))
	}

	return result
}

// CareerSummary is a read-only projection of the tracked player's public
// career state plus the recent GM messages.
type CareerSummary struct {
	Name        string
	Position    Position
	Age         int
	Overall     int
	TeamID      int
	CareerYears int
	Accolades   []string
	HallOfFame  bool
	CareerStats StatLine
	Messages    []string
}

// Summary snapshots the tracked player's career. Slices and maps are
// copied, so two summaries taken with no mutation in between are equal
// and neither aliases live state.
func (c *Career) Summary() CareerSummary {
	msgs := c.Messages
	if len(msgs) > summaryMessageCount {
		msgs = msgs[len(msgs)-summaryMessageCount:]
	}

	return CareerSummary{
		Name:        c.Player.Name,
		Position:    c.Player.Position,
		Age:         c.Player.Age,
		Overall:     c.Player.Overall,
		TeamID:      c.Player.TeamID,
		CareerYears: c.Player.CareerYears,
		Accolades:   append([]string(nil), c.Player.Accolades...),
		HallOfFame:  c.Player.HallOfFame,
		CareerStats: c.Player.CareerStats.Clone(),
		Messages:    append([]string(nil), msgs...),
	}
}
