package sim

import (
	"fmt"
	"math/rand"
)

// GM generates team messages for the career layer. TeamID mirrors the
// owning team's id but is informational only.
type GM struct {
	Name   string
	TeamID int
}

// PraisePlayer returns a congratulation message for a fresh accolade.
func (g GM) PraisePlayer(p *Player, accolade string) string {
	return fmt.Sprintf("%s: Great job, %s! That %s is big-time.", g.Name, p.Name, accolade)
}

// AnnounceCaptain returns the captaincy announcement message.
func (g GM) AnnounceCaptain(p *Player) string {
	return fmt.Sprintf("%s: %s, you've been named a team captain.", g.Name, p.Name)
}

// TalkTrade returns the GM's reaction to a trade. When requested is true
// the GM acknowledges the player's request; otherwise it announces a move
// the team initiated.
func (g GM) TalkTrade(p *Player, requested bool) string {
	if requested {
		return fmt.Sprintf("%s: We heard your trade request, %s. We'll explore options.", g.Name, p.Name)
	}
	return fmt.Sprintf("%s: %s, we've decided to move you in a trade.", g.Name, p.Name)
}

// Team owns its players; every rostered player's TeamID equals the
// team's ID, and a player is on at most one roster at a time.
type Team struct {
	ID         int
	Name       string
	City       string
	GM         GM
	Conference string
	Division   string
	Players    []*Player
	Wins       int
	Losses     int
}

// AddPlayer appends a player to the roster and points their back-reference
// at this team.
func (t *Team) AddPlayer(p *Player) {
	p.TeamID = t.ID
	t.Players = append(t.Players, p)
}

// RemovePlayer drops a player from the roster by identity and clears their
// back-reference. Removing a player who is not rostered here still clears
// the back-reference, mirroring add/remove symmetry.
func (t *Team) RemovePlayer(p *Player) {
	kept := t.Players[:0]
	for _, q := range t.Players {
		if q != p {
			kept = append(kept, q)
		}
	}
	t.Players = kept
	p.TeamID = NoTeam
}

// ResetRecord zeroes the win/loss record for a new season.
func (t *Team) ResetRecord() {
	t.Wins = 0
	t.Losses = 0
}

// RecordWin counts a win.
func (t *Team) RecordWin() {
	t.Wins++
}

// RecordLoss counts a loss.
func (t *Team) RecordLoss() {
	t.Losses++
}

// RandomCaptainUpdate re-rolls the team captain among non-retired players,
// weighted by overall rating. All captaincy flags are cleared before the
// new captain is set. Returns nil when no active player is available.
func (t *Team) RandomCaptainUpdate(rng *rand.Rand) *Player {
	var candidates []*Player
	total := 0
	for _, p := range t.Players {
		if !p.Retired {
			candidates = append(candidates, p)
			total += p.Overall
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	// Weighted draw; Overall >= MinOverall > 0 keeps total positive.
	pick := rng.Intn(total)
	var chosen *Player
	for _, p := range candidates {
		pick -= p.Overall
		if pick < 0 {
			chosen = p
			break
		}
	}
	if chosen == nil {
		chosen = candidates[len(candidates)-1]
	}

	for _, p := range t.Players {
		p.Captain = false
	}
	chosen.Captain = true
	return chosen
}

// Record formats the team's season record as "W-L".
func (t *Team) Record() string {
	return fmt.Sprintf("%d-%d", t.Wins, t.Losses)
}

// FullName returns "City Name".
func (t *Team) FullName() string {
	return t.City + " " + t.Name
}
