package sim

// Stat keys used by stat lines. Keys are stable strings so stat lines
// survive snapshot round-trips unchanged.
const (
	StatPassYards = "yards_pass"
	StatPassTDs   = "td_pass"
	StatRushYards = "yards_rush"
	StatRushTDs   = "td_rush"
	StatRecYards  = "yards_rec"
	StatRecTDs    = "td_rec"
	StatTackles   = "tackles"
)

// StatLine maps stat keys to integer accumulators. A nil StatLine reads
// as all zeroes.
type StatLine map[string]int

// Get returns the value for a key, zero if absent.
func (s StatLine) Get(key string) int {
	return s[key]
}

// Add accumulates another stat line into this one.
func (s StatLine) Add(other StatLine) {
	for k, v := range other {
		s[k] += v
	}
}

// Clone returns a copy of the stat line.
func (s StatLine) Clone() StatLine {
	out := make(StatLine, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
