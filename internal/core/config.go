package core

// RuntimeConfig is passed to modes at initialization. It carries the
// terminal dimensions and the RNG seed so a whole session is replayable.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// SeasonRecord is the platform-facing summary of one simulated season.
// Modes append these to their state; the platform persists them best-effort.
type SeasonRecord struct {
	Year     int
	Champion string
	MVP      string
}

// ModeState is returned by Mode.State() to communicate status to the platform.
type ModeState struct {
	Done    bool // The session ended; return to menu / exit
	Paused  bool
	Seasons []SeasonRecord // All seasons simulated so far, oldest first
}

// StepResult is returned by Mode.Step() after each tick.
type StepResult struct {
	State ModeState
}
