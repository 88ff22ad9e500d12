package core

// RuntimeConfig contains configuration passed to a session at creation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the coarse status of a session as seen by the platform.
type GameState struct {
	Score     int    // Current score
	Remaining int    // Seconds left on the session clock
	Phase     string // Current difficulty phase name
	GameOver  bool   // Whether the session has ended
	Paused    bool   // Whether the session is paused
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState

	// Announcement is set only on the tick a new phase begins.
	Announcement string
}
