package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to terminal size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  100,
		ScreenH:  37,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a session.
// Returned by the game after every frame to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	GameOver bool // Whether the session has ended by losing the last life
	Paused   bool // Whether the game is paused
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
	Quit  bool // A quit event was received this tick
}
