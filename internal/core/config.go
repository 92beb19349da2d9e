package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and pacing.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in terminal columns
	ScreenH  int   // Screen height in terminal rows
	TickRate int   // Frames per second driven by the platform (default 60)
	Seed     int64 // Run seed; 0 means the platform picks one
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State   GameState
	Changed bool // Whether the frame advanced the underlying simulation
}

// RunResult summarizes a finished run for score storage.
type RunResult struct {
	LevelID   string
	Score     int
	MovesLeft int
	Nested    int // Eggs delivered to nests during the run
	Fried     int // Eggs lost on frying pans during the run
}
