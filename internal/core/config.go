package core

// Default runtime values used when a field is left at zero.
const (
	DefaultScreenW  = 80
	DefaultScreenH  = 24
	DefaultTickRate = 60
)

// RuntimeConfig is what the platform hands a game on Reset.
// The simulation runs in world units; screen size only affects rendering.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // Gameplay RNG seed; 0 lets the platform pick one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  DefaultScreenW,
		ScreenH:  DefaultScreenH,
		TickRate: DefaultTickRate,
	}
}

// WithDefaults fills zero or negative sizes and rates. The seed is kept.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.ScreenW <= 0 {
		c.ScreenW = DefaultScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = DefaultScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	return c
}

// GameState is the summary a platform needs after each tick.
type GameState struct {
	Score    int
	Lives    int
	Level    int
	GameOver bool
	Paused   bool
}

// Sound is a discrete audio trigger emitted by a tick.
// Games emit tags; the platform decides whether and how to play them.
type Sound string

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Sounds []Sound // In emission order
	Quit   bool    // Quit was requested; the driver should stop ticking
}
