package core

// Game is the frame contract between the engine and the presentation layer.
// The game holds pure logic with no UI dependency; the platform handles
// input mapping, timing and drawing the screen.
type Game interface {
	// ID identifies the game in score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new session. The RuntimeConfig provides screen
	// dimensions and the RNG seed.
	Reset(cfg RuntimeConfig)

	// Resize adapts to new screen dimensions without restarting.
	Resize(width, height int)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
