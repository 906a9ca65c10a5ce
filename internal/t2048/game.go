package t2048

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/core"
)

// GameID identifies the game in score storage.
const GameID = "2048"

var _ core.Game = (*Game)(nil)

// Settings tunes a Game.
type Settings struct {
	FourOdds   int // Size of the draw deciding a value-4 starting tile
	SlideTicks int // Ticks spent playing back a shift; 0 finishes instantly
}

// DefaultSettings returns the classic rules with an 8-tick slide.
func DefaultSettings() Settings {
	return Settings{
		FourOdds:   DefaultFourOdds,
		SlideTicks: 8, // ~133ms at 60fps
	}
}

// Game binds a Board to the fixed-tick frame loop: it maps input actions to
// shifts, plays moves back and renders into a core.Screen.
type Game struct {
	store    ScoreStore
	logger   *log.Logger
	settings Settings

	board *Board
	tick  uint64

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
	playback playback
}

// New creates a game. store may be nil to play without persistence.
// The board stays NotStarted until Reset: shifts are ignored, R starts it.
func New(store ScoreStore, logger *log.Logger, settings Settings) *Game {
	return &Game{
		store:    store,
		logger:   logger,
		settings: settings,
		board: NewBoard(Options{
			Store:    store,
			Logger:   logger,
			FourOdds: settings.FourOdds,
		}),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset builds a fresh board seeded from cfg and starts a game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.board = NewBoard(Options{
		Store:    g.store,
		Rand:     rand.New(rand.NewSource(cfg.Seed)),
		Logger:   g.logger,
		FourOdds: g.settings.FourOdds,
	})
	g.tick = 0
	g.paused = false
	g.playback = playback{}
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	g.board.Restart()
}

// Resize adapts the game to new screen dimensions without losing the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	geo := TerminalGeometry(0, 0)
	minW := geo.Width() + 2
	minH := geo.Height() + hudHeight + footerHeight
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Board exposes the engine for read-only queries.
func (g *Game) Board() *Board {
	return g.board
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// R restarts at any time, Enter only on the game-over screen.
	if in.Has(core.ActionRestart) || (in.Has(core.ActionConfirm) && g.board.GameOver()) {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.board.GameOver() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.advancePlayback()

	if dir, ok := directionFor(in); ok {
		result := g.board.Shift(dir)
		if result.Applied {
			g.startPlayback(result)
		}
	}

	return core.StepResult{State: g.State()}
}

// restart starts a new game on the existing board.
func (g *Game) restart() {
	g.paused = false
	g.playback = playback{}
	g.board.Restart()
}

// directionFor maps the first directional action in the frame to a Direction.
func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.board.Score(),
		HighScore: g.board.HighScore(),
		GameOver:  g.board.GameOver(),
		Paused:    g.paused || g.tooSmall,
		Animating: g.board.Animating(),
		MaxTile:   g.board.MaxTile(),
	}
}
