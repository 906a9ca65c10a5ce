package t2048

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/t2048/internal/core"
)

func newTestGame(t *testing.T, store ScoreStore, slideTicks int) *Game {
	t.Helper()
	settings := DefaultSettings()
	settings.SlideTicks = slideTicks

	g := New(store, nil, settings)
	cfg := core.DefaultConfig()
	cfg.Seed = 12345
	g.Reset(cfg)
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameBeforeReset(t *testing.T) {
	g := New(nil, nil, DefaultSettings())

	if state := g.State(); state.Score != 0 || state.GameOver {
		t.Errorf("unexpected state before reset %+v", state)
	}

	g.Step(frame(core.ActionLeft))
	if n := len(g.Board().Tiles()); n != 0 {
		t.Errorf("shift before reset placed %d tiles", n)
	}

	g.Render(core.NewScreen(80, 24))

	g.Step(frame(core.ActionRestart))
	if g.Board().State() != StatePlaying || len(g.Board().Tiles()) != 2 {
		t.Error("R should start a game before reset")
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, &memStore{value: 256}, 0)

	state := g.State()
	if state.Score != 0 || state.GameOver || state.Paused {
		t.Errorf("unexpected initial state %+v", state)
	}
	if state.HighScore != 256 {
		t.Errorf("high score = %d, want 256", state.HighScore)
	}
	if len(g.Board().Tiles()) != 2 {
		t.Errorf("tiles = %d, want 2", len(g.Board().Tiles()))
	}
}

func TestGameDeterministic(t *testing.T) {
	play := func() Snapshot {
		g := newTestGame(t, nil, 0)
		moves := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}
		for i := 0; i < 200; i++ {
			g.Step(frame(moves[i%len(moves)]))
		}
		return g.Snapshot()
	}

	a, b := play(), play()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different games:\n%+v\n%+v", a, b)
	}
}

func TestGameStepShift(t *testing.T) {
	g := newTestGame(t, nil, 0)
	setTiles(g.board, tile(2, 0, 0), tile(2, 1, 0))

	g.Step(frame(core.ActionLeft))

	if g.State().Score != 4 {
		t.Errorf("score = %d, want 4", g.State().Score)
	}
	if g.State().Animating {
		t.Error("zero slide ticks should finish the move at once")
	}
}

func TestGamePlaybackBlocksInput(t *testing.T) {
	g := newTestGame(t, nil, 3)
	setTiles(g.board, tile(2, 0, 0))

	g.Step(frame(core.ActionRight))
	if !g.State().Animating {
		t.Fatal("shift should start playback")
	}
	after := g.Board().Tiles()

	g.Step(frame(core.ActionLeft))
	if !reflect.DeepEqual(after, g.Board().Tiles()) {
		t.Error("input during playback moved tiles")
	}

	g.Step(core.NewInputFrame())
	g.Step(core.NewInputFrame())
	if g.State().Animating {
		t.Error("playback should finish after the slide ticks")
	}
}

func TestGamePlaybackShowsSpawnAndMerge(t *testing.T) {
	g := newTestGame(t, nil, 4)
	setTiles(g.board, tile(2, 0, 0), tile(2, 1, 0))

	res := g.board.Shift(DirLeft)
	g.startPlayback(res)
	if !res.SpawnOK {
		t.Fatal("shift did not spawn")
	}

	geo := g.geometry()
	labelAt := func(screen *core.Screen, p Position) rune {
		cx, cy := geo.CellRect(p.Col, p.Row).Center()
		return screen.GetCell(cx, cy).Rune
	}
	render := func() *core.Screen {
		screen := core.NewScreen(80, 24)
		g.Render(screen)
		return screen
	}

	// The merging tile starts on (1, 0) and would cover a spawn there.
	if res.Spawned.Pos != (Position{Col: 1, Row: 0}) {
		if got := labelAt(render(), res.Spawned.Pos); got == '2' {
			t.Error("spawned tile visible at the start of the slide")
		}
	}

	g.Step(core.NewInputFrame())
	g.Step(core.NewInputFrame()) // Halfway
	if got := labelAt(render(), res.Spawned.Pos); got != '2' {
		t.Errorf("spawned tile label = %q at the midpoint, want '2'", got)
	}

	g.Step(core.NewInputFrame()) // Last frame
	if !g.State().Animating {
		t.Fatal("playback ended early")
	}
	screen := render()
	if got := labelAt(screen, Position{Col: 0, Row: 0}); got != '4' {
		t.Errorf("merged tile label = %q on the last frame, want '4'", got)
	}
	if got := labelAt(screen, res.Spawned.Pos); got != '2' {
		t.Errorf("spawned tile label = %q on the last frame, want '2'", got)
	}
}

func TestGameRestartKeys(t *testing.T) {
	g := newTestGame(t, nil, 0)
	setTiles(g.board, tile(2, 0, 0), tile(2, 1, 0))
	g.Step(frame(core.ActionLeft))

	// Enter does nothing mid-game
	g.Step(frame(core.ActionConfirm))
	if g.State().Score != 4 {
		t.Errorf("confirm restarted a running game")
	}

	g.Step(frame(core.ActionRestart))
	if g.State().Score != 0 || len(g.Board().Tiles()) != 2 {
		t.Error("R should restart at any time")
	}

	setTiles(g.board, checkerboard()...)
	g.board.CheckGameOver()
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	g.Step(frame(core.ActionConfirm))
	if g.State().GameOver {
		t.Error("Enter should restart on the game-over screen")
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, nil, 0)
	setTiles(g.board, tile(2, 0, 0))

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("P should pause")
	}

	g.Step(frame(core.ActionRight))
	if len(g.Board().Tiles()) != 1 {
		t.Error("shift applied while paused")
	}

	g.Step(frame(core.ActionPause))
	g.Step(frame(core.ActionRight))
	if len(g.Board().Tiles()) != 2 {
		t.Error("shift should apply after resuming")
	}
}

func TestGameTooSmall(t *testing.T) {
	g := newTestGame(t, nil, 0)
	g.Resize(20, 10)

	if !g.State().Paused {
		t.Error("too-small screen should pause the game")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected the too-small message")
	}

	g.Resize(80, 24)
	if g.State().Paused {
		t.Error("game should resume after growing the screen")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, &memStore{value: 1024}, 0)
	setTiles(g.board, tile(2048, 0, 0), tile(16, 3, 3))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(screen.Row(0), "Score: 0 | Highscore: 1024") {
		t.Errorf("score line = %q", screen.Row(0))
	}
	for _, want := range []string{"2048", "16", "Use Arrow Keys to Slide Board"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	if strings.Contains(out, "GAME OVER!") {
		t.Error("game-over overlay drawn during play")
	}
}

func TestGameRenderGameOver(t *testing.T) {
	g := newTestGame(t, nil, 0)
	setTiles(g.board, checkerboard()...)
	g.board.CheckGameOver()

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "GAME OVER!") {
		t.Error("expected the game-over overlay")
	}
	if !strings.Contains(screen.String(), "Max tile: 4") {
		t.Error("expected the max tile line")
	}
}

func TestTileColor(t *testing.T) {
	if TileColor(2) != core.ColorPink {
		t.Errorf("TileColor(2) = %v", TileColor(2))
	}
	if TileColor(2048) != core.ColorYellow {
		t.Errorf("TileColor(2048) = %v", TileColor(2048))
	}
	if TileColor(16384) != core.ColorGray {
		t.Error("unknown values should be gray")
	}
}
