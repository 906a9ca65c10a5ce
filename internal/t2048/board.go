// Package t2048 implements the 2048 sliding-tile puzzle: the board engine
// (placement, shift/merge resolution, free-cell tracking, game-over
// detection) and its binding to the arcade frame loop.
package t2048

import (
	"fmt"
	"io"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// ScoreStore persists the best score across sessions.
// LoadHighScore returns 0 with a nil error when nothing was saved yet.
type ScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(value int) error
}

// State is the lifecycle state of a Board.
type State int

const (
	StateNotStarted State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// TileMove records where one tile went during a shift.
type TileMove struct {
	From   Position
	To     Position
	Value  int  // Value before any merge
	Merged bool // The tile was absorbed by the tile at To
}

// ShiftResult describes a resolved shift.
type ShiftResult struct {
	Applied     bool // False when the shift was rejected (game over, animating, not started)
	Direction   Direction
	Moves       []TileMove
	Merges      int
	ScoreGained int
	Spawned     Tile
	SpawnOK     bool
	GameOver    bool
	PersistErr  error // High score could not be saved; gameplay continues
}

// Options configures a Board.
type Options struct {
	Store    ScoreStore  // nil disables persistence
	Rand     *rand.Rand  // nil seeds from the clock
	Logger   *log.Logger // nil discards logs
	FourOdds int         // 0 uses DefaultFourOdds
}

// Board is the 2048 engine. It owns the tile set, the free cells and the
// score. All methods are safe for concurrent use; a shift is applied as one
// critical section so readers never observe a board mid-shift.
type Board struct {
	mu sync.RWMutex

	tiles     []Tile
	free      []Position
	score     int
	highScore int
	state     State
	animating bool

	store    ScoreStore
	rng      *rand.Rand
	logger   *log.Logger
	fourOdds int
}

// NewBoard creates a board in the NotStarted state. Call Restart to play.
func NewBoard(opts Options) *Board {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	fourOdds := opts.FourOdds
	if fourOdds <= 0 {
		fourOdds = DefaultFourOdds
	}

	b := &Board{
		store:    opts.Store,
		rng:      rng,
		logger:   logger,
		fourOdds: fourOdds,
	}
	b.resetFreeCells()
	return b
}

// Restart starts a new game regardless of the current state: score 0,
// high score reloaded, two tiles spawned (a 2 and a 2-or-4).
func (b *Board) Restart() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.state = StatePlaying
	b.animating = false
	b.score = 0
	b.highScore = b.loadHighScore()

	b.tiles = b.tiles[:0]
	b.resetFreeCells()

	for _, withFour := range []bool{false, true} {
		if _, err := b.spawn(withFour); err != nil {
			b.logger.Warn("restart: could not place starting tile", "error", err)
		}
	}

	b.logger.Debug("restart", "high_score", b.highScore)

	// A fresh board always has moves left; keep the per-frame check anyway.
	if _, err := b.checkGameOver(); err != nil {
		b.logger.Warn("restart: game over check", "error", err)
	}
}

// loadHighScore reads the persisted best score, falling back to 0.
func (b *Board) loadHighScore() int {
	if b.store == nil {
		return 0
	}
	value, err := b.store.LoadHighScore()
	if err != nil {
		b.logger.Warn("could not load high score, using 0", "error", err)
		return 0
	}
	if value < 0 {
		return 0
	}
	return value
}

// Shift slides and merges every tile in direction dir, then spawns one
// value-2 tile and runs the game-over check. It is a no-op while the game
// is over, not started, or a previous move is still being played back.
//
// A new tile is spawned even when nothing moved.
func (b *Board) Shift(dir Direction) ShiftResult {
	b.mu.Lock()
	defer b.mu.Unlock()

	result := ShiftResult{Direction: dir}
	if b.state != StatePlaying || b.animating || !dir.Valid() {
		return result
	}
	result.Applied = true

	// occupant[row][col] holds tile index+1, 0 when the cell is empty.
	var occupant [BoardSize][BoardSize]int
	for i, t := range b.tiles {
		occupant[t.Pos.Row][t.Pos.Col] = i + 1
	}
	removed := make([]bool, len(b.tiles))

	for _, i := range b.scanOrder(dir) {
		tile := &b.tiles[i]
		from := tile.Pos
		occupant[from.Row][from.Col] = 0

		next := from.Add(dir)
		for next.InBounds() && occupant[next.Row][next.Col] == 0 {
			tile.MoveBy(dir)
			next = next.Add(dir)
		}

		move := TileMove{From: from, To: tile.Pos, Value: tile.Value}

		if j, ok := b.mergeTarget(&occupant, tile.Value, next); ok {
			removed[i] = true
			b.tiles[j].DoubleValue()
			b.score += b.tiles[j].Value
			result.ScoreGained += b.tiles[j].Value
			result.Merges++
			move.To = next
			move.Merged = true
		} else {
			occupant[tile.Pos.Row][tile.Pos.Col] = i + 1
		}

		result.Moves = append(result.Moves, move)
	}

	b.tiles = compactTiles(b.tiles, removed)
	b.resetFreeCells()

	spawned, err := b.spawn(false)
	if err != nil {
		b.logger.Warn("shift: spawn skipped", "direction", dir, "error", err)
	} else {
		result.Spawned = spawned
		result.SpawnOK = true
	}

	b.animating = true

	b.logger.Debug("shift",
		"direction", dir,
		"merges", result.Merges,
		"gained", result.ScoreGained,
		"score", b.score,
	)

	result.GameOver, result.PersistErr = b.checkGameOver()
	return result
}

// scanOrder returns tile indices ordered so tiles closest to the
// destination edge come first. Ties keep container order.
func (b *Board) scanOrder(dir Direction) []int {
	order := make([]int, len(b.tiles))
	for i := range order {
		order[i] = i
	}

	key := func(i int) int {
		p := b.tiles[i].Pos
		switch dir {
		case DirLeft:
			return p.Col
		case DirRight:
			return -p.Col
		case DirUp:
			return p.Row
		default:
			return -p.Row
		}
	}

	sort.SliceStable(order, func(a, c int) bool {
		return key(order[a]) < key(order[c])
	})
	return order
}

// mergeTarget returns the index of the tile at pos when it holds value.
func (b *Board) mergeTarget(occupant *[BoardSize][BoardSize]int, value int, pos Position) (int, bool) {
	if !pos.InBounds() {
		return 0, false
	}
	idx := occupant[pos.Row][pos.Col] - 1
	if idx < 0 || b.tiles[idx].Value != value {
		return 0, false
	}
	return idx, true
}

// compactTiles drops the tiles flagged in removed, reusing the backing array.
func compactTiles(tiles []Tile, removed []bool) []Tile {
	kept := tiles[:0]
	for i, t := range tiles {
		if !removed[i] {
			kept = append(kept, t)
		}
	}
	return kept
}

// TestShift reports whether any tile could move or merge in direction dir.
// It never mutates the board.
func (b *Board) TestShift(dir Direction) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.testShift(dir)
}

func (b *Board) testShift(dir Direction) bool {
	var values [BoardSize][BoardSize]int
	for _, t := range b.tiles {
		values[t.Pos.Row][t.Pos.Col] = t.Value
	}

	for _, t := range b.tiles {
		next := t.Pos.Add(dir)
		if !next.InBounds() {
			continue
		}
		v := values[next.Row][next.Col]
		if v == 0 || v == t.Value {
			return true
		}
	}
	return false
}

// CheckGameOver moves the board to GameOver when no cell is free and no
// direction can shift. On that transition a better score is persisted; a
// failed save is returned as a warning and the game still ends.
func (b *Board) CheckGameOver() (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.checkGameOver()
}

func (b *Board) checkGameOver() (bool, error) {
	switch b.state {
	case StateGameOver:
		return true, nil
	case StateNotStarted:
		return false, nil
	}

	if len(b.free) > 0 {
		return false, nil
	}
	for _, d := range Directions {
		if b.testShift(d) {
			return false, nil
		}
	}

	b.state = StateGameOver
	b.logger.Info("game over", "score", b.score, "max_tile", b.maxTile())

	if b.score <= b.highScore {
		return true, nil
	}

	b.highScore = b.score
	b.logger.Info("new high score", "score", b.score)
	if b.store == nil {
		return true, nil
	}
	if err := b.store.SaveHighScore(b.score); err != nil {
		b.logger.Warn("could not save high score", "score", b.score, "error", err)
		return true, fmt.Errorf("t2048: save high score: %w", err)
	}
	return true, nil
}

// spawn places a tile on a random free cell. withFour enables the
// 1-in-fourOdds chance of a 4.
func (b *Board) spawn(withFour bool) (Tile, error) {
	if len(b.free) == 0 {
		return Tile{}, ErrNoFreeCell
	}

	idx := b.rng.Intn(len(b.free))
	pos := b.free[idx]
	b.free = append(b.free[:idx], b.free[idx+1:]...)

	value := 2
	if withFour {
		value = rollSpawnValue(b.rng, b.fourOdds)
	}

	tile := NewTile(value, pos)
	b.tiles = append(b.tiles, tile)
	return tile, nil
}

// resetFreeCells recomputes the free cells from the tile set.
func (b *Board) resetFreeCells() {
	var taken [BoardSize][BoardSize]bool
	for _, t := range b.tiles {
		taken[t.Pos.Row][t.Pos.Col] = true
	}

	b.free = b.free[:0]
	for _, p := range AllPositions() {
		if !taken[p.Row][p.Col] {
			b.free = append(b.free, p)
		}
	}
}

// FinishAnimation clears the re-entrancy guard once the presentation has
// played back the last shift.
func (b *Board) FinishAnimation() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.animating = false
}

// Animating reports whether the last shift is still being played back.
func (b *Board) Animating() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.animating
}

// Tiles returns a copy of the live tiles in row-major order.
func (b *Board) Tiles() []Tile {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.sortedTiles()
}

func (b *Board) sortedTiles() []Tile {
	tiles := make([]Tile, len(b.tiles))
	copy(tiles, b.tiles)
	sort.Slice(tiles, func(i, j int) bool {
		if tiles[i].Pos.Row != tiles[j].Pos.Row {
			return tiles[i].Pos.Row < tiles[j].Pos.Row
		}
		return tiles[i].Pos.Col < tiles[j].Pos.Col
	})
	return tiles
}

// FreeCells returns a copy of the unoccupied cells.
func (b *Board) FreeCells() []Position {
	b.mu.RLock()
	defer b.mu.RUnlock()
	free := make([]Position, len(b.free))
	copy(free, b.free)
	return free
}

// Score returns the current score.
func (b *Board) Score() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.score
}

// HighScore returns the best score known to this session.
func (b *Board) HighScore() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.highScore
}

// State returns the lifecycle state.
func (b *Board) State() State {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}

// GameOver reports whether the game has ended.
func (b *Board) GameOver() bool {
	return b.State() == StateGameOver
}

// MaxTile returns the highest tile value on the board.
func (b *Board) MaxTile() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.maxTile()
}

func (b *Board) maxTile() int {
	maxVal := 0
	for _, t := range b.tiles {
		maxVal = max(maxVal, t.Value)
	}
	return maxVal
}
