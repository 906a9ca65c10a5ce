package t2048

// Snapshot captures the complete engine state for determinism testing and
// for the presentation layer's per-frame read.
type Snapshot struct {
	Tick      uint64
	State     State
	Score     int
	HighScore int
	Tiles     []Tile // Row-major order
	FreeCells int
	MaxTile   int
	Animating bool
}

// Snapshot returns a consistent view of the board.
func (b *Board) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return Snapshot{
		State:     b.state,
		Score:     b.score,
		HighScore: b.highScore,
		Tiles:     b.sortedTiles(),
		FreeCells: len(b.free),
		MaxTile:   b.maxTile(),
		Animating: b.animating,
	}
}

// Snapshot returns the board snapshot stamped with the current tick.
func (g *Game) Snapshot() Snapshot {
	snap := g.board.Snapshot()
	snap.Tick = g.tick
	return snap
}
