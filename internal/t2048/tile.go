package t2048

// Tile is a numbered tile on the board.
// It does no validation; the Board keeps positions unique and in bounds.
type Tile struct {
	Value int
	Pos   Position
}

// NewTile creates a tile with the given value at pos.
func NewTile(value int, pos Position) Tile {
	return Tile{Value: value, Pos: pos}
}

// MoveBy translates the tile one cell in direction d.
func (t *Tile) MoveBy(d Direction) {
	t.Pos = t.Pos.Add(d)
}

// DoubleValue doubles the tile value after a merge.
func (t *Tile) DoubleValue() {
	t.Value *= 2
}
