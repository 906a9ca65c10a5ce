package t2048

import "github.com/vovakirdan/t2048/internal/core"

// Pixel layout of the classic windowed board.
const (
	TileWidth        = 100 // Width of the square tile
	TileGap          = 3   // Gap between tiles
	ScoreTextHeight  = 30  // Score bar above the board
	BottomInfoHeight = 40  // Hint bar below the board

	BoardPixelWidth  = TileWidth*BoardSize + TileGap*(BoardSize-1)
	BoardPixelHeight = BoardPixelWidth
	WindowWidth      = BoardPixelWidth
	WindowHeight     = BoardPixelHeight + ScoreTextHeight + BottomInfoHeight
)

// Geometry maps grid cells to rectangles. It holds no game state.
type Geometry struct {
	TileW   int
	TileH   int
	Gap     int
	OriginX int
	OriginY int
}

// PixelGeometry returns the windowed layout: 100px tiles, 3px gaps,
// the board starting right below the score bar.
func PixelGeometry() Geometry {
	return Geometry{
		TileW:   TileWidth,
		TileH:   TileWidth,
		Gap:     TileGap,
		OriginY: ScoreTextHeight,
	}
}

// TerminalGeometry returns the character-cell layout used by the TUI,
// with the board's top-left corner at (originX, originY).
func TerminalGeometry(originX, originY int) Geometry {
	return Geometry{
		TileW:   7,
		TileH:   3,
		Gap:     1,
		OriginX: originX,
		OriginY: originY,
	}
}

// CellToPixelRect returns the pixel rectangle of cell (col, row) in the
// windowed layout.
func CellToPixelRect(col, row int) core.Rect {
	return PixelGeometry().CellRect(col, row)
}

// CellRect returns the rectangle covered by cell (col, row).
func (g Geometry) CellRect(col, row int) core.Rect {
	r := core.NewRect(col*(g.TileW+g.Gap), row*(g.TileH+g.Gap), g.TileW, g.TileH)
	return r.Translate(g.OriginX, g.OriginY)
}

// Width returns the width of the whole board.
func (g Geometry) Width() int {
	return BoardSize*g.TileW + (BoardSize-1)*g.Gap
}

// Height returns the height of the whole board.
func (g Geometry) Height() int {
	return BoardSize*g.TileH + (BoardSize-1)*g.Gap
}

// Bounds returns the rectangle covering the whole board.
func (g Geometry) Bounds() core.Rect {
	return core.NewRect(g.OriginX, g.OriginY, g.Width(), g.Height())
}
