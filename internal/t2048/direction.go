package t2048

// Direction represents a shift direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every shift direction.
var Directions = [...]Direction{DirLeft, DirRight, DirUp, DirDown}

// Delta returns the one-cell step for the direction:
// LEFT(-1,0), RIGHT(1,0), UP(0,-1), DOWN(0,1).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// BoardSize is the board dimension.
const BoardSize = 4

// Position is a grid cell, 0 <= Col, Row < BoardSize.
type Position struct {
	Col int
	Row int
}

// Add returns the neighbouring position one step in direction d.
func (p Position) Add(d Direction) Position {
	dx, dy := d.Delta()
	return Position{Col: p.Col + dx, Row: p.Row + dy}
}

// InBounds reports whether p lies on the board.
func (p Position) InBounds() bool {
	return p.Col >= 0 && p.Col < BoardSize && p.Row >= 0 && p.Row < BoardSize
}

// AllPositions returns every cell of the board in row-major order.
func AllPositions() []Position {
	cells := make([]Position, 0, BoardSize*BoardSize)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			cells = append(cells, Position{Col: col, Row: row})
		}
	}
	return cells
}
