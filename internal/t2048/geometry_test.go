package t2048

import (
	"testing"

	"github.com/vovakirdan/t2048/internal/core"
)

func TestWindowSize(t *testing.T) {
	if WindowWidth != 409 {
		t.Errorf("WindowWidth = %d, want 409", WindowWidth)
	}
	if WindowHeight != 479 {
		t.Errorf("WindowHeight = %d, want 479", WindowHeight)
	}
}

func TestCellToPixelRect(t *testing.T) {
	tests := []struct {
		col, row int
		want     core.Rect
	}{
		{0, 0, core.Rect{X: 0, Y: 30, W: 100, H: 100}},
		{1, 2, core.Rect{X: 103, Y: 236, W: 100, H: 100}},
		{3, 3, core.Rect{X: 309, Y: 339, W: 100, H: 100}},
	}

	for _, tt := range tests {
		if got := CellToPixelRect(tt.col, tt.row); got != tt.want {
			t.Errorf("CellToPixelRect(%d, %d) = %+v, want %+v", tt.col, tt.row, got, tt.want)
		}
	}
}

func TestTerminalGeometry(t *testing.T) {
	geo := TerminalGeometry(5, 2)

	if geo.Width() != 31 || geo.Height() != 15 {
		t.Errorf("board size = %dx%d, want 31x15", geo.Width(), geo.Height())
	}

	last := geo.CellRect(3, 3)
	if last.Right() != geo.Bounds().Right() || last.Bottom() != geo.Bounds().Bottom() {
		t.Errorf("last cell %+v does not touch board edge %+v", last, geo.Bounds())
	}
}

func TestTileMoves(t *testing.T) {
	tl := NewTile(8, Position{Col: 1, Row: 1})

	tl.MoveBy(DirRight)
	tl.MoveBy(DirDown)
	if tl.Pos != (Position{Col: 2, Row: 2}) {
		t.Errorf("position = %+v, want (2,2)", tl.Pos)
	}

	tl.DoubleValue()
	if tl.Value != 16 {
		t.Errorf("value = %d, want 16", tl.Value)
	}
}

func TestDirections(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
		name   string
	}{
		{DirLeft, -1, 0, "left"},
		{DirRight, 1, 0, "right"},
		{DirUp, 0, -1, "up"},
		{DirDown, 0, 1, "down"},
	}

	for _, tt := range tests {
		dx, dy := tt.dir.Delta()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%s delta = (%d,%d), want (%d,%d)", tt.name, dx, dy, tt.dx, tt.dy)
		}
		if tt.dir.String() != tt.name {
			t.Errorf("String() = %q, want %q", tt.dir.String(), tt.name)
		}
	}

	if Direction(9).Valid() {
		t.Error("out-of-range direction reported valid")
	}
}

func TestPositionBounds(t *testing.T) {
	if !(Position{0, 0}).InBounds() || !(Position{3, 3}).InBounds() {
		t.Error("corner cells should be in bounds")
	}
	if (Position{0, 0}).Add(DirLeft).InBounds() {
		t.Error("left of (0,0) should be out of bounds")
	}
	if (Position{3, 0}).Add(DirRight).InBounds() {
		t.Error("right of (3,0) should be out of bounds")
	}
	if len(AllPositions()) != 16 {
		t.Errorf("AllPositions() = %d cells, want 16", len(AllPositions()))
	}
}
