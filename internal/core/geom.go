// Package core provides fundamental types shared by the 2048 engine and the
// presentation layer. It has no external dependencies (especially no Bubble
// Tea) so the game logic stays pure and testable.
package core

// Rect is an axis-aligned rectangle in screen or pixel units.
type Rect struct {
	X, Y int // Top-left corner
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp interpolates between a and b by step/steps using integer math.
// step is clamped to [0, steps]; steps <= 0 returns b.
func Lerp(a, b, step, steps int) int {
	if steps <= 0 {
		return b
	}
	step = Clamp(step, 0, steps)
	return a + (b-a)*step/steps
}
