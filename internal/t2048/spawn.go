package t2048

import (
	"errors"
	"math/rand"
)

// DefaultFourOdds is the size of the uniform draw deciding a value-4 spawn:
// 4 iff the draw over {1..11} is 1, so 1/11 of eligible spawns are 4.
const DefaultFourOdds = 11

// ErrNoFreeCell is returned when a tile is spawned on a full board.
var ErrNoFreeCell = errors.New("t2048: no free cell to spawn a tile")

// rollSpawnValue draws uniformly over {1..odds} and returns 4 when the
// draw is 1, otherwise 2.
func rollSpawnValue(rng *rand.Rand, odds int) int {
	if odds < 1 {
		odds = DefaultFourOdds
	}
	if rng.Intn(odds)+1 == 1 {
		return 4
	}
	return 2
}
