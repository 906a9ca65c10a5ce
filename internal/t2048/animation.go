package t2048

// playback replays the tile moves of the last shift over a fixed number of
// ticks. The board stays locked against new shifts until it finishes.
type playback struct {
	moves    []TileMove
	spawned  Tile
	spawnOK  bool
	ticks    int
	duration int
	active   bool
}

// lastFrame reports whether the slide has reached its final frame, which
// shows the resolved board.
func (pb playback) lastFrame() bool {
	return pb.ticks+1 >= pb.duration
}

// showSpawn reports whether the new tile is visible yet. It appears once
// the slide is half done.
func (pb playback) showSpawn() bool {
	return pb.spawnOK && pb.ticks*2 >= pb.duration
}

// startPlayback begins replaying a resolved shift.
func (g *Game) startPlayback(result ShiftResult) {
	if g.settings.SlideTicks <= 0 {
		g.board.FinishAnimation()
		return
	}
	g.playback = playback{
		moves:    result.Moves,
		spawned:  result.Spawned,
		spawnOK:  result.SpawnOK,
		duration: g.settings.SlideTicks,
		active:   true,
	}
}

// advancePlayback moves the replay forward one tick and releases the board
// when it completes.
func (g *Game) advancePlayback() {
	if !g.playback.active {
		return
	}

	g.playback.ticks++
	if g.playback.ticks >= g.playback.duration {
		g.playback = playback{}
		g.board.FinishAnimation()
	}
}
