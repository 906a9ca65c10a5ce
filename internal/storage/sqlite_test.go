package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct{ score, maxTile int }{{100, 16}, {50, 8}, {200, 32}} {
		if _, err := store.SaveScore("2048", s.score, s.maxTile); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 500, 64); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("2048", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}
	if scores[0].MaxTile != 32 {
		t.Errorf("max tile = %d, want 32", scores[0].MaxTile)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("2048", (i+1)*100, 0)
	}

	scores, err := store.TopScores("2048", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty history, got %d", high)
	}

	store.SaveScore("2048", 100, 0)
	store.SaveScore("2048", 300, 0)
	store.SaveScore("2048", 200, 0)

	high, err = store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected 300, got %d", high)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)
	hs := store.HighScores("2048")

	got, err := hs.LoadHighScore()
	if err != nil || got != 0 {
		t.Fatalf("LoadHighScore() = %d, %v; want 0, nil", got, err)
	}

	for _, v := range []int{128, 4096} {
		if err := hs.SaveHighScore(v); err != nil {
			t.Fatalf("SaveHighScore(%d) failed: %v", v, err)
		}
	}

	got, err = hs.LoadHighScore()
	if err != nil || got != 4096 {
		t.Errorf("LoadHighScore() = %d, %v; want 4096, nil", got, err)
	}

	other, _ := store.HighScores("other").LoadHighScore()
	if other != 0 {
		t.Errorf("best score leaked across games: %d", other)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("2048", 100, 0)
	store.SaveScore("2048", 200, 0)
	store.SaveScore("other", 300, 0)
	store.SaveBest("2048", 200)

	if err := store.ClearScores("2048"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("2048", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if best, _ := store.LoadBest("2048"); best != 0 {
		t.Errorf("best score = %d after clear, want 0", best)
	}
	if other, _ := store.TopScores("other", 10); len(other) != 1 {
		t.Error("other game's scores should not be affected")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty history: %+v", empty)
	}

	store.SaveScore("2048", 100, 16)
	store.SaveScore("2048", 300, 64)

	stats, err := store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.MaxTile != 64 {
		t.Errorf("MaxTile = %d, want 64", stats.MaxTile)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}
