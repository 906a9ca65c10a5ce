package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileStoreMissingFile(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "none.txt"))

	got, err := fs.LoadHighScore()
	if err != nil || got != 0 {
		t.Errorf("LoadHighScore() = %d, %v; want 0, nil", got, err)
	}
}

func TestFileStoreLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
		wantErr bool
	}{
		{"plain", "2048", 2048, false},
		{"trailing newline", "512\n", 512, false},
		{"surrounding whitespace", "  64 \n", 64, false},
		{"trailing garbage after whitespace", "128 extra", 128, false},
		{"empty", "", 0, false},
		{"not a number", "abc", 0, true},
		{"negative", "-5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "hs.txt")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			got, err := NewFileStore(path).LoadHighScore()
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFileStoreSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "hs.txt")
	fs := NewFileStore(path)

	if err := fs.SaveHighScore(100); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	if err := fs.SaveHighScore(4096); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "4096\n" {
		t.Errorf("file content = %q, want %q", data, "4096\n")
	}

	got, err := fs.LoadHighScore()
	if err != nil || got != 4096 {
		t.Errorf("LoadHighScore() = %d, %v; want 4096, nil", got, err)
	}

	// No temporary files are left behind
	entries, _ := os.ReadDir(filepath.Dir(path))
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".highscore-") {
			t.Errorf("leftover temp file %s", e.Name())
		}
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore(10)

	if got, _ := m.LoadHighScore(); got != 10 {
		t.Errorf("initial = %d, want 10", got)
	}
	m.SaveHighScore(20)
	if got, _ := m.LoadHighScore(); got != 20 {
		t.Errorf("after save = %d, want 20", got)
	}
}

func TestParseBackend(t *testing.T) {
	tests := []struct {
		in      string
		want    Backend
		wantErr bool
	}{
		{"file", BackendFile, false},
		{"SQLite", BackendSQLite, false},
		{" memory ", BackendMemory, false},
		{"redis", "", true},
	}

	for _, tt := range tests {
		got, err := ParseBackend(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseBackend(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandPath("~/.t2048/x.txt")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, ".t2048/x.txt") {
		t.Errorf("ExpandPath = %q", got)
	}

	if got, _ := ExpandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute path changed: %q", got)
	}
}

func TestOpenBackend(t *testing.T) {
	dir := t.TempDir()

	t.Run("file", func(t *testing.T) {
		b, err := OpenBackend(BackendFile, filepath.Join(dir, "hs.txt"), "2048", nil)
		if err != nil {
			t.Fatal(err)
		}
		defer b.Close()
		if b.History != nil {
			t.Error("file backend should not open a history")
		}
		fs, ok := b.HighScores.(*FileStore)
		if !ok {
			t.Fatalf("HighScores is %T, want *FileStore", b.HighScores)
		}
		if fs.Path() != filepath.Join(dir, "hs.txt") {
			t.Errorf("Path() = %q", fs.Path())
		}
	})

	t.Run("sqlite", func(t *testing.T) {
		b, err := OpenBackend(BackendSQLite, filepath.Join(dir, "scores.db"), "2048", nil)
		if err != nil {
			t.Fatal(err)
		}
		defer b.Close()
		if b.History == nil {
			t.Fatal("sqlite backend should open a history")
		}
		if err := b.HighScores.SaveHighScore(256); err != nil {
			t.Fatal(err)
		}
		if best, _ := b.History.LoadBest("2048"); best != 256 {
			t.Errorf("best = %d, want 256", best)
		}
	})

	t.Run("memory", func(t *testing.T) {
		b, err := OpenBackend(BackendMemory, "", "2048", nil)
		if err != nil {
			t.Fatal(err)
		}
		if got, _ := b.HighScores.LoadHighScore(); got != 0 {
			t.Errorf("memory store starts at %d", got)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if _, err := OpenBackend("redis", "", "2048", nil); err == nil {
			t.Error("expected error for unknown backend")
		}
	})
}
