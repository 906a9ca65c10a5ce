package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// HighScoreStore persists a single best score.
// LoadHighScore returns 0 with a nil error when nothing was saved yet.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(value int) error
}

// FileStore keeps the high score as a decimal integer in a text file.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the file at path. The file is
// created on the first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// LoadHighScore reads the stored value. A missing file yields 0 and no
// error; unparsable content yields 0 and an error.
func (f *FileStore) LoadHighScore() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read high score: %w", err)
	}

	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0, nil
	}

	value, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("storage: malformed high score in %s: %w", f.path, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("storage: negative high score %d in %s", value, f.path)
	}
	return value, nil
}

// SaveHighScore overwrites the file with value. The write goes through a
// temporary file so a crash never leaves a truncated score behind.
func (f *FileStore) SaveHighScore(value int) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := fmt.Fprintf(tmp, "%d\n", value); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// MemoryStore keeps the high score for the lifetime of the process.
type MemoryStore struct {
	mu    sync.Mutex
	value int
}

// NewMemoryStore creates a store starting at value.
func NewMemoryStore(value int) *MemoryStore {
	return &MemoryStore{value: value}
}

func (m *MemoryStore) LoadHighScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value, nil
}

func (m *MemoryStore) SaveHighScore(value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = value
	return nil
}

var (
	_ HighScoreStore = (*FileStore)(nil)
	_ HighScoreStore = (*MemoryStore)(nil)
	_ HighScoreStore = (*GameHighScore)(nil)
)
