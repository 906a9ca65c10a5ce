package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Backend selects where the high score lives.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// Default locations per backend.
const (
	DefaultFilePath = "~/.t2048/highscore.txt"
	DefaultDBPath   = "~/.t2048/scores.db"
)

// ParseBackend validates a backend name.
func ParseBackend(name string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(name))); b {
	case BackendFile, BackendSQLite, BackendMemory:
		return b, nil
	default:
		return "", fmt.Errorf("storage: unknown backend %q (want file, sqlite or memory)", name)
	}
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Backends holds the stores opened for one session.
type Backends struct {
	Backend    Backend
	HighScores HighScoreStore
	History    *Store // Only set for the sqlite backend
}

// Close releases the database, if any.
func (b *Backends) Close() error {
	if b.History != nil {
		return b.History.Close()
	}
	return nil
}

// OpenBackend opens the high-score store for gameID. An empty path uses the
// backend's default location.
func OpenBackend(backend Backend, path, gameID string, logger *log.Logger) (*Backends, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	switch backend {
	case BackendMemory:
		logger.Debug("using in-memory high score")
		return &Backends{Backend: backend, HighScores: NewMemoryStore(0)}, nil

	case BackendFile:
		if path == "" {
			path = DefaultFilePath
		}
		expanded, err := ExpandPath(path)
		if err != nil {
			return nil, err
		}
		store := NewFileStore(expanded)
		logger.Debug("using high score file", "path", store.Path())
		return &Backends{Backend: backend, HighScores: store}, nil

	case BackendSQLite:
		if path == "" {
			path = DefaultDBPath
		}
		store, err := Open(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("using score database", "path", path)
		return &Backends{
			Backend:    backend,
			HighScores: store.HighScores(gameID),
			History:    store,
		}, nil

	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}
