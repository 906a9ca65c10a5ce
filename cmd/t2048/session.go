package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/storage"
	"github.com/vovakirdan/t2048/internal/t2048"
)

// session holds everything a command needs to run the game.
type session struct {
	cfg     config.Config
	logger  *log.Logger
	stores  *storage.Backends
	logFile io.Closer
}

// loadConfig reads the config file and applies the flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Display.TickRate = flagFPS
	}
	if flags.Changed("store") {
		cfg.Store.Backend = flagStore
		if !flags.Changed("store-path") {
			cfg.Store.Path = "" // Backend default
		}
	}
	if flags.Changed("store-path") {
		cfg.Store.Path = flagStorePath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	return cfg, cfg.Validate()
}

// newLogger builds the application logger. With toFile set, output goes to
// the configured log file so it never draws over the UI.
func newLogger(cfg config.Config, toFile bool) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer
	)
	if toFile {
		f, err := openLogFile(cfg.Log.File)
		if err != nil {
			return nil, nil, err
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           level,
	})
	return logger, closer, nil
}

// openLogFile opens path for appending, discarding logs when path is empty.
func openLogFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	path, err := storage.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openSession loads the config, the logger and the score stores.
func openSession(cmd *cobra.Command, logToFile bool) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger, logFile, err := newLogger(cfg, logToFile)
	if err != nil {
		return nil, err
	}

	backend, err := storage.ParseBackend(cfg.Store.Backend)
	if err != nil {
		closeQuietly(logFile)
		return nil, err
	}

	stores, err := storage.OpenBackend(backend, cfg.Store.Path, t2048.GameID, logger)
	if err != nil {
		// The game still works without persistence.
		logger.Warn("could not open score storage, high score will not be saved", "error", err)
		stores = &storage.Backends{Backend: storage.BackendMemory, HighScores: storage.NewMemoryStore(0)}
	}

	return &session{cfg: cfg, logger: logger, stores: stores, logFile: logFile}, nil
}

// Close releases the stores and the log file.
func (s *session) Close() {
	if err := s.stores.Close(); err != nil {
		s.logger.Warn("closing score storage", "error", err)
	}
	closeQuietly(s.logFile)
}

func closeQuietly(c io.Closer) {
	if c != nil {
		c.Close()
	}
}

// newGame creates a game wired to the session's high score store.
func (s *session) newGame() *t2048.Game {
	return t2048.New(s.stores.HighScores, s.logger, t2048.Settings{
		FourOdds:   s.cfg.Spawn.FourOdds,
		SlideTicks: s.cfg.Display.SlideTicks,
	})
}

// runtimeConfig sizes the game to the terminal.
func (s *session) runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: s.cfg.Display.TickRate,
		Seed:     flagSeed,
	}
}
