package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/redlight/internal/config"
	"github.com/vovakirdan/redlight/internal/storage"
)

// scoreStore is what the commands need from either store.
type scoreStore interface {
	BestScore() (int, error)
	SaveBestScore(score int) error
	ClearBestScore() error
	Close() error
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// loadConfig loads the game config from --config or the default locations.
func loadConfig() (config.Config, error) {
	return config.Load(flagConfig)
}

// openStore opens the --db database. When it cannot be opened the game
// keeps scores in memory for this process.
func openStore(logger *log.Logger) scoreStore {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not persist", "path", flagDBPath, "err", err)
		return storage.NewMemory()
	}
	return store
}
