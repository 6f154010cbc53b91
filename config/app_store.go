package config

import (
	"path/filepath"

	"github.com/arroyodev/illumibot-waitlist/internal/log"
	"github.com/arroyodev/illumibot-waitlist/internal/store"
)

// DefaultDataFile is where the waitlist log lives when DATA_FILE is unset.
var DefaultDataFile = filepath.Join("data", "waitlist.json")

// NewFileStore opens (or initializes) the durable waitlist log.
func NewFileStore(logger *log.Logger) (*store.FileStore, error) {
	path := GetValueFromEnvironmentVariable("DATA_FILE", DefaultDataFile)

	fs, err := store.NewFileStore(path)
	if err != nil {
		logger.Error("Failed to open waitlist store", "path", path, "error", err)
		return nil, err
	}

	logger.Info("Waitlist store ready", "path", path)
	return fs, nil
}
