package main

import (
	"fmt"
	"path/filepath"

	"github.com/nhle/plant-reminder/internal/store"
)

// openStore opens the garden database in the config directory.
func openStore(cfgDir string) (*store.SQLiteStore, error) {
	dbPath := filepath.Join(cfgDir, "garden.db")
	s, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening store at %s: %w", dbPath, err)
	}
	return s, nil
}
