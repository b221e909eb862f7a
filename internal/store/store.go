// Package store persists the plant collection as a single JSON document in a
// local data directory. The current file carries a versioned envelope; a
// read-only legacy file from the pre-rebrand release is consulted once and
// migrated forward when no current file exists. Unreadable data is logged and
// treated as absent, never surfaced to the user.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/verdantapp/verdant/internal/models"
)

const (
	currentFile = "garden.json"
	legacyFile  = "plantdoc_garden.json"
)

// SchemaVersion is written into every saved document. The legacy format is a
// bare plant array with no envelope at all.
const SchemaVersion = 1

// document is the versioned persistence envelope.
type document struct {
	Version int            `json:"version"`
	Plants  []models.Plant `json:"plants"`
}

// Store reads and writes one plant collection. It is an explicit dependency
// injected into whoever owns the command loop; there is no ambient singleton.
type Store struct {
	dir    string
	logger *slog.Logger
}

// New creates a store rooted at dir. The directory is created lazily on the
// first save.
func New(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{dir: dir, logger: logger}
}

// CurrentPath returns the path of the current collection file.
func (s *Store) CurrentPath() string {
	return filepath.Join(s.dir, currentFile)
}

// LegacyPath returns the path of the read-only legacy collection file.
func (s *Store) LegacyPath() string {
	return filepath.Join(s.dir, legacyFile)
}

// Load returns the persisted collection. Resolution order: the current file,
// then a one-time migration of the legacy file, then the fixed seed set.
// Migration is idempotent: once the legacy payload has been copied forward
// the current file exists and the legacy file is never consulted again.
func (s *Store) Load(now time.Time) []models.Plant {
	if plants, ok := s.readCurrent(); ok {
		return plants
	}
	if plants, ok := s.migrateLegacy(); ok {
		return plants
	}
	return SeedPlants(now)
}

func (s *Store) readCurrent() ([]models.Plant, bool) {
	data, err := os.ReadFile(s.CurrentPath())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("failed to read collection", "path", s.CurrentPath(), "error", err)
		}
		return nil, false
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("unparseable collection, falling back", "path", s.CurrentPath(), "error", err)
		return nil, false
	}
	return doc.Plants, true
}

func (s *Store) migrateLegacy() ([]models.Plant, bool) {
	data, err := os.ReadFile(s.LegacyPath())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("failed to read legacy collection", "path", s.LegacyPath(), "error", err)
		}
		return nil, false
	}

	// The legacy format is a bare array, no envelope.
	var plants []models.Plant
	if err := json.Unmarshal(data, &plants); err != nil {
		s.logger.Warn("unparseable legacy collection, falling back", "path", s.LegacyPath(), "error", err)
		return nil, false
	}

	if err := s.Save(plants); err != nil {
		s.logger.Warn("failed to migrate legacy collection", "error", err)
	} else {
		s.logger.Info("migrated legacy collection", "plants", len(plants))
	}
	return plants, true
}

// Save serializes the entire collection and overwrites the current file. It
// is invoked on every mutation, not batched; last write wins.
func (s *Store) Save(plants []models.Plant) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	doc := document{Version: SchemaVersion, Plants: plants}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize collection: %w", err)
	}

	if err := os.WriteFile(s.CurrentPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write collection: %w", err)
	}
	return nil
}
