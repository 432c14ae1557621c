// Package export snapshots every persisted data key into one pretty-printed
// JSON document for backup. The snapshot is a passthrough: nothing is
// transformed and no repository is mutated.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tableflip.dev/recovery/pkg/store"
)

// Version tags exported documents so a future importer knows what it holds.
const Version = 1

// Service builds export documents from the keyed store.
type Service struct {
	Store *store.Store
}

// Snapshot returns the export document: the raw value of every data key,
// plus a version tag. The welcome tip flag never leaves the store.
func (s *Service) Snapshot() ([]byte, error) {
	doc := s.Store.LoadAll()
	doc["export_version"] = Version
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: encode snapshot: %w", err)
	}
	return data, nil
}

// Filename returns the dated export filename for the given day.
func Filename(on time.Time) string {
	return fmt.Sprintf("recovery_data_export_%s.json", on.Format("2006-01-02"))
}

// Write snapshots the store into dir and returns the written path.
func (s *Service) Write(dir string) (string, error) {
	data, err := s.Snapshot()
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, Filename(time.Now()))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("export: write %s: %w", path, err)
	}
	return path, nil
}
