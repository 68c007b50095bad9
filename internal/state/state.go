// Package state persists the most recently built manifest under the
// .aictx state directory and computes read-only diffs against a live
// index. Only an explicit build overwrites stored state.
package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fyrsmithlabs/aictx/internal/manifest"
)

const (
	// Dirname is the state directory under .aictx.
	Dirname = "state"

	// Filename is the stored copy of the last built manifest.
	Filename = "last_manifest.yaml"
)

// Store reads and writes the last-built manifest for one .aictx directory.
type Store struct {
	aictxDir string
}

// NewStore returns a store rooted at the given .aictx directory.
func NewStore(aictxDir string) *Store {
	return &Store{aictxDir: aictxDir}
}

// Path returns the on-disk location of the stored manifest.
func (s *Store) Path() string {
	return filepath.Join(s.aictxDir, Dirname, Filename)
}

// Save mirrors a freshly built manifest into the state directory,
// replacing whatever was stored before.
func (s *Store) Save(m *manifest.Manifest) error {
	dir := filepath.Join(s.aictxDir, Dirname)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	return manifest.WriteFile(s.Path(), m)
}

// Load returns the stored manifest, or nil when no manifest has been
// built yet.
func (s *Store) Load() (*manifest.Manifest, error) {
	m, err := manifest.Load(s.Path())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return m, err
}
