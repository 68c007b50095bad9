// Package manifest builds and persists the content-addressed snapshot of a
// convention root: per-document checksums, the active-set aggregate
// checksum, the active set itself, and the reference relation graph.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/fyrsmithlabs/aictx/internal/index"
)

// Filename is the manifest file written at the convention root.
const Filename = "manifests.yaml"

// Generator identifies the tool that produced a manifest.
const Generator = "aictx 1.0"

// TimeLayout is the generated_at timestamp format (UTC).
const TimeLayout = "2006-01-02T15:04:05Z"

// Entry is one document's manifest record. Status and Complexity are nil
// when the document does not declare them, and serialize as YAML null so
// the persisted shape is identical for every kind.
type Entry struct {
	ID         string   `yaml:"id"`
	Kind       string   `yaml:"kind"`
	Path       string   `yaml:"path"`
	Version    int      `yaml:"version"`
	Status     *string  `yaml:"status"`
	Complexity *string  `yaml:"complexity"`
	Checksum   string   `yaml:"checksum"`
	Tags       []string `yaml:"tags"`
}

// Manifest is the immutable snapshot of one build. Each build supersedes
// the previous manifest wholesale; manifests are never merged.
type Manifest struct {
	ConventionVersion string           `yaml:"convention_version"`
	GeneratedAt       string           `yaml:"generated_at"`
	Generator         string           `yaml:"generator"`
	RootChecksum      string           `yaml:"root_checksum"`
	Documents         []Entry          `yaml:"documents"`
	ActiveSet         []string         `yaml:"active_set"`
	Relations         []index.Relation `yaml:"relations"`
}

// Write serializes the manifest as YAML to root/manifests.yaml,
// overwriting any previous manifest as a whole file.
func (m *Manifest) Write(root string) error {
	return WriteFile(filepath.Join(root, Filename), m)
}

// WriteFile serializes the manifest as YAML to an arbitrary path.
func WriteFile(path string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// Load reads a manifest file. It returns os.ErrNotExist-wrapped errors
// untouched so callers can distinguish a missing manifest from a corrupt
// one.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	return &m, nil
}
