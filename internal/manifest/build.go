package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fyrsmithlabs/aictx/internal/document"
	"github.com/fyrsmithlabs/aictx/internal/index"
)

// Build computes a manifest from a validated index. Every indexed document
// gets a per-document checksum entry regardless of its status; only the
// root checksum applies the active-set filter.
func Build(root string, ix *index.Index, conventionVersion string) (*Manifest, error) {
	rootChecksum, err := AggregateChecksum(ix)
	if err != nil {
		return nil, err
	}

	entries := []Entry{}
	activeSet := []string{}
	for _, key := range ix.Keys() {
		doc, _ := ix.Get(key)
		checksum, err := FileChecksum(doc.Path)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{
			ID:         key,
			Kind:       doc.Kind,
			Path:       relativePath(root, doc.Path),
			Version:    doc.Version,
			Status:     nullable(doc.Status),
			Complexity: nullable(doc.Complexity),
			Checksum:   checksum,
			Tags:       tagsOrEmpty(doc.Tags),
		})
		if doc.Status == document.StatusActive {
			activeSet = append(activeSet, key)
		}
	}

	relations := ix.Relations()
	if relations == nil {
		relations = []index.Relation{}
	}

	return &Manifest{
		ConventionVersion: conventionVersion,
		GeneratedAt:       time.Now().UTC().Format(TimeLayout),
		Generator:         Generator,
		RootChecksum:      rootChecksum,
		Documents:         entries,
		ActiveSet:         activeSet,
		Relations:         relations,
	}, nil
}

// AggregateChecksum computes the root checksum over the active document
// subset: rules unconditionally, specs with status=active, and task
// artifacts whose directory has an active spec. Eligible documents are
// hashed in key order so the digest is insensitive to traversal order and
// to inactive content.
func AggregateChecksum(ix *index.Index) (string, error) {
	activeTasks := make(map[string]bool)
	for _, key := range ix.Keys() {
		doc, _ := ix.Get(key)
		if doc.Kind == document.KindSpec && doc.Status == document.StatusActive {
			activeTasks[strings.TrimSuffix(key, "-spec")] = true
		}
	}

	h := sha256.New()
	for _, key := range ix.Keys() {
		doc, _ := ix.Get(key)
		if !eligible(doc, activeTasks) {
			continue
		}
		raw, err := os.ReadFile(doc.Path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", doc.Path, err)
		}
		h.Write(document.NormalizedContent(string(raw)))
	}
	return "sha256:" + hex.EncodeToString(h.Sum(nil)), nil
}

// eligible applies the active-mode filter for one document.
func eligible(doc *document.Document, activeTasks map[string]bool) bool {
	switch {
	case doc.Kind == document.KindRule:
		return true
	case doc.Kind == document.KindSpec:
		return doc.Status == document.StatusActive
	case document.IsArtifactKind(doc.Kind):
		return activeTasks[filepath.Base(filepath.Dir(doc.Path))]
	default:
		return false
	}
}

// relativePath renders a document path relative to root with forward
// slashes, falling back to the original path when it is not under root.
func relativePath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// nullable maps an absent field to nil so it serializes as YAML null.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// tagsOrEmpty keeps the manifest shape stable: absent tags serialize as an
// empty list, never null.
func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
