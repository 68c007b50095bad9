// Package export copies a declared subset of convention documents to an
// external consumer tool.
//
// The document set comes exclusively from the adapter's declaration file
// (adapters/<name>/context.json under the convention root); indexed
// documents that are not declared are never exported. Export is the one
// fail-fast path in the system: every declared source is checked before
// any file is copied, so a bad declaration leaves the output directory
// untouched.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fyrsmithlabs/aictx/internal/document"
	"github.com/fyrsmithlabs/aictx/internal/index"
	"github.com/fyrsmithlabs/aictx/internal/manifest"
)

// DeclarationFilename is the adapter declaration file name, also written
// into the output directory with the enriched payload.
const DeclarationFilename = "context.json"

var (
	// ErrDeclarationNotFound indicates the adapter has no declaration file.
	ErrDeclarationNotFound = errors.New("adapter declaration not found")

	// ErrMissingOutputDir indicates a declaration without an output_dir.
	ErrMissingOutputDir = errors.New("adapter declaration must contain output_dir")

	// ErrMissingSource indicates a declared document without a source path.
	ErrMissingSource = errors.New("document entry missing source")

	// ErrSourceNotFound indicates a declared source absent from disk.
	ErrSourceNotFound = errors.New("declared source not found")
)

// Declaration is the adapter's context.json: an output directory plus the
// documents to export.
type Declaration struct {
	OutputDir string     `json:"output_dir"`
	Documents []Declared `json:"documents"`
}

// Declared is one document entry as written by the adapter owner. Target
// defaults to Source; Version defaults to 1 for undeclared, unindexed
// documents.
type Declared struct {
	ID      string   `json:"id"`
	Kind    string   `json:"kind"`
	Source  string   `json:"source"`
	Target  string   `json:"target"`
	Version int      `json:"version"`
	Tags    []string `json:"tags"`
}

// Document is one enriched payload entry. Status, Complexity, and Checksum
// are nil when the document is not present in the index.
type Document struct {
	ID         string   `json:"id"`
	Kind       string   `json:"kind"`
	Source     string   `json:"source"`
	Target     string   `json:"target"`
	Version    int      `json:"version"`
	Status     *string  `json:"status"`
	Complexity *string  `json:"complexity"`
	Checksum   *string  `json:"checksum"`
	Tags       []string `json:"tags"`
}

// Payload is the enriched export contract written into the output
// directory alongside the copied files.
type Payload struct {
	OutputDir string     `json:"output_dir"`
	Documents []Document `json:"documents"`
}

// LoadDeclaration reads adapters/<name>/context.json under the convention
// root.
func LoadDeclaration(root, adapterName string) (*Declaration, error) {
	path := filepath.Join(root, "adapters", adapterName, DeclarationFilename)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDeclarationNotFound, path)
		}
		return nil, fmt.Errorf("failed to read adapter declaration %s: %w", path, err)
	}
	var decl Declaration
	if err := json.Unmarshal(data, &decl); err != nil {
		return nil, fmt.Errorf("failed to parse adapter declaration %s: %w", path, err)
	}
	if decl.OutputDir == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingOutputDir, path)
	}
	return &decl, nil
}

// BuildPayload validates every declared source against disk (fail fast,
// before any copy) and enriches each entry from the index when its id or
// resolved source path matches an indexed document.
func BuildPayload(decl *Declaration, root string, ix *index.Index, adapterName string) (*Payload, error) {
	byPath := indexByPath(ix)
	payload := &Payload{OutputDir: decl.OutputDir, Documents: []Document{}}

	for _, entry := range decl.Documents {
		if entry.Source == "" {
			return nil, fmt.Errorf("adapter %s: %w (id=%s)", adapterName, ErrMissingSource, entry.ID)
		}
		srcPath := filepath.Join(root, entry.Source)
		info, err := os.Stat(srcPath)
		if err != nil || info.IsDir() {
			return nil, fmt.Errorf("adapter %s: %w: %s", adapterName, ErrSourceNotFound, entry.Source)
		}

		target := entry.Target
		if target == "" {
			target = entry.Source
		}
		doc := Document{
			ID:     entry.ID,
			Kind:   entry.Kind,
			Source: entry.Source,
			Target: target,
		}

		indexed := lookupIndexed(ix, byPath, entry.ID, srcPath)
		if indexed != nil {
			checksum, err := manifest.FileChecksum(indexed.Path)
			if err != nil {
				return nil, err
			}
			doc.Version = indexed.Version
			doc.Status = nullable(indexed.Status)
			doc.Complexity = nullable(indexed.Complexity)
			doc.Checksum = &checksum
			doc.Tags = tagsOrEmpty(indexed.Tags)
		} else {
			doc.Version = entry.Version
			if doc.Version == 0 {
				doc.Version = 1
			}
			doc.Tags = tagsOrEmpty(entry.Tags)
		}
		payload.Documents = append(payload.Documents, doc)
	}
	return payload, nil
}

// Run executes a full export: load the declaration, build the payload
// (which pre-flights every source), copy the declared files into the
// output directory, and write the enriched context.json next to them.
func Run(root string, ix *index.Index, adapterName string) (*Payload, error) {
	decl, err := LoadDeclaration(root, adapterName)
	if err != nil {
		return nil, err
	}
	payload, err := BuildPayload(decl, root, ix, adapterName)
	if err != nil {
		return nil, err
	}

	outDir := payload.OutputDir
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(root, outDir)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, doc := range payload.Documents {
		if err := copyFile(filepath.Join(root, doc.Source), filepath.Join(outDir, doc.Target)); err != nil {
			return nil, err
		}
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export payload: %w", err)
	}
	contextPath := filepath.Join(outDir, DeclarationFilename)
	if err := os.WriteFile(contextPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", contextPath, err)
	}
	return payload, nil
}

// copyFile copies src to dst with whole-content reads and writes,
// creating parent directories as needed.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(dst), err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return nil
}

// indexByPath maps each indexed document's cleaned path to the document
// for source-path enrichment lookups.
func indexByPath(ix *index.Index) map[string]*document.Document {
	byPath := make(map[string]*document.Document)
	for _, key := range ix.Keys() {
		doc, _ := ix.Get(key)
		byPath[filepath.Clean(doc.Path)] = doc
	}
	return byPath
}

// lookupIndexed resolves a declared entry to an indexed document by id
// first, then by its resolved source path.
func lookupIndexed(ix *index.Index, byPath map[string]*document.Document, id, srcPath string) *document.Document {
	if id != "" {
		if doc, ok := ix.Get(id); ok {
			return doc
		}
	}
	return byPath[filepath.Clean(srcPath)]
}

// nullable maps an absent field to nil so it serializes as JSON null.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// tagsOrEmpty keeps the payload shape stable: absent tags serialize as an
// empty list, never null.
func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
