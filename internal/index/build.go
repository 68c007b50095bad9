package index

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fyrsmithlabs/aictx/internal/document"
)

// Build walks the convention layout under root and indexes every
// discovered document. It never fails for a single bad file: each per-file
// failure (unreadable file, malformed frontmatter, duplicate key) becomes
// one entry in the returned error list and indexing continues. Errors are
// ordered by discovery: rules first, then task directories, each sorted by
// path.
func Build(root string) (*Index, []string) {
	ix := New()
	var errs []string

	for _, path := range CollectRules(root) {
		doc, err := parseFile(path)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		if !ix.Add(doc.ID, doc) {
			errs = append(errs, fmt.Sprintf("%s: duplicate id %s", path, doc.ID))
		}
	}

	for _, taskDir := range CollectTaskDirs(root) {
		taskName := filepath.Base(taskDir)

		specPath := filepath.Join(taskDir, "spec.md")
		specKey := taskName + "-spec"
		doc, err := parseFile(specPath)
		if err != nil {
			errs = append(errs, err.Error())
		} else if !ix.Add(specKey, doc) {
			errs = append(errs, fmt.Sprintf("%s: duplicate id %s", specPath, specKey))
		}

		for _, name := range ArtifactFiles {
			path := filepath.Join(taskDir, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			artifact, err := parseFile(path)
			if err != nil {
				errs = append(errs, err.Error())
				continue
			}
			key := taskName + "-" + strings.TrimSuffix(name, ".md")
			if !ix.Add(key, artifact) {
				errs = append(errs, fmt.Sprintf("%s: duplicate key %s", path, key))
			}
		}
	}

	return ix, errs
}

// parseFile reads and parses one document file.
func parseFile(path string) (*document.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return document.Parse(path, string(content))
}
