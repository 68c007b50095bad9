// Package index discovers convention documents under a root directory and
// builds the key -> document index.
//
// Rule documents key by their own id; task documents key by a composite of
// the task directory name and the artifact name (TASK-1-spec, TASK-1-plan).
// Keys are unique within one build: the first occurrence wins and later
// occurrences are collected as errors rather than aborting the build.
package index

import (
	"sort"

	"github.com/fyrsmithlabs/aictx/internal/document"
)

// Index maps document keys to parsed documents for one build.
type Index struct {
	docs map[string]*document.Document
}

// New returns an empty index.
func New() *Index {
	return &Index{docs: make(map[string]*document.Document)}
}

// Add stores doc under key. It reports false without overwriting when the
// key is already taken.
func (ix *Index) Add(key string, doc *document.Document) bool {
	if _, exists := ix.docs[key]; exists {
		return false
	}
	ix.docs[key] = doc
	return true
}

// Get returns the document stored under key.
func (ix *Index) Get(key string) (*document.Document, bool) {
	doc, ok := ix.docs[key]
	return doc, ok
}

// Has reports whether key is present.
func (ix *Index) Has(key string) bool {
	_, ok := ix.docs[key]
	return ok
}

// Len returns the number of indexed documents.
func (ix *Index) Len() int {
	return len(ix.docs)
}

// Keys returns all index keys in sorted order. Every consumer that needs a
// deterministic iteration order (validation output, manifest entries,
// checksum aggregation) iterates via Keys.
func (ix *Index) Keys() []string {
	keys := make([]string, 0, len(ix.docs))
	for k := range ix.docs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
