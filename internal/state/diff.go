package state

import (
	"sort"

	"github.com/fyrsmithlabs/aictx/internal/index"
	"github.com/fyrsmithlabs/aictx/internal/manifest"
)

// Report lists the document keys that differ between the live index and
// the last built manifest. All three lists are sorted.
type Report struct {
	Added   []string `json:"added"`
	Removed []string `json:"removed"`
	Changed []string `json:"changed"`
}

// Empty reports whether the diff found no differences.
func (r *Report) Empty() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0 && len(r.Changed) == 0
}

// Diff compares the live index against the stored manifest: keys present
// only in the index are added, keys present only in the manifest are
// removed, and keys present in both are changed when the file's current
// checksum no longer matches the stored one. The comparison is read-only.
func Diff(ix *index.Index, last *manifest.Manifest) (*Report, error) {
	lastChecksums := make(map[string]string, len(last.Documents))
	for _, entry := range last.Documents {
		lastChecksums[entry.ID] = entry.Checksum
	}

	report := &Report{Added: []string{}, Removed: []string{}, Changed: []string{}}

	for _, key := range ix.Keys() {
		if _, ok := lastChecksums[key]; !ok {
			report.Added = append(report.Added, key)
		}
	}
	for id := range lastChecksums {
		if !ix.Has(id) {
			report.Removed = append(report.Removed, id)
		}
	}
	sort.Strings(report.Removed)

	for _, key := range ix.Keys() {
		stored, ok := lastChecksums[key]
		if !ok {
			continue
		}
		doc, _ := ix.Get(key)
		current, err := manifest.FileChecksum(doc.Path)
		if err != nil {
			return nil, err
		}
		if current != stored {
			report.Changed = append(report.Changed, key)
		}
	}

	return report, nil
}
