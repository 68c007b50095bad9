// Package validate runs the full validation pipeline over a convention
// root: indexing, per-kind schema checks, required-artifact completeness,
// and reference-graph integrity.
//
// Structural failures are fail-fast: when indexing collects any parse
// error, validation returns those errors immediately and skips the domain
// checks. Domain failures are fail-soft: the three domain checks all run
// and their error lists are concatenated, so a single invocation surfaces
// every violation at once.
package validate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fyrsmithlabs/aictx/internal/document"
	"github.com/fyrsmithlabs/aictx/internal/index"
)

// Result carries the outcome of one validation run. Index is populated
// even on failure so callers can introspect what was discovered.
type Result struct {
	OK     bool
	Errors []string
	Index  *index.Index
}

// Run builds the index for root and validates it. The error list is
// deterministic: parse errors in discovery order, then schema errors by
// index key, then required-file errors by task directory, then reference
// errors by index key.
func Run(root string) Result {
	ix, parseErrs := index.Build(root)
	if len(parseErrs) > 0 {
		return Result{OK: false, Errors: parseErrs, Index: ix}
	}

	var errs []string
	errs = append(errs, checkSchemas(ix)...)
	errs = append(errs, checkRequiredFiles(root, ix)...)
	errs = append(errs, checkReferences(ix)...)

	return Result{OK: len(errs) == 0, Errors: errs, Index: ix}
}

// checkSchemas runs the per-kind schema check over every indexed document.
func checkSchemas(ix *index.Index) []string {
	var errs []string
	for _, key := range ix.Keys() {
		doc, _ := ix.Get(key)
		if err := document.ValidateSchema(doc); err != nil {
			errs = append(errs, err.Error())
		}
	}
	return errs
}

// checkRequiredFiles verifies that every indexed task carries the artifact
// set its spec's complexity tier demands. A spec without a complexity
// (schema-invalid, but still indexed) is held to the normal tier.
func checkRequiredFiles(root string, ix *index.Index) []string {
	var errs []string
	for _, taskDir := range index.CollectTaskDirs(root) {
		specKey := filepath.Base(taskDir) + "-spec"
		spec, ok := ix.Get(specKey)
		if !ok {
			continue
		}
		complexity := spec.Complexity
		if complexity == "" {
			complexity = document.ComplexityNormal
		}
		for _, name := range index.RequiredFiles(complexity) {
			path := filepath.Join(taskDir, name)
			if _, err := os.Stat(path); err != nil {
				errs = append(errs, fmt.Sprintf("%s: required file missing (complexity=%s)", path, complexity))
			}
		}
	}
	return errs
}

// checkReferences verifies that every reference resolves to an index key,
// either directly or through the <id>-spec fallback that lets documents
// reference a task by its bare directory name.
func checkReferences(ix *index.Index) []string {
	var errs []string
	for _, key := range ix.Keys() {
		doc, _ := ix.Get(key)
		for _, ref := range doc.References {
			if !refExists(ix, ref) {
				errs = append(errs, fmt.Sprintf("%s: reference to unknown id %s", doc.Path, ref))
			}
		}
	}
	return errs
}

// refExists reports whether ref resolves. The fallback is asymmetric on
// purpose: a bare task name resolves via its spec key, but a spec key
// never resolves via a bare name.
func refExists(ix *index.Index, ref string) bool {
	return ix.Has(ref) || ix.Has(ref+"-spec")
}
