package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/aictx/internal/index"
)

var (
	listStatusFlag string
	listKindFlag   string
	listJSONFlag   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List indexed documents",
	Long: `List prints every indexed document with its key, kind, status, and
path. Filters narrow the output; --json switches to machine output.

Examples:
  # All documents as a table
  aictx list

  # Active specs only, as JSON
  aictx list --kind spec --status active --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listStatusFlag, "status", "", "filter by status (e.g. active)")
	listCmd.Flags().StringVar(&listKindFlag, "kind", "", "filter by kind (e.g. rule, spec)")
	listCmd.Flags().BoolVar(&listJSONFlag, "json", false, "output JSON")
}

// listItem is one row of list output.
type listItem struct {
	ID         string  `json:"id"`
	Kind       string  `json:"kind"`
	Status     *string `json:"status"`
	Path       string  `json:"path"`
	Complexity *string `json:"complexity"`
}

func runList(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	ix, parseErrs := index.Build(a.root)
	if len(parseErrs) > 0 {
		return reportErrors(cmd, parseErrs)
	}

	var items []listItem
	for _, key := range ix.Keys() {
		doc, _ := ix.Get(key)
		if listStatusFlag != "" && doc.Status != listStatusFlag {
			continue
		}
		if listKindFlag != "" && doc.Kind != listKindFlag {
			continue
		}
		items = append(items, listItem{
			ID:         key,
			Kind:       doc.Kind,
			Status:     optional(doc.Status),
			Path:       displayPath(a.root, doc.Path),
			Complexity: optional(doc.Complexity),
		})
	}

	if listJSONFlag {
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	if len(items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No documents match.")
		return nil
	}
	printTable(cmd, items)
	return nil
}

// printTable renders items as an aligned text table.
func printTable(cmd *cobra.Command, items []listItem) {
	wID, wKind, wStatus := len("id"), len("kind"), len("status")
	for _, item := range items {
		wID = max(wID, len(item.ID))
		wKind = max(wKind, len(item.Kind))
		wStatus = max(wStatus, len(deref(item.Status)))
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-*s  %-*s  %-*s  %s\n", wID, "id", wKind, "kind", wStatus, "status", "path")
	for _, item := range items {
		fmt.Fprintf(out, "%-*s  %-*s  %-*s  %s\n",
			wID, item.ID, wKind, item.Kind, wStatus, deref(item.Status), item.Path)
	}
}

// displayPath renders a document path relative to root with forward
// slashes.
func displayPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
