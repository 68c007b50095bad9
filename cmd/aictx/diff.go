package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/aictx/internal/index"
	"github.com/fyrsmithlabs/aictx/internal/state"
)

var diffJSONFlag bool

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Show changes between the workspace and the last built manifest",
	Long: `Diff compares the current index against the manifest stored by the
last build-manifest run and reports added, removed, and changed
documents. The comparison is read-only; stored state is never modified.

Examples:
  aictx diff
  aictx diff --json`,
	Args: cobra.NoArgs,
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().BoolVar(&diffJSONFlag, "json", false, "output JSON")
}

func runDiff(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	ix, parseErrs := index.Build(a.root)
	if len(parseErrs) > 0 {
		return reportErrors(cmd, parseErrs)
	}

	last, err := state.NewStore(a.aictxDir).Load()
	if err != nil {
		return err
	}
	if last == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "No previous manifest in state. Run build-manifest first.")
		return nil
	}

	report, err := state.Diff(ix, last)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if diffJSONFlag {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}
	if len(report.Added) > 0 {
		fmt.Fprintln(out, "Added: "+strings.Join(report.Added, ", "))
	}
	if len(report.Removed) > 0 {
		fmt.Fprintln(out, "Removed: "+strings.Join(report.Removed, ", "))
	}
	if len(report.Changed) > 0 {
		fmt.Fprintln(out, "Changed: "+strings.Join(report.Changed, ", "))
	}
	if report.Empty() {
		fmt.Fprintln(out, "No changes.")
	}
	return nil
}
