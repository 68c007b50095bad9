package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/aictx/internal/hooks"
	"github.com/fyrsmithlabs/aictx/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the convention: frontmatter, schemas, required files, references",
	Long: `Validate indexes every document under the convention root and checks
per-kind schemas, required artifact sets per complexity tier, and
reference integrity. Every error is reported, not just the first.

Examples:
  # Validate the auto-detected convention root
  aictx validate

  # Validate an explicit root
  aictx validate --root ./ai_context`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	a.hooks.Emit(ctx, hooks.BeforeValidate, map[string]any{"root": a.root})
	result := validate.Run(a.root)
	a.hooks.Emit(ctx, hooks.AfterValidate, map[string]any{
		"root":      a.root,
		"ok":        result.OK,
		"documents": result.Index.Len(),
	})

	if !result.OK {
		return reportErrors(cmd, result.Errors)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Validated %d document(s).\n", result.Index.Len())
	return nil
}
