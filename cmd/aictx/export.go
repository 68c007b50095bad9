package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/aictx/internal/export"
	"github.com/fyrsmithlabs/aictx/internal/hooks"
	"github.com/fyrsmithlabs/aictx/internal/validate"
)

var exportCmd = &cobra.Command{
	Use:   "export <adapter>",
	Short: "Export declared documents to a consumer tool",
	Long: `Export copies the documents declared in adapters/<name>/context.json
to the adapter's output directory and writes the enriched payload next to
them. Every declared source is checked before any file is copied; a
missing source aborts the export with nothing written.

Examples:
  aictx export cursor
  aictx export copilot`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	adapter := args[0]

	if !a.cfg.HasAdapter(adapter) {
		return fmt.Errorf("adapter %q not in config.adapters", adapter)
	}

	result := validate.Run(a.root)
	if !result.OK {
		return reportErrors(cmd, result.Errors)
	}

	a.hooks.Emit(ctx, hooks.BeforeExport, map[string]any{
		"root":    a.root,
		"adapter": adapter,
	})

	payload, err := export.Run(a.root, result.Index, adapter)
	if err != nil {
		return err
	}

	a.hooks.Emit(ctx, hooks.AfterExport, map[string]any{
		"root":      a.root,
		"adapter":   adapter,
		"documents": len(payload.Documents),
	})

	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s.\n", adapter)
	return nil
}
