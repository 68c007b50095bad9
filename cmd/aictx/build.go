package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/aictx/internal/hooks"
	"github.com/fyrsmithlabs/aictx/internal/manifest"
	"github.com/fyrsmithlabs/aictx/internal/state"
	"github.com/fyrsmithlabs/aictx/internal/validate"
)

var buildManifestCmd = &cobra.Command{
	Use:   "build-manifest",
	Short: "Build manifests.yaml and save state for diffing",
	Long: `Build validates the convention, computes per-document checksums and
the active-set root checksum, writes manifests.yaml at the convention
root, and mirrors it into .aictx/state/ for later diffing.

Examples:
  # Build the manifest for the auto-detected root
  aictx build-manifest`,
	Args: cobra.NoArgs,
	RunE: runBuildManifest,
}

func runBuildManifest(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	result := validate.Run(a.root)
	if !result.OK {
		return reportErrors(cmd, result.Errors)
	}

	a.hooks.Emit(ctx, hooks.BeforeBuildManifest, map[string]any{
		"root":      a.root,
		"documents": result.Index.Len(),
	})

	m, err := manifest.Build(a.root, result.Index, a.cfg.ConventionVersion)
	if err != nil {
		return err
	}
	if err := m.Write(a.root); err != nil {
		return err
	}
	if err := state.NewStore(a.aictxDir).Save(m); err != nil {
		return err
	}

	a.hooks.Emit(ctx, hooks.AfterBuildManifest, map[string]any{
		"root":          a.root,
		"documents":     len(m.Documents),
		"root_checksum": m.RootChecksum,
	})

	fmt.Fprintf(cmd.OutOrStdout(), "Built manifest: %d documents, active_set=%d.\n",
		len(m.Documents), len(m.ActiveSet))
	return nil
}
