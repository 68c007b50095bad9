// Package main implements the aictx CLI for managing ai_context document
// conventions: validation, manifest building, listing, diffing, and export
// to consumer tools.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/aictx/internal/config"
	"github.com/fyrsmithlabs/aictx/internal/hooks"
	"github.com/fyrsmithlabs/aictx/internal/logging"
)

var (
	// rootFlag is the explicit convention root (default: auto-detect).
	rootFlag string
	// logLevelFlag overrides the configured log level.
	logLevelFlag string
	// version information
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "aictx",
	Short: "Manage ai_context document conventions",
	Long: `aictx indexes and validates an ai_context directory convention of
Markdown documents with YAML frontmatter (rules, task specs, and task
artifacts), builds a deterministic content-addressed manifest, and exports
curated document subsets to consumer tools.`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "convention root (default: auto-detect)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(buildManifestCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(exportCmd)
}

// app bundles the per-invocation environment: resolved directories,
// configuration, logger, and the lifecycle hook dispatcher.
type app struct {
	root     string
	aictxDir string
	cfg      *config.Config
	logger   *zap.Logger
	hooks    *hooks.Dispatcher
}

// newApp resolves the convention root and .aictx directory from the
// working directory, loads configuration, and wires logging and hooks.
func newApp() (*app, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	aictxDir, ok := config.FindAictxDir(cwd)
	if !ok {
		aictxDir = filepath.Join(cwd, ".aictx")
	}

	cfg, err := config.Load(aictxDir)
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if logLevelFlag != "" {
		level = logLevelFlag
	}
	logger, err := logging.New(logging.Config{Level: level, Format: cfg.Logging.Format})
	if err != nil {
		return nil, err
	}

	dispatcher := hooks.NewDispatcher(logger)
	dispatcher.RegisterAll(func(_ context.Context, event hooks.Event, data map[string]any) error {
		logger.Debug("lifecycle event", zap.String("event", string(event)), zap.Any("data", data))
		return nil
	})

	return &app{
		root:     config.FindConventionRoot(cwd, rootFlag),
		aictxDir: aictxDir,
		cfg:      cfg,
		logger:   logger,
		hooks:    dispatcher,
	}, nil
}

// reportErrors prints every collected error to stderr and returns the
// non-zero completion signal for the command.
func reportErrors(cmd *cobra.Command, errs []string) error {
	for _, e := range errs {
		fmt.Fprintln(cmd.ErrOrStderr(), e)
	}
	return fmt.Errorf("%d error(s)", len(errs))
}
