package config

import (
	"os"
	"path/filepath"
)

// FindAictxDir walks upward from start until a .aictx directory is found.
// It reports false when no ancestor carries one.
func FindAictxDir(start string) (string, bool) {
	current, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(current, ".aictx")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

// FindConventionRoot resolves the convention root for an invocation. An
// explicit root wins. Otherwise the walk upward from start prefers a
// directory containing manifests.yaml, then one containing rules/ or
// tasks/, and finally falls back to start itself.
func FindConventionRoot(start, explicitRoot string) string {
	if explicitRoot != "" {
		abs, err := filepath.Abs(explicitRoot)
		if err != nil {
			return explicitRoot
		}
		return abs
	}

	startAbs, err := filepath.Abs(start)
	if err != nil {
		return start
	}
	current := startAbs
	for {
		if _, err := os.Stat(filepath.Join(current, "manifests.yaml")); err == nil {
			return current
		}
		if isDir(filepath.Join(current, "rules")) || isDir(filepath.Join(current, "tasks")) {
			return current
		}
		parent := filepath.Dir(current)
		if parent == current {
			return startAbs
		}
		current = parent
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
