package index

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fyrsmithlabs/aictx/internal/document"
)

// ArtifactFiles lists the recognized task artifact filenames besides
// spec.md, in canonical order.
var ArtifactFiles = []string{
	"context.md",
	"plan.md",
	"implementation.md",
	"review.md",
	"tests-review.md",
}

// Required artifact filenames per complexity tier, in canonical order.
var (
	trivialFiles  = []string{"spec.md", "implementation.md"}
	normalFiles   = []string{"spec.md", "plan.md", "implementation.md", "tests-review.md"}
	criticalFiles = []string{"spec.md", "context.md", "plan.md", "implementation.md", "review.md", "tests-review.md"}
)

// RequiredFiles returns the artifact filenames a task must carry for the
// given complexity tier. An empty or unrecognized tier falls back to the
// normal set.
func RequiredFiles(complexity string) []string {
	switch complexity {
	case document.ComplexityTrivial:
		return trivialFiles
	case document.ComplexityCritical:
		return criticalFiles
	default:
		return normalFiles
	}
}

// CollectRules returns the sorted paths of all .md files directly under
// root/rules. A missing rules directory yields an empty list.
func CollectRules(root string) []string {
	rulesDir := filepath.Join(root, "rules")
	entries, err := os.ReadDir(rulesDir)
	if err != nil {
		return nil
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		paths = append(paths, filepath.Join(rulesDir, entry.Name()))
	}
	sort.Strings(paths)
	return paths
}

// CollectTaskDirs returns the sorted immediate subdirectories of
// root/tasks that contain a spec.md. A directory without spec.md is not a
// task and is silently ignored.
func CollectTaskDirs(root string) []string {
	tasksDir := filepath.Join(root, "tasks")
	entries, err := os.ReadDir(tasksDir)
	if err != nil {
		return nil
	}
	var dirs []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(tasksDir, entry.Name())
		if _, err := os.Stat(filepath.Join(dir, "spec.md")); err != nil {
			continue
		}
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}
