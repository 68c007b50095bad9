package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes into dir for the duration of the test. It stands in for
// t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(prev))
	})
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func doc(id, kind, extra string) string {
	return "---\nid: " + id + "\nkind: " + kind + "\n" + extra + "---\n\nBody of " + id + ".\n"
}

// fixtureRoot writes a minimal valid convention.
func fixtureRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "rules", "r1.md"), doc("R1", "rule", ""))
	writeFile(t, filepath.Join(root, "tasks", "TASK-1", "spec.md"),
		doc("TASK-1", "spec", "status: active\ncomplexity: trivial\n"))
	writeFile(t, filepath.Join(root, "tasks", "TASK-1", "implementation.md"),
		doc("TASK-1", "implementation", ""))
	return root
}

// runCLI executes the root command with args and returns stdout, stderr,
// and the execution error.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestValidateCommand(t *testing.T) {
	root := fixtureRoot(t)
	chdir(t, root)

	out, _, err := runCLI(t, "validate", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Validated 3 document(s).")
}

func TestValidateCommand_ReportsAllErrors(t *testing.T) {
	root := fixtureRoot(t)
	// Break the spec and add an unresolved reference.
	writeFile(t, filepath.Join(root, "tasks", "TASK-1", "spec.md"),
		doc("TASK-1", "spec", "status: draft\ncomplexity: trivial\nreferences:\n  - GHOST\n"))
	chdir(t, root)

	_, errOut, err := runCLI(t, "validate", "--root", root)
	require.Error(t, err)
	assert.Contains(t, errOut, "status must be one of")
	assert.Contains(t, errOut, "reference to unknown id GHOST")
}

func TestBuildManifestAndDiffCommands(t *testing.T) {
	root := fixtureRoot(t)
	chdir(t, root)

	out, _, err := runCLI(t, "build-manifest", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Built manifest: 3 documents, active_set=1.")

	_, statErr := os.Stat(filepath.Join(root, "manifests.yaml"))
	require.NoError(t, statErr)
	_, statErr = os.Stat(filepath.Join(root, ".aictx", "state", "last_manifest.yaml"))
	require.NoError(t, statErr)

	out, _, err = runCLI(t, "diff", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "No changes.")

	writeFile(t, filepath.Join(root, "rules", "r2.md"), doc("R2", "rule", ""))
	out, _, err = runCLI(t, "diff", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Added: R2")
}

func TestDiffCommand_NoState(t *testing.T) {
	root := fixtureRoot(t)
	chdir(t, root)

	out, _, err := runCLI(t, "diff", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "No previous manifest in state.")
}

func TestListCommand(t *testing.T) {
	root := fixtureRoot(t)
	chdir(t, root)

	out, _, err := runCLI(t, "list", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "R1")
	assert.Contains(t, out, "TASK-1-spec")

	out, _, err = runCLI(t, "list", "--root", root, "--kind", "spec", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "TASK-1-spec"`)
	assert.NotContains(t, out, `"id": "R1"`)

	// Reset flags mutated by this test for later invocations.
	listKindFlag = ""
	listJSONFlag = false
}

func TestExportCommand_UnknownAdapter(t *testing.T) {
	root := fixtureRoot(t)
	chdir(t, root)

	_, _, err := runCLI(t, "export", "zed", "--root", root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in config.adapters")
}

func TestExportCommand(t *testing.T) {
	root := fixtureRoot(t)
	writeFile(t, filepath.Join(root, "adapters", "cursor", "context.json"),
		`{"output_dir": ".cursor", "documents": [{"id": "R1", "kind": "rule", "source": "rules/r1.md"}]}`)
	chdir(t, root)

	out, _, err := runCLI(t, "export", "cursor", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported to cursor.")

	_, statErr := os.Stat(filepath.Join(root, ".cursor", "rules", "r1.md"))
	require.NoError(t, statErr)
}

func TestDisplayPath(t *testing.T) {
	root := filepath.Join("/", "convention")
	assert.Equal(t, "rules/r1.md", displayPath(root, filepath.Join(root, "rules", "r1.md")))
	assert.Equal(t, "/elsewhere/doc.md", displayPath(root, filepath.Join("/", "elsewhere", "doc.md")))
}
