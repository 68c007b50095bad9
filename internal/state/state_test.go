package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/aictx/internal/index"
	"github.com/fyrsmithlabs/aictx/internal/manifest"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func doc(id, kind, extra string) string {
	return "---\nid: " + id + "\nkind: " + kind + "\n" + extra + "---\n\nBody of " + id + ".\n"
}

func buildFixture(t *testing.T) (string, *index.Index, *manifest.Manifest) {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "rules", "r1.md"), doc("R1", "rule", ""))
	writeFile(t, filepath.Join(root, "rules", "r2.md"), doc("R2", "rule", ""))

	ix, errs := index.Build(root)
	require.Empty(t, errs)
	m, err := manifest.Build(root, ix, "0.0.1")
	require.NoError(t, err)
	return root, ix, m
}

func TestStore_SaveLoad(t *testing.T) {
	_, _, m := buildFixture(t)
	store := NewStore(filepath.Join(t.TempDir(), ".aictx"))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded, "no state saved yet")

	require.NoError(t, store.Save(m))
	loaded, err = store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, m.RootChecksum, loaded.RootChecksum)
	assert.Equal(t, m.Documents, loaded.Documents)
}

func TestDiff_NoChanges(t *testing.T) {
	root, ix, m := buildFixture(t)
	_ = root

	report, err := Diff(ix, m)
	require.NoError(t, err)
	assert.True(t, report.Empty())
}

func TestDiff_AddedRemovedChanged(t *testing.T) {
	root, _, m := buildFixture(t)

	// r2 removed, r3 added, r1 edited.
	require.NoError(t, os.Remove(filepath.Join(root, "rules", "r2.md")))
	writeFile(t, filepath.Join(root, "rules", "r3.md"), doc("R3", "rule", ""))
	writeFile(t, filepath.Join(root, "rules", "r1.md"), doc("R1", "rule", "tags: edited\n"))

	ix, errs := index.Build(root)
	require.Empty(t, errs)

	report, err := Diff(ix, m)
	require.NoError(t, err)
	assert.Equal(t, []string{"R3"}, report.Added)
	assert.Equal(t, []string{"R2"}, report.Removed)
	assert.Equal(t, []string{"R1"}, report.Changed)
}

func TestDiff_LineEndingChangeIsNotAChange(t *testing.T) {
	root, _, m := buildFixture(t)

	raw, err := os.ReadFile(filepath.Join(root, "rules", "r1.md"))
	require.NoError(t, err)
	var crlf []byte
	for _, b := range raw {
		if b == '\n' {
			crlf = append(crlf, '\r')
		}
		crlf = append(crlf, b)
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "rules", "r1.md"), crlf, 0o644))

	ix, errs := index.Build(root)
	require.Empty(t, errs)

	report, err := Diff(ix, m)
	require.NoError(t, err)
	assert.True(t, report.Empty(), "normalized checksums must ignore line-ending style")
}

func TestDiff_DoesNotMutateState(t *testing.T) {
	root, _, m := buildFixture(t)
	store := NewStore(filepath.Join(t.TempDir(), ".aictx"))
	require.NoError(t, store.Save(m))

	before, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	writeFile(t, filepath.Join(root, "rules", "r1.md"), doc("R1", "rule", "tags: edited\n"))
	ix, errs := index.Build(root)
	require.Empty(t, errs)
	_, err = Diff(ix, m)
	require.NoError(t, err)

	after, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
