package index

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/aictx/internal/document"
)

func parseMust(t *testing.T, path, content string) *document.Document {
	t.Helper()
	doc, err := document.Parse(path, content)
	require.NoError(t, err)
	return doc
}
