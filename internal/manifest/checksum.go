package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/fyrsmithlabs/aictx/internal/document"
)

// ContentChecksum hashes one document's content: line endings are
// normalized to LF, outer whitespace is stripped, and the UTF-8 bytes are
// hashed with SHA-256. The result is rendered as "sha256:<hex>" and is
// stable across platforms and line-ending conventions.
func ContentChecksum(raw string) string {
	sum := sha256.Sum256(document.NormalizedContent(raw))
	return "sha256:" + hex.EncodeToString(sum[:])
}

// FileChecksum reads path and returns its content checksum.
func FileChecksum(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ContentChecksum(string(raw)), nil
}
