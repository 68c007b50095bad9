package document

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FrontmatterDelim separates the YAML header from the Markdown body.
const FrontmatterDelim = "---"

// FormatError reports a structurally malformed document: missing
// delimiters, invalid YAML, or a frontmatter block without id and kind.
type FormatError struct {
	Path   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// Parse parses one file's content into a Document. It is a pure function
// of its inputs and applies the defaulting policy (version=1, empty tag
// and reference lists, scalar-to-list coercion). Schema rules are not
// checked here; see ValidateSchema.
func Parse(path, content string) (*Document, error) {
	fm, body, err := splitFrontmatter(path, content)
	if err != nil {
		return nil, err
	}

	id := stringField(fm["id"])
	kind := stringField(fm["kind"])
	if id == "" || kind == "" {
		return nil, &FormatError{Path: path, Reason: "frontmatter must contain id and kind"}
	}

	return &Document{
		Path:           path,
		ID:             id,
		Kind:           kind,
		Version:        normalizeVersion(fm["version"]),
		Status:         stringField(fm["status"]),
		Complexity:     stringField(fm["complexity"]),
		Tags:           normalizeStringList(fm["tags"]),
		References:     normalizeStringList(fm["references"]),
		Owner:          stringField(fm["owner"]),
		Body:           body,
		RawFrontmatter: fm,
	}, nil
}

// splitFrontmatter extracts the YAML mapping between the first and second
// delimiter and returns it with the remaining body.
func splitFrontmatter(path, content string) (map[string]any, string, error) {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, FrontmatterDelim) {
		return nil, "", &FormatError{Path: path, Reason: "missing opening frontmatter delimiter ---"}
	}

	rest := strings.TrimLeft(trimmed[len(FrontmatterDelim):], "\r\n")
	idx := strings.Index(rest, "\n"+FrontmatterDelim)
	if idx == -1 {
		idx = strings.Index(rest, "\r\n"+FrontmatterDelim)
	}
	if idx == -1 {
		return nil, "", &FormatError{Path: path, Reason: "missing closing frontmatter delimiter ---"}
	}

	fmBlock := strings.TrimSpace(rest[:idx])
	body := rest[idx+1:]
	if _, after, found := strings.Cut(body, FrontmatterDelim); found {
		body = after
	}
	body = strings.TrimLeft(body, "\r\n")

	var raw any
	if err := yaml.Unmarshal([]byte(fmBlock), &raw); err != nil {
		return nil, "", &FormatError{Path: path, Reason: fmt.Sprintf("invalid YAML in frontmatter: %v", err)}
	}
	if raw == nil {
		return map[string]any{}, body, nil
	}
	fm, ok := raw.(map[string]any)
	if !ok {
		return nil, "", &FormatError{Path: path, Reason: "frontmatter must be a YAML mapping"}
	}
	return fm, body, nil
}

// stringField renders a scalar frontmatter value as a trimmed string.
// Absent values become "".
func stringField(v any) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(stringify(v))
}

// stringify renders a YAML scalar the way it was written where possible.
func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// normalizeStringList coerces a frontmatter value into a string list:
// absent becomes empty, a sequence keeps its order, and a lone scalar
// becomes a single-element list.
func normalizeStringList(v any) []string {
	if v == nil {
		return []string{}
	}
	if seq, ok := v.([]any); ok {
		out := make([]string, 0, len(seq))
		for _, item := range seq {
			out = append(out, stringify(item))
		}
		return out
	}
	return []string{stringify(v)}
}

// normalizeVersion coerces a frontmatter value into a positive integer
// version, defaulting to 1 for missing or unusable input. It never fails.
func normalizeVersion(v any) int {
	n := 1
	switch val := v.(type) {
	case nil:
	case int:
		n = val
	case int64:
		n = int(val)
	case float64:
		n = int(val)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(val))
		if err == nil {
			n = parsed
		}
	}
	if n < 1 {
		return 1
	}
	return n
}

// NormalizedContent converts raw document content into its canonical byte
// form for hashing: CRLF and lone CR collapse to LF, and outer whitespace
// is stripped. Identical content that differs only in line-ending style
// therefore hashes identically across platforms.
func NormalizedContent(raw string) []byte {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	return []byte(strings.TrimSpace(normalized))
}
