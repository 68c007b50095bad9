// Package document implements the frontmatter document model for the
// ai_context convention.
//
// A document is a Markdown file with a YAML frontmatter header delimited by
// "---" lines. Parsing is purely structural: it extracts the frontmatter
// mapping and body and applies defaults, but does not enforce per-kind
// schema rules. Schema enforcement is a separate explicit step
// (ValidateSchema) so that callers can collect all structural failures
// before evaluating any domain rule.
package document
