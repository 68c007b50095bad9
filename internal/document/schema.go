package document

import (
	"fmt"
	"strings"
)

// SchemaError reports a per-kind schema violation on an otherwise
// well-formed document.
type SchemaError struct {
	Path    string
	Message string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidateSchema checks the required fields and enum constraints for the
// document's kind. It returns the first violation found as a *SchemaError,
// or nil when the document satisfies its schema.
//
// Required fields by kind:
//
//	spec:  id, status, complexity (status and complexity enum-constrained)
//	rule:  id
//	other: id, kind
func ValidateSchema(doc *Document) error {
	switch doc.Kind {
	case KindSpec:
		if doc.ID == "" {
			return &SchemaError{Path: doc.Path, Message: "spec requires field: id"}
		}
		if doc.Status == "" {
			return &SchemaError{Path: doc.Path, Message: "spec requires field: status"}
		}
		if doc.Complexity == "" {
			return &SchemaError{Path: doc.Path, Message: "spec requires field: complexity"}
		}
		if !IsValidStatus(doc.Status) {
			return &SchemaError{
				Path:    doc.Path,
				Message: fmt.Sprintf("status must be one of [%s]", strings.Join(StatusValues, " ")),
			}
		}
		if !IsValidComplexity(doc.Complexity) {
			return &SchemaError{
				Path:    doc.Path,
				Message: fmt.Sprintf("complexity must be one of [%s]", strings.Join(ComplexityValues, " ")),
			}
		}
	case KindRule:
		if doc.ID == "" {
			return &SchemaError{Path: doc.Path, Message: "rule requires field: id"}
		}
	default:
		if doc.ID == "" || doc.Kind == "" {
			return &SchemaError{Path: doc.Path, Message: "document must have id and kind"}
		}
	}
	return nil
}
