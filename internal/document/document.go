package document

// Document kinds. Rules and specs carry schema constraints; the artifact
// kinds are free-form task documents.
const (
	KindRule = "rule"
	KindSpec = "spec"

	KindContext        = "context"
	KindPlan           = "plan"
	KindImplementation = "implementation"
	KindReview         = "review"
	KindTestsReview    = "tests-review"
)

// Spec status values.
const (
	StatusActive     = "active"
	StatusHistorical = "historical"
	StatusObsolete   = "obsolete"
)

// Spec complexity tiers.
const (
	ComplexityTrivial  = "trivial"
	ComplexityNormal   = "normal"
	ComplexityCritical = "critical"
)

// StatusValues lists the valid spec statuses in sorted order.
var StatusValues = []string{StatusActive, StatusHistorical, StatusObsolete}

// ComplexityValues lists the valid complexity tiers in sorted order.
var ComplexityValues = []string{ComplexityCritical, ComplexityNormal, ComplexityTrivial}

// Document is one parsed convention file. It is immutable after parsing;
// Status and Complexity are empty strings when the frontmatter omits them.
type Document struct {
	// Path is the filesystem location the document was parsed from.
	Path string

	// ID is the declared document id. Required, non-empty.
	ID string

	// Kind tags the document (rule, spec, or a task artifact kind).
	Kind string

	// Version is a positive integer, defaulting to 1 on missing or
	// invalid input.
	Version int

	// Status is one of the StatusValues for specs; optional otherwise.
	Status string

	// Complexity is one of the ComplexityValues; required for specs.
	Complexity string

	// Tags is the ordered tag list, empty when absent.
	Tags []string

	// References is the ordered list of referenced document ids.
	References []string

	// Owner is an optional free-form owner string.
	Owner string

	// Body is the raw text after the closing frontmatter delimiter.
	Body string

	// RawFrontmatter preserves the original mapping for forward
	// compatibility with fields this version does not model.
	RawFrontmatter map[string]any
}

// IsValidStatus reports whether s is a recognized spec status.
func IsValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusHistorical, StatusObsolete:
		return true
	}
	return false
}

// IsValidComplexity reports whether c is a recognized complexity tier.
func IsValidComplexity(c string) bool {
	switch c {
	case ComplexityTrivial, ComplexityNormal, ComplexityCritical:
		return true
	}
	return false
}

// IsArtifactKind reports whether k is one of the task artifact kinds.
func IsArtifactKind(k string) bool {
	switch k {
	case KindContext, KindPlan, KindImplementation, KindReview, KindTestsReview:
		return true
	}
	return false
}
