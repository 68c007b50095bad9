package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSchema(t *testing.T) {
	tests := []struct {
		name    string
		doc     *Document
		wantErr string
	}{
		{
			name: "valid spec",
			doc:  &Document{Path: "p", ID: "S1", Kind: KindSpec, Status: StatusActive, Complexity: ComplexityNormal},
		},
		{
			name:    "spec missing status",
			doc:     &Document{Path: "p", ID: "S1", Kind: KindSpec, Complexity: ComplexityNormal},
			wantErr: "spec requires field: status",
		},
		{
			name:    "spec missing complexity",
			doc:     &Document{Path: "p", ID: "S1", Kind: KindSpec, Status: StatusActive},
			wantErr: "spec requires field: complexity",
		},
		{
			name:    "spec invalid status",
			doc:     &Document{Path: "p", ID: "S1", Kind: KindSpec, Status: "draft", Complexity: ComplexityNormal},
			wantErr: "status must be one of",
		},
		{
			name:    "spec invalid complexity",
			doc:     &Document{Path: "p", ID: "S1", Kind: KindSpec, Status: StatusActive, Complexity: "easy"},
			wantErr: "complexity must be one of",
		},
		{
			name: "valid rule without status",
			doc:  &Document{Path: "p", ID: "R1", Kind: KindRule},
		},
		{
			name:    "rule missing id",
			doc:     &Document{Path: "p", Kind: KindRule},
			wantErr: "rule requires field: id",
		},
		{
			name: "artifact needs only id and kind",
			doc:  &Document{Path: "p", ID: "TASK-1-plan", Kind: KindPlan},
		},
		{
			name:    "artifact missing id",
			doc:     &Document{Path: "p", Kind: KindPlan},
			wantErr: "document must have id and kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSchema(tt.doc)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, "p", schemaErr.Path)
		})
	}
}

func TestKindPredicates(t *testing.T) {
	assert.True(t, IsValidStatus(StatusActive))
	assert.True(t, IsValidStatus(StatusHistorical))
	assert.True(t, IsValidStatus(StatusObsolete))
	assert.False(t, IsValidStatus(""))
	assert.False(t, IsValidStatus("draft"))

	assert.True(t, IsValidComplexity(ComplexityTrivial))
	assert.False(t, IsValidComplexity("hard"))

	for _, k := range []string{KindContext, KindPlan, KindImplementation, KindReview, KindTestsReview} {
		assert.True(t, IsArtifactKind(k), k)
	}
	assert.False(t, IsArtifactKind(KindRule))
	assert.False(t, IsArtifactKind(KindSpec))
}
