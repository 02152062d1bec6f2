package context_test

import (
	"testing"

	pctx "github.com/easyops/portfolio-context-go/pkg/context"
)

func TestValidateContextQuality(t *testing.T) {
	tests := []struct {
		name   string
		result *pctx.SearchResult
		want   pctx.QualityValidation
	}{
		{
			name:   "empty context",
			result: resultWithCounts(0, 0, 0, 0, 0),
			want:   pctx.QualityValidation{Valid: false, Issue: pctx.IssueNoMatches, Action: pctx.ActionUseFallback},
		},
		{
			name:   "nil context",
			result: nil,
			want:   pctx.QualityValidation{Valid: false, Issue: pctx.IssueNoMatches, Action: pctx.ActionUseFallback},
		},
		{
			name:   "twenty entities",
			result: resultWithCounts(8, 6, 4, 1, 1),
			want:   pctx.QualityValidation{Valid: false, Issue: pctx.IssueTooManyMatches, Action: pctx.ActionLimitContext},
		},
		{
			name:   "six entities",
			result: resultWithCounts(2, 2, 1, 1, 0),
			want:   pctx.QualityValidation{Valid: true},
		},
		{
			name:   "exactly at ceiling",
			result: resultWithCounts(5, 5, 5, 0, 0),
			want:   pctx.QualityValidation{Valid: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pctx.ValidateContextQuality(tt.result, pctx.DefaultMaxEntities)
			if got != tt.want {
				t.Errorf("ValidateContextQuality() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestValidateContextQuality_DoesNotMutate(t *testing.T) {
	r := resultWithCounts(8, 6, 4, 1, 1)
	before := r.Counts()

	pctx.ValidateContextQuality(r, pctx.DefaultMaxEntities)

	after := r.Counts()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("counts changed: %v -> %v", before, after)
		}
	}
}
