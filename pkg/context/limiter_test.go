package context_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	pctx "github.com/easyops/portfolio-context-go/pkg/context"
)

func TestApportion(t *testing.T) {
	tests := []struct {
		name   string
		counts []int
		budget int
		want   []int
	}{
		{"mixed remainders", []int{8, 6, 4, 1, 1}, 15, []int{6, 4, 3, 1, 1}},
		{"fits", []int{2, 2, 1, 1, 0}, 15, []int{2, 2, 1, 1, 0}},
		{"zero budget", []int{3, 3, 3, 3, 3}, 0, []int{0, 0, 0, 0, 0}},
		{"negative budget", []int{3, 3}, -1, []int{0, 0}},
		{"ties go to priority order", []int{1, 1, 1, 1, 1}, 3, []int{1, 1, 1, 0, 0}},
		{"even split", []int{10, 10, 10, 0, 0}, 15, []int{5, 5, 5, 0, 0}},
		{"skewed", []int{5, 6, 4, 2, 1}, 15, []int{4, 5, 3, 2, 1}},
		{"all empty", []int{0, 0, 0, 0, 0}, 15, []int{0, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pctx.Apportion(tt.counts, tt.budget)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Apportion(%v, %d) mismatch (-want +got):\n%s", tt.counts, tt.budget, diff)
			}
		})
	}
}

func TestApportion_SumsToBudget(t *testing.T) {
	counts := []int{13, 7, 5, 3, 2}
	total := 30
	for budget := 0; budget <= total; budget++ {
		alloc := pctx.Apportion(counts, budget)
		sum := 0
		for i, a := range alloc {
			if a > counts[i] {
				t.Fatalf("budget %d: alloc[%d] = %d exceeds count %d", budget, i, a, counts[i])
			}
			sum += a
		}
		if sum != budget {
			t.Fatalf("budget %d: allocations sum to %d", budget, sum)
		}
	}
}

func TestLimitContextSize_Truncates(t *testing.T) {
	r := resultWithCounts(8, 6, 4, 1, 1)

	got := pctx.LimitContextSize(r, pctx.LimitConfig{MaxEntities: 15})

	if !got.WasTruncated {
		t.Error("WasTruncated = false, want true")
	}
	if got.OriginalCount != 20 || got.FinalCount != 15 {
		t.Errorf("counts = %d -> %d, want 20 -> 15", got.OriginalCount, got.FinalCount)
	}
	if sumOfLists(got.Context) != 15 {
		t.Errorf("sum of lists = %d, want 15", sumOfLists(got.Context))
	}
	if got.Context.RelevanceScore != 15 {
		t.Errorf("RelevanceScore = %d, want 15", got.Context.RelevanceScore)
	}
	if diff := cmp.Diff([]int{6, 4, 3, 1, 1}, got.Context.Counts()); diff != "" {
		t.Errorf("per-category counts mismatch (-want +got):\n%s", diff)
	}

	// 保留每个类别的前 N 个
	if got.Context.Projects[5].Title != "project-5" {
		t.Errorf("Projects[5] = %q, want project-5", got.Context.Projects[5].Title)
	}

	// 输入不被修改
	if len(r.Projects) != 8 {
		t.Errorf("input mutated: len(Projects) = %d", len(r.Projects))
	}
}

func TestLimitContextSize_WithinBudget(t *testing.T) {
	r := resultWithCounts(2, 2, 1, 1, 0)

	got := pctx.LimitContextSize(r, pctx.LimitConfig{MaxEntities: 15})

	if got.WasTruncated {
		t.Error("WasTruncated = true, want false")
	}
	if got.OriginalCount != 6 || got.FinalCount != 6 {
		t.Errorf("counts = %d -> %d, want 6 -> 6", got.OriginalCount, got.FinalCount)
	}
	if got.Context != r {
		t.Error("context should be returned unchanged")
	}
}

func TestLimitContextSize_Idempotent(t *testing.T) {
	first := pctx.LimitContextSize(resultWithCounts(8, 6, 4, 1, 1), pctx.LimitConfig{MaxEntities: 15})
	second := pctx.LimitContextSize(first.Context, pctx.LimitConfig{MaxEntities: 15})

	if second.WasTruncated {
		t.Error("second application should not truncate")
	}
	if second.Context != first.Context {
		t.Error("second application should return the context unchanged")
	}
}

func TestLimitContextSize_Deterministic(t *testing.T) {
	a := pctx.LimitContextSize(resultWithCounts(5, 6, 4, 2, 1), pctx.LimitConfig{MaxEntities: 15})
	b := pctx.LimitContextSize(resultWithCounts(5, 6, 4, 2, 1), pctx.LimitConfig{MaxEntities: 15})

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("results differ (-a +b):\n%s", diff)
	}
}

func TestLimitContextSize_ZeroBudget(t *testing.T) {
	tests := []struct {
		name          string
		result        *pctx.SearchResult
		wantTruncated bool
	}{
		{"non-empty", resultWithCounts(1, 1, 0, 0, 0), true},
		{"empty", resultWithCounts(0, 0, 0, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, budget := range []int{0, -3} {
				got := pctx.LimitContextSize(tt.result, pctx.LimitConfig{MaxEntities: budget})
				if got.WasTruncated != tt.wantTruncated {
					t.Errorf("budget %d: WasTruncated = %v, want %v", budget, got.WasTruncated, tt.wantTruncated)
				}
				if got.FinalCount != 0 || sumOfLists(got.Context) != 0 {
					t.Errorf("budget %d: FinalCount = %d, want empty context", budget, got.FinalCount)
				}
			}
		})
	}
}
