package context

import (
	"sort"
)

// LimitConfig 上下文限制配置
type LimitConfig struct {
	// MaxEntities 实体预算，<= 0 时得到空上下文
	MaxEntities int `json:"maxEntities"`
}

// ContextLimitResult 是上下文限制的结果
type ContextLimitResult struct {
	// Context 限制后的上下文；未截断时就是输入本身
	Context *SearchResult `json:"context"`
	// WasTruncated 是否发生截断
	WasTruncated bool `json:"wasTruncated"`
	// OriginalCount 截断前的实体总数
	OriginalCount int `json:"originalCount"`
	// FinalCount 截断后的实体总数
	FinalCount int `json:"finalCount"`
}

// LimitContextSize 将上下文缩减到实体预算以内。
//
// 超出预算时用最大余额法（Hamilton）按比例分配各类别的名额，使总数恰好等于预算；
// 余额相同时按类别优先级（projects > expertise > musicInspirations >
// complexSystemsTheorists > emergenceConcepts）分配。每个类别保留原顺序的前 N 个实体。
// 结果是确定的，对已限制的上下文再次调用不会改变它。
func LimitContextSize(result *SearchResult, config LimitConfig) *ContextLimitResult {
	original := result.TotalEntities()
	budget := max(config.MaxEntities, 0)

	if original <= budget {
		return &ContextLimitResult{
			Context:       result,
			WasTruncated:  false,
			OriginalCount: original,
			FinalCount:    original,
		}
	}

	limited := result.truncated(Apportion(result.Counts(), budget))
	return &ContextLimitResult{
		Context:       limited,
		WasTruncated:  true,
		OriginalCount: original,
		FinalCount:    limited.TotalEntities(),
	}
}

// Apportion 用最大余额法把 budget 个名额分配给各组。
//
// 每组配额为 counts[i]*budget/total，先取整数部分，剩余名额逐个分给小数部分最大的组，
// 小数部分相同时下标小的优先。计算全部使用整数，避免浮点误差影响平局判断。
// budget 不小于总数时每组得到全部数量；budget <= 0 时全部为 0。
func Apportion(counts []int, budget int) []int {
	alloc := make([]int, len(counts))

	total := 0
	for _, c := range counts {
		total += max(c, 0)
	}
	if total == 0 || budget <= 0 {
		return alloc
	}
	if budget >= total {
		for i, c := range counts {
			alloc[i] = max(c, 0)
		}
		return alloc
	}

	remainders := make([]int, len(counts))
	assigned := 0
	for i, c := range counts {
		c = max(c, 0)
		alloc[i] = c * budget / total
		remainders[i] = c * budget % total
		assigned += alloc[i]
	}

	order := make([]int, len(counts))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]] > remainders[order[b]]
	})

	for _, i := range order[:budget-assigned] {
		alloc[i]++
	}

	return alloc
}
