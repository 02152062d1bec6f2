package context

import (
	"slices"

	"github.com/easyops/portfolio-context-go/pkg/knowledge"
)

// FallbackStrategy 表示组装上下文时使用的降级级别
type FallbackStrategy string

const (
	// StrategyNone 精确检索即满足要求
	StrategyNone FallbackStrategy = "none"
	// StrategyBroaderSearch 使用了前缀/模糊扩展检索
	StrategyBroaderSearch FallbackStrategy = "broader_search"
	// StrategyReturnAll 返回了全部实体
	StrategyReturnAll FallbackStrategy = "return_all"
)

// SearchResult 是一次检索得到的上下文。
//
// Bio、TechStack、Philosophy 始终包含且不计入 RelevanceScore；
// RelevanceScore 等于五个类别列表长度之和。
type SearchResult struct {
	Bio                     string                       `json:"bio"`
	TechStack               knowledge.TechStack          `json:"techStack"`
	Projects                []knowledge.Project          `json:"projects"`
	Expertise               []knowledge.Expertise        `json:"expertise"`
	MusicInspirations       []knowledge.MusicInspiration `json:"musicInspirations"`
	ComplexSystemsTheorists []knowledge.Theorist         `json:"complexSystemsTheorists"`
	EmergenceConcepts       []knowledge.EmergenceConcept `json:"emergenceConcepts"`
	Philosophy              knowledge.Philosophy         `json:"philosophy"`
	RelevanceScore          int                          `json:"relevanceScore"`
	FallbackStrategy        FallbackStrategy             `json:"fallbackStrategy"`
}

// Count 返回指定类别的实体数量
func (r *SearchResult) Count(c knowledge.Category) int {
	if r == nil {
		return 0
	}
	switch c {
	case knowledge.CategoryProjects:
		return len(r.Projects)
	case knowledge.CategoryExpertise:
		return len(r.Expertise)
	case knowledge.CategoryMusicInspirations:
		return len(r.MusicInspirations)
	case knowledge.CategoryTheorists:
		return len(r.ComplexSystemsTheorists)
	case knowledge.CategoryEmergenceConcepts:
		return len(r.EmergenceConcepts)
	default:
		return 0
	}
}

// Counts 按 knowledge.Categories 顺序返回各类别数量
func (r *SearchResult) Counts() []int {
	counts := make([]int, len(knowledge.Categories))
	for i, c := range knowledge.Categories {
		counts[i] = r.Count(c)
	}
	return counts
}

// TotalEntities 返回五个类别的实体总数，nil 结果为 0
func (r *SearchResult) TotalEntities() int {
	total := 0
	for _, n := range r.Counts() {
		total += n
	}
	return total
}

// truncated 返回每个类别只保留前 limits[i] 个实体的新结果
func (r *SearchResult) truncated(limits []int) *SearchResult {
	out := &SearchResult{
		Bio:                     r.Bio,
		TechStack:               r.TechStack,
		Projects:                head(r.Projects, limits[0]),
		Expertise:               head(r.Expertise, limits[1]),
		MusicInspirations:       head(r.MusicInspirations, limits[2]),
		ComplexSystemsTheorists: head(r.ComplexSystemsTheorists, limits[3]),
		EmergenceConcepts:       head(r.EmergenceConcepts, limits[4]),
		Philosophy:              r.Philosophy,
		FallbackStrategy:        r.FallbackStrategy,
	}
	out.RelevanceScore = out.TotalEntities()
	return out
}

// newSearchResult 按命中下标从知识库挑选实体
func newSearchResult(kb *knowledge.KnowledgeBase, matches CategoryMatches, strategy FallbackStrategy) *SearchResult {
	r := &SearchResult{
		Bio:                     kb.Bio,
		TechStack:               kb.TechStack,
		Projects:                pick(kb.Projects, matches[knowledge.CategoryProjects]),
		Expertise:               pick(kb.Expertise, matches[knowledge.CategoryExpertise]),
		MusicInspirations:       pick(kb.MusicInspirations, matches[knowledge.CategoryMusicInspirations]),
		ComplexSystemsTheorists: pick(kb.ComplexSystemsTheorists, matches[knowledge.CategoryTheorists]),
		EmergenceConcepts:       pick(kb.EmergenceConcepts, matches[knowledge.CategoryEmergenceConcepts]),
		Philosophy:              kb.Philosophy,
		FallbackStrategy:        strategy,
	}
	r.RelevanceScore = r.TotalEntities()
	return r
}

// allEntities 返回包含全部实体的结果
func allEntities(kb *knowledge.KnowledgeBase, strategy FallbackStrategy) *SearchResult {
	r := &SearchResult{
		Bio:                     kb.Bio,
		TechStack:               kb.TechStack,
		Projects:                slices.Clone(nonNil(kb.Projects)),
		Expertise:               slices.Clone(nonNil(kb.Expertise)),
		MusicInspirations:       slices.Clone(nonNil(kb.MusicInspirations)),
		ComplexSystemsTheorists: slices.Clone(nonNil(kb.ComplexSystemsTheorists)),
		EmergenceConcepts:       slices.Clone(nonNil(kb.EmergenceConcepts)),
		Philosophy:              kb.Philosophy,
		FallbackStrategy:        strategy,
	}
	r.RelevanceScore = r.TotalEntities()
	return r
}

// emptyResult 返回不含任何实体的上下文（离题查询使用）
func emptyResult() *SearchResult {
	return newSearchResult(&knowledge.KnowledgeBase{}, nil, StrategyNone)
}

func pick[E any](items []E, indices []int) []E {
	out := make([]E, 0, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(items) {
			out = append(out, items[i])
		}
	}
	return out
}

func head[E any](items []E, n int) []E {
	if n > len(items) {
		n = len(items)
	}
	if n < 0 {
		n = 0
	}
	return slices.Clone(nonNil(items[:n]))
}

// nonNil 保证 JSON 序列化时输出 [] 而不是 null
func nonNil[E any](items []E) []E {
	if items == nil {
		return []E{}
	}
	return items
}
