package context

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/easyops/portfolio-context-go/pkg/knowledge"
)

// CategoryMatches 保存每个类别命中实体在知识库中的下标（升序、无重复）。
type CategoryMatches map[knowledge.Category][]int

// Total 返回全部类别的命中总数
func (m CategoryMatches) Total() int {
	total := 0
	for _, idx := range m {
		total += len(idx)
	}
	return total
}

// CategoriesHit 返回至少有一个命中的类别数量
func (m CategoryMatches) CategoriesHit() int {
	n := 0
	for _, idx := range m {
		if len(idx) > 0 {
			n++
		}
	}
	return n
}

// Union 返回两组命中的并集，保持知识库顺序
func (m CategoryMatches) Union(other CategoryMatches) CategoryMatches {
	out := make(CategoryMatches, len(knowledge.Categories))
	for _, c := range knowledge.Categories {
		seen := make(map[int]struct{}, len(m[c])+len(other[c]))
		merged := make([]int, 0, len(m[c])+len(other[c]))
		for _, list := range [][]int{m[c], other[c]} {
			for _, i := range list {
				if _, ok := seen[i]; ok {
					continue
				}
				seen[i] = struct{}{}
				merged = append(merged, i)
			}
		}
		sort.Ints(merged)
		out[c] = merged
	}
	return out
}

// Matcher 按两种精度将关键词与知识实体匹配。
type Matcher struct {
	index               *Index
	prefixLength        int
	maxEditDistance     int
	minFuzzyTokenLength int
}

// NewMatcher 基于索引和配置创建 Matcher。
func NewMatcher(index *Index, config *Config) *Matcher {
	if config == nil {
		config = DefaultConfig()
	}
	return &Matcher{
		index:               index,
		prefixLength:        config.PrefixLength,
		maxEditDistance:     config.MaxEditDistance,
		minFuzzyTokenLength: config.MinFuzzyTokenLength,
	}
}

// MatchExact 返回可检索文本包含任一词元（子串）的实体。
func (m *Matcher) MatchExact(tokens []string) CategoryMatches {
	return m.match(func(e indexedEntity) bool {
		for _, token := range tokens {
			if strings.Contains(e.text, token) {
				return true
			}
		}
		return false
	})
}

// MatchBroadened 返回前缀匹配或编辑距离匹配命中的实体。
//
// 前缀匹配：词元的前 min(len, PrefixLength) 个字符是可检索文本的子串；
// 编辑距离匹配：词元与文本中某个单词的 Levenshtein 距离不超过 MaxEditDistance。
func (m *Matcher) MatchBroadened(tokens []string) CategoryMatches {
	return m.match(func(e indexedEntity) bool {
		for _, token := range tokens {
			if m.prefixMatch(token, e) || m.fuzzyMatch(token, e) {
				return true
			}
		}
		return false
	})
}

func (m *Matcher) prefixMatch(token string, e indexedEntity) bool {
	prefix := []rune(token)
	if m.prefixLength > 0 && len(prefix) > m.prefixLength {
		prefix = prefix[:m.prefixLength]
	}
	return len(prefix) > 0 && strings.Contains(e.text, string(prefix))
}

func (m *Matcher) fuzzyMatch(token string, e indexedEntity) bool {
	tokenLen := utf8.RuneCountInString(token)
	if m.maxEditDistance <= 0 || tokenLen < m.minFuzzyTokenLength {
		return false
	}
	for _, w := range e.words {
		// 长度差本身就是距离下界
		if abs(utf8.RuneCountInString(w)-tokenLen) > m.maxEditDistance {
			continue
		}
		if levenshtein.ComputeDistance(token, w) <= m.maxEditDistance {
			return true
		}
	}
	return false
}

func (m *Matcher) match(pred func(indexedEntity) bool) CategoryMatches {
	out := make(CategoryMatches, len(knowledge.Categories))
	for _, c := range knowledge.Categories {
		var hits []int
		for i, e := range m.index.entries[c] {
			if pred(e) {
				hits = append(hits, i)
			}
		}
		out[c] = hits
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
