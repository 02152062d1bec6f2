package context

import (
	"github.com/easyops/portfolio-context-go/pkg/knowledge"
)

// indexedEntity 是预先计算好可检索文本的实体
type indexedEntity struct {
	text  string
	words []string
}

// Index 是知识库的只读检索索引。
//
// 每个实体的可检索文本和单词列表在构建时计算一次，之后可被并发读取。
type Index struct {
	kb      *knowledge.KnowledgeBase
	entries map[knowledge.Category][]indexedEntity
}

// NewIndex 为知识库构建索引，nil 知识库视为空知识库。
func NewIndex(kb *knowledge.KnowledgeBase) *Index {
	if kb == nil {
		kb = &knowledge.KnowledgeBase{}
	}

	idx := &Index{
		kb:      kb,
		entries: make(map[knowledge.Category][]indexedEntity, len(knowledge.Categories)),
	}

	for _, c := range knowledge.Categories {
		entities := kb.Entities(c)
		entries := make([]indexedEntity, len(entities))
		for i, e := range entities {
			text := e.SearchText()
			entries[i] = indexedEntity{
				text:  text,
				words: uniqueWords(text),
			}
		}
		idx.entries[c] = entries
	}

	return idx
}

// KnowledgeBase 返回被索引的知识库
func (idx *Index) KnowledgeBase() *knowledge.KnowledgeBase {
	return idx.kb
}

// Len 返回指定类别的实体数量
func (idx *Index) Len(c knowledge.Category) int {
	return len(idx.entries[c])
}

func uniqueWords(text string) []string {
	all := words(text)
	seen := make(map[string]struct{}, len(all))
	out := all[:0]
	for _, w := range all {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
