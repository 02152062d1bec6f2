// Package knowledge 定义作品集助手使用的只读知识库。
//
// 知识库在进程启动时加载一次，之后由所有查询共享且从不修改。
package knowledge

import (
	"fmt"
	"sort"
	"strings"
)

// TechStack 技术栈
type TechStack struct {
	Frontend    []string `yaml:"frontend" json:"frontend"`
	Backend     []string `yaml:"backend" json:"backend"`
	Deployment  []string `yaml:"deployment" json:"deployment"`
	Specialties []string `yaml:"specialties" json:"specialties"`
}

// All 返回技术栈中的全部条目（按 frontend、backend、deployment、specialties 顺序）
func (t TechStack) All() []string {
	all := make([]string, 0, len(t.Frontend)+len(t.Backend)+len(t.Deployment)+len(t.Specialties))
	all = append(all, t.Frontend...)
	all = append(all, t.Backend...)
	all = append(all, t.Deployment...)
	all = append(all, t.Specialties...)
	return all
}

// Philosophy 工作理念
type Philosophy struct {
	// Approach 总体方法
	Approach string `yaml:"approach" json:"approach"`
	// Principles 原则列表
	Principles []string `yaml:"principles" json:"principles"`
}

// KnowledgeBase 作品集知识库快照
type KnowledgeBase struct {
	Bio                     string             `yaml:"bio" json:"bio"`
	TechStack               TechStack          `yaml:"techStack" json:"techStack"`
	Projects                []Project          `yaml:"projects" json:"projects"`
	Expertise               []Expertise        `yaml:"expertise" json:"expertise"`
	MusicInspirations       []MusicInspiration `yaml:"musicInspirations" json:"musicInspirations"`
	ComplexSystemsTheorists []Theorist         `yaml:"complexSystemsTheorists" json:"complexSystemsTheorists"`
	EmergenceConcepts       []EmergenceConcept `yaml:"emergenceConcepts" json:"emergenceConcepts"`
	Philosophy              Philosophy         `yaml:"philosophy" json:"philosophy"`
}

// Entities 以 Entity 接口返回指定类别的全部实体，保持知识库中的原始顺序
func (kb *KnowledgeBase) Entities(c Category) []Entity {
	var out []Entity
	switch c {
	case CategoryProjects:
		out = toEntities(kb.Projects)
	case CategoryExpertise:
		out = toEntities(kb.Expertise)
	case CategoryMusicInspirations:
		out = toEntities(kb.MusicInspirations)
	case CategoryTheorists:
		out = toEntities(kb.ComplexSystemsTheorists)
	case CategoryEmergenceConcepts:
		out = toEntities(kb.EmergenceConcepts)
	}
	return out
}

func toEntities[E Entity](items []E) []Entity {
	out := make([]Entity, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

// Stats 返回每个类别的实体数量
func (kb *KnowledgeBase) Stats() map[Category]int {
	stats := make(map[Category]int, len(Categories))
	for _, c := range Categories {
		stats[c] = len(kb.Entities(c))
	}
	return stats
}

// EntityCount 返回五个类别的实体总数
func (kb *KnowledgeBase) EntityCount() int {
	total := 0
	for _, n := range kb.Stats() {
		total += n
	}
	return total
}

// Validate 检查每个实体的可检索文本均非空
func (kb *KnowledgeBase) Validate() error {
	if kb == nil {
		return ErrNilKnowledgeBase
	}
	for _, c := range Categories {
		for i, e := range kb.Entities(c) {
			if strings.TrimSpace(e.SearchText()) == "" {
				return fmt.Errorf("%w: %s[%d]", ErrEmptySearchText, c, i)
			}
		}
	}
	return nil
}

// Vocabulary 返回领域词汇表：所有实体的关键词、技术/示例标签以及技术栈条目，
// 小写、去重并排序。长度小于 minLength 的词条被丢弃。
func (kb *KnowledgeBase) Vocabulary(minLength int) []string {
	seen := make(map[string]struct{})
	add := func(terms ...string) {
		for _, term := range terms {
			term = strings.ToLower(strings.TrimSpace(term))
			if len(term) < minLength {
				continue
			}
			seen[term] = struct{}{}
		}
	}

	for _, p := range kb.Projects {
		add(p.Technologies...)
		add(p.Keywords...)
	}
	for _, e := range kb.Expertise {
		add(e.Examples...)
		add(e.Keywords...)
	}
	for _, m := range kb.MusicInspirations {
		add(m.Keywords...)
	}
	for _, t := range kb.ComplexSystemsTheorists {
		add(t.Keywords...)
	}
	for _, c := range kb.EmergenceConcepts {
		add(c.Examples...)
		add(c.Keywords...)
	}
	add(kb.TechStack.All()...)

	vocab := make([]string, 0, len(seen))
	for term := range seen {
		vocab = append(vocab, term)
	}
	sort.Strings(vocab)
	return vocab
}
