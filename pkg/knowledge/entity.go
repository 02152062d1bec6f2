package knowledge

import "strings"

// Category 表示知识实体所属的类别
type Category string

const (
	// CategoryProjects 项目
	CategoryProjects Category = "projects"
	// CategoryExpertise 专业领域
	CategoryExpertise Category = "expertise"
	// CategoryMusicInspirations 音乐灵感
	CategoryMusicInspirations Category = "musicInspirations"
	// CategoryTheorists 复杂系统理论家
	CategoryTheorists Category = "complexSystemsTheorists"
	// CategoryEmergenceConcepts 涌现概念
	CategoryEmergenceConcepts Category = "emergenceConcepts"
)

// Categories 按固定优先级列出全部类别（索引越小优先级越高）。
// 截断时的平局按此顺序决定。
var Categories = []Category{
	CategoryProjects,
	CategoryExpertise,
	CategoryMusicInspirations,
	CategoryTheorists,
	CategoryEmergenceConcepts,
}

// Priority 返回类别的优先级（0 = 最高），未知类别返回 len(Categories)
func (c Category) Priority() int {
	for i, cat := range Categories {
		if cat == c {
			return i
		}
	}
	return len(Categories)
}

// IsValid 检查类别是否有效
func (c Category) IsValid() bool {
	return c.Priority() < len(Categories)
}

// Entity 定义所有可检索知识实体的公共能力
type Entity interface {
	// Category 返回实体类别
	Category() Category
	// Label 返回人类可读的标签
	Label() string
	// SearchText 返回小写的可检索文本（标签 + 描述 + 标签列表 + 关键词）
	SearchText() string
}

// Project 项目
type Project struct {
	// Title 项目标题
	Title string `yaml:"title" json:"title"`
	// Description 项目描述
	Description string `yaml:"description" json:"description"`
	// Technologies 使用的技术
	Technologies []string `yaml:"technologies" json:"technologies,omitempty"`
	// Year 年份
	Year int `yaml:"year,omitempty" json:"year,omitempty"`
	// Keywords 检索关键词
	Keywords []string `yaml:"keywords" json:"keywords,omitempty"`
}

func (p Project) Category() Category { return CategoryProjects }
func (p Project) Label() string      { return p.Title }
func (p Project) SearchText() string {
	return searchText(p.Title, p.Description, p.Technologies, p.Keywords)
}

// Expertise 专业领域
type Expertise struct {
	// Area 领域名称
	Area string `yaml:"area" json:"area"`
	// Description 领域描述
	Description string `yaml:"description" json:"description"`
	// Examples 示例
	Examples []string `yaml:"examples" json:"examples,omitempty"`
	// Keywords 检索关键词
	Keywords []string `yaml:"keywords" json:"keywords,omitempty"`
}

func (e Expertise) Category() Category { return CategoryExpertise }
func (e Expertise) Label() string      { return e.Area }
func (e Expertise) SearchText() string {
	return searchText(e.Area, e.Description, e.Examples, e.Keywords)
}

// MusicInspiration 音乐灵感
type MusicInspiration struct {
	// Artist 艺术家
	Artist string `yaml:"artist" json:"artist"`
	// Genre 流派
	Genre string `yaml:"genre" json:"genre"`
	// Influence 对作品的影响
	Influence string `yaml:"influence" json:"influence"`
	// Keywords 检索关键词
	Keywords []string `yaml:"keywords" json:"keywords,omitempty"`
}

func (m MusicInspiration) Category() Category { return CategoryMusicInspirations }
func (m MusicInspiration) Label() string      { return m.Artist }
func (m MusicInspiration) SearchText() string {
	return searchText(m.Artist, m.Influence, []string{m.Genre}, m.Keywords)
}

// Theorist 复杂系统理论家
type Theorist struct {
	// Name 姓名
	Name string `yaml:"name" json:"name"`
	// Field 研究领域
	Field string `yaml:"field" json:"field"`
	// Contribution 主要贡献
	Contribution string `yaml:"contribution" json:"contribution"`
	// Works 代表作
	Works []string `yaml:"works" json:"works,omitempty"`
	// Keywords 检索关键词
	Keywords []string `yaml:"keywords" json:"keywords,omitempty"`
}

func (t Theorist) Category() Category { return CategoryTheorists }
func (t Theorist) Label() string      { return t.Name }
func (t Theorist) SearchText() string {
	return searchText(t.Name, t.Contribution, append([]string{t.Field}, t.Works...), t.Keywords)
}

// EmergenceConcept 涌现概念
type EmergenceConcept struct {
	// Concept 概念名称
	Concept string `yaml:"concept" json:"concept"`
	// Description 概念描述
	Description string `yaml:"description" json:"description"`
	// Examples 示例
	Examples []string `yaml:"examples" json:"examples,omitempty"`
	// Keywords 检索关键词
	Keywords []string `yaml:"keywords" json:"keywords,omitempty"`
}

func (c EmergenceConcept) Category() Category { return CategoryEmergenceConcepts }
func (c EmergenceConcept) Label() string      { return c.Concept }
func (c EmergenceConcept) SearchText() string {
	return searchText(c.Concept, c.Description, c.Examples, c.Keywords)
}

// searchText 拼接并小写化实体的可检索字段，跳过空白部分
func searchText(label, description string, tags, keywords []string) string {
	parts := make([]string, 0, 2+len(tags)+len(keywords))
	add := func(values ...string) {
		for _, s := range values {
			if s = strings.TrimSpace(s); s != "" {
				parts = append(parts, strings.ToLower(s))
			}
		}
	}
	add(label, description)
	add(tags...)
	add(keywords...)
	return strings.Join(parts, " ")
}

// compile-time interface check
var _ Entity = Project{}
var _ Entity = Expertise{}
var _ Entity = MusicInspiration{}
var _ Entity = Theorist{}
var _ Entity = EmergenceConcept{}
