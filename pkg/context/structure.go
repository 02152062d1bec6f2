package context

import (
	"fmt"
	"strings"

	"github.com/easyops/portfolio-context-go/pkg/knowledge"
)

// Structurer 定义将组装结果组织成提示词文本的接口。
type Structurer interface {
	// Structure 将组装结果组织成结构化的提示词文本。
	Structure(a *Assembly, config *Config) string
}

// DefaultStructurer 按分段标题渲染上下文。
//
// 分段顺序：[Role & Policies]、[Task]、知识分段、[Guidance]。
// 离题查询只渲染角色、任务和离题指引；空分段会被省略。
type DefaultStructurer struct{}

// NewDefaultStructurer 创建新的 DefaultStructurer。
func NewDefaultStructurer() *DefaultStructurer {
	return &DefaultStructurer{}
}

// Structure 渲染组装结果。
func (s *DefaultStructurer) Structure(a *Assembly, config *Config) string {
	if config == nil {
		config = DefaultConfig()
	}

	var sections []string
	add := func(header, body string) {
		if body = strings.TrimSpace(body); body != "" {
			sections = append(sections, header+"\n"+body)
		}
	}

	add("[Role & Policies]", config.SystemInstructions)
	add("[Task]", "Visitor question: "+a.Query)

	if a.OffTopic() {
		add("[Guidance]", config.OffTopicInstructions)
		return strings.Join(sections, "\n\n")
	}

	r := a.Context
	if r != nil {
		add("[Profile]", r.Bio)
		add("[Tech Stack]", renderTechStack(r.TechStack))
		add("[Projects]", renderList(r.Projects, renderProject))
		add("[Expertise]", renderList(r.Expertise, renderExpertise))
		add("[Music Inspirations]", renderList(r.MusicInspirations, renderInspiration))
		add("[Complex Systems Theorists]", renderList(r.ComplexSystemsTheorists, renderTheorist))
		add("[Emergence Concepts]", renderList(r.EmergenceConcepts, renderConcept))
		add("[Philosophy]", renderPhilosophy(r.Philosophy))
	}

	add("[Guidance]", guidance(a))

	return strings.Join(sections, "\n\n")
}

// guidance 根据降级策略和截断情况给出回答语气提示
func guidance(a *Assembly) string {
	var lines []string

	if a.Quality.Issue == IssueNoMatches {
		lines = append(lines, "The knowledge base returned no entries. Say that you do not have details on this topic instead of guessing.")
	}

	if a.Search != nil {
		switch a.Search.FallbackStrategy {
		case StrategyBroaderSearch:
			lines = append(lines, "No entry matched the question exactly; the entries above are close matches. Say the answer is based on related work.")
		case StrategyReturnAll:
			lines = append(lines, "No entry matched the question directly; a general portfolio overview is provided. Answer broadly and invite a more specific question.")
		}
	}

	if a.Truncated() {
		lines = append(lines, fmt.Sprintf("Only %d of %d matching entries are included; mention that more is available on request.",
			a.Limit.FinalCount, a.Limit.OriginalCount))
	}

	return strings.Join(lines, "\n")
}

func renderList[E knowledge.Entity](items []E, render func(E) string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+render(item))
	}
	return strings.Join(lines, "\n")
}

func renderProject(p knowledge.Project) string {
	line := p.Title
	if p.Year > 0 {
		line += fmt.Sprintf(" (%d)", p.Year)
	}
	line += ": " + strings.TrimSpace(p.Description)
	if len(p.Technologies) > 0 {
		line += " [" + strings.Join(p.Technologies, ", ") + "]"
	}
	return line
}

func renderExpertise(e knowledge.Expertise) string {
	line := e.Area + ": " + strings.TrimSpace(e.Description)
	if len(e.Examples) > 0 {
		line += " (e.g. " + strings.Join(e.Examples, ", ") + ")"
	}
	return line
}

func renderInspiration(m knowledge.MusicInspiration) string {
	return fmt.Sprintf("%s (%s): %s", m.Artist, m.Genre, strings.TrimSpace(m.Influence))
}

func renderTheorist(t knowledge.Theorist) string {
	line := fmt.Sprintf("%s, %s: %s", t.Name, t.Field, strings.TrimSpace(t.Contribution))
	if len(t.Works) > 0 {
		line += " Works: " + strings.Join(t.Works, "; ") + "."
	}
	return line
}

func renderConcept(c knowledge.EmergenceConcept) string {
	line := c.Concept + ": " + strings.TrimSpace(c.Description)
	if len(c.Examples) > 0 {
		line += " (e.g. " + strings.Join(c.Examples, ", ") + ")"
	}
	return line
}

func renderTechStack(t knowledge.TechStack) string {
	var lines []string
	for _, group := range []struct {
		name  string
		items []string
	}{
		{"Frontend", t.Frontend},
		{"Backend", t.Backend},
		{"Deployment", t.Deployment},
		{"Specialties", t.Specialties},
	} {
		if len(group.items) > 0 {
			lines = append(lines, group.name+": "+strings.Join(group.items, ", "))
		}
	}
	return strings.Join(lines, "\n")
}

func renderPhilosophy(p knowledge.Philosophy) string {
	lines := []string{strings.TrimSpace(p.Approach)}
	for _, principle := range p.Principles {
		lines = append(lines, "- "+principle)
	}
	return strings.Join(lines, "\n")
}

// 编译时接口检查
var _ Structurer = (*DefaultStructurer)(nil)
