package context_test

import (
	"fmt"

	pctx "github.com/easyops/portfolio-context-go/pkg/context"
	"github.com/easyops/portfolio-context-go/pkg/knowledge"
)

// resultWithCounts 构造各类别分别有指定数量实体的上下文
func resultWithCounts(projects, expertise, music, theorists, concepts int) *pctx.SearchResult {
	r := &pctx.SearchResult{FallbackStrategy: pctx.StrategyNone}
	for i := range projects {
		r.Projects = append(r.Projects, knowledge.Project{Title: fmt.Sprintf("project-%d", i)})
	}
	for i := range expertise {
		r.Expertise = append(r.Expertise, knowledge.Expertise{Area: fmt.Sprintf("area-%d", i)})
	}
	for i := range music {
		r.MusicInspirations = append(r.MusicInspirations, knowledge.MusicInspiration{Artist: fmt.Sprintf("artist-%d", i)})
	}
	for i := range theorists {
		r.ComplexSystemsTheorists = append(r.ComplexSystemsTheorists, knowledge.Theorist{Name: fmt.Sprintf("theorist-%d", i)})
	}
	for i := range concepts {
		r.EmergenceConcepts = append(r.EmergenceConcepts, knowledge.EmergenceConcept{Concept: fmt.Sprintf("concept-%d", i)})
	}
	r.RelevanceScore = r.TotalEntities()
	return r
}

// sumOfLists 直接对五个列表求和，不依赖 TotalEntities
func sumOfLists(r *pctx.SearchResult) int {
	return len(r.Projects) + len(r.Expertise) + len(r.MusicInspirations) +
		len(r.ComplexSystemsTheorists) + len(r.EmergenceConcepts)
}

// smallKnowledgeBase 是一个字段很少的合成知识库
func smallKnowledgeBase() *knowledge.KnowledgeBase {
	return &knowledge.KnowledgeBase{
		Bio: "Synthetic test persona.",
		Projects: []knowledge.Project{
			{Title: "Granular Looper", Description: "A granular sampler for live sets.", Keywords: []string{"granular", "sampler"}},
			{Title: "Flock Lights", Description: "Boids driving DMX fixtures.", Technologies: []string{"DMX"}, Keywords: []string{"flocking"}},
		},
		Expertise: []knowledge.Expertise{
			{Area: "Lighting", Description: "Stage lighting and DMX control.", Keywords: []string{"dmx"}},
		},
		EmergenceConcepts: []knowledge.EmergenceConcept{
			{Concept: "Flocking", Description: "Local alignment rules produce coherent groups."},
		},
	}
}
