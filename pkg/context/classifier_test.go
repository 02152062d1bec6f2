package context_test

import (
	"testing"

	pctx "github.com/easyops/portfolio-context-go/pkg/context"
	"github.com/easyops/portfolio-context-go/pkg/knowledge"
)

func TestIsPortfolioRelated_OffTopic(t *testing.T) {
	engine := pctx.NewEngine(knowledge.Default())

	queries := []string{
		"what is the capital of France",
		"who is the president of the US",
		"recipe for chocolate cake",
		"weather in London",
		"how to fix a leaky faucet",
		"bitcoin price today",
		"movie review for Inception",
	}

	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			if engine.IsPortfolioRelated(q) {
				t.Errorf("IsPortfolioRelated(%q) = true, want false", q)
			}
			c := engine.Classify(q)
			if c.Reason != pctx.ReasonOffTopicPattern || c.Matched == "" {
				t.Errorf("Classify(%q) = %+v, want off-topic pattern match", q, c)
			}
		})
	}
}

func TestIsPortfolioRelated_InDomain(t *testing.T) {
	engine := pctx.NewEngine(knowledge.Default())

	queries := []string{
		"tell me about your projects",
		"what is your experience with TouchDesigner",
		"you built an AI system",
		"your background in development",
		"how do you use MIDI in your work",
		"what technologies do you use",
		"tell me about your RAG architecture",
	}

	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			if !engine.IsPortfolioRelated(q) {
				t.Errorf("IsPortfolioRelated(%q) = false, want true (%+v)", q, engine.Classify(q))
			}
		})
	}
}

func TestClassify_Reasons(t *testing.T) {
	c := pctx.NewClassifier([]string{"touchdesigner", "midi", "generative art"})

	tests := []struct {
		query       string
		wantRelated bool
		wantReason  pctx.ClassificationReason
	}{
		{"Any TouchDesigner work?", true, pctx.ReasonVocabulary},
		{"Generative art, please", true, pctx.ReasonVocabulary},
		{"tell me about your projects", true, pctx.ReasonOwnership},
		// 词汇优先于离题句式
		{"what is the price of a MIDI controller", true, pctx.ReasonVocabulary},
		{"what is the price of gold", false, pctx.ReasonOffTopicPattern},
		{"asdf qwerty", true, pctx.ReasonDefault},
		{"", true, pctx.ReasonDefault},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := c.Classify(tt.query)
			if got.Related != tt.wantRelated || got.Reason != tt.wantReason {
				t.Errorf("Classify(%q) = %+v, want related=%v reason=%s", tt.query, got, tt.wantRelated, tt.wantReason)
			}
		})
	}
}

func TestClassify_VocabularyMatchesWholeWords(t *testing.T) {
	// "art" 不应命中 "capital of ... start"
	c := pctx.NewClassifier([]string{"art"})

	got := c.Classify("what is the capital of France, for a start")
	if got.Related {
		t.Errorf("Classify() = %+v, vocabulary should only match whole words", got)
	}
}
