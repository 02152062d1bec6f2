package context_test

import (
	"testing"

	pctx "github.com/easyops/portfolio-context-go/pkg/context"
	"github.com/easyops/portfolio-context-go/pkg/core/config"
)

func TestDefaultConfig(t *testing.T) {
	c := pctx.DefaultConfig()

	if c.MinTokenLength != 3 || c.PrefixLength != 4 || c.MaxEditDistance != 2 {
		t.Errorf("unexpected matching defaults: %+v", c)
	}
	if c.MaxEntities != 15 || c.MaxComfortableEntities != 15 {
		t.Errorf("entity budget = %d/%d, want 15/15", c.MaxComfortableEntities, c.MaxEntities)
	}
	if c.MinMatches != 1 || c.MinSingleCategoryMatches != 2 {
		t.Errorf("fallback floor = %d/%d, want 1/2", c.MinMatches, c.MinSingleCategoryMatches)
	}
	if c.SystemInstructions == "" || c.OffTopicInstructions == "" {
		t.Error("default instructions should be set")
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Config{
		Engine: config.EngineConfig{
			MaxEntities:              9,
			MinSingleCategoryMatches: 3,
		},
		Prompt: config.PromptConfig{
			Counter:            config.CounterEstimated,
			MaxTokens:          2000,
			SystemInstructions: "Be brief.",
		},
	}

	c := pctx.FromConfig(cfg)

	if c.MaxEntities != 9 {
		t.Errorf("MaxEntities = %d, want 9", c.MaxEntities)
	}
	if c.MaxComfortableEntities != 15 {
		t.Errorf("MaxComfortableEntities = %d, want default 15", c.MaxComfortableEntities)
	}
	if c.MinSingleCategoryMatches != 3 {
		t.Errorf("MinSingleCategoryMatches = %d, want 3", c.MinSingleCategoryMatches)
	}
	if c.MaxTokens != 2000 || c.ReserveRatio != 0.15 {
		t.Errorf("token budget = %d/%v, want 2000/0.15", c.MaxTokens, c.ReserveRatio)
	}
	if c.SystemInstructions != "Be brief." {
		t.Errorf("SystemInstructions = %q", c.SystemInstructions)
	}
	if c.OffTopicInstructions == "" {
		t.Error("unset off-topic instructions should keep the default")
	}
	if _, ok := c.TokenCounter.(*pctx.EstimatedCounter); !ok {
		t.Errorf("TokenCounter = %T, want *EstimatedCounter", c.TokenCounter)
	}
}
