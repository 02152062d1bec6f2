package context

import (
	"github.com/easyops/portfolio-context-go/pkg/core/config"
)

// FromConfig 从全局配置创建组装配置。
//
// 未设置的字段使用默认值；指令为空时保留内置指令。
// 计数器类型为 tiktoken 时会加载模型编码，失败则降级到 EstimatedCounter。
func FromConfig(cfg config.Config) *Config {
	engine := cfg.Engine.WithDefaults()
	prompt := cfg.Prompt.WithDefaults()

	opts := []ConfigOption{
		WithMinTokenLength(engine.MinTokenLength),
		WithPrefixLength(engine.PrefixLength),
		WithMaxEditDistance(engine.MaxEditDistance),
		WithMinFuzzyTokenLength(engine.MinFuzzyTokenLength),
		WithFallbackFloor(engine.MinMatches, engine.MinSingleCategoryMatches),
		WithMaxComfortableEntities(engine.MaxComfortableEntities),
		WithMaxEntities(engine.MaxEntities),
		WithMaxTokens(prompt.MaxTokens),
		WithReserveRatio(prompt.ReserveRatio),
		WithMaxHistoryMessages(prompt.MaxHistoryMessages),
	}

	if prompt.SystemInstructions != "" {
		opts = append(opts, WithSystemInstructions(prompt.SystemInstructions))
	}
	if prompt.OffTopicInstructions != "" {
		opts = append(opts, WithOffTopicInstructions(prompt.OffTopicInstructions))
	}

	switch prompt.Counter {
	case config.CounterEstimated:
		opts = append(opts, WithTokenCounter(NewEstimatedCounter()))
	default:
		if counter, err := NewTiktokenCounter(WithModel(prompt.Model)); err == nil {
			opts = append(opts, WithTokenCounter(counter))
		} else {
			opts = append(opts, WithTokenCounter(NewEstimatedCounter()))
		}
	}

	return NewConfig(opts...)
}
