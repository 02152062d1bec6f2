package config

// EngineConfig 上下文组装配置
//
// 零值字段在 WithDefaults 中填充默认值，因此无法通过配置把阈值设为 0。
type EngineConfig struct {
	// MinTokenLength 查询词元最小长度
	// 默认: 3
	MinTokenLength int `koanf:"min_token_length"`
	// PrefixLength 扩展检索的前缀长度
	// 默认: 4
	PrefixLength int `koanf:"prefix_length"`
	// MaxEditDistance 模糊匹配的编辑距离上限
	// 默认: 2, 范围: [0, 5]
	MaxEditDistance int `koanf:"max_edit_distance"`
	// MinFuzzyTokenLength 参与编辑距离匹配的最短词元长度
	// 默认: 4
	MinFuzzyTokenLength int `koanf:"min_fuzzy_token_length"`
	// MinMatches 精确检索不触发降级的最低命中总数
	// 默认: 1
	MinMatches int `koanf:"min_matches"`
	// MinSingleCategoryMatches 命中集中于单一类别时的最低命中数
	// 默认: 2
	MinSingleCategoryMatches int `koanf:"min_single_category_matches"`
	// MaxComfortableEntities 质量校验的"过多"阈值
	// 默认: 15
	MaxComfortableEntities int `koanf:"max_comfortable_entities"`
	// MaxEntities 上下文实体预算
	// 默认: 15
	MaxEntities int `koanf:"max_entities"`
}

// WithDefaults 返回带默认值的配置
func (c EngineConfig) WithDefaults() EngineConfig {
	if c.MinTokenLength == 0 {
		c.MinTokenLength = 3
	}
	if c.PrefixLength == 0 {
		c.PrefixLength = 4
	}
	if c.MaxEditDistance == 0 {
		c.MaxEditDistance = 2
	}
	if c.MinFuzzyTokenLength == 0 {
		c.MinFuzzyTokenLength = 4
	}
	if c.MinMatches == 0 {
		c.MinMatches = 1
	}
	if c.MinSingleCategoryMatches == 0 {
		c.MinSingleCategoryMatches = 2
	}
	if c.MaxComfortableEntities == 0 {
		c.MaxComfortableEntities = 15
	}
	if c.MaxEntities == 0 {
		c.MaxEntities = 15
	}
	return c
}

// Validate 验证组装配置
func (c *EngineConfig) Validate() error {
	if c.MinTokenLength < 1 {
		return ErrInvalidTokenLength
	}
	if c.PrefixLength < 1 {
		return ErrInvalidPrefixLength
	}
	if c.MaxEditDistance < 0 || c.MaxEditDistance > 5 {
		return ErrInvalidEditDistance
	}
	if c.MaxEntities < 1 || c.MaxComfortableEntities < 1 {
		return ErrInvalidMaxEntities
	}
	return nil
}

// Token 计数器类型
const (
	// CounterTiktoken 使用 tiktoken 精确计数
	CounterTiktoken = "tiktoken"
	// CounterEstimated 使用字符/单词估算
	CounterEstimated = "estimated"
)

// PromptConfig 提示词配置
type PromptConfig struct {
	// Model 用于选择 Token 编码的模型名称
	// 默认: gpt-4o
	Model string `koanf:"model"`
	// Counter Token 计数器类型 (tiktoken, estimated)
	// 默认: tiktoken
	Counter string `koanf:"counter"`
	// MaxTokens 提示词 Token 预算，0 表示不限制
	MaxTokens int `koanf:"max_tokens"`
	// ReserveRatio 为模型回复预留的比例
	// 默认: 0.15, 范围: [0, 1)
	ReserveRatio float64 `koanf:"reserve_ratio"`
	// MaxHistoryMessages 消息列表中保留的历史条数
	// 默认: 10
	MaxHistoryMessages int `koanf:"max_history_messages"`
	// SystemInstructions 覆盖默认的角色与策略指令
	SystemInstructions string `koanf:"system_instructions"`
	// OffTopicInstructions 覆盖默认的离题回复指令
	OffTopicInstructions string `koanf:"off_topic_instructions"`
}

// WithDefaults 返回带默认值的配置
func (c PromptConfig) WithDefaults() PromptConfig {
	if c.Model == "" {
		c.Model = "gpt-4o"
	}
	if c.Counter == "" {
		c.Counter = CounterTiktoken
	}
	if c.ReserveRatio == 0 {
		c.ReserveRatio = 0.15
	}
	if c.MaxHistoryMessages == 0 {
		c.MaxHistoryMessages = 10
	}
	return c
}

// Validate 验证提示词配置
func (c *PromptConfig) Validate() error {
	if c.MaxTokens < 0 {
		return ErrInvalidMaxTokens
	}
	if c.ReserveRatio < 0 || c.ReserveRatio >= 1 {
		return ErrInvalidReserveRatio
	}
	switch c.Counter {
	case "", CounterTiktoken, CounterEstimated:
	default:
		return ErrInvalidCounter
	}
	return nil
}

// KnowledgeConfig 知识库配置
type KnowledgeConfig struct {
	// Path YAML 知识库文件路径，为空时使用内置知识库
	Path string `koanf:"path"`
}
