package context

// 默认参数
const (
	// DefaultMinTokenLength 查询词元的最小长度，更短的词元（"is"、"a"）被丢弃
	DefaultMinTokenLength = 3
	// DefaultPrefixLength 前缀匹配使用的前缀长度
	DefaultPrefixLength = 4
	// DefaultMaxEditDistance 模糊匹配允许的最大编辑距离
	DefaultMaxEditDistance = 2
	// DefaultMaxEntities 上下文实体预算
	DefaultMaxEntities = 15
)

// Config 保存上下文组装的配置。
type Config struct {
	// MinTokenLength 是查询词元的最小长度。
	MinTokenLength int

	// PrefixLength 是扩展检索中前缀匹配的长度。
	PrefixLength int

	// MaxEditDistance 是扩展检索中词级 Levenshtein 距离上限。
	MaxEditDistance int

	// MinFuzzyTokenLength 是参与编辑距离匹配的最短词元长度。
	// 更短的词元在距离 2 以内几乎能匹配任何单词。
	MinFuzzyTokenLength int

	// MinMatches 是精确检索不触发降级的最低命中总数。
	MinMatches int

	// MinSingleCategoryMatches 是命中集中在单一类别时所需的最低命中数，
	// 低于该值即使有命中也会尝试扩展检索。
	MinSingleCategoryMatches int

	// MaxComfortableEntities 是质量校验认为"过多"的阈值。
	MaxComfortableEntities int

	// MaxEntities 是上下文限制器的实体预算。
	MaxEntities int

	// MinVocabularyLength 是离题分类器领域词汇的最短长度。
	MinVocabularyLength int

	// MaxTokens 是提示词的总 Token 预算，0 表示不限制。
	MaxTokens int

	// ReserveRatio 是为模型回复预留的 Token 比例（0.0-1.0）。
	ReserveRatio float64

	// TokenCounter 是要使用的 Token 计数器。
	TokenCounter TokenCounter

	// MaxHistoryMessages 限制 BuildMessages 中包含的历史消息数量。
	MaxHistoryMessages int

	// SystemInstructions 是提示词的角色与策略段落。
	SystemInstructions string

	// OffTopicInstructions 在查询离题时替代知识段落。
	OffTopicInstructions string
}

// ConfigOption 配置 Config。
type ConfigOption func(*Config)

// WithMinTokenLength 设置查询词元最小长度。
func WithMinTokenLength(n int) ConfigOption {
	return func(c *Config) {
		c.MinTokenLength = n
	}
}

// WithPrefixLength 设置前缀匹配长度。
func WithPrefixLength(n int) ConfigOption {
	return func(c *Config) {
		c.PrefixLength = n
	}
}

// WithMaxEditDistance 设置编辑距离上限。
func WithMaxEditDistance(d int) ConfigOption {
	return func(c *Config) {
		c.MaxEditDistance = d
	}
}

// WithMinFuzzyTokenLength 设置参与编辑距离匹配的最短词元长度。
func WithMinFuzzyTokenLength(n int) ConfigOption {
	return func(c *Config) {
		c.MinFuzzyTokenLength = n
	}
}

// WithFallbackFloor 设置降级阈值。
func WithFallbackFloor(minMatches, minSingleCategory int) ConfigOption {
	return func(c *Config) {
		c.MinMatches = minMatches
		c.MinSingleCategoryMatches = minSingleCategory
	}
}

// WithMaxComfortableEntities 设置质量校验阈值。
func WithMaxComfortableEntities(n int) ConfigOption {
	return func(c *Config) {
		c.MaxComfortableEntities = n
	}
}

// WithMaxEntities 设置实体预算。
func WithMaxEntities(n int) ConfigOption {
	return func(c *Config) {
		c.MaxEntities = n
	}
}

// WithMaxTokens 设置提示词 Token 预算。
func WithMaxTokens(tokens int) ConfigOption {
	return func(c *Config) {
		c.MaxTokens = tokens
	}
}

// WithReserveRatio 设置生成预留比例。
func WithReserveRatio(ratio float64) ConfigOption {
	return func(c *Config) {
		c.ReserveRatio = ratio
	}
}

// WithTokenCounter 设置 Token 计数器。
func WithTokenCounter(counter TokenCounter) ConfigOption {
	return func(c *Config) {
		c.TokenCounter = counter
	}
}

// WithMaxHistoryMessages 设置最大历史消息数量。
func WithMaxHistoryMessages(n int) ConfigOption {
	return func(c *Config) {
		c.MaxHistoryMessages = n
	}
}

// WithSystemInstructions 设置角色与策略指令。
func WithSystemInstructions(instructions string) ConfigOption {
	return func(c *Config) {
		c.SystemInstructions = instructions
	}
}

// WithOffTopicInstructions 设置离题回复指令。
func WithOffTopicInstructions(instructions string) ConfigOption {
	return func(c *Config) {
		c.OffTopicInstructions = instructions
	}
}

// DefaultConfig 返回具有合理默认值的 Config。
func DefaultConfig() *Config {
	return &Config{
		MinTokenLength:           DefaultMinTokenLength,
		PrefixLength:             DefaultPrefixLength,
		MaxEditDistance:          DefaultMaxEditDistance,
		MinFuzzyTokenLength:      4,
		MinMatches:               1,
		MinSingleCategoryMatches: 2,
		MaxComfortableEntities:   DefaultMaxEntities,
		MaxEntities:              DefaultMaxEntities,
		MinVocabularyLength:      3,
		MaxTokens:                0,
		ReserveRatio:             0.15,
		TokenCounter:             nil, // 需要时使用 DefaultTokenCounter()
		MaxHistoryMessages:       10,
		SystemInstructions:       defaultSystemInstructions,
		OffTopicInstructions:     defaultOffTopicInstructions,
	}
}

// NewConfig 使用给定的选项创建新的 Config。
func NewConfig(opts ...ConfigOption) *Config {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetAvailableTokens 返回 Token 预算减去预留量，MaxTokens 为 0 时返回 0。
func (c *Config) GetAvailableTokens() int {
	return int(float64(c.MaxTokens) * (1 - c.ReserveRatio))
}

// GetTokenCounter 返回配置的 Token 计数器或默认计数器。
func (c *Config) GetTokenCounter() TokenCounter {
	if c.TokenCounter != nil {
		return c.TokenCounter
	}
	return DefaultTokenCounter()
}

const defaultSystemInstructions = `You are Miles's portfolio assistant. Answer questions about Miles's projects,
expertise, music and influences using only the knowledge below. Keep answers
concise and speak about Miles in the third person.`

const defaultOffTopicInstructions = `The question is outside the scope of this portfolio. Politely explain that
you can only talk about Miles's work, skills, music and influences, and
suggest a related question the visitor could ask instead.`
