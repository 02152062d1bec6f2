package context

import (
	"github.com/google/uuid"

	"github.com/easyops/portfolio-context-go/pkg/knowledge"
)

// Engine 是上下文组装引擎。
//
// 构建后不再修改，所有方法都是纯计算，可被多个 goroutine 并发调用。
type Engine struct {
	config     *Config
	index      *Index
	matcher    *Matcher
	classifier *Classifier
}

// EngineOption 配置 Engine。
type EngineOption func(*Engine)

// WithConfig 设置配置。
func WithConfig(config *Config) EngineOption {
	return func(e *Engine) {
		e.config = config
	}
}

// WithClassifier 设置离题分类器，默认使用知识库词汇构建。
func WithClassifier(classifier *Classifier) EngineOption {
	return func(e *Engine) {
		e.classifier = classifier
	}
}

// NewEngine 为知识库快照创建引擎。nil 知识库视为空知识库。
func NewEngine(kb *knowledge.KnowledgeBase, opts ...EngineOption) *Engine {
	e := &Engine{
		config: DefaultConfig(),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.config == nil {
		e.config = DefaultConfig()
	}

	e.index = NewIndex(kb)
	e.matcher = NewMatcher(e.index, e.config)

	if e.classifier == nil {
		e.classifier = NewClassifier(e.index.KnowledgeBase().Vocabulary(e.config.MinVocabularyLength))
	}

	return e
}

// Config 返回引擎的配置。
func (e *Engine) Config() *Config {
	return e.config
}

// KnowledgeBase 返回引擎使用的知识库快照。
func (e *Engine) KnowledgeBase() *knowledge.KnowledgeBase {
	return e.index.KnowledgeBase()
}

// IsPortfolioRelated 判断查询是否属于作品集领域。
func (e *Engine) IsPortfolioRelated(query string) bool {
	return e.classifier.IsPortfolioRelated(query)
}

// Classify 对查询做离题分类并给出依据。
func (e *Engine) Classify(query string) Classification {
	return e.classifier.Classify(query)
}

// ValidateQuality 使用配置的阈值校验上下文质量。
func (e *Engine) ValidateQuality(result *SearchResult) QualityValidation {
	return ValidateContextQuality(result, e.config.MaxComfortableEntities)
}

// LimitContext 使用配置的实体预算限制上下文。
func (e *Engine) LimitContext(result *SearchResult) *ContextLimitResult {
	return LimitContextSize(result, LimitConfig{MaxEntities: e.config.MaxEntities})
}

// Assembly 是一次完整组装的产物与诊断信息
type Assembly struct {
	// ID 本次组装的唯一标识，用于关联日志和追踪
	ID string `json:"id"`
	// Query 原始查询
	Query string `json:"query"`
	// Classification 离题分类结果
	Classification Classification `json:"classification"`
	// Search 检索结果；离题时为空上下文
	Search *SearchResult `json:"search"`
	// Quality 对检索结果的质量校验
	Quality QualityValidation `json:"quality"`
	// Limit 上下文限制结果；未执行限制时为 nil
	Limit *ContextLimitResult `json:"limit,omitempty"`
	// Context 最终交给提示词构建的上下文
	Context *SearchResult `json:"context"`
}

// OffTopic 返回查询是否被判定为离题
func (a *Assembly) OffTopic() bool {
	return !a.Classification.Related
}

// Truncated 返回最终上下文是否经过截断
func (a *Assembly) Truncated() bool {
	return a.Limit != nil && a.Limit.WasTruncated
}

// Assemble 执行完整流水线：离题分类 → 检索（含降级）→ 质量校验 → 按需限制。
//
// 离题查询直接得到空上下文，不做检索。
func (e *Engine) Assemble(query string) *Assembly {
	a := &Assembly{
		ID:             uuid.NewString(),
		Query:          query,
		Classification: e.classifier.Classify(query),
	}

	if !a.Classification.Related {
		a.Search = emptyResult()
	} else {
		a.Search = e.Search(query)
	}

	a.Quality = e.ValidateQuality(a.Search)
	a.Context = a.Search

	if a.Quality.Action == ActionLimitContext {
		a.Limit = e.LimitContext(a.Search)
		a.Context = a.Limit.Context
	}

	return a
}
