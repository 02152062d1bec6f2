package context

import (
	"context"
	"fmt"

	coreerrors "github.com/easyops/portfolio-context-go/pkg/core/errors"
	"github.com/easyops/portfolio-context-go/pkg/core/message"
)

// Builder 定义构建提示词的接口。
type Builder interface {
	// Build 从给定输入组装上下文并渲染成提示词。
	Build(ctx context.Context, input *BuildInput) (*Prompt, error)

	// BuildMessages 从给定输入构建消息列表。
	// 这对于与 LLM 提供商的直接集成很有用。
	BuildMessages(ctx context.Context, input *BuildInput) ([]message.Message, error)
}

// BuildInput 包含提示词构建的所有输入数据。
type BuildInput struct {
	// Query 是访客当前的问题。
	Query string

	// History 是对话历史，只在 BuildMessages 中使用。
	History []message.Message
}

// Prompt 是渲染好的提示词及其来源
type Prompt struct {
	// Assembly 生成该提示词的组装结果；Token 预算导致的额外截断会反映在 Limit 中
	Assembly *Assembly `json:"assembly"`
	// Text 渲染后的提示词文本
	Text string `json:"text"`
	// TokenCount Text 的 Token 数
	TokenCount int `json:"tokenCount"`
	// TokenBudget 可用 Token 预算，0 表示不限制
	TokenBudget int `json:"tokenBudget"`
}

// PromptBuilder 组装上下文并渲染成提示词，必要时收紧实体预算以满足 Token 预算。
type PromptBuilder struct {
	engine     *Engine
	structurer Structurer
}

// BuilderOption 配置 PromptBuilder。
type BuilderOption func(*PromptBuilder)

// WithStructurer 设置结构化器。
func WithStructurer(structurer Structurer) BuilderOption {
	return func(b *PromptBuilder) {
		b.structurer = structurer
	}
}

// NewPromptBuilder 使用给定引擎创建新的 PromptBuilder。
func NewPromptBuilder(engine *Engine, opts ...BuilderOption) *PromptBuilder {
	b := &PromptBuilder{
		engine: engine,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.structurer == nil {
		b.structurer = NewDefaultStructurer()
	}

	return b
}

// Build 组装上下文并渲染提示词。
//
// 配置了 MaxTokens 时，若提示词超出可用预算，会从检索结果重新按比例限制，
// 每次少保留一个实体，直到满足预算。清空全部实体仍然超出时返回 ErrTokenLimitExceeded。
func (b *PromptBuilder) Build(ctx context.Context, input *BuildInput) (*Prompt, error) {
	if input == nil {
		return nil, coreerrors.ErrNilInput
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	config := b.engine.Config()
	counter := config.GetTokenCounter()

	a := b.engine.Assemble(input.Query)
	p := b.render(a, config, counter)
	if p.TokenBudget <= 0 || p.TokenCount <= p.TokenBudget {
		return p, nil
	}

	for n := a.Context.TotalEntities() - 1; n >= 0; n-- {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		a.Limit = LimitContextSize(a.Search, LimitConfig{MaxEntities: n})
		a.Context = a.Limit.Context

		p = b.render(a, config, counter)
		if p.TokenCount <= p.TokenBudget {
			return p, nil
		}
	}

	return nil, fmt.Errorf("%w: %d tokens without knowledge, budget %d",
		coreerrors.ErrTokenLimitExceeded, p.TokenCount, p.TokenBudget)
}

func (b *PromptBuilder) render(a *Assembly, config *Config, counter TokenCounter) *Prompt {
	text := b.structurer.Structure(a, config)
	return &Prompt{
		Assembly:    a,
		Text:        text,
		TokenCount:  counter.Count(text),
		TokenBudget: config.GetAvailableTokens(),
	}
}

// BuildMessages 构建消息列表：系统提示词、最近的对话历史、当前问题。
func (b *PromptBuilder) BuildMessages(ctx context.Context, input *BuildInput) ([]message.Message, error) {
	p, err := b.Build(ctx, input)
	if err != nil {
		return nil, err
	}
	return b.Messages(p, input), nil
}

// Messages 将已构建的提示词与输入中的历史和问题组合成消息列表。
func (b *PromptBuilder) Messages(p *Prompt, input *BuildInput) []message.Message {
	history := message.Conversation(input.History, b.engine.Config().MaxHistoryMessages)

	messages := make([]message.Message, 0, len(history)+2)
	messages = append(messages, message.NewSystemMessage(p.Text))
	messages = append(messages, history...)
	messages = append(messages, message.NewUserMessage(input.Query))

	return messages
}

// 编译时接口检查
var _ Builder = (*PromptBuilder)(nil)
