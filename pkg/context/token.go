package context

import (
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"

	"github.com/easyops/portfolio-context-go/pkg/core/message"
)

// TokenCounter 定义 Token 计数接口。
type TokenCounter interface {
	// Count 返回给定文本的 Token 数量。
	Count(text string) int

	// CountMessages 返回消息列表的总 Token 数量，包括角色前缀和分隔符。
	CountMessages(messages []message.Message) int
}

// TiktokenCounter 使用 tiktoken 实现精确的 Token 计数。
type TiktokenCounter struct {
	encoding *tiktoken.Tiktoken
	model    string
}

// TiktokenOption 配置 TiktokenCounter。
type TiktokenOption func(*TiktokenCounter)

// WithModel 设置 Token 编码使用的模型。
func WithModel(model string) TiktokenOption {
	return func(c *TiktokenCounter) {
		c.model = model
	}
}

// NewTiktokenCounter 创建新的 TiktokenCounter。
// 模型没有对应编码时降级到 cl100k_base。
func NewTiktokenCounter(opts ...TiktokenOption) (*TiktokenCounter, error) {
	c := &TiktokenCounter{
		model: "gpt-4o",
	}

	for _, opt := range opts {
		opt(c)
	}

	encoding, err := tiktoken.EncodingForModel(c.model)
	if err != nil {
		encoding, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			return nil, err
		}
	}

	c.encoding = encoding
	return c, nil
}

// Count 返回给定文本的 Token 数量。
func (c *TiktokenCounter) Count(text string) int {
	if c.encoding == nil {
		return NewEstimatedCounter().Count(text)
	}
	return len(c.encoding.Encode(text, nil, nil))
}

// CountMessages 返回消息列表的总 Token 数量。
func (c *TiktokenCounter) CountMessages(messages []message.Message) int {
	return countMessages(c, messages, 3)
}

// EstimatedCounter 按字符和单词数估算 Token。
// 这是当 tiktoken 编码不可用（例如离线环境）时的降级方案。
type EstimatedCounter struct {
	// CharsPerToken 是每个 Token 的平均字符数，英文文本约为 4。
	CharsPerToken float64
}

// NewEstimatedCounter 创建新的 EstimatedCounter。
func NewEstimatedCounter() *EstimatedCounter {
	return &EstimatedCounter{
		CharsPerToken: 4.0,
	}
}

// Count 返回估算的 Token 数量，取字符估算与单词估算的平均值。
func (c *EstimatedCounter) Count(text string) int {
	charsPerToken := c.CharsPerToken
	if charsPerToken <= 0 {
		charsPerToken = 4.0
	}

	charBased := int(float64(len(text)) / charsPerToken)
	wordCount := len(strings.Fields(text))
	if wordCount == 0 {
		return charBased
	}

	wordBased := int(float64(wordCount) * 1.3)
	return (charBased + wordBased) / 2
}

// CountMessages 返回消息列表的估算 Token 数量。
func (c *EstimatedCounter) CountMessages(messages []message.Message) int {
	return countMessages(c, messages, 4)
}

// countMessages 累加每条消息的内容和固定开销，另加回复引导的 3 个 Token
func countMessages(counter TokenCounter, messages []message.Message, perMessage int) int {
	total := 0
	for _, msg := range messages {
		total += perMessage
		total += counter.Count(string(msg.Role))
		total += counter.Count(msg.Content)
	}
	return total + 3
}

var (
	defaultCounterOnce sync.Once
	defaultCounter     TokenCounter
)

// DefaultTokenCounter 返回共享的 TokenCounter，
// 优先使用 TiktokenCounter，编码加载失败时降级到 EstimatedCounter。
// 编码只加载一次。
func DefaultTokenCounter() TokenCounter {
	defaultCounterOnce.Do(func() {
		counter, err := NewTiktokenCounter()
		if err != nil {
			defaultCounter = NewEstimatedCounter()
			return
		}
		defaultCounter = counter
	})
	return defaultCounter
}

// 编译时接口检查
var _ TokenCounter = (*TiktokenCounter)(nil)
var _ TokenCounter = (*EstimatedCounter)(nil)
