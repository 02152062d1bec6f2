package otel

import (
	"go.opentelemetry.io/otel/attribute"

	"github.com/easyops/portfolio-context-go/pkg/knowledge"
)

// 预定义的语义属性键
const (
	AttrAssemblyID       = "context.assembly_id"
	AttrQueryLength      = "context.query_length"
	AttrRelated          = "context.related"
	AttrClassifyReason   = "context.classification_reason"
	AttrFallbackStrategy = "context.fallback_strategy"
	AttrRelevanceScore   = "context.relevance_score"
	AttrQualityIssue     = "context.quality_issue"
	AttrTruncated        = "context.truncated"
	AttrOriginalCount    = "context.original_count"
	AttrFinalCount       = "context.final_count"
	AttrPromptTokens     = "context.prompt_tokens"
	AttrTokenBudget      = "context.token_budget"
	AttrCategoryPrefix   = "context.entities."

	AttrErrorType    = "error.type"
	AttrErrorMessage = "error.message"
)

// FallbackStrategy 创建降级策略属性
func FallbackStrategy(strategy string) attribute.KeyValue {
	return attribute.String(AttrFallbackStrategy, strategy)
}

// Classification 创建离题分类属性
func Classification(related bool, reason string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Bool(AttrRelated, related),
		attribute.String(AttrClassifyReason, reason),
	}
}

// Truncation 创建截断属性
func Truncation(truncated bool, original, final int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Bool(AttrTruncated, truncated),
		attribute.Int(AttrOriginalCount, original),
		attribute.Int(AttrFinalCount, final),
	}
}

// CategoryCounts 为每个类别创建实体数属性，例如 context.entities.projects
func CategoryCounts(counts []int) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(knowledge.Categories))
	for i, c := range knowledge.Categories {
		if i < len(counts) {
			attrs = append(attrs, attribute.Int(AttrCategoryPrefix+string(c), counts[i]))
		}
	}
	return attrs
}

// ErrorAttrs 创建错误属性
func ErrorAttrs(errType, message string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(AttrErrorType, errType),
		attribute.String(AttrErrorMessage, message),
	}
}
