package context

import (
	"regexp"
	"strings"
)

// ClassificationReason 说明分类器做出判断的依据
type ClassificationReason string

const (
	// ReasonVocabulary 命中领域词汇
	ReasonVocabulary ClassificationReason = "vocabulary"
	// ReasonOwnership 命中第二人称 + 作品名词的表述
	ReasonOwnership ClassificationReason = "ownership"
	// ReasonOffTopicPattern 命中离题句式
	ReasonOffTopicPattern ClassificationReason = "off_topic_pattern"
	// ReasonDefault 两类规则都未命中，保守地视为领域内
	ReasonDefault ClassificationReason = "default"
)

// Classification 是离题分类的结果
type Classification struct {
	// Related 查询是否属于作品集领域
	Related bool `json:"related"`
	// Reason 判断依据
	Reason ClassificationReason `json:"reason"`
	// Matched 触发判断的词条或句式（默认判断时为空）
	Matched string `json:"matched,omitempty"`
}

// ownershipPatterns 匹配"你的项目"、"你构建的"一类表述
var ownershipPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\byou\s+(?:have\s+|ever\s+)?(?:built|build|made|make|created|create|designed|design|developed|develop|composed|compose|wrote|write|used|use|worked|work|studied|study)\b`),
	regexp.MustCompile(`\byour\s+(?:[a-z0-9.+#/-]+\s+){0,2}(?:projects?|work|works|experience|background|architecture|stack|skills?|music|portfolio|expertise|influences?|inspirations?|approach|philosophy|process|career|studio|art|installations?|tools?|technolog(?:y|ies)|setup|rig)\b`),
}

// offTopicPatterns 是通用知识类问题的句式
var offTopicPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bcapital\s+(?:city\s+)?of\b`),
	regexp.MustCompile(`\b(?:president|prime\s+minister|king|queen|chancellor|head\s+of\s+state|ruler)\s+of\b`),
	regexp.MustCompile(`\brecipes?\s+(?:for|to|of)\b|\bhow\s+(?:do\s+i\s+|to\s+)(?:cook|bake)\b`),
	regexp.MustCompile(`\bweather\s+(?:in|for|at|today|tomorrow|forecast)\b|\bforecast\s+for\b`),
	regexp.MustCompile(`\b(?:price|cost)\s+of\b|\b(?:bitcoin|btc|ethereum|crypto|stock|gold|gas)\s+prices?\b`),
	regexp.MustCompile(`\breviews?\s+(?:of|for)\b|\b(?:movie|film|book|product|restaurant|hotel)\s+reviews?\b`),
	regexp.MustCompile(`\bhow\s+(?:do\s+i\s+|can\s+i\s+|to\s+)(?:fix|repair|unclog)\b.*\b(?:faucet|sink|toilet|dishwasher|washer|dryer|fridge|refrigerator|oven|microwave|furnace|boiler|heater|tire)s?\b`),
}

// Classifier 判断查询是否属于作品集领域。
//
// 规则依次为：领域词汇或所有格表述命中则属于领域；否则命中离题句式则不属于；
// 都未命中时默认属于领域，由降级检索负责兜底。
type Classifier struct {
	vocabulary []string
}

// NewClassifier 使用领域词汇创建分类器。词汇按词边界匹配。
func NewClassifier(vocabulary []string) *Classifier {
	terms := make([]string, 0, len(vocabulary))
	for _, term := range vocabulary {
		if p := phrase(term); strings.TrimSpace(p) != "" {
			terms = append(terms, p)
		}
	}
	return &Classifier{vocabulary: terms}
}

// IsPortfolioRelated 返回查询是否属于作品集领域
func (c *Classifier) IsPortfolioRelated(query string) bool {
	return c.Classify(query).Related
}

// Classify 对查询分类并给出依据
func (c *Classifier) Classify(query string) Classification {
	normalized := phrase(query)
	for _, term := range c.vocabulary {
		if strings.Contains(normalized, term) {
			return Classification{Related: true, Reason: ReasonVocabulary, Matched: strings.TrimSpace(term)}
		}
	}

	lower := strings.ToLower(query)
	for _, p := range ownershipPatterns {
		if m := p.FindString(lower); m != "" {
			return Classification{Related: true, Reason: ReasonOwnership, Matched: m}
		}
	}

	for _, p := range offTopicPatterns {
		if m := p.FindString(lower); m != "" {
			return Classification{Related: false, Reason: ReasonOffTopicPattern, Matched: m}
		}
	}

	return Classification{Related: true, Reason: ReasonDefault}
}
