package context

// QualityIssue 上下文质量问题
type QualityIssue string

const (
	// IssueNoMatches 上下文不含任何实体
	IssueNoMatches QualityIssue = "no_matches"
	// IssueTooManyMatches 上下文实体过多
	IssueTooManyMatches QualityIssue = "too_many_matches"
)

// QualityAction 建议的补救动作
type QualityAction string

const (
	// ActionUseFallback 使用兜底回复模板，不调用模型
	ActionUseFallback QualityAction = "use_fallback"
	// ActionLimitContext 按实体预算截断上下文
	ActionLimitContext QualityAction = "limit_context"
)

// QualityValidation 是上下文质量校验结果。Issue/Action 仅在 Valid 为 false 时出现。
type QualityValidation struct {
	Valid  bool          `json:"valid"`
	Issue  QualityIssue  `json:"issue,omitempty"`
	Action QualityAction `json:"action,omitempty"`
}

// ValidateContextQuality 检查上下文是否可用。
//
// 实体总数为 0 时建议使用兜底模板；超过 maxComfortable 时建议截断；否则有效。
// 不会修改 result，nil 结果按 0 个实体处理。
func ValidateContextQuality(result *SearchResult, maxComfortable int) QualityValidation {
	total := result.TotalEntities()
	switch {
	case total == 0:
		return QualityValidation{Valid: false, Issue: IssueNoMatches, Action: ActionUseFallback}
	case total > maxComfortable:
		return QualityValidation{Valid: false, Issue: IssueTooManyMatches, Action: ActionLimitContext}
	default:
		return QualityValidation{Valid: true}
	}
}
