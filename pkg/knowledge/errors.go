package knowledge

import "errors"

// 知识库相关错误
var (
	// ErrNilKnowledgeBase 知识库为空
	ErrNilKnowledgeBase = errors.New("knowledge base is nil")
	// ErrEmptySearchText 实体缺少可检索文本
	ErrEmptySearchText = errors.New("entity has empty searchable text")
	// ErrInvalidKnowledge 知识库内容无法解析
	ErrInvalidKnowledge = errors.New("invalid knowledge base document")
)
