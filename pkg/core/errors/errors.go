// Package errors 定义服务的通用错误类型
package errors

import (
	"errors"
	"fmt"
)

// 通用错误
var (
	// ErrInvalidConfig 配置无效
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrContextCanceled 上下文被取消
	ErrContextCanceled = errors.New("context canceled")
)

// 知识库相关错误
var (
	// ErrKnowledgeUnavailable 知识库无法加载
	ErrKnowledgeUnavailable = errors.New("knowledge base unavailable")
)

// 提示词相关错误
var (
	// ErrTokenLimitExceeded 即使清空知识段落也无法满足 Token 预算
	ErrTokenLimitExceeded = errors.New("token limit exceeded")
	// ErrNilInput 构建输入为 nil
	ErrNilInput = errors.New("nil build input")
)

// 可观测性相关错误
var (
	// ErrExporterUnavailable 遥测导出器不可用
	ErrExporterUnavailable = errors.New("telemetry exporter unavailable")
)

// WrapError 包装错误并添加上下文信息
func WrapError(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// IsRetryable 判断错误是否可重试
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrExporterUnavailable)
}

// IsFatal 判断错误是否为致命错误（不可恢复）
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrKnowledgeUnavailable)
}
