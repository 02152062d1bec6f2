package config

import "errors"

// 配置验证相关错误
var (
	// ErrUnsupportedFormat 不支持的配置文件格式
	ErrUnsupportedFormat = errors.New("unsupported config file format")
	// ErrInvalidTokenLength 词元长度无效
	ErrInvalidTokenLength = errors.New("min token length must be positive")
	// ErrInvalidPrefixLength 前缀长度无效
	ErrInvalidPrefixLength = errors.New("prefix length must be positive")
	// ErrInvalidEditDistance 编辑距离无效
	ErrInvalidEditDistance = errors.New("max edit distance must be between 0 and 5")
	// ErrInvalidMaxEntities 实体预算无效
	ErrInvalidMaxEntities = errors.New("entity limits must be positive")
	// ErrInvalidMaxTokens Token 数无效
	ErrInvalidMaxTokens = errors.New("max tokens must not be negative")
	// ErrInvalidReserveRatio 预留比例无效
	ErrInvalidReserveRatio = errors.New("reserve ratio must be in [0, 1)")
	// ErrInvalidCounter Token 计数器类型无效
	ErrInvalidCounter = errors.New("token counter must be tiktoken or estimated")
	// ErrInvalidSampleRate 采样率无效
	ErrInvalidSampleRate = errors.New("sample rate must be between 0 and 1")
	// ErrInvalidLogFormat 日志格式无效
	ErrInvalidLogFormat = errors.New("log format must be text or json")
)
