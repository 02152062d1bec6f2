package otel

import (
	"time"

	"github.com/easyops/portfolio-context-go/pkg/core/config"
)

// Config 可观测性配置
type Config struct {
	// Enabled 是否启用可观测性
	Enabled bool `koanf:"enabled"`

	// ServiceName 服务名称
	ServiceName string `koanf:"service_name"`
	// ServiceVersion 服务版本
	ServiceVersion string `koanf:"service_version"`
	// Environment 环境（development, staging, production）
	Environment string `koanf:"environment"`

	// Exporter 追踪和指标共用的导出器配置
	Exporter ExporterConfig `koanf:"exporter"`
	// Tracing 追踪配置
	Tracing TracingConfig `koanf:"tracing"`
	// Metrics 指标配置
	Metrics MetricsConfig `koanf:"metrics"`
	// Logging 日志配置
	Logging LoggingConfig `koanf:"logging"`
}

// TracingConfig 追踪配置
type TracingConfig struct {
	// Enabled 是否启用追踪
	Enabled bool `koanf:"enabled"`
	// SampleRate 采样率 (0.0-1.0)
	SampleRate float64 `koanf:"sample_rate"`
}

// MetricsConfig 指标配置
type MetricsConfig struct {
	// Enabled 是否启用指标
	Enabled bool `koanf:"enabled"`
	// Interval 导出间隔
	Interval time.Duration `koanf:"interval"`
}

// LoggingConfig 日志配置
type LoggingConfig struct {
	// Level 日志级别 (debug, info, warn, error)
	Level string `koanf:"level"`
	// Format 日志格式 (text, json)
	Format string `koanf:"format"`
	// IncludeTraceID 是否包含 Trace ID
	IncludeTraceID bool `koanf:"include_trace_id"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		Enabled:        false,
		ServiceName:    "portfolio-context",
		ServiceVersion: "0.1.0",
		Environment:    "development",
		Exporter:       DefaultExporterConfig(),
		Tracing: TracingConfig{
			Enabled:    false,
			SampleRate: 1.0,
		},
		Metrics: MetricsConfig{
			Enabled:  false,
			Interval: 60 * time.Second,
		},
		Logging: LoggingConfig{
			Level:          "info",
			Format:         "text",
			IncludeTraceID: true,
		},
	}
}

// FromConfig 将全局配置中的可观测性分段转换为 Config。
// 启用时同时打开追踪和指标，二者共用同一个导出器。
func FromConfig(cfg config.ObservabilityConfig) Config {
	cfg = cfg.WithDefaults()

	c := DefaultConfig()
	c.Enabled = cfg.Enabled
	c.ServiceName = cfg.ServiceName
	c.Environment = cfg.Environment
	c.Exporter.Type = ExporterType(cfg.Exporter)
	c.Exporter.Endpoint = cfg.Endpoint
	c.Exporter.Insecure = cfg.Insecure
	c.Tracing.Enabled = cfg.Enabled
	c.Tracing.SampleRate = cfg.SampleRate
	c.Metrics.Enabled = cfg.Enabled
	c.Metrics.Interval = cfg.MetricsInterval
	c.Logging.Level = cfg.LogLevel
	c.Logging.Format = cfg.LogFormat
	return c
}

// Validate 验证配置
func (c *Config) Validate() error {
	if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1 {
		return ErrInvalidSampleRate
	}
	switch c.Exporter.Type {
	case ExporterOTLPGRPC, ExporterOTLPHTTP, ExporterStdout, ExporterNone:
	default:
		return ErrUnsupportedExporter
	}
	return nil
}

// WithDefaults 返回带默认值的配置
func (c Config) WithDefaults() Config {
	defaults := DefaultConfig()

	if c.ServiceName == "" {
		c.ServiceName = defaults.ServiceName
	}
	if c.ServiceVersion == "" {
		c.ServiceVersion = defaults.ServiceVersion
	}
	if c.Environment == "" {
		c.Environment = defaults.Environment
	}
	if c.Exporter.Type == "" {
		c.Exporter.Type = defaults.Exporter.Type
	}
	if c.Exporter.Endpoint == "" {
		c.Exporter.Endpoint = defaults.Exporter.Endpoint
	}
	if c.Exporter.Timeout == 0 {
		c.Exporter.Timeout = defaults.Exporter.Timeout
	}
	if c.Tracing.SampleRate == 0 {
		c.Tracing.SampleRate = defaults.Tracing.SampleRate
	}
	if c.Metrics.Interval == 0 {
		c.Metrics.Interval = defaults.Metrics.Interval
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaults.Logging.Format
	}

	return c
}
