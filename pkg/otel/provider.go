package otel

import (
	"context"
	"errors"
	"io"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

// Provider 可观测性提供者
//
// 管理追踪、指标和日志的生命周期。
type Provider struct {
	config   Config
	tracer   Tracer
	metrics  Metrics
	logger   Logger
	shutdown []func(context.Context) error
	mu       sync.RWMutex
}

// ProviderOption 配置 Provider
type ProviderOption func(*providerOptions)

type providerOptions struct {
	logWriter   io.Writer
	spanExport  sdktrace.SpanExporter
	metricRead  sdkmetric.Reader
	skipGlobals bool
}

// WithLogWriter 设置日志输出目标，默认为标准错误
func WithLogWriter(w io.Writer) ProviderOption {
	return func(o *providerOptions) {
		o.logWriter = w
	}
}

// WithSpanExporter 使用给定的 Span 导出器替代配置中的导出器
func WithSpanExporter(exporter sdktrace.SpanExporter) ProviderOption {
	return func(o *providerOptions) {
		o.spanExport = exporter
	}
}

// WithMetricReader 使用给定的指标读取器替代周期性导出
func WithMetricReader(reader sdkmetric.Reader) ProviderOption {
	return func(o *providerOptions) {
		o.metricRead = reader
	}
}

// WithoutGlobals 不修改 OpenTelemetry 的全局 TracerProvider 和 MeterProvider
func WithoutGlobals() ProviderOption {
	return func(o *providerOptions) {
		o.skipGlobals = true
	}
}

var (
	globalProvider *Provider
	globalMu       sync.RWMutex
)

// NewProvider 创建可观测性提供者
//
// 日志始终按 Logging 配置输出；追踪和指标只在 Enabled 且各自开关打开时接入导出器。
func NewProvider(ctx context.Context, cfg Config, opts ...ProviderOption) (*Provider, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &providerOptions{}
	for _, opt := range opts {
		opt(o)
	}

	p := &Provider{
		config:  cfg,
		tracer:  NewNoopTracer(),
		metrics: NewNoopMetrics(),
		logger:  NewLoggerFromConfig(cfg.Logging, o.logWriter),
	}

	if !cfg.Enabled {
		return p, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.ServiceName),
			semconv.ServiceVersionKey.String(cfg.ServiceVersion),
			semconv.DeploymentEnvironmentKey.String(cfg.Environment),
		),
	)
	if err != nil {
		return nil, err
	}

	if cfg.Tracing.Enabled {
		if err := p.initTracing(ctx, res, o); err != nil {
			return nil, errors.Join(err, p.Shutdown(ctx))
		}
	}

	if cfg.Metrics.Enabled {
		if err := p.initMetrics(ctx, res, o); err != nil {
			return nil, errors.Join(err, p.Shutdown(ctx))
		}
	}

	return p, nil
}

// initTracing 初始化追踪
func (p *Provider) initTracing(ctx context.Context, res *resource.Resource, o *providerOptions) error {
	exporter := o.spanExport
	if exporter == nil {
		var err error
		exporter, err = CreateTraceExporter(ctx, p.config.Exporter)
		if err != nil {
			return err
		}
	}

	var sampler sdktrace.Sampler
	switch rate := p.config.Tracing.SampleRate; {
	case rate >= 1.0:
		sampler = sdktrace.AlwaysSample()
	case rate <= 0:
		sampler = sdktrace.NeverSample()
	default:
		sampler = sdktrace.TraceIDRatioBased(rate)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler),
		sdktrace.WithBatcher(exporter),
	)

	if !o.skipGlobals {
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		))
	}

	p.shutdown = append(p.shutdown, tp.Shutdown)
	p.tracer = NewTracer(tp.Tracer(p.config.ServiceName))

	return nil
}

// initMetrics 初始化指标
func (p *Provider) initMetrics(ctx context.Context, res *resource.Resource, o *providerOptions) error {
	reader := o.metricRead
	if reader == nil {
		exporter, err := CreateMetricExporter(ctx, p.config.Exporter)
		if err != nil {
			return err
		}
		reader = sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(p.config.Metrics.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(reader),
	)

	if !o.skipGlobals {
		otel.SetMeterProvider(mp)
	}

	p.shutdown = append(p.shutdown, mp.Shutdown)
	p.metrics = NewOTelMetrics(mp.Meter(p.config.ServiceName))

	return nil
}

// Config 返回生效的配置
func (p *Provider) Config() Config {
	return p.config
}

// Tracer 返回追踪器
func (p *Provider) Tracer() Tracer {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.tracer
}

// Metrics 返回指标收集器
func (p *Provider) Metrics() Metrics {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.metrics
}

// Logger 返回日志器
func (p *Provider) Logger() Logger {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.logger
}

// Shutdown 优雅关闭，刷新所有待导出的数据
func (p *Provider) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	for _, fn := range p.shutdown {
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	p.shutdown = nil
	return errors.Join(errs...)
}

// SetGlobal 设置全局提供者
func SetGlobal(p *Provider) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalProvider = p
}

// Global 获取全局提供者
func Global() *Provider {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalProvider
}

// GetTracer 获取全局追踪器
func GetTracer() Tracer {
	if p := Global(); p != nil {
		return p.Tracer()
	}
	return NewNoopTracer()
}

// GetMetrics 获取全局指标收集器
func GetMetrics() Metrics {
	if p := Global(); p != nil {
		return p.Metrics()
	}
	return NewNoopMetrics()
}

// GetLogger 获取全局日志器
func GetLogger() Logger {
	if p := Global(); p != nil {
		return p.Logger()
	}
	return NewNoopLogger()
}
