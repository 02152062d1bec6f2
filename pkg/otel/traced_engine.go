package otel

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	pctx "github.com/easyops/portfolio-context-go/pkg/context"
	"github.com/easyops/portfolio-context-go/pkg/core/message"
)

// Span 名称
const (
	SpanAssemble    = "portfolio.assemble"
	SpanBuildPrompt = "portfolio.build_prompt"
)

// TracedEngine 为上下文组装引擎和提示词构建器加上追踪、指标和日志
type TracedEngine struct {
	engine  *pctx.Engine
	builder *pctx.PromptBuilder
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// TracedEngineOption 配置 TracedEngine
type TracedEngineOption func(*TracedEngine)

// WithTracer 设置追踪器
func WithTracer(tracer Tracer) TracedEngineOption {
	return func(t *TracedEngine) {
		t.tracer = tracer
	}
}

// WithMetrics 设置指标收集器
func WithMetrics(metrics Metrics) TracedEngineOption {
	return func(t *TracedEngine) {
		t.metrics = metrics
	}
}

// WithLogger 设置日志器
func WithLogger(logger Logger) TracedEngineOption {
	return func(t *TracedEngine) {
		t.logger = logger
	}
}

// WithProvider 使用 Provider 的追踪器、指标和日志器
func WithProvider(p *Provider) TracedEngineOption {
	return func(t *TracedEngine) {
		t.tracer = p.Tracer()
		t.metrics = p.Metrics()
		t.logger = p.Logger()
	}
}

// WithPromptBuilder 设置提示词构建器，默认使用引擎创建的 PromptBuilder
func WithPromptBuilder(builder *pctx.PromptBuilder) TracedEngineOption {
	return func(t *TracedEngine) {
		t.builder = builder
	}
}

// NewTracedEngine 包装引擎
func NewTracedEngine(engine *pctx.Engine, opts ...TracedEngineOption) *TracedEngine {
	t := &TracedEngine{
		engine:  engine,
		tracer:  NewNoopTracer(),
		metrics: NewNoopMetrics(),
		logger:  NewNoopLogger(),
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.builder == nil {
		t.builder = pctx.NewPromptBuilder(engine)
	}

	t.metrics.Gauge(MetricKnowledgeSize).Set(context.Background(), float64(engine.KnowledgeBase().EntityCount()))

	return t
}

// Engine 返回被包装的引擎
func (t *TracedEngine) Engine() *pctx.Engine {
	return t.engine
}

// Assemble 执行一次带追踪的上下文组装。只有 ctx 已取消时返回错误。
func (t *TracedEngine) Assemble(ctx context.Context, query string) (*pctx.Assembly, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ctx, span := t.tracer.Start(ctx, SpanAssemble,
		WithAttributes(attribute.Int(AttrQueryLength, len(query))),
	)
	defer span.End()

	start := time.Now()
	a := t.engine.Assemble(query)
	t.observe(ctx, span, a, time.Since(start))

	span.SetStatus(StatusOK, "")
	return a, nil
}

// Build 构建带追踪的提示词
func (t *TracedEngine) Build(ctx context.Context, input *pctx.BuildInput) (*pctx.Prompt, error) {
	ctx, span := t.tracer.Start(ctx, SpanBuildPrompt)
	defer span.End()

	start := time.Now()
	p, err := t.builder.Build(ctx, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(StatusError, err.Error())
		t.logger.WithContext(ctx).Error("prompt build failed", "error", err)
		return nil, err
	}

	t.observe(ctx, span, p.Assembly, time.Since(start))

	span.SetAttributes(
		attribute.Int(AttrPromptTokens, p.TokenCount),
		attribute.Int(AttrTokenBudget, p.TokenBudget),
	)
	t.metrics.Histogram(MetricPromptTokens).Record(ctx, float64(p.TokenCount))

	span.SetStatus(StatusOK, "")
	return p, nil
}

// BuildMessages 构建带追踪的消息列表
func (t *TracedEngine) BuildMessages(ctx context.Context, input *pctx.BuildInput) ([]message.Message, error) {
	p, err := t.Build(ctx, input)
	if err != nil {
		return nil, err
	}
	return t.builder.Messages(p, input), nil
}

// observe 把组装结果记录到 Span、指标和日志
func (t *TracedEngine) observe(ctx context.Context, span Span, a *pctx.Assembly, elapsed time.Duration) {
	span.SetAttributes(attribute.String(AttrAssemblyID, a.ID))
	span.SetAttributes(Classification(a.Classification.Related, string(a.Classification.Reason))...)

	related := NewAttr(AttrRelated, a.Classification.Related)
	t.metrics.Counter(MetricAssemblies).Add(ctx, 1, related)
	t.metrics.Histogram(MetricAssemblyDuration).Record(ctx, float64(elapsed.Microseconds())/1000)

	log := t.logger.WithContext(ctx).WithFields(map[string]any{
		"assembly_id": a.ID,
	})

	if a.OffTopic() {
		t.metrics.Counter(MetricOffTopic).Add(ctx, 1)
		span.AddEvent("offtopic", attribute.String("matched", a.Classification.Matched))
		log.Info("query classified off-topic", "matched", a.Classification.Matched)
		return
	}

	strategy := string(a.Search.FallbackStrategy)
	t.metrics.Counter(MetricFallbacks).Add(ctx, 1, NewAttr(AttrFallbackStrategy, strategy))

	span.SetAttributes(
		FallbackStrategy(strategy),
		attribute.Int(AttrRelevanceScore, a.Search.RelevanceScore),
	)
	span.SetAttributes(CategoryCounts(a.Context.Counts())...)

	if !a.Quality.Valid {
		span.SetAttributes(attribute.String(AttrQualityIssue, string(a.Quality.Issue)))
	}

	if a.Truncated() {
		t.metrics.Counter(MetricTruncations).Add(ctx, 1)
		span.SetAttributes(Truncation(true, a.Limit.OriginalCount, a.Limit.FinalCount)...)
	}

	final := a.Context.TotalEntities()
	t.metrics.Histogram(MetricEntities).Record(ctx, float64(final))

	if a.Quality.Issue == pctx.IssueNoMatches {
		log.Warn("context assembled without entities", "strategy", strategy)
		return
	}

	log.Info("context assembled",
		"strategy", strategy,
		"entities", final,
		"truncated", a.Truncated(),
	)
}

// compile-time interface check
var _ pctx.Builder = (*TracedEngine)(nil)
