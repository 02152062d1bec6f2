package otel

// 预定义的指标名称
const (
	MetricAssemblies       = "context.assemblies"        // 计数器: 组装次数
	MetricAssemblyDuration = "context.assembly.duration" // 直方图: 组装耗时(ms)
	MetricOffTopic         = "context.offtopic"          // 计数器: 离题查询次数
	MetricFallbacks        = "context.fallbacks"         // 计数器: 按降级策略统计的检索次数
	MetricTruncations      = "context.truncations"       // 计数器: 上下文截断次数
	MetricEntities         = "context.entities"          // 直方图: 最终上下文的实体数
	MetricPromptTokens     = "context.prompt.tokens"     // 直方图: 提示词 Token 数
	MetricKnowledgeSize    = "knowledge.entities"        // 仪表: 知识库实体总数
)

// MetricUnit 指标单位
type MetricUnit string

const (
	UnitNone         MetricUnit = ""
	UnitMilliseconds MetricUnit = "ms"
	UnitCount        MetricUnit = "1"
)

// MetricDescription 指标描述
type MetricDescription struct {
	Name        string
	Description string
	Unit        MetricUnit
	Type        string // counter, histogram, gauge
}

// PredefinedMetrics 预定义指标列表
var PredefinedMetrics = []MetricDescription{
	{MetricAssemblies, "Number of context assemblies", UnitCount, "counter"},
	{MetricAssemblyDuration, "Duration of context assembly", UnitMilliseconds, "histogram"},
	{MetricOffTopic, "Number of queries classified as off-topic", UnitCount, "counter"},
	{MetricFallbacks, "Number of searches by fallback strategy", UnitCount, "counter"},
	{MetricTruncations, "Number of contexts truncated to the entity budget", UnitCount, "counter"},
	{MetricEntities, "Number of entities in the final context", UnitCount, "histogram"},
	{MetricPromptTokens, "Number of tokens in the rendered prompt", UnitCount, "histogram"},
	{MetricKnowledgeSize, "Number of entities in the knowledge base", UnitCount, "gauge"},
}

// describe 返回预定义指标的描述，未知指标只带名称
func describe(name string) MetricDescription {
	for _, d := range PredefinedMetrics {
		if d.Name == name {
			return d
		}
	}
	return MetricDescription{Name: name}
}
