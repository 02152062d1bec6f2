// Package context 为作品集助手提供上下文组装能力。
//
// 给定访客的自然语言问题和作品集知识库，本包决定哪些知识进入提示词：
//
//   - 离题分类：拒绝与作品集无关的问题（例如天气或菜谱）
//   - 关键词检索：按类别对实体做子串匹配
//   - 降级策略：精确检索不足时依次尝试前缀/模糊扩展检索、返回全部实体
//   - 质量校验：判断上下文为空、适中还是过多
//   - 上下文限制：用最大余额法按比例缩减到实体预算以内
//
// # 基本用法
//
//	kb := knowledge.Default()
//	engine := context.NewEngine(kb)
//
//	a := engine.Assemble("What TouchDesigner projects have you built?")
//	fmt.Println(a.Context.FallbackStrategy, a.Context.RelevanceScore)
//
// # 构建提示词
//
// PromptBuilder 把组装结果渲染成分段的系统提示词，并在配置了 Token 预算时收紧实体预算：
//
//	config := context.NewConfig(
//	    context.WithMaxTokens(4000),
//	    context.WithTokenCounter(context.NewEstimatedCounter()),
//	)
//	builder := context.NewPromptBuilder(context.NewEngine(kb, context.WithConfig(config)))
//	messages, err := builder.BuildMessages(ctx, &context.BuildInput{
//	    Query:   "Which theorists shaped your thinking?",
//	    History: history,
//	})
//
// # 提示词结构
//
// 默认结构化器生成以下分段，空分段会被省略：
//
//	[Role & Policies]            系统指令
//	[Task]                       访客问题
//	[Profile]                    个人简介（始终包含）
//	[Tech Stack]                 技术栈（始终包含）
//	[Projects] ... [Emergence Concepts]  检索到的实体
//	[Philosophy]                 设计理念（始终包含）
//	[Guidance]                   降级或截断时的回答提示
//
// 离题问题只渲染角色、任务和离题指引。
//
// Engine 构建后只读，可被多个 goroutine 共享。
package context
