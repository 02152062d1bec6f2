package context

// Search 检索与查询相关的实体，必要时逐级降级。
//
// 依次判断：
//   - none：精确检索命中数达到下限（跨多个类别，或单一类别达到 MinSingleCategoryMatches）
//   - broader_search：精确检索不足且扩展检索命中严格更多，返回两者并集
//   - return_all：查询为空（或只含过短词元），或两轮检索都没有命中，返回全部实体
//
// 精确检索不足、扩展检索又没有带来更多命中时，保留精确检索结果并记为 none。
// Search 不会再次运行离题分类，调用方需要先调用 IsPortfolioRelated。
func (e *Engine) Search(query string) *SearchResult {
	kb := e.index.KnowledgeBase()

	tokens := tokenize(query, e.config.MinTokenLength)
	if len(tokens) == 0 {
		return allEntities(kb, StrategyReturnAll)
	}

	exact := e.matcher.MatchExact(tokens)
	if e.meetsFloor(exact) {
		return newSearchResult(kb, exact, StrategyNone)
	}

	broadened := e.matcher.MatchBroadened(tokens)
	if broadened.Total() > exact.Total() {
		return newSearchResult(kb, exact.Union(broadened), StrategyBroaderSearch)
	}

	if exact.Total() == 0 {
		return allEntities(kb, StrategyReturnAll)
	}

	return newSearchResult(kb, exact, StrategyNone)
}

// meetsFloor 判断精确检索结果是否足够，不需要扩展
func (e *Engine) meetsFloor(m CategoryMatches) bool {
	total := m.Total()
	if total == 0 || total < e.config.MinMatches {
		return false
	}
	return m.CategoriesHit() >= 2 || total >= e.config.MinSingleCategoryMatches
}
