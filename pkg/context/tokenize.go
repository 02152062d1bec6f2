package context

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize 将查询切分为小写关键词集合，使用默认最小长度。
//
// 按空白切分，去掉词元首尾的标点，丢弃长度不足 DefaultMinTokenLength 的词元并去重。
// 结果保持首次出现的顺序，空查询返回空切片。
func Tokenize(query string) []string {
	return tokenize(query, DefaultMinTokenLength)
}

func tokenize(query string, minLength int) []string {
	fields := strings.Fields(strings.ToLower(query))
	tokens := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))

	for _, field := range fields {
		token := strings.TrimFunc(field, func(r rune) bool {
			return !isWordRune(r)
		})
		if utf8.RuneCountInString(token) < minLength {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}

	return tokens
}

// words 将文本切分为字母数字单词（用于编辑距离匹配和词边界比较）
func words(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !isWordRune(r)
	})
}

// isWordRune 返回该字符是否属于单词
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// phrase 将文本归一化为以空格包围的单词序列，便于按词边界做子串比较
func phrase(text string) string {
	return " " + strings.Join(words(strings.ToLower(text)), " ") + " "
}
