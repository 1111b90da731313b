package errors

import "github.com/minic-lang/minic/internal/i18n"

// ============================================================================
// 修复建议生成器
// ============================================================================

// SuggestionGenerator 根据错误码生成修复建议
type SuggestionGenerator struct{}

// NewSuggestionGenerator 创建建议生成器
func NewSuggestionGenerator() *SuggestionGenerator {
	return &SuggestionGenerator{}
}

// GetSuggestions 根据错误码和上下文生成建议列表
//
// context 携带消息参数，常用键: "name" 变量名, "lexeme" 词素。
func (g *SuggestionGenerator) GetSuggestions(code string, context map[string]string) []string {
	var suggestions []string

	switch code {
	// 词法错误
	case L0001:
		suggestions = append(suggestions, i18n.T(i18n.SuggestRemoveCharacter))

	// 语法错误
	case P0001:
		suggestions = append(suggestions, i18n.T(i18n.SuggestStatementForms))
	case P0002:
		suggestions = append(suggestions, i18n.T(i18n.SuggestAddSemicolon))
	case P0003:
		suggestions = append(suggestions, i18n.T(i18n.SuggestDeclareForm))
	case P0004:
		suggestions = append(suggestions, i18n.T(i18n.SuggestAssignForm))
	case P0006, P0007, P0008:
		suggestions = append(suggestions, i18n.T(i18n.SuggestParenthesize))
	case P0009:
		suggestions = append(suggestions, i18n.T(i18n.SuggestCloseBlock))
	case P0011:
		suggestions = append(suggestions, i18n.T(i18n.SuggestOnlyFactorial))

	// 语义错误
	case S0001:
		if name, ok := context["name"]; ok {
			suggestions = append(suggestions,
				i18n.T(i18n.SuggestDeclareBeforeUse, name),
				i18n.T(i18n.SuggestCheckSpelling, name))
		}
	case S0002:
		suggestions = append(suggestions, i18n.T(i18n.SuggestRenameVariable))
	case S0004:
		if name, ok := context["name"]; ok {
			suggestions = append(suggestions, i18n.T(i18n.SuggestAssignBeforeUse, name))
		}
	}

	return suggestions
}

// 默认建议生成器
var defaultGenerator = NewSuggestionGenerator()

// GetSuggestions 使用默认生成器生成建议
func GetSuggestions(code string, context map[string]string) []string {
	return defaultGenerator.GetSuggestions(code, context)
}
