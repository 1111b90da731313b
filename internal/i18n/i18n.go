package i18n

import (
	"fmt"
	"sync"
)

// Language 语言类型
type Language string

const (
	LangEnglish Language = "en"
	LangChinese Language = "zh"
)

// ============================================================================
// 消息 ID 常量
// ============================================================================
//
// 消息正文按阶段分组。英文文案是诊断输出的行为契约，
// 中文是可选的完整翻译。
//
// ============================================================================

const (
	// 诊断前缀（按错误域）
	PrefixLexical  = "diag.lexical_prefix"
	PrefixParse    = "diag.parse_prefix"
	PrefixSemantic = "diag.semantic_prefix"

	// 词法错误
	ErrInvalidChar      = "lexer.invalid_char"
	ErrInvalidNumber    = "lexer.invalid_number"
	ErrConsecutiveOps   = "lexer.consecutive_operators"
	ErrInvalidIdent     = "lexer.invalid_identifier"
	ErrUnexpectedLexeme = "lexer.unexpected_token"

	// 语法错误
	ErrUnexpectedToken   = "parser.unexpected_token"
	ErrMissingSemicolon  = "parser.missing_semicolon"
	ErrMissingIdentifier = "parser.missing_identifier"
	ErrMissingEquals     = "parser.missing_equals"
	ErrInvalidExpression = "parser.invalid_expression"
	ErrMissingLParen     = "parser.missing_lparen"
	ErrMissingRParen     = "parser.missing_rparen"
	ErrMissingCondition  = "parser.missing_condition"
	ErrMissingBlock      = "parser.missing_block"
	ErrInvalidOperator   = "parser.invalid_operator"
	ErrFunctionCall      = "parser.function_call"

	// 语义错误
	ErrUndeclaredVar     = "semantic.undeclared_variable"
	ErrRedeclaredVar     = "semantic.redeclared_variable"
	ErrTypeMismatch      = "semantic.type_mismatch"
	WarnUninitializedVar = "semantic.uninitialized_variable"
	ErrInvalidOperation  = "semantic.invalid_operation"

	// 诊断统计
	DiagFoundErrors   = "diag.found_errors"
	DiagFoundWarnings = "diag.found_warnings"

	// 修复建议
	SuggestDeclareBeforeUse = "suggestion.declare_before_use"
	SuggestCheckSpelling    = "suggestion.check_spelling"
	SuggestRenameVariable   = "suggestion.rename_variable"
	SuggestAssignBeforeUse  = "suggestion.assign_before_use"
	SuggestAddSemicolon     = "suggestion.add_semicolon"
	SuggestDeclareForm      = "suggestion.declare_form"
	SuggestParenthesize     = "suggestion.parenthesize"
	SuggestCloseBlock       = "suggestion.close_block"
	SuggestAssignForm       = "suggestion.assign_form"
	SuggestOnlyFactorial    = "suggestion.only_factorial"
	SuggestStatementForms   = "suggestion.statement_forms"
	SuggestRemoveCharacter  = "suggestion.remove_character"
)

// 全局语言设置
var (
	currentLang Language = LangEnglish
	mu          sync.RWMutex
)

// SetLanguage 设置当前语言
func SetLanguage(lang Language) {
	mu.Lock()
	defer mu.Unlock()
	currentLang = lang
}

// SetLanguageFromString 从字符串设置语言
func SetLanguageFromString(lang string) {
	switch lang {
	case "zh", "zh-cn", "zh-tw", "zh-hk", "chinese":
		SetLanguage(LangChinese)
	default:
		SetLanguage(LangEnglish)
	}
}

// GetLanguage 获取当前语言
func GetLanguage() Language {
	mu.RLock()
	defer mu.RUnlock()
	return currentLang
}

// T 翻译消息（支持格式化参数）
func T(msgID string, args ...interface{}) string {
	mu.RLock()
	lang := currentLang
	mu.RUnlock()

	var messages map[string]string
	switch lang {
	case LangChinese:
		messages = messagesZH
	default:
		messages = messagesEN
	}

	if msg, ok := messages[msgID]; ok {
		if len(args) > 0 {
			return fmt.Sprintf(msg, args...)
		}
		return msg
	}

	// 回退到英文
	if msg, ok := messagesEN[msgID]; ok {
		if len(args) > 0 {
			return fmt.Sprintf(msg, args...)
		}
		return msg
	}

	// 找不到翻译则返回原始 ID
	return msgID
}
