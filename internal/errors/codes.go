// Package errors 提供 MiniC 前端的诊断系统
package errors

import "github.com/minic-lang/minic/internal/i18n"

// ============================================================================
// 诊断级别
// ============================================================================

// Level 诊断级别
type Level int

const (
	LevelError   Level = iota // 错误
	LevelWarning              // 警告
	LevelNote                 // 提示
	LevelHelp                 // 帮助
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelNote:
		return "note"
	case LevelHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ============================================================================
// 词法错误码 (L 开头)
// ============================================================================
//
// 五种词法错误类别全部声明，与 token.ErrKind 一一对应。
// 扫描器目前只产生 L0001，其余为接口预留。
//
// ============================================================================

const (
	L0001 = "L0001" // 非法字符
	L0002 = "L0002" // 数字格式错误
	L0003 = "L0003" // 连续运算符
	L0004 = "L0004" // 非法标识符
	L0005 = "L0005" // 意外的 token
)

// ============================================================================
// 语法错误码 (P 开头)
// ============================================================================

const (
	P0001 = "P0001" // 意外的 token
	P0002 = "P0002" // 缺少分号
	P0003 = "P0003" // 缺少标识符
	P0004 = "P0004" // 缺少 '='
	P0005 = "P0005" // 无效表达式（表达式嵌套超限）
	P0006 = "P0006" // 缺少 '('（预留）
	P0007 = "P0007" // 缺少 ')'（预留）
	P0008 = "P0008" // 缺少条件表达式（预留）
	P0009 = "P0009" // 缺少大括号代码块
	P0010 = "P0010" // 无效运算符（预留）
	P0011 = "P0011" // 函数调用错误（预留）
)

// ============================================================================
// 语义错误码 (S 开头)
// ============================================================================

const (
	S0001 = "S0001" // 未声明的变量
	S0002 = "S0002" // 变量重复声明
	S0003 = "S0003" // 类型不匹配（预留）
	S0004 = "S0004" // 变量可能未初始化（警告级别，不影响整体有效性）
	S0005 = "S0005" // 无效操作（预留）
)

// ============================================================================
// 错误码信息
// ============================================================================

// ErrorInfo 错误码信息
type ErrorInfo struct {
	Code      string // 错误码
	Level     Level  // 诊断级别
	MessageID string // i18n 消息 ID
	Category  string // 错误域: lexical / syntax / semantic
	DocURL    string // 文档链接（可选）
}

// lexicalErrors 词法错误码信息表
var lexicalErrors = map[string]ErrorInfo{
	L0001: {L0001, LevelError, i18n.ErrInvalidChar, "lexical", ""},
	L0002: {L0002, LevelError, i18n.ErrInvalidNumber, "lexical", ""},
	L0003: {L0003, LevelError, i18n.ErrConsecutiveOps, "lexical", ""},
	L0004: {L0004, LevelError, i18n.ErrInvalidIdent, "lexical", ""},
	L0005: {L0005, LevelError, i18n.ErrUnexpectedLexeme, "lexical", ""},
}

// parseErrors 语法错误码信息表
var parseErrors = map[string]ErrorInfo{
	P0001: {P0001, LevelError, i18n.ErrUnexpectedToken, "syntax", ""},
	P0002: {P0002, LevelError, i18n.ErrMissingSemicolon, "syntax", ""},
	P0003: {P0003, LevelError, i18n.ErrMissingIdentifier, "syntax", ""},
	P0004: {P0004, LevelError, i18n.ErrMissingEquals, "syntax", ""},
	P0005: {P0005, LevelError, i18n.ErrInvalidExpression, "syntax", ""},
	P0006: {P0006, LevelError, i18n.ErrMissingLParen, "syntax", ""},
	P0007: {P0007, LevelError, i18n.ErrMissingRParen, "syntax", ""},
	P0008: {P0008, LevelError, i18n.ErrMissingCondition, "syntax", ""},
	P0009: {P0009, LevelError, i18n.ErrMissingBlock, "syntax", ""},
	P0010: {P0010, LevelError, i18n.ErrInvalidOperator, "syntax", ""},
	P0011: {P0011, LevelError, i18n.ErrFunctionCall, "syntax", ""},
}

// semanticErrors 语义错误码信息表
var semanticErrors = map[string]ErrorInfo{
	S0001: {S0001, LevelError, i18n.ErrUndeclaredVar, "semantic", ""},
	S0002: {S0002, LevelError, i18n.ErrRedeclaredVar, "semantic", ""},
	S0003: {S0003, LevelError, i18n.ErrTypeMismatch, "semantic", ""},
	S0004: {S0004, LevelWarning, i18n.WarnUninitializedVar, "semantic", ""},
	S0005: {S0005, LevelError, i18n.ErrInvalidOperation, "semantic", ""},
}

// GetErrorInfo 获取错误码信息
func GetErrorInfo(code string) (ErrorInfo, bool) {
	if info, ok := lexicalErrors[code]; ok {
		return info, true
	}
	if info, ok := parseErrors[code]; ok {
		return info, true
	}
	if info, ok := semanticErrors[code]; ok {
		return info, true
	}
	return ErrorInfo{}, false
}

// IsLexicalError 检查是否为词法错误码
func IsLexicalError(code string) bool {
	_, ok := lexicalErrors[code]
	return ok
}

// IsParseError 检查是否为语法错误码
func IsParseError(code string) bool {
	_, ok := parseErrors[code]
	return ok
}

// IsSemanticError 检查是否为语义错误码
func IsSemanticError(code string) bool {
	_, ok := semanticErrors[code]
	return ok
}
