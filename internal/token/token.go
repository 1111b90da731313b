package token

import "fmt"

// ============================================================================
// Token 类型定义
// ============================================================================
//
// TokenType 使用 iota 自动编号，按类别分组：
// 1. 特殊标记（ERROR, EOF）
// 2. 字面量（数字、标识符）
// 3. 运算符（算术和比较运算共用 OPERATOR，赋值号单独为 EQUALS）
// 4. 分隔符（分号、括号、大括号）
// 5. 关键字（if, while, repeat, until, int, print）
//
// ============================================================================

// TokenType 表示 Token 的类型
type TokenType int

const (
	// ----------------------------------------------------------
	// 特殊标记
	// ----------------------------------------------------------
	ERROR TokenType = iota // 非法字符（携带 ErrKind 标记）
	EOF                    // 输入结束

	// ----------------------------------------------------------
	// 字面量
	// ----------------------------------------------------------
	NUMBER // 整数字面量
	IDENT  // 标识符（变量名、内置函数名）

	// ----------------------------------------------------------
	// 运算符
	// ----------------------------------------------------------
	OPERATOR // + - * / > < >= <= == !=（具体运算符存在 Literal 中）
	EQUALS   // 单独的赋值号 =

	// ----------------------------------------------------------
	// 分隔符
	// ----------------------------------------------------------
	SEMICOLON // ;
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }

	// ----------------------------------------------------------
	// 关键字
	// ----------------------------------------------------------
	keyword_beg // 关键字起始标记（不是实际 token）
	IF          // if
	WHILE       // while
	REPEAT      // repeat
	UNTIL       // until
	INT         // int
	PRINT       // print
	keyword_end // 关键字结束标记（不是实际 token）
)

// MaxLexemeLen 单个 token 字面量的最大长度。
// 超长的数字/标识符在此处截断，剩余字符作为下一个 token 继续扫描。
const MaxLexemeLen = 99

// ============================================================================
// Token 类型名称映射
// ============================================================================

var tokenNames = map[TokenType]string{
	ERROR: "ERROR",
	EOF:   "EOF",

	NUMBER: "NUMBER",
	IDENT:  "IDENTIFIER",

	OPERATOR: "OPERATOR",
	EQUALS:   "EQUALS",

	SEMICOLON: "SEMICOLON",
	LPAREN:    "LPAREN",
	RPAREN:    "RPAREN",
	LBRACE:    "LBRACE",
	RBRACE:    "RBRACE",

	IF:     "IF",
	WHILE:  "WHILE",
	REPEAT: "REPEAT",
	UNTIL:  "UNTIL",
	INT:    "INT",
	PRINT:  "PRINT",
}

// ============================================================================
// 关键字查找表
// ============================================================================

var keywords = map[string]TokenType{
	"if":     IF,
	"while":  WHILE,
	"repeat": REPEAT,
	"until":  UNTIL,
	"int":    INT,
	"print":  PRINT,
}

// LookupIdent 查找标识符是否为关键字
//
// 短关键字（2-3字符）使用 switch 直接匹配，避免哈希计算；
// 其余关键字走 map 查找。非关键字返回 IDENT。
func LookupIdent(ident string) TokenType {
	switch len(ident) {
	case 2:
		if ident == "if" {
			return IF
		}
	case 3:
		if ident == "int" {
			return INT
		}
	case 5:
		switch ident {
		case "while":
			return WHILE
		case "until":
			return UNTIL
		case "print":
			return PRINT
		}
	}

	if tok, ok := keywords[ident]; ok {
		return tok
	}

	return IDENT
}

// IsKeyword 判断 TokenType 是否为关键字
func IsKeyword(t TokenType) bool {
	return t > keyword_beg && t < keyword_end
}

// String 返回 TokenType 的字符串表示
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

// ============================================================================
// 词法错误标记
// ============================================================================
//
// ErrKind 是附在 token 上的词法错误标记。带错误标记的 token 不会中断
// 扫描，由调用方决定是否报告。扫描器目前只产生 ErrInvalidChar；
// 其余类别为接口预留，错误码表中保留对应条目。
//
// ============================================================================

// ErrKind 词法错误类别
type ErrKind int

const (
	ErrNone                 ErrKind = iota // 无错误
	ErrInvalidChar                         // 非法字符
	ErrInvalidNumber                       // 数字格式错误
	ErrConsecutiveOperators                // 连续运算符
	ErrInvalidIdentifier                   // 非法标识符
	ErrUnexpectedToken                     // 意外的 token
)

var errKindNames = map[ErrKind]string{
	ErrNone:                 "NONE",
	ErrInvalidChar:          "INVALID_CHAR",
	ErrInvalidNumber:        "INVALID_NUMBER",
	ErrConsecutiveOperators: "CONSECUTIVE_OPERATORS",
	ErrInvalidIdentifier:    "INVALID_IDENTIFIER",
	ErrUnexpectedToken:      "UNEXPECTED_TOKEN",
}

// String 返回 ErrKind 的字符串表示
func (k ErrKind) String() string {
	if name, ok := errKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrKind(%d)", k)
}

// ============================================================================
// Position - 源代码位置
// ============================================================================

// Position 表示源代码中的位置
type Position struct {
	Filename string // 文件名
	Line     int    // 行号 (从1开始；EOF 之后为 0 哨兵值)
	Column   int    // 列号 (从1开始)
	Offset   int    // 字节偏移量 (从0开始)
}

// String 返回位置的字符串表示，格式为 "filename:line:column"
func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid 检查位置是否有效
func (p Position) IsValid() bool {
	return p.Line > 0
}

// ============================================================================
// Span - 源代码范围
// ============================================================================

// Span 表示源代码中的一个范围（开始到结束），用于错误标注和 LSP 诊断。
type Span struct {
	Start Position // 开始位置
	End   Position // 结束位置
}

// SpanFromToken 从 Token 创建覆盖整个字面量的 Span
func SpanFromToken(t Token) Span {
	endPos := t.Pos
	endPos.Column += len(t.Literal)
	endPos.Offset += len(t.Literal)
	return Span{Start: t.Pos, End: endPos}
}

// Length 返回 Span 的长度（仅在同一行有效）
func (s Span) Length() int {
	if s.Start.Line == s.End.Line {
		return s.End.Column - s.Start.Column
	}
	return 1
}

// ============================================================================
// Token - 词法单元
// ============================================================================

// Token 表示一个词法单元
//
// Token 是词法分析的产物，包含：
// - Type: token 类型（如 NUMBER, IDENT, IF 等）
// - Literal: 原始字面量文本（不超过 MaxLexemeLen）
// - Err: 词法错误标记（正常 token 为 ErrNone）
// - Pos: 在源代码中的位置
type Token struct {
	Type    TokenType // Token 类型
	Literal string    // 原始字面量
	Err     ErrKind   // 词法错误标记
	Pos     Position  // 位置信息
}

// Line 返回 token 所在行号
func (t Token) Line() int {
	return t.Pos.Line
}

// IsError 判断是否为带词法错误标记的 token
func (t Token) IsError() bool {
	return t.Err != ErrNone
}

// String 返回 Token 的字符串表示（用于调试）
func (t Token) String() string {
	switch t.Type {
	case NUMBER, IDENT, OPERATOR, ERROR:
		return fmt.Sprintf("%s(%s) at %s", t.Type, t.Literal, t.Pos)
	default:
		return fmt.Sprintf("%s at %s", t.Type, t.Pos)
	}
}

// Dump 按 token 流打印格式输出
//
// 形如 Token: NUMBER | Lexeme: '5' | Line: 1
func (t Token) Dump() string {
	return fmt.Sprintf("Token: %s | Lexeme: '%s' | Line: %d", t.Type, t.Literal, t.Line())
}

// ============================================================================
// Token 构造函数
// ============================================================================

// New 创建一个新的 Token
func New(tokenType TokenType, literal string, pos Position) Token {
	return Token{
		Type:    tokenType,
		Literal: literal,
		Pos:     pos,
	}
}

// NewError 创建一个带词法错误标记的 Token
func NewError(kind ErrKind, literal string, pos Position) Token {
	return Token{
		Type:    ERROR,
		Literal: literal,
		Err:     kind,
		Pos:     pos,
	}
}
