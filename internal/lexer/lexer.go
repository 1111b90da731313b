package lexer

import (
	"unicode/utf8"

	"github.com/minic-lang/minic/internal/errors"
	"github.com/minic-lang/minic/internal/token"
)

// ============================================================================
// Lexer - 词法分析器
// ============================================================================
//
// 词法分析器按需产出 Token：每次 NextToken 调用扫描一个 Token，
// 由语法分析器拉取。全部状态保存在结构体中，同一进程可并发
// 运行多个扫描器实例。
//
// 行号规则：
// 1. 行号在跳过空白与注释之后采样，注释内的换行计入其后的 Token
// 2. 产出 EOF 后行号计数器归零，再次拉取得到第 0 行的 EOF
//
// 性能说明：
// 1. ASCII 快速路径：本语言的合法字符全部是 ASCII，按字节扫描，
//    仅在遇到非法的多字节字符时做一次 UTF-8 解码
// 2. 词素直接从源码切片，不做拷贝
//
// ============================================================================

// Lexer 词法分析器结构体
type Lexer struct {
	source   string // 源代码字符串
	filename string // 源文件名（用于错误报告）

	start   int // 当前 Token 的起始位置（字节偏移）
	current int // 当前扫描位置（字节偏移）
	line    int // 当前行号（从 1 开始，EOF 之后为 0）
	column  int // 当前列号（从 1 开始）

	errors []*errors.Diagnostic // 词法错误列表
}

// State 扫描状态快照
//
// 语法分析器借助快照实现单步前瞻：保存状态、拉取下一个 Token、
// 再恢复状态。恢复时会丢弃前瞻期间收集的词法错误，避免重复报告。
type State struct {
	start   int
	current int
	line    int
	column  int
	errs    int
}

// ============================================================================
// 构造函数
// ============================================================================

// New 创建一个新的词法分析器
//
// 参数:
//   - source: 源代码字符串
//   - filename: 源文件名（用于错误报告）
func New(source, filename string) *Lexer {
	return &Lexer{
		source:   source,
		filename: filename,
		line:     1,
		column:   1,
	}
}

// ============================================================================
// 公共方法
// ============================================================================

// NextToken 扫描并返回下一个 Token
//
// 到达文件末尾时返回 EOF Token，词素固定为 "EOF"。
// 非法字符产出 ERROR Token 并记录诊断，扫描继续。
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	// 行号和列号在跳过空白之后采样，保证 Token 位置指向自身首字符
	pos := l.tokenPos()

	if l.isAtEnd() {
		l.line = 0
		return token.New(token.EOF, "EOF", pos)
	}

	l.start = l.current

	// 非 ASCII 字符不属于本语言，整个 rune 一起消费
	if l.peekByte() >= utf8.RuneSelf {
		_, size := utf8.DecodeRuneInString(l.source[l.current:])
		l.current += size
		l.column++
		return l.errorToken(token.ErrInvalidChar, pos)
	}

	ch := l.advanceByte()

	switch {
	case isDigit(ch):
		return l.number(pos)
	case isAlpha(ch):
		return l.identifier(pos)
	}

	// 运算符与分隔符
	switch ch {
	case '+', '-', '*', '/':
		return l.makeToken(token.OPERATOR, pos)

	case '>', '<':
		// > >= < <=
		l.match('=')
		return l.makeToken(token.OPERATOR, pos)

	case '=':
		// = 是赋值，== 是比较运算符
		if l.match('=') {
			return l.makeToken(token.OPERATOR, pos)
		}
		return l.makeToken(token.EQUALS, pos)

	case ';':
		return l.makeToken(token.SEMICOLON, pos)
	case '(':
		return l.makeToken(token.LPAREN, pos)
	case ')':
		return l.makeToken(token.RPAREN, pos)
	case '{':
		return l.makeToken(token.LBRACE, pos)
	case '}':
		return l.makeToken(token.RBRACE, pos)

	default:
		return l.errorToken(token.ErrInvalidChar, pos)
	}
}

// ScanTokens 扫描全部 Token
//
// 返回的序列以 EOF Token 结尾，用于 Token 打印和测试。
func (l *Lexer) ScanTokens() []token.Token {
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens
		}
	}
}

// Errors 返回所有词法错误
func (l *Lexer) Errors() []*errors.Diagnostic {
	return l.errors
}

// HasErrors 检查是否有错误
func (l *Lexer) HasErrors() bool {
	return len(l.errors) > 0
}

// SaveState 保存当前扫描状态
func (l *Lexer) SaveState() State {
	return State{
		start:   l.start,
		current: l.current,
		line:    l.line,
		column:  l.column,
		errs:    len(l.errors),
	}
}

// RestoreState 恢复扫描状态
func (l *Lexer) RestoreState(s State) {
	l.start = s.start
	l.current = s.current
	l.line = s.line
	l.column = s.column
	l.errors = l.errors[:s.errs]
}

// ============================================================================
// 空白与注释
// ============================================================================

// skipWhitespaceAndComments 跳过空白字符和块注释
//
// 空白与注释内的换行都会推进行号计数器。
// 块注释 /* ... */ 不嵌套，未闭合时静默吞到文件末尾。
func (l *Lexer) skipWhitespaceAndComments() {
	for !l.isAtEnd() {
		switch l.peekByte() {
		case ' ', '\t':
			l.advanceByte()

		case '\n':
			l.advanceByte()
			l.newLine()

		case '/':
			// 只有 /* 开启注释，单独的 / 是运算符
			if l.peekNextByte() != '*' {
				return
			}
			l.advanceByte()
			l.advanceByte()
			l.blockComment()

		default:
			return
		}
	}
}

// blockComment 跳过块注释内容（开头的 /* 已被消费）
func (l *Lexer) blockComment() {
	for !l.isAtEnd() {
		if l.peekByte() == '*' && l.peekNextByte() == '/' {
			l.advanceByte()
			l.advanceByte()
			return
		}
		if l.peekByte() == '\n' {
			l.advanceByte()
			l.newLine()
			continue
		}
		l.advanceByte()
	}
}

// ============================================================================
// 数字与标识符
// ============================================================================

// number 扫描数字字面量（首字符已被消费）
//
// 只有十进制整数。词素超过 MaxLexemeLen 时截断，
// 剩余数字作为下一个 Token 继续扫描。
func (l *Lexer) number(pos token.Position) token.Token {
	for isDigit(l.peekByte()) && l.current-l.start < token.MaxLexemeLen {
		l.advanceByte()
	}
	return l.makeToken(token.NUMBER, pos)
}

// identifier 扫描标识符或关键字（首字符已被消费）
//
// 标识符以字母或下划线开头，后跟字母、数字或下划线。
// 长度上限与数字相同。
func (l *Lexer) identifier(pos token.Position) token.Token {
	for isAlphaNumeric(l.peekByte()) && l.current-l.start < token.MaxLexemeLen {
		l.advanceByte()
	}
	return l.makeToken(token.LookupIdent(l.source[l.start:l.current]), pos)
}

// ============================================================================
// 底层字符操作（ASCII 字节级）
// ============================================================================

// isAtEnd 检查是否到达源代码末尾
func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

// advanceByte 前进一个字节并返回它
func (l *Lexer) advanceByte() byte {
	b := l.source[l.current]
	l.current++
	l.column++
	return b
}

// peekByte 查看当前字节但不前进
func (l *Lexer) peekByte() byte {
	if l.current >= len(l.source) {
		return 0
	}
	return l.source[l.current]
}

// peekNextByte 查看下一个字节（用于 /* 和 */ 双字符检查）
func (l *Lexer) peekNextByte() byte {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

// match 如果当前字节与预期相符则前进
func (l *Lexer) match(expected byte) bool {
	if l.current >= len(l.source) || l.source[l.current] != expected {
		return false
	}
	l.current++
	l.column++
	return true
}

// newLine 处理换行，更新行号和列号计数器
func (l *Lexer) newLine() {
	l.line++
	l.column = 1
}

// tokenPos 当前扫描位置对应的 Token 起始位置
func (l *Lexer) tokenPos() token.Position {
	return token.Position{
		Filename: l.filename,
		Line:     l.line,
		Column:   l.column,
		Offset:   l.current,
	}
}

// ============================================================================
// Token 生成与错误处理
// ============================================================================

// makeToken 用当前词素生成 Token
func (l *Lexer) makeToken(tokenType token.TokenType, pos token.Position) token.Token {
	return token.New(tokenType, l.source[l.start:l.current], pos)
}

// errorToken 生成 ERROR Token 并记录诊断
//
// 错误被收集起来，不会中断扫描。
func (l *Lexer) errorToken(kind token.ErrKind, pos token.Position) token.Token {
	literal := l.source[l.start:l.current]
	l.errors = append(l.errors, errors.NewAt(
		diagCode(kind), l.filename,
		pos.Line, pos.Column, pos.Column+len(literal),
		literal,
	))
	return token.NewError(kind, literal, pos)
}

// diagCode 词法错误类别对应的错误码
func diagCode(kind token.ErrKind) string {
	switch kind {
	case token.ErrInvalidNumber:
		return errors.L0002
	case token.ErrConsecutiveOperators:
		return errors.L0003
	case token.ErrInvalidIdentifier:
		return errors.L0004
	case token.ErrUnexpectedToken:
		return errors.L0005
	default:
		return errors.L0001
	}
}

// ============================================================================
// 字符分类函数
// ============================================================================

// isDigit 判断是否为数字 0-9
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// isAlpha 判断是否为字母或下划线
func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		ch == '_'
}

// isAlphaNumeric 判断是否为字母、数字或下划线
func isAlphaNumeric(ch byte) bool {
	return isAlpha(ch) || isDigit(ch)
}
