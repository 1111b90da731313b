package parser

import (
	"strconv"

	"github.com/minic-lang/minic/internal/ast"
	"github.com/minic-lang/minic/internal/errors"
	"github.com/minic-lang/minic/internal/lexer"
	"github.com/minic-lang/minic/internal/token"
)

// ============================================================================
// Parser - 语法分析器
// ============================================================================
//
// 递归下降，一个 token 的前瞻。Token 从词法分析器按需拉取，
// 只保留当前 token 作为状态。
//
// 错误策略是快速失败：第一个结构性错误终止整个解析，
// Parse 返回 nil 和该诊断，不产生部分 AST。
//
// 表达式按优先级分层（低到高）：
//
//	equality (== !=) → comparison (< >) → term (+ -) → factor (* /) → primary
//
// 每层对左侧迭代折叠，a - b - c 解析为 (a - b) - c。
//
// ============================================================================

// Parser 语法分析器
type Parser struct {
	lexer     *lexer.Lexer
	current   token.Token // 当前 token（一个前瞻）
	filename  string
	exprDepth int // 表达式解析深度，防止栈溢出
}

// maxExprDepth 最大表达式嵌套深度，防止栈溢出
const maxExprDepth = 200

// New 创建一个新的语法分析器
func New(source, filename string) *Parser {
	p := &Parser{
		lexer:    lexer.New(source, filename),
		filename: filename,
	}
	p.advance() // 读入第一个 token
	return p
}

// Parse 解析整个程序
//
// 成功时返回程序根节点。任何语法错误立即终止解析，
// 返回 nil 和对应的诊断。
func (p *Parser) Parse() (*ast.Program, error) {
	program := &ast.Program{}

	for !p.check(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
	}

	return program, nil
}

// LexErrors 返回词法分析阶段收集的诊断
func (p *Parser) LexErrors() []*errors.Diagnostic {
	return p.lexer.Errors()
}

// ============================================================================
// 辅助方法
// ============================================================================

// advance 消费当前 token 并拉取下一个
func (p *Parser) advance() {
	p.current = p.lexer.NextToken()
}

// check 检查当前 token 是否为指定类型
func (p *Parser) check(t token.TokenType) bool {
	return p.current.Type == t
}

// expect 要求当前 token 为指定类型并消费，否则报意外 token 错误
func (p *Parser) expect(t token.TokenType) (token.Token, error) {
	if p.check(t) {
		tok := p.current
		p.advance()
		return tok, nil
	}
	return token.Token{}, p.errorf(errors.P0001)
}

// errorf 在当前 token 处生成诊断
//
// 消息参数固定为当前 token 的词素。
func (p *Parser) errorf(code string) error {
	tok := p.current
	return errors.NewAt(
		code, p.filename,
		tok.Line(), tok.Pos.Column, tok.Pos.Column+len(tok.Literal),
		tok.Literal,
	)
}

// ============================================================================
// 语句解析
// ============================================================================

// parseStatement 按当前 token 类型分发语句解析
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.current.Type {
	case token.INT:
		return p.parseDeclaration()
	case token.IDENT:
		// 函数调用在表达式层处理，标识符开头的语句只能是赋值
		return p.parseAssignment()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.REPEAT:
		return p.parseRepeatStatement()
	case token.PRINT:
		return p.parsePrintStatement()
	case token.LBRACE:
		return p.parseBlock()
	default:
		return nil, p.errorf(errors.P0001)
	}
}

// parseDeclaration 解析变量声明 int x;
func (p *Parser) parseDeclaration() (ast.Statement, error) {
	intTok := p.current
	p.advance() // 消费 'int'

	if !p.check(token.IDENT) {
		return nil, p.errorf(errors.P0003)
	}
	name := &ast.Identifier{Token: p.current, Name: p.current.Literal}
	p.advance()

	if !p.check(token.SEMICOLON) {
		return nil, p.errorf(errors.P0002)
	}
	semi := p.current
	p.advance()

	return &ast.VarDeclStmt{IntToken: intTok, Name: name, Semicolon: semi}, nil
}

// parseAssignment 解析赋值语句 x = expression;
func (p *Parser) parseAssignment() (ast.Statement, error) {
	target := &ast.Identifier{Token: p.current, Name: p.current.Literal}
	p.advance()

	if !p.check(token.EQUALS) {
		return nil, p.errorf(errors.P0004)
	}
	eq := p.current
	p.advance()

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if !p.check(token.SEMICOLON) {
		return nil, p.errorf(errors.P0002)
	}
	semi := p.current
	p.advance()

	return &ast.AssignStmt{Target: target, Equals: eq, Value: value, Semicolon: semi}, nil
}

// parseIfStatement 解析 if 语句 if (condition) statement
//
// 语法没有 else 关键字，IfStmt.Else 始终为 nil。
func (p *Parser) parseIfStatement() (ast.Statement, error) {
	ifTok := p.current
	p.advance() // 消费 'if'

	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	return &ast.IfStmt{IfToken: ifTok, Condition: cond, Then: then}, nil
}

// parseWhileStatement 解析 while 循环 while (condition) statement
func (p *Parser) parseWhileStatement() (ast.Statement, error) {
	whileTok := p.current
	p.advance() // 消费 'while'

	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	return &ast.WhileStmt{WhileToken: whileTok, Condition: cond, Body: body}, nil
}

// parseRepeatStatement 解析 repeat-until 循环 repeat statement until (condition);
func (p *Parser) parseRepeatStatement() (ast.Statement, error) {
	repeatTok := p.current
	p.advance() // 消费 'repeat'

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	if !p.check(token.UNTIL) {
		return nil, p.errorf(errors.P0001)
	}
	untilTok := p.current
	p.advance()

	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	semi, err := p.expect(token.SEMICOLON)
	if err != nil {
		return nil, err
	}

	return &ast.RepeatStmt{
		RepeatToken: repeatTok,
		Body:        body,
		UntilToken:  untilTok,
		Condition:   cond,
		Semicolon:   semi,
	}, nil
}

// parsePrintStatement 解析打印语句 print expression;
func (p *Parser) parsePrintStatement() (ast.Statement, error) {
	printTok := p.current
	p.advance() // 消费 'print'

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if !p.check(token.SEMICOLON) {
		return nil, p.errorf(errors.P0002)
	}
	semi := p.current
	p.advance()

	return &ast.PrintStmt{PrintToken: printTok, Value: value, Semicolon: semi}, nil
}

// parseBlock 解析代码块 { statement1 statement2 ... }
func (p *Parser) parseBlock() (ast.Statement, error) {
	lbrace, err := p.expect(token.LBRACE)
	if err != nil {
		return nil, err
	}

	block := &ast.BlockStmt{LBrace: lbrace}
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}

	// 到达 EOF 仍未闭合
	if !p.check(token.RBRACE) {
		return nil, p.errorf(errors.P0009)
	}
	block.RBrace = p.current
	p.advance()

	return block, nil
}

// ============================================================================
// 表达式解析（优先级分层）
// ============================================================================

// parseExpression 解析表达式
func (p *Parser) parseExpression() (ast.Expression, error) {
	// 检查递归深度，防止栈溢出
	p.exprDepth++
	if p.exprDepth > maxExprDepth {
		p.exprDepth--
		return nil, p.errorf(errors.P0005)
	}
	defer func() { p.exprDepth-- }()

	return p.parseEquality()
}

// parseEquality 相等比较 == !=
func (p *Parser) parseEquality() (ast.Expression, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}

	for p.check(token.OPERATOR) && (p.current.Literal == "==" || p.current.Literal == "!=") {
		op := p.current
		p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Operator: op, Right: right}
	}

	return left, nil
}

// parseComparison 大小比较 < >
func (p *Parser) parseComparison() (ast.Expression, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.check(token.OPERATOR) && (p.current.Literal == "<" || p.current.Literal == ">") {
		op := p.current
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Operator: op, Right: right}
	}

	return left, nil
}

// parseTerm 加减 + -
func (p *Parser) parseTerm() (ast.Expression, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.check(token.OPERATOR) && (p.current.Literal == "+" || p.current.Literal == "-") {
		op := p.current
		p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Operator: op, Right: right}
	}

	return left, nil
}

// parseFactor 乘除 * /
func (p *Parser) parseFactor() (ast.Expression, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for p.check(token.OPERATOR) && (p.current.Literal == "*" || p.current.Literal == "/") {
		op := p.current
		p.advance()
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Operator: op, Right: right}
	}

	return left, nil
}

// parsePrimary 原子表达式：数字、标识符、函数调用、括号表达式
func (p *Parser) parsePrimary() (ast.Expression, error) {
	switch p.current.Type {
	case token.NUMBER:
		tok := p.current
		// 不做溢出检查，超出范围的字面量取饱和值
		value, _ := strconv.ParseInt(tok.Literal, 10, 64)
		p.advance()
		return &ast.NumberLiteral{Token: tok, Value: value}, nil

	case token.IDENT:
		// 前瞻一个 token 区分函数调用与普通标识符，
		// 无论结果如何都回退到当前位置
		state := p.lexer.SaveState()
		next := p.lexer.NextToken()
		p.lexer.RestoreState(state)

		if next.Type == token.LPAREN && p.current.Literal == "factorial" {
			return p.parseFactorial()
		}

		tok := p.current
		p.advance()
		return &ast.Identifier{Token: tok, Name: tok.Literal}, nil

	case token.LPAREN:
		p.advance() // 消费 '('
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		// 括号不产生节点
		return expr, nil

	default:
		return nil, p.errorf(errors.P0001)
	}
}

// parseFactorial 解析内建函数调用 factorial(expression)
func (p *Parser) parseFactorial() (ast.Expression, error) {
	fn := &ast.Identifier{Token: p.current, Name: p.current.Literal}
	p.advance() // 消费 'factorial'

	lparen, err := p.expect(token.LPAREN)
	if err != nil {
		return nil, err
	}
	arg, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	rparen, err := p.expect(token.RPAREN)
	if err != nil {
		return nil, err
	}

	return &ast.CallExpr{Func: fn, LParen: lparen, Argument: arg, RParen: rparen}, nil
}
