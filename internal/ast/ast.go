package ast

import (
	"strings"

	"github.com/minic-lang/minic/internal/token"
)

// ============================================================================
// AST - 抽象语法树
// ============================================================================
//
// 每种语句和表达式都是独立的节点类型，字段按语义命名。
// 节点独占子节点，树中没有共享和环。
//
// ============================================================================

// Node 是所有 AST 节点的基接口
type Node interface {
	Pos() token.Position // 返回节点在源代码中的位置
	End() token.Position // 返回节点结束位置
	String() string      // 返回节点的字符串表示（用于调试）
}

// Expression 表示一个表达式节点
type Expression interface {
	Node
	exprNode()
}

// Statement 表示一个语句节点
type Statement interface {
	Node
	stmtNode()
}

// ============================================================================
// 表达式节点
// ============================================================================

// Identifier 标识符
type Identifier struct {
	Token token.Token
	Name  string
}

func (e *Identifier) Pos() token.Position { return e.Token.Pos }
func (e *Identifier) End() token.Position { return e.Token.Pos }
func (e *Identifier) String() string { return e.Name }
func (e *Identifier) exprNode() {}

// NumberLiteral 整数字面量
//
// Value 不做溢出检查，超出 int64 的字面量取饱和值，
// 诊断输出使用 Token.Literal 原文。
type NumberLiteral struct {
	Token token.Token
	Value int64
}

func (e *NumberLiteral) Pos() token.Position { return e.Token.Pos }
func (e *NumberLiteral) End() token.Position { return e.Token.Pos }
func (e *NumberLiteral) String() string { return e.Token.Literal }
func (e *NumberLiteral) exprNode() {}

// BinaryExpr 二元运算表达式
type BinaryExpr struct {
	Left     Expression
	Operator token.Token
	Right    Expression
}

func (e *BinaryExpr) Pos() token.Position { return e.Left.Pos() }
func (e *BinaryExpr) End() token.Position { return e.Right.End() }
func (e *BinaryExpr) String() string {
	return "(" + e.Left.String() + " " + e.Operator.Literal + " " + e.Right.String() + ")"
}
func (e *BinaryExpr) exprNode() {}

// CallExpr 内建函数调用
//
// 当前唯一可调用的函数是 factorial，单参数。
type CallExpr struct {
	Func     *Identifier // 函数名
	LParen   token.Token
	Argument Expression
	RParen   token.Token
}

func (e *CallExpr) Pos() token.Position { return e.Func.Pos() }
func (e *CallExpr) End() token.Position { return e.RParen.Pos }
func (e *CallExpr) String() string {
	return e.Func.String() + "(" + e.Argument.String() + ")"
}
func (e *CallExpr) exprNode() {}

// ============================================================================
// 语句节点
// ============================================================================

// VarDeclStmt 变量声明 int x;
type VarDeclStmt struct {
	IntToken  token.Token // int 关键字
	Name      *Identifier // 变量名
	Semicolon token.Token
}

func (s *VarDeclStmt) Pos() token.Position { return s.IntToken.Pos }
func (s *VarDeclStmt) End() token.Position { return s.Semicolon.Pos }
func (s *VarDeclStmt) String() string { return "int " + s.Name.String() + ";" }
func (s *VarDeclStmt) stmtNode() {}

// AssignStmt 赋值语句 x = expression;
type AssignStmt struct {
	Target    *Identifier // 赋值目标
	Equals    token.Token // = token
	Value     Expression  // 右值表达式
	Semicolon token.Token
}

func (s *AssignStmt) Pos() token.Position { return s.Target.Pos() }
func (s *AssignStmt) End() token.Position { return s.Semicolon.Pos }
func (s *AssignStmt) String() string {
	return s.Target.String() + " = " + s.Value.String() + ";"
}
func (s *AssignStmt) stmtNode() {}

// IfStmt if 语句 if (condition) statement
//
// Else 分支在接口上保留，当前语法没有 else 关键字，
// 语法分析器不会填充它。
type IfStmt struct {
	IfToken   token.Token
	Condition Expression
	Then      Statement
	Else      Statement // 可为 nil
}

func (s *IfStmt) Pos() token.Position { return s.IfToken.Pos }
func (s *IfStmt) End() token.Position {
	if s.Else != nil {
		return s.Else.End()
	}
	return s.Then.End()
}
func (s *IfStmt) String() string { return "if (...) ..." }
func (s *IfStmt) stmtNode() {}

// WhileStmt while 循环 while (condition) statement
type WhileStmt struct {
	WhileToken token.Token
	Condition  Expression
	Body       Statement
}

func (s *WhileStmt) Pos() token.Position { return s.WhileToken.Pos }
func (s *WhileStmt) End() token.Position { return s.Body.End() }
func (s *WhileStmt) String() string { return "while (...) ..." }
func (s *WhileStmt) stmtNode() {}

// RepeatStmt repeat-until 循环 repeat statement until (condition);
type RepeatStmt struct {
	RepeatToken token.Token
	Body        Statement
	UntilToken  token.Token
	Condition   Expression
	Semicolon   token.Token
}

func (s *RepeatStmt) Pos() token.Position { return s.RepeatToken.Pos }
func (s *RepeatStmt) End() token.Position { return s.Semicolon.Pos }
func (s *RepeatStmt) String() string { return "repeat ... until (...);" }
func (s *RepeatStmt) stmtNode() {}

// PrintStmt 打印语句 print expression;
//
// print 不要求括号，print(x); 里的括号属于表达式。
type PrintStmt struct {
	PrintToken token.Token
	Value      Expression
	Semicolon  token.Token
}

func (s *PrintStmt) Pos() token.Position { return s.PrintToken.Pos }
func (s *PrintStmt) End() token.Position { return s.Semicolon.Pos }
func (s *PrintStmt) String() string { return "print " + s.Value.String() + ";" }
func (s *PrintStmt) stmtNode() {}

// BlockStmt 代码块 { statement1 statement2 ... }
//
// 代码块是唯一开启新作用域的结构。
type BlockStmt struct {
	LBrace     token.Token
	Statements []Statement
	RBrace     token.Token
}

func (s *BlockStmt) Pos() token.Position { return s.LBrace.Pos }
func (s *BlockStmt) End() token.Position { return s.RBrace.Pos }
func (s *BlockStmt) String() string {
	var stmts []string
	for _, stmt := range s.Statements {
		stmts = append(stmts, stmt.String())
	}
	return "{ " + strings.Join(stmts, " ") + " }"
}
func (s *BlockStmt) stmtNode() {}

// ============================================================================
// 程序根节点
// ============================================================================

// Program 整个源文件的语句序列
type Program struct {
	Statements []Statement
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{}
}

func (p *Program) End() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[len(p.Statements)-1].End()
	}
	return token.Position{}
}

func (p *Program) String() string {
	var stmts []string
	for _, stmt := range p.Statements {
		stmts = append(stmts, stmt.String())
	}
	return strings.Join(stmts, " ")
}

// ============================================================================
// 遍历
// ============================================================================

// Visitor 访问者函数类型
//
// 返回 false 时不再深入当前节点的子树。
type Visitor func(node Node) bool

// Walk 深度优先遍历 AST 节点
func Walk(node Node, visitor Visitor) {
	if node == nil {
		return
	}

	if !visitor(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, stmt := range n.Statements {
			Walk(stmt, visitor)
		}

	case *BlockStmt:
		for _, stmt := range n.Statements {
			Walk(stmt, visitor)
		}

	case *VarDeclStmt:
		Walk(n.Name, visitor)

	case *AssignStmt:
		Walk(n.Target, visitor)
		Walk(n.Value, visitor)

	case *IfStmt:
		Walk(n.Condition, visitor)
		Walk(n.Then, visitor)
		if n.Else != nil {
			Walk(n.Else, visitor)
		}

	case *WhileStmt:
		Walk(n.Condition, visitor)
		Walk(n.Body, visitor)

	case *RepeatStmt:
		Walk(n.Body, visitor)
		Walk(n.Condition, visitor)

	case *PrintStmt:
		Walk(n.Value, visitor)

	case *BinaryExpr:
		Walk(n.Left, visitor)
		Walk(n.Right, visitor)

	case *CallExpr:
		Walk(n.Func, visitor)
		Walk(n.Argument, visitor)
	}
}
