package semantic

import (
	"github.com/minic-lang/minic/internal/ast"
	"github.com/minic-lang/minic/internal/errors"
	"github.com/minic-lang/minic/internal/token"
)

// ============================================================================
// Analyzer - 语义分析器
// ============================================================================
//
// 单趟遍历 AST，边走边维护作用域符号表。检查三类问题：
// 1. 使用未声明的变量（错误）
// 2. 同一作用域内重复声明（错误）
// 3. 读取可能未初始化的变量（警告，不影响分析结果）
//
// 分析器从不中止：一条语句无效后继续检查后面的语句，
// 尽可能多地报告问题。返回值表示程序是否通过全部错误级检查。
//
// 规则细节：
// 1. 赋值目标未声明时不再检查右侧表达式
// 2. 只有右侧表达式完全有效，目标变量才记为已初始化
// 3. 只有代码块引入新作用域，if/while/repeat 的非块语句体
//    不产生作用域
//
// ============================================================================

// Analyzer 语义分析器结构体
type Analyzer struct {
	table    *SymbolTable
	reporter *errors.Reporter
}

// New 创建语义分析器，诊断写入给定的报告器
func New(reporter *errors.Reporter) *Analyzer {
	return &Analyzer{
		table:    NewSymbolTable(),
		reporter: reporter,
	}
}

// Table 返回符号表，分析结束后其中只剩全局作用域的符号
func (a *Analyzer) Table() *SymbolTable {
	return a.table
}

// Analyze 检查整个程序，返回是否通过全部错误级检查
func (a *Analyzer) Analyze(program *ast.Program) bool {
	if program == nil {
		return true
	}
	valid := true
	for _, stmt := range program.Statements {
		if !a.checkStatement(stmt) {
			valid = false
		}
	}
	return valid
}

// checkStatement 按语句类型分发检查
func (a *Analyzer) checkStatement(stmt ast.Statement) bool {
	switch s := stmt.(type) {
	case *ast.VarDeclStmt:
		return a.checkDeclaration(s)
	case *ast.AssignStmt:
		return a.checkAssignment(s)
	case *ast.BlockStmt:
		return a.checkBlock(s)
	case *ast.IfStmt:
		valid := true
		if !a.checkCondition(s.Condition) {
			valid = false
		}
		if !a.checkStatement(s.Then) {
			valid = false
		}
		if s.Else != nil {
			if !a.checkStatement(s.Else) {
				valid = false
			}
		}
		return valid
	case *ast.WhileStmt:
		valid := true
		if !a.checkCondition(s.Condition) {
			valid = false
		}
		if !a.checkStatement(s.Body) {
			valid = false
		}
		return valid
	case *ast.RepeatStmt:
		// 循环体至少执行一次，先于条件检查
		valid := true
		if !a.checkStatement(s.Body) {
			valid = false
		}
		if !a.checkCondition(s.Condition) {
			valid = false
		}
		return valid
	case *ast.PrintStmt:
		return a.checkExpression(s.Value)
	default:
		return true
	}
}

// checkDeclaration 检查变量声明，注册新符号
func (a *Analyzer) checkDeclaration(s *ast.VarDeclStmt) bool {
	name := s.Name.Name
	if a.table.LookupCurrentScope(name) != nil {
		a.report(errors.S0002, s.Name.Token, name)
		return false
	}
	a.table.Insert(name, int(token.INT), s.Name.Token.Line())
	return true
}

// checkAssignment 检查赋值语句
func (a *Analyzer) checkAssignment(s *ast.AssignStmt) bool {
	name := s.Target.Name
	sym := a.table.Lookup(name)
	if sym == nil {
		a.report(errors.S0001, s.Target.Token, name)
		return false
	}
	valid := a.checkExpression(s.Value)
	if valid {
		sym.Initialized = true
	}
	return valid
}

// checkExpression 递归检查表达式
func (a *Analyzer) checkExpression(expr ast.Expression) bool {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		return true
	case *ast.Identifier:
		sym := a.table.Lookup(e.Name)
		if sym == nil {
			a.report(errors.S0001, e.Token, e.Name)
			return false
		}
		if !sym.Initialized {
			// 仅告警，不改变分析结果
			a.report(errors.S0004, e.Token, e.Name)
		}
		return true
	case *ast.BinaryExpr:
		valid := true
		if !a.checkExpression(e.Left) {
			valid = false
		}
		if !a.checkExpression(e.Right) {
			valid = false
		}
		return valid
	case *ast.CallExpr:
		// factorial 是内置函数，只检查实参
		return a.checkExpression(e.Argument)
	default:
		return true
	}
}

// checkBlock 检查代码块，进出作用域
func (a *Analyzer) checkBlock(s *ast.BlockStmt) bool {
	a.table.EnterScope()
	valid := true
	for _, stmt := range s.Statements {
		if !a.checkStatement(stmt) {
			valid = false
		}
	}
	a.table.ExitScope()
	return valid
}

// checkCondition 检查条件表达式，if/while/repeat 共用
func (a *Analyzer) checkCondition(expr ast.Expression) bool {
	return a.checkExpression(expr)
}

// report 以给定位置发出一条语义诊断
func (a *Analyzer) report(code string, tok token.Token, name string) {
	a.reporter.Report(errors.NewAt(code, tok.Pos.Filename, tok.Line(), tok.Pos.Column, tok.Pos.Column+len(name), name))
}
