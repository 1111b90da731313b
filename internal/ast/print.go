package ast

import (
	"fmt"
	"io"
	"strings"
)

// ============================================================================
// AST 打印器
// ============================================================================
//
// 以缩进树的形式输出 AST，每层缩进两个空格：
//
//	Program
//	  VarDecl: x
//	  Assign
//	    Identifier: x
//	    BinaryOp: +
//	      Number: 1
//	      Number: 2
//
// ============================================================================

// Fprint 将 AST 写入 w
//
// 用显式工作栈做前序遍历，深层嵌套的程序不消耗调用栈。
func Fprint(w io.Writer, node Node) {
	if node == nil {
		return
	}

	type frame struct {
		node  Node
		level int
	}

	stack := []frame{{node, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", f.level), label(f.node))

		// 子节点逆序入栈，保证出栈顺序与源码顺序一致
		kids := children(f.node)
		for i := len(kids) - 1; i >= 0; i-- {
			if kids[i] != nil {
				stack = append(stack, frame{kids[i], f.level + 1})
			}
		}
	}
}

// label 节点的打印标签
func label(node Node) string {
	switch n := node.(type) {
	case *Program:
		return "Program"
	case *VarDeclStmt:
		return "VarDecl: " + n.Name.Name
	case *AssignStmt:
		return "Assign"
	case *IfStmt:
		return "If"
	case *WhileStmt:
		return "While"
	case *RepeatStmt:
		return "Repeat-Until"
	case *PrintStmt:
		return "Print"
	case *BlockStmt:
		return "Block"
	case *BinaryExpr:
		return "BinaryOp: " + n.Operator.Literal
	case *CallExpr:
		return "FuncCall: " + n.Func.Name
	case *NumberLiteral:
		return "Number: " + n.Token.Literal
	case *Identifier:
		return "Identifier: " + n.Name
	default:
		return "Unknown"
	}
}

// children 节点的子节点，按打印顺序排列
//
// 变量声明的名字直接写在标签里，没有独立子节点。
func children(node Node) []Node {
	switch n := node.(type) {
	case *Program:
		kids := make([]Node, len(n.Statements))
		for i, stmt := range n.Statements {
			kids[i] = stmt
		}
		return kids
	case *BlockStmt:
		kids := make([]Node, len(n.Statements))
		for i, stmt := range n.Statements {
			kids[i] = stmt
		}
		return kids
	case *AssignStmt:
		return []Node{n.Target, n.Value}
	case *IfStmt:
		if n.Else != nil {
			return []Node{n.Condition, n.Then, n.Else}
		}
		return []Node{n.Condition, n.Then}
	case *WhileStmt:
		return []Node{n.Condition, n.Body}
	case *RepeatStmt:
		return []Node{n.Body, n.Condition}
	case *PrintStmt:
		return []Node{n.Value}
	case *BinaryExpr:
		return []Node{n.Left, n.Right}
	case *CallExpr:
		return []Node{n.Argument}
	default:
		return nil
	}
}
