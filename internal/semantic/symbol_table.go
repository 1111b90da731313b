package semantic

import (
	"fmt"
	"io"
)

// ============================================================================
// 符号表
// ============================================================================
//
// 扁平切片 + 作用域层级标记。符号按声明顺序追加，当前作用域的符号
// 总是位于切片尾部，退出作用域时从尾部弹出该层级的全部符号。
//
// 查找从尾部向前扫描，先命中内层符号，实现就近遮蔽。
//
// ============================================================================

// Symbol 一个已声明的变量
type Symbol struct {
	Name         string
	Type         int // token.TokenType 的数值
	ScopeLevel   int
	LineDeclared int
	Initialized  bool
}

// SymbolTable 作用域敏感的符号表
type SymbolTable struct {
	symbols      []*Symbol
	currentScope int
}

// NewSymbolTable 创建符号表，全局作用域层级为 0
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		symbols:      make([]*Symbol, 0, 16),
		currentScope: 0,
	}
}

// CurrentScope 返回当前作用域层级
func (t *SymbolTable) CurrentScope() int {
	return t.currentScope
}

// Len 返回表中符号数量
func (t *SymbolTable) Len() int {
	return len(t.symbols)
}

// Insert 在当前作用域注册一个符号并返回它
//
// 不做重复检查，调用方先用 LookupCurrentScope 判断重声明。
func (t *SymbolTable) Insert(name string, typ int, line int) *Symbol {
	sym := &Symbol{
		Name:         name,
		Type:         typ,
		ScopeLevel:   t.currentScope,
		LineDeclared: line,
		Initialized:  false,
	}
	t.symbols = append(t.symbols, sym)
	return sym
}

// Lookup 跨作用域查找符号，内层优先
func (t *SymbolTable) Lookup(name string) *Symbol {
	for i := len(t.symbols) - 1; i >= 0; i-- {
		if t.symbols[i].Name == name {
			return t.symbols[i]
		}
	}
	return nil
}

// LookupCurrentScope 只在当前作用域层级查找符号
func (t *SymbolTable) LookupCurrentScope(name string) *Symbol {
	for i := len(t.symbols) - 1; i >= 0; i-- {
		if t.symbols[i].Name == name && t.symbols[i].ScopeLevel == t.currentScope {
			return t.symbols[i]
		}
	}
	return nil
}

// EnterScope 进入新作用域
func (t *SymbolTable) EnterScope() {
	t.currentScope++
}

// ExitScope 退出当前作用域，清除该层级的全部符号
func (t *SymbolTable) ExitScope() {
	for len(t.symbols) > 0 && t.symbols[len(t.symbols)-1].ScopeLevel == t.currentScope {
		t.symbols = t.symbols[:len(t.symbols)-1]
	}
	t.currentScope--
}

// Symbols 返回存活符号，最近声明的在前
func (t *SymbolTable) Symbols() []*Symbol {
	out := make([]*Symbol, 0, len(t.symbols))
	for i := len(t.symbols) - 1; i >= 0; i-- {
		out = append(out, t.symbols[i])
	}
	return out
}

// Dump 输出符号表内容，最近声明的符号编号为 0
func (t *SymbolTable) Dump(w io.Writer) {
	fmt.Fprintf(w, "== SYMBOL TABLE DUMP ==\n")
	fmt.Fprintf(w, "Total symbols: %d\n\n", len(t.symbols))
	index := 0
	for i := len(t.symbols) - 1; i >= 0; i-- {
		sym := t.symbols[i]
		initialized := "No"
		if sym.Initialized {
			initialized = "Yes"
		}
		fmt.Fprintf(w, "Symbol[%d]:\n", index)
		fmt.Fprintf(w, "  Name: %s\n", sym.Name)
		fmt.Fprintf(w, "  Type: %d\n", sym.Type)
		fmt.Fprintf(w, "  Scope Level: %d\n", sym.ScopeLevel)
		fmt.Fprintf(w, "  Line Declared: %d\n", sym.LineDeclared)
		fmt.Fprintf(w, "  Initialized: %s\n", initialized)
		fmt.Fprintf(w, "\n")
		index++
	}
	fmt.Fprintf(w, "===================\n")
}
