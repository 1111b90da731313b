package lsp

import (
	"encoding/json"

	"go.lsp.dev/protocol"

	"github.com/minic-lang/minic/internal/ast"
	"github.com/minic-lang/minic/internal/token"
)

// handleDocumentSymbol 处理文档符号请求
func (s *Server) handleDocumentSymbol(id json.RawMessage, params json.RawMessage) {
	var p protocol.DocumentSymbolParams
	if err := json.Unmarshal(params, &p); err != nil {
		s.sendError(id, -32700, "Parse error")
		return
	}

	docURI := string(p.TextDocument.URI)
	doc := s.documents.Get(docURI)
	if doc == nil {
		s.sendResult(id, []protocol.DocumentSymbol{})
		return
	}

	symbols := s.getDocumentSymbols(doc)
	s.sendResult(id, symbols)
}

// getDocumentSymbols 获取文档符号列表
//
// 遍历语法树收集全部变量声明，包含嵌套块里的。
func (s *Server) getDocumentSymbols(doc *Document) []protocol.DocumentSymbol {
	symbols := []protocol.DocumentSymbol{}

	result := doc.Analysis()
	if result.Program == nil {
		return symbols
	}

	ast.Walk(result.Program, func(node ast.Node) bool {
		decl, ok := node.(*ast.VarDeclStmt)
		if !ok {
			return true
		}
		symbols = append(symbols, declarationToSymbol(decl))
		return true
	})

	return symbols
}

// declarationToSymbol 将变量声明转换为文档符号
func declarationToSymbol(decl *ast.VarDeclStmt) protocol.DocumentSymbol {
	nameTok := decl.Name.Token

	return protocol.DocumentSymbol{
		Name:   decl.Name.Name,
		Detail: "int",
		Kind:   protocol.SymbolKindVariable,
		Range: protocol.Range{
			Start: positionToProtocol(decl.IntToken.Pos, 0),
			// 范围覆盖到分号
			End: positionToProtocol(decl.Semicolon.Pos, 1),
		},
		SelectionRange: protocol.Range{
			Start: positionToProtocol(nameTok.Pos, 0),
			End:   positionToProtocol(nameTok.Pos, len(decl.Name.Name)),
		},
	}
}

// positionToProtocol 将内部位置转换为 LSP 位置，offset 为列偏移
func positionToProtocol(pos token.Position, offset int) protocol.Position {
	line := pos.Line
	if line < 1 {
		line = 1
	}
	column := pos.Column
	if column < 1 {
		column = 1
	}
	return protocol.Position{
		Line:      uint32(line - 1),
		Character: uint32(column - 1 + offset),
	}
}
