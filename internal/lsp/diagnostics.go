package lsp

import (
	"go.lsp.dev/protocol"

	"github.com/minic-lang/minic/internal/errors"
)

// getDiagnostics 获取文档的诊断信息
func (s *Server) getDiagnostics(doc *Document) []protocol.Diagnostic {
	result := doc.Analysis()

	diagnostics := make([]protocol.Diagnostic, 0, len(result.Diagnostics))
	for _, d := range result.Diagnostics {
		diagnostics = append(diagnostics, toProtocolDiagnostic(d))
	}
	return diagnostics
}

// toProtocolDiagnostic 将内部诊断转换为 LSP 诊断
func toProtocolDiagnostic(d *errors.Diagnostic) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	switch d.Level {
	case errors.LevelWarning:
		severity = protocol.DiagnosticSeverityWarning
	case errors.LevelNote:
		severity = protocol.DiagnosticSeverityInformation
	case errors.LevelHelp:
		severity = protocol.DiagnosticSeverityHint
	}

	// 内部位置从 1 开始，LSP 从 0 开始
	line := d.Line
	if line < 1 {
		line = 1
	}
	column := d.Column
	if column < 1 {
		column = 1
	}
	endColumn := d.EndColumn
	if endColumn <= column {
		endColumn = column + 1
	}

	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{
				Line:      uint32(line - 1),
				Character: uint32(column - 1),
			},
			End: protocol.Position{
				Line:      uint32(line - 1),
				Character: uint32(endColumn - 1),
			},
		},
		Severity: severity,
		Code:     d.Code,
		Source:   "minic",
		Message:  d.Message(),
	}
}

// publishDiagnostics 发布诊断信息
func (s *Server) publishDiagnostics(docURI string) {
	doc := s.documents.Get(docURI)
	if doc == nil {
		return
	}

	diagnostics := s.getDiagnostics(doc)
	s.logger.Debug("Publishing %d diagnostics for %s", len(diagnostics), docURI)

	s.sendNotification("textDocument/publishDiagnostics", protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(docURI),
		Version:     uint32(doc.Version),
		Diagnostics: diagnostics,
	})
}

// clearDiagnostics 清除文档的诊断信息
func (s *Server) clearDiagnostics(docURI string) {
	s.sendNotification("textDocument/publishDiagnostics", protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(docURI),
		Diagnostics: []protocol.Diagnostic{},
	})
}
