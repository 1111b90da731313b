package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/minic-lang/minic/internal/i18n"
)

// ============================================================================
// 诊断报告器
// ============================================================================

// Reporter 收集并输出诊断
//
// 默认用单行格式写到 stdout。详细模式换用带源码摘录的格式化器。
// 诊断同时被收集，供调用方查询数量或在 LSP 中转发。
type Reporter struct {
	formatter   *Formatter
	out         io.Writer
	sourceCache map[string][]string
	errors      []*Diagnostic
	warnings    []*Diagnostic
}

// NewReporter 创建报告器（单行输出）
func NewReporter() *Reporter {
	return &Reporter{
		formatter:   NewPlainFormatter(),
		out:         os.Stdout,
		sourceCache: make(map[string][]string),
	}
}

// SetFormatter 设置格式化器
func (r *Reporter) SetFormatter(f *Formatter) {
	r.formatter = f
}

// SetOutput 设置输出目标
func (r *Reporter) SetOutput(w io.Writer) {
	r.out = w
}

// LoadSource 加载源文件内容用于错误显示
func (r *Reporter) LoadSource(filename string) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	r.SetSource(filename, string(content))
	return nil
}

// SetSource 直接设置源码内容（用于 REPL 和测试）
func (r *Reporter) SetSource(filename, content string) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	r.sourceCache[filename] = strings.Split(content, "\n")
}

// GetSourceLine 获取指定行的源码
func (r *Reporter) GetSourceLine(filename string, line int) string {
	lines, ok := r.sourceCache[filename]
	if !ok || line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// Report 报告一条诊断
//
// 警告与错误分开收集，警告不影响 HasErrors 的结果。
func (r *Reporter) Report(d *Diagnostic) {
	if len(d.Hints) == 0 {
		d.Hints = GetSuggestions(d.Code, suggestionContext(d))
	}

	if d.Level == LevelWarning {
		r.warnings = append(r.warnings, d)
	} else {
		r.errors = append(r.errors, d)
	}

	fmt.Fprint(r.out, r.formatter.Format(d, r.sourceCache[d.File]))
}

// suggestionContext 从诊断参数构造建议上下文
func suggestionContext(d *Diagnostic) map[string]string {
	context := make(map[string]string)
	if len(d.Args) > 0 {
		context["name"] = fmt.Sprintf("%v", d.Args[0])
		context["lexeme"] = context["name"]
	}
	return context
}

// HasErrors 是否存在错误级别的诊断
func (r *Reporter) HasErrors() bool {
	return len(r.errors) > 0
}

// ErrorCount 错误数量
func (r *Reporter) ErrorCount() int {
	return len(r.errors)
}

// WarningCount 警告数量
func (r *Reporter) WarningCount() int {
	return len(r.warnings)
}

// Errors 所有错误
func (r *Reporter) Errors() []*Diagnostic {
	return r.errors
}

// Warnings 所有警告
func (r *Reporter) Warnings() []*Diagnostic {
	return r.warnings
}

// Diagnostics 所有诊断（先错误后警告）
func (r *Reporter) Diagnostics() []*Diagnostic {
	all := make([]*Diagnostic, 0, len(r.errors)+len(r.warnings))
	all = append(all, r.errors...)
	all = append(all, r.warnings...)
	return all
}

// PrintSummary 输出诊断统计
func (r *Reporter) PrintSummary() {
	if len(r.errors) > 0 {
		line := i18n.T(i18n.DiagFoundErrors, len(r.errors))
		fmt.Fprintln(r.out, r.formatter.colorize(line, ColorRed))
	}
	if len(r.warnings) > 0 {
		line := i18n.T(i18n.DiagFoundWarnings, len(r.warnings))
		fmt.Fprintln(r.out, r.formatter.colorize(line, ColorYellow))
	}
}

// Clear 清空已收集的诊断
func (r *Reporter) Clear() {
	r.errors = nil
	r.warnings = nil
}

// ============================================================================
// 默认报告器
// ============================================================================

var defaultReporter = NewReporter()

// Default 默认报告器
func Default() *Reporter {
	return defaultReporter
}

// Report 使用默认报告器报告诊断
func Report(d *Diagnostic) {
	defaultReporter.Report(d)
}

// HasErrors 默认报告器是否存在错误
func HasErrors() bool {
	return defaultReporter.HasErrors()
}

// Clear 清空默认报告器
func Clear() {
	defaultReporter.Clear()
}
