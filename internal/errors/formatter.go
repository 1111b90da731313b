package errors

import (
	"fmt"
	"strings"

	"github.com/minic-lang/minic/internal/i18n"
)

// ============================================================================
// 诊断对象
// ============================================================================

// Diagnostic 一条诊断信息
//
// Args 保存消息参数（词素、变量名等），渲染延迟到输出时进行，
// 因此切换语言后同一条诊断可以输出不同语言的文本。
type Diagnostic struct {
	Code      string        // 错误码
	Level     Level         // 诊断级别
	File      string        // 源文件名（可为空）
	Line      int           // 行号（1 开始）
	Column    int           // 列号（1 开始，0 表示未知）
	EndColumn int           // 结束列号（不含）
	Args      []interface{} // 消息参数
	Hints     []string      // 修复建议
	Notes     []string      // 附加说明
}

// New 创建诊断，只记录行号
func New(code string, line int, args ...interface{}) *Diagnostic {
	info, _ := GetErrorInfo(code)
	return &Diagnostic{
		Code:  code,
		Level: info.Level,
		Line:  line,
		Args:  args,
	}
}

// NewAt 创建诊断并记录完整位置
func NewAt(code, file string, line, column, endColumn int, args ...interface{}) *Diagnostic {
	d := New(code, line, args...)
	d.File = file
	d.Column = column
	d.EndColumn = endColumn
	return d
}

// Message 渲染消息正文（不含前缀）
func (d *Diagnostic) Message() string {
	info, ok := GetErrorInfo(d.Code)
	if !ok {
		return fmt.Sprintf("%s %v", d.Code, d.Args)
	}
	return i18n.T(info.MessageID, d.Args...)
}

// Error 渲染完整诊断文本，形如
//
//	Parse Error at line 3: Missing semicolon after 'x'
//
// 前缀由错误域决定，正文由错误码对应的消息模板决定。
func (d *Diagnostic) Error() string {
	info, ok := GetErrorInfo(d.Code)
	if !ok {
		return fmt.Sprintf("%s: %s", d.Code, d.Message())
	}
	var prefix string
	switch info.Category {
	case "lexical":
		prefix = i18n.T(i18n.PrefixLexical, d.Line)
	case "syntax":
		prefix = i18n.T(i18n.PrefixParse, d.Line)
	case "semantic":
		prefix = i18n.T(i18n.PrefixSemantic, d.Line)
	default:
		prefix = fmt.Sprintf("%s at line %d: ", info.Category, d.Line)
	}
	return prefix + d.Message()
}

// IsError 是否为错误级别（警告不影响整体有效性）
func (d *Diagnostic) IsError() bool {
	return d.Level == LevelError
}

// ============================================================================
// 诊断格式化器
// ============================================================================

// Formatter 诊断格式化器
//
// 默认输出单行纯文本。详细模式下输出带源码摘录的多行报告：
//
//	error[P0002]: Missing semicolon after 'x'
//	 --> demo.mc:3:10
//	  |
//	3 |     x = 5
//	  |          ^
//	  = help: add ';' at the end of the statement
type Formatter struct {
	Colors     bool // 是否启用 ANSI 颜色
	ShowSource bool // 是否显示源码摘录
	ShowHints  bool // 是否显示修复建议
	TabWidth   int  // 制表符宽度
}

// NewFormatter 创建格式化器（详细模式）
func NewFormatter() *Formatter {
	return &Formatter{
		Colors:     detectColorSupport(),
		ShowSource: true,
		ShowHints:  true,
		TabWidth:   4,
	}
}

// NewPlainFormatter 创建单行纯文本格式化器
func NewPlainFormatter() *Formatter {
	return &Formatter{
		Colors:     false,
		ShowSource: false,
		ShowHints:  false,
		TabWidth:   4,
	}
}

// Format 格式化一条诊断
//
// sourceLines 为诊断所在文件的全部源码行，可为 nil。
func (f *Formatter) Format(d *Diagnostic, sourceLines []string) string {
	if !f.ShowSource {
		return d.Error() + "\n"
	}

	var sb strings.Builder

	// 标题行: error[P0002]: Missing semicolon after 'x'
	level := d.Level.String()
	header := fmt.Sprintf("%s[%s]", level, d.Code)
	sb.WriteString(f.colorize(header, f.levelColor(d.Level)))
	sb.WriteString(f.colorize(": "+d.Message(), ColorBold))
	sb.WriteString("\n")

	// 位置行: --> demo.mc:3:10
	if d.File != "" || d.Line > 0 {
		file := d.File
		if file == "" {
			file = "<input>"
		}
		loc := fmt.Sprintf("%s:%d", file, d.Line)
		if d.Column > 0 {
			loc = fmt.Sprintf("%s:%d", loc, d.Column)
		}
		sb.WriteString(" ")
		sb.WriteString(f.colorize("--> ", ColorBlue))
		sb.WriteString(loc)
		sb.WriteString("\n")
	}

	// 源码摘录
	if d.Line > 0 && d.Line <= len(sourceLines) {
		sb.WriteString(f.formatSourceLine(d, sourceLines[d.Line-1]))
	}

	// 建议与说明
	if f.ShowHints {
		for _, hint := range d.Hints {
			sb.WriteString(" ")
			sb.WriteString(f.colorize("= help: ", ColorCyan))
			sb.WriteString(hint)
			sb.WriteString("\n")
		}
	}
	for _, note := range d.Notes {
		sb.WriteString(" ")
		sb.WriteString(f.colorize("= note: ", ColorBlue))
		sb.WriteString(note)
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatSourceLine 输出带行号和插入符的源码摘录
func (f *Formatter) formatSourceLine(d *Diagnostic, line string) string {
	var sb strings.Builder

	lineNum := fmt.Sprintf("%d", d.Line)
	gutter := strings.Repeat(" ", len(lineNum))
	expanded := f.expandTabs(line)

	sb.WriteString(f.colorize(gutter+" |", ColorBlue))
	sb.WriteString("\n")
	sb.WriteString(f.colorize(lineNum+" | ", ColorBlue))
	sb.WriteString(expanded)
	sb.WriteString("\n")

	if d.Column > 0 {
		col := f.caretColumn(line, d.Column)
		width := 1
		if d.EndColumn > d.Column {
			width = d.EndColumn - d.Column
		}
		sb.WriteString(f.colorize(gutter+" | ", ColorBlue))
		sb.WriteString(strings.Repeat(" ", col-1))
		sb.WriteString(f.colorize(strings.Repeat("^", width), f.levelColor(d.Level)))
		sb.WriteString("\n")
	} else {
		sb.WriteString(f.colorize(gutter+" |", ColorBlue))
		sb.WriteString("\n")
	}

	return sb.String()
}

// expandTabs 将制表符展开为空格
func (f *Formatter) expandTabs(line string) string {
	if !strings.Contains(line, "\t") {
		return line
	}
	var sb strings.Builder
	col := 0
	for _, ch := range line {
		if ch == '\t' {
			spaces := f.TabWidth - col%f.TabWidth
			sb.WriteString(strings.Repeat(" ", spaces))
			col += spaces
		} else {
			sb.WriteRune(ch)
			col++
		}
	}
	return sb.String()
}

// caretColumn 计算制表符展开后的实际列号
func (f *Formatter) caretColumn(line string, column int) int {
	col := 0
	for i, ch := range line {
		if i >= column-1 {
			break
		}
		if ch == '\t' {
			col += f.TabWidth - col%f.TabWidth
		} else {
			col++
		}
	}
	return col + 1
}

// levelColor 诊断级别对应的颜色
func (f *Formatter) levelColor(level Level) Color {
	switch level {
	case LevelError:
		return ColorRed
	case LevelWarning:
		return ColorYellow
	case LevelNote:
		return ColorBlue
	case LevelHelp:
		return ColorCyan
	default:
		return ColorReset
	}
}

// colorize 按需着色
func (f *Formatter) colorize(text string, color Color) string {
	if !f.Colors {
		return text
	}
	return Colorize(text, color)
}
