package lexer

import (
	"strings"
	"testing"
)

// ============================================================================
// Lexer 基准测试
// ============================================================================
//
// 运行基准测试：
//   go test -bench=. -benchmem ./internal/lexer/...
//
// 对比优化前后：
//   go test -bench=. -benchmem -count=5 ./internal/lexer/... > new.txt
//   # 切换到优化前的代码
//   go test -bench=. -benchmem -count=5 ./internal/lexer/... > old.txt
//   benchstat old.txt new.txt
//
// ============================================================================

// 测试源码样本：覆盖全部语法结构
var benchSource = `
/* 基准测试用的示例代码 */

int limit;
int total;
int i;

limit = 100;
total = 0;
i = 1;

while (i <= limit) {
    /* 偶数计入总和 */
    if (i - i / 2 * 2 == 0) {
        total = total + i;
    }
    i = i + 1;
}

repeat {
    total = total - 1;
} until (total < 50);

{
    int scratch;
    scratch = factorial(5);
    print(scratch);
}

print(total);
`

// BenchmarkLexer 测试完整的词法分析性能
func BenchmarkLexer(b *testing.B) {
	b.ReportAllocs()
	b.SetBytes(int64(len(benchSource)))

	for i := 0; i < b.N; i++ {
		lexer := New(benchSource, "bench.mc")
		_ = lexer.ScanTokens()
	}
}

// BenchmarkLexerLargeFile 测试大文件的词法分析性能
func BenchmarkLexerLargeFile(b *testing.B) {
	// 重复源码创建一个较大的文件
	largeSource := strings.Repeat(benchSource, 100)

	b.ReportAllocs()
	b.SetBytes(int64(len(largeSource)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		lexer := New(largeSource, "large.mc")
		_ = lexer.ScanTokens()
	}
}

// BenchmarkLexerWhitespace 测试空白字符跳过性能
func BenchmarkLexerWhitespace(b *testing.B) {
	// 创建包含大量空白的源码
	source := strings.Repeat("    \t\t    \n", 1000) + "identifier"

	b.ReportAllocs()
	b.SetBytes(int64(len(source)))

	for i := 0; i < b.N; i++ {
		lexer := New(source, "whitespace.mc")
		_ = lexer.ScanTokens()
	}
}

// BenchmarkLexerNumbers 测试数字解析性能
func BenchmarkLexerNumbers(b *testing.B) {
	source := strings.Repeat("123 456 789 0 1 2 3 4 5 6 7 8 9 ", 50)

	b.ReportAllocs()
	b.SetBytes(int64(len(source)))

	for i := 0; i < b.N; i++ {
		lexer := New(source, "numbers.mc")
		_ = lexer.ScanTokens()
	}
}

// BenchmarkLexerIdentifiers 测试标识符解析性能
func BenchmarkLexerIdentifiers(b *testing.B) {
	// 标识符与关键字混合
	source := strings.Repeat("foo bar baz qux identifier variable ", 50) +
		strings.Repeat("if while repeat until int print ", 30)

	b.ReportAllocs()
	b.SetBytes(int64(len(source)))

	for i := 0; i < b.N; i++ {
		lexer := New(source, "idents.mc")
		_ = lexer.ScanTokens()
	}
}

// BenchmarkLexerOperators 测试运算符解析性能
func BenchmarkLexerOperators(b *testing.B) {
	source := strings.Repeat("+ - * / = == < <= > >= ; ", 100)

	b.ReportAllocs()
	b.SetBytes(int64(len(source)))

	for i := 0; i < b.N; i++ {
		lexer := New(source, "operators.mc")
		_ = lexer.ScanTokens()
	}
}

// BenchmarkLexerComments 测试注释跳过性能
func BenchmarkLexerComments(b *testing.B) {
	source := strings.Repeat("/* block comment */ ", 80) +
		"/* multi\nline\ncomment */ identifier"

	b.ReportAllocs()
	b.SetBytes(int64(len(source)))

	for i := 0; i < b.N; i++ {
		lexer := New(source, "comments.mc")
		_ = lexer.ScanTokens()
	}
}
