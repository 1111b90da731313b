package semantic

import (
	"bytes"
	"testing"

	"github.com/minic-lang/minic/internal/errors"
	"github.com/minic-lang/minic/internal/parser"
)

type analyzeResult struct {
	valid    bool
	reporter *errors.Reporter
	analyzer *Analyzer
	output   string
}

func analyzeSource(t *testing.T, source string) analyzeResult {
	t.Helper()

	p := parser.New(source, "test.mc")
	program, err := p.Parse()
	if err != nil {
		t.Fatalf("parser error: %v", err)
	}

	var buf bytes.Buffer
	reporter := errors.NewReporter()
	reporter.SetOutput(&buf)

	a := New(reporter)
	valid := a.Analyze(program)
	return analyzeResult{valid: valid, reporter: reporter, analyzer: a, output: buf.String()}
}

func TestAnalyzeValidProgram(t *testing.T) {
	res := analyzeSource(t, "int x;\nx = 5;\nprint x;")
	if !res.valid {
		t.Error("expected program to be valid")
	}
	if len(res.reporter.Diagnostics()) != 0 {
		t.Errorf("expected no diagnostics, got %d", len(res.reporter.Diagnostics()))
	}
}

func TestAnalyzeUndeclaredVariable(t *testing.T) {
	res := analyzeSource(t, "x = 5;")
	if res.valid {
		t.Error("expected program to be invalid")
	}
	if res.reporter.ErrorCount() != 1 {
		t.Fatalf("expected 1 error, got %d", res.reporter.ErrorCount())
	}

	want := "Semantic Error at line 1: Undeclared variable 'x'"
	if got := res.reporter.Errors()[0].Error(); got != want {
		t.Errorf("diagnostic mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestAnalyzeUndeclaredInExpression(t *testing.T) {
	res := analyzeSource(t, "int x;\nx = y + 1;")
	if res.valid {
		t.Error("expected program to be invalid")
	}

	want := "Semantic Error at line 2: Undeclared variable 'y'"
	if got := res.reporter.Errors()[0].Error(); got != want {
		t.Errorf("diagnostic mismatch:\ngot  %q\nwant %q", got, want)
	}

	// 右侧无效，目标不能记为已初始化
	sym := res.analyzer.Table().Lookup("x")
	if sym == nil {
		t.Fatal("expected x in table")
	}
	if sym.Initialized {
		t.Error("x must not be marked initialized after invalid assignment")
	}
}

func TestAnalyzeRedeclarationSameScope(t *testing.T) {
	res := analyzeSource(t, "int x;\nint x;")
	if res.valid {
		t.Error("expected program to be invalid")
	}

	want := "Semantic Error at line 2: Variable 'x' already declared in this scope"
	if got := res.reporter.Errors()[0].Error(); got != want {
		t.Errorf("diagnostic mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestAnalyzeShadowingIsAllowed(t *testing.T) {
	res := analyzeSource(t, "int x;\n{\nint x;\n}")
	if !res.valid {
		t.Error("expected shadowing in inner scope to be valid")
	}
	if len(res.reporter.Diagnostics()) != 0 {
		t.Errorf("expected no diagnostics, got %d", len(res.reporter.Diagnostics()))
	}
}

func TestAnalyzeUninitializedWarning(t *testing.T) {
	res := analyzeSource(t, "int x;\nprint x;")

	// 未初始化只是警告，分析结果仍然有效
	if !res.valid {
		t.Error("expected program to remain valid")
	}
	if res.reporter.HasErrors() {
		t.Error("expected no errors")
	}
	if res.reporter.WarningCount() != 1 {
		t.Fatalf("expected 1 warning, got %d", res.reporter.WarningCount())
	}

	want := "Semantic Error at line 2: Variable 'x' may be used uninitialized"
	if got := res.reporter.Warnings()[0].Error(); got != want {
		t.Errorf("diagnostic mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestAnalyzeUseAfterInitialization(t *testing.T) {
	res := analyzeSource(t, "int x;\nx = 1;\nprint x;")
	if !res.valid {
		t.Error("expected program to be valid")
	}
	if res.reporter.WarningCount() != 0 {
		t.Errorf("expected no warnings, got %d", res.reporter.WarningCount())
	}
}

func TestAnalyzeUndeclaredTargetSkipsRightSide(t *testing.T) {
	// 目标未声明时不检查右侧，y 不产生第二条诊断
	res := analyzeSource(t, "x = y;")
	if res.valid {
		t.Error("expected program to be invalid")
	}
	if got := len(res.reporter.Diagnostics()); got != 1 {
		t.Fatalf("expected exactly 1 diagnostic, got %d", got)
	}

	want := "Semantic Error at line 1: Undeclared variable 'x'"
	if got := res.reporter.Errors()[0].Error(); got != want {
		t.Errorf("diagnostic mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestAnalyzeBlockScopeLifetime(t *testing.T) {
	res := analyzeSource(t, "{\nint y;\ny = 1;\n}\nprint y;")
	if res.valid {
		t.Error("expected program to be invalid")
	}

	want := "Semantic Error at line 5: Undeclared variable 'y'"
	if got := res.reporter.Errors()[0].Error(); got != want {
		t.Errorf("diagnostic mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestAnalyzeOuterAssignmentFromBlock(t *testing.T) {
	// 代码块内对外层变量赋值，初始化状态在块退出后保留
	res := analyzeSource(t, "int x;\n{\nx = 5;\n}\nprint x;")
	if !res.valid {
		t.Error("expected program to be valid")
	}
	if len(res.reporter.Diagnostics()) != 0 {
		t.Errorf("expected no diagnostics, got %d", len(res.reporter.Diagnostics()))
	}
}

func TestAnalyzeNonBlockBodyDoesNotScope(t *testing.T) {
	// 只有代码块引入作用域，不带花括号的 if 体内声明落在当前作用域
	res := analyzeSource(t, "if (1 > 0) int y;\nprint y;")
	if !res.valid {
		t.Error("expected program to be valid")
	}
	if res.reporter.HasErrors() {
		t.Error("expected no errors")
	}
	if res.reporter.WarningCount() != 1 {
		t.Errorf("expected uninitialized warning for y, got %d warnings", res.reporter.WarningCount())
	}
}

func TestAnalyzeContinuesAfterError(t *testing.T) {
	res := analyzeSource(t, "x = 1;\ny = 2;\nint z;\nz = w;")
	if res.valid {
		t.Error("expected program to be invalid")
	}
	if res.reporter.ErrorCount() != 3 {
		t.Fatalf("expected 3 errors, got %d", res.reporter.ErrorCount())
	}

	wants := []string{
		"Semantic Error at line 1: Undeclared variable 'x'",
		"Semantic Error at line 2: Undeclared variable 'y'",
		"Semantic Error at line 4: Undeclared variable 'w'",
	}
	for i, want := range wants {
		if got := res.reporter.Errors()[i].Error(); got != want {
			t.Errorf("error %d mismatch:\ngot  %q\nwant %q", i, got, want)
		}
	}
}

func TestAnalyzeWhileChecksConditionAndBody(t *testing.T) {
	// 条件无效不阻止循环体检查
	res := analyzeSource(t, "while (a > 0) {\nb = 1;\n}")
	if res.valid {
		t.Error("expected program to be invalid")
	}
	if res.reporter.ErrorCount() != 2 {
		t.Fatalf("expected 2 errors, got %d", res.reporter.ErrorCount())
	}
}

func TestAnalyzeRepeatChecksBodyAndCondition(t *testing.T) {
	res := analyzeSource(t, "repeat {\ny = 1;\n} until (z > 0);")
	if res.valid {
		t.Error("expected program to be invalid")
	}
	if res.reporter.ErrorCount() != 2 {
		t.Fatalf("expected 2 errors, got %d", res.reporter.ErrorCount())
	}

	// 循环体先于条件报告
	wants := []string{
		"Semantic Error at line 2: Undeclared variable 'y'",
		"Semantic Error at line 3: Undeclared variable 'z'",
	}
	for i, want := range wants {
		if got := res.reporter.Errors()[i].Error(); got != want {
			t.Errorf("error %d mismatch:\ngot  %q\nwant %q", i, got, want)
		}
	}
}

func TestAnalyzeValidRepeatLoop(t *testing.T) {
	res := analyzeSource(t, "int x;\nx = 0;\nrepeat {\nx = x + 1;\n} until (x > 3);")
	if !res.valid {
		t.Error("expected program to be valid")
	}
	if len(res.reporter.Diagnostics()) != 0 {
		t.Errorf("expected no diagnostics, got %d", len(res.reporter.Diagnostics()))
	}
}

func TestAnalyzeFactorialArgument(t *testing.T) {
	res := analyzeSource(t, "int x;\nx = factorial(n);")
	if res.valid {
		t.Error("expected program to be invalid")
	}

	want := "Semantic Error at line 2: Undeclared variable 'n'"
	if got := res.reporter.Errors()[0].Error(); got != want {
		t.Errorf("diagnostic mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestAnalyzeFactorialCallIsValid(t *testing.T) {
	// factorial 本身不是变量，不参与符号表查找
	res := analyzeSource(t, "int n;\nn = 3;\nint x;\nx = factorial(n);")
	if !res.valid {
		t.Error("expected program to be valid")
	}
	if len(res.reporter.Diagnostics()) != 0 {
		t.Errorf("expected no diagnostics, got %d", len(res.reporter.Diagnostics()))
	}

	sym := res.analyzer.Table().Lookup("x")
	if sym == nil || !sym.Initialized {
		t.Error("expected x to be initialized by the call result")
	}
}

func TestAnalyzeNestedShadowAssignment(t *testing.T) {
	// 内层块中的赋值命中最近的遮蔽符号
	res := analyzeSource(t, "int x;\nx = 1;\n{\nint x;\n{\nx = 2;\n}\nprint x;\n}")
	if !res.valid {
		t.Error("expected program to be valid")
	}
	if len(res.reporter.Diagnostics()) != 0 {
		t.Errorf("expected no diagnostics, got %d", len(res.reporter.Diagnostics()))
	}
}

func TestAnalyzeDiagnosticOutputOrder(t *testing.T) {
	res := analyzeSource(t, "print q;\nint x;\nprint x;")

	expected := "Semantic Error at line 1: Undeclared variable 'q'\n" +
		"Semantic Error at line 3: Variable 'x' may be used uninitialized\n"
	if res.output != expected {
		t.Errorf("output mismatch:\ngot  %q\nwant %q", res.output, expected)
	}
}

func TestAnalyzeSymbolTableAfterAnalysis(t *testing.T) {
	source := "int a;\na = 1;\n{\nint b;\nb = 2;\n}\nint c;"
	res := analyzeSource(t, source)
	if !res.valid {
		t.Error("expected program to be valid")
	}

	// 分析结束后块内符号已清除，只剩全局符号
	var buf bytes.Buffer
	res.analyzer.Table().Dump(&buf)

	expected := `== SYMBOL TABLE DUMP ==
Total symbols: 2

Symbol[0]:
  Name: c
  Type: 16
  Scope Level: 0
  Line Declared: 7
  Initialized: No

Symbol[1]:
  Name: a
  Type: 16
  Scope Level: 0
  Line Declared: 1
  Initialized: Yes

===================
`

	if buf.String() != expected {
		t.Errorf("dump mismatch:\ngot:\n%s\nwant:\n%s", buf.String(), expected)
	}
}
