package parser

import (
	"strings"
	"testing"

	"github.com/minic-lang/minic/internal/ast"
)

func TestParseVariableDeclaration(t *testing.T) {
	p := New("int counter;", "test.mc")
	program, err := p.Parse()
	if err != nil {
		t.Fatalf("parser error: %v", err)
	}

	if len(program.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(program.Statements))
	}

	stmt, ok := program.Statements[0].(*ast.VarDeclStmt)
	if !ok {
		t.Fatalf("expected VarDeclStmt, got %T", program.Statements[0])
	}
	if stmt.Name.Name != "counter" {
		t.Errorf("expected name counter, got %s", stmt.Name.Name)
	}
}

func TestParseAssignment(t *testing.T) {
	p := New("x = 5;", "test.mc")
	program, err := p.Parse()
	if err != nil {
		t.Fatalf("parser error: %v", err)
	}

	stmt, ok := program.Statements[0].(*ast.AssignStmt)
	if !ok {
		t.Fatalf("expected AssignStmt, got %T", program.Statements[0])
	}
	if stmt.Target.Name != "x" {
		t.Errorf("expected target x, got %s", stmt.Target.Name)
	}

	num, ok := stmt.Value.(*ast.NumberLiteral)
	if !ok {
		t.Fatalf("expected NumberLiteral, got %T", stmt.Value)
	}
	if num.Value != 5 {
		t.Errorf("expected value 5, got %d", num.Value)
	}
}

func TestParseExpressionPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`x = 3 + 4 * 2;`, "(3 + (4 * 2))"},
		{`x = a - b - c;`, "((a - b) - c)"},
		{`x = (1 + 2) * 3;`, "((1 + 2) * 3)"},
		{`x = a + b / 2 - 1;`, "((a + (b / 2)) - 1)"},
		{`x = a < b + 1;`, "(a < (b + 1))"},
		{`x = a > b == c > d;`, "((a > b) == (c > d))"},
		{`x = 1 == 2 + 3;`, "(1 == (2 + 3))"},
		{`x = ((5));`, "5"},
	}

	for _, tt := range tests {
		p := New(tt.input, "test.mc")
		program, err := p.Parse()
		if err != nil {
			t.Errorf("input %q: parser error: %v", tt.input, err)
			continue
		}

		stmt, ok := program.Statements[0].(*ast.AssignStmt)
		if !ok {
			t.Errorf("input %q: expected AssignStmt, got %T", tt.input, program.Statements[0])
			continue
		}
		if got := stmt.Value.String(); got != tt.expected {
			t.Errorf("input %q: tree mismatch:\ngot  %s\nwant %s", tt.input, got, tt.expected)
		}
	}
}

func TestParseIfStatement(t *testing.T) {
	p := New("if (x > 0) { y = 1; }", "test.mc")
	program, err := p.Parse()
	if err != nil {
		t.Fatalf("parser error: %v", err)
	}

	stmt, ok := program.Statements[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("expected IfStmt, got %T", program.Statements[0])
	}
	if stmt.Else != nil {
		t.Errorf("expected nil else branch, got %T", stmt.Else)
	}
	if _, ok := stmt.Then.(*ast.BlockStmt); !ok {
		t.Errorf("expected BlockStmt body, got %T", stmt.Then)
	}

	cond, ok := stmt.Condition.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("expected BinaryExpr condition, got %T", stmt.Condition)
	}
	if cond.Operator.Literal != ">" {
		t.Errorf("expected > operator, got %s", cond.Operator.Literal)
	}
}

func TestParseIfWithSingleStatementBody(t *testing.T) {
	// 循环体和分支体可以是任意语句，不要求代码块
	p := New("if (x > 0) y = 1;", "test.mc")
	program, err := p.Parse()
	if err != nil {
		t.Fatalf("parser error: %v", err)
	}

	stmt := program.Statements[0].(*ast.IfStmt)
	if _, ok := stmt.Then.(*ast.AssignStmt); !ok {
		t.Errorf("expected AssignStmt body, got %T", stmt.Then)
	}
}

func TestParseWhileStatement(t *testing.T) {
	p := New("while (i < 10) { i = i + 1; }", "test.mc")
	program, err := p.Parse()
	if err != nil {
		t.Fatalf("parser error: %v", err)
	}

	stmt, ok := program.Statements[0].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("expected WhileStmt, got %T", program.Statements[0])
	}

	body, ok := stmt.Body.(*ast.BlockStmt)
	if !ok {
		t.Fatalf("expected BlockStmt body, got %T", stmt.Body)
	}
	if len(body.Statements) != 1 {
		t.Errorf("expected 1 body statement, got %d", len(body.Statements))
	}
}

func TestParseRepeatStatement(t *testing.T) {
	p := New("repeat { x = x - 1; } until (x < 1);", "test.mc")
	program, err := p.Parse()
	if err != nil {
		t.Fatalf("parser error: %v", err)
	}

	stmt, ok := program.Statements[0].(*ast.RepeatStmt)
	if !ok {
		t.Fatalf("expected RepeatStmt, got %T", program.Statements[0])
	}
	if _, ok := stmt.Body.(*ast.BlockStmt); !ok {
		t.Errorf("expected BlockStmt body, got %T", stmt.Body)
	}

	cond, ok := stmt.Condition.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("expected BinaryExpr condition, got %T", stmt.Condition)
	}
	if cond.Operator.Literal != "<" {
		t.Errorf("expected < operator, got %s", cond.Operator.Literal)
	}
}

func TestParsePrintStatement(t *testing.T) {
	// print 不要求括号，print(x) 的括号属于表达式本身
	tests := []string{
		"print x;",
		"print(x);",
	}

	for _, input := range tests {
		p := New(input, "test.mc")
		program, err := p.Parse()
		if err != nil {
			t.Errorf("input %q: parser error: %v", input, err)
			continue
		}

		stmt, ok := program.Statements[0].(*ast.PrintStmt)
		if !ok {
			t.Errorf("input %q: expected PrintStmt, got %T", input, program.Statements[0])
			continue
		}
		if _, ok := stmt.Value.(*ast.Identifier); !ok {
			t.Errorf("input %q: expected Identifier value, got %T", input, stmt.Value)
		}
	}
}

func TestParseNestedBlocks(t *testing.T) {
	input := `
	int x;
	{
		int y;
		{
			y = 1;
		}
	}
	`

	p := New(input, "test.mc")
	program, err := p.Parse()
	if err != nil {
		t.Fatalf("parser error: %v", err)
	}

	if len(program.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(program.Statements))
	}

	outer, ok := program.Statements[1].(*ast.BlockStmt)
	if !ok {
		t.Fatalf("expected BlockStmt, got %T", program.Statements[1])
	}
	if len(outer.Statements) != 2 {
		t.Fatalf("expected 2 statements in outer block, got %d", len(outer.Statements))
	}
	if _, ok := outer.Statements[1].(*ast.BlockStmt); !ok {
		t.Errorf("expected nested BlockStmt, got %T", outer.Statements[1])
	}
}

func TestParseFactorialCall(t *testing.T) {
	p := New("x = factorial(n - 1);", "test.mc")
	program, err := p.Parse()
	if err != nil {
		t.Fatalf("parser error: %v", err)
	}

	stmt := program.Statements[0].(*ast.AssignStmt)
	call, ok := stmt.Value.(*ast.CallExpr)
	if !ok {
		t.Fatalf("expected CallExpr, got %T", stmt.Value)
	}
	if call.Func.Name != "factorial" {
		t.Errorf("expected factorial, got %s", call.Func.Name)
	}
	if _, ok := call.Argument.(*ast.BinaryExpr); !ok {
		t.Errorf("expected BinaryExpr argument, got %T", call.Argument)
	}
}

func TestParseBareFactorialIsIdentifier(t *testing.T) {
	// 只有后面紧跟 ( 的 factorial 才是函数调用
	p := New("x = factorial;", "test.mc")
	program, err := p.Parse()
	if err != nil {
		t.Fatalf("parser error: %v", err)
	}

	stmt := program.Statements[0].(*ast.AssignStmt)
	if _, ok := stmt.Value.(*ast.Identifier); !ok {
		t.Errorf("expected Identifier, got %T", stmt.Value)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`5;`, "Parse Error at line 1: Unexpected token '5'"},
		{`int 5;`, "Parse Error at line 1: Expected identifier after '5'"},
		{`int x`, "Parse Error at line 1: Missing semicolon after 'EOF'"},
		{`x 5;`, "Parse Error at line 1: Expected '=' after '5'"},
		{`x = 5`, "Parse Error at line 1: Missing semicolon after 'EOF'"},
		{`x = ;`, "Parse Error at line 1: Unexpected token ';'"},
		{`if x > 0) x = 1;`, "Parse Error at line 1: Unexpected token 'x'"},
		{`while (x > 0 x = 1;`, "Parse Error at line 1: Unexpected token 'x'"},
		{`{ x = 1;`, "Parse Error at line 1: Missing block braces after 'EOF'"},
		{`repeat x = 1; while (x > 0);`, "Parse Error at line 1: Unexpected token 'while'"},
		{`repeat x = 1; until (x > 0)`, "Parse Error at line 1: Unexpected token 'EOF'"},
		{`print x`, "Parse Error at line 1: Missing semicolon after 'EOF'"},
		{"int x;\nx = ;", "Parse Error at line 2: Unexpected token ';'"},
	}

	for _, tt := range tests {
		p := New(tt.input, "test.mc")
		program, err := p.Parse()
		if err == nil {
			t.Errorf("input %q: expected parse error, got none", tt.input)
			continue
		}
		// 结构性错误不返回部分 AST
		if program != nil {
			t.Errorf("input %q: expected nil program on error", tt.input)
		}
		if got := err.Error(); got != tt.expected {
			t.Errorf("input %q: diagnostic mismatch:\ngot  %q\nwant %q", tt.input, got, tt.expected)
		}
	}
}

func TestParseCallOfUnknownFunctionFails(t *testing.T) {
	// 普通标识符后面的 ( 不属于表达式，在语句层报缺少分号
	p := New("y = fact(5);", "test.mc")
	_, err := p.Parse()
	if err == nil {
		t.Fatal("expected parse error, got none")
	}
	want := "Parse Error at line 1: Missing semicolon after '('"
	if got := err.Error(); got != want {
		t.Errorf("diagnostic mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestParseProgram(t *testing.T) {
	input := `
	int x;
	x = 10;
	while (x > 0) {
		print x;
		x = x - 1;
	}
	`

	p := New(input, "test.mc")
	program, err := p.Parse()
	if err != nil {
		t.Fatalf("parser error: %v", err)
	}
	if len(program.Statements) != 3 {
		t.Errorf("expected 3 statements, got %d", len(program.Statements))
	}
}

func TestParseEmptySource(t *testing.T) {
	p := New("", "test.mc")
	program, err := p.Parse()
	if err != nil {
		t.Fatalf("parser error: %v", err)
	}
	if len(program.Statements) != 0 {
		t.Errorf("expected empty program, got %d statements", len(program.Statements))
	}
}

func TestParseASTDump(t *testing.T) {
	input := "int x;\nx = 1 + 2 * 3;"

	p := New(input, "test.mc")
	program, err := p.Parse()
	if err != nil {
		t.Fatalf("parser error: %v", err)
	}

	var sb strings.Builder
	ast.Fprint(&sb, program)

	expected := `Program
  VarDecl: x
  Assign
    Identifier: x
    BinaryOp: +
      Number: 1
      BinaryOp: *
        Number: 2
        Number: 3
`

	if sb.String() != expected {
		t.Errorf("dump mismatch:\ngot:\n%s\nwant:\n%s", sb.String(), expected)
	}
}

func TestParseLexicalErrorSurfacesAsParseError(t *testing.T) {
	// 非法字符产生 ERROR token，语法层按意外 token 处理
	p := New("x = @;", "test.mc")
	_, err := p.Parse()
	if err == nil {
		t.Fatal("expected parse error, got none")
	}
	want := "Parse Error at line 1: Unexpected token '@'"
	if got := err.Error(); got != want {
		t.Errorf("diagnostic mismatch:\ngot  %q\nwant %q", got, want)
	}

	// 词法错误单独收集
	if len(p.LexErrors()) != 1 {
		t.Fatalf("expected 1 lexical error, got %d", len(p.LexErrors()))
	}
	lexWant := "Lexical Error at line 1: Invalid character '@'"
	if got := p.LexErrors()[0].Error(); got != lexWant {
		t.Errorf("lexical diagnostic mismatch:\ngot  %q\nwant %q", got, lexWant)
	}
}
