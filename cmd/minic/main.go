package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/minic-lang/minic/internal/ast"
	"github.com/minic-lang/minic/internal/errors"
	"github.com/minic-lang/minic/internal/lexer"
	"github.com/minic-lang/minic/internal/loader"
	"github.com/minic-lang/minic/internal/parser"
	"github.com/minic-lang/minic/internal/semantic"
)

const (
	Version = "0.1.0"
)

// 全局语言参数
var globalLang string

func main() {
	// 预扫描全局参数 --lang 或 -lang
	args := preprocessArgs(os.Args[1:])

	// 初始化语言
	InitLanguage(globalLang)

	if len(args) < 1 {
		printUsage()
		os.Exit(0)
	}

	command := args[0]

	switch command {
	case "check":
		cmdCheck(args[1:])
	case "tokens":
		cmdTokens(args[1:])
	case "ast":
		cmdAst(args[1:])
	case "init":
		cmdInit(args[1:])
	case "version", "-v", "--version":
		cmdVersion()
	case "help", "-h", "--help":
		printUsage()
	default:
		// 兼容用法：直接检查文件
		if !isFlag(command) && loader.IsSourceFile(command) {
			cmdCheck(args)
		} else {
			fmt.Fprintf(os.Stderr, Msg().ErrUnknownCmd+"\n\n", command)
			printUsage()
			os.Exit(1)
		}
	}
}

// preprocessArgs 预处理参数，提取全局 --lang 参数
func preprocessArgs(args []string) []string {
	var result []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--lang" || arg == "-lang" {
			if i+1 < len(args) {
				globalLang = args[i+1]
				i++ // 跳过下一个参数
				continue
			}
		} else if strings.HasPrefix(arg, "--lang=") {
			globalLang = strings.TrimPrefix(arg, "--lang=")
			continue
		} else if strings.HasPrefix(arg, "-lang=") {
			globalLang = strings.TrimPrefix(arg, "-lang=")
			continue
		}
		result = append(result, arg)
	}
	return result
}

func isFlag(s string) bool {
	return len(s) > 0 && s[0] == '-'
}

func printUsage() {
	m := Msg()
	fmt.Printf(m.VersionTitle+"\n\n", Version)
	fmt.Println(m.HelpUsage)
	fmt.Println("  minic [--lang en|zh] <command> [options] [arguments]")
	fmt.Println()
	fmt.Println(m.HelpCommands)
	fmt.Printf("  check <file>    %s\n", m.CmdCheck)
	fmt.Printf("  tokens <file>   %s\n", m.CmdTokens)
	fmt.Printf("  ast <file>      %s\n", m.CmdAst)
	fmt.Printf("  init            %s\n", m.CmdInit)
	fmt.Printf("  version         %s\n", m.CmdVersion)
	fmt.Printf("  help            %s\n", m.CmdHelp)
	fmt.Println()
	fmt.Println(m.HelpOptions)
	fmt.Printf("  -v              %s\n", m.OptVerbose)
	fmt.Printf("  -ast            %s\n", m.OptShowAST)
	fmt.Printf("  -symbols        %s\n", m.OptDumpSymbols)
	fmt.Printf("  --lang <en|zh>  %s\n", m.OptLang)
	fmt.Println()
	fmt.Println(m.HelpExamples)
	fmt.Printf("  minic check main%s\n", loader.SourceFileExtension)
	fmt.Printf("  minic check -v main%s\n", loader.SourceFileExtension)
	fmt.Printf("  minic tokens main%s\n", loader.SourceFileExtension)
	fmt.Printf("  minic --lang zh help\n")
}

// loadSource 加载并规范化一个源文件
func loadSource(filename string) (string, *loader.Loader) {
	m := Msg()

	if !loader.IsSourceFile(filename) {
		fmt.Fprintf(os.Stderr, m.ErrInvalidSourceFile+"\n", filename, loader.SourceFileExtension)
		os.Exit(1)
	}

	ld, err := loader.New(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, m.ErrReadFile+"\n", err)
		os.Exit(1)
	}

	source, err := ld.ReadSource(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, m.ErrReadFile+"\n", err)
		os.Exit(1)
	}

	return source, ld
}

// cmdCheck 完整检查：词法、语法、语义
func cmdCheck(args []string) {
	m := Msg()
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	verbose := fs.Bool("v", false, m.OptVerbose)
	showAST := fs.Bool("ast", false, m.OptShowAST)
	dumpSymbols := fs.Bool("symbols", false, m.OptDumpSymbols)

	fs.Usage = func() {
		fmt.Println(m.HelpUsage + " minic check [options] <file>")
		fmt.Println()
		fmt.Println(m.HelpOptions)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fs.Usage()
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, m.ErrNoInput)
		os.Exit(1)
	}

	filename := fs.Arg(0)
	source, ld := loadSource(filename)

	// 项目配置提供缺省开关
	wantAST := *showAST
	wantSymbols := *dumpSymbols
	if cfg := ld.Config(); cfg != nil {
		ApplyConfigLanguage(cfg.Diagnostics.Language)
		m = Msg()
		wantAST = wantAST || cfg.Check.ShowAST
		wantSymbols = wantSymbols || cfg.Check.DumpSymbols
	}

	reporter := errors.NewReporter()
	if *verbose {
		reporter.SetFormatter(errors.NewFormatter())
		reporter.SetSource(filename, source)
	}

	p := parser.New(source, filename)
	program, parseErr := p.Parse()

	// 词法错误先于语法错误输出
	for _, d := range p.LexErrors() {
		reporter.Report(d)
	}

	if parseErr != nil {
		if d, ok := parseErr.(*errors.Diagnostic); ok {
			reporter.Report(d)
		} else {
			fmt.Fprintln(os.Stderr, parseErr)
		}
		reporter.PrintSummary()
		os.Exit(1)
	}

	analyzer := semantic.New(reporter)
	valid := analyzer.Analyze(program)

	// 符号表在分析结束后输出，失败时也输出
	if wantSymbols {
		analyzer.Table().Dump(os.Stdout)
	}

	if !valid || reporter.HasErrors() {
		reporter.PrintSummary()
		os.Exit(1)
	}

	if wantAST {
		ast.Fprint(os.Stdout, program)
	}

	fmt.Printf(m.SuccessCheckOK+"\n", filename)
	if reporter.WarningCount() > 0 {
		reporter.PrintSummary()
	}
}

// cmdTokens 输出词法分析结果
func cmdTokens(args []string) {
	m := Msg()
	fs := flag.NewFlagSet("tokens", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Println(m.HelpUsage + " minic tokens <file>")
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fs.Usage()
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, m.ErrNoInput)
		os.Exit(1)
	}

	source, _ := loadSource(fs.Arg(0))

	l := lexer.New(source, fs.Arg(0))
	tokens := l.ScanTokens()
	lexErrs := l.Errors()

	fmt.Println("=== Tokens ===")
	errIdx := 0
	for _, tok := range tokens {
		// 非法 token 的位置输出对应的词法错误
		if tok.IsError() && errIdx < len(lexErrs) {
			fmt.Println(lexErrs[errIdx].Error())
			errIdx++
			continue
		}
		fmt.Println(tok.Dump())
	}

	if l.HasErrors() {
		os.Exit(1)
	}
}

// cmdAst 输出语法树
func cmdAst(args []string) {
	m := Msg()
	fs := flag.NewFlagSet("ast", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Println(m.HelpUsage + " minic ast <file>")
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fs.Usage()
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, m.ErrNoInput)
		os.Exit(1)
	}

	filename := fs.Arg(0)
	source, _ := loadSource(filename)

	p := parser.New(source, filename)
	program, parseErr := p.Parse()

	reporter := errors.NewReporter()
	for _, d := range p.LexErrors() {
		reporter.Report(d)
	}
	if parseErr != nil {
		if d, ok := parseErr.(*errors.Diagnostic); ok {
			reporter.Report(d)
		} else {
			fmt.Fprintln(os.Stderr, parseErr)
		}
		os.Exit(1)
	}

	fmt.Println("=== AST ===")
	ast.Fprint(os.Stdout, program)
}

// cmdVersion 显示版本信息
func cmdVersion() {
	m := Msg()
	fmt.Printf(m.VersionTitle+"\n", Version)
	fmt.Println(m.VersionDesc)
}
