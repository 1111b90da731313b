package main

import (
	"os"
	"runtime"
	"strings"

	"github.com/minic-lang/minic/internal/i18n"
)

// Language 语言类型
type Language string

const (
	LangEnglish Language = "en"
	LangChinese Language = "zh"
)

// Messages 消息结构
type Messages struct {
	// 版本信息
	VersionTitle string
	VersionDesc  string

	// 帮助信息
	HelpUsage    string
	HelpCommands string
	HelpOptions  string
	HelpExamples string

	// 命令描述
	CmdCheck   string
	CmdTokens  string
	CmdAst     string
	CmdInit    string
	CmdVersion string
	CmdHelp    string

	// 选项描述
	OptVerbose     string
	OptShowAST     string
	OptDumpSymbols string
	OptLang        string

	// 错误信息
	ErrNoInput           string
	ErrReadFile          string
	ErrUnknownCmd        string
	ErrInvalidSourceFile string
	ErrGetWorkDir        string
	ErrConfigExists      string
	ErrCreateConfig      string
	ErrCreateFile        string

	// 成功信息
	SuccessCheckOK string

	// init 命令
	InitDesc      string
	InitOptName   string
	InitCreating  string
	InitSuccess   string
	InitNextSteps string
}

// 英文消息
var messagesEN = Messages{
	VersionTitle: "MiniC Programming Language v%s",
	VersionDesc:  "A compiler front end for the MiniC teaching language",

	HelpUsage:    "Usage:",
	HelpCommands: "Commands:",
	HelpOptions:  "Options:",
	HelpExamples: "Examples:",

	CmdCheck:   "Run lexical, syntax and semantic checks on a source file",
	CmdTokens:  "Show lexer tokens",
	CmdAst:     "Show the syntax tree",
	CmdInit:    "Create a new MiniC project in the current directory",
	CmdVersion: "Show version information",
	CmdHelp:    "Show this help message",

	OptVerbose:     "Verbose diagnostics with source excerpts",
	OptShowAST:     "Show the syntax tree after a successful check",
	OptDumpSymbols: "Dump the symbol table after analysis",
	OptLang:        "Set language (en/zh)",

	ErrNoInput:           "Error: no input file specified",
	ErrReadFile:          "Error reading file: %v",
	ErrUnknownCmd:        "Unknown command: %s",
	ErrInvalidSourceFile: "Error: %s is not a valid source file (expected %s)",
	ErrGetWorkDir:        "Error getting working directory: %v",
	ErrConfigExists:      "Error: %s already exists",
	ErrCreateConfig:      "Error creating config file: %v",
	ErrCreateFile:        "Error creating file: %v",

	SuccessCheckOK: "✓ %s: check passed",

	InitDesc:      "Creates minic.toml and a sample main.mc in the current directory.",
	InitOptName:   "Project name (defaults to the directory name)",
	InitCreating:  "Creating %s",
	InitSuccess:   "✓ Project %s initialized",
	InitNextSteps: "Next steps:",
}

// 中文消息
var messagesZH = Messages{
	VersionTitle: "MiniC 编程语言 v%s",
	VersionDesc:  "MiniC 教学语言的编译器前端",

	HelpUsage:    "用法:",
	HelpCommands: "命令:",
	HelpOptions:  "选项:",
	HelpExamples: "示例:",

	CmdCheck:   "对源文件做词法、语法和语义检查",
	CmdTokens:  "显示词法分析结果",
	CmdAst:     "显示语法树",
	CmdInit:    "在当前目录创建新的 MiniC 项目",
	CmdVersion: "显示版本信息",
	CmdHelp:    "显示帮助信息",

	OptVerbose:     "详细诊断，带源码摘录",
	OptShowAST:     "检查通过后显示语法树",
	OptDumpSymbols: "分析结束后输出符号表",
	OptLang:        "设置语言 (en/zh)",

	ErrNoInput:           "错误: 未指定输入文件",
	ErrReadFile:          "读取文件错误: %v",
	ErrUnknownCmd:        "未知命令: %s",
	ErrInvalidSourceFile: "错误: %s 不是有效的源文件（应为 %s）",
	ErrGetWorkDir:        "获取工作目录错误: %v",
	ErrConfigExists:      "错误: %s 已存在",
	ErrCreateConfig:      "创建配置文件错误: %v",
	ErrCreateFile:        "创建文件错误: %v",

	SuccessCheckOK: "✓ %s: 检查通过",

	InitDesc:      "在当前目录创建 minic.toml 和示例 main.mc。",
	InitOptName:   "项目名（默认用目录名）",
	InitCreating:  "正在创建 %s",
	InitSuccess:   "✓ 项目 %s 初始化完成",
	InitNextSteps: "接下来:",
}

// 当前消息
var msg = messagesEN

// 当前语言
var currentLang = LangEnglish

// 语言是否被命令行参数或环境变量显式指定
var languageExplicit bool

// InitLanguage 初始化语言设置
// 优先级: 命令行参数 > 环境变量 MINIC_LANG > 操作系统语言 > 默认英文
func InitLanguage(langOverride string) {
	// 1. 命令行参数优先
	if langOverride != "" {
		languageExplicit = true
		setLanguage(langOverride)
		return
	}

	// 2. 检查环境变量
	if envLang := os.Getenv("MINIC_LANG"); envLang != "" {
		languageExplicit = true
		setLanguage(envLang)
		return
	}

	// 3. 检测操作系统语言
	if detectChineseOS() {
		setLanguage("zh")
		return
	}

	// 4. 默认英文
	setLanguage("en")
}

// ApplyConfigLanguage 应用项目配置里的语言设置
//
// 只在语言没有被命令行参数或环境变量显式指定时生效。
func ApplyConfigLanguage(lang string) {
	if languageExplicit || lang == "" {
		return
	}
	setLanguage(lang)
}

// setLanguage 设置语言，同步内部模块
func setLanguage(lang string) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	switch lang {
	case "zh", "zh-cn", "zh-tw", "zh-hk", "chinese":
		currentLang = LangChinese
		msg = messagesZH
		i18n.SetLanguage(i18n.LangChinese)
	default:
		currentLang = LangEnglish
		msg = messagesEN
		i18n.SetLanguage(i18n.LangEnglish)
	}
}

// detectChineseOS 检测操作系统是否为中文环境
func detectChineseOS() bool {
	// Windows 使用 API 检测
	if runtime.GOOS == "windows" {
		// 优先使用 Windows API
		if detectWindowsChinese() {
			return true
		}
		// 备用：检查 locale 名称
		locale := getWindowsLocale()
		if strings.HasPrefix(strings.ToLower(locale), "zh") {
			return true
		}
	}

	// Unix/Linux/Mac: 检查环境变量
	langVars := []string{"LANG", "LANGUAGE", "LC_ALL", "LC_MESSAGES"}
	for _, v := range langVars {
		if val := os.Getenv(v); val != "" {
			lower := strings.ToLower(val)
			if strings.Contains(lower, "zh") ||
				strings.Contains(lower, "chinese") {
				return true
			}
		}
	}

	return false
}

// GetLanguage 获取当前语言
func GetLanguage() Language {
	return currentLang
}

// Msg 获取当前消息对象
func Msg() *Messages {
	return &msg
}
