package errors

import (
	"os"
	"runtime"
)

// ============================================================================
// ANSI 颜色支持
// ============================================================================

// Color 终端颜色
type Color int

const (
	ColorReset Color = iota
	ColorBold
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// ansiCodes ANSI 转义码表
var ansiCodes = map[Color]string{
	ColorReset:   "\033[0m",
	ColorBold:    "\033[1m",
	ColorRed:     "\033[1;31m",
	ColorGreen:   "\033[1;32m",
	ColorYellow:  "\033[1;33m",
	ColorBlue:    "\033[1;34m",
	ColorMagenta: "\033[1;35m",
	ColorCyan:    "\033[1;36m",
	ColorWhite:   "\033[1;37m",
}

// Colorize 给文本添加 ANSI 颜色
func Colorize(text string, color Color) string {
	code, ok := ansiCodes[color]
	if !ok {
		return text
	}
	return code + text + ansiCodes[ColorReset]
}

// detectColorSupport 检测终端是否支持颜色
func detectColorSupport() bool {
	// NO_COLOR 约定优先
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	term := os.Getenv("TERM")
	if term == "dumb" || term == "" {
		// Windows 终端通常不设置 TERM
		if runtime.GOOS == "windows" {
			return os.Getenv("WT_SESSION") != "" || os.Getenv("ANSICON") != ""
		}
		return false
	}

	// 输出重定向到文件时不着色
	if fi, err := os.Stdout.Stat(); err == nil {
		if fi.Mode()&os.ModeCharDevice == 0 {
			return false
		}
	}

	return true
}
