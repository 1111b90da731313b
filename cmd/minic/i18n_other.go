//go:build !windows

package main

// detectWindowsChinese 非 Windows 平台恒为 false，语言检测走环境变量
func detectWindowsChinese() bool {
	return false
}

// getWindowsLocale 非 Windows 平台没有区域设置 API
func getWindowsLocale() string {
	return ""
}
