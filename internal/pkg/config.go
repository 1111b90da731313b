// Package pkg 实现 MiniC 项目配置相关功能
package pkg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// 常量定义
const (
	ConfigFileName = "minic.toml" // 配置文件名
)

// ProjectConfig 项目配置
type ProjectConfig struct {
	Project     ProjectInfo        `toml:"project"`
	Check       CheckOptions       `toml:"check"`
	Diagnostics DiagnosticsOptions `toml:"diagnostics"`
}

// ProjectInfo 项目信息
type ProjectInfo struct {
	// Name 项目名
	Name string `toml:"name"`

	// Version 版本号（遵循语义化版本，如 1.0.0）
	Version string `toml:"version"`

	// Entry 入口源文件，相对项目根目录
	Entry string `toml:"entry"`
}

// CheckOptions 检查命令选项
type CheckOptions struct {
	// DumpSymbols 分析结束后输出符号表
	DumpSymbols bool `toml:"dump-symbols"`

	// ShowAST 检查通过后输出语法树
	ShowAST bool `toml:"show-ast"`
}

// DiagnosticsOptions 诊断输出选项
type DiagnosticsOptions struct {
	// Language 诊断语言（en/zh），留空时自动检测
	Language string `toml:"language"`
}

// LoadConfig 从文件加载配置
func LoadConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config ProjectConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// Save 保存配置到文件
func (c *ProjectConfig) Save(path string) error {
	// 生成带注释的配置文件内容
	content := generateConfigWithComments(c)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// generateConfigWithComments 生成带注释的配置文件内容
func generateConfigWithComments(c *ProjectConfig) string {
	var sb strings.Builder

	sb.WriteString("[project]\n")
	sb.WriteString("# 项目名\n")
	sb.WriteString(fmt.Sprintf("name = %q\n\n", c.Project.Name))
	sb.WriteString("# 版本号（遵循语义化版本）\n")
	sb.WriteString(fmt.Sprintf("version = %q\n\n", c.Project.Version))
	sb.WriteString("# 入口源文件\n")
	sb.WriteString(fmt.Sprintf("entry = %q\n\n", c.Project.Entry))

	sb.WriteString("[check]\n")
	sb.WriteString("# 分析结束后输出符号表\n")
	sb.WriteString(fmt.Sprintf("dump-symbols = %t\n\n", c.Check.DumpSymbols))
	sb.WriteString("# 检查通过后输出语法树\n")
	sb.WriteString(fmt.Sprintf("show-ast = %t\n\n", c.Check.ShowAST))

	sb.WriteString("[diagnostics]\n")
	sb.WriteString("# 诊断语言（en/zh）\n")
	sb.WriteString(fmt.Sprintf("language = %q\n", c.Diagnostics.Language))

	return sb.String()
}

// GenerateDefault 生成默认配置
// dir 是项目目录路径，用于生成默认的项目名
func GenerateDefault(dir string) *ProjectConfig {
	// 从目录名生成默认名称
	baseName := filepath.Base(dir)
	if baseName == "" || baseName == "." || baseName == "/" {
		baseName = "my-app"
	}

	// 清理名称（移除特殊字符）
	name := sanitizeName(baseName)

	return &ProjectConfig{
		Project: ProjectInfo{
			Name:    name,
			Version: "0.1.0",
			Entry:   "main.mc",
		},
		Check: CheckOptions{
			DumpSymbols: false,
			ShowAST:     false,
		},
		Diagnostics: DiagnosticsOptions{
			Language: "en",
		},
	}
}

// sanitizeName 清理项目名
func sanitizeName(name string) string {
	// 转换为小写，替换空格和下划线为连字符
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "-")
	name = strings.ReplaceAll(name, "_", "-")

	// 移除非法字符
	var result strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '.' {
			result.WriteRune(r)
		}
	}

	s := result.String()
	if s == "" {
		return "my-app"
	}
	return s
}

// FindConfigFile 从指定路径向上查找配置文件
// 返回配置文件的完整路径，如果找不到则返回空字符串
func FindConfigFile(startPath string) string {
	// 如果是文件，从其所在目录开始
	info, err := os.Stat(startPath)
	if err != nil {
		return ""
	}

	var dir string
	if info.IsDir() {
		dir = startPath
	} else {
		dir = filepath.Dir(startPath)
	}

	// 转换为绝对路径
	dir, err = filepath.Abs(dir)
	if err != nil {
		return ""
	}

	// 向上查找
	for {
		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		// 获取父目录
		parent := filepath.Dir(dir)
		if parent == dir {
			// 已到达根目录
			return ""
		}
		dir = parent
	}
}

// GetProjectRoot 获取项目根目录（配置文件所在目录）
func GetProjectRoot(startPath string) string {
	configPath := FindConfigFile(startPath)
	if configPath == "" {
		return ""
	}
	return filepath.Dir(configPath)
}
