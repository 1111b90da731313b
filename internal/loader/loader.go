package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/minic-lang/minic/internal/pkg"
)

// 常量定义
const (
	SourceFileExtension = ".mc"        // 源码文件后缀
	ProjectConfigFile   = "minic.toml" // 项目配置文件名
)

// Loader 源文件加载器
//
// 负责定位项目根目录、读取项目配置、加载并规范化源码。
type Loader struct {
	rootDir string // 项目根目录
	config  *pkg.ProjectConfig
}

// New 创建加载器
func New(entryFile string) (*Loader, error) {
	// 查找项目根目录（包含 minic.toml 的目录）
	rootDir, err := findProjectRoot(entryFile)
	if err != nil {
		// 没有 minic.toml，使用入口文件所在目录
		rootDir = filepath.Dir(entryFile)
	}

	loader := &Loader{
		rootDir: rootDir,
	}

	// 尝试加载项目配置
	configFile := filepath.Join(rootDir, ProjectConfigFile)
	if _, err := os.Stat(configFile); err == nil {
		config, err := pkg.LoadConfig(configFile)
		if err != nil {
			return nil, err
		}
		loader.config = config
	}

	return loader, nil
}

// findProjectRoot 向上查找项目根目录
func findProjectRoot(startPath string) (string, error) {
	dir := filepath.Dir(startPath)
	for {
		configFile := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(configFile); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s not found", ProjectConfigFile)
		}
		dir = parent
	}
}

// ReadSource 读取源文件并规范化行尾
func (l *Loader) ReadSource(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return NormalizeSource(string(content)), nil
}

// NormalizeSource 规范化源码行尾
//
// 回车符替换为空格：换行计数只认 \n，\r\n 与 \n 等价，
// 孤立的 \r 不产生新行。
func NormalizeSource(src string) string {
	return strings.ReplaceAll(src, "\r", " ")
}

// IsSourceFile 判断路径是否为 MiniC 源文件
func IsSourceFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), SourceFileExtension)
}

// EntryFile 返回入口源文件的完整路径
//
// 配置中指定了 entry 时用配置值，否则用默认的 main.mc。
func (l *Loader) EntryFile() string {
	entry := "main" + SourceFileExtension
	if l.config != nil && l.config.Project.Entry != "" {
		entry = l.config.Project.Entry
	}
	if filepath.IsAbs(entry) {
		return entry
	}
	return filepath.Join(l.rootDir, entry)
}

// Config 返回项目配置，项目没有配置文件时为 nil
func (l *Loader) Config() *pkg.ProjectConfig {
	return l.config
}

// RootDir 获取项目根目录
func (l *Loader) RootDir() string {
	return l.rootDir
}
