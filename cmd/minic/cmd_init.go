package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/minic-lang/minic/internal/pkg"
)

// cmdInit 初始化新项目
func cmdInit(args []string) {
	m := Msg()
	fs := flag.NewFlagSet("init", flag.ExitOnError)

	// 可选参数
	name := fs.String("name", "", m.InitOptName)

	fs.Usage = func() {
		fmt.Println(m.HelpUsage + " minic init [options]")
		fmt.Println()
		fmt.Println(m.InitDesc)
		fmt.Println()
		fmt.Println(m.HelpOptions)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	// 获取当前目录
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, m.ErrGetWorkDir+"\n", err)
		os.Exit(1)
	}

	// 检查是否已存在配置文件
	configPath := filepath.Join(dir, pkg.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		fmt.Fprintf(os.Stderr, m.ErrConfigExists+"\n", pkg.ConfigFileName)
		os.Exit(1)
	}

	// 生成默认配置
	config := pkg.GenerateDefault(dir)

	// 应用命令行参数
	if *name != "" {
		config.Project.Name = *name
	}

	// 保存配置文件
	fmt.Printf(m.InitCreating+"\n", pkg.ConfigFileName)
	if err := config.Save(configPath); err != nil {
		fmt.Fprintf(os.Stderr, m.ErrCreateConfig+"\n", err)
		os.Exit(1)
	}

	// 创建入口文件模板
	mainPath := filepath.Join(dir, config.Project.Entry)
	if _, err := os.Stat(mainPath); os.IsNotExist(err) {
		fmt.Printf(m.InitCreating+"\n", config.Project.Entry)
		if err := os.WriteFile(mainPath, []byte(generateMainTemplate()), 0644); err != nil {
			fmt.Fprintf(os.Stderr, m.ErrCreateFile+"\n", err)
			os.Exit(1)
		}
	}

	// 打印成功信息
	fmt.Println()
	fmt.Printf(m.InitSuccess+"\n", config.Project.Name)
	fmt.Println()
	fmt.Println(m.InitNextSteps)
	fmt.Printf("  minic check %s\n", config.Project.Entry)
}

// generateMainTemplate 生成入口文件模板
func generateMainTemplate() string {
	return `/* 计算并输出 5 的阶乘 */
int n;
int result;

n = 5;
result = factorial(n);
print result;
`
}
