package pkg

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()

	config := GenerateDefault(dir)
	config.Project.Name = "demo"
	config.Project.Version = "1.2.3"
	config.Project.Entry = "app.mc"
	config.Check.DumpSymbols = true
	config.Check.ShowAST = true
	config.Diagnostics.Language = "zh"

	path := filepath.Join(dir, ConfigFileName)
	if err := config.Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Project.Name != "demo" {
		t.Errorf("name: got %q, want %q", loaded.Project.Name, "demo")
	}
	if loaded.Project.Version != "1.2.3" {
		t.Errorf("version: got %q, want %q", loaded.Project.Version, "1.2.3")
	}
	if loaded.Project.Entry != "app.mc" {
		t.Errorf("entry: got %q, want %q", loaded.Project.Entry, "app.mc")
	}
	if !loaded.Check.DumpSymbols {
		t.Error("dump-symbols: got false, want true")
	}
	if !loaded.Check.ShowAST {
		t.Error("show-ast: got false, want true")
	}
	if loaded.Diagnostics.Language != "zh" {
		t.Errorf("language: got %q, want %q", loaded.Diagnostics.Language, "zh")
	}
}

func TestGenerateDefault(t *testing.T) {
	config := GenerateDefault("/tmp/My Project!")

	// 目录名净化为合法的项目名
	if config.Project.Name != "my-project" {
		t.Errorf("name: got %q, want %q", config.Project.Name, "my-project")
	}
	if config.Project.Version != "0.1.0" {
		t.Errorf("version: got %q, want %q", config.Project.Version, "0.1.0")
	}
	if config.Project.Entry != "main.mc" {
		t.Errorf("entry: got %q, want %q", config.Project.Entry, "main.mc")
	}
}

func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	configPath := filepath.Join(root, ConfigFileName)
	if err := os.WriteFile(configPath, []byte("[project]\nname = \"x\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// 从嵌套目录向上查找
	found := FindConfigFile(nested)
	if found != configPath {
		t.Errorf("found: got %q, want %q", found, configPath)
	}

	if got := GetProjectRoot(nested); got != root {
		t.Errorf("project root: got %q, want %q", got, root)
	}
}

func TestFindConfigFileMissing(t *testing.T) {
	dir := t.TempDir()
	if found := FindConfigFile(dir); found != "" {
		t.Errorf("expected empty path, got %q", found)
	}
	if got := GetProjectRoot(dir); got != "" {
		t.Errorf("project root: got %q, want empty", got)
	}
}
