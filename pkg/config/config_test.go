package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calc.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	t.Setenv("CALC_DEBUG", "")
	t.Setenv("CALC_ADDR", "")

	path := writeConfig(t, `
[log]
level = "warn"

[demo]
addr = "127.0.0.1:9090"
title = "Calculator Demo"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q; want warn", cfg.Log.Level)
	}
	if cfg.Demo.Addr != "127.0.0.1:9090" {
		t.Errorf("Demo.Addr = %q", cfg.Demo.Addr)
	}
	if cfg.Demo.Title != "Calculator Demo" {
		t.Errorf("Demo.Title = %q", cfg.Demo.Title)
	}
	if cfg.MCP.Name != "Calculator MCP" {
		t.Errorf("MCP.Name = %q; want the default", cfg.MCP.Name)
	}
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	t.Setenv("CALC_CONFIG", "")
	t.Setenv("CALC_DEBUG", "")
	t.Setenv("CALC_ADDR", "")

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load() = %+v; want defaults %+v", *cfg, *Default())
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected an error for a missing explicit config file")
	}
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("CALC_DEBUG", "")
	t.Setenv("CALC_ADDR", "")

	cases := map[string]string{
		"syntax":     "[log\nlevel = ",
		"bad level":  "[log]\nlevel = \"loud\"\n",
		"empty addr": "[demo]\naddr = \"\"\n",
	}

	for name, content := range cases {
		if _, err := Load(writeConfig(t, content)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CALC_DEBUG", "1")
	t.Setenv("CALC_ADDR", ":7070")

	cfg, err := Load(writeConfig(t, "[log]\nlevel = \"error\"\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q; want debug from CALC_DEBUG", cfg.Log.Level)
	}
	if cfg.Demo.Addr != ":7070" {
		t.Errorf("Demo.Addr = %q; want :7070 from CALC_ADDR", cfg.Demo.Addr)
	}
}

func TestLoadFromEnvPath(t *testing.T) {
	t.Setenv("CALC_DEBUG", "")
	t.Setenv("CALC_ADDR", "")
	t.Setenv("CALC_CONFIG", writeConfig(t, "[mcp]\nname = \"Test MCP\"\n"))

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MCP.Name != "Test MCP" {
		t.Errorf("MCP.Name = %q; want Test MCP", cfg.MCP.Name)
	}
}
