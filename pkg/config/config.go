// Package config loads calculator settings from a TOML file with
// environment overrides.
//
// Example calc.toml:
//
//	[log]
//	level = "debug"
//
//	[demo]
//	addr  = ":8080"
//	title = "Demo App"
//
//	[mcp]
//	name = "Calculator MCP"
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/sunfmin/mcp-go-calculator/pkg/logger"
)

// DefaultPath is read when no path is given; it may be absent
const DefaultPath = "calc.toml"

// Config is the full set of settings
type Config struct {
	Log  LogConfig  `toml:"log"`
	Demo DemoConfig `toml:"demo"`
	MCP  MCPConfig  `toml:"mcp"`
}

// LogConfig controls pkg/logger
type LogConfig struct {
	Level string `toml:"level"`
}

// DemoConfig controls the demo page server
type DemoConfig struct {
	Addr  string `toml:"addr"`
	Title string `toml:"title"`
}

// MCPConfig controls the MCP tool server
type MCPConfig struct {
	Name string `toml:"name"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Log:  LogConfig{Level: "info"},
		Demo: DemoConfig{Addr: ":8080", Title: "Demo App"},
		MCP:  MCPConfig{Name: "Calculator MCP"},
	}
}

// Load reads path over the defaults and applies environment overrides.
// An empty path means CALC_CONFIG, then DefaultPath; a missing file is only
// an error when the path was given explicitly.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv("CALC_CONFIG")
		explicit = path != ""
	}
	if path == "" {
		path = DefaultPath
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			logger.Debug("No config file, using defaults", "path", path)
		} else {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	} else {
		logger.Debug("Loaded config", "path", path)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if logger.DebugFromEnv() {
		c.Log.Level = "debug"
	}
	if addr := os.Getenv("CALC_ADDR"); addr != "" {
		c.Demo.Addr = addr
	}
}

// Validate checks the settings that have a fixed set of values
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	if c.Demo.Addr == "" {
		return fmt.Errorf("demo.addr must not be empty")
	}
	return nil
}
