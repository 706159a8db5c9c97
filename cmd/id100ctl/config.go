package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// runtimeConfig is the resolved tool configuration.
type runtimeConfig struct {
	Port         string
	Baud         int
	ReadTimeout  time.Duration
	CommandDelay time.Duration
	LogLevel     string
	LogFormat    string
	LogFile      string
}

// fileConfig is the id100ctl config.toml key mapping.
type fileConfig struct {
	Port           string `toml:"port"`
	Baud           int    `toml:"baud"`
	ReadTimeoutMs  int    `toml:"read_timeout_ms"`
	CommandDelayMs int    `toml:"command_delay_ms"`
	LogLevel       string `toml:"log_level"`
	LogFormat      string `toml:"log_format"`
	LogFile        string `toml:"log_file"`
}

func defaultRuntimeConfig() runtimeConfig {
	return runtimeConfig{
		Baud:        115200,
		ReadTimeout: 2 * time.Second,
		LogLevel:    "info",
		LogFormat:   "console",
	}
}

// loadConfig loads a TOML config file over the defaults. An empty path
// just returns the defaults.
func loadConfig(path string) (runtimeConfig, error) {
	cfg := defaultRuntimeConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return runtimeConfig{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("port") {
		cfg.Port = strings.TrimSpace(raw.Port)
	}
	if meta.IsDefined("baud") {
		if raw.Baud <= 0 {
			return runtimeConfig{}, fmt.Errorf("load config: baud must be positive, got %d", raw.Baud)
		}
		cfg.Baud = raw.Baud
	}
	if meta.IsDefined("read_timeout_ms") {
		if raw.ReadTimeoutMs <= 0 {
			return runtimeConfig{}, fmt.Errorf("load config: read_timeout_ms must be positive, got %d", raw.ReadTimeoutMs)
		}
		cfg.ReadTimeout = time.Duration(raw.ReadTimeoutMs) * time.Millisecond
	}
	if meta.IsDefined("command_delay_ms") {
		if raw.CommandDelayMs < 0 {
			return runtimeConfig{}, fmt.Errorf("load config: command_delay_ms cannot be negative, got %d", raw.CommandDelayMs)
		}
		cfg.CommandDelay = time.Duration(raw.CommandDelayMs) * time.Millisecond
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("log_format") {
		cfg.LogFormat = strings.TrimSpace(raw.LogFormat)
	}
	if meta.IsDefined("log_file") {
		cfg.LogFile = strings.TrimSpace(raw.LogFile)
	}

	return cfg, nil
}
