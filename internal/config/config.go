package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the scan and display settings.
type Config struct {
	MaxBytes        int
	BinaryThreshold float64
	TailLines       int
	Width           int
	HexRowBytes     int
	LogLevel        string
	LogFormat       string
}

const (
	defaultConfigPath      = "~/.config/bytescan/config.toml"
	defaultMaxBytes        = 4096
	defaultBinaryThreshold = 33
	defaultTailLines       = 400
	defaultHexRowBytes     = 16
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MaxBytes:        defaultMaxBytes,
		BinaryThreshold: defaultBinaryThreshold,
		TailLines:       defaultTailLines,
		HexRowBytes:     defaultHexRowBytes,
		LogLevel:        defaultLogLevel,
		LogFormat:       defaultLogFormat,
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		MaxBytes        *int     `toml:"max_bytes"`
		BinaryThreshold *float64 `toml:"binary_threshold"`
		TailLines       *int     `toml:"tail_lines"`
		Width           int      `toml:"width"`
		HexRowBytes     int      `toml:"hex_row_bytes"`
		LogLevel        string   `toml:"log_level"`
		LogFormat       string   `toml:"log_format"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.MaxBytes != nil && *raw.MaxBytes >= 0 {
		cfg.MaxBytes = *raw.MaxBytes
	}
	if raw.BinaryThreshold != nil {
		cfg.BinaryThreshold = *raw.BinaryThreshold
	}
	if cfg.BinaryThreshold < 0 || cfg.BinaryThreshold > 100 {
		return Config{}, fmt.Errorf("parse config: binary_threshold %v outside 0-100", cfg.BinaryThreshold)
	}
	if raw.TailLines != nil {
		cfg.TailLines = *raw.TailLines
	}
	if raw.Width > 0 {
		cfg.Width = raw.Width
	}
	if raw.HexRowBytes > 0 {
		cfg.HexRowBytes = raw.HexRowBytes
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(raw.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(raw.LogFormat))
	if cfg.LogFormat == "" {
		cfg.LogFormat = defaultLogFormat
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
