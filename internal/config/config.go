// Package config loads user settings for the vigenere command from a TOML
// file and VIGENERE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/iw2rmb/vigenere/cipher"
	"github.com/iw2rmb/vigenere/internal/textclass"
)

const (
	defaultAnalysisTop  = 10
	defaultHistoryLimit = 1000
	defaultPlaceholder  = "A"
	defaultLogLevel     = "info"
	maximumAnalysisTop  = 100
	maximumHistoryLimit = 100000
)

// Theme holds lipgloss color strings. Empty entries keep the built-in style.
type Theme struct {
	Message string `toml:"message"`
	Key     string `toml:"key"`
	Cursor  string `toml:"cursor"`
	Border  string `toml:"border"`
	Muted   string `toml:"muted"`
}

// Config captures user settings.
type Config struct {
	ShowAnalysis bool   `toml:"show_analysis"`
	AnalysisTop  int    `toml:"analysis_top"`
	MessageEdit  bool   `toml:"message_edit"`
	HistoryLimit int    `toml:"history_limit"`
	Placeholder  string `toml:"placeholder"`
	Theme        Theme  `toml:"theme"`
	LogFile      string `toml:"log_file"`
	LogLevel     string `toml:"log_level"`
}

func Default() Config {
	return Config{
		ShowAnalysis: true,
		AnalysisTop:  defaultAnalysisTop,
		MessageEdit:  true,
		HistoryLimit: defaultHistoryLimit,
		Placeholder:  defaultPlaceholder,
		LogLevel:     defaultLogLevel,
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "vigenere", "config.toml"), nil
}

// Load decodes the TOML file at path over Default(). An empty path selects
// DefaultPath, which may be absent; an explicitly named file must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// ApplyEnv overrides c from VIGENERE_* variables.
func (c Config) ApplyEnv() (Config, error) {
	var err error
	if c.ShowAnalysis, err = readBool("VIGENERE_SHOW_ANALYSIS", c.ShowAnalysis); err != nil {
		return Config{}, err
	}
	if c.AnalysisTop, err = readInt("VIGENERE_ANALYSIS_TOP", c.AnalysisTop, 1, maximumAnalysisTop); err != nil {
		return Config{}, err
	}
	if c.MessageEdit, err = readBool("VIGENERE_MESSAGE_EDIT", c.MessageEdit); err != nil {
		return Config{}, err
	}
	if c.HistoryLimit, err = readInt("VIGENERE_HISTORY_LIMIT", c.HistoryLimit, -1, maximumHistoryLimit); err != nil {
		return Config{}, err
	}
	if c.Placeholder, err = readRequiredOrDefault("VIGENERE_PLACEHOLDER", c.Placeholder); err != nil {
		return Config{}, err
	}
	if c.LogLevel, err = readRequiredOrDefault("VIGENERE_LOG_LEVEL", c.LogLevel); err != nil {
		return Config{}, err
	}
	if raw, ok := os.LookupEnv("VIGENERE_LOG_FILE"); ok {
		c.LogFile = raw
	}
	return c, nil
}

// Validate checks ranges and formats.
func (c Config) Validate() error {
	if c.AnalysisTop < 1 || c.AnalysisTop > maximumAnalysisTop {
		return fmt.Errorf("analysis_top must be between 1 and %d", maximumAnalysisTop)
	}
	if c.HistoryLimit < -1 || c.HistoryLimit > maximumHistoryLimit {
		return fmt.Errorf("history_limit must be between -1 and %d", maximumHistoryLimit)
	}
	if _, err := c.PlaceholderRune(); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// PlaceholderRune returns the placeholder as an upper-case letter.
func (c Config) PlaceholderRune() (rune, error) {
	rs := []rune(c.Placeholder)
	if len(rs) != 1 || !textclass.IsLetter(rs[0]) {
		return 0, fmt.Errorf("placeholder must be a single letter A-Z, got %q", c.Placeholder)
	}
	return cipher.Upper(rs[0]), nil
}

func readRequiredOrDefault(key, fallback string) (string, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	if raw == "" {
		return "", fmt.Errorf("%s must not be empty", key)
	}

	return raw, nil
}

func readInt(key string, fallback, min, max int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	if parsed < min || parsed > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}

	return parsed, nil
}

func readBool(key string, fallback bool) (bool, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}

	return parsed, nil
}
