package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	// EnvPath overrides the config file location.
	EnvPath = "CRONCLEARER_CONFIG"

	// DefaultMaxCapture matches the per-stream read cap cron mail can
	// reasonably carry.
	DefaultMaxCapture = 128 * 1024
)

// Config captures the optional settings stored in config.toml (or a YAML
// equivalent). Flags can only tighten or loosen on top of these.
type Config struct {
	IgnoreText      bool   `toml:"ignore_text" yaml:"ignore_text"`
	CheckStdout     bool   `toml:"check_stdout" yaml:"check_stdout"`
	TracePrefix     string `toml:"trace_prefix" yaml:"trace_prefix"`
	MaxCaptureBytes int    `toml:"max_capture_bytes" yaml:"max_capture_bytes"`
	TempDir         string `toml:"temp_dir" yaml:"temp_dir"`
}

var (
	// ErrInvalidMaxCapture indicates a negative read cap.
	ErrInvalidMaxCapture = errors.New("config.max_capture_bytes must not be negative")
	// ErrRelativeTempDir indicates temp_dir is not an absolute path.
	ErrRelativeTempDir = errors.New("config.temp_dir must be an absolute path")
)

// Default returns the configuration used when no file exists.
func Default() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.MaxCaptureBytes == 0 {
		c.MaxCaptureBytes = DefaultMaxCapture
	}
}

// Validate ensures the configuration is usable.
func (c Config) Validate() error {
	if c.MaxCaptureBytes < 0 {
		return ErrInvalidMaxCapture
	}
	if c.TempDir != "" && !filepath.IsAbs(c.TempDir) {
		return ErrRelativeTempDir
	}
	return nil
}

// Load reads configuration from path. A missing file returns Default.
// Files ending in .yaml or .yml are YAML; anything else is TOML.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = toml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Path picks the config file: an explicit path, then $CRONCLEARER_CONFIG,
// then the XDG location. It returns "" when nothing can be derived.
func Path(explicit string, lookup func(string) (string, bool)) string {
	if explicit != "" {
		return explicit
	}
	get := func(key string) string {
		if lookup == nil {
			return ""
		}
		v, _ := lookup(key)
		return v
	}
	if p := get(EnvPath); p != "" {
		return p
	}
	if dir := get("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "cronclearer", "config.toml")
	}
	if home := get("HOME"); home != "" {
		return filepath.Join(home, ".config", "cronclearer", "config.toml")
	}
	return ""
}
