package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration defaults
const (
	DefaultPollInterval     = 15
	DefaultWarningThreshold = 60
	DefaultDangerThreshold  = 80
)

// Config holds the settings read by the poller and classifier
type Config struct {
	PollInterval     int     `yaml:"poll_interval"` // seconds
	WarningThreshold float64 `yaml:"warning_threshold"`
	DangerThreshold  float64 `yaml:"danger_threshold"`
	StoreDir         string  `yaml:"store_dir"`
	LogLevel         string  `yaml:"log_level,omitempty"`
}

// Number accepts YAML numbers as well as numeric strings such as "70"
type Number float64

// UnmarshalYAML coerces scalars to a number
func (n *Number) UnmarshalYAML(value *yaml.Node) error {
	var f float64
	if err := value.Decode(&f); err == nil {
		*n = Number(f)
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("line %d: not a number: %q", value.Line, s)
	}
	*n = Number(f)
	return nil
}

// fileConfig is the on-disk shape; nil fields keep their defaults
type fileConfig struct {
	PollInterval     *Number `yaml:"poll_interval"`
	WarningThreshold *Number `yaml:"warning_threshold"`
	DangerThreshold  *Number `yaml:"danger_threshold"`
	StoreDir         *string `yaml:"store_dir"`
	LogLevel         *string `yaml:"log_level"`
}

// DefaultConfig returns the built-in configuration for the given paths
func DefaultConfig(paths Paths) Config {
	return Config{
		PollInterval:     DefaultPollInterval,
		WarningThreshold: DefaultWarningThreshold,
		DangerThreshold:  DefaultDangerThreshold,
		StoreDir:         paths.StoreDir,
	}
}

// Interval returns the poll interval. A ticker cannot run at zero, so
// non-positive values fall back to the default.
func (c Config) Interval() time.Duration {
	if c.PollInterval <= 0 {
		return DefaultPollInterval * time.Second
	}
	return time.Duration(c.PollInterval) * time.Second
}

// LoadConfig reads the YAML config at path over the defaults. A missing file is not an error.
func LoadConfig(path string, paths Paths) (Config, error) {
	cfg := DefaultConfig(paths)
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, &ConfigError{Path: path, Err: err}
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, &ConfigError{Path: path, Err: err}
	}

	if fc.PollInterval != nil {
		cfg.PollInterval = int(math.Round(float64(*fc.PollInterval)))
	}
	if fc.WarningThreshold != nil {
		cfg.WarningThreshold = float64(*fc.WarningThreshold)
	}
	if fc.DangerThreshold != nil {
		cfg.DangerThreshold = float64(*fc.DangerThreshold)
	}
	if fc.StoreDir != nil && *fc.StoreDir != "" {
		cfg.StoreDir = ExpandHome(*fc.StoreDir)
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}

	return cfg, nil
}

// SaveConfig writes cfg as YAML, creating the parent directory
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &ConfigError{Path: path, Err: err}
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return &ConfigError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &ConfigError{Path: path, Err: err}
	}
	return nil
}

// Overrides are command-line values that win over the config file
type Overrides struct {
	PollInterval     *int
	WarningThreshold *float64
	DangerThreshold  *float64
	StoreDir         *string
}

// Apply returns cfg with the set overrides applied
func (o Overrides) Apply(cfg Config) Config {
	if o.PollInterval != nil {
		cfg.PollInterval = *o.PollInterval
	}
	if o.WarningThreshold != nil {
		cfg.WarningThreshold = *o.WarningThreshold
	}
	if o.DangerThreshold != nil {
		cfg.DangerThreshold = *o.DangerThreshold
	}
	if o.StoreDir != nil && *o.StoreDir != "" {
		cfg.StoreDir = ExpandHome(*o.StoreDir)
	}
	return cfg
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
