// Package config loads and validates application configuration from
// environment variables and an optional TOML file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/chtl/nametags/layout"
)

// Config holds all configuration values for the CLI and server.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string `toml:"port"`

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// MaxBodyBytes limits request bodies accepted by the server.
	// Defaults to 64 KiB.
	MaxBodyBytes int64 `toml:"max_body_bytes"`

	// Assets optionally replace the embedded logo and fonts.
	Assets Assets `toml:"assets"`

	// Geometry describes the label sheet. Defaults to the US Letter
	// badge sheet; a file may override any subset of fields.
	Geometry layout.Geometry `toml:"geometry"`
}

// Assets names files on disk. Empty values keep the embedded defaults.
type Assets struct {
	Template string `toml:"template"`
	Logo     string `toml:"logo"`
	Regular  string `toml:"font_regular"`
	Semibold string `toml:"font_semibold"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Port:         "8080",
		LogLevel:     "info",
		MaxBodyBytes: 64 << 10,
		Geometry:     layout.DefaultGeometry(),
	}
}

// Load builds a Config from defaults, then the TOML file at path (if path is
// not empty), then environment variables. Later sources win.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.Assets.Template = getEnv("NAMETAGS_TEMPLATE", cfg.Assets.Template)
	cfg.Assets.Logo = getEnv("NAMETAGS_LOGO", cfg.Assets.Logo)
	cfg.Assets.Regular = getEnv("NAMETAGS_FONT_REGULAR", cfg.Assets.Regular)
	cfg.Assets.Semibold = getEnv("NAMETAGS_FONT_SEMIBOLD", cfg.Assets.Semibold)

	if v := os.Getenv("NAMETAGS_MAX_BODY"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("config: NAMETAGS_MAX_BODY must be a positive integer, got %q", v)
		}
		cfg.MaxBodyBytes = n
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that cannot be repaired with a default.
func (c Config) Validate() error {
	var problems []string
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("unknown log level %q", c.LogLevel))
	}
	if c.MaxBodyBytes <= 0 {
		problems = append(problems, "max body size must be positive")
	}
	if err := c.Geometry.Validate(); err != nil {
		problems = append(problems, err.Error())
	}
	if len(problems) > 0 {
		return fmt.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
