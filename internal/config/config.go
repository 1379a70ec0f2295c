// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/horario/internal/timetable"
)

// Config holds the application configuration.
type Config struct {
	Catalog CatalogConfig `toml:"catalog"`
	Lookup  LookupConfig  `toml:"lookup"`
	Server  ServerConfig  `toml:"server"`
	Grid    GridConfig    `toml:"grid"`
	LLM     LLMConfig     `toml:"llm"`
	UI      UIConfig      `toml:"ui"`
}

// CatalogConfig holds the offerings source and the catalog database.
type CatalogConfig struct {
	Source string `toml:"source"`  // Offerings file, .json or .csv
	DBPath string `toml:"db_path"` // SQLite catalog
}

// LookupConfig selects where candidates come from.
type LookupConfig struct {
	Mode           string `toml:"mode"`     // "local" or "http"
	BaseURL        string `toml:"base_url"` // e.g., "http://localhost:8080"
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// ServerConfig holds the query endpoint settings.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// GridConfig holds timetable display settings.
type GridConfig struct {
	Palette []string `toml:"palette"`
}

// LLMConfig holds LLM provider settings.
type LLMConfig struct {
	Provider string `toml:"provider"` // "copilot", "ollama", "lmstudio"
	Model    string `toml:"model"`    // e.g., "gpt-4o"
	BaseURL  string `toml:"base_url"` // empty uses the provider default
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Source: "",
			DBPath: defaultDBPath(),
		},
		Lookup: LookupConfig{
			Mode:           "local",
			BaseURL:        "http://localhost:8080",
			TimeoutSeconds: 10,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Grid: GridConfig{
			Palette: append([]string(nil), timetable.DefaultPalette...),
		},
		LLM: LLMConfig{
			Provider: "copilot",
			Model:    "gpt-4o",
		},
		UI: UIConfig{
			Theme: "frappe",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "horario.db"
	}
	return filepath.Join(home, ".local", "share", "horario", "horario.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "horario", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Catalog.DBPath = expandPath(cfg.Catalog.DBPath)
	cfg.Catalog.Source = expandPath(cfg.Catalog.Source)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HORARIO_CATALOG_SOURCE"); v != "" {
		cfg.Catalog.Source = v
	}
	if v := os.Getenv("HORARIO_DB_PATH"); v != "" {
		cfg.Catalog.DBPath = v
	}

	if v := os.Getenv("HORARIO_LOOKUP_MODE"); v != "" {
		cfg.Lookup.Mode = v
	}
	if v := os.Getenv("HORARIO_LOOKUP_URL"); v != "" {
		cfg.Lookup.BaseURL = v
	}

	if v := os.Getenv("HORARIO_SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}

	if v := os.Getenv("HORARIO_PALETTE"); v != "" {
		var palette []string
		for _, c := range strings.Split(v, ",") {
			if c = strings.TrimSpace(c); c != "" {
				palette = append(palette, c)
			}
		}
		cfg.Grid.Palette = palette
	}

	if v := os.Getenv("HORARIO_LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("HORARIO_LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("HORARIO_LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}

	if v := os.Getenv("HORARIO_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Catalog.DBPath == "" {
		return errors.New("db_path must be set")
	}
	if ext := strings.ToLower(filepath.Ext(c.Catalog.Source)); c.Catalog.Source != "" && ext != ".json" && ext != ".csv" && ext != ".txt" {
		return fmt.Errorf("catalog source must be a .json, .txt or .csv file, got %q", c.Catalog.Source)
	}

	switch strings.ToLower(c.Lookup.Mode) {
	case "local":
	case "http":
		if c.Lookup.BaseURL == "" {
			return errors.New("lookup base_url must be set for http mode")
		}
	default:
		return fmt.Errorf("invalid lookup mode: %s", c.Lookup.Mode)
	}
	if c.Lookup.TimeoutSeconds <= 0 {
		return errors.New("lookup timeout_seconds must be positive")
	}

	if len(c.Grid.Palette) == 0 {
		return errors.New("palette must have at least one color")
	}
	for _, color := range c.Grid.Palette {
		if !isHexColor(color) {
			return fmt.Errorf("palette color must be in #rrggbb format, got %q", color)
		}
	}
	return nil
}

// isHexColor checks for a #rrggbb string.
func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		isDigit := c >= '0' && c <= '9'
		isHex := (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
		if !isDigit && !isHex {
			return false
		}
	}
	return true
}

// LookupTimeout returns the lookup timeout as a duration.
func (c *Config) LookupTimeout() time.Duration {
	return time.Duration(c.Lookup.TimeoutSeconds) * time.Second
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
