package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Lookup.Mode != "local" {
		t.Errorf("expected lookup mode local, got %s", cfg.Lookup.Mode)
	}
	if cfg.Lookup.TimeoutSeconds != 10 {
		t.Errorf("expected timeout 10, got %d", cfg.Lookup.TimeoutSeconds)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected addr :8080, got %s", cfg.Server.Addr)
	}
	if len(cfg.Grid.Palette) != 10 {
		t.Errorf("expected 10 palette colors, got %d", len(cfg.Grid.Palette))
	}
	if cfg.Grid.Palette[0] != "#f8b195" {
		t.Errorf("expected first color #f8b195, got %s", cfg.Grid.Palette[0])
	}
	if cfg.LLM.Provider != "copilot" {
		t.Errorf("expected provider copilot, got %s", cfg.LLM.Provider)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Lookup.Mode != "local" {
		t.Errorf("expected default lookup mode, got %s", cfg.Lookup.Mode)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[catalog]
source = "/tmp/turmas.txt"
db_path = "/tmp/test.db"

[lookup]
mode = "http"
base_url = "http://localhost:9090"
timeout_seconds = 3

[server]
addr = "127.0.0.1:9090"

[grid]
palette = ["#112233", "#AABBCC"]

[llm]
provider = "ollama"
model = "llama3"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Catalog.Source != "/tmp/turmas.txt" {
		t.Errorf("expected source /tmp/turmas.txt, got %s", cfg.Catalog.Source)
	}
	if cfg.Catalog.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path /tmp/test.db, got %s", cfg.Catalog.DBPath)
	}
	if cfg.Lookup.Mode != "http" || cfg.Lookup.BaseURL != "http://localhost:9090" {
		t.Errorf("unexpected lookup config %+v", cfg.Lookup)
	}
	if cfg.LookupTimeout() != 3*time.Second {
		t.Errorf("expected timeout 3s, got %s", cfg.LookupTimeout())
	}
	if cfg.Server.Addr != "127.0.0.1:9090" {
		t.Errorf("expected addr 127.0.0.1:9090, got %s", cfg.Server.Addr)
	}
	if len(cfg.Grid.Palette) != 2 || cfg.Grid.Palette[1] != "#AABBCC" {
		t.Errorf("unexpected palette %v", cfg.Grid.Palette)
	}
	if cfg.LLM.Provider != "ollama" || cfg.LLM.Model != "llama3" {
		t.Errorf("unexpected llm config %+v", cfg.LLM)
	}
	// Unset file keys keep their defaults
	if cfg.UI.Theme != "frappe" {
		t.Errorf("expected default theme, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[catalog]
db_path = "/tmp/test.db"

[server]
addr = ":7000"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("HORARIO_DB_PATH", "/tmp/env.db")
	t.Setenv("HORARIO_LOOKUP_MODE", "http")
	t.Setenv("HORARIO_LOOKUP_URL", "http://remote:8080")
	t.Setenv("HORARIO_PALETTE", "#000000, #ffffff")
	t.Setenv("HORARIO_UI_THEME", "latte")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Catalog.DBPath != "/tmp/env.db" {
		t.Errorf("expected db_path from env, got %s", cfg.Catalog.DBPath)
	}
	if cfg.Server.Addr != ":7000" {
		t.Errorf("expected addr from file, got %s", cfg.Server.Addr)
	}
	if cfg.Lookup.Mode != "http" || cfg.Lookup.BaseURL != "http://remote:8080" {
		t.Errorf("unexpected lookup config %+v", cfg.Lookup)
	}
	if len(cfg.Grid.Palette) != 2 || cfg.Grid.Palette[1] != "#ffffff" {
		t.Errorf("unexpected palette %v", cfg.Grid.Palette)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", cfg.UI.Theme)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "default", mutate: func(*Config) {}},
		{name: "empty db path", mutate: func(c *Config) { c.Catalog.DBPath = "" }, wantErr: true},
		{name: "csv source", mutate: func(c *Config) { c.Catalog.Source = "offers.csv" }},
		{name: "xml source", mutate: func(c *Config) { c.Catalog.Source = "offers.xml" }, wantErr: true},
		{name: "unknown mode", mutate: func(c *Config) { c.Lookup.Mode = "ftp" }, wantErr: true},
		{name: "http without url", mutate: func(c *Config) { c.Lookup.Mode = "http"; c.Lookup.BaseURL = "" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.Lookup.TimeoutSeconds = 0 }, wantErr: true},
		{name: "empty palette", mutate: func(c *Config) { c.Grid.Palette = nil }, wantErr: true},
		{name: "short color", mutate: func(c *Config) { c.Grid.Palette = []string{"#fff"} }, wantErr: true},
		{name: "named color", mutate: func(c *Config) { c.Grid.Palette = []string{"crimson"} }, wantErr: true},
		{name: "non hex digit", mutate: func(c *Config) { c.Grid.Palette = []string{"#12345g"} }, wantErr: true},
		{name: "single color", mutate: func(c *Config) { c.Grid.Palette = []string{"#123456"} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestLoadFrom_InvalidPaletteFromEnv(t *testing.T) {
	t.Setenv("HORARIO_PALETTE", "red,green")

	if _, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for invalid palette")
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"~/test.db", filepath.Join(home, "test.db")},
		{"/absolute/path.db", "/absolute/path.db"},
		{"relative/path.db", "relative/path.db"},
		{"", ""},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := expandPath(tc.input)
			if got != tc.want {
				t.Errorf("expandPath(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	cfg := Default()
	cfg.Catalog.Source = "/data/turmas.txt"
	cfg.Lookup.TimeoutSeconds = 5
	cfg.Grid.Palette = []string{"#010203", "#040506", "#070809"}

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.Catalog.Source != "/data/turmas.txt" {
		t.Errorf("expected source /data/turmas.txt, got %s", loaded.Catalog.Source)
	}
	if loaded.Lookup.TimeoutSeconds != 5 {
		t.Errorf("expected timeout 5, got %d", loaded.Lookup.TimeoutSeconds)
	}
	if len(loaded.Grid.Palette) != 3 {
		t.Errorf("expected 3 colors, got %d", len(loaded.Grid.Palette))
	}
}
