package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samdwyer/dungeonlayout/internal/world"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(nil))
	if err != nil {
		t.Fatalf("FromLookup failed: %v", err)
	}
	if cfg.Shape() != (world.Shape{Rows: world.DefaultRows, Columns: world.DefaultColumns}) {
		t.Errorf("unexpected default shape %v", cfg.Shape())
	}
	if cfg.Limits() != world.DefaultLimits() {
		t.Errorf("unexpected default limits %+v", cfg.Limits())
	}
	if cfg.Color != ColorAuto {
		t.Errorf("default color = %q, want %q", cfg.Color, ColorAuto)
	}
}

func TestOverrides(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		EnvSeed:          "0xbeef",
		EnvRows:          "2",
		EnvColumns:       "3",
		EnvAddr:          "127.0.0.1:9000",
		EnvLogVerbosity:  "2",
		EnvMaxAttempts:   "5",
		EnvMaxIterations: "500",
		EnvColor:         ColorNever,
	}))
	if err != nil {
		t.Fatalf("FromLookup failed: %v", err)
	}

	if cfg.Seed != 0xbeef {
		t.Errorf("Seed = %#x, want 0xbeef", cfg.Seed)
	}
	if cfg.Rows != 2 || cfg.Columns != 3 {
		t.Errorf("shape = %dx%d, want 2x3", cfg.Rows, cfg.Columns)
	}
	if cfg.Addr != "127.0.0.1:9000" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.LogVerbosity != 2 {
		t.Errorf("LogVerbosity = %d, want 2", cfg.LogVerbosity)
	}
	if cfg.MaxSynthesisAttempts != 5 || cfg.MaxConnectIterations != 500 {
		t.Errorf("limits = %+v", cfg.Limits())
	}
	if cfg.Color != ColorNever {
		t.Errorf("Color = %q, want %q", cfg.Color, ColorNever)
	}
}

func TestInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"seed", map[string]string{EnvSeed: "not-a-number"}},
		{"rows", map[string]string{EnvRows: "four"}},
		{"color", map[string]string{EnvColor: "sometimes"}},
		{"attempts", map[string]string{EnvMaxAttempts: "0"}},
		{"iterations", map[string]string{EnvMaxIterations: "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromLookup(lookupFrom(tt.env)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("DUNGEON_ROWS=3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvRows, "")
	os.Unsetenv(EnvRows)

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv failed: %v", err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Rows != 3 {
		t.Errorf("Rows = %d, want 3 from .env", cfg.Rows)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
}
