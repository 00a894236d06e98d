package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}

	if cfg.Max != defaultMax {
		t.Errorf("Max = %d, want default %d", cfg.Max, defaultMax)
	}
	if cfg.Serve.Addr != ":8080" {
		t.Errorf("Serve.Addr = %q, want %q", cfg.Serve.Addr, ":8080")
	}
	if cfg.Serve.Cache != "file" {
		t.Errorf("Serve.Cache = %q, want %q", cfg.Serve.Cache, "file")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
max = 100
seed = 42

[serve]
addr = ":9090"
cache = "redis"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}

	if cfg.Max != 100 {
		t.Errorf("Max = %d, want 100", cfg.Max)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.Serve.Addr != ":9090" {
		t.Errorf("Serve.Addr = %q, want %q", cfg.Serve.Addr, ":9090")
	}
	if cfg.Serve.Cache != "redis" {
		t.Errorf("Serve.Cache = %q, want %q", cfg.Serve.Cache, "redis")
	}
	// Untouched keys keep their defaults.
	if cfg.Serve.RedisAddr != "localhost:6379" {
		t.Errorf("Serve.RedisAddr = %q, want default", cfg.Serve.RedisAddr)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("max = [not toml"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadConfig(path); err == nil {
		t.Error("loadConfig() should reject a malformed file")
	}
}
