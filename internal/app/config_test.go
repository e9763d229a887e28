package app

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/bloomlms/bloom-backend/internal/pkg/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig(testLogger(t))

	if cfg.Port != "8000" {
		t.Fatalf("unexpected default port: %q", cfg.Port)
	}
	if cfg.DB.Name != "bloom" {
		t.Fatalf("unexpected default db name: %q", cfg.DB.Name)
	}
	if !reflect.DeepEqual(cfg.AllowedOrigins, []string{"http://localhost:3000"}) {
		t.Fatalf("unexpected default origins: %v", cfg.AllowedOrigins)
	}
}

func TestLoadConfigSplitsOrigins(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000, https://bloom.example.com ,")

	cfg := LoadConfig(testLogger(t))

	want := []string{"http://localhost:3000", "https://bloom.example.com"}
	if !reflect.DeepEqual(cfg.AllowedOrigins, want) {
		t.Fatalf("unexpected origins: got=%v want=%v", cfg.AllowedOrigins, want)
	}
}

func TestLoadConfigFileOverlay(t *testing.T) {
	t.Setenv("DB_NAME", "bloom_env")

	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := "port: \"9000\"\nallowed_origins:\n  - https://bloom.example.com\ndb:\n  name: bloom_file\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)

	cfg := LoadConfig(testLogger(t))

	if cfg.Port != "9000" {
		t.Fatalf("file port not applied: %q", cfg.Port)
	}
	if cfg.DB.Name != "bloom_file" {
		t.Fatalf("file db name not applied: %q", cfg.DB.Name)
	}
	if !reflect.DeepEqual(cfg.AllowedOrigins, []string{"https://bloom.example.com"}) {
		t.Fatalf("file origins not applied: %v", cfg.AllowedOrigins)
	}
	// Fields absent from the file keep environment values.
	if cfg.DB.Host != "localhost" {
		t.Fatalf("unexpected db host: %q", cfg.DB.Host)
	}
}

func TestLoadConfigIgnoresBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":::not yaml"), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "8123")

	cfg := LoadConfig(testLogger(t))

	if cfg.Port != "8123" {
		t.Fatalf("environment value lost on broken file: %q", cfg.Port)
	}
}
