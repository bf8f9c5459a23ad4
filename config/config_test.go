package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaultsFromEnv(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	want := Config{
		LogLevel: "INFO",
		DataDir:  "./data",
		HTTP: HTTPConfig{
			Address: ":8080",
			Timeout: 5 * time.Second,
		},
		Pagination: PaginationConfig{DefaultSize: 10, MaxSize: 0},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TASKBOARD_DATA_DIR", "/tmp/taskboard")
	t.Setenv("TASKBOARD_HTTP_ADDRESS", ":9090")
	t.Setenv("TASKBOARD_DEFAULT_PAGE_SIZE", "20")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.DataDir != "/tmp/taskboard" || cfg.HTTP.Address != ":9090" || cfg.Pagination.DefaultSize != 20 {
		t.Errorf("Expected env values, got %+v", cfg)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `log_level: ERROR
data_dir: /var/lib/taskboard
http:
  address: ":7070"
  timeout: 2s
pagination:
  default_size: 5
  max_size: 50
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.LogLevel != "ERROR" || cfg.HTTP.Timeout != 2*time.Second || cfg.Pagination.MaxSize != 50 {
		t.Errorf("Expected file values, got %+v", cfg)
	}
}

func TestLoadRejectsBadPagination(t *testing.T) {
	t.Setenv("TASKBOARD_DEFAULT_PAGE_SIZE", "50")
	t.Setenv("TASKBOARD_MAX_PAGE_SIZE", "10")

	if _, err := Load(""); err == nil {
		t.Error("Expected an error when max_size is smaller than default_size")
	}
}

func TestLoadRejectsNegativeMaxPageSize(t *testing.T) {
	t.Setenv("TASKBOARD_MAX_PAGE_SIZE", "-1")

	if _, err := Load(""); err == nil {
		t.Error("Expected an error for a negative max_size")
	}
}
