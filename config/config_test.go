package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// loadIn runs Load from an empty directory so no config.yaml is picked up.
func loadIn(t *testing.T) (*Config, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Chdir(t.TempDir())
	return Load()
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := loadIn(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.HTTPServer.Port)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("driver = %q, want postgres", cfg.Database.Driver)
	}
	if !strings.HasPrefix(cfg.Database.DSN, "postgres://postgres:@localhost:5432/project_management") {
		t.Errorf("unexpected composed DSN: %q", cfg.Database.DSN)
	}
	if !strings.Contains(cfg.Database.DSN, "sslmode=disable") {
		t.Errorf("sslmode missing from DSN: %q", cfg.Database.DSN)
	}
	if cfg.Schedule.Timezone != "UTC" {
		t.Errorf("timezone = %q, want UTC", cfg.Schedule.Timezone)
	}
	if cfg.Database.ConnMaxLifetime.Minutes() != 30 {
		t.Errorf("conn max lifetime = %v, want 30m", cfg.Database.ConnMaxLifetime)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_DSN", "file:pm.db")
	t.Setenv("SCHEDULE_TIMEZONE", "Europe/Berlin")
	t.Setenv("HTTP_SERVER_PORT", "9090")

	cfg, err := loadIn(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Driver != "sqlite" || cfg.Database.DSN != "file:pm.db" {
		t.Errorf("database not overridden: %+v", cfg.Database)
	}
	if cfg.Schedule.Timezone != "Europe/Berlin" {
		t.Errorf("timezone = %q", cfg.Schedule.Timezone)
	}
	if cfg.HTTPServer.Port != 9090 {
		t.Errorf("port = %d", cfg.HTTPServer.Port)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"Unknown Driver", map[string]string{"DATABASE_DRIVER": "oracle"}},
		{"Bad Timezone", map[string]string{"SCHEDULE_TIMEZONE": "Mars/Olympus"}},
		{"Zero Port", map[string]string{"HTTP_SERVER_PORT": "0"}},
		{"Rate Limit Without Rate", map[string]string{"RATE_LIMIT_REQUESTS_PER_MIN": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := loadIn(t); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
