package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: Config{
				API:     APIConfig{TimeoutSeconds: 30},
				Logging: LoggingConfig{Level: "info", Format: "console"},
			},
			wantErr: false,
		},
		{
			name: "debug level json format",
			cfg: Config{
				API:     APIConfig{TimeoutSeconds: 10},
				Logging: LoggingConfig{Level: "debug", Format: "json"},
			},
			wantErr: false,
		},
		{
			name: "invalid logging level",
			cfg: Config{
				API:     APIConfig{TimeoutSeconds: 30},
				Logging: LoggingConfig{Level: "verbose", Format: "console"},
			},
			wantErr: true,
		},
		{
			name: "invalid logging format",
			cfg: Config{
				API:     APIConfig{TimeoutSeconds: 30},
				Logging: LoggingConfig{Level: "info", Format: "xml"},
			},
			wantErr: true,
		},
		{
			name: "non-positive timeout",
			cfg: Config{
				API:     APIConfig{TimeoutSeconds: 0},
				Logging: LoggingConfig{Level: "info", Format: "console"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("explicit file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		data := []byte(`
api:
  url: https://staging.supplychain.example.com
  key: file-key
  client_type: human
filter:
  presets:
    critical: 'Severity == "critical"'
logging:
  level: debug
  format: json
`)
		if err := os.WriteFile(path, data, 0o600); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.API.URL != "https://staging.supplychain.example.com" {
			t.Errorf("unexpected api.url: %s", cfg.API.URL)
		}
		if cfg.API.ClientType != "human" {
			t.Errorf("unexpected api.client_type: %s", cfg.API.ClientType)
		}
		if cfg.Filter.Presets["critical"] != `Severity == "critical"` {
			t.Errorf("unexpected preset: %q", cfg.Filter.Presets["critical"])
		}
		if cfg.Logging.Format != "json" {
			t.Errorf("unexpected logging format: %s", cfg.Logging.Format)
		}
	})

	t.Run("missing explicit file fails", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		if err == nil {
			t.Fatal("expected an error for a missing explicit config file")
		}
	})

	t.Run("no file falls back to defaults", func(t *testing.T) {
		oldWD, err := os.Getwd()
		if err != nil {
			t.Fatalf("Getwd() error = %v", err)
		}
		if err := os.Chdir(t.TempDir()); err != nil {
			t.Fatalf("Chdir() error = %v", err)
		}
		t.Cleanup(func() {
			if err := os.Chdir(oldWD); err != nil {
				t.Fatalf("Chdir() error = %v", err)
			}
		})

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Logging.Level != "info" {
			t.Errorf("unexpected default level: %s", cfg.Logging.Level)
		}
		if cfg.API.TimeoutSeconds != 30 {
			t.Errorf("unexpected default timeout: %d", cfg.API.TimeoutSeconds)
		}
	})
}
