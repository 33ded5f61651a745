package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestAPIKeys(t *testing.T) {
	// Clean environment
	os.Unsetenv("WG_API_KEY")
	os.Unsetenv("WG_API_KEY_1")
	os.Unsetenv("WG_API_KEY_2")

	t.Run("single key", func(t *testing.T) {
		os.Setenv("WG_API_KEY", "0123456789abcdef0123456789abcdef")
		defer os.Unsetenv("WG_API_KEY")

		keys, err := APIKeys()
		if err != nil {
			t.Fatalf("APIKeys failed: %v", err)
		}
		if len(keys) != 1 {
			t.Errorf("expected 1 key, got %d", len(keys))
		}
		if keys[0] != "0123456789abcdef0123456789abcdef" {
			t.Errorf("unexpected key value %q", keys[0])
		}
	})

	t.Run("multiple numbered keys", func(t *testing.T) {
		os.Setenv("WG_API_KEY_1", "0123456789abcdef0123456789abcdef")
		os.Setenv("WG_API_KEY_2", "fedcba9876543210fedcba9876543210")
		defer os.Unsetenv("WG_API_KEY_1")
		defer os.Unsetenv("WG_API_KEY_2")

		keys, err := APIKeys()
		if err != nil {
			t.Fatalf("APIKeys failed: %v", err)
		}
		if len(keys) != 2 {
			t.Errorf("expected 2 keys, got %d", len(keys))
		}
	})

	t.Run("single plus numbered keys during rotation", func(t *testing.T) {
		os.Setenv("WG_API_KEY", "0123456789abcdef0123456789abcdef")
		os.Setenv("WG_API_KEY_1", "fedcba9876543210fedcba9876543210")
		defer os.Unsetenv("WG_API_KEY")
		defer os.Unsetenv("WG_API_KEY_1")

		keys, err := APIKeys()
		if err != nil {
			t.Fatalf("APIKeys failed: %v", err)
		}
		if len(keys) != 2 {
			t.Errorf("expected 2 keys, got %d", len(keys))
		}
	})

	t.Run("gap in numbered keys stops scan", func(t *testing.T) {
		os.Setenv("WG_API_KEY_1", "0123456789abcdef0123456789abcdef")
		os.Setenv("WG_API_KEY_3", "fedcba9876543210fedcba9876543210")
		defer os.Unsetenv("WG_API_KEY_1")
		defer os.Unsetenv("WG_API_KEY_3")

		keys, err := APIKeys()
		if err != nil {
			t.Fatalf("APIKeys failed: %v", err)
		}
		if len(keys) != 1 {
			t.Errorf("expected 1 key (scan stops at gap), got %d", len(keys))
		}
	})

	t.Run("key below minimum length", func(t *testing.T) {
		os.Setenv("WG_API_KEY", "tooshort")
		defer os.Unsetenv("WG_API_KEY")

		_, err := APIKeys()
		if err == nil {
			t.Error("expected error for short key")
		}
	})

	t.Run("no keys configured", func(t *testing.T) {
		keys, err := APIKeys()
		if err != nil {
			t.Fatalf("APIKeys failed: %v", err)
		}
		if len(keys) != 0 {
			t.Errorf("expected no keys, got %d", len(keys))
		}
	})
}

func TestLoadConfig(t *testing.T) {
	os.Unsetenv("WG_SERVER_PORT")
	os.Unsetenv("WG_SERVER_HOST")

	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfig("")
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if cfg.Host != "0.0.0.0" {
			t.Errorf("expected default host 0.0.0.0, got %q", cfg.Host)
		}
		if cfg.Port != 5000 {
			t.Errorf("expected default port 5000, got %d", cfg.Port)
		}
		if cfg.RequestTimeout != 30*time.Second {
			t.Errorf("expected default request_timeout 30s, got %v", cfg.RequestTimeout)
		}
		if cfg.ShutdownTimeout != 10*time.Second {
			t.Errorf("expected default shutdown_timeout 10s, got %v", cfg.ShutdownTimeout)
		}
		if cfg.MaxBodyBytes != 64*1024 {
			t.Errorf("expected default max_body_bytes 65536, got %d", cfg.MaxBodyBytes)
		}
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		os.Setenv("WG_SERVER_PORT", "8080")
		defer os.Unsetenv("WG_SERVER_PORT")

		cfg, err := LoadConfig("")
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if cfg.Port != 8080 {
			t.Errorf("expected port 8080 from environment, got %d", cfg.Port)
		}
	})

	t.Run("config file values", func(t *testing.T) {
		path := writeConfigFile(t, `server:
  host: "127.0.0.1"
  port: 9090
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if cfg.Host != "127.0.0.1" {
			t.Errorf("expected host from config file, got %q", cfg.Host)
		}
		if cfg.Port != 9090 {
			t.Errorf("expected port 9090 from config file, got %d", cfg.Port)
		}
	})

	t.Run("environment overrides config file", func(t *testing.T) {
		os.Setenv("WG_SERVER_PORT", "8080")
		defer os.Unsetenv("WG_SERVER_PORT")

		path := writeConfigFile(t, `server:
  port: 9090
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if cfg.Port != 8080 {
			t.Errorf("environment should override config file, got %d", cfg.Port)
		}
	})

	t.Run("api key in config file rejected", func(t *testing.T) {
		path := writeConfigFile(t, `server:
  port: 9090
  api_key: "should_be_rejected_0123456789"
`)
		_, err := LoadConfig(path)
		if err == nil {
			t.Fatal("expected error for api_key in config file")
		}
		if !strings.Contains(err.Error(), "WG_API_KEY") {
			t.Errorf("error should point at the environment variable: %v", err)
		}
	})

	t.Run("invalid port rejected", func(t *testing.T) {
		path := writeConfigFile(t, `server:
  port: 70000
`)
		if _, err := LoadConfig(path); err == nil {
			t.Error("expected error for out-of-range port")
		}
	})

	t.Run("non-positive timeout rejected", func(t *testing.T) {
		path := writeConfigFile(t, `server:
  request_timeout: "0s"
`)
		if _, err := LoadConfig(path); err == nil {
			t.Error("expected error for zero request_timeout")
		}
	})

	t.Run("missing config file errors", func(t *testing.T) {
		if _, err := LoadConfig("/nonexistent/wordgate.yaml"); err == nil {
			t.Error("expected error for missing config file")
		}
	})
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	tmpfile, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	tmpfile.Close()
	return tmpfile.Name()
}
