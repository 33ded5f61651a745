// Package config provides configuration management for WordGate services.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// ServerConfig holds configuration for the HTTP moderation API service.
type ServerConfig struct {
	Host            string
	Port            int
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
}

// DefaultServerConfig returns configuration with default values.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Host:            "0.0.0.0",
		Port:            5000,
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		MaxBodyBytes:    64 * 1024,
	}
}

// MinAPIKeyLength rejects trivially guessable keys at startup rather than
// serving with weak auth.
const MinAPIKeyLength = 16

// APIKeys extracts bearer API keys from environment variables.
// Supports WG_API_KEY (single) and WG_API_KEY_N (rotation: old and new
// keys stay valid during migration). Keys never come from config files.
func APIKeys() ([]string, error) {
	var keys []string

	if val := os.Getenv("WG_API_KEY"); val != "" {
		key, err := parseAPIKey(val)
		if err != nil {
			return nil, fmt.Errorf("WG_API_KEY: %w", err)
		}
		keys = append(keys, key)
	}

	for i := 1; ; i++ {
		name := fmt.Sprintf("WG_API_KEY_%d", i)
		val := os.Getenv(name)
		if val == "" {
			break
		}
		key, err := parseAPIKey(val)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		keys = append(keys, key)
	}

	return keys, nil
}

// parseAPIKey validates a single key value from the environment.
func parseAPIKey(val string) (string, error) {
	key := strings.TrimSpace(val)
	if len(key) < MinAPIKeyLength {
		return "", fmt.Errorf("key must be at least %d characters, got %d", MinAPIKeyLength, len(key))
	}
	return key, nil
}
