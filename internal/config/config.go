// Package config holds runtime settings and API key loading.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultKeyFile     = "google-maps-api.key"
	DefaultHTTPTimeout = 10 * time.Second
)

// ErrNoAPIKey is returned when the key file holds no non-blank line.
var ErrNoAPIKey = errors.New("api key file does not contain a valid api key")

// Config is the resolved set of runtime settings.
type Config struct {
	KeyFile        string
	IncludeTraffic bool
	HTTPTimeout    time.Duration
	Language       string
	Region         string
}

// Default reads the environment, falling back to built-in values.
func Default() Config {
	return Config{
		KeyFile:        Get("MAPS_API_KEY_FILE", DefaultKeyFile),
		IncludeTraffic: GetBool("TRAVELTIME_TRAFFIC", true),
		HTTPTimeout:    GetDuration("MAPS_HTTP_TIMEOUT", DefaultHTTPTimeout),
		Language:       Get("MAPS_LANGUAGE", ""),
		Region:         Get("MAPS_REGION", ""),
	}
}

// Validate reports settings that would make startup fail.
func (c Config) Validate() error {
	if strings.TrimSpace(c.KeyFile) == "" {
		return errors.New("config: key file path is required")
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("config: http timeout must not be negative, got %s", c.HTTPTimeout)
	}
	return nil
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetBool parses the environment value for key, or returns fallback when unset or invalid.
func GetBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// GetDuration accepts Go duration strings ("15s") or bare seconds ("15").
func GetDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if seconds, err := strconv.Atoi(v); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return fallback
}

// LoadAPIKey returns the first non-blank line of the file at path, trimmed.
func LoadAPIKey(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("load api key: open %q: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if key := strings.TrimSpace(sc.Text()); key != "" {
			return key, nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("load api key: read %q: %w", path, err)
	}

	return "", fmt.Errorf("load api key %q: %w", path, ErrNoAPIKey)
}
