// package config loads application configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	// server
	HTTPPort        int
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration

	// logging
	LogLevel string
	LogFile  string

	// templates
	TemplatesDir    string // empty means the templates compiled into the binary
	TemplatesReload bool

	// chart
	ChartStyleFile   string
	NoscriptFallback bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPPort:         getEnvInt("HTTP_PORT", 8000),
		RequestTimeout:   time.Duration(getEnvInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30)) * time.Second,
		ShutdownTimeout:  time.Duration(getEnvInt("HTTP_SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFile:          getEnv("LOG_FILE", ""),
		TemplatesDir:     getEnv("TEMPLATES_DIR", ""),
		TemplatesReload:  getEnvBool("TEMPLATES_RELOAD", false),
		ChartStyleFile:   getEnv("CHART_STYLE_FILE", ""),
		NoscriptFallback: getEnvBool("CHART_NOSCRIPT_FALLBACK", true),
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt returns the integer value of an environment variable or a default.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}
