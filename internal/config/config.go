// ABOUTME: Configuration loader for the smartsales console
// ABOUTME: Loads settings from environment variables with defaults

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultAPIURL is the backend base URL used when nothing else is configured.
const DefaultAPIURL = "http://localhost:8000/api/v1"

type Config struct {
	APIURL      string // backend base URL, including the /api/v1 prefix
	ConfigDir   string // directory holding stored credentials and logs
	HTTPTimeout int    // seconds, per-request client timeout
	Debug       bool   // enable file-backed debug logging in the TUI
}

// Load reads configuration from the environment. A .env file in the working
// directory is merged in first when present; real environment variables win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		APIURL:      ensureScheme(getEnv("SMARTSALES_API_URL", DefaultAPIURL)),
		ConfigDir:   getEnv("SMARTSALES_CONFIG_DIR", DefaultConfigDir()),
		HTTPTimeout: getEnvInt("SMARTSALES_HTTP_TIMEOUT", 30),
		Debug:       getEnvBool("SMARTSALES_DEBUG", false),
	}
}

// DefaultConfigDir returns the default config directory following XDG spec
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "smartsales")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "smartsales")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

// ensureScheme adds http:// prefix if the URL has no scheme
func ensureScheme(url string) string {
	if url == "" {
		return url
	}
	if !strings.Contains(url, "://") {
		return "http://" + url
	}
	return url
}
