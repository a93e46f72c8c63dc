// Package config provides configuration loading from environment variables.
package config

import (
	"os"
	"strconv"
)

// Defaults, overridable through JSONTAB_* variables and command-line flags.
const (
	DefaultMaxWidth      = 50
	DefaultTableFormat   = "grid"
	DefaultMaxInputBytes = 64 << 20 // 64MB document cap
	DefaultCacheMaxDocs  = 32
	DefaultFileWorkers   = 4
)

// Config holds all configuration for the converter. Flags take precedence
// over environment values; environment values take precedence over defaults.
type Config struct {
	MaxWidth      int    // JSONTAB_MAX_WIDTH, default 50
	TableFormat   string // JSONTAB_FORMAT, default "grid"
	Color         string // JSONTAB_COLOR, default "auto" (auto|always|never)
	SnakeHeaders  bool   // JSONTAB_SNAKE_HEADERS, default false
	MaxInputBytes int    // JSONTAB_MAX_INPUT_BYTES, default 64MB
	CacheMaxDocs  int    // JSONTAB_CACHE_MAX_DOCS, default 32
	FileWorkers   int    // JSONTAB_FILE_WORKERS, default 4

	// Logging configuration
	LogLevel      string // JSONTAB_LOG_LEVEL, default "info"
	LogFile       string // JSONTAB_LOG_FILE, default "" (logging disabled)
	LogMaxSizeMB  int    // JSONTAB_LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // JSONTAB_LOG_MAX_BACKUPS, default 3
	LogMaxAgeDays int    // JSONTAB_LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // JSONTAB_LOG_COMPRESS, default true
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		MaxWidth:      getEnvInt("JSONTAB_MAX_WIDTH", DefaultMaxWidth),
		TableFormat:   getEnvString("JSONTAB_FORMAT", DefaultTableFormat),
		Color:         getEnvString("JSONTAB_COLOR", "auto"),
		SnakeHeaders:  getEnvBool("JSONTAB_SNAKE_HEADERS", false),
		MaxInputBytes: getEnvInt("JSONTAB_MAX_INPUT_BYTES", DefaultMaxInputBytes),
		CacheMaxDocs:  getEnvInt("JSONTAB_CACHE_MAX_DOCS", DefaultCacheMaxDocs),
		FileWorkers:   getEnvInt("JSONTAB_FILE_WORKERS", DefaultFileWorkers),

		LogLevel:      getEnvString("JSONTAB_LOG_LEVEL", "info"),
		LogFile:       getEnvString("JSONTAB_LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("JSONTAB_LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("JSONTAB_LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getEnvInt("JSONTAB_LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("JSONTAB_LOG_COMPRESS", true),
	}
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
