package config

import "strings"

const (
	AppTitle   = "MirTech Analytics API"
	AppVersion = "1.0.0"
)

// Config holds all application configuration in a structured way.
// It carries settings only: the cache handle, the database pool and the
// Valkey client are constructed once at startup and injected explicitly.
type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Cache      CacheConfig
	Pagination PaginationConfig
	Cors       CorsConfig
}

type AppConfig struct {
	Port        string
	Debug       bool
	Environment string
	BasePath    string
}

type DatabaseConfig struct {
	// URI selects the driver by scheme: postgres://... for PostgreSQL,
	// anything else is treated as a SQLite file DSN.
	URI         string
	PoolSize    int
	MaxOverflow int
}

type CacheConfig struct {
	// ValkeyURI empty means the in-process store (dev/test runs).
	ValkeyURI         string
	KeyPrefix         string
	DefaultTTLSeconds int
	PreloadEnabled    bool
}

type PaginationConfig struct {
	DefaultLimit int
	MaxLimit     int
}

type CorsConfig struct {
	AllowOrigins     []string
	AllowCredentials bool
}

// Global provides access to the loaded configuration. Set once by LoadConfig.
var Global *Config

// LoadConfig builds the configuration from environment variables (the .env
// file has already been folded into the environment by utils.LoadConfig).
func LoadConfig() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Port:        getEnv("APP_PORT", "3000"),
			Debug:       getEnvBool("APP_DEBUG", false),
			Environment: getEnv("APP_ENV", "development"),
			BasePath:    getEnv("APP_BASE_PATH", ""),
		},
		Database: DatabaseConfig{
			URI:         getEnv("DB_URI", "file:mtanalytics.db?_journal_mode=WAL"),
			PoolSize:    getEnvInt("DB_POOL_SIZE", 20),
			MaxOverflow: getEnvInt("DB_MAX_OVERFLOW", 10),
		},
		Cache: CacheConfig{
			ValkeyURI:         getEnv("VALKEY_URI", ""),
			KeyPrefix:         getEnv("CACHE_KEY_PREFIX", "mta"),
			DefaultTTLSeconds: getEnvInt("CACHE_DEFAULT_TTL_SECONDS", 600),
			PreloadEnabled:    getEnvBool("CACHE_PRELOAD_ENABLED", true),
		},
		Pagination: PaginationConfig{
			DefaultLimit: getEnvInt("PAGINATION_DEFAULT_LIMIT", 100),
			MaxLimit:     getEnvInt("PAGINATION_MAX_LIMIT", 10000),
		},
		Cors: CorsConfig{
			AllowOrigins:     strings.Split(getEnv("CORS_ALLOW_ORIGINS", "*"), ","),
			AllowCredentials: getEnvBool("CORS_ALLOW_CREDENTIALS", false),
		},
	}

	Global = cfg
	return cfg, nil
}

// IsPostgres reports whether the configured database URI targets PostgreSQL.
func (c DatabaseConfig) IsPostgres() bool {
	return strings.HasPrefix(c.URI, "postgres://") || strings.HasPrefix(c.URI, "postgresql://")
}
