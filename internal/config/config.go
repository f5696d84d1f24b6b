// Package config loads the service configuration from an optional env file
// and the process environment.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is the root configuration structure.
type Config struct {
	App   App
	DB    DB
	Redis Redis
	Flash Flash
	CORS  CORS
}

// App holds HTTP listener and logging settings.
type App struct {
	Host      string `env:"APP_HOST" env-default:"localhost"`
	Port      string `env:"APP_PORT" env-default:"8080"`
	LogLevel  string `env:"APP_LOG_LEVEL" env-default:"info"`
	LogFormat string `env:"APP_LOG_FORMAT" env-default:"json"`
}

// DB holds the record store settings. Driver is "sqlite3" or "pgx".
type DB struct {
	Driver       string `env:"DB_DRIVER" env-default:"sqlite3"`
	DSN          string `env:"DB_DSN" env-default:"students.db"`
	MaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" env-default:"16"`
	MaxIdleConns int    `env:"DB_MAX_IDLE_CONNS" env-default:"8"`
}

// Redis holds the optional flash store settings. An empty Addr disables Redis.
type Redis struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" env-default:"0"`
}

// Flash holds flash message settings.
type Flash struct {
	TTLSecond int `env:"FLASH_TTL_SECOND" env-default:"300"`
}

// CORS holds the allowed origins of the JSON API.
type CORS struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
}

// Addr returns the HTTP listen address.
func (a App) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// TTL returns the flash message lifetime.
func (f Flash) TTL() time.Duration {
	return time.Duration(f.TTLSecond) * time.Second
}

// Load reads the env file at path, if it exists, into the process
// environment and then parses the environment into a Config.
// Variables already set in the environment take precedence over the file.
func Load(path string) (*Config, error) {
	if path != "" {
		_ = godotenv.Load(path)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	switch cfg.DB.Driver {
	case "sqlite3", "pgx":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}

	return &cfg, nil
}
