package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"sedbms/internal/logger"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string        `env:"SERVER_PORT" envDefault:"5000"`
	Database    DBConfig      `envPrefix:"DB_"`
	Redis       RedisConfig   `envPrefix:"REDIS_"`
	JWTSecret   string        `env:"JWT_SECRET" envDefault:"change-me"`
	SessionTTL  time.Duration `env:"SESSION_TTL" envDefault:"12h"`
	SeedOnStart bool          `env:"SEED_ON_START" envDefault:"true"`
	SeedFile    string        `env:"SEED_FILE"`
	SwaggerHost string        `env:"SWAGGER_HOST"`

	LogLevel logger.LogLevel `env:"LOG_LEVEL" envDefault:"1"`
	LogDir   string          `env:"LOG_DIR" envDefault:"./logs"`
}

// DBConfig selects the storage backend.
type DBConfig struct {
	Driver string `env:"DRIVER" envDefault:"sqlite"`
	DSN    string `env:"DSN" envDefault:"sedbms.db?_foreign_keys=on"`
}

// RedisConfig points at the session revocation and report cache.
type RedisConfig struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
