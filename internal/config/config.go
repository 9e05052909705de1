package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string `env:"SERVER_PORT, default=8080"`
	APIPrefix  string `env:"API_PREFIX, default=/api/v1"`
	LogLevel   string `env:"LOG_LEVEL, default=info"`

	MySQLDSN string `env:"MYSQL_DSN, default=user:password@tcp(localhost:3306)/medstore?charset=utf8mb4&parseTime=True&loc=Local"`

	RedisAddr string `env:"REDIS_ADDR, default=localhost:6379"`
	RedisDB   int    `env:"REDIS_DB, default=0"`
	RedisPass string `env:"REDIS_PASSWORD"`

	// JWTSecret must be supplied from the environment; the default exists
	// only so local development does not need a dotenv file.
	JWTSecret string `env:"JWT_SECRET, default=change-me"`
	// AccessTokenTTL is the access token lifetime in seconds.
	AccessTokenTTL int `env:"ACCESS_TOKEN_TTL, default=900"`

	// SeedAdminPassword is only read by the seed command.
	SeedAdminPassword string `env:"SEED_ADMIN_PASSWORD, default=admin123"`
}

// Load builds Config from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
