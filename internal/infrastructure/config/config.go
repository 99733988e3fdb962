package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Registration RegistrationConfig
	Upstream     UpstreamConfig
	Redis        RedisConfig
}

type RegistrationConfig struct {
	Open   bool   `env:"REGISTRATION_OPEN,   default=true"`
	Notice string `env:"REGISTRATION_NOTICE, default=Las inscripciones están cerradas"`
}

type UpstreamConfig struct {
	BaseURL       string        `env:"UPSTREAM_BASE_URL, default=http://localhost:3000"`
	LookupTimeout time.Duration `env:"UPSTREAM_LOOKUP_TIMEOUT, default=10s"`
	SubmitTimeout time.Duration `env:"UPSTREAM_SUBMIT_TIMEOUT, default=20s"`
	ExportTimeout time.Duration `env:"UPSTREAM_EXPORT_TIMEOUT, default=5m"`
}

type RedisConfig struct {
	Enabled    bool          `env:"REDIS_ENABLED, default=false"`
	Addr       string        `env:"REDIS_ADDR,    default=localhost:6379"`
	DB         int           `env:"REDIS_DB,      default=0"`
	LookupTTL  time.Duration `env:"REDIS_LOOKUP_TTL,  default=30s"`
	FixtureTTL time.Duration `env:"REDIS_FIXTURE_TTL, default=60s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
