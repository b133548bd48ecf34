package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	Upstream UpstreamConfig
	Redis    RedisConfig
}

// UpstreamConfig points at the volunteer backend. ServerURL may be empty;
// signups are then refused as service unavailable.
type UpstreamConfig struct {
	ServerURL string        `env:"SERVER_URL"`
	Timeout   time.Duration `env:"UPSTREAM_TIMEOUT, default=10s"`
}

// RedisConfig is optional; without an address the submit guard stays in
// process.
type RedisConfig struct {
	Addr        string        `env:"REDIS_ADDR"`
	DB          int           `env:"REDIS_DB,     default=0"`
	InflightTTL time.Duration `env:"INFLIGHT_TTL, default=30s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := Process(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// Process builds a Config from l.
func Process(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ServerURL is the accessor handed to the signup service.
func (c *Config) ServerURL() string { return c.Upstream.ServerURL }
