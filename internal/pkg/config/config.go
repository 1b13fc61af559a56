package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	API   APIConfig
	Token TokenConfig
	Redis RedisConfig
}

// APIConfig is the backend address as seen at startup. The API client
// resolves it again on every request, so later changes still apply.
type APIConfig struct {
	URL     string `env:"GREENHOUSE_API_URL"`
	BaseURL string `env:"API_BASE_URL"`
}

// Configured reports whether either backend variable is set.
func (a APIConfig) Configured() bool {
	return strings.TrimSpace(a.URL) != "" || strings.TrimSpace(a.BaseURL) != ""
}

type TokenConfig struct {
	Key   string `env:"TOKEN_KEY,   default=token"`
	Store string `env:"TOKEN_STORE, default=file"`
	File  string `env:"TOKEN_FILE,  default=./data/session.json"`
	// Remember is the storage choice used when a login does not state one.
	Remember bool `env:"REMEMBER_ME, default=true"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
	Prefix   string `env:"REDIS_PREFIX,   default=greenhouse:"`
}

// Token store backends accepted by TOKEN_STORE.
const (
	TokenStoreFile   = "file"
	TokenStoreMemory = "memory"
	TokenStoreRedis  = "redis"
)

func (c *Config) IsProduction() bool { return c.Env == "production" }

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration through l and validates the token backend.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	switch cfg.Token.Store {
	case TokenStoreFile, TokenStoreMemory, TokenStoreRedis:
	default:
		return nil, fmt.Errorf("TOKEN_STORE: unknown backend %q", cfg.Token.Store)
	}
	return &cfg, nil
}
