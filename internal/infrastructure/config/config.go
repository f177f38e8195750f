package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, required"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Auth  AuthConfig
	Mongo MongoConfig
	Redis RedisConfig
	Views ViewsConfig
	OIDC  OIDCConfig
}

type AuthConfig struct {
	TokenTTL       time.Duration `env:"TOKEN_TTL,            default=24h"`
	IdleTimeout    time.Duration `env:"SESSION_IDLE_TIMEOUT, default=30m"`
	ResolveTimeout time.Duration `env:"AUTH_RESOLVE_TIMEOUT, default=5s"`
	DenyPath       string        `env:"GUARD_DENY_PATH,      default=/"`
	SecureCookie   bool          `env:"SECURE_COOKIE,        default=false"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=vibefolio"`
}

type RedisConfig struct {
	URL          string        `env:"REDIS_URL"`
	Addr         string        `env:"REDIS_ADDR,           default=localhost:6379"`
	Password     string        `env:"REDIS_PASSWORD"`
	DB           int           `env:"REDIS_DB,             default=0"`
	PoolSize     int           `env:"REDIS_POOL_SIZE,      default=20"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS, default=2"`
	OpTimeout    time.Duration `env:"REDIS_OP_TIMEOUT,     default=500ms"`
}

type ViewsConfig struct {
	Workers     int           `env:"VIEW_WORKERS,       default=8"`
	DedupWindow time.Duration `env:"VIEW_DEDUP_WINDOW,  default=1h"`
}

// OIDCConfig is optional; OIDC login routes are mounted only when Enabled
// reports true.
type OIDCConfig struct {
	ClientID     string `env:"OIDC_CLIENT_ID"`
	ClientSecret string `env:"OIDC_CLIENT_SECRET"`
	RedirectURL  string `env:"OIDC_REDIRECT_URL, default=http://localhost:8080/auth/callback"`
	DiscoveryURL string `env:"OIDC_DISCOVERY_URL"`
	Scope        string `env:"OIDC_SCOPE,        default=openid profile email"`
}

func (c OIDCConfig) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.DiscoveryURL != ""
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads a .env file when present, then the process environment.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}
	return FromLookuper(ctx, envconfig.OsLookuper())
}

// FromLookuper builds a Config from an arbitrary source of variables.
func FromLookuper(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
