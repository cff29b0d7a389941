package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"

	"github.com/autohaus/dealership/internal/core/domain"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth   AuthConfig
	Mongo  MongoConfig
	Redis  RedisConfig
	Rates  RatesConfig
	Admin  AdminBootstrap
	Limits LimitsConfig
}

type AuthConfig struct {
	JWTSecret       string        `env:"JWT_SECRET"`
	TokenTTL        time.Duration `env:"TOKEN_TTL,              default=168h"`
	BcryptCost      int           `env:"BCRYPT_COST,            default=12"`
	CookieSecure    bool          `env:"COOKIE_SECURE,          default=false"`
	RevocationUser  bool          `env:"REVOCATION_CHECK_USER,  default=false"`
	RevocationAdmin bool          `env:"REVOCATION_CHECK_ADMIN, default=true"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=dealership"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type RatesConfig struct {
	URL      string             `env:"RATES_URL"`
	CacheTTL time.Duration      `env:"RATES_CACHE_TTL, default=1h"`
	Fallback map[string]float64 `env:"RATES_FALLBACK"`
}

// AdminBootstrap seeds the first admin account. Empty email disables it.
type AdminBootstrap struct {
	Email    string `env:"ADMIN_BOOTSTRAP_EMAIL"`
	Password string `env:"ADMIN_BOOTSTRAP_PASSWORD"`
	Name     string `env:"ADMIN_BOOTSTRAP_NAME, default=Administrator"`
}

type LimitsConfig struct {
	LoginPerSecond float64 `env:"LOGIN_RATE_PER_SECOND, default=1"`
	LoginBurst     int     `env:"LOGIN_RATE_BURST,      default=5"`
}

// Load reads an optional .env file, then the environment, and validates the
// result.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}
	return FromLookuper(ctx, envconfig.OsLookuper())
}

// FromLookuper processes configuration from an arbitrary source.
func FromLookuper(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("config: JWT_SECRET is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("config: TOKEN_TTL must be positive")
	}
	if c.Admin.Email != "" && c.Admin.Password == "" {
		return errors.New("config: ADMIN_BOOTSTRAP_PASSWORD is required when ADMIN_BOOTSTRAP_EMAIL is set")
	}
	if c.Limits.LoginPerSecond <= 0 || c.Limits.LoginBurst <= 0 {
		return errors.New("config: login rate limits must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// RevocationPolicy reports, per role, whether sessions are re-checked
// against the account store.
func (c *Config) RevocationPolicy() map[domain.Role]bool {
	return map[domain.Role]bool{
		domain.RoleUser:  c.Auth.RevocationUser,
		domain.RoleAdmin: c.Auth.RevocationAdmin,
	}
}
