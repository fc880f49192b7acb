// config describes the service configuration and loads it from a YAML file
// and environment variables with a predictable priority.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — root configuration.
// Sources (highest priority first):
//  1. explicit path from --config;
//  2. path in CONFIG_PATH;
//  3. ./local.yaml;
//  4. environment variables only (cleanenv).
//
// Environment variables always overlay values read from YAML.
type Config struct {
	Env      string        `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig    `yaml:"http"`
	Auth     AuthConfig    `yaml:"auth"`
	DB       DBConfig      `yaml:"db"`
	Redis    RedisConfig   `yaml:"redis"`
	Letters  LettersConfig `yaml:"letters"`
	Credit   CreditConfig  `yaml:"credit"`
	CORS     CORSConfig    `yaml:"cors"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
}

// HTTPConfig — REST server address.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"3001"`
}

// Addr returns host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// AuthConfig — token issuing and password policy.
type AuthConfig struct {
	JWTSecret         string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	AccessTokenTTL    time.Duration `yaml:"access_token_ttl" env:"ACCESS_TOKEN_TTL" env-default:"15m"`
	RefreshTokenTTL   time.Duration `yaml:"refresh_token_ttl" env:"REFRESH_TOKEN_TTL" env-default:"168h"`
	Issuer            string        `yaml:"issuer" env:"JWT_ISSUER" env-default:"credit-dispute"`
	Audience          []string      `yaml:"audience" env:"JWT_AUDIENCE" env-default:"credit-dispute-web"`
	BcryptCost        int           `yaml:"bcrypt_cost" env:"BCRYPT_COST" env-default:"10"`
	PasswordMinLength int           `yaml:"password_min_length" env:"PASSWORD_MIN_LENGTH" env-default:"6"`
	JanitorInterval   time.Duration `yaml:"janitor_interval" env:"REFRESH_JANITOR_INTERVAL" env-default:"30m"`
}

// DBConfig — PostgreSQL connection.
type DBConfig struct {
	DatabaseURL string `yaml:"db_url" env:"DATABASE_URL" env-required:"true"`
	// Migrations run on start unless skipped. The flag defaults to false so
	// that a YAML value is never overridden by an env-default.
	SkipMigrations bool `yaml:"skip_migrations" env:"DB_SKIP_MIGRATIONS"`
}

// RedisConfig — optional stats cache; empty URL disables it.
type RedisConfig struct {
	RedisURL string        `yaml:"redis_url" env:"REDIS_URL"`
	Prefix   string        `yaml:"prefix" env:"REDIS_PREFIX" env-default:"disputes:"`
	StatsTTL time.Duration `yaml:"stats_ttl" env:"REDIS_STATS_TTL" env-default:"1m"`
}

// Enabled reports whether the cache is configured.
func (r RedisConfig) Enabled() bool {
	return r.RedisURL != ""
}

// LettersConfig — AI letter generation; empty key means template only.
type LettersConfig struct {
	OpenAIAPIKey string        `yaml:"openai_api_key" env:"OPENAI_API_KEY"`
	BaseURL      string        `yaml:"base_url" env:"OPENAI_BASE_URL" env-default:"https://api.openai.com"`
	Model        string        `yaml:"model" env:"OPENAI_MODEL" env-default:"gpt-3.5-turbo"`
	Timeout      time.Duration `yaml:"timeout" env:"OPENAI_TIMEOUT" env-default:"10s"`
}

// AIEnabled reports whether an API key is present.
func (l LettersConfig) AIEnabled() bool {
	return l.OpenAIAPIKey != ""
}

// CreditConfig — mock bureau.
type CreditConfig struct {
	ProviderLatency time.Duration `yaml:"provider_latency" env:"CREDIT_PROVIDER_LATENCY" env-default:"0s"`
}

// CORSConfig — browser client origins.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"http://localhost:3000"`
}

// TimeoutConfig — request and shutdown timeouts.
type TimeoutConfig struct {
	Service  time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"15s"`
	Shutdown time.Duration `yaml:"shutdown" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// MustLoad wraps Load and panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load reads configuration by priority:
// 1) explicit path; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 1) explicit path.
	if path != "" {
		return validate(tryRead(path))
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return validate(tryRead(envPath))
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		return validate(tryRead("local.yaml"))
	}

	// 4) env only.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	return validate(&cfg, nil)
}

func validate(cfg *Config, err error) (*Config, error) {
	if err != nil {
		return nil, err
	}

	switch {
	case cfg.Auth.AccessTokenTTL <= 0:
		return nil, fmt.Errorf("auth.access_token_ttl must be positive")
	case cfg.Auth.RefreshTokenTTL <= 0:
		return nil, fmt.Errorf("auth.refresh_token_ttl must be positive")
	case cfg.Auth.PasswordMinLength < 1:
		return nil, fmt.Errorf("auth.password_min_length must be at least 1")
	case cfg.Auth.BcryptCost < 4 || cfg.Auth.BcryptCost > 31:
		return nil, fmt.Errorf("auth.bcrypt_cost must be within [4, 31]")
	case cfg.Redis.Enabled() && cfg.Redis.StatsTTL <= 0:
		return nil, fmt.Errorf("redis.stats_ttl must be positive")
	case cfg.Timeouts.Service > 0 && cfg.Letters.Timeout >= cfg.Timeouts.Service:
		return nil, fmt.Errorf("letters.timeout (%s) must be shorter than timeouts.service (%s)",
			cfg.Letters.Timeout, cfg.Timeouts.Service)
	}

	return cfg, nil
}
