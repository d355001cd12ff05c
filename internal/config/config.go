package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	defaultTokenSecret = "change-me-access-token-secret"
	defaultDatabase    = "fitNFlexArena"
)

type Config struct {
	AppEnv string `envconfig:"APP_ENV" default:"dev"`
	Port   string `envconfig:"PORT" default:"3000"`

	Database

	AccessTokenSecret string `envconfig:"ACCESS_TOKEN_SECRET" default:"change-me-access-token-secret"`

	StripeSecretKey string `envconfig:"STRIPE_SECRET_KEY"`
	PaymentCurrency string `envconfig:"PAYMENT_CURRENCY" default:"usd"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	ReadHeaderTimeout time.Duration `envconfig:"READ_HEADER_TIMEOUT" default:"5s"`
	ShutdownTimeout   time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// Database locates the store. URL wins; otherwise a mongodb+srv URI is
// assembled from the Atlas credentials.
type Database struct {
	URL         string `envconfig:"DATABASE_URL"`
	Name        string `envconfig:"DATABASE_NAME" default:"fitNFlexArena"`
	User        string `envconfig:"DB_USER"`
	Secret      string `envconfig:"DB_SECRET_KEY"`
	ClusterHost string `envconfig:"DB_CLUSTER_HOST"`
	AppName     string `envconfig:"DB_APP_NAME" default:"Cluster0"`
}

// Load reads an optional .env file and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// a missing .env is normal outside local development
		_ = godotenv.Load(f)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DSN returns the connection string for the configured store.
func (d Database) DSN() string {
	if strings.TrimSpace(d.URL) != "" {
		return strings.TrimSpace(d.URL)
	}
	if d.User == "" || d.Secret == "" || d.ClusterHost == "" {
		return ""
	}
	u := url.URL{
		Scheme: "mongodb+srv",
		User:   url.UserPassword(d.User, d.Secret),
		Host:   d.ClusterHost,
		Path:   "/",
	}
	q := url.Values{}
	q.Set("retryWrites", "true")
	q.Set("w", "majority")
	q.Set("appName", d.AppName)
	u.RawQuery = q.Encode()
	return u.String()
}

func (c *Config) IsProdLike() bool {
	return isProdLike(c.AppEnv)
}

func validateConfig(cfg *Config) error {
	if cfg.Database.DSN() == "" {
		return errors.New("DATABASE_URL or DB_USER/DB_SECRET_KEY/DB_CLUSTER_HOST must be set")
	}
	if strings.TrimSpace(cfg.Database.Name) == "" {
		cfg.Database.Name = defaultDatabase
	}
	if strings.TrimSpace(cfg.Port) == "" {
		return errors.New("PORT must not be empty")
	}
	if cfg.ReadHeaderTimeout <= 0 {
		return errors.New("READ_HEADER_TIMEOUT must be > 0")
	}
	if cfg.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be > 0")
	}
	switch strings.ToLower(cfg.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.AccessTokenSecret, defaultTokenSecret) {
			return errors.New("in prod/release ACCESS_TOKEN_SECRET must be set and not default")
		}
		if strings.TrimSpace(cfg.StripeSecretKey) == "" {
			return errors.New("in prod/release STRIPE_SECRET_KEY must be set")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}
