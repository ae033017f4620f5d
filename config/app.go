package config

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

func init() {
	// .env is optional; real environment variables always take precedence
	if err := godotenv.Load(); err == nil {
		log.Println("✅ Loaded .env")
	}
}

const (
	CartBackendCookie = "cookie"
	CartBackendRedis  = "redis"
)

// AppConfig is the full runtime configuration of the storefront server.
type AppConfig struct {
	Port            string        `yaml:"port"`
	Env             string        `yaml:"env"`
	UpstreamBaseURL string        `yaml:"upstream_base_url"`
	UpstreamTimeout time.Duration `yaml:"upstream_timeout"`
	PageSize        int           `yaml:"page_size"`
	CartBackend     string        `yaml:"cart_backend"`
	CartCookieName  string        `yaml:"cart_cookie_name"`
	CartTTL         time.Duration `yaml:"cart_ttl"`
	RedisURL        string        `yaml:"redis_url"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	RateLimit       int           `yaml:"rate_limit"`
	RateWindow      time.Duration `yaml:"rate_window"`
	LogLevel        string        `yaml:"log_level"`
}

// DefaultAppConfig returns the configuration used when nothing is set.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Port:            "8081",
		Env:             "development",
		UpstreamBaseURL: "https://fakestoreapi.com",
		UpstreamTimeout: 10 * time.Second,
		PageSize:        10,
		CartBackend:     CartBackendCookie,
		CartCookieName:  "cart",
		CartTTL:         30 * 24 * time.Hour,
		AllowedOrigins:  []string{"http://localhost:8081"},
		RateLimit:       100,
		RateWindow:      time.Minute,
		LogLevel:        "info",
	}
}

// IsProduction reports whether APP_ENV is "production".
func (c AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// LoadAppConfig builds the config from defaults, then the YAML file named by
// STOREFRONT_CONFIG (if any), then environment variables.
func LoadAppConfig() (AppConfig, error) {
	cfg := DefaultAppConfig()

	if path := getEnv("STOREFRONT_CONFIG", ""); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrapf(err, "read config file %s", path)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parse config file %s", path)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func applyEnv(cfg *AppConfig) error {
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Env = getEnv("APP_ENV", cfg.Env)
	cfg.UpstreamBaseURL = getEnv("UPSTREAM_BASE_URL", cfg.UpstreamBaseURL)
	cfg.CartBackend = strings.ToLower(getEnv("CART_BACKEND", cfg.CartBackend))
	cfg.CartCookieName = getEnv("CART_COOKIE_NAME", cfg.CartCookieName)
	cfg.RedisURL = getEnv("REDIS_URL", cfg.RedisURL)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	if origins := getEnv("ALLOWED_ORIGINS", ""); origins != "" {
		cfg.AllowedOrigins = splitList(origins)
	}

	var err error
	if cfg.UpstreamTimeout, err = getDuration("UPSTREAM_TIMEOUT", cfg.UpstreamTimeout); err != nil {
		return err
	}
	if cfg.CartTTL, err = getDuration("CART_TTL", cfg.CartTTL); err != nil {
		return err
	}
	if cfg.RateWindow, err = getDuration("RATE_WINDOW", cfg.RateWindow); err != nil {
		return err
	}
	if cfg.PageSize, err = getInt("PAGE_SIZE", cfg.PageSize); err != nil {
		return err
	}
	if cfg.RateLimit, err = getInt("RATE_LIMIT", cfg.RateLimit); err != nil {
		return err
	}
	return nil
}

// Validate rejects configurations the server cannot start with.
func (c AppConfig) Validate() error {
	switch c.CartBackend {
	case CartBackendCookie:
	case CartBackendRedis:
		if c.RedisURL == "" {
			return errors.New("CART_BACKEND=redis requires REDIS_URL")
		}
	default:
		return errors.Errorf("unknown CART_BACKEND %q", c.CartBackend)
	}
	if c.PageSize < 1 || c.PageSize > 100 {
		return errors.Errorf("PAGE_SIZE must be within [1, 100], got %d", c.PageSize)
	}
	if c.RateLimit < 1 {
		return errors.Errorf("RATE_LIMIT must be positive, got %d", c.RateLimit)
	}
	for _, origin := range c.AllowedOrigins {
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return errors.Errorf("ALLOWED_ORIGINS entry %q must start with http:// or https://", origin)
		}
	}
	if c.UpstreamTimeout <= 0 || c.RateWindow <= 0 || c.CartTTL <= 0 {
		return errors.New("UPSTREAM_TIMEOUT, RATE_WINDOW and CART_TTL must be positive durations")
	}
	return nil
}

// WithTimeout returns a context with a 10s timeout, matching the upstream client default.
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return defaultValue, errors.Wrapf(err, "invalid %s", key)
	}
	return n, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return defaultValue, errors.Wrapf(err, "invalid %s", key)
	}
	return d, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
