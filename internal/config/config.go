package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string         `json:"env"`
	Http     HttpConfig     `json:"http"`
	Postgres PostgresConfig `json:"postgres"`
	Redis    RedisConfig    `json:"redis"`
	Alert    AlertConfig    `json:"alert"`
	Feed     FeedConfig     `json:"feed"`
	Notify   NotifyConfig   `json:"notify"`
	APIKey   string         `json:"api_key,omitempty"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	PublicBaseURL   string        `json:"public_base_url"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

type AlertConfig struct {
	// RadiusM is the proximity radius in meters. The boundary is
	// inclusive: a sighting exactly at the radius alerts.
	RadiusM float64 `json:"radius_m"`
	// MinDistanceM filters location updates that moved less than this
	// many meters since the last evaluated position.
	MinDistanceM float64       `json:"min_distance_m"`
	SessionTTL   time.Duration `json:"session_ttl"`
}

type FeedConfig struct {
	Channel      string        `json:"channel"`
	FetchTimeout time.Duration `json:"fetch_timeout"`
	BackoffBase  time.Duration `json:"backoff_base"`
	BackoffMax   time.Duration `json:"backoff_max"`
}

type NotifyConfig struct {
	// GatewayURL receives each notification intent as a JSON POST; the
	// gateway turns it into a device-local notification.
	GatewayURL string `json:"gateway_url"`
	Disabled   bool   `json:"disabled"`
	PoolSize   int    `json:"pool_size"`
}

func Load() (*Config, error) {

	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			PublicBaseURL:   getEnv("HTTP_PUBLIC_BASE_URL", "http://localhost:8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "encontrados_db"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Alert: AlertConfig{
			RadiusM:      getEnvFloat("ALERT_RADIUS_M", 200),
			MinDistanceM: getEnvFloat("LOCATION_MIN_DISTANCE_M", 10),
			SessionTTL:   getEnvDuration("ALERT_SESSION_TTL", 6*time.Hour),
		},
		Feed: FeedConfig{
			Channel:      getEnv("FEED_CHANNEL", "sightings:new"),
			FetchTimeout: getEnvDuration("FEED_FETCH_TIMEOUT", 15*time.Second),
			BackoffBase:  getEnvDuration("FEED_BACKOFF_BASE", 500*time.Millisecond),
			BackoffMax:   getEnvDuration("FEED_BACKOFF_MAX", 30*time.Second),
		},
		Notify: NotifyConfig{
			GatewayURL: getEnv("NOTIFY_GATEWAY_URL", ""),
			Disabled:   getEnvBool("NOTIFY_DISABLED", false),
			PoolSize:   getEnvInt("NOTIFY_POOL_SIZE", 2),
		},
		APIKey: getEnv("API_KEY", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.Float64("alert_radius_m", cfg.Alert.RadiusM))

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}

	if c.Alert.RadiusM <= 0 {
		return errors.New("ALERT_RADIUS_M must be positive")
	}

	if c.Alert.MinDistanceM < 0 {
		return errors.New("LOCATION_MIN_DISTANCE_M must not be negative")
	}

	if !c.Notify.Disabled && c.Notify.GatewayURL == "" {
		return errors.New("NOTIFY_GATEWAY_URL required unless NOTIFY_DISABLED=true")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
