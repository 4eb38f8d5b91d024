package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr          string
	Environment   string
	LogLevel      string
	JWTSigningKey string
	TokenTTL      time.Duration
	MetricsToken  string
	CORSOrigins   []string

	Database  DatabaseConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	AppCode   AppCodeConfig
	RateLimit RateLimitConfig
	Bootstrap BootstrapAdmin
}

// DatabaseConfig selects the relational store. An empty URL runs on in-memory stores.
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	TxTimeout       time.Duration
}

// RedisConfig configures the application-code reservation backend.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig configures the audit event publisher. Empty brokers log events only.
type KafkaConfig struct {
	Brokers      []string
	AuditTopic   string
	Partitions   int32
	Replicas     int16
	ClientID     string
	ProduceLimit time.Duration
}

// AppCodeConfig bounds application code generation.
type AppCodeConfig struct {
	Min            int
	Span           int
	MaxAttempts    int
	ReservationTTL time.Duration
}

// RateLimitConfig bounds login and public submission attempts per client IP.
type RateLimitConfig struct {
	Disabled       bool
	AuthRequests   int
	AuthWindow     time.Duration
	PublicRequests int
	PublicWindow   time.Duration
}

// BootstrapAdmin seeds the first administrator when both fields are set.
type BootstrapAdmin struct {
	Email    string
	Password string
}

// FromEnv builds a Server config from environment variables so main stays lean.
// A .env file in the working directory is loaded first when present.
func FromEnv() (Server, error) {
	_ = godotenv.Load()

	cfg := Server{
		Addr:          envString("LSC_ADDR", ":8080"),
		Environment:   envString("LSC_ENV", "local"),
		LogLevel:      envString("LOG_LEVEL", "info"),
		JWTSigningKey: envString("JWT_SIGNING_KEY", ""),
		MetricsToken:  os.Getenv("METRICS_TOKEN"),
		CORSOrigins:   splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		Database: DatabaseConfig{
			URL:             os.Getenv("DATABASE_URL"),
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Kafka: KafkaConfig{
			Brokers:    splitList(os.Getenv("KAFKA_BROKERS")),
			AuditTopic: envString("KAFKA_AUDIT_TOPIC", "lsc.audit"),
			ClientID:   envString("KAFKA_CLIENT_ID", "lscmis"),
		},
		Bootstrap: BootstrapAdmin{
			Email:    os.Getenv("BOOTSTRAP_ADMIN_EMAIL"),
			Password: os.Getenv("BOOTSTRAP_ADMIN_PASSWORD"),
		},
	}

	var err error
	if cfg.TokenTTL, err = envDuration("TOKEN_TTL", 8*time.Hour); err != nil {
		return Server{}, err
	}
	if cfg.Database.TxTimeout, err = envDuration("DB_TX_TIMEOUT", 5*time.Second); err != nil {
		return Server{}, err
	}
	if cfg.Kafka.ProduceLimit, err = envDuration("KAFKA_PRODUCE_TIMEOUT", 5*time.Second); err != nil {
		return Server{}, err
	}
	partitions, err := envInt("KAFKA_AUDIT_PARTITIONS", 3)
	if err != nil {
		return Server{}, err
	}
	cfg.Kafka.Partitions = int32(partitions)
	replicas, err := envInt("KAFKA_AUDIT_REPLICAS", 1)
	if err != nil {
		return Server{}, err
	}
	cfg.Kafka.Replicas = int16(replicas)

	if cfg.AppCode.Min, err = envInt("APP_CODE_MIN", 10000); err != nil {
		return Server{}, err
	}
	if cfg.AppCode.Span, err = envInt("APP_CODE_SPAN", 90000); err != nil {
		return Server{}, err
	}
	if cfg.AppCode.MaxAttempts, err = envInt("APP_CODE_MAX_ATTEMPTS", 15); err != nil {
		return Server{}, err
	}
	if cfg.AppCode.ReservationTTL, err = envDuration("APP_CODE_RESERVATION_TTL", 30*time.Second); err != nil {
		return Server{}, err
	}

	if cfg.RateLimit.Disabled, err = envBool("RATE_LIMIT_DISABLED", false); err != nil {
		return Server{}, err
	}
	if cfg.RateLimit.AuthRequests, err = envInt("RATE_LIMIT_AUTH_REQUESTS", 10); err != nil {
		return Server{}, err
	}
	if cfg.RateLimit.AuthWindow, err = envDuration("RATE_LIMIT_AUTH_WINDOW", time.Minute); err != nil {
		return Server{}, err
	}
	if cfg.RateLimit.PublicRequests, err = envInt("RATE_LIMIT_PUBLIC_REQUESTS", 30); err != nil {
		return Server{}, err
	}
	if cfg.RateLimit.PublicWindow, err = envDuration("RATE_LIMIT_PUBLIC_WINDOW", time.Minute); err != nil {
		return Server{}, err
	}

	if cfg.JWTSigningKey == "" {
		if cfg.Environment != "local" {
			return Server{}, fmt.Errorf("JWT_SIGNING_KEY is required outside local environment")
		}
		// development default, never used outside LSC_ENV=local
		cfg.JWTSigningKey = "dev-secret-key-change-in-production"
	}
	if cfg.AppCode.Span <= 0 || cfg.AppCode.MaxAttempts <= 0 {
		return Server{}, fmt.Errorf("APP_CODE_SPAN and APP_CODE_MAX_ATTEMPTS must be positive")
	}

	return cfg, nil
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// DefaultAppCodeConfig matches the FromEnv defaults.
func DefaultAppCodeConfig() AppCodeConfig {
	return AppCodeConfig{Min: 10000, Span: 90000, MaxAttempts: 15, ReservationTTL: 30 * time.Second}
}
