// Package config loads service settings from an env file and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Postgres  PostgresConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	JWT       JWTConfig
	Media     MediaConfig
	ShortLink ShortLinkConfig
}

type AppConfig struct {
	Host     string
	Port     string
	LogLevel string
	Debug    bool
	BaseURL  string // public address used in absolute links
}

type PostgresConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DB           string
	MaxOpenConns int
	MaxIdleConns int
}

// DSN returns the pgx connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.DB)
}

type RedisConfig struct {
	Host         string
	Port         int
	DB           int
	Password     string
	PoolSize     int
	MinIdleConns int
}

// Addr returns host:port.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type KafkaConfig struct {
	Brokers []string // empty disables event publishing
	Topic   string
}

type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
}

type MediaConfig struct {
	Root    string
	BaseURL string
}

type ShortLinkConfig struct {
	Expiration time.Duration // zero keeps links forever
}

// Load reads path (when it exists) into the environment and builds the
// configuration, falling back to defaults for unset variables.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var err error
	getInt := func(key, defaultValue string) int {
		v, convErr := strconv.Atoi(getEnv(key, defaultValue))
		if convErr != nil && err == nil {
			err = fmt.Errorf("%s: %w", key, convErr)
		}
		return v
	}

	cfg := &Config{}

	// Application config
	cfg.App.Host = getEnv("APP_HOST", "localhost")
	cfg.App.Port = getEnv("APP_PORT", "8080")
	cfg.App.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.App.Debug = getEnv("APP_DEBUG", "false") == "true"
	cfg.App.BaseURL = strings.TrimRight(
		getEnv("APP_BASE_URL", fmt.Sprintf("http://%s:%s", cfg.App.Host, cfg.App.Port)), "/")

	// PostgreSQL config
	cfg.Postgres.Host = getEnv("POSTGRES_HOST", "localhost")
	cfg.Postgres.Port = getInt("POSTGRES_PORT", "5432")
	cfg.Postgres.User = getEnv("POSTGRES_USER", "foodgram")
	cfg.Postgres.Password = getEnv("POSTGRES_PASSWORD", "foodgram")
	cfg.Postgres.DB = getEnv("POSTGRES_DB", "foodgram")
	cfg.Postgres.MaxOpenConns = getInt("POSTGRES_MAX_OPEN_CONNS", "16")
	cfg.Postgres.MaxIdleConns = getInt("POSTGRES_MAX_IDLE_CONNS", "8")

	// Redis config
	cfg.Redis.Host = getEnv("REDIS_HOST", "localhost")
	cfg.Redis.Port = getInt("REDIS_PORT", "6379")
	cfg.Redis.DB = getInt("REDIS_DB", "0")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.PoolSize = getInt("REDIS_POOL_SIZE", "10")
	cfg.Redis.MinIdleConns = getInt("REDIS_MIN_IDLE_CONNS", "2")

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.Kafka.Brokers = append(cfg.Kafka.Brokers, b)
			}
		}
	}
	cfg.Kafka.Topic = getEnv("KAFKA_TOPIC", "foodgram.events")

	// JWT config
	cfg.JWT.SecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	cfg.JWT.Expiration = time.Duration(getInt("JWT_EXP_SECOND", "86400")) * time.Second

	// Media config
	cfg.Media.Root = getEnv("MEDIA_ROOT", "media")
	cfg.Media.BaseURL = strings.TrimRight(getEnv("MEDIA_BASE_URL", cfg.App.BaseURL+"/media"), "/")

	// Short link config
	cfg.ShortLink.Expiration = time.Duration(getInt("SHORT_LINK_EXP_SECOND", "0")) * time.Second

	if err != nil {
		return nil, err
	}
	return cfg, nil
}
