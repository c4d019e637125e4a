package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Postgres PostgresConfig
	Gemini   GeminiConfig
	Auth     AuthConfig
	Chat     ChatConfig
	Cache    CacheConfig
	RateLim  RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// DSN builds the lib/pq connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

type GeminiConfig struct {
	APIKey        string
	Model         string
	APIURL        string
	Timeout       time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
}

type AuthConfig struct {
	JWTSecret string
	JWTExpiry time.Duration
}

type ChatConfig struct {
	MaxSessions int
}

type CacheConfig struct {
	UniversityDetailsSize int
}

type RateLimitConfig struct {
	RequestsPerMinute int
	Burst             int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.Database = viper.GetString("postgres.database")
	cfg.Postgres.SSLMode = viper.GetString("postgres.ssl_mode")

	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.APIURL = viper.GetString("gemini.api_url")
	cfg.Gemini.Timeout = viper.GetDuration("gemini.timeout")
	cfg.Gemini.RetryAttempts = viper.GetInt("gemini.retry_attempts")
	cfg.Gemini.RetryDelay = viper.GetDuration("gemini.retry_delay")
	if key := viper.GetString("gemini_api_key"); key != "" {
		cfg.Gemini.APIKey = key
	}
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is not configured - set gemini.api_key or GEMINI_API_KEY")
	}

	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	cfg.Auth.JWTExpiry = viper.GetDuration("auth.jwt_expiry")
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT secret is not configured - set auth.jwt_secret or JWT_SECRET")
	}

	cfg.Chat.MaxSessions = viper.GetInt("chat.max_sessions")
	cfg.Cache.UniversityDetailsSize = viper.GetInt("cache.university_details_size")
	cfg.RateLim.RequestsPerMinute = viper.GetInt("rate_limit.requests_per_minute")
	cfg.RateLim.Burst = viper.GetInt("rate_limit.burst")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.database", "nextstep")
	viper.SetDefault("postgres.ssl_mode", "disable")

	viper.SetDefault("gemini.model", "gemini-1.5-flash")
	viper.SetDefault("gemini.timeout", "30s")
	viper.SetDefault("gemini.retry_attempts", 3)
	viper.SetDefault("gemini.retry_delay", "1s")

	viper.SetDefault("auth.jwt_expiry", "24h")

	viper.SetDefault("chat.max_sessions", 1000)
	viper.SetDefault("cache.university_details_size", 500)
	viper.SetDefault("rate_limit.requests_per_minute", 30)
	viper.SetDefault("rate_limit.burst", 5)
}
