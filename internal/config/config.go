package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Session  SessionConfig
	CORS     CORSConfig
	Admin    AdminConfig
	Log      LogConfig
	Env      string
}

type ServerConfig struct {
	Port int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	MigrationsDir   string
}

type SessionConfig struct {
	TTL time.Duration
	// Secret is unused by the in-memory store; it is reserved for session
	// backends that sign or encrypt their tokens.
	Secret string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type AdminConfig struct {
	Username     string
	PasswordHash string
}

type LogConfig struct {
	Level string
}

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "pizzeria")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "pizzeria")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("MIGRATIONS_DIR", "migrations")
	viper.SetDefault("SESSION_TTL", "1h")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("ENV", EnvDevelopment)

	connMaxLifetime, err := time.ParseDuration(viper.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, fmt.Errorf("parsing DB_CONN_MAX_LIFETIME: %w", err)
	}

	sessionTTL, err := time.ParseDuration(viper.GetString("SESSION_TTL"))
	if err != nil {
		return nil, fmt.Errorf("parsing SESSION_TTL: %w", err)
	}

	adminUsername := viper.GetString("ADMIN_USERNAME")
	adminPasswordHash := viper.GetString("ADMIN_PASSWORD_HASH")
	if adminUsername == "" || adminPasswordHash == "" {
		return nil, fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD_HASH are required")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
			MigrationsDir:   viper.GetString("MIGRATIONS_DIR"),
		},
		Session: SessionConfig{
			TTL:    sessionTTL,
			Secret: viper.GetString("SESSION_SECRET"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitOrigins(viper.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Admin: AdminConfig{
			Username:     adminUsername,
			PasswordHash: adminPasswordHash,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Env: viper.GetString("ENV"),
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
