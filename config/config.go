package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config agrupa toda la configuración del proceso, leída una sola vez al arrancar.
type Config struct {
	AppEnv    string
	Port      string
	APIPrefix string
	LogLevel  string

	DB Database

	JWTSecret    string
	JWTExpiresIn time.Duration

	RequestTimeout     time.Duration
	CORSAllowedOrigins []string

	SeedAdminEmail    string
	SeedAdminPassword string
}

// Database describe la conexión y los límites del pool.
type Database struct {
	Driver          string
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

const devJWTSecret = "dev-secret"

// Load lee la configuración desde variables de entorno.
func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:    GetEnv("APP_ENV", "development"),
		Port:      GetEnv("PORT", "3000"),
		APIPrefix: strings.TrimRight(GetEnv("API_PREFIX", "/api"), "/"),
		LogLevel:  strings.ToLower(GetEnv("LOG_LEVEL", "info")),
		DB: Database{
			Driver:          strings.ToLower(GetEnv("DB_DRIVER", "mysql")),
			Host:            GetEnv("DB_HOST", "localhost"),
			User:            GetEnv("DB_USER", "root"),
			Password:        GetEnv("DB_PASSWORD", ""),
			Name:            GetEnv("DB_NAME", "holding_triplea"),
			SSLMode:         GetEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:    GetEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    GetEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: GetEnvAsDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			AutoMigrate:     GetEnvAsBool("DB_AUTO_MIGRATE", true),
		},
		JWTSecret:          GetEnv("JWT_SECRET", ""),
		JWTExpiresIn:       GetEnvAsDuration("JWT_EXPIRES_IN", 2*time.Hour),
		RequestTimeout:     GetEnvAsDuration("REQUEST_TIMEOUT", 15*time.Second),
		CORSAllowedOrigins: GetEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		SeedAdminEmail:     GetEnv("SEED_ADMIN_EMAIL", "admin@holding.cl"),
		SeedAdminPassword:  GetEnv("SEED_ADMIN_PASSWORD", "admin123"),
	}

	switch cfg.DB.Driver {
	case "mysql":
		cfg.DB.Port = GetEnvAsInt("DB_PORT", 3306)
	case "postgres":
		cfg.DB.Port = GetEnvAsInt("DB_PORT", 5432)
	default:
		return nil, fmt.Errorf("invalid DB_DRIVER %q: expected mysql or postgres", cfg.DB.Driver)
	}

	if cfg.JWTSecret == "" {
		if cfg.AppEnv != "development" {
			return nil, errors.New("JWT_SECRET is required outside development")
		}
		cfg.JWTSecret = devJWTSecret
	}

	if cfg.JWTExpiresIn <= 0 {
		return nil, fmt.Errorf("invalid JWT_EXPIRES_IN: %s", cfg.JWTExpiresIn)
	}

	return cfg, nil
}

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func GetEnvAsBool(key string, fallback bool) bool {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}

// GetEnvAsDuration acepta el formato de time.ParseDuration ("2h", "15s").
func GetEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return fallback
}

// GetEnvAsSlice separa por comas e ignora elementos vacíos.
func GetEnvAsSlice(key string, fallback []string) []string {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return fallback
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
