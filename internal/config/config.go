package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nutricoach/nutricoach-api/internal/logger"
)

type Config struct {
	Server ServerConfig
	DB     DBConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Port    string
	GinMode string
	// MaxPageSize caps the limit accepted by list endpoints.
	MaxPageSize int
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type LoggerConfig struct {
	Level      logger.LogLevel
	OutputPath string
	Format     string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.LevelDebug
	case "info":
		return logger.LevelInfo
	case "warn", "warning":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

func Load() (*Config, error) {
	maxPageSize, err := strconv.Atoi(getEnvOrDefault("MAX_PAGE_SIZE", "100"))
	if err != nil || maxPageSize < 1 {
		return nil, fmt.Errorf("invalid MAX_PAGE_SIZE: %q", os.Getenv("MAX_PAGE_SIZE"))
	}

	return &Config{
		Server: ServerConfig{
			Port:        getEnvOrDefault("PORT", "8080"),
			GinMode:     getEnvOrDefault("GIN_MODE", "release"),
			MaxPageSize: maxPageSize,
		},
		DB: DBConfig{
			Host:     getEnvOrDefault("DB_HOST", "localhost"),
			Port:     getEnvOrDefault("DB_PORT", "5432"),
			User:     getEnvOrDefault("DB_USER", "postgres"),
			Password: getEnvOrDefault("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrDefault("DB_NAME", "nutricoach"),
			SSLMode:  getEnvOrDefault("DB_SSLMODE", "disable"),
		},
		Logger: LoggerConfig{
			Level:      parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "stdout"),
			Format:     getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}, nil
}
