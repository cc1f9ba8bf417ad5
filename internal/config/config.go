package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	DB       DBConfig
	Server   ServerConfig
	Security SecurityConfig
}

type DBConfig struct {
	Driver       string
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	SQLitePath   string
	MaxOpenConns int
	MaxIdleConns int
}

type ServerConfig struct {
	Port             string
	CORSAllowOrigins string
}

type SecurityConfig struct {
	BcryptCost int
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; variables already set win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DB: DBConfig{
			Driver:       strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "quickcounsel"),
			Password:     getEnv("DB_PASS", getEnv("DB_PASSWORD", "quickcounsel_secret")),
			Name:         getEnv("DB_NAME", "quickcounsel"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			SQLitePath:   getEnv("SQLITE_PATH", "quickcounsel.db"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
		},
		Server: ServerConfig{
			Port:             getEnv("PORT", getEnv("SERVER_PORT", "8080")),
			CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		},
		Security: SecurityConfig{
			BcryptCost: getEnvAsInt("BCRYPT_COST", 10),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}
