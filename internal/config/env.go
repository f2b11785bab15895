package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is read when present; real environment variables win.
const DefaultEnvFile = "config/config.env"

type Env struct {
	AppEnv   string
	AppAddr  string
	GinMode  string
	LogLevel string

	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBRetries    int
	DBRetryDelay int // seconds

	JWTSecret   string
	CORSOrigins []string
	CatalogPath string
}

// LoadEnv reads the optional env files and then the process environment.
func LoadEnv(files ...string) Env {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			// godotenv.Load never overrides variables that are already set
			_ = godotenv.Load(f)
		}
	}

	return Env{
		AppEnv:   getenv("APP_ENV", "local"),
		AppAddr:  getenv("APP_ADDR", ":8080"),
		GinMode:  getenv("GIN_MODE", ""),
		LogLevel: getenv("LOG_LEVEL", ""),

		DBHost:       getenv("DB_HOST", "127.0.0.1"),
		DBPort:       getenv("DB_PORT", "3306"),
		DBUser:       getenv("DB_USER", "root"),
		DBPassword:   getenv("DB_PASSWORD", ""),
		DBName:       getenv("DB_NAME", "marketplace"),
		DBRetries:    getenvInt("DB_CONNECT_RETRIES", 5),
		DBRetryDelay: getenvInt("DB_RETRY_DELAY_SEC", 2),

		JWTSecret:   getenv("JWT_SECRET", "change-me"),
		CORSOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173,http://localhost:3000")),
		CatalogPath: getenv("CATALOG_PATH", ""),
	}
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func splitList(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
