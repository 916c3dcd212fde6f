package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	JwtSecret          string
	Issuer             string
	AccessTokenExpire  time.Duration
	ServerPort         string
	Env                string
	GinMode            string
	DbDriver           string
	DbHost             string
	DbPort             string
	DbUser             string
	DbPassword         string
	DbName             string
	DbSqlitePath       string
	FormGenInterval    time.Duration
	FormGenRunOnStart  bool
	AuditRetentionDays int
	RedisAddr          string
	MinioEnabled       bool
	MinioEndpoint      string
	MinioAccessKey     string
	MinioSecretKey     string
	MinioUseSSL        bool
	MinioBucket        string
	AdminUsername      string
	AdminPassword      string
)

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "adoption-tracker")
	AccessTokenExpire = time.Duration(getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute
	ServerPort = getEnv("SERVER_PORT", "8080")
	Env = getEnv("ENV", "development")
	GinMode = getEnv("GIN_MODE", "release")

	DbDriver = strings.ToLower(getEnv("DB_DRIVER", "sqlite"))
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "animal_tracking")
	DbSqlitePath = getEnv("DB_SQLITE_PATH", "animal_tracking.db")

	FormGenInterval = time.Duration(getEnvFloat("FORM_GEN_INTERVAL_HOURS", 12) * float64(time.Hour))
	FormGenRunOnStart = getEnvBool("FORM_GEN_RUN_ON_START", false)
	AuditRetentionDays = getEnvInt("AUDIT_RETENTION_DAYS", 30)
	RedisAddr = getEnv("REDIS_ADDR", "")

	MinioEnabled = getEnvBool("MINIO_ENABLED", false)
	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "form-sweeps")
	MinioUseSSL = getEnvBool("MINIO_USE_SSL", false)

	AdminUsername = getEnv("ADMIN_USERNAME", "admin")
	AdminPassword = getEnv("ADMIN_PASSWORD", "admin123")
}

// IsProduction reports whether structured JSON logging should be used.
func IsProduction() bool {
	return Env == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v <= 0 {
		slog.Warn("invalid integer setting, using default", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return v
}

func getEnvFloat(key string, fallback float64) float64 {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v <= 0 {
		slog.Warn("invalid numeric setting, using default", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return v
}
