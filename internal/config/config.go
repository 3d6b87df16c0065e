package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port          string
	AllowOrigins  string
	JWTSecret     string
	TokenExpiry   time.Duration
	AdminPhone    string
	AdminPassword string
	SchemaDir     string
	ReqTimeoutSec int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" { return v }
	return def
}

func atoi(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil { return i }
	}
	return def
}

func Load() *Config {
	expiry, err := time.ParseDuration(getenv("TOKEN_EXPIRY", "24h"))
	if err != nil {
		expiry = 24 * time.Hour
	}
	return &Config{
		Port:          getenv("PORT", "8080"),
		AllowOrigins:  getenv("ALLOW_ORIGINS", "*"),
		JWTSecret:     getenv("JWT_SECRET", "dev-insecure-secret-change"),
		TokenExpiry:   expiry,
		AdminPhone:    getenv("ADMIN_PHONE", "9999999999"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
		SchemaDir:     getenv("SCHEMA_DIR", "./schemas"),
		ReqTimeoutSec: atoi("REQUEST_TIMEOUT_SECONDS", 30),
	}
}
