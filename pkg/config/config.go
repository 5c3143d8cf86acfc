package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int
	HashCost      int
}

// Load reads environment variables, optionally from a .env file if present.
// JWTSecret and DatabaseURL have no defaults; callers must treat them as
// required before accepting traffic.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTIssuer:     getEnv("JWT_ISSUER", "accounts-service"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 2*24*60),
		HashCost:      getEnvInt("HASH_COST", bcrypt.DefaultCost),
	}
	if cfg.HashCost < bcrypt.MinCost {
		cfg.HashCost = bcrypt.MinCost
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
