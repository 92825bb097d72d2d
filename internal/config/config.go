package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port      string
	DBDSN     string
	JWTSecret string
	TokenTTL  int // minutes
	LogFile   string
}

func Load() Config {
	cfg := Config{
		Port:      getEnv("PORT", "8080"),
		DBDSN:     getEnv("DB_DSN", "feedbackhub.db"), // sqlite file in project root
		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  getEnvInt("TOKEN_TTL_MIN", 60),
		LogFile:   getEnv("LOG_FILE", "./feedbackhub.log"),
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-only-secret"
		log.Printf("[config] JWT_SECRET not set; using insecure dev secret")
	}
	log.Printf("[config] PORT=%s DB_DSN=%s TOKEN_TTL_MIN=%d LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.TokenTTL, cfg.LogFile)
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("[config] %s=%q is not a number; using %d", key, v, fallback)
	}
	return fallback
}
