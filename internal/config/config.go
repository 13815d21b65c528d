package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	RedisURL     string
	NatsURL      string
	NatsToken    string
	LogLevel     string
	GeminiAPIKey string
	GeminiModel  string
	OverpassURL  string
	APIToken     string
}

func Load() Config {
	return Config{
		Port:         envInt("HORIZON_PORT", 8600),
		DatabaseURL:  envStr("DATABASE_URL", ""),
		RedisURL:     envStr("REDIS_URL", ""),
		NatsURL:      envStr("NATS_URL", ""),
		NatsToken:    envStr("NATS_TOKEN", ""),
		LogLevel:     envStr("LOG_LEVEL", "info"),
		GeminiAPIKey: envStr("GEMINI_API_KEY", ""),
		GeminiModel:  envStr("HORIZON_MODEL", "gemini-2.0-flash"),
		OverpassURL:  envStr("OVERPASS_URL", "https://overpass-api.de/api/interpreter"),
		APIToken:     envStr("HORIZON_API_TOKEN", ""),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
