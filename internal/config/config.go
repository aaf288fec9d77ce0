package config

import (
	"log"
	"os"
)

type Config struct {
	DBPath     string
	RedisAddr  string
	Port       string
	AdminToken string
}

func Load() *Config {
	cfg := &Config{
		DBPath:     getEnv("DB_PATH", "bankroll.sqlite"),
		RedisAddr:  getEnv("REDIS_ADDR", "localhost:6379"),
		Port:       getEnv("PORT", "8080"),
		AdminToken: os.Getenv("ADMIN_TOKEN"),
	}

	if cfg.AdminToken == "" {
		log.Fatal("Missing critical environment variable ADMIN_TOKEN")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
