package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DatabasePath string

	// Together AI
	TogetherAPIKey  string
	UpstreamTimeout time.Duration

	// Rate limiting
	ChatRateLimit  int
	ChatRateWindow time.Duration

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:            getEnvOrDefault("PORT", "8080"),
		Env:             getEnvOrDefault("ENV", "development"),
		DatabasePath:    getEnvOrDefault("DATABASE_PATH", "chatbot.db"),
		TogetherAPIKey:  mustGetEnv("TOGETHER_API_KEY"),
		UpstreamTimeout: time.Duration(getEnvAsIntOrDefault("UPSTREAM_TIMEOUT_SECONDS", 30)) * time.Second,
		ChatRateLimit:   getEnvAsIntOrDefault("CHAT_RATE_LIMIT", 5),
		ChatRateWindow:  time.Duration(getEnvAsIntOrDefault("CHAT_RATE_WINDOW_SECONDS", 60)) * time.Second,
		FrontendURL:     getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
