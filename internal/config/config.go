package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from its environment at startup.
type Config struct {
	Port string

	// DBDriver selects the storage engine: "sqlite" (default, single
	// local file) or "postgres".
	DBDriver string
	DBPath   string // sqlite file path
	DBHost   string
	DBPort   string
	DBUser   string
	DBPass   string
	DBName   string
	DBSSL    string
	DBTz     string

	// Chat relay settings.
	OpenAIKey string
	ChatModel string
}

// Load reads configuration from a .env file (if present) and the
// process environment, applying defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	return Config{
		Port:      getEnv("PORT", "5000"),
		DBDriver:  getEnv("DB_DRIVER", "sqlite"),
		DBPath:    getEnv("DB_PATH", "treksafe.db"),
		DBHost:    getEnv("DB_HOST", "localhost"),
		DBPort:    getEnv("DB_PORT", "5432"),
		DBUser:    getEnv("DB_USER", "postgres"),
		DBPass:    getEnv("DB_PASSWORD", "password"),
		DBName:    getEnv("DB_NAME", "treksafe"),
		DBSSL:     getEnv("DB_SSLMODE", "disable"),
		DBTz:      getEnv("DB_TIMEZONE", "UTC"),
		OpenAIKey: getEnv("OPENAI_API_KEY", ""),
		ChatModel: getEnv("CHAT_MODEL", "gpt-4o-mini"),
	}
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
