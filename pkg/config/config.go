package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	FirebaseProject string
	FirebaseApiKey  string
	StorageBucket   string
	Environment     string

	// LegacyMessagePagination preserves the historical behavior of dropping the
	// first message of every fetched page. Off by default.
	LegacyMessagePagination bool
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:              getEnv("SERVER_PORT", "8080"),
		FirebaseProject:         getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseApiKey:          getEnv("FIREBASE_API_KEY", ""),
		StorageBucket:           getEnv("STORAGE_BUCKET", ""),
		Environment:             getEnv("ENVIRONMENT", "development"),
		LegacyMessagePagination: getEnvAsBool("LEGACY_MESSAGE_PAGINATION", false),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		return value == "true" || value == "1"
	}
	return defaultValue
}
