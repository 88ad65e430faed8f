package configs

import (
	"os"
)

type ServerConfig struct {
	Port          string
	SessionSecret string
	Mode          string
}

func LoadServerConfig() ServerConfig {
	return ServerConfig{
		Port:          getEnvOrDefault("PORT", "8080"),
		SessionSecret: getEnvOrDefault("SESSION_SECRET", "change-me"),
		Mode:          getEnvOrDefault("GIN_MODE", "debug"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
