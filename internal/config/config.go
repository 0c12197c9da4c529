package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

const (
	DefaultBoardSize = 8
	MaxBoardSize     = 64
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost  string
	ServerPort  string
	Token       string
	Prefork     bool
	RedisURL    string
	PostgresURL string
}

// LoadServerConfig loads configuration from environment variables.
func LoadServerConfig() *ServerConfig {
	loadDotEnv()

	return &ServerConfig{
		ServerHost:  getEnvMust("OTHELLO_SERVER_HOST"),
		ServerPort:  getEnvMust("OTHELLO_SERVER_PORT"),
		Token:       getEnvMust("OTHELLO_SERVER_TOKEN"),
		Prefork:     getEnvMustBool("OTHELLO_SERVER_PREFORK"),
		RedisURL:    os.Getenv("OTHELLO_REDIS_URL"),
		PostgresURL: os.Getenv("OTHELLO_POSTGRES_URL"),
	}
}

// ArenaConfig holds what the arena needs to submit results to the server.
type ArenaConfig struct {
	ServerURL string
	Token     string
}

// LoadArenaConfig loads the arena configuration from environment variables.
func LoadArenaConfig() *ArenaConfig {
	loadDotEnv()

	return &ArenaConfig{
		ServerURL: getEnvMust("OTHELLO_SERVER_URL"),
		Token:     getEnvMust("OTHELLO_SERVER_TOKEN"),
	}
}

// loadDotEnv loads a .env file from the working directory, if there is one.
// Variables that are already set are not overwritten.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to load .env file", "error", err)
	}
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

func getEnvMustBool(key string) bool {
	value := getEnvMust(key)

	if value != "true" && value != "false" {
		slog.Error("Cannot load environment variable, it must be \"true\" or \"false\"", "key", key, "value", value)
		os.Exit(1)
	}

	return value == "true"
}
