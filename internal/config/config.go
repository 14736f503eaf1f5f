package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lk16/reversi/internal/search"
)

const (
	// AnalysisTTLSeconds is how long search results stay in Redis.
	AnalysisTTLSeconds = 24 * 60 * 60

	// GameOverTopic is the Kafka topic game results are published to.
	GameOverTopic = "reversi-games"
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost     string
	ServerPort     string
	RedisURL       string
	PostgresURL    string
	KafkaBrokers   []string
	Token          string
	DefaultDepth   search.Difficulty
	ParallelSearch bool
	Prefork        bool
}

// LoadServerConfig loads configuration from environment variables.
// A .env file in the working directory is loaded first if it exists.
func LoadServerConfig() *ServerConfig {
	loadDotEnv()

	return &ServerConfig{
		ServerHost:     getEnvMust("REVERSI_SERVER_HOST"),
		ServerPort:     getEnvMust("REVERSI_SERVER_PORT"),
		RedisURL:       os.Getenv("REVERSI_REDIS_URL"),
		PostgresURL:    os.Getenv("REVERSI_POSTGRES_URL"),
		KafkaBrokers:   getEnvList("REVERSI_KAFKA_BROKERS"),
		Token:          os.Getenv("REVERSI_TOKEN"),
		DefaultDepth:   getEnvDifficulty("REVERSI_DEFAULT_DEPTH", search.Medium),
		ParallelSearch: getEnvBool("REVERSI_PARALLEL_SEARCH", false),
		Prefork:        getEnvBool("REVERSI_PREFORK", false),
	}
}

func loadDotEnv() {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("Cannot load .env file", "error", err)
		os.Exit(1)
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

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if value != "true" && value != "false" {
		slog.Error("Cannot load environment variable, it must be \"true\" or \"false\"", "key", key, "value", value)
		os.Exit(1)
	}

	return value == "true"
}

// getEnvList splits a comma separated environment variable, dropping empty items.
func getEnvList(key string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func getEnvDifficulty(key string, defaultValue search.Difficulty) search.Difficulty {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	difficulty, err := search.ParseDifficulty(value)
	if err != nil {
		slog.Error("Cannot load environment variable", "key", key, "value", value, "error", err)
		os.Exit(1)
	}

	return difficulty
}
