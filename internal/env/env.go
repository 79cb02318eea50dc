// Package env provides centralized environment variable management.
package env

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/viper"
)

// Config holds all application configuration from environment variables.
type Config struct {
	// Server configuration
	Port      string
	RateLimit int
	JWTSecret string

	// Discord bot configuration
	DiscordToken string
	DiscordAppID string

	// Judge/solver configuration
	JudgeBaseURL    string
	JudgeToken      string
	Concurrency     int
	RNGSeed         int64
	StorageBackend  string // "memory" (default) or "mongo"
	MongoURI        string
	MongoDatabase   string
	ReferenceMapsDir string // optional: enables the reference-game map loader
}

// LoadServerConfig loads configuration required for the HTTP server.
func LoadServerConfig() (*Config, error) {
	cfg := &Config{
		Port:             getEnvOrDefault("PORT", "8080"),
		RateLimit:        getEnvAsIntOrDefault("RATE_LIMIT", 20),
		JWTSecret:        getEnvOrDefault("JWT_SECRET", "secret"),
		StorageBackend:   getEnvOrDefault("STORAGE_BACKEND", "memory"),
		MongoURI:         getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:    getEnvOrDefault("MONGO_DATABASE", "battleship"),
		ReferenceMapsDir: os.Getenv("REFERENCE_MAPS_DIR"),
		RNGSeed:          getEnvAsInt64OrDefault("RNG_SEED", 0),
	}

	return cfg, nil
}

// LoadClientConfig loads configuration required to drive the solver
// against a judge (local or remote).
func LoadClientConfig() (*Config, error) {
	cfg := &Config{
		JudgeBaseURL: getEnvOrDefault("JUDGE_BASE_URL", "http://localhost:8080"),
		JudgeToken:   os.Getenv("JUDGE_TOKEN"),
		Concurrency:  getEnvAsIntOrDefault("CONCURRENCY", 1),
		RNGSeed:      getEnvAsInt64OrDefault("RNG_SEED", 0),
	}

	return cfg, nil
}

// LoadFromFile reads name (without extension) from the working directory
// or ./data/config via viper, following the teacher pack's
// Knoblauchpilze-sogserver arguments.ParseConfig convention. Environment
// variables prefixed BATTLESHIP_ (e.g. BATTLESHIP_MONGO_URI) override the
// file's values. Keys absent from both are left at their zero value; the
// defaults of LoadServerConfig and LoadClientConfig are not applied. No
// command in this repository calls it; the servers and clients load their
// configuration from plain environment variables.
func LoadFromFile(name string) (*Config, error) {
	viper.SetEnvPrefix("BATTLESHIP")
	viper.AutomaticEnv()
	viper.SetConfigName(name)
	viper.AddConfigPath(".")
	viper.AddConfigPath("./data/config")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("env: reading config %q: %w", name, err)
	}

	cfg := &Config{
		Port:             viper.GetString("port"),
		RateLimit:        viper.GetInt("rate_limit"),
		JWTSecret:        viper.GetString("jwt_secret"),
		JudgeBaseURL:     viper.GetString("judge_base_url"),
		JudgeToken:       viper.GetString("judge_token"),
		Concurrency:      viper.GetInt("concurrency"),
		RNGSeed:          viper.GetInt64("rng_seed"),
		StorageBackend:   viper.GetString("storage_backend"),
		MongoURI:         viper.GetString("mongo_uri"),
		MongoDatabase:    viper.GetString("mongo_database"),
		ReferenceMapsDir: viper.GetString("reference_maps_dir"),
	}

	return cfg, nil
}

// LoadBotConfig loads configuration required for the Discord bot.
func LoadBotConfig() (*Config, error) {
	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN environment variable is required")
	}

	appID := os.Getenv("DISCORD_APP_ID")
	if appID == "" {
		return nil, fmt.Errorf("DISCORD_APP_ID environment variable is required")
	}

	cfg := &Config{
		DiscordToken: token,
		DiscordAppID: appID,
		JWTSecret:    getEnvOrDefault("JWT_SECRET", "secret"),
		JudgeBaseURL: getEnvOrDefault("WATCH_URL", "http://localhost:9000"),
	}

	return cfg, nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvAsInt64OrDefault(key string, defaultValue int64) int64 {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}
