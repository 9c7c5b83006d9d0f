package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	// WebRoot is the public site root, used for profile links.
	WebRoot string
	// APIRoot is the base of the statistics API. The API is public, no
	// credentials are involved.
	APIRoot    string
	DBPath     string
	ServerPort string
	LogLevel   string
	CacheTTL   time.Duration
}

const defaultWebRoot = "https://sc2pulse.nephest.com/sc2"

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	webRoot := getEnv("PULSE_WEB_ROOT", defaultWebRoot)

	cfg := &Config{
		WebRoot:    webRoot,
		APIRoot:    getEnv("PULSE_API_ROOT", webRoot+"/api"),
		DBPath:     getEnv("DB_PATH", "pulse-cache.db"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		CacheTTL:   getEnvDuration("CACHE_TTL", 5*time.Minute),
	}

	if cfg.WebRoot == "" || cfg.APIRoot == "" {
		return nil, fmt.Errorf("PULSE_WEB_ROOT and PULSE_API_ROOT must not be empty")
	}

	logger.Info().
		Str("web_root", cfg.WebRoot).
		Str("api_root", cfg.APIRoot).
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Dur("cache_ttl", cfg.CacheTTL).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

var Module = fx.Provide(Load)
