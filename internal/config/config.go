package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/ugaemi/comecocos/internal/game"
)

type Config struct {
	LogLevel  string
	LogFormat string

	MovementInterval    time.Duration
	ClockInterval       time.Duration
	ReportInterval      time.Duration
	StartLives          int
	GhostReleaseSpacing int
}

// Load reads the configuration from the environment. Values in a .env file
// in the working directory are loaded first without overriding real ones.
func Load() *Config {
	// .env is optional
	_ = godotenv.Load()

	return &Config{
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "text"),
		MovementInterval:    getEnvMillis("MOVEMENT_INTERVAL_MS", game.MovementInterval),
		ClockInterval:       getEnvMillis("CLOCK_INTERVAL_MS", game.ClockInterval),
		ReportInterval:      getEnvMillis("REPORT_INTERVAL_MS", time.Second),
		StartLives:          getEnvInt("START_LIVES", game.StartLives),
		GhostReleaseSpacing: getEnvInt("GHOST_RELEASE_SPACING", game.ReleaseSpacing),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

// getEnvMillis reads a positive duration given in milliseconds.
func getEnvMillis(key string, fallback time.Duration) time.Duration {
	if ms := getEnvInt(key, 0); ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return fallback
}
