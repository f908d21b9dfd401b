package main

import (
	"log/slog"
	"testing"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugaemi/comecocos/internal/config"
)

func baseConfig() *config.Config {
	return &config.Config{
		LogLevel:            "info",
		LogFormat:           "text",
		MovementInterval:    200 * time.Millisecond,
		ClockInterval:       time.Second,
		ReportInterval:      time.Second,
		StartLives:          3,
		GhostReleaseSpacing: 5,
	}
}

func TestParseFlags_KeepsConfigWithoutFlags(t *testing.T) {
	cfg := baseConfig()
	require.NoError(t, parseFlags(cfg, []string{"comecocos"}))
	assert.Equal(t, baseConfig(), cfg)
}

func TestParseFlags_Overrides(t *testing.T) {
	cfg := baseConfig()
	err := parseFlags(cfg, []string{"comecocos",
		"--movement-interval", "100",
		"-c", "500",
		"--lives", "5",
		"--release-spacing", "2",
		"--log-level", "debug",
		"--log-format", "pretty",
	})
	require.NoError(t, err)

	assert.Equal(t, 100*time.Millisecond, cfg.MovementInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.ClockInterval)
	assert.Equal(t, 5, cfg.StartLives)
	assert.Equal(t, 2, cfg.GhostReleaseSpacing)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "pretty", cfg.LogFormat)
}

func TestParseFlags_BadValue(t *testing.T) {
	cfg := baseConfig()
	err := parseFlags(cfg, []string{"comecocos", "--lives", "many"})
	assert.Error(t, err)
}

func TestCharmLevel(t *testing.T) {
	assert.Equal(t, charmlog.DebugLevel, charmLevel(slog.LevelDebug))
	assert.Equal(t, charmlog.InfoLevel, charmLevel(slog.LevelInfo))
	assert.Equal(t, charmlog.WarnLevel, charmLevel(slog.LevelWarn))
	assert.Equal(t, charmlog.ErrorLevel, charmLevel(slog.LevelError))
}
