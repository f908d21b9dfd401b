package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akamensky/argparse"
	charmlog "github.com/charmbracelet/log"

	"github.com/ugaemi/comecocos/internal/config"
	"github.com/ugaemi/comecocos/internal/game"
	"github.com/ugaemi/comecocos/internal/session"
)

func main() {
	cfg := config.Load()
	if err := parseFlags(cfg, os.Args); err != nil {
		fmt.Fprint(os.Stderr, err)
		os.Exit(2)
	}
	setupLogger(cfg)

	ctrl := session.New(session.Options{
		MovementInterval: cfg.MovementInterval,
		ClockInterval:    cfg.ClockInterval,
		StartLives:       cfg.StartLives,
		Releases:         game.DefaultReleaseSchedule(cfg.GhostReleaseSpacing),
	})
	if err := ctrl.Start(); err != nil {
		slog.Error("start failed", "error", err)
		os.Exit(1)
	}

	go handleSignals(ctrl)
	go readCommands(ctrl, os.Stdin)
	go report(ctrl, cfg.ReportInterval)

	// Terminate is the only way out; main returning ends the process.
	<-ctrl.Done()
	snap := ctrl.Snapshot()
	slog.Info("bye", "score", snap.Score, "elapsed", snap.Elapsed)
}

// parseFlags lets command-line flags override the environment configuration.
func parseFlags(cfg *config.Config, args []string) error {
	parser := argparse.NewParser("comecocos", "Runs a headless maze-chase session")

	movement := parser.Int("m", "movement-interval", &argparse.Options{
		Help:    "Milliseconds between movement steps",
		Default: int(cfg.MovementInterval / time.Millisecond),
	})
	clock := parser.Int("c", "clock-interval", &argparse.Options{
		Help:    "Milliseconds between clock ticks",
		Default: int(cfg.ClockInterval / time.Millisecond),
	})
	lives := parser.Int("l", "lives", &argparse.Options{
		Help:    "Lives at the start of each game",
		Default: cfg.StartLives,
	})
	spacing := parser.Int("g", "release-spacing", &argparse.Options{
		Help:    "Clock ticks between ghost releases",
		Default: cfg.GhostReleaseSpacing,
	})
	level := parser.String("v", "log-level", &argparse.Options{
		Help:    "Log level: debug, info, warn or error",
		Default: cfg.LogLevel,
	})
	format := parser.String("f", "log-format", &argparse.Options{
		Help:    "Log format: text, json or pretty",
		Default: cfg.LogFormat,
	})

	if err := parser.Parse(args); err != nil {
		return errors.New(parser.Usage(err))
	}

	if *movement > 0 {
		cfg.MovementInterval = time.Duration(*movement) * time.Millisecond
	}
	if *clock > 0 {
		cfg.ClockInterval = time.Duration(*clock) * time.Millisecond
	}
	if *lives > 0 {
		cfg.StartLives = *lives
	}
	if *spacing >= 0 {
		cfg.GhostReleaseSpacing = *spacing
	}
	cfg.LogLevel = *level
	cfg.LogFormat = *format
	return nil
}

// handleSignals maps process signals onto the controller.
func handleSignals(ctrl *session.Controller) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGUSR1, syscall.SIGUSR2, syscall.SIGHUP)
	defer signal.Stop(sigCh)

	for {
		select {
		case <-ctrl.Done():
			return
		case sig := <-sigCh:
			slog.Debug("signal received", "signal", sig.String())
			switch sig {
			case syscall.SIGUSR1:
				ctrl.Pause()
			case syscall.SIGUSR2:
				ctrl.Resume()
			case syscall.SIGHUP:
				if err := ctrl.Start(); err != nil {
					slog.Warn("restart failed", "error", err)
				}
			default:
				ctrl.Terminate()
				return
			}
		}
	}
}

// report logs a snapshot of the running game every interval.
func report(ctrl *session.Controller, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctrl.Done():
			return
		case <-t.C:
			snap := ctrl.Snapshot()
			slog.Info("status",
				"session", ctrl.SessionID(),
				"score", snap.Score,
				"lives", snap.Lives,
				"elapsed", snap.Elapsed,
				"player", snap.Player.String(),
				"pellets_left", snap.PelletsLeft,
				"over", snap.Over,
				"cleared", snap.Cleared,
			)
		}
	}
}

func setupLogger(cfg *config.Config) {
	var h slog.Handler
	opts := &slog.HandlerOptions{}

	switch cfg.LogLevel {
	case "debug":
		opts.Level = slog.LevelDebug
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		opts.Level = slog.LevelInfo
	}

	switch cfg.LogFormat {
	case "json":
		h = slog.NewJSONHandler(os.Stdout, opts)
	case "pretty":
		h = charmlog.NewWithOptions(os.Stdout, charmlog.Options{
			ReportTimestamp: true,
			TimeFormat:      time.TimeOnly,
			Level:           charmLevel(opts.Level.Level()),
		})
	default:
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(h))
}

func charmLevel(l slog.Level) charmlog.Level {
	switch {
	case l <= slog.LevelDebug:
		return charmlog.DebugLevel
	case l <= slog.LevelInfo:
		return charmlog.InfoLevel
	case l <= slog.LevelWarn:
		return charmlog.WarnLevel
	default:
		return charmlog.ErrorLevel
	}
}
