package main

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/ugaemi/comecocos/internal/game"
)

// controller is the part of session.Controller the command reader drives.
type controller interface {
	Start() error
	Pause()
	Resume()
	Terminate()
	Steer(d game.Direction)
	ReleaseGhost(id game.GhostID) error
}

var steerKeys = map[string]game.Direction{
	"w": game.DirUp,
	"a": game.DirLeft,
	"s": game.DirDown,
	"d": game.DirRight,
}

// readCommands feeds line commands from r to the controller until quit or EOF.
func readCommands(ctrl controller, r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if !handleCommand(ctrl, scanner.Text()) {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		slog.Warn("command input closed", "error", err)
	}
}

// handleCommand applies one command line. It returns false after quit.
func handleCommand(ctrl controller, line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return true
	}

	cmd := fields[0]
	if d, ok := steerKeys[cmd]; ok {
		ctrl.Steer(d)
		return true
	}
	if d, ok := game.ParseDirection(cmd); ok {
		ctrl.Steer(d)
		return true
	}

	switch cmd {
	case "p", "pause":
		ctrl.Pause()
	case "r", "resume":
		ctrl.Resume()
	case "n", "new":
		if err := ctrl.Start(); err != nil {
			slog.Warn("new game failed", "error", err)
		}
	case "release":
		if len(fields) < 2 {
			slog.Warn("release needs a ghost name")
			return true
		}
		releaseGhost(ctrl, fields[1])
	case "q", "quit":
		ctrl.Terminate()
		return false
	default:
		slog.Warn("unknown command", "command", cmd)
	}
	return true
}

func releaseGhost(ctrl controller, name string) {
	id, err := game.ParseGhostID(name)
	if err != nil {
		slog.Warn("release failed", "error", err)
		return
	}
	if err := ctrl.ReleaseGhost(id); err != nil {
		if errors.Is(err, game.ErrGhostReleased) {
			slog.Info("ghost already out", "ghost", id.String())
			return
		}
		slog.Warn("release failed", "ghost", id.String(), "error", err)
	}
}
