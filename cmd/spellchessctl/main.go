// spellchessctl replays a Spell Chess compact action log and reports the
// resulting state. It is the one external-collaborator example the engine
// ships with: a read-only consumer of Replay/BuildCompactLog, not a
// persistence or transport layer.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"spellchess/internal/coords"
	"spellchess/internal/game"
)

func main() {
	logFile := flag.String("log-file", getenv("SPELLCHESS_LOG_FILE", ""), "path to a file holding a compact action log; '-' or empty reads stdin")
	actionsFlag := flag.String("actions", getenv("SPELLCHESS_ACTIONS", ""), "compact action log as a literal comma-separated string (overrides -log-file)")
	verbose := flag.Bool("verbose", getenb("SPELLCHESS_VERBOSE", false), "enable debug-level logging")
	flag.Parse()

	logger := newLogger(*verbose)
	defer logger.Sync() //nolint:errcheck

	raw, err := loadLog(*actionsFlag, *logFile)
	if err != nil {
		logger.Fatal("failed to load action log", zap.Error(err))
	}

	actions := splitActions(raw)
	logger.Debug("parsed action log", zap.Int("tokens", len(actions)))

	state, err := game.Replay(actions)
	if err != nil {
		logger.Fatal("replay failed", zap.Error(err))
	}

	logger.Info("replay complete",
		zap.Int("ply_count", state.PlyCount),
		zap.Int("turn", state.GameTurnNumber),
		zap.String("side_to_move", state.CurrentPlayer.String()),
		zap.Bool("game_over", state.IsGameOver),
	)

	report(state)
}

func report(s *game.GameState) {
	fmt.Printf("turn %d, %s to move\n", s.GameTurnNumber, strings.ToLower(s.CurrentPlayer.String()))
	fmt.Printf("ply count: %d\n", s.PlyCount)
	fmt.Printf("castling rights: %s\n", s.Castling.String())
	fmt.Printf("en passant target: %s\n", s.EnPassant.String())
	fmt.Printf("moves played: %d\n", len(s.MoveLog))
	for _, entry := range s.MoveLog {
		fmt.Printf("  %d. %s %s\n", entry.Turn, colorTag(entry.Player), entry.Notation)
	}
	if s.IsGameOver {
		fmt.Printf("game over: %s\n", s.GameEndMessage)
	}
	fmt.Printf("rebuilt compact log: %s\n", game.BuildCompactLog(s))
}

func colorTag(c coords.Color) string {
	if c == coords.White {
		return "w"
	}
	return "b"
}

func splitActions(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func loadLog(actionsFlag, logFile string) (string, error) {
	if actionsFlag != "" {
		return actionsFlag, nil
	}
	if logFile == "" || logFile == "-" {
		data, err := readAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(logFile)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", logFile, err)
	}
	return string(data), nil
}

func readAll(f *os.File) ([]byte, error) {
	data, err := io.ReadAll(f)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return data, nil
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		// zap itself failed to construct; fall back to a no-op logger
		// rather than panicking on a CLI diagnostics path.
		return zap.NewNop()
	}
	return logger
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenb(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return def
	}
}
