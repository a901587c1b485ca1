// Package logger builds the process slog.Logger and holds small helpers that
// keep log attributes consistent across services.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"cardbank/internal/domain"
)

// Config selects level and output format of the logger.
type Config struct {
	Level  string `toml:"level" env:"CARDBANK_LOG_LEVEL"`
	Format string `toml:"format" env:"CARDBANK_LOG_FORMAT"`
}

// New returns a logger writing to w. Format is "text" (default) or "json";
// Level is any name slog understands ("debug", "info", "warn", "error").
func New(cfg Config, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
		}
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(cfg.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("log format %q: want text or json", cfg.Format)
	}
}

// LogOperation logs a money operation result at info, or warn when refused.
func LogOperation(log *slog.Logger, r domain.Result) {
	attrs := []any{
		slog.String("type", "op"),
		slog.String("id", r.ID.String()),
		slog.String("op", string(r.Operation)),
		slog.String("card", r.CardNumber),
		slog.String("amount", r.Amount.String()),
		slog.String("tax", r.Tax.String()),
	}
	if !r.OK() {
		log.Warn("Operation refused", append(attrs, slog.String("reason", string(r.Reason)))...)
		return
	}
	log.Info("Operation applied", append(attrs, slog.String("balance", r.Balance.String()))...)
}

// LogError logs an error event.
func LogError(log *slog.Logger, msg string, err error, attrs ...any) {
	baseAttrs := []any{
		slog.String("type", "error"),
		slog.Any("error", err),
	}
	log.Error(msg, append(baseAttrs, attrs...)...)
}
