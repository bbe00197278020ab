package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Encoding string `envconfig:"ENCODING"`
	Level    string `envconfig:"LEVEL"`
}

func New(app string, cfg *Config) *slog.Logger {
	if cfg == nil {
		cfg = &Config{
			Encoding: "console",
			Level:    "info",
		}
	}

	if cfg.Level == "" {
		cfg.Level = "info"
	}

	if cfg.Encoding == "" {
		cfg.Encoding = "console"
	}

	level := parseLevel(cfg.Level)

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	}

	var handler slog.Handler

	switch cfg.Encoding {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	case "console":
		handler = slog.NewTextHandler(os.Stderr, opts)
	default:
		panic(fmt.Errorf("invalid logger config: encoding %s is not supported", cfg.Encoding))
	}

	logger := slog.New(handler).With(
		"app", app,
	)

	return logger
}

// parseLevel парсит строковый уровень в slog.Level
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Errorf("invalid logger config: level %s is not supported", level))
	}
}
