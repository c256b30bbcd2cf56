package config

import (
	"log/slog"
	"strings"
)

// Settings controls factory behavior and the factoryctl runtime.
type Settings struct {
	LogLevel        slog.Level
	LogFormat       string // "text" or "json"
	Metrics         bool
	Tracing         bool
	WarnOnCollision bool
	LedgerPath      string
}

// Defaults returns the settings used when no configuration is supplied.
func Defaults() Settings {
	return Settings{
		LogLevel:        slog.LevelInfo,
		LogFormat:       "text",
		WarnOnCollision: true,
	}
}

// LoadSettings reads Settings from cfg, keeping defaults for absent keys.
// ledger_path may also be given as ledger.path.
func LoadSettings(cfg Config) Settings {
	s := Defaults()
	s.LogLevel = ParseLevel(cfg.String("log_level", ""), s.LogLevel)
	if format := strings.ToLower(cfg.String("log_format", s.LogFormat)); format == "json" || format == "text" {
		s.LogFormat = format
	}
	s.Metrics = cfg.Bool("metrics", s.Metrics)
	s.Tracing = cfg.Bool("tracing", s.Tracing)
	s.WarnOnCollision = cfg.Bool("warn_on_collision", s.WarnOnCollision)
	s.LedgerPath = cfg.String("ledger_path", cfg.String("ledger.path", s.LedgerPath))
	return s
}

// ParseLevel maps a level name to a slog.Level, returning fallback for
// unknown or empty names.
func ParseLevel(name string, fallback slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}
