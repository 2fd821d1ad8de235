package configs

import (
	"log/slog"
	"strings"
)

// Logger configures the structured logger. Level is the minimum level the
// handler emits ("debug", "info", "warn", "error"); Format selects the
// output encoding, "text" or "json".
type Logger struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
}

// SlogLevel maps the textual level onto slog.Level, defaulting to info for
// anything it does not recognise.
func (c Logger) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SlogFormat normalises the requested format. Anything other than "json"
// means text output.
func (c Logger) SlogFormat() string {
	if strings.EqualFold(c.Format, "json") {
		return "json"
	}
	return "text"
}
