package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

type LoggingFormat string

const (
	LoggingFormatTint LoggingFormat = "tint"
	LoggingFormatJson LoggingFormat = "json"
	LoggingFormatNone LoggingFormat = "none"
)

// Logging configures the process-wide slog logger.
type Logging struct {
	Format     LoggingFormat `json:"format,omitempty" yaml:"format,omitempty"`
	Level      string        `json:"level,omitempty" yaml:"level,omitempty"`
	Source     bool          `json:"source,omitempty" yaml:"source,omitempty"`
	NoColor    *bool         `json:"no_color,omitempty" yaml:"no_color,omitempty"`
	TimeFormat *string       `json:"time_format,omitempty" yaml:"time_format,omitempty"`
}

func (l *Logging) GetFormatOrDefault() LoggingFormat {
	if l == nil || l.Format == "" {
		return LoggingFormatTint
	}
	return l.Format
}

func (l *Logging) GetLevelOrDefault() slog.Level {
	if l == nil {
		return slog.LevelInfo
	}

	switch strings.ToLower(l.Level) {
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

// GetRootLogger builds the logger described by this config. The none format
// discards all records; useful in tests.
func (l *Logging) GetRootLogger() *slog.Logger {
	switch l.GetFormatOrDefault() {
	case LoggingFormatJson:
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     l.GetLevelOrDefault(),
			AddSource: l != nil && l.Source,
		}))
	case LoggingFormatNone:
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	default:
		noColor := false
		if l != nil && l.NoColor != nil {
			noColor = *l.NoColor
		}

		timeFormat := time.Kitchen
		if l != nil && l.TimeFormat != nil {
			timeFormat = *l.TimeFormat
		}

		var source bool
		if l != nil {
			source = l.Source
		}

		return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      l.GetLevelOrDefault(),
			AddSource:  source,
			NoColor:    noColor,
			TimeFormat: timeFormat,
		}))
	}
}
