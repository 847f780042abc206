// Package cliconfig holds the CLI's ambient configuration: env-seeded
// defaults (prefixed LANGSTAT_) and slog setup.
package cliconfig

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Settings holds the counting run's ambient configuration: output
// shape, ignore overrides, and logging. Scan-specific fields (paths,
// language allow-list) are CLI flags, not environment-seeded settings,
// since they vary per invocation rather than per environment.
type Settings struct {
	OutputFormat string // "text", "json", or "yaml"
	OutputFile   string // "" means stdout

	ExcludePatterns []string
	Sort            string // "", "lines", "code", "files" — output ordering
	NoLicense       bool   // skip the license-detection enrichment

	LogLevel  slog.Level
	LogFormat string // "text" or "json"
	LogFile   string // "" means stderr
}

// DefaultSettings returns the built-in defaults, before any
// environment variable or flag override is applied.
func DefaultSettings() *Settings {
	return &Settings{
		OutputFormat: "text",
		Sort:         "lines",
		LogLevel:     slog.LevelError,
		LogFormat:    "text",
	}
}

// LoadFromEnvironment returns DefaultSettings with every recognized
// LANGSTAT_* environment variable applied on top.
func LoadFromEnvironment() *Settings {
	s := DefaultSettings()

	if v := os.Getenv("LANGSTAT_OUTPUT_FORMAT"); v != "" {
		s.OutputFormat = v
	}
	if v := os.Getenv("LANGSTAT_OUTPUT_FILE"); v != "" {
		s.OutputFile = v
	}
	if v := os.Getenv("LANGSTAT_SORT"); v != "" {
		s.Sort = v
	}
	if v := os.Getenv("LANGSTAT_NO_LICENSE"); v != "" {
		s.NoLicense = strings.EqualFold(v, "true")
	}
	if v := os.Getenv("LANGSTAT_EXCLUDE"); v != "" {
		parts := strings.Split(v, ",")
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
		s.ExcludePatterns = parts
	}
	if v := os.Getenv("LANGSTAT_LOG_LEVEL"); v != "" {
		if level, err := ParseLogLevel(v); err == nil {
			s.LogLevel = level
		}
	}
	if v := os.Getenv("LANGSTAT_LOG_FORMAT"); v != "" {
		s.LogFormat = v
	}
	if v := os.Getenv("LANGSTAT_LOG_FILE"); v != "" {
		s.LogFile = v
	}

	return s
}

// ParseLogLevel maps a case-insensitive level name to an slog.Level,
// including non-standard "trace" and "fatal" tiers expressed as
// offsets from slog's own levels.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToUpper(level) {
	case "TRACE":
		return slog.LevelDebug - 4, nil
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	case "FATAL":
		return slog.LevelError + 4, nil
	default:
		return slog.LevelInfo, fmt.Errorf("cliconfig: invalid log level %q", level)
	}
}

// ConfigureLogger builds the *slog.Logger implied by s, falling back
// to stderr if LogFile is set but can't be opened.
func (s *Settings) ConfigureLogger() *slog.Logger {
	var output io.Writer = os.Stderr
	if s.LogFile != "" {
		file, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "langstat: cannot open log file %s: %v\n", s.LogFile, err)
		} else {
			output = file
		}
	}

	opts := &slog.HandlerOptions{Level: s.LogLevel}

	var handler slog.Handler
	if strings.EqualFold(s.LogFormat, "json") {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler)
}
