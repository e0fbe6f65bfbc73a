package logger

import (
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	defaultLogger zerolog.Logger
	once          sync.Once
)

// Init initializes the default logger writing JSON to stderr. The level is
// taken from the LOG_LEVEL environment variable (debug, info, warn, error)
// and defaults to info. It is safe to call Init more than once.
func Init() {
	once.Do(func() {
		level := zerolog.InfoLevel
		if parsed, err := zerolog.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL"))); err == nil && parsed != zerolog.NoLevel {
			level = parsed
		}
		defaultLogger = zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	})
}

// SetLevel adjusts the default logger's level after initialization.
// Unparseable levels are ignored.
func SetLevel(level string) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || parsed == zerolog.NoLevel {
		return
	}
	Init()
	defaultLogger = defaultLogger.Level(parsed)
}

// Get returns the initialized default logger, initializing it if needed.
func Get() zerolog.Logger {
	Init()
	return defaultLogger
}

// Info logs an informational message with optional key/value fields.
func Info(msg string, fields map[string]any) {
	l := Get()
	event := l.Info()
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(msg)
}

// Warn logs a warning message with optional key/value fields.
func Warn(msg string, fields map[string]any) {
	l := Get()
	event := l.Warn()
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(msg)
}

// Error logs an error message. A nil err is allowed.
func Error(msg string, err error, fields map[string]any) {
	l := Get()
	event := l.Error().Err(err)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(msg)
}

// Debug logs a debug message with optional key/value fields.
func Debug(msg string, fields map[string]any) {
	l := Get()
	event := l.Debug()
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(msg)
}
