// Package logger provides structured JSON logging using zerolog.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init initializes the global logger. Unknown levels fall back to info.
func Init(level string, pretty bool) {
	InitWithWriter(os.Stderr, level, pretty)
}

// InitWithWriter initializes the global logger writing to w.
func InitWithWriter(w io.Writer, level string, pretty bool) {
	logLevel, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || logLevel == zerolog.NoLevel {
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Str("service", "packing-service").Logger()
	// log.Ctx on a context without a logger falls back to the global one.
	zerolog.DefaultContextLogger = &log.Logger
}

// Logger returns the global logger instance.
func Logger() zerolog.Logger {
	return log.Logger
}

// ForComponent returns a child of the global logger tagged with a component name.
func ForComponent(component string) zerolog.Logger {
	return log.Logger.With().Str("component", component).Logger()
}

// PrintfAdapter routes printf-style library logging (badger) into zerolog.
type PrintfAdapter struct {
	logger zerolog.Logger
}

// NewPrintfAdapter creates an adapter tagged with the given component.
func NewPrintfAdapter(component string) *PrintfAdapter {
	return &PrintfAdapter{logger: ForComponent(component)}
}

func (a *PrintfAdapter) Errorf(format string, args ...interface{}) {
	a.logger.Error().Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (a *PrintfAdapter) Warningf(format string, args ...interface{}) {
	a.logger.Warn().Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (a *PrintfAdapter) Infof(format string, args ...interface{}) {
	a.logger.Debug().Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (a *PrintfAdapter) Debugf(format string, args ...interface{}) {
	a.logger.Trace().Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}
