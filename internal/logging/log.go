package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger returns a child of the global logger tagged with app.
func Logger(app string) zerolog.Logger {
	return log.Logger.With().Str("app", app).Logger()
}

func Debugf(format string, args ...any) {
	log.Debug().Msgf(format, args...)
}

func Infof(format string, args ...any) {
	log.Info().Msgf(format, args...)
}

func Warnf(format string, args ...any) {
	log.Warn().Msgf(format, args...)
}

func Errf(format string, args ...any) {
	log.Error().Msgf(format, args...)
}

// Logf writes at trace level; tests use it for step-by-step narration.
func Logf(format string, args ...any) {
	log.Trace().Msgf(format, args...)
}
