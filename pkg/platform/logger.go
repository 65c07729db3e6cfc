package platform

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// InitLogger sets up console logging on stderr at the given level.
// Unknown levels fall back to info.
func InitLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
}
