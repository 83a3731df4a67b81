package logger

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger from LOG_LEVEL / LOG_FORMAT.
func Init() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}

	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}

	l := zerolog.New(os.Stdout).With().Timestamp().Logger().Level(logLevel)
	if os.Getenv("LOG_FORMAT") == "console" {
		l = l.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	log.Logger = l
	zerolog.DefaultContextLogger = &l
}
