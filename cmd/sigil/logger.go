package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func initLogger() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	level := zerolog.InfoLevel
	if flagDebug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(output).With().Timestamp().Str("app", "sigil").Logger().Level(level)
	log.Logger = logger
	return logger
}
