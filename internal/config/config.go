package config

import (
	"strconv"

	"github.com/rs/zerolog"
)

const (
	StylesheetVar = "ENVREPORT_STYLESHEET"
	LogLevelVar   = "ENVREPORT_LOG_LEVEL"
	DebugVar      = "ENVREPORT_DEBUG"
)

// DefaultLogLevel keeps a healthy request silent in the server's error log.
const DefaultLogLevel = zerolog.WarnLevel

// Config holds the handler's settings derived from the environment.
type Config struct {
	Stylesheet string
	LogLevel   zerolog.Level
	Debug      bool
}

// NewConfigFromEnv builds a Config using getenv for lookups. Invalid values are
// logged and replaced by their defaults.
func NewConfigFromEnv(logger *zerolog.Logger, getenv func(string) string) *Config {
	cfg := &Config{
		Stylesheet: getenv(StylesheetVar),
		LogLevel:   DefaultLogLevel,
	}

	if levelStr := getenv(LogLevelVar); levelStr != "" {
		level, err := zerolog.ParseLevel(levelStr)
		if err != nil {
			logger.Warn().Msgf("Error parsing %s '%s': %v. Using %s.", LogLevelVar, levelStr, err, DefaultLogLevel)
		} else {
			cfg.LogLevel = level
		}
	}

	if debugStr := getenv(DebugVar); debugStr != "" {
		var err error
		cfg.Debug, err = strconv.ParseBool(debugStr)
		if err != nil {
			logger.Warn().Msgf("Error parsing %s '%s': %v. Assuming false.", DebugVar, debugStr, err)
		}
	}

	return cfg
}

func (c *Config) HasDebug() bool {
	return c.Debug
}
