package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/runs-on/envreport/internal/config"
	"github.com/runs-on/envreport/internal/env"
	"github.com/runs-on/envreport/internal/report"
)

// run renders the request environment found in environ as a CGI response on stdout.
func run(stdout, stderr io.Writer, environ []string, logger *zerolog.Logger) error {
	vars, err := env.ParseEnviron(environ)
	if err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}

	cfg := config.NewConfigFromEnv(logger, func(key string) string { return vars[key] })
	l := logger.Level(cfg.LogLevel)

	entries := env.Filter(vars, env.RequestPrefixes...)
	l.Debug().Msgf("Selected %d of %d environment variables", len(entries), len(vars))

	if cfg.HasDebug() {
		env.DisplayEnvVars(stderr, entries)
	}

	if err := report.New(cfg.Stylesheet).WriteCGI(stdout, entries); err != nil {
		return err
	}

	l.Info().Msgf("Rendered %d rows", len(entries))
	return nil
}

func main() {
	// stdout carries the CGI response, so logs go to stderr.
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if err := run(os.Stdout, os.Stderr, os.Environ(), &logger); err != nil {
		logger.Fatal().Err(err).Msg("Failed to render environment report")
	}
}
