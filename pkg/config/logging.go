package config

import (
	"os"

	zlogsentry "github.com/archdx/zerolog-sentry"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func ConfigureLogging() {
	conf := Get()
	level, err := zerolog.ParseLevel(conf.Logging.Level)
	if err != nil {
		log.Error().Err(err).Msg("")
		level = zerolog.InfoLevel
	}

	if conf.Logging.Console {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if conf.Sentry.Dsn != "" {
		sentryWriter, err := zlogsentry.New(conf.Sentry.Dsn)
		if err != nil {
			log.Fatal().Err(err).Msg("ERROR setting up sentry")
		}
		log.Logger = zerolog.New(zerolog.MultiLevelWriter(log.Logger, sentryWriter)).With().Timestamp().Logger()
	}

	log.Logger = log.Logger.Level(level)
	zerolog.SetGlobalLevel(level)
	zerolog.DefaultContextLogger = &log.Logger
}

// DBLevel returns the level used for gorm query logging. Query logging is
// noisy, so it only turns on at debug and below.
func DBLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(Get().Logging.Level)
	if err != nil || level > zerolog.DebugLevel {
		return zerolog.WarnLevel
	}
	return zerolog.DebugLevel
}
