package logger

import (
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

type Opts struct {
	Env       string
	SentryDSN string
}

// New builds the process logger. Records go to zerolog on stdout, and error
// records are also forwarded to Sentry when a DSN is configured.
func New(opts Opts) *slog.Logger {
	level := slog.LevelInfo
	if opts.Env == "development" {
		level = slog.LevelDebug
	}

	zl := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if opts.Env == "development" {
		zl = zl.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	}

	handlers := []slog.Handler{
		slogzerolog.Option{Level: level, Logger: &zl}.NewZerologHandler(),
	}

	if opts.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         opts.SentryDSN,
			Environment: opts.Env,
		})
		if err != nil {
			zl.Error().Err(err).Msg("sentry init failed")
		} else {
			handlers = append(handlers, slogsentry.Option{Level: slog.LevelError}.NewSentryHandler())
		}
	}

	return slog.New(slogmulti.Fanout(handlers...))
}

// Init installs the logger as the slog default.
func Init(opts Opts) *slog.Logger {
	l := New(opts)
	slog.SetDefault(l)
	return l
}

func Flush() {
	sentry.Flush(2 * time.Second)
}
