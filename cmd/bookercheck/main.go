package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"restful_booker/internal/adapters/booker"
	"restful_booker/internal/adapters/observability"
	"restful_booker/internal/app"
	"restful_booker/internal/shared"
)

func main() {
	cfg := shared.Load()
	if cfg.BaseURL == "" {
		cfg.BaseURL = shared.LiveBaseURL
	}

	var only []string
	var list bool
	pflag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "platform base URL")
	pflag.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "per-request timeout, 0 for none")
	pflag.StringSliceVar(&only, "only", nil, "run only these scenarios (comma separated)")
	pflag.BoolVar(&list, "list", false, "print scenario names and exit")
	pflag.BoolVar(&cfg.LogRequests, "log-requests", cfg.LogRequests, "log every request and response line")
	pflag.BoolVar(&cfg.LogResponses, "log-bodies", cfg.LogResponses, "log request and response bodies")
	pflag.Parse()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	all := app.Scenarios()
	if list {
		for _, s := range all {
			_, _ = os.Stdout.WriteString(s.Name + "\n")
		}
		return
	}
	selected, err := app.Select(all, only)
	if err != nil {
		log.Fatal().Err(err).Msg("bad --only")
	}

	observability.Serve(cfg.MetricsAddr)

	// request lines are debug events
	clientLog := log.Logger.Level(zerolog.InfoLevel)
	if cfg.LogRequests || cfg.LogResponses {
		clientLog = log.Logger.Level(zerolog.DebugLevel)
	}
	client, err := booker.New(cfg.BaseURL,
		booker.WithTimeout(cfg.Timeout),
		booker.WithCredentials(cfg.Username, cfg.Password),
		booker.WithLogger(clientLog),
		booker.WithBodyLogging(cfg.LogResponses),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize booker client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := app.NewRunner(client, log.Logger)
	log.Info().
		Str("base", client.BaseURL()).
		Str("run", runner.RunID).
		Int("scenarios", len(selected)).
		Msg("bookercheck starting")

	results := runner.Run(ctx, selected)
	failed := app.Failed(results)
	log.Info().
		Int("passed", len(results)-failed).
		Int("failed", failed).
		Msg("bookercheck completed")
	if failed > 0 || len(results) < len(selected) {
		stop()
		os.Exit(1)
	}
}
