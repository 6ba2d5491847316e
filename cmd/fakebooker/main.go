package main

import (
	"context"
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	server "restful_booker/internal/adapters/http_server"
	"restful_booker/internal/adapters/observability"
	redisad "restful_booker/internal/adapters/redis"
	"restful_booker/internal/domain"
	"restful_booker/internal/shared"
	"restful_booker/internal/storage/memory"
	mysqlrepo "restful_booker/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	pflag.StringVar(&cfg.FakeAddr, "addr", cfg.FakeAddr, "listen address")
	pflag.StringVar(&cfg.FakeStore, "store", cfg.FakeStore, "record store: memory|mysql")
	pflag.StringVar(&cfg.FakeTokens, "tokens", cfg.FakeTokens, "token store: memory|redis")
	pflag.IntVar(&cfg.LoginRPS, "login-rps", cfg.LoginRPS, "login requests per second, 0 for no limit")
	pflag.Parse()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)
	ctx := context.Background()

	// deps
	store := openStore(cfg)
	tokens := openTokens(ctx, cfg)
	if err := server.Seed(ctx, store); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}

	// http
	srv := server.New(log.Logger)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Store:    store,
		Tokens:   tokens,
		Creds:    domain.Credentials{Username: cfg.Username, Password: cfg.Password},
		TokenTTL: cfg.TokenTTL,
		LoginRPS: cfg.LoginRPS,
	})

	log.Info().
		Str("addr", cfg.FakeAddr).
		Str("store", cfg.FakeStore).
		Str("tokens", cfg.FakeTokens).
		Msg("stand-in platform listening")
	httpSrv := &http.Server{Addr: cfg.FakeAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

func openStore(cfg shared.Config) domain.Store {
	switch cfg.FakeStore {
	case "memory":
		return memory.New()
	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		return mysqlrepo.New(db)
	}
	log.Fatal().Str("store", cfg.FakeStore).Msg("unknown record store")
	return nil
}

func openTokens(ctx context.Context, cfg shared.Config) domain.TokenStore {
	switch cfg.FakeTokens {
	case "memory":
		return memory.NewTokens()
	case "redis":
		rt := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := rt.Ping(ctx); err != nil {
			log.Fatal().Err(err).Msg("redis ping failed")
		}
		return rt
	}
	log.Fatal().Str("tokens", cfg.FakeTokens).Msg("unknown token store")
	return nil
}
