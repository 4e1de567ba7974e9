package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/samabhi804-sketch/hangman/internal/config"
	"github.com/samabhi804-sketch/hangman/internal/history"
	"github.com/samabhi804-sketch/hangman/internal/httpserver"
	"github.com/samabhi804-sketch/hangman/internal/store"
	"github.com/samabhi804-sketch/hangman/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	setupLogging(cfg)

	lists, err := words.Load(words.Paths{
		Easy:   cfg.WordsEasyFile,
		Medium: cfg.WordsMediumFile,
		Hard:   cfg.WordsHardFile,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	db, err := history.Open(cfg.HistoryDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("open history db")
	}
	defer db.Close()
	if err := history.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate history db")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mem := store.NewMemoryStore()
	go store.RunSweeper(ctx, mem, time.Minute, cfg.SessionIdleTTL, func(n int) {
		if n > 0 {
			log.Info().Int("dropped", n).Int("live", mem.Len()).Msg("swept idle sessions")
		}
	})

	if cfg.SessionSecret == "dev_secret_change_me" {
		log.Warn().Msg("SESSION_SECRET is the development default")
	}

	srv := httpserver.New(mem, history.NewStore(db), lists, httpserver.Options{
		SessionSecret:     cfg.SessionSecret,
		SessionTTL:        cfg.SessionTTL,
		CookieSecure:      cfg.CookieSecure,
		ClientOrigin:      cfg.ClientOrigin,
		DailySalt:         cfg.DailySalt,
		AdminUser:         cfg.AdminUser,
		AdminPasswordHash: cfg.AdminPasswordHash,
	})

	hs := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := hs.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("port", cfg.Port).Interface("words", lists.Stats()).Msg("starting hangman server")
	if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped")
}

func setupLogging(cfg config.Config) {
	if lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}
