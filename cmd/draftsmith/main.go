package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"draftsmith"
)

func main() {
	// Credentials usually live in a .env next to the binary; missing file is
	// fine, the OS environment wins either way.
	_ = godotenv.Load()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && lvl != zerolog.NoLevel {
		log = log.Level(lvl)
	}

	cfg := draftsmith.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx := context.Background()
	gen, err := draftsmith.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal().Err(err).Msg("init generator")
	}

	records := draftsmith.NewAggregator(draftsmith.NewAirtableClient(cfg.AirtableAPIKey, cfg.AirtableBaseID))
	cms := draftsmith.NewWordPressClient(cfg.WordPressURL, cfg.WordPressUser, cfg.WordPressAppPassword)

	app := draftsmith.New(cfg, log, records, gen, cms)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	if err := app.Start(); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
