package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Al1mk/Meister-Barbershop/internal/bot"
	"github.com/Al1mk/Meister-Barbershop/internal/config"
	"github.com/Al1mk/Meister-Barbershop/internal/timezone"
)

func main() {

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()

	cfg := config.Load()
	if cfg.TelegramBotToken == "" {
		log.Fatal().Msg("set TELEGRAM_BOT_TOKEN")
	}

	apiBase := os.Getenv("API_BASE_URL")
	if apiBase == "" {
		apiBase = "http://localhost:" + cfg.ServerPort
	}
	api := bot.NewAPIClient(apiBase, cfg.AdminPassword)

	b, err := bot.New(
		cfg.TelegramBotToken,
		api,
		cfg.TelegramGroupID,
		timezone.Location(cfg.SalonTimezone),
		log.Logger,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("create bot failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{Addr: cfg.BotAddr(), Handler: b.NotifyServer(cfg.TelegramBotSecret)}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("notify server error")
		}
	}()

	log.Info().Str("addr", cfg.BotAddr()).Msg("bot started")
	b.Start(ctx)
}
