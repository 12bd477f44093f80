package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Al1mk/Meister-Barbershop/internal/config"
	dbpkg "github.com/Al1mk/Meister-Barbershop/internal/db"
	"github.com/Al1mk/Meister-Barbershop/internal/metrics"
	"github.com/Al1mk/Meister-Barbershop/internal/notify"
	"github.com/Al1mk/Meister-Barbershop/internal/reminders"
	"github.com/Al1mk/Meister-Barbershop/internal/timezone"
)

func main() {

	once := flag.Bool("once", false, "run a single pass and exit (for cron)")
	interval := flag.Duration("interval", 15*time.Minute, "pass interval in loop mode")
	flag.Parse()

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	metrics.Register()

	sender := notify.NewEmailSender(
		cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.FromEmail,
	)

	service := reminders.New(db, sender, timezone.Location(cfg.SalonTimezone), log.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *once {
		service.RunOnce(ctx)
		return
	}

	log.Info().Dur("interval", *interval).Msg("reminder loop started")
	service.Run(ctx, *interval)
}
