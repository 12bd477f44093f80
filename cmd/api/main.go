package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Al1mk/Meister-Barbershop/internal/config"
	dbpkg "github.com/Al1mk/Meister-Barbershop/internal/db"
	"github.com/Al1mk/Meister-Barbershop/internal/metrics"
	"github.com/Al1mk/Meister-Barbershop/internal/routes"
	"github.com/Al1mk/Meister-Barbershop/internal/schedule"
	"github.com/Al1mk/Meister-Barbershop/internal/timezone"
)

func main() {

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()

	cfg := config.Load()

	hours, err := schedule.NewHours(
		timezone.Location(cfg.SalonTimezone),
		cfg.OpeningTime,
		cfg.ClosingTime,
		cfg.LatestStart,
		cfg.SlotStepMin,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid business hours config")
	}

	db := dbpkg.NewDB(cfg)
	dbpkg.Seed(db)

	metrics.Register()

	r := gin.Default()
	routes.RegisterRoutes(r, db, cfg, hours)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
