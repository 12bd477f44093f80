package db

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Al1mk/Meister-Barbershop/internal/config"
	"github.com/Al1mk/Meister-Barbershop/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Barber{},
		&models.Customer{},
		&models.TimeOff{},
		&models.Appointment{},
		&models.ContactMessage{},
		&models.Notification{},
		&models.StaffUser{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	// AutoMigrate does not emit CHECK constraints; the range invariant
	// lives in the database as the last line of defence. Postgres has
	// no ADD CONSTRAINT IF NOT EXISTS, hence the pg_constraint check.
	err = db.Exec(`
        DO $$
        BEGIN
            IF NOT EXISTS (
                SELECT 1 FROM pg_constraint WHERE conname = 'timeoff_start_before_end'
            ) THEN
                ALTER TABLE time_offs
                ADD CONSTRAINT timeoff_start_before_end
                CHECK (start_date <= end_date);
            END IF;
        END $$;
    `).Error
	if err != nil {
		log.Error().Err(err).Msg("failed to ensure time off range constraint")
	}

	return db
}

// Seed inserts the default barber roster when the table is empty.
// Weekday numbers follow time.Weekday (0=Sunday). Reza works Friday
// and Saturday only; everyone else Monday through Saturday.
func Seed(db *gorm.DB) {
	var count int64
	db.Model(&models.Barber{}).Count(&count)
	if count > 0 {
		return
	}

	barbers := []models.Barber{
		{Name: "Ali", IsActive: true, WorkingDays: "1,2,3,4,5,6"},
		{Name: "Mohammed", IsActive: true, WorkingDays: "1,2,3,4,5,6"},
		{Name: "Reza", IsActive: true, WorkingDays: "5,6"},
	}
	if err := db.Create(&barbers).Error; err != nil {
		log.Error().Err(err).Msg("failed to seed barbers")
	}
}
