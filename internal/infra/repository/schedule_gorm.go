package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Al1mk/Meister-Barbershop/internal/httperr"
	"github.com/Al1mk/Meister-Barbershop/internal/models"
	"github.com/Al1mk/Meister-Barbershop/internal/schedule"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *ScheduleGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *ScheduleGormRepository) ListActiveBarbers(
	ctx context.Context,
) ([]models.Barber, error) {

	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *ScheduleGormRepository) GetOrCreateCustomer(
	ctx context.Context,
	name string,
	email string,
	phone string,
) (*models.Customer, error) {

	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("email = ? AND phone = ?", email, phone).
		First(&customer).Error

	if err == nil {
		if customer.Name != name {
			customer.Name = name
			if err := r.db.WithContext(ctx).Save(&customer).Error; err != nil {
				return nil, err
			}
		}
		return &customer, nil
	}

	customer = models.Customer{
		Name:             name,
		Email:            email,
		Phone:            phone,
		UnsubscribeToken: uuid.NewString(),
	}

	if err := r.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, err
	}

	return &customer, nil
}

// --------------------------------------------------
// Time-off
// --------------------------------------------------

func (r *ScheduleGormRepository) ListTimeOff(
	ctx context.Context,
	barberID uint,
	startDate time.Time,
	endDate time.Time,
) ([]models.TimeOff, error) {

	var timeOffs []models.TimeOff
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND start_date <= ? AND end_date >= ?",
			barberID, endDate, startDate,
		).
		Order("start_date ASC").
		Find(&timeOffs).Error; err != nil {
		return nil, err
	}

	return timeOffs, nil
}

func (r *ScheduleGormRepository) ListAllTimeOff(
	ctx context.Context,
	barberID uint,
) ([]models.TimeOff, error) {

	var timeOffs []models.TimeOff
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("start_date ASC").
		Find(&timeOffs).Error; err != nil {
		return nil, err
	}

	return timeOffs, nil
}

func (r *ScheduleGormRepository) GetTimeOff(
	ctx context.Context,
	id uint,
) (*models.TimeOff, error) {

	var timeOff models.TimeOff
	if err := r.db.WithContext(ctx).First(&timeOff, id).Error; err != nil {
		return nil, err
	}
	return &timeOff, nil
}

func (r *ScheduleGormRepository) CreateTimeOff(
	ctx context.Context,
	t *models.TimeOff,
) error {

	if t.EndDate.Before(t.StartDate) {
		return httperr.ErrBusiness("invalid_date_range")
	}

	// Overlap invariant re-check at write time. The workflow already
	// rejected overlapping ranges, this guards direct callers.
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TimeOff{}).
		Where(
			"barber_id = ? AND start_date <= ? AND end_date >= ?",
			t.BarberID, t.EndDate, t.StartDate,
		).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return httperr.ErrBusiness("time_off_overlap")
	}

	return r.db.WithContext(ctx).Create(t).Error
}

func (r *ScheduleGormRepository) DeleteTimeOff(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.TimeOff{}, id).Error
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *ScheduleGormRepository) ListAppointments(
	ctx context.Context,
	barberID uint,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Barber").
		Where(
			"status <> ? AND start_at >= ? AND start_at < ?",
			models.AppointmentStatusCancelled, from, to,
		)
	if barberID != 0 {
		q = q.Where("barber_id = ?", barberID)
	}

	var appointments []models.Appointment
	if err := q.Order("start_at ASC").Find(&appointments).Error; err != nil {
		return nil, err
	}

	return appointments, nil
}

func (r *ScheduleGormRepository) LockBarberDay(
	ctx context.Context,
	barberID uint,
	dayStart time.Time,
	dayEnd time.Time,
) error {

	var locked []models.Appointment
	return r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"barber_id = ? AND status <> ? AND start_at >= ? AND start_at < ?",
			barberID, models.AppointmentStatusCancelled, dayStart, dayEnd,
		).
		Find(&locked).Error
}

func (r *ScheduleGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Barber").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *ScheduleGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *ScheduleGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *ScheduleGormRepository) CancelAppointments(
	ctx context.Context,
	ids []uint,
	reason string,
) error {

	if len(ids) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id IN ?", ids).
		Updates(map[string]any{
			"status":        models.AppointmentStatusCancelled,
			"cancel_reason": reason,
		}).Error
}

// --------------------------------------------------
// Transactions
// --------------------------------------------------

func (r *ScheduleGormRepository) InTransaction(
	ctx context.Context,
	fn func(schedule.Repository) error,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ScheduleGormRepository{db: tx})
	})
}
