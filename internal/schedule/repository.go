package schedule

import (
	"context"
	"time"

	"github.com/Al1mk/Meister-Barbershop/internal/models"
)

// Repository is the storage port for the scheduling core. Implementations
// must return appointments ordered by start time and time-off ordered by
// start date, so repeated conflict queries yield identical results.
type Repository interface {
	// -------- Barber --------
	GetBarber(ctx context.Context, id uint) (*models.Barber, error)

	ListActiveBarbers(ctx context.Context) ([]models.Barber, error)

	// -------- Customer --------
	GetOrCreateCustomer(
		ctx context.Context,
		name string,
		email string,
		phone string,
	) (*models.Customer, error)

	// -------- Time-off --------

	// ListTimeOff returns records whose inclusive range intersects
	// [startDate, endDate], ordered by start date.
	ListTimeOff(
		ctx context.Context,
		barberID uint,
		startDate time.Time,
		endDate time.Time,
	) ([]models.TimeOff, error)

	ListAllTimeOff(ctx context.Context, barberID uint) ([]models.TimeOff, error)

	GetTimeOff(ctx context.Context, id uint) (*models.TimeOff, error)

	CreateTimeOff(ctx context.Context, t *models.TimeOff) error

	DeleteTimeOff(ctx context.Context, id uint) error

	// -------- Appointments --------

	// ListAppointments returns non-cancelled appointments whose local
	// calendar date falls within [from, to), ordered by start time,
	// with customer and barber loaded. barberID 0 selects every barber.
	ListAppointments(
		ctx context.Context,
		barberID uint,
		from time.Time,
		to time.Time,
	) ([]models.Appointment, error)

	// LockBarberDay takes row locks over the barber's appointments for
	// the day, serializing concurrent booking attempts. Only meaningful
	// inside a transaction.
	LockBarberDay(
		ctx context.Context,
		barberID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) error

	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)

	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	// CancelAppointments bulk-transitions the given appointments to
	// cancelled with the supplied reason, without re-validation.
	CancelAppointments(ctx context.Context, ids []uint, reason string) error

	// -------- Transactions --------

	// InTransaction runs fn against a transaction-scoped repository.
	InTransaction(ctx context.Context, fn func(Repository) error) error
}
