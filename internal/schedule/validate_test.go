package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Al1mk/Meister-Barbershop/internal/httperr"
	"github.com/Al1mk/Meister-Barbershop/internal/models"
)

// fakeRepo serves canned time-off and appointment rows; everything else
// is unused by the validator.
type fakeRepo struct {
	timeOffs     []models.TimeOff
	appointments []models.Appointment
}

func (f *fakeRepo) GetBarber(ctx context.Context, id uint) (*models.Barber, error) { return nil, nil }
func (f *fakeRepo) ListActiveBarbers(ctx context.Context) ([]models.Barber, error) {
	return nil, nil
}
func (f *fakeRepo) GetOrCreateCustomer(ctx context.Context, name, email, phone string) (*models.Customer, error) {
	return nil, nil
}
func (f *fakeRepo) ListTimeOff(ctx context.Context, barberID uint, startDate, endDate time.Time) ([]models.TimeOff, error) {
	var out []models.TimeOff
	for _, to := range f.timeOffs {
		if !to.StartDate.After(endDate) && !to.EndDate.Before(startDate) {
			out = append(out, to)
		}
	}
	return out, nil
}
func (f *fakeRepo) ListAllTimeOff(ctx context.Context, barberID uint) ([]models.TimeOff, error) {
	return f.timeOffs, nil
}
func (f *fakeRepo) GetTimeOff(ctx context.Context, id uint) (*models.TimeOff, error) {
	return nil, nil
}
func (f *fakeRepo) CreateTimeOff(ctx context.Context, t *models.TimeOff) error { return nil }
func (f *fakeRepo) DeleteTimeOff(ctx context.Context, id uint) error           { return nil }
func (f *fakeRepo) ListAppointments(ctx context.Context, barberID uint, from, to time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if !ap.StartAt.Before(from) && ap.StartAt.Before(to) {
			out = append(out, ap)
		}
	}
	return out, nil
}
func (f *fakeRepo) LockBarberDay(ctx context.Context, barberID uint, dayStart, dayEnd time.Time) error {
	return nil
}
func (f *fakeRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	return nil, nil
}
func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error { return nil }
func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error { return nil }
func (f *fakeRepo) CancelAppointments(ctx context.Context, ids []uint, reason string) error {
	return nil
}
func (f *fakeRepo) InTransaction(ctx context.Context, fn func(Repository) error) error {
	return fn(f)
}

func validationFixture(t *testing.T) (Hours, *models.Barber, time.Time, time.Time) {
	t.Helper()

	hours := testHours(t)
	barber := &models.Barber{ID: 1, Name: "Ali", IsActive: true, WorkingDays: "1,2,3,4,5,6"}

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, hours.Location) // a Tuesday
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, hours.Location)  // next Monday

	return hours, barber, now, day
}

func TestValidateAcceptsAlignedFutureSlot(t *testing.T) {
	hours, barber, now, day := validationFixture(t)
	v := NewValidator(hours, &fakeRepo{})

	ap := &models.Appointment{
		BarberID:    1,
		StartAt:     day.Add(10 * time.Hour), // 10:00
		ServiceType: "haircut",
	}

	require.NoError(t, v.Validate(context.Background(), ap, barber, now))

	assert.Equal(t, 30, ap.DurationMinutes)
	assert.Equal(t, ap.StartAt.Add(30*time.Minute), ap.EndAt)
	assert.Equal(t, models.AppointmentStatusBooked, ap.Status)
}

func TestValidateRejectionChain(t *testing.T) {
	hours, barber, now, day := validationFixture(t)

	at := func(h, m int) time.Time {
		return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, hours.Location)
	}

	tests := []struct {
		name     string
		ap       models.Appointment
		wantCode string
	}{
		{
			name:     "missing start",
			ap:       models.Appointment{BarberID: 1, ServiceType: "haircut"},
			wantCode: "missing_start",
		},
		{
			name:     "no service and no duration",
			ap:       models.Appointment{BarberID: 1, StartAt: at(10, 0)},
			wantCode: "missing_duration",
		},
		{
			name:     "same day",
			ap:       models.Appointment{BarberID: 1, StartAt: now.Add(2 * time.Hour), ServiceType: "haircut"},
			wantCode: "past_or_today",
		},
		{
			name: "sunday",
			ap: models.Appointment{
				BarberID:    1,
				StartAt:     at(10, 0).AddDate(0, 0, 6), // following Sunday
				ServiceType: "haircut",
			},
			wantCode: "salon_closed",
		},
		{
			name:     "before opening",
			ap:       models.Appointment{BarberID: 1, StartAt: at(9, 0), ServiceType: "haircut"},
			wantCode: "outside_business_hours",
		},
		{
			name:     "off the step grid",
			ap:       models.Appointment{BarberID: 1, StartAt: at(10, 15), ServiceType: "haircut"},
			wantCode: "unaligned_start",
		},
		{
			name:     "ragged seconds",
			ap:       models.Appointment{BarberID: 1, StartAt: at(10, 0).Add(30 * time.Second), ServiceType: "haircut"},
			wantCode: "unaligned_start",
		},
		{
			name:     "at latest start boundary",
			ap:       models.Appointment{BarberID: 1, StartAt: at(18, 0), ServiceType: "haircut"},
			wantCode: "too_late_start",
		},
		{
			name:     "would end after closing",
			ap:       models.Appointment{BarberID: 1, StartAt: at(17, 50), ServiceType: "hair_beard"},
			wantCode: "outside_business_hours",
		},
	}

	v := NewValidator(hours, &fakeRepo{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), &tt.ap, barber, now)
			assert.True(t, httperr.IsBusiness(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestValidateBarberNotWorking(t *testing.T) {
	hours, _, now, day := validationFixture(t)
	reza := &models.Barber{ID: 3, Name: "Reza", IsActive: true, WorkingDays: "5,6"}

	v := NewValidator(hours, &fakeRepo{})
	ap := &models.Appointment{BarberID: 3, StartAt: day.Add(10 * time.Hour), ServiceType: "haircut"}

	err := v.Validate(context.Background(), ap, reza, now)
	assert.True(t, httperr.IsBusiness(err, "barber_not_working"), "got %v", err)
}

func TestValidateTimeOffBlocksDay(t *testing.T) {
	hours, barber, now, day := validationFixture(t)

	repo := &fakeRepo{timeOffs: []models.TimeOff{{
		BarberID:  1,
		StartDate: day,
		EndDate:   day.AddDate(0, 0, 2),
	}}}

	v := NewValidator(hours, repo)
	ap := &models.Appointment{BarberID: 1, StartAt: day.Add(10 * time.Hour), ServiceType: "haircut"}

	err := v.Validate(context.Background(), ap, barber, now)
	assert.True(t, httperr.IsBusiness(err, "time_off_blocked"), "got %v", err)
}

func TestValidateOverlapAndAdjacency(t *testing.T) {
	hours, barber, now, day := validationFixture(t)

	at := func(h, m int) time.Time {
		return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, hours.Location)
	}

	repo := &fakeRepo{appointments: []models.Appointment{{
		ID:       42,
		BarberID: 1,
		StartAt:  at(10, 0),
		EndAt:    at(10, 30),
		Status:   models.AppointmentStatusBooked,
	}}}
	v := NewValidator(hours, repo)

	overlapping := &models.Appointment{BarberID: 1, StartAt: at(10, 10), ServiceType: "haircut"}
	err := v.Validate(context.Background(), overlapping, barber, now)
	assert.True(t, httperr.IsBusiness(err, "time_conflict"), "got %v", err)

	adjacent := &models.Appointment{BarberID: 1, StartAt: at(10, 30), ServiceType: "haircut"}
	assert.NoError(t, v.Validate(context.Background(), adjacent, barber, now))

	// Re-validating the stored appointment itself must not self-conflict.
	self := &models.Appointment{ID: 42, BarberID: 1, StartAt: at(10, 0), ServiceType: "haircut"}
	assert.NoError(t, v.Validate(context.Background(), self, barber, now))
}
