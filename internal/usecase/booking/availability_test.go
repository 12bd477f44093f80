package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Al1mk/Meister-Barbershop/internal/httperr"
	"github.com/Al1mk/Meister-Barbershop/internal/models"
	"github.com/Al1mk/Meister-Barbershop/internal/schedule"
)

type fakeRepo struct {
	barbers      map[uint]*models.Barber
	timeOffs     []models.TimeOff
	appointments []models.Appointment
}

func (f *fakeRepo) GetBarber(ctx context.Context, id uint) (*models.Barber, error) {
	if b, ok := f.barbers[id]; ok {
		return b, nil
	}
	return nil, httperr.ErrBusiness("barber_not_found")
}
func (f *fakeRepo) ListActiveBarbers(ctx context.Context) ([]models.Barber, error) {
	return nil, nil
}
func (f *fakeRepo) GetOrCreateCustomer(ctx context.Context, name, email, phone string) (*models.Customer, error) {
	return &models.Customer{ID: 1, Name: name, Email: email, Phone: phone}, nil
}
func (f *fakeRepo) ListTimeOff(ctx context.Context, barberID uint, startDate, endDate time.Time) ([]models.TimeOff, error) {
	var out []models.TimeOff
	for _, to := range f.timeOffs {
		if to.BarberID == barberID && !to.StartDate.After(endDate) && !to.EndDate.Before(startDate) {
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
		if ap.BarberID == barberID && !ap.StartAt.Before(from) && ap.StartAt.Before(to) {
			out = append(out, ap)
		}
	}
	return out, nil
}
func (f *fakeRepo) LockBarberDay(ctx context.Context, barberID uint, dayStart, dayEnd time.Time) error {
	return nil
}
func (f *fakeRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			return &f.appointments[i], nil
		}
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}
func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	ap.ID = uint(len(f.appointments) + 1)
	f.appointments = append(f.appointments, *ap)
	return nil
}
func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error { return nil }
func (f *fakeRepo) CancelAppointments(ctx context.Context, ids []uint, reason string) error {
	return nil
}
func (f *fakeRepo) InTransaction(ctx context.Context, fn func(schedule.Repository) error) error {
	return fn(f)
}

func bookingFixture(t *testing.T) (*fakeRepo, schedule.Hours, time.Time) {
	t.Helper()

	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	hours, err := schedule.NewHours(loc, "09:30", "18:30", "18:00", 10)
	require.NoError(t, err)

	// Next Monday, far enough out that "same day" rules never trigger.
	day := schedule.DateOnly(time.Now().In(loc)).AddDate(0, 0, 1)
	for day.Weekday() != time.Monday {
		day = day.AddDate(0, 0, 1)
	}

	repo := &fakeRepo{
		barbers: map[uint]*models.Barber{
			1: {ID: 1, Name: "Ali", IsActive: true, WorkingDays: "1,2,3,4,5,6"},
			2: {ID: 2, Name: "Old Timer", IsActive: false, WorkingDays: "1,2,3,4,5,6"},
		},
	}
	return repo, hours, day
}

func TestGetAvailabilityCountsFreeAndTotal(t *testing.T) {
	repo, hours, day := bookingFixture(t)

	tenOClock := day.Add(10 * time.Hour)
	repo.appointments = []models.Appointment{{
		ID: 1, BarberID: 1,
		StartAt: tenOClock, EndAt: tenOClock.Add(30 * time.Minute),
		Status: models.AppointmentStatusBooked,
	}}

	uc := NewGetAvailability(repo, hours)
	result, err := uc.Execute(context.Background(), AvailabilityInput{
		BarberID:    1,
		Start:       day.Format("2006-01-02"),
		End:         day.Format("2006-01-02"),
		ServiceType: "haircut",
	})
	require.NoError(t, err)
	require.Len(t, result.Days, 1)

	got := result.Days[0]
	assert.Equal(t, 51, got.Total)
	// The booking knocks out 10:00 plus the four starts that would
	// overlap into it.
	assert.Equal(t, 46, got.Free)
}

func TestGetAvailabilityTimeOffZeroesFreeOnly(t *testing.T) {
	repo, hours, day := bookingFixture(t)
	repo.timeOffs = []models.TimeOff{{
		ID: 1, BarberID: 1, StartDate: day, EndDate: day,
	}}

	uc := NewGetAvailability(repo, hours)
	result, err := uc.Execute(context.Background(), AvailabilityInput{
		BarberID:    1,
		Start:       day.Format("2006-01-02"),
		End:         day.AddDate(0, 0, 1).Format("2006-01-02"),
		ServiceType: "haircut",
	})
	require.NoError(t, err)
	require.Len(t, result.Days, 2)

	blocked := result.Days[0]
	assert.Equal(t, 0, blocked.Free)
	assert.Equal(t, 51, blocked.Total)

	open := result.Days[1]
	assert.Equal(t, 51, open.Free)
}

func TestGetAvailabilityRangeLimits(t *testing.T) {
	repo, hours, day := bookingFixture(t)
	uc := NewGetAvailability(repo, hours)

	_, err := uc.Execute(context.Background(), AvailabilityInput{
		BarberID:    1,
		Start:       day.Format("2006-01-02"),
		End:         day.AddDate(0, 0, -1).Format("2006-01-02"),
		ServiceType: "haircut",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_date_range"), "got %v", err)

	_, err = uc.Execute(context.Background(), AvailabilityInput{
		BarberID:    1,
		Start:       day.Format("2006-01-02"),
		End:         day.AddDate(0, 0, 70).Format("2006-01-02"),
		ServiceType: "haircut",
	})
	assert.True(t, httperr.IsBusiness(err, "range_too_large"), "got %v", err)
}

func TestGetSlotsEmptyOnTimeOffDay(t *testing.T) {
	repo, hours, day := bookingFixture(t)
	repo.timeOffs = []models.TimeOff{{
		ID: 1, BarberID: 1, StartDate: day, EndDate: day,
	}}

	uc := NewGetSlots(repo, hours)
	result, err := uc.Execute(context.Background(), SlotsInput{
		BarberID:    1,
		Date:        day.Format("2006-01-02"),
		ServiceType: "haircut",
	})
	require.NoError(t, err)

	assert.Empty(t, result.Slots)
	assert.Equal(t, "haircut", result.ServiceType)
	assert.Equal(t, 30, result.DurationMinutes)
}

func TestGetSlotsExcludesBookedStarts(t *testing.T) {
	repo, hours, day := bookingFixture(t)

	tenOClock := day.Add(10 * time.Hour)
	repo.appointments = []models.Appointment{{
		ID: 1, BarberID: 1,
		StartAt: tenOClock, EndAt: tenOClock.Add(30 * time.Minute),
		Status: models.AppointmentStatusBooked,
	}}

	uc := NewGetSlots(repo, hours)
	result, err := uc.Execute(context.Background(), SlotsInput{
		BarberID:    1,
		Date:        day.Format("2006-01-02"),
		ServiceType: "haircut",
	})
	require.NoError(t, err)

	assert.Contains(t, result.Slots, "09:30")
	assert.Contains(t, result.Slots, "10:30")
	assert.NotContains(t, result.Slots, "10:00")
	assert.NotContains(t, result.Slots, "09:50")
}

func TestGetSlotsInactiveBarber(t *testing.T) {
	repo, hours, day := bookingFixture(t)
	uc := NewGetSlots(repo, hours)

	_, err := uc.Execute(context.Background(), SlotsInput{
		BarberID:    2,
		Date:        day.Format("2006-01-02"),
		ServiceType: "haircut",
	})
	assert.True(t, httperr.IsBusiness(err, "barber_not_found"), "got %v", err)
}
