package booking

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Al1mk/Meister-Barbershop/internal/audit"
	"github.com/Al1mk/Meister-Barbershop/internal/httperr"
	"github.com/Al1mk/Meister-Barbershop/internal/models"
	"github.com/Al1mk/Meister-Barbershop/internal/notify"
	"github.com/Al1mk/Meister-Barbershop/internal/schedule"
)

func newCreateUC(repo *fakeRepo, hours schedule.Hours) *CreateAppointment {
	notifier := notify.NewDispatcher(zerolog.Nop(), nil)
	auditor := audit.NewDispatcher(audit.New(nil))
	return NewCreateAppointment(repo, hours, notifier, auditor)
}

func createInput(day time.Time) CreateAppointmentInput {
	return CreateAppointmentInput{
		BarberID:      1,
		CustomerName:  "Jonas",
		CustomerEmail: "jonas@example.com",
		CustomerPhone: "+491511234567",
		ServiceType:   "haircut",
		Date:          day.Format("2006-01-02"),
		Time:          "10:00",
	}
}

func TestCreateAppointmentHappyPath(t *testing.T) {
	repo, hours, day := bookingFixture(t)
	uc := newCreateUC(repo, hours)

	ap, err := uc.Execute(context.Background(), createInput(day))
	require.NoError(t, err)

	assert.Equal(t, models.AppointmentStatusBooked, ap.Status)
	assert.Equal(t, "haircut", ap.ServiceType)
	assert.Equal(t, 30, ap.DurationMinutes)
	assert.Equal(t, ap.StartAt.Add(30*time.Minute), ap.EndAt)
	assert.Equal(t, "Jonas", ap.Customer.Name)
	assert.Len(t, repo.appointments, 1)
}

func TestCreateAppointmentRejectsOverlap(t *testing.T) {
	repo, hours, day := bookingFixture(t)
	uc := newCreateUC(repo, hours)

	_, err := uc.Execute(context.Background(), createInput(day))
	require.NoError(t, err)

	in := createInput(day)
	in.Time = "10:10"
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "time_conflict"), "got %v", err)

	// Back to back is fine.
	in.Time = "10:30"
	_, err = uc.Execute(context.Background(), in)
	assert.NoError(t, err)
}

func TestCreateAppointmentInactiveBarber(t *testing.T) {
	repo, hours, day := bookingFixture(t)
	uc := newCreateUC(repo, hours)

	in := createInput(day)
	in.BarberID = 2
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "barber_not_found"), "got %v", err)
}

func TestCreateAppointmentBadTimestamp(t *testing.T) {
	repo, hours, day := bookingFixture(t)
	uc := newCreateUC(repo, hours)

	in := createInput(day)
	in.Time = "quarter past ten"
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"), "got %v", err)
}

func TestTransitionCancelOnlyFromBooked(t *testing.T) {
	repo, hours, day := bookingFixture(t)

	createUC := newCreateUC(repo, hours)
	ap, err := createUC.Execute(context.Background(), createInput(day))
	require.NoError(t, err)

	notifier := notify.NewDispatcher(zerolog.Nop(), nil)
	auditor := audit.NewDispatcher(audit.New(nil))
	uc := NewTransitionAppointment(repo, notifier, auditor)

	cancelled, err := uc.Cancel(context.Background(), ap.ID, "", "admin")
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentStatusCancelled, cancelled.Status)
	assert.Equal(t, "Cancelled by staff", cancelled.CancelReason)

	_, err = uc.Cancel(context.Background(), ap.ID, "", "admin")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"), "got %v", err)
}

func TestTransitionComplete(t *testing.T) {
	repo, hours, day := bookingFixture(t)

	createUC := newCreateUC(repo, hours)
	ap, err := createUC.Execute(context.Background(), createInput(day))
	require.NoError(t, err)

	notifier := notify.NewDispatcher(zerolog.Nop(), nil)
	auditor := audit.NewDispatcher(audit.New(nil))
	uc := NewTransitionAppointment(repo, notifier, auditor)

	completed, err := uc.Complete(context.Background(), ap.ID, "admin")
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentStatusCompleted, completed.Status)

	_, err = uc.Cancel(context.Background(), 999, "", "admin")
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"), "got %v", err)
}
