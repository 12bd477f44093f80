package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Al1mk/Meister-Barbershop/internal/httperr"
	"github.com/Al1mk/Meister-Barbershop/internal/models"
)

func testHours(t *testing.T) Hours {
	t.Helper()

	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	hours, err := NewHours(loc, "09:30", "18:30", "18:00", 10)
	require.NoError(t, err)
	return hours
}

func TestNewHoursRejectsBadInput(t *testing.T) {
	loc := time.UTC

	_, err := NewHours(loc, "9h30", "18:30", "18:00", 10)
	assert.Error(t, err)

	_, err = NewHours(loc, "09:30", "18:30", "18:00", 0)
	assert.Error(t, err)
}

func TestResolveService(t *testing.T) {
	tests := []struct {
		name         string
		serviceType  string
		duration     int
		wantType     string
		wantDuration int
		wantErr      string
	}{
		{name: "haircut", serviceType: "haircut", wantType: "haircut", wantDuration: 30},
		{name: "hair and beard", serviceType: "hair_beard", wantType: "hair_beard", wantDuration: 45},
		{name: "explicit matching duration", serviceType: "haircut", duration: 30, wantType: "haircut", wantDuration: 30},
		{name: "bare duration", duration: 40, wantDuration: 40},
		{name: "unknown type", serviceType: "massage", wantErr: "invalid_service_type"},
		{name: "mismatched duration", serviceType: "haircut", duration: 45, wantErr: "service_duration_mismatch"},
		{name: "negative duration", duration: -10, wantErr: "invalid_duration"},
		{name: "nothing given", wantErr: "missing_duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotDuration, err := ResolveService(tt.serviceType, tt.duration)

			if tt.wantErr != "" {
				assert.True(t, httperr.IsBusiness(err, tt.wantErr), "got %v", err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantType, gotType)
			assert.Equal(t, tt.wantDuration, gotDuration)
		})
	}
}

func TestAllowedWeekdaysNeverIncludesSunday(t *testing.T) {
	barber := &models.Barber{WorkingDays: "0,1,2,3,4,5,6"}

	days := AllowedWeekdays(barber)

	assert.False(t, days[time.Sunday])
	for wd := time.Monday; wd <= time.Saturday; wd++ {
		assert.True(t, days[wd], wd.String())
	}
}

func TestWorkingDaysSetIgnoresGarbage(t *testing.T) {
	barber := &models.Barber{WorkingDays: "5, 6, x, 9"}

	days := barber.WorkingDaysSet()

	assert.Equal(t, map[time.Weekday]bool{time.Friday: true, time.Saturday: true}, days)
}

func TestTimeOfDayOn(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	tod, err := ParseTimeOfDay("09:30")
	require.NoError(t, err)

	date := time.Date(2026, 9, 7, 15, 44, 12, 0, loc)
	pinned := tod.On(date, loc)

	assert.Equal(t, time.Date(2026, 9, 7, 9, 30, 0, 0, loc), pinned)
}
