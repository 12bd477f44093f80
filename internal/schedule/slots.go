package schedule

import "time"

// Interval is a half-open [Start, End) span in salon-local time.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps implements the half-open interval test: [a,b) and [c,d)
// overlap iff a < d and c < b. Adjacent intervals do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// GenerateDailySlots computes the valid booking start instants for one
// barber-day. booked holds the day's existing non-cancelled intervals;
// called with none it yields the day's theoretical maximum, which the
// availability view uses as the "total" figure.
//
// The walk starts at opening time and advances by the slot step. It
// stops once a candidate would start at or after the latest allowed
// start. A candidate survives when it ends by closing time and does not
// overlap any booked interval.
func GenerateDailySlots(
	hours Hours,
	workingDays map[time.Weekday]bool,
	now time.Time,
	date time.Time,
	durationMinutes int,
	booked []Interval,
) []time.Time {

	today := DateOnly(now.In(hours.Location))
	target := DateOnly(date.In(hours.Location))

	// Same-day and past bookings are never offered.
	if !target.After(today) {
		return nil
	}

	weekday := target.Weekday()
	if weekday == ClosedWeekday {
		return nil
	}
	if !workingDays[weekday] {
		return nil
	}

	duration := time.Duration(durationMinutes) * time.Minute
	opening := hours.Opening.On(target, hours.Location)
	closing := hours.Closing.On(target, hours.Location)
	latestStart := hours.LatestStart.On(target, hours.Location)

	var slots []time.Time
	for cur := opening; !cur.Add(duration).After(closing); cur = cur.Add(hours.Step()) {
		if !cur.Before(latestStart) {
			break
		}

		candidate := Interval{Start: cur, End: cur.Add(duration)}
		conflict := false
		for _, b := range booked {
			if candidate.Overlaps(b) {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, cur)
		}
	}

	return slots
}
