package bot

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Al1mk/Meister-Barbershop/internal/dto"
	"github.com/Al1mk/Meister-Barbershop/internal/notify"
)

func serviceLabel(serviceType string, durationMinutes int) string {
	switch serviceType {
	case "haircut":
		return "Haircut"
	case "hair_beard":
		return "Hair + Beard"
	default:
		return fmt.Sprintf("%d min", durationMinutes)
	}
}

// formatDaySchedule renders one day's appointments grouped per barber,
// ordered by start time within each group.
func formatDaySchedule(title string, appointments []dto.AppointmentListDTO) string {
	if len(appointments) == 0 {
		return title + "\n\nNo appointments."
	}

	byBarber := make(map[string][]dto.AppointmentListDTO)
	for _, ap := range appointments {
		byBarber[ap.BarberName] = append(byBarber[ap.BarberName], ap)
	}

	names := make([]string, 0, len(byBarber))
	for name := range byBarber {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(title)
	for _, name := range names {
		b.WriteString("\n\n💈 " + name)
		for _, ap := range byBarber[name] {
			fmt.Fprintf(&b, "\n  %s–%s  %s — %s",
				ap.StartAt.Format("15:04"),
				ap.EndAt.Format("15:04"),
				serviceLabel(ap.ServiceType, ap.DurationMinutes),
				ap.CustomerName,
			)
		}
	}
	return b.String()
}

func formatStats(date time.Time, appointments []dto.AppointmentListDTO) string {
	perBarber := make(map[string]int)
	var minutes int
	for _, ap := range appointments {
		perBarber[ap.BarberName]++
		minutes += ap.DurationMinutes
	}

	names := make([]string, 0, len(perBarber))
	for name := range perBarber {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "📊 %s\nAppointments: %d\nBooked time: %dh %02dm",
		date.Format("Mon, 02 Jan"), len(appointments), minutes/60, minutes%60)
	for _, name := range names {
		fmt.Fprintf(&b, "\n  %s: %d", name, perBarber[name])
	}
	return b.String()
}

// formatEvent renders a backend notification for the group chat.
func formatEvent(ev notify.Event) string {
	switch ev.Type {
	case notify.EventAppointmentCreated:
		return fmt.Sprintf(
			"🆕 New booking\n%s\n%s–%s with %s\n%s — %s (%s)",
			ev.StartAt.Format("Mon, 02 Jan"),
			ev.StartAt.Format("15:04"),
			ev.EndAt.Format("15:04"),
			ev.BarberName,
			ev.CustomerName,
			ev.CustomerPhone,
			serviceLabel(ev.ServiceType, ev.DurationMinutes),
		)
	case notify.EventAppointmentCancelled:
		return fmt.Sprintf(
			"❌ Cancelled\n%s %s with %s\n%s — %s",
			ev.StartAt.Format("Mon, 02 Jan"),
			ev.StartAt.Format("15:04"),
			ev.BarberName,
			ev.CustomerName,
			ev.CustomerPhone,
		)
	case notify.EventContactMessage:
		return "✉️ " + ev.Text
	default:
		if ev.Text != "" {
			return ev.Text
		}
		return fmt.Sprintf("Event: %s", ev.Type)
	}
}
