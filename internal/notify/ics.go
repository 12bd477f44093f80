package notify

import (
	"fmt"
	"strings"
	"time"
)

// BuildICS renders a minimal RFC 5545 calendar invite for an
// appointment confirmation email.
func BuildICS(ev Event) string {
	var b strings.Builder

	stamp := func(t time.Time) string {
		return t.UTC().Format("20060102T150405Z")
	}

	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:-//Meister Barbershop//Booking//EN\r\n")
	b.WriteString("METHOD:PUBLISH\r\n")
	b.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(&b, "UID:%s@meisterbarbershop.de\r\n", ev.ID)
	fmt.Fprintf(&b, "DTSTAMP:%s\r\n", stamp(time.Now()))
	fmt.Fprintf(&b, "DTSTART:%s\r\n", stamp(ev.StartAt))
	fmt.Fprintf(&b, "DTEND:%s\r\n", stamp(ev.EndAt))
	fmt.Fprintf(&b, "SUMMARY:%s\r\n", escapeICS("Meister Barbershop - "+ev.BarberName))
	fmt.Fprintf(&b, "DESCRIPTION:%s\r\n", escapeICS(fmt.Sprintf("Appointment with %s (%d min)", ev.BarberName, ev.DurationMinutes)))
	b.WriteString("LOCATION:Hauptstr. 12\\, Erlangen\r\n")
	b.WriteString("END:VEVENT\r\n")
	b.WriteString("END:VCALENDAR\r\n")

	return b.String()
}

func escapeICS(s string) string {
	r := strings.NewReplacer("\\", "\\\\", ";", "\\;", ",", "\\,", "\n", "\\n")
	return r.Replace(s)
}
