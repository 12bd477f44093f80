package notify

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/smtp"
	"strings"
	"time"
)

// EmailSender sends confirmation and reminder mails over SMTP. A
// confirmation carries an ICS invite attachment.
type EmailSender struct {
	host string
	port string
	user string
	pass string
	from string
}

func NewEmailSender(host, port, user, pass, from string) *EmailSender {
	return &EmailSender{host: host, port: port, user: user, pass: pass, from: from}
}

func (e *EmailSender) Name() string { return "email" }

func (e *EmailSender) Send(ctx context.Context, ev Event) error {
	if e.host == "" {
		return nil // email not configured
	}
	if ev.CustomerEmail == "" {
		return nil
	}

	var subject, body string
	switch ev.Type {
	case EventAppointmentCreated:
		subject = "Your appointment at Meister Barbershop"
		body = fmt.Sprintf(
			"Hello %s,\n\nyour appointment with %s is confirmed for %s.\n\nSee you soon!\nMeister Barbershop",
			ev.CustomerName, ev.BarberName, ev.StartAt.Format("Mon, 02 Jan 2006 15:04"),
		)
	case EventAppointmentCancelled:
		subject = "Your appointment was cancelled"
		body = fmt.Sprintf(
			"Hello %s,\n\nyour appointment on %s had to be cancelled. Please book a new slot.\n\nMeister Barbershop",
			ev.CustomerName, ev.StartAt.Format("Mon, 02 Jan 2006 15:04"),
		)
	case EventAppointmentReminder:
		subject = "Reminder: your appointment tomorrow"
		body = fmt.Sprintf(
			"Hello %s,\n\nthis is a reminder for your appointment with %s on %s.\n\nMeister Barbershop",
			ev.CustomerName, ev.BarberName, ev.StartAt.Format("Mon, 02 Jan 2006 15:04"),
		)
	case EventReviewRequest:
		subject = "How was your visit?"
		body = fmt.Sprintf(
			"Hello %s,\n\nthanks for visiting %s today. If you have a minute, we would love a Google review.\n\nMeister Barbershop",
			ev.CustomerName, ev.BarberName,
		)
	default:
		return nil
	}

	msg := e.buildMessage(ev, subject, body)
	auth := smtp.PlainAuth("", e.user, e.pass, e.host)

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(e.host+":"+e.port, auth, e.from, []string{ev.CustomerEmail}, msg)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *EmailSender) buildMessage(ev Event, subject, body string) []byte {
	var b strings.Builder

	boundary := "meister-" + ev.ID

	fmt.Fprintf(&b, "From: %s\r\n", e.from)
	fmt.Fprintf(&b, "To: %s\r\n", ev.CustomerEmail)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")

	if ev.Type != EventAppointmentCreated {
		b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
		b.WriteString(body)
		return []byte(b.String())
	}

	fmt.Fprintf(&b, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", boundary)

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")

	ics := base64.StdEncoding.EncodeToString([]byte(BuildICS(ev)))
	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/calendar; method=PUBLISH; name=appointment.ics\r\n")
	b.WriteString("Content-Transfer-Encoding: base64\r\n")
	b.WriteString("Content-Disposition: attachment; filename=appointment.ics\r\n\r\n")
	b.WriteString(ics)
	fmt.Fprintf(&b, "\r\n--%s--\r\n", boundary)

	return []byte(b.String())
}
