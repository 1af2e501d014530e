// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package mail

import (
	"fmt"
	"html"
	"strings"

	"folio/internal/models"
)

// ContactNotification tells the site owner about a new contact message.
func ContactNotification(owner string, m models.ContactMessage) Message {
	return Message{
		To:      owner,
		Subject: "New message: " + oneLine(m.Subject),
		HTML: body("New contact message",
			row("From", m.Name+" <"+m.Email+">"),
			row("Subject", m.Subject),
			para(m.Message),
		),
	}
}

// AppointmentNotification tells the site owner about a new booking.
func AppointmentNotification(owner string, a models.Appointment) Message {
	return Message{
		To:      owner,
		Subject: fmt.Sprintf("New booking: %s on %s at %s", oneLine(a.Service), a.Date, a.Time),
		HTML: body("New appointment request",
			row("Name", a.Name),
			row("Email", a.Email),
			row("Phone", a.Phone),
			row("When", a.Date+" "+a.Time),
			row("Service", a.Service),
			para(a.Message),
		),
	}
}

// AppointmentConfirmation acknowledges a booking to the client.
func AppointmentConfirmation(a models.Appointment) Message {
	return Message{
		To:      a.Email,
		Subject: "Your appointment request was received",
		HTML: body("Thanks, "+a.Name,
			para(fmt.Sprintf("Your request for %s on %s at %s is pending confirmation.", a.Service, a.Date, a.Time)),
		),
	}
}

func body(title string, parts ...string) string {
	return "<h2>" + html.EscapeString(title) + "</h2>" + strings.Join(parts, "")
}

func row(label, value string) string {
	if value == "" {
		return ""
	}
	return "<p><strong>" + html.EscapeString(label) + ":</strong> " + html.EscapeString(value) + "</p>"
}

func para(text string) string {
	if text == "" {
		return ""
	}
	return "<p>" + strings.ReplaceAll(html.EscapeString(text), "\n", "<br>") + "</p>"
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
