// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package mail sends notification emails. SMTPSender delivers a message
// directly; Client posts it to a send-email endpoint, which is how the rest
// of the application reaches the mail boundary.
package mail

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrNotConfigured is returned when no SMTP server is available.
var ErrNotConfigured = errors.New("mail: delivery not configured")

// Message is one outgoing email with an HTML body.
type Message struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	HTML    string `json:"html" validate:"required"`
}

// SMTPConfig describes an SMTP server. It doubles as the optional "config"
// object of a send-email request.
type SMTPConfig struct {
	Host     string `json:"host" validate:"omitempty,hostname|ip"`
	Port     string `json:"port" validate:"omitempty,numeric"`
	User     string `json:"user"`
	Password string `json:"password"`
	From     string `json:"from" validate:"omitempty,email"`
}

// ErrHostNotAllowed is returned by Merge when a request names an SMTP host
// the server is not configured to use.
var ErrHostNotAllowed = errors.New("mail: smtp host not allowed")

// Merge returns c with empty fields taken from def. c may only name def's
// host or one of allowed; anything else returns ErrHostNotAllowed so a
// request cannot point the server at an arbitrary address.
func (c SMTPConfig) Merge(def SMTPConfig, allowed []string) (SMTPConfig, error) {
	if c.Host == "" {
		return def, nil
	}
	if !strings.EqualFold(c.Host, def.Host) && !slices.ContainsFunc(allowed, func(h string) bool {
		return strings.EqualFold(h, c.Host)
	}) {
		return SMTPConfig{}, fmt.Errorf("%w: %s", ErrHostNotAllowed, c.Host)
	}
	if c.Port == "" {
		c.Port = def.Port
	}
	if c.From == "" {
		c.From = def.From
	}
	return c, nil
}

// Request is the body of a send-email call.
type Request struct {
	Message
	Config *SMTPConfig `json:"config,omitempty"`
}

// Response is the reply of a send-email call.
type Response struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Sender delivers a message.
type Sender interface {
	Send(ctx context.Context, m Message) error
}

// checkHeaders rejects header injection through the address or subject.
func checkHeaders(m Message) error {
	if strings.ContainsAny(m.To, "\r\n") || strings.ContainsAny(m.Subject, "\r\n") {
		return fmt.Errorf("mail: header contains a line break")
	}
	return nil
}
