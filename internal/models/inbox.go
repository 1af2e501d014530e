// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// ContactMessage is a submission of the public contact form.
type ContactMessage struct {
	ID        string    `json:"id,omitempty" yaml:"id"`
	Name      string    `json:"name" yaml:"name" validate:"required,max=120"`
	Email     string    `json:"email" yaml:"email" validate:"required,email,max=254"`
	Subject   string    `json:"subject" yaml:"subject" validate:"max=200"`
	Message   string    `json:"message" yaml:"message" validate:"required,min=10,max=5000"`
	Read      bool      `json:"read" yaml:"read"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

// AppointmentStatus is the booking lifecycle state.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment is a booking request. Date is YYYY-MM-DD and Time is HH:MM,
// both in the site owner's local time.
type Appointment struct {
	ID        string            `json:"id,omitempty" yaml:"id"`
	Name      string            `json:"name" yaml:"name" validate:"required,max=120"`
	Email     string            `json:"email" yaml:"email" validate:"required,email,max=254"`
	Phone     string            `json:"phone" yaml:"phone" validate:"max=40"`
	Date      string            `json:"date" yaml:"date" validate:"required,datetime=2006-01-02"`
	Time      string            `json:"time" yaml:"time" validate:"required,datetime=15:04"`
	Service   string            `json:"service" yaml:"service" validate:"required,max=120"`
	Message   string            `json:"message" yaml:"message" validate:"max=5000"`
	Status    AppointmentStatus `json:"status" yaml:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
	CreatedAt time.Time         `json:"createdAt" yaml:"createdAt"`
}
