// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Experience is one entry of the work history.
type Experience struct {
	ID           string    `json:"id,omitempty" yaml:"id"`
	Company      string    `json:"company" yaml:"company" validate:"required,max=200"`
	Position     string    `json:"position" yaml:"position" validate:"required,max=200"`
	Location     string    `json:"location" yaml:"location" validate:"max=200"`
	StartDate    string    `json:"startDate" yaml:"startDate" validate:"required,max=40"`
	EndDate      string    `json:"endDate" yaml:"endDate" validate:"max=40"`
	Current      bool      `json:"current" yaml:"current"`
	Description  string    `json:"description" yaml:"description" validate:"max=5000"`
	Technologies []string  `json:"technologies" yaml:"technologies" validate:"max=50,dive,max=80"`
	CreatedAt    time.Time `json:"createdAt" yaml:"createdAt"`
}

// Education is one entry of the education history.
type Education struct {
	ID          string    `json:"id,omitempty" yaml:"id"`
	Institution string    `json:"institution" yaml:"institution" validate:"required,max=200"`
	Degree      string    `json:"degree" yaml:"degree" validate:"required,max=200"`
	Field       string    `json:"field" yaml:"field" validate:"max=200"`
	StartDate   string    `json:"startDate" yaml:"startDate" validate:"required,max=40"`
	EndDate     string    `json:"endDate" yaml:"endDate" validate:"max=40"`
	GPA         string    `json:"gpa" yaml:"gpa" validate:"max=20"`
	Description string    `json:"description" yaml:"description" validate:"max=5000"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
}

// Skill is a single entry of the skills grid. Skills are displayed by
// OrderIndex ascending.
type Skill struct {
	ID         string    `json:"id,omitempty" yaml:"id"`
	Name       string    `json:"name" yaml:"name" validate:"required,max=100"`
	Category   string    `json:"category" yaml:"category" validate:"required,max=100"`
	Level      int       `json:"level" yaml:"level" validate:"gte=0,lte=100"`
	Icon       string    `json:"icon" yaml:"icon" validate:"max=200"`
	OrderIndex int       `json:"orderIndex" yaml:"orderIndex" validate:"gte=0"`
	CreatedAt  time.Time `json:"createdAt" yaml:"createdAt"`
}
