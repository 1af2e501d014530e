// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the portfolio entities as the application sees them.
// Field names here are the application's names; the remote store uses its own
// column names (see package store for the mapping).
package models

import "time"

// Hero is the landing section shown at the top of the public site.
// There is at most one logical hero record.
type Hero struct {
	ID              string    `json:"id,omitempty" yaml:"id"`
	Name            string    `json:"name" yaml:"name" validate:"required,max=120"`
	Title           string    `json:"title" yaml:"title" validate:"required,max=200"`
	Subtitle        string    `json:"subtitle" yaml:"subtitle" validate:"max=300"`
	Description     string    `json:"description" yaml:"description" validate:"max=2000"`
	CTAText         string    `json:"ctaText" yaml:"ctaText" validate:"max=80"`
	CTALink         string    `json:"ctaLink" yaml:"ctaLink" validate:"omitempty,max=500"`
	BackgroundImage string    `json:"backgroundImage" yaml:"backgroundImage" validate:"omitempty,max=2000"`
	CreatedAt       time.Time `json:"createdAt" yaml:"createdAt"`
}

// About holds the biography section.
type About struct {
	ID                string    `json:"id,omitempty" yaml:"id"`
	Title             string    `json:"title" yaml:"title" validate:"required,max=200"`
	Description       string    `json:"description" yaml:"description" validate:"required,max=10000"`
	Highlights        []string  `json:"highlights" yaml:"highlights" validate:"max=20,dive,max=300"`
	YearsExperience   int       `json:"yearsExperience" yaml:"yearsExperience" validate:"gte=0,lte=80"`
	ProjectsCompleted int       `json:"projectsCompleted" yaml:"projectsCompleted" validate:"gte=0"`
	CreatedAt         time.Time `json:"createdAt" yaml:"createdAt"`
}

// ProfileImage points at the portrait shown in the about section.
type ProfileImage struct {
	ID        string    `json:"id,omitempty" yaml:"id"`
	URL       string    `json:"url" yaml:"url" validate:"required"`
	Alt       string    `json:"alt" yaml:"alt" validate:"max=300"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

// Resume points at the downloadable CV.
type Resume struct {
	ID        string    `json:"id,omitempty" yaml:"id"`
	URL       string    `json:"url" yaml:"url" validate:"required"`
	FileName  string    `json:"fileName" yaml:"fileName" validate:"max=255"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}
