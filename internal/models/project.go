// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// ProjectCategory groups projects on the portfolio page.
type ProjectCategory string

const (
	ProjectCategoryFullstack ProjectCategory = "fullstack"
	ProjectCategoryBackend   ProjectCategory = "backend"
	ProjectCategoryFrontend  ProjectCategory = "frontend"
)

// Valid reports whether c is one of the known categories.
func (c ProjectCategory) Valid() bool {
	switch c {
	case ProjectCategoryFullstack, ProjectCategoryBackend, ProjectCategoryFrontend:
		return true
	}
	return false
}

// ProjectAnalytics are the headline numbers shown on a project card.
type ProjectAnalytics struct {
	LinesOfCode int    `json:"linesOfCode" yaml:"linesOfCode" validate:"gte=0"`
	Uptime      string `json:"uptime" yaml:"uptime" validate:"max=40"`
	Users       string `json:"users" yaml:"users" validate:"max=40"`
	Performance string `json:"performance" yaml:"performance" validate:"max=40"`
}

// Project is a portfolio entry.
type Project struct {
	ID          string           `json:"id,omitempty" yaml:"id"`
	Title       string           `json:"title" yaml:"title" validate:"required,max=300"`
	Slug        string           `json:"slug" yaml:"slug" validate:"max=300"`
	Description string           `json:"description" yaml:"description" validate:"required,max=1000"`
	Content     string           `json:"content" yaml:"content" validate:"max=100000"`
	Category    ProjectCategory  `json:"category" yaml:"category" validate:"required,oneof=fullstack backend frontend"`
	Tech        []string         `json:"tech" yaml:"tech" validate:"max=50,dive,max=80"`
	Tags        []string         `json:"tags" yaml:"tags" validate:"max=50,dive,max=80"`
	Screenshots []string         `json:"screenshots" yaml:"screenshots" validate:"max=30"`
	GithubURL   string           `json:"githubUrl" yaml:"githubUrl" validate:"omitempty,url"`
	LiveURL     string           `json:"liveUrl" yaml:"liveUrl" validate:"omitempty,url"`
	Featured    bool             `json:"featured" yaml:"featured"`
	Analytics   ProjectAnalytics `json:"analytics" yaml:"analytics"`
	CreatedAt   time.Time        `json:"createdAt" yaml:"createdAt"`
}
