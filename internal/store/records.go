// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"time"

	"folio/internal/models"
)

// Table names.
const (
	TableHero            = "hero"
	TableAbout           = "about"
	TableExperiences     = "experiences"
	TableEducation       = "education"
	TableProjects        = "projects"
	TableBlogPosts       = "blog_posts"
	TableSkills          = "skills"
	TableProfileImage    = "profile_image"
	TableResume          = "resume"
	TableContactMessages = "contact_messages"
	TableAppointments    = "appointments"
)

// HeroRecord is a row of the hero table.
type HeroRecord struct {
	ID              string    `db:"id"`
	Name            string    `db:"name"`
	Title           string    `db:"title"`
	Subtitle        string    `db:"subtitle"`
	Description     string    `db:"description"`
	CTAText         string    `db:"cta_text"`
	CTALink         string    `db:"cta_link"`
	BackgroundImage string    `db:"background_image"`
	CreatedAt       time.Time `db:"created_at"`
}

// AboutRecord is a row of the about table.
type AboutRecord struct {
	ID                string    `db:"id"`
	Title             string    `db:"title"`
	Description       string    `db:"description"`
	Highlights        []string  `db:"highlights"`
	YearsExperience   int       `db:"years_experience"`
	ProjectsCompleted int       `db:"projects_completed"`
	CreatedAt         time.Time `db:"created_at"`
}

// ExperienceRecord is a row of the experiences table.
type ExperienceRecord struct {
	ID           string    `db:"id"`
	Company      string    `db:"company"`
	Position     string    `db:"position"`
	Location     string    `db:"location"`
	StartDate    string    `db:"start_date"`
	EndDate      string    `db:"end_date"`
	IsCurrent    bool      `db:"is_current"`
	Description  string    `db:"description"`
	Technologies []string  `db:"technologies"`
	CreatedAt    time.Time `db:"created_at"`
}

// EducationRecord is a row of the education table.
type EducationRecord struct {
	ID          string    `db:"id"`
	Institution string    `db:"institution"`
	Degree      string    `db:"degree"`
	Field       string    `db:"field"`
	StartDate   string    `db:"start_date"`
	EndDate     string    `db:"end_date"`
	GPA         string    `db:"gpa"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// ProjectRecord is a row of the projects table. Analytics is a jsonb column
// using the application's key names.
type ProjectRecord struct {
	ID          string                  `db:"id"`
	Title       string                  `db:"title"`
	Slug        string                  `db:"slug"`
	Description string                  `db:"description"`
	Content     string                  `db:"content"`
	Category    string                  `db:"category"`
	Tech        []string                `db:"tech"`
	Tags        []string                `db:"tags"`
	Screenshots []string                `db:"screenshots"`
	GithubURL   string                  `db:"github_url"`
	LiveURL     string                  `db:"live_url"`
	IsFeatured  bool                    `db:"is_featured"`
	Analytics   models.ProjectAnalytics `db:"analytics"`
	CreatedAt   time.Time               `db:"created_at"`
}

// BlogPostRecord is a row of the blog_posts table.
type BlogPostRecord struct {
	ID          string     `db:"id"`
	Title       string     `db:"title"`
	Slug        string     `db:"slug"`
	Excerpt     string     `db:"excerpt"`
	Content     string     `db:"content"`
	CoverImage  string     `db:"cover_image"`
	ReadTime    int        `db:"read_time"`
	Tags        []string   `db:"tags"`
	IsPublished bool       `db:"is_published"`
	PublishedAt *time.Time `db:"published_at"`
	CreatedAt   time.Time  `db:"created_at"`
}

// SkillRecord is a row of the skills table.
type SkillRecord struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	Category   string    `db:"category"`
	Level      int       `db:"level"`
	Icon       string    `db:"icon"`
	OrderIndex int       `db:"order_index"`
	CreatedAt  time.Time `db:"created_at"`
}

// ProfileImageRecord is a row of the profile_image table.
type ProfileImageRecord struct {
	ID        string    `db:"id"`
	ImageURL  string    `db:"image_url"`
	AltText   string    `db:"alt_text"`
	CreatedAt time.Time `db:"created_at"`
}

// ResumeRecord is a row of the resume table.
type ResumeRecord struct {
	ID        string    `db:"id"`
	FileURL   string    `db:"file_url"`
	FileName  string    `db:"file_name"`
	CreatedAt time.Time `db:"created_at"`
}

// ContactMessageRecord is a row of the contact_messages table.
type ContactMessageRecord struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Subject   string    `db:"subject"`
	Message   string    `db:"message"`
	IsRead    bool      `db:"is_read"`
	CreatedAt time.Time `db:"created_at"`
}

// AppointmentRecord is a row of the appointments table.
type AppointmentRecord struct {
	ID              string    `db:"id"`
	Name            string    `db:"name"`
	Email           string    `db:"email"`
	Phone           string    `db:"phone"`
	AppointmentDate string    `db:"appointment_date"`
	AppointmentTime string    `db:"appointment_time"`
	Service         string    `db:"service"`
	Message         string    `db:"message"`
	Status          string    `db:"status"`
	CreatedAt       time.Time `db:"created_at"`
}

// Tables bundles the remote table of every entity.
type Tables struct {
	Hero            Table[HeroRecord]
	About           Table[AboutRecord]
	Experiences     Table[ExperienceRecord]
	Education       Table[EducationRecord]
	Projects        Table[ProjectRecord]
	BlogPosts       Table[BlogPostRecord]
	Skills          Table[SkillRecord]
	ProfileImage    Table[ProfileImageRecord]
	Resume          Table[ResumeRecord]
	ContactMessages Table[ContactMessageRecord]
	Appointments    Table[AppointmentRecord]
}

// NewTables returns PostgreSQL-backed tables sharing one connection pool.
func NewTables(db Querier) *Tables {
	return &Tables{
		Hero:            NewTable[HeroRecord](db, TableHero),
		About:           NewTable[AboutRecord](db, TableAbout),
		Experiences:     NewTable[ExperienceRecord](db, TableExperiences),
		Education:       NewTable[EducationRecord](db, TableEducation),
		Projects:        NewTable[ProjectRecord](db, TableProjects),
		BlogPosts:       NewTable[BlogPostRecord](db, TableBlogPosts),
		Skills:          NewTable[SkillRecord](db, TableSkills),
		ProfileImage:    NewTable[ProfileImageRecord](db, TableProfileImage),
		Resume:          NewTable[ResumeRecord](db, TableResume),
		ContactMessages: NewTable[ContactMessageRecord](db, TableContactMessages),
		Appointments:    NewTable[AppointmentRecord](db, TableAppointments),
	}
}
