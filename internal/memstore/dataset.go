// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package memstore holds the in-memory fallback dataset: seed records served
// and mutated whenever the remote store cannot be reached. The dataset lives
// for the process lifetime and is never persisted.
package memstore

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"folio/internal/models"
)

//go:embed seed.yaml
var defaultSeed []byte

// seedFile mirrors the layout of seed.yaml.
type seedFile struct {
	Hero            models.Hero             `yaml:"hero"`
	About           models.About            `yaml:"about"`
	ProfileImage    models.ProfileImage     `yaml:"profileImage"`
	Resume          models.Resume           `yaml:"resume"`
	Experiences     []models.Experience     `yaml:"experiences"`
	Education       []models.Education      `yaml:"education"`
	Projects        []models.Project        `yaml:"projects"`
	BlogPosts       []models.BlogPost       `yaml:"blogPosts"`
	Skills          []models.Skill          `yaml:"skills"`
	ContactMessages []models.ContactMessage `yaml:"contactMessages"`
	Appointments    []models.Appointment    `yaml:"appointments"`
}

// Dataset is the fallback repository. Construct one per process (or per
// test) and share it between the services.
type Dataset struct {
	seed []byte

	Hero         *Value[models.Hero]
	About        *Value[models.About]
	ProfileImage *Value[models.ProfileImage]
	Resume       *Value[models.Resume]

	Experiences     *Collection[models.Experience]
	Education       *Collection[models.Education]
	Projects        *Collection[models.Project]
	BlogPosts       *Collection[models.BlogPost]
	Skills          *Collection[models.Skill]
	ContactMessages *Collection[models.ContactMessage]
	Appointments    *Collection[models.Appointment]
}

// New returns a dataset loaded from the embedded seed.
func New() (*Dataset, error) {
	return FromYAML(defaultSeed)
}

// FromYAML returns a dataset loaded from the given seed document.
func FromYAML(seed []byte) (*Dataset, error) {
	d := &Dataset{
		seed:         seed,
		Hero:         NewValue(models.Hero{}),
		About:        NewValue(models.About{}),
		ProfileImage: NewValue(models.ProfileImage{}),
		Resume:       NewValue(models.Resume{}),

		Experiences:     NewCollection(func(e *models.Experience) *string { return &e.ID }, nil),
		Education:       NewCollection(func(e *models.Education) *string { return &e.ID }, nil),
		Projects:        NewCollection(func(p *models.Project) *string { return &p.ID }, nil),
		BlogPosts:       NewCollection(func(p *models.BlogPost) *string { return &p.ID }, nil),
		Skills:          NewCollection(func(s *models.Skill) *string { return &s.ID }, nil),
		ContactMessages: NewCollection(func(m *models.ContactMessage) *string { return &m.ID }, nil),
		Appointments:    NewCollection(func(a *models.Appointment) *string { return &a.ID }, nil),
	}
	if err := d.Reset(); err != nil {
		return nil, err
	}
	return d, nil
}

// Reset discards every local mutation and reloads the seed records.
func (d *Dataset) Reset() error {
	var f seedFile
	if err := yaml.Unmarshal(d.seed, &f); err != nil {
		return fmt.Errorf("memstore: parse seed: %w", err)
	}

	d.Hero.Set(f.Hero)
	d.About.Set(f.About)
	d.ProfileImage.Set(f.ProfileImage)
	d.Resume.Set(f.Resume)

	d.Experiences.Set(f.Experiences)
	d.Education.Set(f.Education)
	d.Projects.Set(f.Projects)
	d.BlogPosts.Set(f.BlogPosts)
	d.Skills.Set(f.Skills)
	d.ContactMessages.Set(f.ContactMessages)
	d.Appointments.Set(f.Appointments)
	return nil
}
