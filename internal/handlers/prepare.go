// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"time"

	"folio/internal/markdown"
	"folio/internal/models"
	"folio/internal/slug"
)

// excerptLength is the length of generated blog excerpts.
const excerptLength = 200

// prepareProject fills the derived fields of a project before it is stored.
func prepareProject(p *models.Project) {
	p.Slug = slug.Or(p.Slug, p.Title)
}

// prepareBlogPost fills the slug, excerpt, reading time and publish date
// of a post the editor left blank.
func prepareBlogPost(now func() time.Time) func(*models.BlogPost) {
	return func(p *models.BlogPost) {
		p.Slug = slug.Or(p.Slug, p.Title)
		if p.Excerpt == "" {
			p.Excerpt = markdown.Excerpt(p.Content, excerptLength)
		}
		if p.ReadTime == 0 {
			p.ReadTime = markdown.ReadTime(p.Content)
		}
		switch {
		case !p.Published:
			p.PublishedAt = nil
		case p.PublishedAt == nil:
			ts := now().UTC()
			p.PublishedAt = &ts
		}
	}
}

func prepareAppointment(a *models.Appointment) {
	if a.Status == "" {
		a.Status = models.AppointmentPending
	}
}
