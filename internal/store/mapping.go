// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import "folio/internal/models"

// The functions below are the only place where application field names meet
// column names. Every read, create and update path goes through them, so a
// field added to a model must be added to both directions here.

// strs returns s, or an empty non-nil slice. Array columns are NOT NULL.
func strs(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// HeroToRecord maps a Hero to its wire record.
func HeroToRecord(h models.Hero) HeroRecord {
	return HeroRecord{
		ID: h.ID, Name: h.Name, Title: h.Title, Subtitle: h.Subtitle,
		Description: h.Description, CTAText: h.CTAText, CTALink: h.CTALink,
		BackgroundImage: h.BackgroundImage, CreatedAt: h.CreatedAt,
	}
}

// HeroFromRecord maps a wire record to a Hero.
func HeroFromRecord(r HeroRecord) models.Hero {
	return models.Hero{
		ID: r.ID, Name: r.Name, Title: r.Title, Subtitle: r.Subtitle,
		Description: r.Description, CTAText: r.CTAText, CTALink: r.CTALink,
		BackgroundImage: r.BackgroundImage, CreatedAt: r.CreatedAt,
	}
}

// AboutToRecord maps an About to its wire record.
func AboutToRecord(a models.About) AboutRecord {
	return AboutRecord{
		ID: a.ID, Title: a.Title, Description: a.Description,
		Highlights: strs(a.Highlights), YearsExperience: a.YearsExperience,
		ProjectsCompleted: a.ProjectsCompleted, CreatedAt: a.CreatedAt,
	}
}

// AboutFromRecord maps a wire record to an About.
func AboutFromRecord(r AboutRecord) models.About {
	return models.About{
		ID: r.ID, Title: r.Title, Description: r.Description,
		Highlights: strs(r.Highlights), YearsExperience: r.YearsExperience,
		ProjectsCompleted: r.ProjectsCompleted, CreatedAt: r.CreatedAt,
	}
}

// ExperienceToRecord maps an Experience to its wire record.
func ExperienceToRecord(e models.Experience) ExperienceRecord {
	return ExperienceRecord{
		ID: e.ID, Company: e.Company, Position: e.Position, Location: e.Location,
		StartDate: e.StartDate, EndDate: e.EndDate, IsCurrent: e.Current,
		Description: e.Description, Technologies: strs(e.Technologies), CreatedAt: e.CreatedAt,
	}
}

// ExperienceFromRecord maps a wire record to an Experience.
func ExperienceFromRecord(r ExperienceRecord) models.Experience {
	return models.Experience{
		ID: r.ID, Company: r.Company, Position: r.Position, Location: r.Location,
		StartDate: r.StartDate, EndDate: r.EndDate, Current: r.IsCurrent,
		Description: r.Description, Technologies: strs(r.Technologies), CreatedAt: r.CreatedAt,
	}
}

// EducationToRecord maps an Education to its wire record.
func EducationToRecord(e models.Education) EducationRecord {
	return EducationRecord{
		ID: e.ID, Institution: e.Institution, Degree: e.Degree, Field: e.Field,
		StartDate: e.StartDate, EndDate: e.EndDate, GPA: e.GPA,
		Description: e.Description, CreatedAt: e.CreatedAt,
	}
}

// EducationFromRecord maps a wire record to an Education.
func EducationFromRecord(r EducationRecord) models.Education {
	return models.Education{
		ID: r.ID, Institution: r.Institution, Degree: r.Degree, Field: r.Field,
		StartDate: r.StartDate, EndDate: r.EndDate, GPA: r.GPA,
		Description: r.Description, CreatedAt: r.CreatedAt,
	}
}

// ProjectToRecord maps a Project to its wire record.
func ProjectToRecord(p models.Project) ProjectRecord {
	return ProjectRecord{
		ID: p.ID, Title: p.Title, Slug: p.Slug, Description: p.Description,
		Content: p.Content, Category: string(p.Category), Tech: strs(p.Tech),
		Tags: strs(p.Tags), Screenshots: strs(p.Screenshots), GithubURL: p.GithubURL,
		LiveURL: p.LiveURL, IsFeatured: p.Featured, Analytics: p.Analytics,
		CreatedAt: p.CreatedAt,
	}
}

// ProjectFromRecord maps a wire record to a Project.
func ProjectFromRecord(r ProjectRecord) models.Project {
	return models.Project{
		ID: r.ID, Title: r.Title, Slug: r.Slug, Description: r.Description,
		Content: r.Content, Category: models.ProjectCategory(r.Category), Tech: strs(r.Tech),
		Tags: strs(r.Tags), Screenshots: strs(r.Screenshots), GithubURL: r.GithubURL,
		LiveURL: r.LiveURL, Featured: r.IsFeatured, Analytics: r.Analytics,
		CreatedAt: r.CreatedAt,
	}
}

// BlogPostToRecord maps a BlogPost to its wire record
// (coverImage→cover_image, readTime→read_time, published→is_published,
// publishedAt→published_at).
func BlogPostToRecord(p models.BlogPost) BlogPostRecord {
	return BlogPostRecord{
		ID: p.ID, Title: p.Title, Slug: p.Slug, Excerpt: p.Excerpt,
		Content: p.Content, CoverImage: p.CoverImage, ReadTime: p.ReadTime,
		Tags: strs(p.Tags), IsPublished: p.Published, PublishedAt: p.PublishedAt,
		CreatedAt: p.CreatedAt,
	}
}

// BlogPostFromRecord maps a wire record to a BlogPost.
func BlogPostFromRecord(r BlogPostRecord) models.BlogPost {
	return models.BlogPost{
		ID: r.ID, Title: r.Title, Slug: r.Slug, Excerpt: r.Excerpt,
		Content: r.Content, CoverImage: r.CoverImage, ReadTime: r.ReadTime,
		Tags: strs(r.Tags), Published: r.IsPublished, PublishedAt: r.PublishedAt,
		CreatedAt: r.CreatedAt,
	}
}

// SkillToRecord maps a Skill to its wire record.
func SkillToRecord(s models.Skill) SkillRecord {
	return SkillRecord{
		ID: s.ID, Name: s.Name, Category: s.Category, Level: s.Level,
		Icon: s.Icon, OrderIndex: s.OrderIndex, CreatedAt: s.CreatedAt,
	}
}

// SkillFromRecord maps a wire record to a Skill.
func SkillFromRecord(r SkillRecord) models.Skill {
	return models.Skill{
		ID: r.ID, Name: r.Name, Category: r.Category, Level: r.Level,
		Icon: r.Icon, OrderIndex: r.OrderIndex, CreatedAt: r.CreatedAt,
	}
}

// ProfileImageToRecord maps a ProfileImage to its wire record.
func ProfileImageToRecord(p models.ProfileImage) ProfileImageRecord {
	return ProfileImageRecord{ID: p.ID, ImageURL: p.URL, AltText: p.Alt, CreatedAt: p.CreatedAt}
}

// ProfileImageFromRecord maps a wire record to a ProfileImage.
func ProfileImageFromRecord(r ProfileImageRecord) models.ProfileImage {
	return models.ProfileImage{ID: r.ID, URL: r.ImageURL, Alt: r.AltText, CreatedAt: r.CreatedAt}
}

// ResumeToRecord maps a Resume to its wire record.
func ResumeToRecord(r models.Resume) ResumeRecord {
	return ResumeRecord{ID: r.ID, FileURL: r.URL, FileName: r.FileName, CreatedAt: r.CreatedAt}
}

// ResumeFromRecord maps a wire record to a Resume.
func ResumeFromRecord(r ResumeRecord) models.Resume {
	return models.Resume{ID: r.ID, URL: r.FileURL, FileName: r.FileName, CreatedAt: r.CreatedAt}
}

// ContactMessageToRecord maps a ContactMessage to its wire record.
func ContactMessageToRecord(m models.ContactMessage) ContactMessageRecord {
	return ContactMessageRecord{
		ID: m.ID, Name: m.Name, Email: m.Email, Subject: m.Subject,
		Message: m.Message, IsRead: m.Read, CreatedAt: m.CreatedAt,
	}
}

// ContactMessageFromRecord maps a wire record to a ContactMessage.
func ContactMessageFromRecord(r ContactMessageRecord) models.ContactMessage {
	return models.ContactMessage{
		ID: r.ID, Name: r.Name, Email: r.Email, Subject: r.Subject,
		Message: r.Message, Read: r.IsRead, CreatedAt: r.CreatedAt,
	}
}

// AppointmentToRecord maps an Appointment to its wire record.
func AppointmentToRecord(a models.Appointment) AppointmentRecord {
	return AppointmentRecord{
		ID: a.ID, Name: a.Name, Email: a.Email, Phone: a.Phone,
		AppointmentDate: a.Date, AppointmentTime: a.Time, Service: a.Service,
		Message: a.Message, Status: string(a.Status), CreatedAt: a.CreatedAt,
	}
}

// AppointmentFromRecord maps a wire record to an Appointment.
func AppointmentFromRecord(r AppointmentRecord) models.Appointment {
	return models.Appointment{
		ID: r.ID, Name: r.Name, Email: r.Email, Phone: r.Phone,
		Date: r.AppointmentDate, Time: r.AppointmentTime, Service: r.Service,
		Message: r.Message, Status: models.AppointmentStatus(r.Status), CreatedAt: r.CreatedAt,
	}
}
