// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// BlogPost is an article. Content is Markdown; the public handlers render
// it to HTML on the way out.
type BlogPost struct {
	ID          string     `json:"id,omitempty" yaml:"id"`
	Title       string     `json:"title" yaml:"title" validate:"required,max=300"`
	Slug        string     `json:"slug" yaml:"slug" validate:"max=300"`
	Excerpt     string     `json:"excerpt" yaml:"excerpt" validate:"max=1000"`
	Content     string     `json:"content" yaml:"content" validate:"required,max=100000"`
	CoverImage  string     `json:"coverImage" yaml:"coverImage" validate:"max=2000"`
	ReadTime    int        `json:"readTime" yaml:"readTime" validate:"gte=0,lte=600"`
	Tags        []string   `json:"tags" yaml:"tags" validate:"max=30,dive,max=60"`
	Published   bool       `json:"published" yaml:"published"`
	PublishedAt *time.Time `json:"publishedAt,omitempty" yaml:"publishedAt"`
	CreatedAt   time.Time  `json:"createdAt" yaml:"createdAt"`
}
