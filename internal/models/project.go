// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectCategory classifies a portfolio project.
type ProjectCategory string

const (
	CategoryEcommerce    ProjectCategory = "ecommerce"
	CategoryEducation    ProjectCategory = "education"
	CategoryHealthcare   ProjectCategory = "healthcare"
	CategoryProductivity ProjectCategory = "productivity"
	CategoryOther        ProjectCategory = "other"
)

// ValidCategory reports whether s is one of the known project categories.
func ValidCategory(s string) bool {
	switch ProjectCategory(s) {
	case CategoryEcommerce, CategoryEducation, CategoryHealthcare,
		CategoryProductivity, CategoryOther:
		return true
	}
	return false
}

// Project is a portfolio work item. Tools and Tags are stored as
// comma-separated text, Image as a path relative to the media root.
type Project struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Category    ProjectCategory `json:"category"`
	Tools       string          `json:"tools"`
	Tags        string          `json:"tags"`
	Image       *string         `json:"image,omitempty"`
	LiveURL     *string         `json:"live_url,omitempty"`
	GithubURL   *string         `json:"github_url,omitempty"`
	Featured    bool            `json:"featured"`
	SortOrder   int             `json:"order"`
	Created     time.Time       `json:"created"`
}
