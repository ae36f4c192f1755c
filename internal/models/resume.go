// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Education is a single education entry shown on the resume page.
type Education struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	DateRange   string    `json:"date_range"`
	Institution string    `json:"institution"`
	Description string    `json:"description"`
	SortOrder   int       `json:"order"`
}

// Experience is a work-experience entry. Bullets holds newline-separated
// text; each non-empty line becomes one list item when serialized.
type Experience struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	DateRange string    `json:"date_range"`
	Company   string    `json:"company"`
	Bullets   string    `json:"bullets"`
	SortOrder int       `json:"order"`
}

// ResumePage groups education and experience entries under an intro.
// Only one meaningful row is expected; the newest one wins.
type ResumePage struct {
	ID         uuid.UUID    `json:"id"`
	Title      string       `json:"title"`
	Intro      string       `json:"intro"`
	ResumeFile *string      `json:"resume_file,omitempty"`
	Created    time.Time    `json:"created"`
	Education  []Education  `json:"education"`
	Experience []Experience `json:"experience"`
}
