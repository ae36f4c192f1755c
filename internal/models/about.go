// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Skill is a named proficiency with a 0-100 percent level.
type Skill struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Percent   int       `json:"percent"`
	SortOrder int       `json:"order"`
}

// AboutPage holds the about-me content and its assigned skills.
// Singleton by convention; the newest row is the one served.
type AboutPage struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Intro        string    `json:"intro"`
	ProfileImage *string   `json:"profile_image,omitempty"`
	Email        *string   `json:"email,omitempty"`
	Location     *string   `json:"location,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	Created      time.Time `json:"created"`
	Skills       []Skill   `json:"skills"`
}
