// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is a rotating headline role on the home page ("Developer", ...).
type Role struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"order"`
}

// HomePage is the landing-page content. ProfileImage is required.
type HomePage struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"full_name"`
	Intro        string    `json:"intro"`
	ProfileImage string    `json:"profile_image"`
	Created      time.Time `json:"created"`
	Roles        []Role    `json:"roles"`
}
