// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "github.com/google/uuid"

// SiteSettings carries site-wide branding. Singleton by convention, but
// the schema does not enforce it and the API returns every row.
type SiteSettings struct {
	ID             uuid.UUID `json:"id"`
	BrandName      string    `json:"brand_name"`
	Logo           *string   `json:"logo,omitempty"`
	PrimaryColor   string    `json:"primary_color"`
	SecondaryColor string    `json:"secondary_color"`
}
