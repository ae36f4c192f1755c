// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"folio/internal/models"
)

// SiteSettingStore manages site branding rows in the database.
type SiteSettingStore struct {
	db *sql.DB
}

// NewSiteSettingStore returns a new SiteSettingStore backed by the given database.
func NewSiteSettingStore(db *sql.DB) *SiteSettingStore {
	return &SiteSettingStore{db: db}
}

// List returns every settings row. One row is expected in practice.
func (s *SiteSettingStore) List() ([]models.SiteSettings, error) {
	rows, err := s.db.Query(`
		SELECT id, brand_name, logo, primary_color, secondary_color
		FROM site_settings
	`)
	if err != nil {
		return nil, fmt.Errorf("list site settings: %w", err)
	}
	defer rows.Close()

	var items []models.SiteSettings
	for rows.Next() {
		var ss models.SiteSettings
		if err := rows.Scan(&ss.ID, &ss.BrandName, &ss.Logo,
			&ss.PrimaryColor, &ss.SecondaryColor); err != nil {
			return nil, fmt.Errorf("scan site settings: %w", err)
		}
		items = append(items, ss)
	}
	return items, rows.Err()
}
