// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"folio/internal/models"
)

// AboutStore handles about-page database operations, loading assigned
// skills through the join table.
type AboutStore struct {
	db *sql.DB
}

// NewAboutStore creates a new AboutStore with the given database connection.
func NewAboutStore(db *sql.DB) *AboutStore {
	return &AboutStore{db: db}
}

// Latest returns the most recently created about page with its skills
// embedded, or nil when no page exists.
func (s *AboutStore) Latest() (*models.AboutPage, error) {
	ap := &models.AboutPage{}
	err := s.db.QueryRow(`
		SELECT id, title, intro, profile_image, email, location, phone, created
		FROM about_pages
		ORDER BY created DESC
		LIMIT 1
	`).Scan(&ap.ID, &ap.Title, &ap.Intro, &ap.ProfileImage, &ap.Email,
		&ap.Location, &ap.Phone, &ap.Created)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest about page: %w", err)
	}

	rows, err := s.db.Query(`
		SELECT sk.id, sk.name, sk.percent, sk.sort_order
		FROM skills sk
		JOIN about_page_skills aps ON aps.skill_id = sk.id
		WHERE aps.about_page_id = $1
		ORDER BY sk.sort_order ASC
	`, ap.ID)
	if err != nil {
		return nil, fmt.Errorf("about page skills: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sk models.Skill
		if err := rows.Scan(&sk.ID, &sk.Name, &sk.Percent, &sk.SortOrder); err != nil {
			return nil, fmt.Errorf("scan about skill: %w", err)
		}
		ap.Skills = append(ap.Skills, sk)
	}
	return ap, rows.Err()
}
