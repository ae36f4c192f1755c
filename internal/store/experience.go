// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"folio/internal/models"
)

// ExperienceStore handles work-experience database operations.
type ExperienceStore struct {
	db *sql.DB
}

// NewExperienceStore creates a new ExperienceStore with the given database connection.
func NewExperienceStore(db *sql.DB) *ExperienceStore {
	return &ExperienceStore{db: db}
}

// List returns all experience entries ordered by their manual sort order.
func (s *ExperienceStore) List() ([]models.Experience, error) {
	rows, err := s.db.Query(`
		SELECT id, title, date_range, company, bullets, sort_order
		FROM experience
		ORDER BY sort_order ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list experience: %w", err)
	}
	defer rows.Close()

	var items []models.Experience
	for rows.Next() {
		var e models.Experience
		if err := rows.Scan(&e.ID, &e.Title, &e.DateRange, &e.Company,
			&e.Bullets, &e.SortOrder); err != nil {
			return nil, fmt.Errorf("scan experience: %w", err)
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

// FindByID retrieves an experience entry by its UUID. Returns nil if not found.
func (s *ExperienceStore) FindByID(id uuid.UUID) (*models.Experience, error) {
	e := &models.Experience{}
	err := s.db.QueryRow(`
		SELECT id, title, date_range, company, bullets, sort_order
		FROM experience WHERE id = $1
	`, id).Scan(&e.ID, &e.Title, &e.DateRange, &e.Company, &e.Bullets, &e.SortOrder)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find experience by id: %w", err)
	}
	return e, nil
}
