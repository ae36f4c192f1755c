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

// EducationStore handles education-entry database operations.
type EducationStore struct {
	db *sql.DB
}

// NewEducationStore creates a new EducationStore with the given database connection.
func NewEducationStore(db *sql.DB) *EducationStore {
	return &EducationStore{db: db}
}

// List returns all education entries ordered by their manual sort order.
func (s *EducationStore) List() ([]models.Education, error) {
	rows, err := s.db.Query(`
		SELECT id, title, date_range, institution, description, sort_order
		FROM education
		ORDER BY sort_order ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list education: %w", err)
	}
	defer rows.Close()

	var items []models.Education
	for rows.Next() {
		var e models.Education
		if err := rows.Scan(&e.ID, &e.Title, &e.DateRange, &e.Institution,
			&e.Description, &e.SortOrder); err != nil {
			return nil, fmt.Errorf("scan education: %w", err)
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

// FindByID retrieves an education entry by its UUID. Returns nil if not found.
func (s *EducationStore) FindByID(id uuid.UUID) (*models.Education, error) {
	e := &models.Education{}
	err := s.db.QueryRow(`
		SELECT id, title, date_range, institution, description, sort_order
		FROM education WHERE id = $1
	`, id).Scan(&e.ID, &e.Title, &e.DateRange, &e.Institution, &e.Description, &e.SortOrder)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find education by id: %w", err)
	}
	return e, nil
}
