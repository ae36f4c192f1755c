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

// SkillStore handles skill database operations.
type SkillStore struct {
	db *sql.DB
}

// NewSkillStore creates a new SkillStore with the given database connection.
func NewSkillStore(db *sql.DB) *SkillStore {
	return &SkillStore{db: db}
}

// List returns all skills ordered by their manual sort order.
func (s *SkillStore) List() ([]models.Skill, error) {
	rows, err := s.db.Query(`
		SELECT id, name, percent, sort_order
		FROM skills
		ORDER BY sort_order ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer rows.Close()

	var items []models.Skill
	for rows.Next() {
		var sk models.Skill
		if err := rows.Scan(&sk.ID, &sk.Name, &sk.Percent, &sk.SortOrder); err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		items = append(items, sk)
	}
	return items, rows.Err()
}

// FindByID retrieves a skill by its UUID. Returns nil if not found.
func (s *SkillStore) FindByID(id uuid.UUID) (*models.Skill, error) {
	sk := &models.Skill{}
	err := s.db.QueryRow(`
		SELECT id, name, percent, sort_order FROM skills WHERE id = $1
	`, id).Scan(&sk.ID, &sk.Name, &sk.Percent, &sk.SortOrder)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find skill by id: %w", err)
	}
	return sk, nil
}
