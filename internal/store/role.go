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

// RoleStore handles headline-role database operations.
type RoleStore struct {
	db *sql.DB
}

// NewRoleStore creates a new RoleStore with the given database connection.
func NewRoleStore(db *sql.DB) *RoleStore {
	return &RoleStore{db: db}
}

// List returns all roles ordered by their manual sort order.
func (s *RoleStore) List() ([]models.Role, error) {
	rows, err := s.db.Query(`
		SELECT id, name, sort_order FROM roles ORDER BY sort_order ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	var items []models.Role
	for rows.Next() {
		var r models.Role
		if err := rows.Scan(&r.ID, &r.Name, &r.SortOrder); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

// FindByID retrieves a role by its UUID. Returns nil if not found.
func (s *RoleStore) FindByID(id uuid.UUID) (*models.Role, error) {
	r := &models.Role{}
	err := s.db.QueryRow(`
		SELECT id, name, sort_order FROM roles WHERE id = $1
	`, id).Scan(&r.ID, &r.Name, &r.SortOrder)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find role by id: %w", err)
	}
	return r, nil
}
