// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"folio/internal/models"
)

// HomeStore handles home-page database operations, loading assigned roles
// through the join table.
type HomeStore struct {
	db *sql.DB
}

// NewHomeStore creates a new HomeStore with the given database connection.
func NewHomeStore(db *sql.DB) *HomeStore {
	return &HomeStore{db: db}
}

// List returns all home pages newest-first with their roles embedded.
// In practice a single row is expected, but the API contract is an array.
func (s *HomeStore) List() ([]models.HomePage, error) {
	rows, err := s.db.Query(`
		SELECT id, full_name, intro, profile_image, created
		FROM home_pages
		ORDER BY created DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list home pages: %w", err)
	}
	defer rows.Close()

	var items []models.HomePage
	for rows.Next() {
		var hp models.HomePage
		if err := rows.Scan(&hp.ID, &hp.FullName, &hp.Intro,
			&hp.ProfileImage, &hp.Created); err != nil {
			return nil, fmt.Errorf("scan home page: %w", err)
		}
		items = append(items, hp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range items {
		roles, err := s.rolesFor(&items[i])
		if err != nil {
			return nil, err
		}
		items[i].Roles = roles
	}
	return items, nil
}

// rolesFor loads the roles assigned to a home page, ordered by the roles'
// own sort order.
func (s *HomeStore) rolesFor(hp *models.HomePage) ([]models.Role, error) {
	rows, err := s.db.Query(`
		SELECT r.id, r.name, r.sort_order
		FROM roles r
		JOIN home_page_roles hpr ON hpr.role_id = r.id
		WHERE hpr.home_page_id = $1
		ORDER BY r.sort_order ASC
	`, hp.ID)
	if err != nil {
		return nil, fmt.Errorf("home page roles: %w", err)
	}
	defer rows.Close()

	var roles []models.Role
	for rows.Next() {
		var r models.Role
		if err := rows.Scan(&r.ID, &r.Name, &r.SortOrder); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roles = append(roles, r)
	}
	return roles, rows.Err()
}
