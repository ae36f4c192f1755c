// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"folio/internal/models"
)

// ContactStore handles contact-message database operations. Messages are
// append-only: there is no update or delete path.
type ContactStore struct {
	db *sql.DB
}

// NewContactStore creates a new ContactStore with the given database connection.
func NewContactStore(db *sql.DB) *ContactStore {
	return &ContactStore{db: db}
}

// Create inserts a new contact message and returns it with the generated
// ID and creation timestamp.
func (s *ContactStore) Create(m *models.ContactMessage) (*models.ContactMessage, error) {
	result := &models.ContactMessage{}
	err := s.db.QueryRow(`
		INSERT INTO contact_messages (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, subject, message, created
	`, m.Name, m.Email, m.Subject, m.Message).Scan(
		&result.ID, &result.Name, &result.Email, &result.Subject,
		&result.Message, &result.Created,
	)
	if err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}
	return result, nil
}

// List returns all contact messages, newest first.
func (s *ContactStore) List() ([]models.ContactMessage, error) {
	rows, err := s.db.Query(`
		SELECT id, name, email, subject, message, created
		FROM contact_messages
		ORDER BY created DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	var items []models.ContactMessage
	for rows.Next() {
		var m models.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject,
			&m.Message, &m.Created); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}
