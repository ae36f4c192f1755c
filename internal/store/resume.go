// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"folio/internal/models"
)

// ResumeStore handles resume-page database operations, including loading
// the assigned education and experience sets through their join tables.
type ResumeStore struct {
	db *sql.DB
}

// NewResumeStore creates a new ResumeStore with the given database connection.
func NewResumeStore(db *sql.DB) *ResumeStore {
	return &ResumeStore{db: db}
}

// Latest returns the most recently created resume page with its education
// and experience entries embedded, or nil when no page exists. The schema
// allows many rows but only the newest one is served.
func (s *ResumeStore) Latest() (*models.ResumePage, error) {
	rp := &models.ResumePage{}
	err := s.db.QueryRow(`
		SELECT id, title, intro, resume_file, created
		FROM resume_pages
		ORDER BY created DESC
		LIMIT 1
	`).Scan(&rp.ID, &rp.Title, &rp.Intro, &rp.ResumeFile, &rp.Created)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest resume page: %w", err)
	}

	if rp.Education, err = s.educationFor(rp); err != nil {
		return nil, err
	}
	if rp.Experience, err = s.experienceFor(rp); err != nil {
		return nil, err
	}
	return rp, nil
}

// educationFor loads the education entries assigned to a resume page,
// ordered by the entries' own sort order.
func (s *ResumeStore) educationFor(rp *models.ResumePage) ([]models.Education, error) {
	rows, err := s.db.Query(`
		SELECT e.id, e.title, e.date_range, e.institution, e.description, e.sort_order
		FROM education e
		JOIN resume_page_education rpe ON rpe.education_id = e.id
		WHERE rpe.resume_page_id = $1
		ORDER BY e.sort_order ASC
	`, rp.ID)
	if err != nil {
		return nil, fmt.Errorf("resume page education: %w", err)
	}
	defer rows.Close()

	var items []models.Education
	for rows.Next() {
		var e models.Education
		if err := rows.Scan(&e.ID, &e.Title, &e.DateRange, &e.Institution,
			&e.Description, &e.SortOrder); err != nil {
			return nil, fmt.Errorf("scan resume education: %w", err)
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

// experienceFor loads the experience entries assigned to a resume page,
// ordered by the entries' own sort order.
func (s *ResumeStore) experienceFor(rp *models.ResumePage) ([]models.Experience, error) {
	rows, err := s.db.Query(`
		SELECT e.id, e.title, e.date_range, e.company, e.bullets, e.sort_order
		FROM experience e
		JOIN resume_page_experience rpe ON rpe.experience_id = e.id
		WHERE rpe.resume_page_id = $1
		ORDER BY e.sort_order ASC
	`, rp.ID)
	if err != nil {
		return nil, fmt.Errorf("resume page experience: %w", err)
	}
	defer rows.Close()

	var items []models.Experience
	for rows.Next() {
		var e models.Experience
		if err := rows.Scan(&e.ID, &e.Title, &e.DateRange, &e.Company,
			&e.Bullets, &e.SortOrder); err != nil {
			return nil, fmt.Errorf("scan resume experience: %w", err)
		}
		items = append(items, e)
	}
	return items, rows.Err()
}
