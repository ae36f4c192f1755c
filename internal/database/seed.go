package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with sample portfolio content for development.
// It is a no-op when any project already exists, so repeated startups are safe.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM projects").Scan(&count); err != nil {
		return fmt.Errorf("seed check projects: %w", err)
	}
	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed begin: %w", err)
	}
	defer tx.Rollback()

	// Site branding.
	if _, err := tx.Exec(`
		INSERT INTO site_settings (brand_name, primary_color, secondary_color)
		VALUES ('My portfolio', '#00FFFF', '#8A2BE2')
	`); err != nil {
		return fmt.Errorf("seed site settings: %w", err)
	}

	// Home page with headline roles.
	var homeID string
	if err := tx.QueryRow(`
		INSERT INTO home_pages (full_name, intro, profile_image)
		VALUES ('Jane Developer', 'I build web applications.', 'profiles/jane.png')
		RETURNING id
	`).Scan(&homeID); err != nil {
		return fmt.Errorf("seed home page: %w", err)
	}
	for i, role := range []string{"Full Stack Developer", "Open Source Contributor"} {
		var roleID string
		if err := tx.QueryRow(`
			INSERT INTO roles (name, sort_order) VALUES ($1, $2) RETURNING id
		`, role, i).Scan(&roleID); err != nil {
			return fmt.Errorf("seed role: %w", err)
		}
		if _, err := tx.Exec(`
			INSERT INTO home_page_roles (home_page_id, role_id) VALUES ($1, $2)
		`, homeID, roleID); err != nil {
			return fmt.Errorf("seed home page role: %w", err)
		}
	}

	// About page with skills.
	var aboutID string
	if err := tx.QueryRow(`
		INSERT INTO about_pages (title, intro, email, location)
		VALUES ('About Me', 'A short introduction.', 'jane@example.com', 'Berlin')
		RETURNING id
	`).Scan(&aboutID); err != nil {
		return fmt.Errorf("seed about page: %w", err)
	}
	skills := []struct {
		name    string
		percent int
	}{
		{"Go", 90},
		{"PostgreSQL", 80},
		{"React", 70},
	}
	for i, s := range skills {
		var skillID string
		if err := tx.QueryRow(`
			INSERT INTO skills (name, percent, sort_order) VALUES ($1, $2, $3) RETURNING id
		`, s.name, s.percent, i).Scan(&skillID); err != nil {
			return fmt.Errorf("seed skill: %w", err)
		}
		if _, err := tx.Exec(`
			INSERT INTO about_page_skills (about_page_id, skill_id) VALUES ($1, $2)
		`, aboutID, skillID); err != nil {
			return fmt.Errorf("seed about page skill: %w", err)
		}
	}

	// Resume page with one education and one experience entry.
	var resumeID string
	if err := tx.QueryRow(`
		INSERT INTO resume_pages (title, intro)
		VALUES ('My Resume', 'Education and work history.')
		RETURNING id
	`).Scan(&resumeID); err != nil {
		return fmt.Errorf("seed resume page: %w", err)
	}
	var eduID string
	if err := tx.QueryRow(`
		INSERT INTO education (title, date_range, institution, description, sort_order)
		VALUES ('B.Sc. Computer Science', '2016 - 2020', 'Example University', '', 0)
		RETURNING id
	`).Scan(&eduID); err != nil {
		return fmt.Errorf("seed education: %w", err)
	}
	var expID string
	if err := tx.QueryRow(`
		INSERT INTO experience (title, date_range, company, bullets, sort_order)
		VALUES ('Backend Developer', '2020 - present', 'Example GmbH',
		        E'Built HTTP APIs in Go\nOperated PostgreSQL in production', 0)
		RETURNING id
	`).Scan(&expID); err != nil {
		return fmt.Errorf("seed experience: %w", err)
	}
	if _, err := tx.Exec(`
		INSERT INTO resume_page_education (resume_page_id, education_id) VALUES ($1, $2)
	`, resumeID, eduID); err != nil {
		return fmt.Errorf("seed resume education: %w", err)
	}
	if _, err := tx.Exec(`
		INSERT INTO resume_page_experience (resume_page_id, experience_id) VALUES ($1, $2)
	`, resumeID, expID); err != nil {
		return fmt.Errorf("seed resume experience: %w", err)
	}

	// A couple of projects so the work page is not empty.
	projects := []struct {
		title, slug, category string
		featured              bool
		order                 int
	}{
		{"Shop Platform", "shop-platform", "ecommerce", true, 0},
		{"Habit Tracker", "habit-tracker", "productivity", false, 1},
		{"Course Portal", "course-portal", "education", false, 2},
	}
	for _, p := range projects {
		if _, err := tx.Exec(`
			INSERT INTO projects (title, slug, description, category, tools, featured, sort_order)
			VALUES ($1, $2, 'Sample project.', $3, 'Go, PostgreSQL', $4, $5)
		`, p.title, p.slug, p.category, p.featured, p.order); err != nil {
			return fmt.Errorf("seed project %s: %w", p.slug, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("database seeded with sample portfolio content")
	return nil
}
