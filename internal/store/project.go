// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"strings"

	"folio/internal/models"
)

// defaultProjectOrder keeps featured projects first, then manual order,
// then newest.
const defaultProjectOrder = "featured DESC, sort_order ASC, created DESC"

// ProjectStore handles all project-related database operations.
type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore creates a new ProjectStore with the given database connection.
func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

// ProjectListOptions narrow and reorder the project listing. All fields are
// optional; zero values mean "no filter" and the default ordering.
type ProjectListOptions struct {
	Category string // exact category match
	Search   string // case-insensitive match over title/description/tools/tags
	Ordering string // created | order | featured, optional leading "-" for descending
}

// orderClause translates an ordering override into a SQL ORDER BY expression.
// Unknown fields fall back to the default ordering rather than erroring.
func orderClause(ordering string) string {
	desc := strings.HasPrefix(ordering, "-")
	field := strings.TrimPrefix(ordering, "-")

	var col string
	switch field {
	case "created":
		col = "created"
	case "order":
		col = "sort_order"
	case "featured":
		col = "featured"
	default:
		return defaultProjectOrder
	}

	if desc {
		return col + " DESC"
	}
	return col + " ASC"
}

// List returns projects matching the given options. With zero options it
// returns every project in the default ordering.
func (s *ProjectStore) List(opts ProjectListOptions) ([]models.Project, error) {
	query := `
		SELECT id, title, slug, description, category, tools, tags,
		       image, live_url, github_url, featured, sort_order, created
		FROM projects`

	var conds []string
	var args []any

	if opts.Category != "" {
		args = append(args, opts.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if opts.Search != "" {
		args = append(args, "%"+opts.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(title ILIKE $%d OR description ILIKE $%d OR tools ILIKE $%d OR tags ILIKE $%d)",
			n, n, n, n))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY " + orderClause(opts.Ordering)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var items []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Slug, &p.Description, &p.Category, &p.Tools,
			&p.Tags, &p.Image, &p.LiveURL, &p.GithubURL, &p.Featured,
			&p.SortOrder, &p.Created,
		); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// FindBySlug retrieves a project by its slug. Returns nil if not found.
func (s *ProjectStore) FindBySlug(slug string) (*models.Project, error) {
	p := &models.Project{}
	err := s.db.QueryRow(`
		SELECT id, title, slug, description, category, tools, tags,
		       image, live_url, github_url, featured, sort_order, created
		FROM projects WHERE slug = $1
	`, slug).Scan(
		&p.ID, &p.Title, &p.Slug, &p.Description, &p.Category, &p.Tools,
		&p.Tags, &p.Image, &p.LiveURL, &p.GithubURL, &p.Featured,
		&p.SortOrder, &p.Created,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project by slug: %w", err)
	}
	return p, nil
}
