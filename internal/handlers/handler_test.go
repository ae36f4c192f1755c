// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL is unavailable.
package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"folio/internal/database"
	"folio/internal/mailer"
	"folio/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL, runs migrations, and
// truncates all content tables so every test starts clean.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "folio")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "folio")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	if _, err := db.Exec(`
		TRUNCATE projects, education, experience, resume_pages, skills,
		         about_pages, site_settings, roles, home_pages,
		         contact_messages CASCADE
	`); err != nil {
		db.Close()
		t.Fatalf("truncate: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// mockSender records sent messages and optionally fails, implementing
// mailer.Sender for contact-flow tests.
type mockSender struct {
	sent []mailer.Message
	err  error
}

func (m *mockSender) Send(msg mailer.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB       *sql.DB
	Sender   *mockSender
	Projects *store.ProjectStore
	Contacts *store.ContactStore
	Public   *Public
	Contact  *Contact
}

// newTestEnv creates a complete test environment with all handler
// dependencies. The response cache is nil, as in a Redis-less deployment.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	sender := &mockSender{}

	projects := store.NewProjectStore(db)
	contacts := store.NewContactStore(db)
	public := NewPublic(
		projects,
		store.NewEducationStore(db),
		store.NewExperienceStore(db),
		store.NewSkillStore(db),
		store.NewRoleStore(db),
		store.NewResumeStore(db),
		store.NewAboutStore(db),
		store.NewHomeStore(db),
		store.NewSiteSettingStore(db),
		nil,
	)
	contact := NewContact(contacts, sender, "noreply@folio.test", "owner@folio.test")

	return &testEnv{
		DB:       db,
		Sender:   sender,
		Projects: projects,
		Contacts: contacts,
		Public:   public,
		Contact:  contact,
	}
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
