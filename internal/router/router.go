// Package router sets up all HTTP routes and middleware chains for the
// portfolio API. Content endpoints are read-only; the contact endpoint is
// the single public write path.
package router

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"folio/internal/handlers"
	"folio/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. mediaRoot is the local directory served under
// /media/; corsOrigins is a comma-separated origin list ("*" allows all).
func New(public *handlers.Public, contact *handlers.Contact, mediaRoot, corsOrigins string) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	// The original frontend calls every endpoint with a trailing slash.
	r.Use(middleware.StripSlashes)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: splitOrigins(corsOrigins),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}).Handler)

	// Health check.
	r.Get("/health", healthHandler)

	// Public content, read-only.
	r.Route("/pages", func(r chi.Router) {
		r.Get("/projects", public.ProjectList)
		r.Get("/projects/{slug}", public.ProjectDetail)

		r.Get("/education", public.EducationList)
		r.Get("/education/{id}", public.EducationDetail)

		r.Get("/experience", public.ExperienceList)
		r.Get("/experience/{id}", public.ExperienceDetail)

		r.Get("/skills", public.SkillList)
		r.Get("/skills/{id}", public.SkillDetail)

		r.Get("/roles", public.RoleList)
		r.Get("/roles/{id}", public.RoleDetail)

		// Single object or null, not an array.
		r.Get("/resume", public.Resume)
		r.Get("/about", public.About)
		r.Get("/about/latest", public.About)

		// Arrays, even though one row is expected in practice.
		r.Get("/home", public.HomeList)
		r.Get("/site-settings", public.SiteSettingsList)
	})

	// Contact messages, the only public write path.
	r.Route("/contact/messages", func(r chi.Router) {
		r.Get("/", contact.List)
		r.Post("/", contact.Create)
	})

	// Media files uploaded through the out-of-scope admin.
	if mediaRoot != "" {
		fs := http.StripPrefix("/media/", http.FileServer(http.Dir(mediaRoot)))
		r.Get("/media/*", fs.ServeHTTP)
	}

	return r
}

// splitOrigins parses the comma-separated CORS origin list.
func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
