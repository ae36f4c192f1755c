// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"folio/internal/cache"
	"folio/internal/models"
	"folio/internal/serialize"
	"folio/internal/store"
)

// Public groups the read-only content handlers. Responses are serialized
// against the request origin and optionally cached in Redis; the cache may
// be nil, in which case every request hits the database.
type Public struct {
	projects   *store.ProjectStore
	education  *store.EducationStore
	experience *store.ExperienceStore
	skills     *store.SkillStore
	roles      *store.RoleStore
	resume     *store.ResumeStore
	about      *store.AboutStore
	home       *store.HomeStore
	settings   *store.SiteSettingStore
	respCache  *cache.ResponseCache
}

// NewPublic creates the public handler group with its stores. respCache may
// be nil when Redis is not configured.
func NewPublic(
	projects *store.ProjectStore,
	education *store.EducationStore,
	experience *store.ExperienceStore,
	skills *store.SkillStore,
	roles *store.RoleStore,
	resume *store.ResumeStore,
	about *store.AboutStore,
	home *store.HomeStore,
	settings *store.SiteSettingStore,
	respCache *cache.ResponseCache,
) *Public {
	return &Public{
		projects:   projects,
		education:  education,
		experience: experience,
		skills:     skills,
		roles:      roles,
		resume:     resume,
		about:      about,
		home:       home,
		settings:   settings,
		respCache:  respCache,
	}
}

// serveCached checks the response cache for the request and writes the hit.
// Returns the cache key and false when the caller must produce the response.
func (p *Public) serveCached(w http.ResponseWriter, r *http.Request, origin string) (string, bool) {
	key := cache.Key(origin, r.URL.Path, r.URL.RawQuery)
	if body, ok := p.respCache.Get(r.Context(), key); ok {
		writeJSONBytes(w, http.StatusOK, body)
		return key, true
	}
	return key, false
}

// respond serializes data, stores it under key, and writes it.
func (p *Public) respond(w http.ResponseWriter, ctx context.Context, key string, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		slog.Error("response marshal failed", "error", err)
		writeServerError(w)
		return
	}
	p.respCache.Set(ctx, key, body)
	writeJSONBytes(w, http.StatusOK, body)
}

// ProjectList returns all projects, optionally filtered by exact category,
// free-text search, and an ordering override.
func (p *Public) ProjectList(w http.ResponseWriter, r *http.Request) {
	origin := requestOrigin(r)
	key, done := p.serveCached(w, r, origin)
	if done {
		return
	}

	q := r.URL.Query()
	if c := q.Get("category"); c != "" && !models.ValidCategory(c) {
		// No project can carry an unknown category.
		p.respond(w, r.Context(), key, serialize.NewProjects(nil, origin))
		return
	}
	items, err := p.projects.List(store.ProjectListOptions{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Ordering: q.Get("ordering"),
	})
	if err != nil {
		slog.Error("list projects failed", "error", err)
		writeServerError(w)
		return
	}
	p.respond(w, r.Context(), key, serialize.NewProjects(items, origin))
}

// ProjectDetail returns a single project looked up by slug, not numeric id.
func (p *Public) ProjectDetail(w http.ResponseWriter, r *http.Request) {
	origin := requestOrigin(r)
	key, done := p.serveCached(w, r, origin)
	if done {
		return
	}

	project, err := p.projects.FindBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		slog.Error("find project failed", "error", err)
		writeServerError(w)
		return
	}
	if project == nil {
		writeNotFound(w)
		return
	}
	p.respond(w, r.Context(), key, serialize.NewProject(*project, origin))
}

// EducationList returns all education entries ordered by sort order.
func (p *Public) EducationList(w http.ResponseWriter, r *http.Request) {
	origin := requestOrigin(r)
	key, done := p.serveCached(w, r, origin)
	if done {
		return
	}

	items, err := p.education.List()
	if err != nil {
		slog.Error("list education failed", "error", err)
		writeServerError(w)
		return
	}
	p.respond(w, r.Context(), key, serialize.NewEducationList(items))
}

// EducationDetail returns a single education entry by id.
func (p *Public) EducationDetail(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeNotFound(w)
		return
	}
	item, err := p.education.FindByID(id)
	if err != nil {
		slog.Error("find education failed", "error", err)
		writeServerError(w)
		return
	}
	if item == nil {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, serialize.NewEducation(*item))
}

// ExperienceList returns all experience entries ordered by sort order.
func (p *Public) ExperienceList(w http.ResponseWriter, r *http.Request) {
	origin := requestOrigin(r)
	key, done := p.serveCached(w, r, origin)
	if done {
		return
	}

	items, err := p.experience.List()
	if err != nil {
		slog.Error("list experience failed", "error", err)
		writeServerError(w)
		return
	}
	p.respond(w, r.Context(), key, serialize.NewExperienceList(items))
}

// ExperienceDetail returns a single experience entry by id.
func (p *Public) ExperienceDetail(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeNotFound(w)
		return
	}
	item, err := p.experience.FindByID(id)
	if err != nil {
		slog.Error("find experience failed", "error", err)
		writeServerError(w)
		return
	}
	if item == nil {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, serialize.NewExperience(*item))
}

// SkillList returns all skills ordered by sort order.
func (p *Public) SkillList(w http.ResponseWriter, r *http.Request) {
	origin := requestOrigin(r)
	key, done := p.serveCached(w, r, origin)
	if done {
		return
	}

	items, err := p.skills.List()
	if err != nil {
		slog.Error("list skills failed", "error", err)
		writeServerError(w)
		return
	}
	p.respond(w, r.Context(), key, serialize.NewSkills(items))
}

// SkillDetail returns a single skill by id.
func (p *Public) SkillDetail(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeNotFound(w)
		return
	}
	item, err := p.skills.FindByID(id)
	if err != nil {
		slog.Error("find skill failed", "error", err)
		writeServerError(w)
		return
	}
	if item == nil {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, serialize.NewSkill(*item))
}

// RoleList returns all headline roles ordered by sort order.
func (p *Public) RoleList(w http.ResponseWriter, r *http.Request) {
	origin := requestOrigin(r)
	key, done := p.serveCached(w, r, origin)
	if done {
		return
	}

	items, err := p.roles.List()
	if err != nil {
		slog.Error("list roles failed", "error", err)
		writeServerError(w)
		return
	}
	p.respond(w, r.Context(), key, serialize.NewRoles(items))
}

// RoleDetail returns a single role by id.
func (p *Public) RoleDetail(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeNotFound(w)
		return
	}
	item, err := p.roles.FindByID(id)
	if err != nil {
		slog.Error("find role failed", "error", err)
		writeServerError(w)
		return
	}
	if item == nil {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, serialize.NewRole(*item))
}

// Resume returns the newest resume page as a single object, or JSON null
// when none exists. The frontend expects an object here, not an array.
func (p *Public) Resume(w http.ResponseWriter, r *http.Request) {
	origin := requestOrigin(r)
	key, done := p.serveCached(w, r, origin)
	if done {
		return
	}

	rp, err := p.resume.Latest()
	if err != nil {
		slog.Error("latest resume failed", "error", err)
		writeServerError(w)
		return
	}
	if rp == nil {
		p.respond(w, r.Context(), key, nil)
		return
	}
	p.respond(w, r.Context(), key, serialize.NewResumePage(*rp, origin))
}

// About returns the newest about page as a single object, or JSON null when
// none exists. Also mounted at /pages/about/latest with identical semantics.
func (p *Public) About(w http.ResponseWriter, r *http.Request) {
	origin := requestOrigin(r)
	key, done := p.serveCached(w, r, origin)
	if done {
		return
	}

	ap, err := p.about.Latest()
	if err != nil {
		slog.Error("latest about failed", "error", err)
		writeServerError(w)
		return
	}
	if ap == nil {
		p.respond(w, r.Context(), key, nil)
		return
	}
	p.respond(w, r.Context(), key, serialize.NewAboutPage(*ap, origin))
}

// HomeList returns all home pages as an array, newest first. A single row
// is expected in practice, but the contract is an array.
func (p *Public) HomeList(w http.ResponseWriter, r *http.Request) {
	origin := requestOrigin(r)
	key, done := p.serveCached(w, r, origin)
	if done {
		return
	}

	items, err := p.home.List()
	if err != nil {
		slog.Error("list home pages failed", "error", err)
		writeServerError(w)
		return
	}
	p.respond(w, r.Context(), key, serialize.NewHomePages(items, origin))
}

// SiteSettingsList returns all settings rows as an array.
func (p *Public) SiteSettingsList(w http.ResponseWriter, r *http.Request) {
	origin := requestOrigin(r)
	key, done := p.serveCached(w, r, origin)
	if done {
		return
	}

	items, err := p.settings.List()
	if err != nil {
		slog.Error("list site settings failed", "error", err)
		writeServerError(w)
		return
	}
	p.respond(w, r.Context(), key, serialize.NewSiteSettingsList(items, origin))
}
