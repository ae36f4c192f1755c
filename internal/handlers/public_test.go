package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// seedProjects inserts projects with distinct ordering attributes. Creation
// times are staggered so the created tiebreaker is deterministic.
func seedProjects(t *testing.T, env *testEnv) {
	t.Helper()
	rows := []struct {
		title, slug, category string
		featured              bool
		order                 int
		ageMinutes            int
	}{
		{"Old Plain", "old-plain", "other", false, 5, 30},
		{"Featured Shop", "featured-shop", "ecommerce", true, 1, 20},
		{"New Plain", "new-plain", "productivity", false, 5, 10},
		{"Low Order", "low-order", "education", false, 2, 40},
	}
	for _, p := range rows {
		if _, err := env.DB.Exec(`
			INSERT INTO projects (title, slug, category, featured, sort_order, image, created)
			VALUES ($1, $2, $3, $4, $5, 'projects/shot.png', now() - make_interval(mins => $6))
		`, p.title, p.slug, p.category, p.featured, p.order, p.ageMinutes); err != nil {
			t.Fatalf("seed project %s: %v", p.slug, err)
		}
	}
}

func getJSON(t *testing.T, h http.HandlerFunc, target string) (*httptest.ResponseRecorder, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec, rec.Body.Bytes()
}

func TestProjectList_DefaultOrdering(t *testing.T) {
	env := newTestEnv(t)
	seedProjects(t, env)

	rec, body := getJSON(t, env.Public.ProjectList, "/pages/projects")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var got []struct {
		Slug string `json:"slug"`
	}
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}

	// featured desc, then sort_order asc, then created desc.
	want := []string{"featured-shop", "low-order", "new-plain", "old-plain"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, slug := range want {
		if got[i].Slug != slug {
			t.Errorf("position %d = %q, want %q", i, got[i].Slug, slug)
		}
	}
}

func TestProjectList_CategoryFilter(t *testing.T) {
	env := newTestEnv(t)
	seedProjects(t, env)

	_, body := getJSON(t, env.Public.ProjectList, "/pages/projects?category=ecommerce")
	var got []struct {
		Slug     string `json:"slug"`
		Category string `json:"category"`
	}
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Category != "ecommerce" {
		t.Errorf("filtered list = %+v, want only ecommerce projects", got)
	}
}

func TestProjectList_Search(t *testing.T) {
	env := newTestEnv(t)
	seedProjects(t, env)

	_, body := getJSON(t, env.Public.ProjectList, "/pages/projects?search=shop")
	var got []struct {
		Slug string `json:"slug"`
	}
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Slug != "featured-shop" {
		t.Errorf("search result = %+v, want featured-shop only", got)
	}
}

func TestProjectList_OrderingOverride(t *testing.T) {
	env := newTestEnv(t)
	seedProjects(t, env)

	_, body := getJSON(t, env.Public.ProjectList, "/pages/projects?ordering=-created")
	var got []struct {
		Slug string `json:"slug"`
	}
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 4 || got[0].Slug != "new-plain" || got[3].Slug != "low-order" {
		t.Errorf("ordering=-created list = %+v, want newest first", got)
	}
}

func TestProjectList_EmptyIsArray(t *testing.T) {
	env := newTestEnv(t)

	rec, body := getJSON(t, env.Public.ProjectList, "/pages/projects")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if s := string(body); s != "[]" {
		t.Errorf("empty list body = %q, want []", s)
	}
}

func TestProjectDetail(t *testing.T) {
	env := newTestEnv(t)
	seedProjects(t, env)

	req := httptest.NewRequest(http.MethodGet, "/pages/projects/featured-shop", nil)
	req = withChiURLParam(req, "slug", "featured-shop")
	req.Host = "folio.example.com"
	rec := httptest.NewRecorder()
	env.Public.ProjectDetail(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got struct {
		Slug  string  `json:"slug"`
		Image *string `json:"image"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Slug != "featured-shop" {
		t.Errorf("slug = %q", got.Slug)
	}
	if got.Image == nil || *got.Image != "http://folio.example.com/media/projects/shot.png" {
		t.Errorf("image = %v, want absolute URL built from the request origin", got.Image)
	}
}

func TestProjectDetail_UnknownSlug(t *testing.T) {
	env := newTestEnv(t)
	seedProjects(t, env)

	req := httptest.NewRequest(http.MethodGet, "/pages/projects/nope", nil)
	req = withChiURLParam(req, "slug", "nope")
	rec := httptest.NewRecorder()
	env.Public.ProjectDetail(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestAbout_NullWhenEmpty(t *testing.T) {
	env := newTestEnv(t)

	rec, body := getJSON(t, env.Public.About, "/pages/about")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 even with no about page", rec.Code)
	}
	if s := string(body); s != "null" {
		t.Errorf("body = %q, want null (not an error, not an empty array)", s)
	}
}

func TestAbout_LatestRowWithSkills(t *testing.T) {
	env := newTestEnv(t)

	// Two about pages; the newer one must win.
	if _, err := env.DB.Exec(`
		INSERT INTO about_pages (title, created) VALUES ('Old About', now() - interval '1 hour')
	`); err != nil {
		t.Fatal(err)
	}
	var aboutID string
	if err := env.DB.QueryRow(`
		INSERT INTO about_pages (title, email) VALUES ('About Me', 'jane@example.com') RETURNING id
	`).Scan(&aboutID); err != nil {
		t.Fatal(err)
	}
	var skillID string
	if err := env.DB.QueryRow(`
		INSERT INTO skills (name, percent, sort_order) VALUES ('Go', 90, 0) RETURNING id
	`).Scan(&skillID); err != nil {
		t.Fatal(err)
	}
	if _, err := env.DB.Exec(`
		INSERT INTO about_page_skills (about_page_id, skill_id) VALUES ($1, $2)
	`, aboutID, skillID); err != nil {
		t.Fatal(err)
	}

	_, body := getJSON(t, env.Public.About, "/pages/about")
	var got struct {
		Title  string `json:"title"`
		Skills []struct {
			Name    string `json:"name"`
			Percent int    `json:"percent"`
		} `json:"skills"`
	}
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Title != "About Me" {
		t.Errorf("title = %q, want the newest about page", got.Title)
	}
	if len(got.Skills) != 1 || got.Skills[0].Name != "Go" || got.Skills[0].Percent != 90 {
		t.Errorf("skills = %+v, want embedded Go skill", got.Skills)
	}
}

func TestResume_EmbedsRelations(t *testing.T) {
	env := newTestEnv(t)

	var resumeID, eduID, expID string
	if err := env.DB.QueryRow(`
		INSERT INTO resume_pages (title, intro) VALUES ('My Resume', 'hello') RETURNING id
	`).Scan(&resumeID); err != nil {
		t.Fatal(err)
	}
	if err := env.DB.QueryRow(`
		INSERT INTO education (title, institution, sort_order)
		VALUES ('B.Sc.', 'Example University', 0) RETURNING id
	`).Scan(&eduID); err != nil {
		t.Fatal(err)
	}
	if err := env.DB.QueryRow(`
		INSERT INTO experience (title, company, bullets, sort_order)
		VALUES ('Developer', 'Example GmbH', E'a\n\nb \n c', 0) RETURNING id
	`).Scan(&expID); err != nil {
		t.Fatal(err)
	}
	if _, err := env.DB.Exec(`INSERT INTO resume_page_education VALUES ($1, $2)`, resumeID, eduID); err != nil {
		t.Fatal(err)
	}
	if _, err := env.DB.Exec(`INSERT INTO resume_page_experience VALUES ($1, $2)`, resumeID, expID); err != nil {
		t.Fatal(err)
	}

	_, body := getJSON(t, env.Public.Resume, "/pages/resume")
	var got struct {
		Title      string `json:"title"`
		Education  []struct {
			Institution string `json:"institution"`
		} `json:"education"`
		Experience []struct {
			Bullets []string `json:"bullets"`
		} `json:"experience"`
	}
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Title != "My Resume" {
		t.Errorf("title = %q", got.Title)
	}
	if len(got.Education) != 1 || got.Education[0].Institution != "Example University" {
		t.Errorf("education = %+v", got.Education)
	}
	if len(got.Experience) != 1 {
		t.Fatalf("experience = %+v", got.Experience)
	}
	want := []string{"a", "b", "c"}
	if len(got.Experience[0].Bullets) != 3 {
		t.Fatalf("bullets = %v, want %v", got.Experience[0].Bullets, want)
	}
	for i, b := range want {
		if got.Experience[0].Bullets[i] != b {
			t.Errorf("bullet %d = %q, want %q", i, got.Experience[0].Bullets[i], b)
		}
	}
}

func TestHomeList_IsArray(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.DB.Exec(`
		INSERT INTO home_pages (full_name, profile_image) VALUES ('Jane Developer', 'profiles/jane.png')
	`); err != nil {
		t.Fatal(err)
	}

	_, body := getJSON(t, env.Public.HomeList, "/pages/home")
	var got []struct {
		FullName string `json:"full_name"`
	}
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("decode: %v (home must be an array)", err)
	}
	if len(got) != 1 || got[0].FullName != "Jane Developer" {
		t.Errorf("home list = %+v", got)
	}
}

func TestSiteSettingsList_IsArray(t *testing.T) {
	env := newTestEnv(t)

	rec, body := getJSON(t, env.Public.SiteSettingsList, "/pages/site-settings")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if s := string(body); s != "[]" {
		t.Errorf("empty settings body = %q, want [] (array contract)", s)
	}
}

func TestEducationDetail_BadID(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/pages/education/42", nil)
	req = withChiURLParam(req, "id", "42")
	rec := httptest.NewRecorder()
	env.Public.EducationDetail(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for a non-UUID id", rec.Code)
	}
}
