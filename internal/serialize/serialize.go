// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package serialize maps stored entities to their transport representations.
// Media paths are resolved to absolute URLs when the request origin is known,
// newline-delimited bullet text is flattened into string lists, and related
// sets are embedded as ordered lists. All functions are pure.
package serialize

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"folio/internal/models"
)

// mediaPrefix is the URL path under which media files are served.
const mediaPrefix = "/media/"

// MediaURL resolves a storage-relative media path to a URL. With a known
// origin the result is absolute ("https://host/media/p"); without one it is
// the root-relative media path. A nil or empty path yields nil, so absent
// files serialize to JSON null.
func MediaURL(path *string, origin string) *string {
	if path == nil || *path == "" {
		return nil
	}
	u := origin + mediaPrefix + strings.TrimPrefix(*path, "/")
	return &u
}

// Bullets splits newline-delimited text into trimmed, non-empty lines,
// preserving order.
func Bullets(text string) []string {
	lines := []string{}
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// Project is the transport form of a portfolio project.
type Project struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Tools       string    `json:"tools"`
	Tags        string    `json:"tags"`
	Image       *string   `json:"image"`
	LiveURL     *string   `json:"live_url"`
	GithubURL   *string   `json:"github_url"`
	Featured    bool      `json:"featured"`
	Order       int       `json:"order"`
	Created     time.Time `json:"created"`
}

// NewProject serializes a project, resolving its image against origin.
func NewProject(p models.Project, origin string) Project {
	return Project{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Description: p.Description,
		Category:    string(p.Category),
		Tools:       p.Tools,
		Tags:        p.Tags,
		Image:       MediaURL(p.Image, origin),
		LiveURL:     p.LiveURL,
		GithubURL:   p.GithubURL,
		Featured:    p.Featured,
		Order:       p.SortOrder,
		Created:     p.Created,
	}
}

// NewProjects serializes a project list, preserving order.
func NewProjects(ps []models.Project, origin string) []Project {
	out := make([]Project, 0, len(ps))
	for _, p := range ps {
		out = append(out, NewProject(p, origin))
	}
	return out
}

// Education is the transport form of an education entry.
type Education struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	DateRange   string    `json:"date_range"`
	Institution string    `json:"institution"`
	Description string    `json:"description"`
	Order       int       `json:"order"`
}

// NewEducation serializes an education entry.
func NewEducation(e models.Education) Education {
	return Education{
		ID:          e.ID,
		Title:       e.Title,
		DateRange:   e.DateRange,
		Institution: e.Institution,
		Description: e.Description,
		Order:       e.SortOrder,
	}
}

// NewEducationList serializes an education list, preserving order.
func NewEducationList(es []models.Education) []Education {
	out := make([]Education, 0, len(es))
	for _, e := range es {
		out = append(out, NewEducation(e))
	}
	return out
}

// Experience is the transport form of a work-experience entry. Bullets is
// the stored text flattened into an ordered list of non-empty lines.
type Experience struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Company   string    `json:"company"`
	DateRange string    `json:"date_range"`
	Bullets   []string  `json:"bullets"`
	Order     int       `json:"order"`
}

// NewExperience serializes an experience entry.
func NewExperience(e models.Experience) Experience {
	return Experience{
		ID:        e.ID,
		Title:     e.Title,
		Company:   e.Company,
		DateRange: e.DateRange,
		Bullets:   Bullets(e.Bullets),
		Order:     e.SortOrder,
	}
}

// NewExperienceList serializes an experience list, preserving order.
func NewExperienceList(es []models.Experience) []Experience {
	out := make([]Experience, 0, len(es))
	for _, e := range es {
		out = append(out, NewExperience(e))
	}
	return out
}

// ResumePage is the transport form of the resume page with its related
// sets embedded.
type ResumePage struct {
	ID         uuid.UUID    `json:"id"`
	Title      string       `json:"title"`
	Intro      string       `json:"intro"`
	Education  []Education  `json:"education"`
	Experience []Experience `json:"experience"`
	ResumeFile *string      `json:"resume_file"`
	Created    time.Time    `json:"created"`
}

// NewResumePage serializes a resume page, resolving the resume file
// against origin.
func NewResumePage(rp models.ResumePage, origin string) ResumePage {
	return ResumePage{
		ID:         rp.ID,
		Title:      rp.Title,
		Intro:      rp.Intro,
		Education:  NewEducationList(rp.Education),
		Experience: NewExperienceList(rp.Experience),
		ResumeFile: MediaURL(rp.ResumeFile, origin),
		Created:    rp.Created,
	}
}

// Skill is the transport form of a skill.
type Skill struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Percent int       `json:"percent"`
	Order   int       `json:"order"`
}

// NewSkill serializes a skill.
func NewSkill(s models.Skill) Skill {
	return Skill{ID: s.ID, Name: s.Name, Percent: s.Percent, Order: s.SortOrder}
}

// NewSkills serializes a skill list, preserving order.
func NewSkills(ss []models.Skill) []Skill {
	out := make([]Skill, 0, len(ss))
	for _, s := range ss {
		out = append(out, NewSkill(s))
	}
	return out
}

// AboutPage is the transport form of the about page with skills embedded.
type AboutPage struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Intro        string    `json:"intro"`
	ProfileImage *string   `json:"profile_image"`
	Email        *string   `json:"email"`
	Location     *string   `json:"location"`
	Phone        *string   `json:"phone"`
	Skills       []Skill   `json:"skills"`
	Created      time.Time `json:"created"`
}

// NewAboutPage serializes an about page, resolving the profile image
// against origin.
func NewAboutPage(ap models.AboutPage, origin string) AboutPage {
	return AboutPage{
		ID:           ap.ID,
		Title:        ap.Title,
		Intro:        ap.Intro,
		ProfileImage: MediaURL(ap.ProfileImage, origin),
		Email:        ap.Email,
		Location:     ap.Location,
		Phone:        ap.Phone,
		Skills:       NewSkills(ap.Skills),
		Created:      ap.Created,
	}
}

// Role is the transport form of a headline role.
type Role struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Order int       `json:"order"`
}

// NewRole serializes a role.
func NewRole(r models.Role) Role {
	return Role{ID: r.ID, Name: r.Name, Order: r.SortOrder}
}

// NewRoles serializes a role list, preserving order.
func NewRoles(rs []models.Role) []Role {
	out := make([]Role, 0, len(rs))
	for _, r := range rs {
		out = append(out, NewRole(r))
	}
	return out
}

// HomePage is the transport form of the home page with roles embedded.
type HomePage struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"full_name"`
	Intro        string    `json:"intro"`
	ProfileImage *string   `json:"profile_image"`
	Roles        []Role    `json:"roles"`
}

// NewHomePage serializes a home page, resolving the profile image against
// origin. The image is required at the storage layer, so the resolved URL
// is present for any stored row.
func NewHomePage(hp models.HomePage, origin string) HomePage {
	return HomePage{
		ID:           hp.ID,
		FullName:     hp.FullName,
		Intro:        hp.Intro,
		ProfileImage: MediaURL(&hp.ProfileImage, origin),
		Roles:        NewRoles(hp.Roles),
	}
}

// NewHomePages serializes a home-page list, preserving order.
func NewHomePages(hps []models.HomePage, origin string) []HomePage {
	out := make([]HomePage, 0, len(hps))
	for _, hp := range hps {
		out = append(out, NewHomePage(hp, origin))
	}
	return out
}

// SiteSettings is the transport form of the site branding row. The original
// contract exposes no identifier here.
type SiteSettings struct {
	BrandName      string  `json:"brand_name"`
	Logo           *string `json:"logo"`
	PrimaryColor   string  `json:"primary_color"`
	SecondaryColor string  `json:"secondary_color"`
}

// NewSiteSettings serializes a settings row, resolving the logo against origin.
func NewSiteSettings(ss models.SiteSettings, origin string) SiteSettings {
	return SiteSettings{
		BrandName:      ss.BrandName,
		Logo:           MediaURL(ss.Logo, origin),
		PrimaryColor:   ss.PrimaryColor,
		SecondaryColor: ss.SecondaryColor,
	}
}

// NewSiteSettingsList serializes a settings list, preserving order.
func NewSiteSettingsList(sss []models.SiteSettings, origin string) []SiteSettings {
	out := make([]SiteSettings, 0, len(sss))
	for _, ss := range sss {
		out = append(out, NewSiteSettings(ss, origin))
	}
	return out
}

// ContactMessage is the transport form of a contact submission.
type ContactMessage struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Subject string    `json:"subject"`
	Message string    `json:"message"`
	Created time.Time `json:"created"`
}

// NewContactMessage serializes a contact message.
func NewContactMessage(m models.ContactMessage) ContactMessage {
	return ContactMessage{
		ID:      m.ID,
		Name:    m.Name,
		Email:   m.Email,
		Subject: m.Subject,
		Message: m.Message,
		Created: m.Created,
	}
}

// NewContactMessages serializes a contact-message list, preserving order.
func NewContactMessages(ms []models.ContactMessage) []ContactMessage {
	out := make([]ContactMessage, 0, len(ms))
	for _, m := range ms {
		out = append(out, NewContactMessage(m))
	}
	return out
}
