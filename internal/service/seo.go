package service

import (
	"encoding/json"
	"net/url"
	"strings"

	"groomer-directory/internal/models"
	"groomer-directory/internal/slug"
)

// PageMeta is the head metadata of a rendered page.
type PageMeta struct {
	Heading     string
	Title       string
	Description string
	Canonical   string
}

// SEO builds titles, descriptions and canonical URLs.
type SEO struct {
	SiteURL  string
	SiteName string
	City     string
}

// NewSEO creates the page metadata builder
func NewSEO(siteURL, siteName, city string) SEO {
	return SEO{
		SiteURL:  strings.TrimRight(siteURL, "/"),
		SiteName: siteName,
		City:     city,
	}
}

// URL makes path absolute against the site URL.
func (s SEO) URL(path string) string {
	if path == "" || path == "/" {
		return s.SiteURL
	}
	return s.SiteURL + path
}

func (s SEO) titled(heading string) string {
	if s.SiteName == "" {
		return heading
	}
	return heading + " | " + s.SiteName
}

// HomeMeta describes the home page.
func (s SEO) HomeMeta() PageMeta {
	heading := "Find the Best Dog Groomers in " + s.City
	return PageMeta{
		Heading:     heading,
		Title:       s.titled(heading),
		Description: "Discover top-rated professional dog groomers across " + s.City + ". Compare services, read reviews, and book the perfect groomer for your dog.",
		Canonical:   s.URL("/"),
	}
}

// ListingMeta describes a browse page for the given filter combination.
func (s SEO) ListingMeta(loc *models.Location, spec *models.Specialization) PageMeta {
	var m PageMeta
	switch {
	case loc != nil && spec != nil:
		m.Heading = spec.Name + " Dog Grooming in " + loc.Name
		m.Description = "Find dog groomers offering " + spec.Name + " services in " + loc.Name +
			". Expert groomers specializing in " + strings.ToLower(spec.Name) + " for your pet's needs."
		q := url.Values{}
		q.Set("location", slug.Normalize(loc.Name))
		q.Set("specialization", slug.Normalize(spec.Name))
		m.Canonical = s.URL("/groomers?" + q.Encode())
	case loc != nil:
		m.Heading = "Dog Groomers in " + loc.Name
		m.Description = "Find the best professional dog groomers in " + loc.Name +
			". Compare services, read reviews, and book appointments for dog grooming in " + loc.Name + "."
		m.Canonical = s.URL(LocationPath(loc.Name))
	case spec != nil:
		m.Heading = spec.Name + " Dog Grooming Services in " + s.City
		m.Description = "Find dog groomers offering " + spec.Name + " services in " + s.City +
			". Expert groomers specializing in " + strings.ToLower(spec.Name) + " for your pet's needs."
		m.Canonical = s.URL(SpecializationPath(spec.Name))
	default:
		m.Heading = "Dog Groomers in " + s.City
		m.Description = "Find professional dog grooming services across " + s.City +
			". Compare groomers, read reviews, and book appointments for your furry friend."
		m.Canonical = s.URL("/groomers")
	}
	m.Title = s.titled(m.Heading)
	return m
}

// SpecializationMeta describes the /service/{slug} page.
func (s SEO) SpecializationMeta(spec SpecializationView) PageMeta {
	heading := spec.Name + " Dog Grooming Services in " + s.City
	return PageMeta{
		Heading:     heading,
		Title:       heading + " | Specialized Groomers",
		Description: spec.Description,
		Canonical:   s.URL(spec.Path),
	}
}

// BusinessMeta describes a business profile.
func (s SEO) BusinessMeta(b BusinessView) PageMeta {
	description := b.Description
	if description == "" {
		description = b.Name + " is a professional dog groomer in " + b.LocationName +
			". View services, prices, opening hours and reviews."
	}
	return PageMeta{
		Heading:     b.Name,
		Title:       s.titled(b.Name + " - Dog Groomer in " + b.LocationName),
		Description: description,
		Canonical:   s.URL(b.Path),
	}
}

// NotFoundMeta describes the 404 page.
func (s SEO) NotFoundMeta() PageMeta {
	return PageMeta{
		Heading:     "Page Not Found",
		Title:       s.titled("Page Not Found"),
		Description: "The page you are looking for does not exist.",
	}
}

type breadcrumbItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

type breadcrumbList struct {
	Context         string           `json:"@context"`
	Type            string           `json:"@type"`
	ItemListElement []breadcrumbItem `json:"itemListElement"`
}

// Breadcrumbs renders the schema.org BreadcrumbList of a business profile.
func (s SEO) Breadcrumbs(b BusinessView) (string, error) {
	crumbs := []breadcrumbItem{
		{Name: "Home", Item: s.URL("/")},
		{Name: "Dog Groomers", Item: s.URL("/groomers")},
	}
	if b.LocationName != "" && b.LocationID != nil {
		crumbs = append(crumbs, breadcrumbItem{
			Name: "Dog Groomers in " + b.LocationName,
			Item: s.URL(LocationPath(b.LocationName)),
		})
	}
	crumbs = append(crumbs, breadcrumbItem{Name: b.Name, Item: s.URL(b.Path)})

	for i := range crumbs {
		crumbs[i].Type = "ListItem"
		crumbs[i].Position = i + 1
	}

	out, err := json.Marshal(breadcrumbList{
		Context:         "https://schema.org",
		Type:            "BreadcrumbList",
		ItemListElement: crumbs,
	})
	if err != nil {
		return "", err
	}
	return string(out), nil
}
