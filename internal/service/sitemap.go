package service

import (
	"context"
	"net/url"
	"time"

	"groomer-directory/internal/models"
	"groomer-directory/internal/slug"
)

// Change frequencies used in the sitemap.
const (
	ChangeDaily   = "daily"
	ChangeWeekly  = "weekly"
	ChangeMonthly = "monthly"
)

// SitemapEntry is one <url> element.
type SitemapEntry struct {
	Loc             string
	LastModified    time.Time
	ChangeFrequency string
	Priority        float64
}

var staticRoutes = []struct {
	path     string
	freq     string
	priority float64
}{
	{"/", ChangeDaily, 1.0},
	{"/about", ChangeMonthly, 0.8},
	{"/contact", ChangeMonthly, 0.8},
	{"/groomers", ChangeDaily, 0.9},
	{"/privacy", ChangeMonthly, 0.5},
	{"/terms", ChangeMonthly, 0.5},
	{"/disclaimer", ChangeMonthly, 0.5},
}

// SitemapService lists every public URL of the directory.
type SitemapService struct {
	vocab      DirectoryRepository
	businesses ListingRepository
	seo        SEO
	now        func() time.Time
}

// NewSitemapService creates a new sitemap service
func NewSitemapService(vocab DirectoryRepository, businesses ListingRepository, seo SEO) *SitemapService {
	return &SitemapService{vocab: vocab, businesses: businesses, seo: seo, now: time.Now}
}

// Entries returns static pages, business profiles, location and
// specialization pages and every location and specialization combination.
// Sections whose data cannot be loaded are left out.
func (s *SitemapService) Entries(ctx context.Context) []SitemapEntry {
	now := s.now().UTC()

	entries := make([]SitemapEntry, 0, len(staticRoutes))
	for _, r := range staticRoutes {
		entries = append(entries, SitemapEntry{
			Loc:             s.seo.URL(r.path),
			LastModified:    now,
			ChangeFrequency: r.freq,
			Priority:        r.priority,
		})
	}

	businesses, err := s.businesses.ListBusinesses(ctx, models.BusinessFilter{})
	if err != nil {
		logDataAccessFailure(err, "list businesses", "sitemap")
	}
	for _, b := range businesses {
		entries = append(entries, SitemapEntry{
			Loc:             s.seo.URL(BusinessPath(b)),
			LastModified:    now,
			ChangeFrequency: ChangeWeekly,
			Priority:        0.7,
		})
	}

	locations, err := s.vocab.ListLocations(ctx)
	if err != nil {
		logDataAccessFailure(err, "list locations", "sitemap")
	}
	for _, l := range locations {
		entries = append(entries, SitemapEntry{
			Loc:             s.seo.URL(LocationPath(l.Name)),
			LastModified:    now,
			ChangeFrequency: ChangeWeekly,
			Priority:        0.6,
		})
	}

	specs, err := s.vocab.ListSpecializations(ctx)
	if err != nil {
		logDataAccessFailure(err, "list specializations", "sitemap")
	}
	for _, sp := range specs {
		entries = append(entries, SitemapEntry{
			Loc:             s.seo.URL(SpecializationPath(sp.Name)),
			LastModified:    now,
			ChangeFrequency: ChangeWeekly,
			Priority:        0.6,
		})
	}

	for _, l := range locations {
		for _, sp := range specs {
			q := url.Values{}
			q.Set("location", slug.Normalize(l.Name))
			q.Set("specialization", slug.Normalize(sp.Name))
			entries = append(entries, SitemapEntry{
				Loc:             s.seo.URL("/groomers?" + q.Encode()),
				LastModified:    now,
				ChangeFrequency: ChangeWeekly,
				Priority:        0.5,
			})
		}
	}

	return entries
}
