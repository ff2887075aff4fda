package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"groomer-directory/internal/models"
	"groomer-directory/internal/normalize"

	"github.com/rs/zerolog/log"
)

// TopRatedLimit is the number of businesses shown on the home page.
const TopRatedLimit = 6

// BusinessView is a business prepared for display, with the loosely typed
// columns parsed and every optional field resolved.
type BusinessView struct {
	ID           int                   `json:"id"`
	Name         string                `json:"name"`
	Slug         string                `json:"slug"`
	Path         string                `json:"path"`
	Description  string                `json:"description,omitempty"`
	LocationID   *int                  `json:"location_id,omitempty"`
	LocationName string                `json:"location_name"`
	ImageURL     string                `json:"image_url"`
	Rating       *float64              `json:"rating"`
	ReviewCount  int                   `json:"review_count"`
	Phone        string                `json:"phone,omitempty"`
	Email        string                `json:"email,omitempty"`
	Website      string                `json:"website,omitempty"`
	Address      string                `json:"address,omitempty"`
	Featured     bool                  `json:"featured"`
	Services     []models.Service      `json:"services"`
	OpeningHours []models.OpeningHours `json:"opening_hours"`
}

// FAQ is one question on a business profile.
type FAQ struct {
	Question string
	Answer   string
}

// BrowseParams are the query parameters of a browse page. Location and
// Specialization hold slugs.
type BrowseParams struct {
	Location       string
	Specialization string
	Search         string
	Sort           SortOrder
}

// BrowsePage is the data behind /groomers and the location and
// specialization pages.
type BrowsePage struct {
	Meta            PageMeta
	Location        *models.Location
	Specialization  *SpecializationView
	Featured        *BusinessView
	Businesses      []BusinessView
	Locations       []models.Location
	Specializations []SpecializationView
	Params          BrowseParams
}

// HomePage is the data behind /.
type HomePage struct {
	Meta            PageMeta
	Locations       []models.Location
	Specializations []SpecializationView
	TopRated        []BusinessView
}

// BusinessProfile is the data behind /groomers/{slug} for a business.
type BusinessProfile struct {
	Meta        PageMeta
	Business    BusinessView
	FAQs        []FAQ
	Breadcrumbs string
}

// DirectoryRepository provides the location and specialization vocabularies.
type DirectoryRepository interface {
	ListLocations(ctx context.Context) ([]models.Location, error)
	ListSpecializations(ctx context.Context) ([]models.Specialization, error)
}

type featuredMode int

const (
	featuredByLocation featuredMode = iota
	featuredBySpecialization
)

// DirectoryService composes directory pages from the listing engine,
// featured selection and vocabularies.
type DirectoryService struct {
	vocab    DirectoryRepository
	listing  *ListingService
	featured *FeaturedService
	seo      SEO
	images   ImageResolver
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(vocab DirectoryRepository, listing *ListingService, featured *FeaturedService, seo SEO, images ImageResolver) *DirectoryService {
	return &DirectoryService{
		vocab:    vocab,
		listing:  listing,
		featured: featured,
		seo:      seo,
		images:   images,
	}
}

// Locations returns every location with its business count.
func (s *DirectoryService) Locations(ctx context.Context) []models.Location {
	locations, err := s.vocab.ListLocations(ctx)
	if err != nil {
		logDataAccessFailure(err, "list locations", "directory")
		return []models.Location{}
	}
	return locations
}

func (s *DirectoryService) rawSpecializations(ctx context.Context) []models.Specialization {
	specs, err := s.vocab.ListSpecializations(ctx)
	if err != nil {
		logDataAccessFailure(err, "list specializations", "directory")
		return []models.Specialization{}
	}
	return specs
}

// Specializations returns every specialization prepared for display.
func (s *DirectoryService) Specializations(ctx context.Context) []SpecializationView {
	return specializationViews(s.rawSpecializations(ctx))
}

func specializationViews(specs []models.Specialization) []SpecializationView {
	views := make([]SpecializationView, 0, len(specs))
	for _, sp := range specs {
		views = append(views, NewSpecializationView(sp))
	}
	return views
}

// View prepares a business for display.
func (s *DirectoryService) View(b models.Business) BusinessView {
	v := BusinessView{
		ID:           b.ID,
		Name:         b.Name,
		Slug:         b.EffectiveSlug(),
		Path:         BusinessPath(b),
		Description:  deref(b.Description),
		LocationID:   b.LocationID,
		LocationName: b.LocationName,
		ImageURL:     s.images.Resolve(b.ImageURL),
		Rating:       b.Rating,
		ReviewCount:  b.ReviewCountValue(),
		Phone:        deref(b.Phone),
		Email:        deref(b.Email),
		Website:      deref(b.Website),
		Address:      deref(b.Address),
		Featured:     b.Featured,
		Services:     normalize.Services(b.Services),
		OpeningHours: normalize.OpeningHours(b.OpeningHours),
	}
	if v.LocationName == "" {
		v.LocationName = s.seo.City
	}
	return v
}

func (s *DirectoryService) views(businesses []models.Business) []BusinessView {
	views := make([]BusinessView, 0, len(businesses))
	for _, b := range businesses {
		views = append(views, s.View(b))
	}
	return views
}

// ListGroomers runs a listing query and prepares the result for display.
func (s *DirectoryService) ListGroomers(ctx context.Context, q ListingQuery) ([]BusinessView, error) {
	businesses, err := s.listing.ListBusinesses(ctx, q)
	if err != nil {
		return nil, err
	}
	return s.views(businesses), nil
}

// Featured picks the featured business of a location, or of a
// specialization when no location is given.
func (s *DirectoryService) Featured(ctx context.Context, locationID, specializationID *int) *BusinessView {
	var b *models.Business
	switch {
	case locationID != nil:
		b = s.featured.ForLocation(ctx, *locationID)
	case specializationID != nil:
		b = s.featured.ForSpecialization(ctx, *specializationID)
	}
	if b == nil {
		return nil
	}
	v := s.View(*b)
	return &v
}

// Home composes the home page.
func (s *DirectoryService) Home(ctx context.Context) *HomePage {
	page := &HomePage{
		Meta:            s.seo.HomeMeta(),
		Locations:       s.Locations(ctx),
		Specializations: s.Specializations(ctx),
	}

	top, err := s.listing.ListBusinesses(ctx, ListingQuery{Sort: SortRating})
	if err != nil {
		log.Error().Err(err).Msg("failed to list top rated businesses")
		top = nil
	}
	if len(top) > TopRatedLimit {
		top = top[:TopRatedLimit]
	}
	page.TopRated = s.views(top)

	return page
}

// Browse composes /groomers. Unknown location or specialization slugs are
// ignored.
func (s *DirectoryService) Browse(ctx context.Context, p BrowseParams) (*BrowsePage, error) {
	locations := s.Locations(ctx)
	specs := s.rawSpecializations(ctx)
	loc := MatchLocationSlug(locations, p.Location)
	spec := MatchSpecializationSlug(specs, p.Specialization)
	return s.compose(ctx, locations, specs, loc, spec, p, featuredByLocation)
}

// LocationPage composes the page of a resolved location. A specialization
// slug in p narrows the listing further.
func (s *DirectoryService) LocationPage(ctx context.Context, loc models.Location, p BrowseParams) (*BrowsePage, error) {
	locations := s.Locations(ctx)
	specs := s.rawSpecializations(ctx)
	spec := MatchSpecializationSlug(specs, p.Specialization)
	return s.compose(ctx, locations, specs, &loc, spec, p, featuredByLocation)
}

// SpecializationPage composes the page of a resolved specialization.
func (s *DirectoryService) SpecializationPage(ctx context.Context, spec models.Specialization, p BrowseParams) (*BrowsePage, error) {
	locations := s.Locations(ctx)
	specs := s.rawSpecializations(ctx)
	loc := MatchLocationSlug(locations, p.Location)
	page, err := s.compose(ctx, locations, specs, loc, &spec, p, featuredBySpecialization)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		page.Meta = s.seo.SpecializationMeta(*page.Specialization)
	}
	return page, nil
}

func (s *DirectoryService) compose(
	ctx context.Context,
	locations []models.Location,
	specs []models.Specialization,
	loc *models.Location,
	spec *models.Specialization,
	p BrowseParams,
	mode featuredMode,
) (*BrowsePage, error) {
	if p.Sort == "" {
		p.Sort = SortRating
	}
	if !p.Sort.Valid() {
		return nil, fmt.Errorf("service: %w: %q", ErrInvalidSort, p.Sort)
	}

	page := &BrowsePage{
		Meta:            s.seo.ListingMeta(loc, spec),
		Location:        loc,
		Locations:       locations,
		Specializations: specializationViews(specs),
		Params:          p,
	}

	q := ListingQuery{Search: p.Search, Sort: p.Sort}
	if loc != nil {
		q.LocationID = &loc.ID
	}
	if spec != nil {
		q.SpecializationID = &spec.ID
		v := NewSpecializationView(*spec)
		page.Specialization = &v
	}

	var featured *models.Business
	switch {
	case loc != nil:
		featured = s.featured.ForLocation(ctx, loc.ID)
	case spec != nil && mode == featuredBySpecialization:
		featured = s.featured.ForSpecialization(ctx, spec.ID)
	}
	if featured != nil {
		q.ExcludeID = &featured.ID
		v := s.View(*featured)
		page.Featured = &v
	}

	businesses, err := s.listing.ListBusinesses(ctx, q)
	if err != nil {
		return nil, err
	}
	page.Businesses = s.views(businesses)

	return page, nil
}

// Profile composes the page of a resolved business.
func (s *DirectoryService) Profile(b models.Business) *BusinessProfile {
	v := s.View(b)
	profile := &BusinessProfile{
		Meta:     s.seo.BusinessMeta(v),
		Business: v,
		FAQs:     BusinessFAQs(v.Services),
	}

	crumbs, err := s.seo.Breadcrumbs(v)
	if err != nil {
		log.Error().Err(err).Int("business_id", b.ID).Msg("failed to render breadcrumbs")
	}
	profile.Breadcrumbs = crumbs

	return profile
}

// NotFound describes the 404 page.
func (s *DirectoryService) NotFound() PageMeta {
	return s.seo.NotFoundMeta()
}

// BusinessFAQs builds the profile FAQ. The services answer lists every
// service with its price range.
func BusinessFAQs(services []models.Service) []FAQ {
	answer := "Please contact us directly for our current services and pricing."
	parts := make([]string, 0, len(services))
	for _, svc := range services {
		if svc.Name == "" {
			continue
		}
		parts = append(parts, svc.Name+priceRange(svc))
	}
	if len(parts) > 0 {
		answer = "We offer: " + strings.Join(parts, ", ")
	}

	return []FAQ{
		{Question: "How long does a typical grooming take?", Answer: "Usually 1-3 hours depending on size and services needed"},
		{Question: "How often should I get my dog groomed?", Answer: "Every 4-8 weeks depending on breed and coat type"},
		{Question: "What services do you offer?", Answer: answer},
		{Question: "How should I prepare my dog?", Answer: "Give them a walk and bathroom break before the appointment"},
	}
}

func priceRange(svc models.Service) string {
	switch {
	case svc.PriceFrom != nil && svc.PriceTo != nil:
		return " (£" + formatPrice(*svc.PriceFrom) + "-£" + formatPrice(*svc.PriceTo) + ")"
	case svc.PriceFrom != nil:
		return " (£" + formatPrice(*svc.PriceFrom) + ")"
	case svc.PriceTo != nil:
		return " (£" + formatPrice(*svc.PriceTo) + ")"
	default:
		return ""
	}
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
