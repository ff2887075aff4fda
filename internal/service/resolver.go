package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"groomer-directory/internal/models"
	"groomer-directory/internal/slug"

	"github.com/rs/zerolog/log"
)

// Kind identifies what a path segment resolved to.
type Kind string

const (
	KindNone           Kind = "none"
	KindLocation       Kind = "location"
	KindSpecialization Kind = "specialization"
	KindBusiness       Kind = "business"
)

// Resolution is the outcome of resolving a path segment. Exactly one of
// Location, Specialization and Business is set unless Kind is KindNone.
type Resolution struct {
	Kind           Kind                   `json:"kind"`
	Location       *models.Location       `json:"location,omitempty"`
	Specialization *models.Specialization `json:"specialization,omitempty"`
	Business       *models.Business       `json:"business,omitempty"`
	// Fuzzy is set when the location was found by substring fallback.
	Fuzzy bool `json:"fuzzy,omitempty"`
	// Ambiguous is set when the segment also named a specialization that
	// the location shadows.
	Ambiguous bool `json:"ambiguous,omitempty"`
}

// Found reports whether the segment named anything.
func (r Resolution) Found() bool {
	return r.Kind != KindNone && r.Kind != ""
}

// CanonicalSlug is the slug the resolved entity is published under.
func (r Resolution) CanonicalSlug() string {
	switch r.Kind {
	case KindLocation:
		return slug.Normalize(r.Location.Name)
	case KindSpecialization:
		return slug.Normalize(r.Specialization.Name)
	case KindBusiness:
		return r.Business.EffectiveSlug()
	default:
		return ""
	}
}

// CanonicalPath is the page path the resolved entity is published under.
func (r Resolution) CanonicalPath() string {
	switch r.Kind {
	case KindLocation:
		return LocationPath(r.Location.Name)
	case KindSpecialization:
		return SpecializationPath(r.Specialization.Name)
	case KindBusiness:
		return BusinessPath(*r.Business)
	default:
		return ""
	}
}

// ResolverRepository is the data access the resolver needs.
type ResolverRepository interface {
	FindLocationByName(ctx context.Context, name string) (*models.Location, error)
	FindLocationsByNameContaining(ctx context.Context, fragment string) ([]models.Location, error)
	FindSpecializationByName(ctx context.Context, name string) (*models.Specialization, error)
	FindSpecializationsByNameContaining(ctx context.Context, fragment string) ([]models.Specialization, error)
	FindBusinessBySlug(ctx context.Context, slug string) (*models.Business, error)
	FindBusinessByDerivedSlug(ctx context.Context, slug string) (*models.Business, error)
}

// Resolver maps URL path segments onto locations, specializations and businesses.
type Resolver struct {
	repo   ResolverRepository
	strict bool
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithStrictAmbiguity makes Resolve return ErrAmbiguousMatch instead of
// preferring the location when a segment names a location and a
// specialization at once.
func WithStrictAmbiguity(strict bool) ResolverOption {
	return func(r *Resolver) {
		r.strict = strict
	}
}

// NewResolver creates a new resolver
func NewResolver(repo ResolverRepository, opts ...ResolverOption) *Resolver {
	r := &Resolver{repo: repo}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func validateSegment(segment string) error {
	if strings.ContainsRune(segment, 0) || !utf8.ValidString(segment) {
		return fmt.Errorf("service: %w: %q", ErrMalformedSegment, segment)
	}
	return nil
}

func notFound() Resolution {
	return Resolution{Kind: KindNone}
}

// Resolve determines what segment names. Candidates are tried in a fixed
// order and the first hit wins:
//
//  1. location whose name equals the de-hyphenated segment, ignoring case
//  2. specialization whose name equals it, ignoring case
//  3. business whose stored slug equals the segment, then a business with
//     no stored slug whose name normalizes to the segment
//  4. first location whose name contains the de-hyphenated segment
//
// A segment that names nothing yields KindNone and a nil error; store
// failures are logged and also yield KindNone.
func (r *Resolver) Resolve(ctx context.Context, segment string) (Resolution, error) {
	if err := validateSegment(segment); err != nil {
		return notFound(), err
	}

	name := strings.TrimSpace(slug.ToName(segment))
	if name == "" {
		return notFound(), nil
	}

	location, err := r.repo.FindLocationByName(ctx, name)
	if err != nil {
		logDataAccessFailure(err, "resolve location", segment)
		return notFound(), nil
	}

	spec, err := r.repo.FindSpecializationByName(ctx, name)
	if err != nil {
		logDataAccessFailure(err, "resolve specialization", segment)
		return notFound(), nil
	}

	if location != nil && spec != nil {
		log.Warn().
			Str("segment", segment).
			Int("location_id", location.ID).
			Int("specialization_id", spec.ID).
			Msg("slug collision between location and specialization")
		if r.strict {
			return notFound(), fmt.Errorf("service: %w: %q", ErrAmbiguousMatch, segment)
		}
		return Resolution{Kind: KindLocation, Location: location, Ambiguous: true}, nil
	}
	if location != nil {
		return Resolution{Kind: KindLocation, Location: location}, nil
	}
	if spec != nil {
		return Resolution{Kind: KindSpecialization, Specialization: spec}, nil
	}

	business, err := r.repo.FindBusinessBySlug(ctx, segment)
	if err != nil {
		logDataAccessFailure(err, "resolve business", segment)
		return notFound(), nil
	}
	if business != nil {
		return Resolution{Kind: KindBusiness, Business: business}, nil
	}

	business, err = r.repo.FindBusinessByDerivedSlug(ctx, segment)
	if err != nil {
		logDataAccessFailure(err, "resolve business by derived slug", segment)
		return notFound(), nil
	}
	if business != nil {
		return Resolution{Kind: KindBusiness, Business: business}, nil
	}

	candidates, err := r.repo.FindLocationsByNameContaining(ctx, name)
	if err != nil {
		logDataAccessFailure(err, "resolve location by substring", segment)
		return notFound(), nil
	}
	if len(candidates) > 0 {
		loc := candidates[0]
		return Resolution{Kind: KindLocation, Location: &loc, Fuzzy: true}, nil
	}

	return notFound(), nil
}

// ResolveSpecialization finds the specialization a /service/{slug} segment
// names: exact name first, then the first name containing the segment.
func (r *Resolver) ResolveSpecialization(ctx context.Context, segment string) (*models.Specialization, error) {
	if err := validateSegment(segment); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(slug.ToName(segment))
	if name == "" {
		return nil, nil
	}

	spec, err := r.repo.FindSpecializationByName(ctx, name)
	if err != nil {
		logDataAccessFailure(err, "resolve specialization", segment)
		return nil, nil
	}
	if spec != nil {
		return spec, nil
	}

	candidates, err := r.repo.FindSpecializationsByNameContaining(ctx, name)
	if err != nil {
		logDataAccessFailure(err, "resolve specialization by substring", segment)
		return nil, nil
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	return &candidates[0], nil
}

// MatchLocationSlug returns the location whose normalized name equals the
// query parameter value, ignoring case.
func MatchLocationSlug(locations []models.Location, value string) *models.Location {
	want := strings.ToLower(strings.TrimSpace(value))
	if want == "" {
		return nil
	}
	for i := range locations {
		if slug.Normalize(locations[i].Name) == want {
			return &locations[i]
		}
	}
	return nil
}

// MatchSpecializationSlug returns the specialization whose normalized name
// equals the query parameter value, ignoring case.
func MatchSpecializationSlug(specs []models.Specialization, value string) *models.Specialization {
	want := strings.ToLower(strings.TrimSpace(value))
	if want == "" {
		return nil
	}
	for i := range specs {
		if slug.Normalize(specs[i].Name) == want {
			return &specs[i]
		}
	}
	return nil
}

// SlugRoundTrips reports whether the slug published for name resolves back
// to name: the de-hyphenated slug must equal or be contained in name,
// ignoring case. Names with punctuation inside a word, such as
// "St. John's Wood", do not round-trip.
func SlugRoundTrips(name string) bool {
	back := strings.TrimSpace(slug.ToName(slug.Normalize(name)))
	if back == "" {
		return false
	}
	return strings.Contains(strings.ToLower(name), back)
}

// Unreachable returns the names among locations and specializations whose
// published slug does not round-trip.
func Unreachable(locations []models.Location, specs []models.Specialization) []Claim {
	var claims []Claim
	for _, l := range locations {
		if !SlugRoundTrips(l.Name) {
			claims = append(claims, Claim{Kind: KindLocation, ID: l.ID, Name: l.Name})
		}
	}
	for _, sp := range specs {
		if !SlugRoundTrips(sp.Name) {
			claims = append(claims, Claim{Kind: KindSpecialization, ID: sp.ID, Name: sp.Name})
		}
	}
	return claims
}

// Claim is one entity publishing a slug.
type Claim struct {
	Kind Kind   `json:"kind"`
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Collision is a slug published by more than one entity.
type Collision struct {
	Slug   string  `json:"slug"`
	Claims []Claim `json:"claims"`
}

// DetectCollisions reports every slug claimed by more than one location,
// specialization or business, ordered by slug. Resolution order shadows all
// but the first claimant, so these need fixing at ingestion time.
func DetectCollisions(locations []models.Location, specs []models.Specialization, businesses []models.Business) []Collision {
	claims := map[string][]Claim{}
	for _, l := range locations {
		s := slug.Normalize(l.Name)
		claims[s] = append(claims[s], Claim{Kind: KindLocation, ID: l.ID, Name: l.Name})
	}
	for _, sp := range specs {
		s := slug.Normalize(sp.Name)
		claims[s] = append(claims[s], Claim{Kind: KindSpecialization, ID: sp.ID, Name: sp.Name})
	}
	for _, b := range businesses {
		s := b.EffectiveSlug()
		claims[s] = append(claims[s], Claim{Kind: KindBusiness, ID: b.ID, Name: b.Name})
	}

	var collisions []Collision
	for s, c := range claims {
		if len(c) > 1 {
			collisions = append(collisions, Collision{Slug: s, Claims: c})
		}
	}
	sort.Slice(collisions, func(i, j int) bool { return collisions[i].Slug < collisions[j].Slug })

	return collisions
}

func logDataAccessFailure(err error, op, subject string) {
	log.Error().Err(err).Str("op", op).Str("subject", subject).Msg("data access failed")
}
