package service

import (
	"context"
	"math/rand/v2"

	"groomer-directory/internal/models"
)

const (
	// FeaturedMinRating and FeaturedMinReviews bound the random pool.
	FeaturedMinRating  = 4.5
	FeaturedMinReviews = 15
	// FallbackMinRating is the floor for the best-rated fallback.
	FallbackMinRating = 4.0
)

// FeaturedService picks the business highlighted at the top of a listing.
type FeaturedService struct {
	repo ListingRepository
	intn func(n int) int
}

// FeaturedOption configures a FeaturedService.
type FeaturedOption func(*FeaturedService)

// WithRandom replaces the source used to pick among equally qualified
// candidates. intn must return a value in [0, n).
func WithRandom(intn func(n int) int) FeaturedOption {
	return func(s *FeaturedService) {
		s.intn = intn
	}
}

// NewFeaturedService creates a new featured service
func NewFeaturedService(repo ListingRepository, opts ...FeaturedOption) *FeaturedService {
	s := &FeaturedService{repo: repo, intn: rand.IntN}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ForLocation picks the featured business of a location, or nil.
func (s *FeaturedService) ForLocation(ctx context.Context, locationID int) *models.Business {
	candidates, err := s.repo.ListBusinesses(ctx, models.BusinessFilter{LocationID: &locationID})
	if err != nil {
		logDataAccessFailure(err, "list featured candidates", "location")
		return nil
	}
	return PickFeatured(candidates, s.intn)
}

// ForSpecialization picks the featured business among those offering a
// specialization, or nil.
func (s *FeaturedService) ForSpecialization(ctx context.Context, specializationID int) *models.Business {
	ids, err := s.repo.BusinessIDsBySpecialization(ctx, specializationID)
	if err != nil {
		logDataAccessFailure(err, "list specialization offerings", "featured")
		return nil
	}
	if len(ids) == 0 {
		return nil
	}

	candidates, err := s.repo.ListBusinesses(ctx, models.BusinessFilter{IDs: ids})
	if err != nil {
		logDataAccessFailure(err, "list featured candidates", "specialization")
		return nil
	}
	return PickFeatured(candidates, s.intn)
}

// PickFeatured applies the featured policy to candidates in store order:
//
//  1. the first business flagged featured
//  2. a uniformly random business rated at least FeaturedMinRating with at
//     least FeaturedMinReviews reviews
//  3. the best rated business at or above FallbackMinRating, ties going to
//     more reviews and then to the earlier candidate
//
// It returns nil when no candidate qualifies.
func PickFeatured(candidates []models.Business, intn func(n int) int) *models.Business {
	for i := range candidates {
		if candidates[i].Featured {
			b := candidates[i]
			return &b
		}
	}

	var pool []models.Business
	for _, b := range candidates {
		if b.Rating != nil && *b.Rating >= FeaturedMinRating && b.ReviewCountValue() >= FeaturedMinReviews {
			pool = append(pool, b)
		}
	}
	if len(pool) > 0 {
		if intn == nil {
			intn = rand.IntN
		}
		b := pool[intn(len(pool))]
		return &b
	}

	var best *models.Business
	for i := range candidates {
		c := candidates[i]
		if c.Rating == nil || *c.Rating < FallbackMinRating {
			continue
		}
		if best == nil ||
			*c.Rating > *best.Rating ||
			(*c.Rating == *best.Rating && c.ReviewCountValue() > best.ReviewCountValue()) {
			best = &c
		}
	}
	return best
}
