package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"groomer-directory/internal/models"
)

// SortOrder is the ordering applied to a listing.
type SortOrder string

const (
	SortRating  SortOrder = "rating"
	SortReviews SortOrder = "reviews"
	SortName    SortOrder = "name"
)

// Valid reports whether o is one of the supported orders.
func (o SortOrder) Valid() bool {
	switch o {
	case SortRating, SortReviews, SortName:
		return true
	}
	return false
}

// ParseSortOrder parses a sort query value. An empty value means SortRating.
func ParseSortOrder(value string) (SortOrder, error) {
	if value == "" {
		return SortRating, nil
	}
	o := SortOrder(strings.ToLower(strings.TrimSpace(value)))
	if !o.Valid() {
		return "", fmt.Errorf("service: %w: %q", ErrInvalidSort, value)
	}
	return o, nil
}

// ListingQuery selects and orders the businesses of a listing page.
type ListingQuery struct {
	LocationID       *int
	SpecializationID *int
	Search           string
	Sort             SortOrder
	ExcludeID        *int
}

// ListingRepository is the data access the listing engine needs.
type ListingRepository interface {
	ListBusinesses(ctx context.Context, filter models.BusinessFilter) ([]models.Business, error)
	BusinessIDsBySpecialization(ctx context.Context, specializationID int) ([]int, error)
}

// ListingService filters and sorts directory listings.
type ListingService struct {
	repo ListingRepository
}

// NewListingService creates a new listing service
func NewListingService(repo ListingRepository) *ListingService {
	return &ListingService{repo: repo}
}

// ListBusinesses returns the businesses matching q in the requested order.
// Store failures are logged and produce an empty listing; only an invalid
// sort order is reported as an error.
func (s *ListingService) ListBusinesses(ctx context.Context, q ListingQuery) ([]models.Business, error) {
	if !q.Sort.Valid() {
		return nil, fmt.Errorf("service: %w: %q", ErrInvalidSort, q.Sort)
	}

	all, err := s.repo.ListBusinesses(ctx, models.BusinessFilter{LocationID: q.LocationID})
	if err != nil {
		logDataAccessFailure(err, "list businesses", "listing")
		return []models.Business{}, nil
	}

	result := ApplyListing(all, q)

	if q.SpecializationID != nil {
		ids, err := s.repo.BusinessIDsBySpecialization(ctx, *q.SpecializationID)
		if err != nil {
			logDataAccessFailure(err, "list specialization offerings", "listing")
			return []models.Business{}, nil
		}
		result = RetainIDs(result, ids)
	}

	return result, nil
}

// ApplyListing excludes, searches and sorts businesses. The input order is
// kept among equal sort keys.
func ApplyListing(businesses []models.Business, q ListingQuery) []models.Business {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	result := make([]models.Business, 0, len(businesses))
	for _, b := range businesses {
		if q.ExcludeID != nil && b.ID == *q.ExcludeID {
			continue
		}
		if search != "" && !matchesSearch(b, search) {
			continue
		}
		result = append(result, b)
	}

	order := q.Sort
	if !order.Valid() {
		order = SortRating
	}
	slices.SortStableFunc(result, compareBy(order))

	return result
}

// RetainIDs keeps the businesses whose id is in ids, preserving order.
func RetainIDs(businesses []models.Business, ids []int) []models.Business {
	allowed := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		allowed[id] = struct{}{}
	}

	result := make([]models.Business, 0, len(businesses))
	for _, b := range businesses {
		if _, ok := allowed[b.ID]; ok {
			result = append(result, b)
		}
	}
	return result
}

func matchesSearch(b models.Business, lowered string) bool {
	if strings.Contains(strings.ToLower(b.Name), lowered) {
		return true
	}
	return b.Description != nil && strings.Contains(strings.ToLower(*b.Description), lowered)
}

// Rating and reviews break ties on each other, both descending. Absent
// ratings and review counts sort after every present value.
func compareBy(order SortOrder) func(a, b models.Business) int {
	switch order {
	case SortReviews:
		return func(a, b models.Business) int {
			if c := cmp.Compare(reviewKey(b), reviewKey(a)); c != 0 {
				return c
			}
			return cmp.Compare(ratingKey(b), ratingKey(a))
		}
	case SortName:
		return func(a, b models.Business) int {
			return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	default:
		return func(a, b models.Business) int {
			if c := cmp.Compare(ratingKey(b), ratingKey(a)); c != 0 {
				return c
			}
			return cmp.Compare(reviewKey(b), reviewKey(a))
		}
	}
}

func ratingKey(b models.Business) float64 {
	if b.Rating == nil {
		return -1
	}
	return *b.Rating
}

func reviewKey(b models.Business) int {
	if b.ReviewCount == nil {
		return -1
	}
	return *b.ReviewCount
}
