package models

import "groomer-directory/internal/slug"

// Business is a groomer listed in the directory.
type Business struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Slug         *string  `json:"slug,omitempty"`
	Description  *string  `json:"description,omitempty"`
	LocationID   *int     `json:"location_id,omitempty"`
	LocationName string   `json:"location_name,omitempty"`
	ImageURL     *string  `json:"image_url,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`
	ReviewCount  *int     `json:"review_count,omitempty"`
	Phone        *string  `json:"phone,omitempty"`
	Email        *string  `json:"email,omitempty"`
	Website      *string  `json:"website,omitempty"`
	Address      *string  `json:"address,omitempty"`
	Featured     bool     `json:"featured"`

	Services     RawField `json:"-"`
	OpeningHours RawField `json:"-"`
}

// EffectiveSlug returns the stored slug, or the slug derived from Name when
// none was stored. The derived value is never written back.
func (b Business) EffectiveSlug() string {
	if b.Slug != nil && *b.Slug != "" {
		return *b.Slug
	}
	return slug.Normalize(b.Name)
}

// RatingValue returns the rating, treating an absent rating as zero.
func (b Business) RatingValue() float64 {
	if b.Rating == nil {
		return 0
	}
	return *b.Rating
}

// ReviewCountValue returns the review count, treating an absent count as zero.
func (b Business) ReviewCountValue() int {
	if b.ReviewCount == nil {
		return 0
	}
	return *b.ReviewCount
}

// BusinessFilter holds the equality predicates the store understands.
// Results are always ordered by id so callers see a stable input order.
type BusinessFilter struct {
	LocationID *int
	IDs        []int
	Limit      int
}
