package repository

import (
	"context"
	"fmt"

	"groomer-directory/internal/models"

	"github.com/jackc/pgx/v5"
)

// Offering links a business to a specialization it offers.
type Offering struct {
	BusinessID       int
	SpecializationID int
}

// EnsureLocation returns the id of the location called name, creating it
// when no location matches ignoring case.
func (r *Repository) EnsureLocation(ctx context.Context, name string) (int, error) {
	loc, err := r.FindLocationByName(ctx, name)
	if err != nil {
		return 0, err
	}
	if loc != nil {
		return loc.ID, nil
	}

	var id int
	if err := r.db.QueryRow(ctx, `INSERT INTO locations (name) VALUES ($1) RETURNING id`, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("repository: failed to create location: %w", err)
	}
	return id, nil
}

// BusinessSlugs returns every stored business slug.
func (r *Repository) BusinessSlugs(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT slug FROM businesses WHERE slug IS NOT NULL`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list slugs: %w", err)
	}

	slugs, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("repository: failed to scan slugs: %w", err)
	}
	return slugs, nil
}

// CopyBusinesses bulk inserts businesses. Every business must carry its
// slug; ids are assigned by the database.
func (r *Repository) CopyBusinesses(ctx context.Context, businesses []models.Business) (int64, error) {
	n, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"businesses"},
		[]string{
			"name", "slug", "description", "location_id", "image_url", "rating", "review_count",
			"phone", "email", "website", "address", "services", "opening_hours", "featured",
		},
		pgx.CopyFromSlice(len(businesses), func(i int) ([]any, error) {
			b := businesses[i]
			if b.Slug == nil || *b.Slug == "" {
				return nil, fmt.Errorf("business %q has no slug", b.Name)
			}
			return []any{
				b.Name, b.Slug, b.Description, b.LocationID, b.ImageURL, b.Rating, b.ReviewCount,
				b.Phone, b.Email, b.Website, b.Address, b.Services.TextValue(), b.OpeningHours.TextValue(), b.Featured,
			}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy businesses: %w", err)
	}
	return n, nil
}

// BusinessIDsBySlugs maps stored slugs to business ids.
func (r *Repository) BusinessIDsBySlugs(ctx context.Context, slugs []string) (map[string]int, error) {
	rows, err := r.db.Query(ctx, `SELECT slug, id FROM businesses WHERE slug = ANY($1::text[])`, slugs)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to look up slugs: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]int, len(slugs))
	for rows.Next() {
		var slug string
		var id int
		if err := rows.Scan(&slug, &id); err != nil {
			return nil, fmt.Errorf("repository: failed to scan slug: %w", err)
		}
		ids[slug] = id
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: failed to iterate slugs: %w", err)
	}
	return ids, nil
}

// LinkOfferings records offerings, ignoring pairs that already exist.
func (r *Repository) LinkOfferings(ctx context.Context, offerings []Offering) error {
	if len(offerings) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, o := range offerings {
		batch.Queue(`
			INSERT INTO business_service_offerings (business_id, specialization_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, o.BusinessID, o.SpecializationID)
	}

	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("repository: failed to link offerings: %w", err)
	}
	return nil
}

// SeedSpecializations inserts specs when the specializations table is
// empty and reports how many rows were added.
func (r *Repository) SeedSpecializations(ctx context.Context, specs []models.Specialization) (int64, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM specializations`).Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to count specializations: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	n, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"specializations"},
		[]string{"name", "description", "icon_type"},
		pgx.CopyFromSlice(len(specs), func(i int) ([]any, error) {
			return []any{specs[i].Name, specs[i].Description, specs[i].IconType}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to seed specializations: %w", err)
	}
	return n, nil
}
