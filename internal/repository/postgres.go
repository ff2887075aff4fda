package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"groomer-directory/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// executor is the part of pgx shared by a pool and a transaction.
type executor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// Repository implements the directory data access on PostgreSQL.
// Lookups that find nothing return a nil record and a nil error.
type Repository struct {
	db executor
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// WithTx runs fn against a repository bound to one transaction. The
// transaction commits when fn returns nil and rolls back otherwise. Called
// on a transactional repository it nests through a savepoint.
func (r *Repository) WithTx(ctx context.Context, fn func(tx *Repository) error) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		return fn(&Repository{db: tx})
	})
	if err != nil {
		return fmt.Errorf("repository: transaction failed: %w", err)
	}
	return nil
}

const businessColumns = `
	b.id,
	b.name,
	b.slug,
	b.description,
	b.location_id,
	COALESCE(l.name, ''),
	b.image_url,
	b.rating::float8,
	b.review_count,
	b.phone,
	b.email,
	b.website,
	b.address,
	b.services,
	b.opening_hours,
	b.featured`

const businessFrom = `
	FROM businesses b
	LEFT JOIN locations l ON l.id = b.location_id`

func scanBusiness(row pgx.Row) (models.Business, error) {
	var b models.Business
	var services, hours *string
	err := row.Scan(
		&b.ID,
		&b.Name,
		&b.Slug,
		&b.Description,
		&b.LocationID,
		&b.LocationName,
		&b.ImageURL,
		&b.Rating,
		&b.ReviewCount,
		&b.Phone,
		&b.Email,
		&b.Website,
		&b.Address,
		&services,
		&hours,
		&b.Featured,
	)
	if err != nil {
		return models.Business{}, err
	}
	b.Services = models.RawFromText(services)
	b.OpeningHours = models.RawFromText(hours)
	return b, nil
}

// --------------------------------------------------
// Locations
// --------------------------------------------------

// FindLocationByName returns the location whose name equals name, ignoring case.
func (r *Repository) FindLocationByName(ctx context.Context, name string) (*models.Location, error) {
	sql := `
		SELECT id, name
		FROM locations
		WHERE LOWER(name) = LOWER($1)
		ORDER BY id
		LIMIT 1
	`

	var loc models.Location
	err := r.db.QueryRow(ctx, sql, name).Scan(&loc.ID, &loc.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to find location by name: %w", err)
	}

	return &loc, nil
}

// FindLocationByID returns the location with the given id.
func (r *Repository) FindLocationByID(ctx context.Context, id int) (*models.Location, error) {
	var loc models.Location
	err := r.db.QueryRow(ctx, `SELECT id, name FROM locations WHERE id = $1`, id).Scan(&loc.ID, &loc.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to find location by id: %w", err)
	}

	return &loc, nil
}

// FindLocationsByNameContaining returns locations whose name contains
// fragment, ignoring case, in id order.
func (r *Repository) FindLocationsByNameContaining(ctx context.Context, fragment string) ([]models.Location, error) {
	sql := `
		SELECT id, name
		FROM locations
		WHERE POSITION(LOWER($1) IN LOWER(name)) > 0
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, sql, fragment)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to search locations: %w", err)
	}
	defer rows.Close()

	locations := []models.Location{}
	for rows.Next() {
		var loc models.Location
		if err := rows.Scan(&loc.ID, &loc.Name); err != nil {
			return nil, fmt.Errorf("repository: failed to scan location: %w", err)
		}
		locations = append(locations, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return locations, nil
}

// ListLocations returns every location ordered by name, with its business count.
func (r *Repository) ListLocations(ctx context.Context) ([]models.Location, error) {
	sql := `
		SELECT l.id, l.name, COUNT(b.id)
		FROM locations l
		LEFT JOIN businesses b ON b.location_id = l.id
		GROUP BY l.id, l.name
		ORDER BY l.name
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list locations: %w", err)
	}
	defer rows.Close()

	locations := []models.Location{}
	for rows.Next() {
		var loc models.Location
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.BusinessCount); err != nil {
			return nil, fmt.Errorf("repository: failed to scan location: %w", err)
		}
		locations = append(locations, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return locations, nil
}

// --------------------------------------------------
// Specializations
// --------------------------------------------------

const specializationColumns = `id, name, description, icon_type`

func scanSpecializations(rows pgx.Rows) ([]models.Specialization, error) {
	defer rows.Close()

	specs := []models.Specialization{}
	for rows.Next() {
		var s models.Specialization
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.IconType); err != nil {
			return nil, fmt.Errorf("repository: failed to scan specialization: %w", err)
		}
		specs = append(specs, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return specs, nil
}

func (r *Repository) findSpecialization(ctx context.Context, where string, arg any) (*models.Specialization, error) {
	sql := `SELECT ` + specializationColumns + ` FROM specializations WHERE ` + where + ` ORDER BY id LIMIT 1`

	var s models.Specialization
	err := r.db.QueryRow(ctx, sql, arg).Scan(&s.ID, &s.Name, &s.Description, &s.IconType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to find specialization: %w", err)
	}

	return &s, nil
}

// FindSpecializationByName returns the specialization whose name equals name, ignoring case.
func (r *Repository) FindSpecializationByName(ctx context.Context, name string) (*models.Specialization, error) {
	return r.findSpecialization(ctx, `LOWER(name) = LOWER($1)`, name)
}

// FindSpecializationByID returns the specialization with the given id.
func (r *Repository) FindSpecializationByID(ctx context.Context, id int) (*models.Specialization, error) {
	return r.findSpecialization(ctx, `id = $1`, id)
}

// FindSpecializationsByNameContaining returns specializations whose name
// contains fragment, ignoring case, in id order.
func (r *Repository) FindSpecializationsByNameContaining(ctx context.Context, fragment string) ([]models.Specialization, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+specializationColumns+` FROM specializations WHERE POSITION(LOWER($1) IN LOWER(name)) > 0 ORDER BY id`,
		fragment)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to search specializations: %w", err)
	}
	return scanSpecializations(rows)
}

// ListSpecializations returns every specialization ordered by name.
func (r *Repository) ListSpecializations(ctx context.Context) ([]models.Specialization, error) {
	rows, err := r.db.Query(ctx, `SELECT `+specializationColumns+` FROM specializations ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list specializations: %w", err)
	}
	return scanSpecializations(rows)
}

// --------------------------------------------------
// Businesses
// --------------------------------------------------

// FindBusinessBySlug returns the business whose stored slug equals slug exactly.
func (r *Repository) FindBusinessBySlug(ctx context.Context, slug string) (*models.Business, error) {
	sql := `SELECT ` + businessColumns + businessFrom + ` WHERE b.slug = $1 LIMIT 1`

	b, err := scanBusiness(r.db.QueryRow(ctx, sql, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to find business by slug: %w", err)
	}

	return &b, nil
}

// derivedSlug is the SQL form of slug.Normalize, used for rows whose slug
// was never stored.
const derivedSlug = `btrim(regexp_replace(replace(lower(b.name), '&', 'and'), '[^a-z0-9]+', '-', 'g'), '-')`

// FindBusinessByDerivedSlug returns the lowest-id business without a stored
// slug whose name normalizes to slug.
func (r *Repository) FindBusinessByDerivedSlug(ctx context.Context, slug string) (*models.Business, error) {
	sql := `SELECT ` + businessColumns + businessFrom +
		` WHERE b.slug IS NULL AND ` + derivedSlug + ` = $1 ORDER BY b.id LIMIT 1`

	b, err := scanBusiness(r.db.QueryRow(ctx, sql, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to find business by derived slug: %w", err)
	}

	return &b, nil
}

// ListBusinesses returns the businesses matching filter in id order.
func (r *Repository) ListBusinesses(ctx context.Context, filter models.BusinessFilter) ([]models.Business, error) {
	var (
		conditions []string
		args       []any
	)

	if filter.LocationID != nil {
		args = append(args, *filter.LocationID)
		conditions = append(conditions, fmt.Sprintf("b.location_id = $%d", len(args)))
	}
	if filter.IDs != nil {
		args = append(args, filter.IDs)
		conditions = append(conditions, fmt.Sprintf("b.id = ANY($%d::bigint[])", len(args)))
	}

	sql := `SELECT ` + businessColumns + businessFrom
	if len(conditions) > 0 {
		sql += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	sql += ` ORDER BY b.id`
	if filter.Limit > 0 {
		sql += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list businesses: %w", err)
	}
	defer rows.Close()

	businesses := []models.Business{}
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan business: %w", err)
		}
		businesses = append(businesses, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return businesses, nil
}

// BusinessIDsBySpecialization returns the ids of businesses offering the specialization.
func (r *Repository) BusinessIDsBySpecialization(ctx context.Context, specializationID int) ([]int, error) {
	rows, err := r.db.Query(ctx,
		`SELECT business_id FROM business_service_offerings WHERE specialization_id = $1 ORDER BY business_id`,
		specializationID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list specialization offerings: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, fmt.Errorf("repository: failed to scan specialization offerings: %w", err)
	}

	return ids, nil
}

// --------------------------------------------------
// Contact messages
// --------------------------------------------------

// CreateContactMessage stores msg and fills in its id and creation time.
func (r *Repository) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	sql := `
		INSERT INTO contact_messages (name, email, message)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	if err := r.db.QueryRow(ctx, sql, msg.Name, msg.Email, msg.Message).Scan(&msg.ID, &msg.CreatedAt); err != nil {
		return fmt.Errorf("repository: failed to store contact message: %w", err)
	}

	return nil
}
