package listing

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"foodpool-be/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Search(ctx context.Context, p SearchParams) ([]SearchResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Listing, error)
	ListByCook(ctx context.Context, cookID uuid.UUID) ([]Listing, error)
	Create(ctx context.Context, l *Listing) error
	Update(ctx context.Context, id, cookID uuid.UUID, in UpdateInput) (*Listing, error)
	Delete(ctx context.Context, id, cookID uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const listingColumns = `l.id, l.cook_id, l.title, COALESCE(l.description, ''), l.price, l.category,
	COALESCE(l.image_url, ''), l.is_active, l.created_at`

func (r *repository) Search(ctx context.Context, p SearchParams) ([]SearchResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Search"),
		zap.Float64("radius_meters", p.RadiusMeters),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, cook_id, title, description, price, category, image_url,
			dist_meters, chef_name, chef_avatar
		FROM search_food($1, $2, $3, $4)
	`, p.Latitude, p.Longitude, p.RadiusMeters, p.Query)
	if err != nil {
		log.Error("search_food failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []SearchResult
	for rows.Next() {
		var (
			s    SearchResult
			desc sql.NullString
			img  sql.NullString
		)
		if err := rows.Scan(
			&s.ID, &s.CookID, &s.Title, &desc, &s.Price, &s.Category, &img,
			&s.DistMeters, &s.ChefName, &s.ChefAvatar,
		); err != nil {
			return nil, err
		}
		s.Description = desc.String
		s.ImageURL = img.String
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Debug("search_food completed", zap.Int("count", len(out)))
	return out, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Listing, error) {
	var l Listing
	err := r.db.QueryRowContext(ctx, `
		SELECT `+listingColumns+`, p.full_name, p.avatar_url
		FROM listings l
		LEFT JOIN profiles p ON p.id = l.cook_id
		WHERE l.id = $1
	`, id).Scan(
		&l.ID, &l.CookID, &l.Title, &l.Description, &l.Price, &l.Category,
		&l.ImageURL, &l.IsActive, &l.CreatedAt, &l.CookName, &l.CookAvatar,
	)
	if err == sql.ErrNoRows {
		return nil, ErrListingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) ListByCook(ctx context.Context, cookID uuid.UUID) ([]Listing, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+listingColumns+`
		FROM listings l
		WHERE l.cook_id = $1
		ORDER BY l.created_at DESC
	`, cookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Listing
	for rows.Next() {
		var l Listing
		if err := rows.Scan(
			&l.ID, &l.CookID, &l.Title, &l.Description, &l.Price, &l.Category,
			&l.ImageURL, &l.IsActive, &l.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *repository) Create(ctx context.Context, l *Listing) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO listings (cook_id, title, description, price, category, image_url, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, l.CookID, l.Title, l.Description, l.Price, l.Category, l.ImageURL, l.IsActive).
		Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to insert listing",
			zap.String("layer", "repository"),
			zap.String("method", "Create"),
			zap.Error(err),
		)
	}
	return err
}

// Update writes only the non-nil fields of in. The cook_id predicate keeps
// other cooks' rows out of reach.
func (r *repository) Update(ctx context.Context, id, cookID uuid.UUID, in UpdateInput) (*Listing, error) {
	var (
		sets []string
		args []interface{}
	)
	add := func(col string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if in.Title != nil {
		add("title", *in.Title)
	}
	if in.Description != nil {
		add("description", *in.Description)
	}
	if in.Price != nil {
		add("price", *in.Price)
	}
	if in.Category != nil {
		add("category", *in.Category)
	}
	if in.ImageURL != nil {
		add("image_url", *in.ImageURL)
	}
	if in.IsActive != nil {
		add("is_active", *in.IsActive)
	}
	if len(sets) == 0 {
		return nil, ErrNothingToUpdate
	}

	args = append(args, id, cookID)
	query := fmt.Sprintf(`
		UPDATE listings l
		SET %s
		WHERE l.id = $%d AND l.cook_id = $%d
		RETURNING `+listingColumns,
		strings.Join(sets, ", "), len(args)-1, len(args),
	)

	var l Listing
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&l.ID, &l.CookID, &l.Title, &l.Description, &l.Price, &l.Category,
		&l.ImageURL, &l.IsActive, &l.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrListingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Delete removes a listing nobody has ordered yet. Orders keep their listing
// (foreign key RESTRICT), so a listing with order history can only be turned off.
func (r *repository) Delete(ctx context.Context, id, cookID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM listings WHERE id = $1 AND cook_id = $2`, id, cookID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return ErrHasOrders
		}
		logger.FromCtx(ctx).Error("failed to delete listing",
			zap.String("layer", "repository"),
			zap.String("listing_id", id.String()),
			zap.Error(err),
		)
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrListingNotFound
	}
	return nil
}
