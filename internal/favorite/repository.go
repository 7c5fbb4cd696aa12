package favorite

import (
	"context"
	"database/sql"
	"errors"

	"foodpool-be/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Add(ctx context.Context, userID, listingID uuid.UUID) error
	Remove(ctx context.Context, userID, listingID uuid.UUID) (bool, error)
	Exists(ctx context.Context, userID, listingID uuid.UUID) (bool, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]Item, error)
	ListingIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Add(ctx context.Context, userID, listingID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO favorites (user_id, listing_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, listing_id) DO NOTHING
	`, userID, listingID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return ErrListingNotFound
		}
		logger.FromCtx(ctx).Error("add favorite failed",
			zap.String("layer", "repository"),
			zap.String("listing_id", listingID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// Remove reports whether a pair was deleted.
func (r *repository) Remove(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM favorites WHERE user_id = $1 AND listing_id = $2
	`, userID, listingID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *repository) Exists(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND listing_id = $2)
	`, userID, listingID).Scan(&ok)
	return ok, err
}

func (r *repository) ListForUser(ctx context.Context, userID uuid.UUID) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT f.listing_id, l.title, l.price, COALESCE(l.image_url, ''), p.full_name, f.created_at
		FROM favorites f
		JOIN listings l ON l.id = f.listing_id
		LEFT JOIN profiles p ON p.id = l.cook_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ListingID, &it.Title, &it.Price, &it.ImageURL, &it.CookName, &it.SavedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *repository) ListingIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT listing_id FROM favorites WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
