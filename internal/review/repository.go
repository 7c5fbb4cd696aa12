package review

import (
	"context"
	"database/sql"
	"strings"

	"foodpool-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	Rate(ctx context.Context, orderID, customerID uuid.UUID, rating int, text string) error
	ListForCook(ctx context.Context, cookID uuid.UUID) ([]Review, error)
	Summary(ctx context.Context, cookID uuid.UUID) (*Summary, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Rate writes rating and review only while the order is completed and unrated.
// When nothing is written the order is re-read to report why.
func (r *repository) Rate(ctx context.Context, orderID, customerID uuid.UUID, rating int, text string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Rate"),
		zap.String("order_id", orderID.String()),
	)

	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET rating = $1, review = $2, updated_at = NOW()
		WHERE id = $3 AND customer_id = $4 AND status = 'completed' AND rating IS NULL
	`, rating, text, orderID, customerID)
	if err != nil {
		log.Error("rate order failed", zap.Error(err))
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	var (
		owner  uuid.UUID
		status string
		rated  sql.NullInt64
	)
	err = r.db.QueryRowContext(ctx, `
		SELECT customer_id, status, rating FROM orders WHERE id = $1
	`, orderID).Scan(&owner, &status, &rated)
	if err == sql.ErrNoRows {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}
	switch {
	case owner != customerID:
		return ErrOrderNotFound
	case rated.Valid:
		return ErrAlreadyRated
	default:
		return ErrNotCompleted
	}
}

func (r *repository) ListForCook(ctx context.Context, cookID uuid.UUID) ([]Review, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, rating, review, created_at
		FROM orders
		WHERE cook_id = $1 AND rating IS NOT NULL AND review IS NOT NULL
		ORDER BY created_at DESC
	`, cookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Review
	for rows.Next() {
		var rv Review
		if err := rows.Scan(&rv.OrderID, &rv.Rating, &rv.Text, &rv.CreatedAt); err != nil {
			return nil, err
		}
		if strings.TrimSpace(rv.Text) == "" {
			continue
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *repository) Summary(ctx context.Context, cookID uuid.UUID) (*Summary, error) {
	var s Summary
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(average_rating, 0), COALESCE(total_ratings, 0)
		FROM profiles
		WHERE id = $1
	`, cookID).Scan(&s.AverageRating, &s.TotalRatings)
	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
