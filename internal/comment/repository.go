package comment

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
	ListForListing(ctx context.Context, listingID uuid.UUID) ([]Comment, error)
	Create(ctx context.Context, c *Comment) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListForListing(ctx context.Context, listingID uuid.UUID) ([]Comment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.listing_id, c.user_id, c.content, c.created_at, p.full_name, p.avatar_url
		FROM comments c
		LEFT JOIN profiles p ON p.id = c.user_id
		WHERE c.listing_id = $1
		ORDER BY c.created_at ASC
	`, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Comment
	for rows.Next() {
		var c Comment
		if err := rows.Scan(
			&c.ID, &c.ListingID, &c.UserID, &c.Content, &c.CreatedAt, &c.AuthorName, &c.AuthorAvatar,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *repository) Create(ctx context.Context, c *Comment) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO comments (listing_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, c.ListingID, c.UserID, c.Content).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return ErrListingNotFound
		}
		logger.FromCtx(ctx).Error("insert comment failed",
			zap.String("layer", "repository"),
			zap.String("method", "Create"),
			zap.Error(err),
		)
		return err
	}
	return nil
}
