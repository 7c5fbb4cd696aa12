package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"foodpool-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	Get(ctx context.Context, id uuid.UUID) (*Profile, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateInput) error
	SetKitchenLocation(ctx context.Context, id uuid.UUID, lat, lng float64, address *string) error
	HasKitchenLocation(ctx context.Context, id uuid.UUID) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*Profile, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetProfile"),
	)

	var p Profile
	err := r.db.QueryRowContext(ctx, `
		SELECT id, full_name, avatar_url, phone_number, address, latitude, longitude,
			is_cook, COALESCE(average_rating, 0), COALESCE(total_ratings, 0),
			location IS NOT NULL, updated_at
		FROM profiles
		WHERE id = $1
	`, id).Scan(
		&p.ID, &p.FullName, &p.AvatarURL, &p.PhoneNumber, &p.Address, &p.Latitude, &p.Longitude,
		&p.IsCook, &p.AverageRating, &p.TotalRatings, &p.HasKitchen, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Info("profile not found")
			return nil, ErrProfileNotFound
		}
		log.Error("failed to scan profile", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, in UpdateInput) error {
	// COALESCE keeps stored values for nil inputs
	res, err := r.db.ExecContext(ctx, `
		UPDATE profiles SET
			full_name = COALESCE($1, full_name),
			phone_number = COALESCE($2, phone_number),
			address = COALESCE($3, address),
			latitude = COALESCE($4, latitude),
			longitude = COALESCE($5, longitude),
			updated_at = NOW()
		WHERE id = $6
	`, in.FullName, in.PhoneNumber, in.Address, in.Latitude, in.Longitude, id)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to update profile", zap.String("layer", "repository"), zap.Error(err))
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// SetKitchenLocation stores the kitchen point as WKT POINT(lng lat).
func (r *repository) SetKitchenLocation(ctx context.Context, id uuid.UUID, lat, lng float64, address *string) error {
	point := fmt.Sprintf("POINT(%s %s)", strconv.FormatFloat(lng, 'f', -1, 64), strconv.FormatFloat(lat, 'f', -1, 64))
	res, err := r.db.ExecContext(ctx, `
		UPDATE profiles SET
			latitude = $1,
			longitude = $2,
			location = ST_GeogFromText($3),
			address = COALESCE($4, address),
			updated_at = NOW()
		WHERE id = $5
	`, lat, lng, point, address, id)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to save kitchen location", zap.String("layer", "repository"), zap.Error(err))
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *repository) HasKitchenLocation(ctx context.Context, id uuid.UUID) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `
		SELECT location IS NOT NULL FROM profiles WHERE id = $1
	`, id).Scan(&ok)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return ok, err
}
