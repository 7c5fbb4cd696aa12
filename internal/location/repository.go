package location

import (
	"context"
	"database/sql"

	"foodpool-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	Get(ctx context.Context, userID uuid.UUID) (*Preference, error)
	SaveCoordinates(ctx context.Context, p *Preference, defaultDistance Distance) error
	SaveDistance(ctx context.Context, userID uuid.UUID, d Distance) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Get(ctx context.Context, userID uuid.UUID) (*Preference, error) {
	p := Preference{UserID: userID}
	var address sql.NullString
	err := r.db.QueryRowContext(ctx, `
		SELECT latitude, longitude, address, distance_km, updated_at
		FROM location_preferences
		WHERE user_id = $1
	`, userID).Scan(&p.Latitude, &p.Longitude, &address, &p.Distance, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load location preference",
			zap.String("layer", "repository"),
			zap.String("method", "Get"),
			zap.Error(err),
		)
		return nil, err
	}
	p.Address = address.String
	return &p, nil
}

// SaveCoordinates upserts the coordinate and label, keeping any stored
// distance. New rows start with defaultDistance.
func (r *repository) SaveCoordinates(ctx context.Context, p *Preference, defaultDistance Distance) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO location_preferences (user_id, latitude, longitude, address, distance_km)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			address = EXCLUDED.address,
			updated_at = NOW()
		RETURNING distance_km, updated_at
	`, p.UserID, p.Latitude, p.Longitude, p.Address, defaultDistance).Scan(&p.Distance, &p.UpdatedAt)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to save location",
			zap.String("layer", "repository"),
			zap.String("method", "SaveCoordinates"),
			zap.Error(err),
		)
	}
	return err
}

func (r *repository) SaveDistance(ctx context.Context, userID uuid.UUID, d Distance) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO location_preferences (user_id, distance_km)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET distance_km = EXCLUDED.distance_km,
			updated_at = NOW()
	`, userID, d)
	return err
}
