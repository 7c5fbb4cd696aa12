package location

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT latitude, longitude, address, distance_km, updated_at FROM location_preferences WHERE user_id = \$1`).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"latitude", "longitude", "address", "distance_km", "updated_at"}).
				AddRow(26.1, 80.2, "Kanpur", 10.0, time.Now()))

		p, err := repo.Get(ctx, userID)
		require.NoError(t, err)
		c, ok := p.Coordinates()
		assert.True(t, ok)
		assert.Equal(t, Coordinates{Latitude: 26.1, Longitude: 80.2}, c)
		assert.Equal(t, "Kanpur", p.Address)
		assert.Equal(t, Distance(10), p.Distance)
	})

	t.Run("DistanceOnly", func(t *testing.T) {
		mock.ExpectQuery(`FROM location_preferences`).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"latitude", "longitude", "address", "distance_km", "updated_at"}).
				AddRow(nil, nil, nil, -1.0, time.Now()))

		p, err := repo.Get(ctx, userID)
		require.NoError(t, err)
		_, ok := p.Coordinates()
		assert.False(t, ok)
		assert.True(t, p.Distance.IsAnywhere())
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`FROM location_preferences`).
			WithArgs(userID).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(ctx, userID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SaveCoordinates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	userID := uuid.New()
	lat, lng := 26.5, 80.3
	p := &Preference{UserID: userID, Latitude: &lat, Longitude: &lng, Address: "Current Location"}

	mock.ExpectQuery(`INSERT INTO location_preferences .* ON CONFLICT \(user_id\) DO UPDATE`).
		WithArgs(userID, lat, lng, "Current Location", 5.0).
		WillReturnRows(sqlmock.NewRows([]string{"distance_km", "updated_at"}).AddRow(1.0, time.Now()))

	require.NoError(t, repo.SaveCoordinates(context.Background(), p, 5))
	assert.Equal(t, Distance(1), p.Distance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SaveDistance(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	userID := uuid.New()

	mock.ExpectExec(`INSERT INTO location_preferences \(user_id, distance_km\)`).
		WithArgs(userID, -1.0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveDistance(context.Background(), userID, DistanceAnywhere))
	assert.NoError(t, mock.ExpectationsWereMet())
}
