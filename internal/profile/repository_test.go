package profile

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

var profileCols = []string{
	"id", "full_name", "avatar_url", "phone_number", "address", "latitude", "longitude",
	"is_cook", "average_rating", "total_ratings", "has_location", "updated_at",
}

func TestRepository_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	id := uuid.New()

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(`FROM profiles WHERE id = \$1`).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(profileCols).
				AddRow(id.String(), "Asha", nil, "98765", "Civil Lines", 26.4, 80.3, true, 4.5, 10, true, time.Now()))

		p, err := repo.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Asha", *p.FullName)
		assert.Nil(t, p.AvatarURL)
		assert.Equal(t, 26.4, *p.Latitude)
		assert.True(t, p.IsCook)
		assert.True(t, p.HasKitchen)
		assert.Equal(t, 10, p.TotalRatings)
	})

	t.Run("Missing", func(t *testing.T) {
		mock.ExpectQuery(`FROM profiles`).WillReturnError(sql.ErrNoRows)
		_, err := repo.Get(ctx, id)
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	id := uuid.New()
	name := "Asha K"

	mock.ExpectExec(`UPDATE profiles SET full_name = COALESCE\(\$1, full_name\)`).
		WithArgs(&name, nil, nil, nil, nil, id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Update(ctx, id, UpdateInput{FullName: &name}))

	mock.ExpectExec(`UPDATE profiles`).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Update(ctx, id, UpdateInput{FullName: &name}), ErrProfileNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetKitchenLocation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := uuid.New()
	addr := "Civil Lines, Kanpur, Kanpur Nagar"
	mock.ExpectExec(`UPDATE profiles SET latitude = \$1, longitude = \$2, location = ST_GeogFromText\(\$3\), address = COALESCE\(\$4, address\)`).
		WithArgs(26.4677, 80.3463, "POINT(80.3463 26.4677)", &addr, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewRepository(db).SetKitchenLocation(context.Background(), id, 26.4677, 80.3463, &addr)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_HasKitchenLocation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	id := uuid.New()

	mock.ExpectQuery(`SELECT location IS NOT NULL FROM profiles WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"has"}).AddRow(false))
	ok, err := repo.HasKitchenLocation(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)

	mock.ExpectQuery(`SELECT location IS NOT NULL`).WillReturnError(sql.ErrNoRows)
	ok, err = repo.HasKitchenLocation(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}
