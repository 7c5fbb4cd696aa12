package listing

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var listingCols = []string{"id", "cook_id", "title", "description", "price", "category", "image_url", "is_active", "created_at"}

func TestRepository_Search(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		id, cook := uuid.New(), uuid.New()
		rows := sqlmock.NewRows([]string{"id", "cook_id", "title", "description", "price", "category", "image_url", "dist_meters", "chef_name", "chef_avatar"}).
			AddRow(id.String(), cook.String(), "Rajma", nil, 120.0, "Veg", "https://img/x.jpg", 850.5, "Sita", nil)

		mock.ExpectQuery(`FROM search_food\(\$1, \$2, \$3, \$4\)`).
			WithArgs(26.4, 80.3, -1.0, "rajma").
			WillReturnRows(rows)

		got, err := repo.Search(ctx, SearchParams{Latitude: 26.4, Longitude: 80.3, RadiusMeters: -1, Query: "rajma"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, id, got[0].ID)
		assert.Equal(t, "", got[0].Description)
		assert.Equal(t, 850.5, got[0].DistMeters)
		assert.Equal(t, "Sita", *got[0].ChefName)
		assert.Nil(t, got[0].ChefAvatar)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`FROM search_food`).WillReturnError(errors.New("procedure failed"))

		_, err := repo.Search(ctx, SearchParams{})
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	id, cook := uuid.New(), uuid.New()

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(`FROM listings l LEFT JOIN profiles p ON p.id = l.cook_id WHERE l.id = \$1`).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(append(listingCols, "full_name", "avatar_url")).
				AddRow(id.String(), cook.String(), "Rajma", "desc", 120.0, "Veg", "https://img", true, time.Now(), "Sita", nil))

		l, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, cook, l.CookID)
		assert.Equal(t, CategoryVeg, l.Category)
		assert.True(t, l.IsActive)
		assert.Equal(t, "Sita", *l.CookName)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`FROM listings l`).WithArgs(id).WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(ctx, id)
		assert.ErrorIs(t, err, ErrListingNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByCook(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cook := uuid.New()
	mock.ExpectQuery(`FROM listings l WHERE l.cook_id = \$1 ORDER BY l.created_at DESC`).
		WithArgs(cook).
		WillReturnRows(sqlmock.NewRows(listingCols).
			AddRow(uuid.NewString(), cook.String(), "A", "", 10.0, "Veg", "", true, time.Now()).
			AddRow(uuid.NewString(), cook.String(), "B", "", 20.0, "Sweets", "", false, time.Now()))

	got, err := NewRepository(db).ListByCook(context.Background(), cook)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.False(t, got[1].IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id, cook := uuid.New(), uuid.New()
	l := &Listing{CookID: cook, Title: "Kheer", Description: "d", Price: 80, Category: CategorySweets, ImageURL: "https://i", IsActive: true}

	mock.ExpectQuery(`INSERT INTO listings \(cook_id, title, description, price, category, image_url, is_active\)`).
		WithArgs(cook, "Kheer", "d", 80.0, "Sweets", "https://i", true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(id.String(), time.Now()))

	require.NoError(t, NewRepository(db).Create(context.Background(), l))
	assert.Equal(t, id, l.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	id, cook := uuid.New(), uuid.New()

	t.Run("Partial", func(t *testing.T) {
		price := 99.0
		active := false
		mock.ExpectQuery(`UPDATE listings l SET price = \$1, is_active = \$2 WHERE l.id = \$3 AND l.cook_id = \$4 RETURNING`).
			WithArgs(price, active, id, cook).
			WillReturnRows(sqlmock.NewRows(listingCols).
				AddRow(id.String(), cook.String(), "A", "", price, "Veg", "", false, time.Now()))

		l, err := repo.Update(ctx, id, cook, UpdateInput{Price: &price, IsActive: &active})
		require.NoError(t, err)
		assert.Equal(t, 99.0, l.Price)
		assert.False(t, l.IsActive)
	})

	t.Run("NoRows", func(t *testing.T) {
		title := "x"
		mock.ExpectQuery(`UPDATE listings l SET title = \$1`).
			WithArgs(title, id, cook).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Update(ctx, id, cook, UpdateInput{Title: &title})
		assert.ErrorIs(t, err, ErrListingNotFound)
	})

	t.Run("Nothing", func(t *testing.T) {
		_, err := repo.Update(ctx, id, cook, UpdateInput{})
		assert.ErrorIs(t, err, ErrNothingToUpdate)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	id, cook := uuid.New(), uuid.New()

	mock.ExpectExec(`DELETE FROM listings WHERE id = \$1 AND cook_id = \$2`).
		WithArgs(id, cook).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Delete(context.Background(), id, cook))

	mock.ExpectExec(`DELETE FROM listings`).
		WithArgs(id, cook).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), id, cook), ErrListingNotFound)

	mock.ExpectExec(`DELETE FROM listings`).
		WithArgs(id, cook).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "orders_listing_id_fkey"})
	assert.ErrorIs(t, repo.Delete(context.Background(), id, cook), ErrHasOrders)

	assert.NoError(t, mock.ExpectationsWereMet())
}
