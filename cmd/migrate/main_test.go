package main

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExtractMigrationPart(t *testing.T) {
	content := `
-- +migrate Up
CREATE TABLE favorites (id uuid);
ALTER TABLE favorites ADD COLUMN listing_id uuid;

-- +migrate Down
DROP TABLE favorites;
`
	t.Run("Extract Up", func(t *testing.T) {
		up := extractMigrationPart(content, "Up")
		assert.Contains(t, up, "CREATE TABLE favorites")
		assert.Contains(t, up, "ALTER TABLE favorites")
		assert.NotContains(t, up, "DROP TABLE favorites")
		assert.NotContains(t, up, "-- +migrate Up")
	})

	t.Run("Extract Down", func(t *testing.T) {
		down := extractMigrationPart(content, "Down")
		assert.Contains(t, down, "DROP TABLE favorites")
		assert.NotContains(t, down, "CREATE TABLE favorites")
	})
}

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"003_orders.sql", "001_auth.sql", "002_listings.sql", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("-- +migrate Up\n"), 0o644))
	}

	files, err := listMigrations(dir)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "001_auth.sql", filepath.Base(files[0]))
	assert.Equal(t, "003_orders.sql", filepath.Base(files[2]))
}

func TestRepositoryMigrations(t *testing.T) {
	files, err := listMigrations(filepath.Join("..", "..", "migrations"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	latest := map[string]string{}
	for _, f := range files {
		content, err := os.ReadFile(f)
		require.NoError(t, err)
		up := extractMigrationPart(string(content), "Up")
		assert.NotEmpty(t, strings.TrimSpace(up), f)
		assert.NotEmpty(t, strings.TrimSpace(extractMigrationPart(string(content), "Down")), f)
		assert.NotContains(t, up, "StatementBegin", f)

		if strings.Contains(up, "FUNCTION search_food(") {
			latest["search_food"] = up
		}
		if strings.Contains(up, "orders_listing_id_fkey") || strings.Contains(up, "listing_id UUID NOT NULL REFERENCES") {
			latest["listing_fk"] = up
		}
	}

	t.Run("Deleting a listing never removes orders", func(t *testing.T) {
		assert.Contains(t, latest["listing_fk"], "ON DELETE RESTRICT")
		assert.Contains(t, latest["listing_fk"], "AFTER DELETE ON orders")
	})

	t.Run("Search query is matched literally", func(t *testing.T) {
		assert.NotContains(t, latest["search_food"], "ILIKE")
		assert.Contains(t, latest["search_food"], "strpos(lower(l.title), lower(search_query))")
	})
}

func writeMigration(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunMigrationsUp(t *testing.T) {
	t.Run("Applies pending in a transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		file := writeMigration(t, "001_init.sql", "-- +migrate Up\nCREATE TABLE test (id int);\n-- +migrate Down\nDROP TABLE test;")

		mock.ExpectQuery("SELECT EXISTS.*schema_migrations").
			WithArgs("001_init.sql").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectBegin()
		mock.ExpectExec("CREATE TABLE test").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO schema_migrations").
			WithArgs("001_init.sql").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		require.NoError(t, runMigrationsUp(db, []string{file}, zap.NewNop()))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Skips applied", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		file := writeMigration(t, "001_init.sql", "-- +migrate Up\nCREATE TABLE test (id int);")
		mock.ExpectQuery("SELECT EXISTS.*schema_migrations").
			WithArgs("001_init.sql").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		require.NoError(t, runMigrationsUp(db, []string{file}, zap.NewNop()))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failed statement rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		file := writeMigration(t, "002_bad.sql", "-- +migrate Up\nCREATE TABLE broken (;")
		mock.ExpectQuery("SELECT EXISTS.*schema_migrations").
			WithArgs("002_bad.sql").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectBegin()
		mock.ExpectExec("CREATE TABLE broken").WillReturnError(errors.New("syntax error"))
		mock.ExpectRollback()

		err = runMigrationsUp(db, []string{file}, zap.NewNop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "002_bad.sql")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRunMigrationsDown(t *testing.T) {
	t.Run("Rolls back the latest", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		file := writeMigration(t, "001_init.sql", "-- +migrate Up\nCREATE TABLE test (id int);\n-- +migrate Down\nDROP TABLE test;")

		mock.ExpectQuery("SELECT version FROM schema_migrations").
			WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("001_init.sql"))
		mock.ExpectBegin()
		mock.ExpectExec("DROP TABLE test").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM schema_migrations").
			WithArgs("001_init.sql").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, runMigrationsDown(db, []string{file}, zap.NewNop()))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Nothing applied", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT version FROM schema_migrations").WillReturnError(sql.ErrNoRows)

		require.NoError(t, runMigrationsDown(db, nil, zap.NewNop()))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRunUnknownMode(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))

	err = run(db, "sideways", t.TempDir(), zap.NewNop())
	assert.ErrorContains(t, err, "unknown mode")
}
