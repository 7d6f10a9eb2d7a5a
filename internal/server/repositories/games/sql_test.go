package games

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/gamecart/internal/common"
	"github.com/dmitrijs2005/gamecart/internal/server/models"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:games_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS games (
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  price REAL NOT NULL CHECK (price >= 0)
);
DELETE FROM games;`)
	require.NoError(t, err)
	return db
}

func TestCreateListDelete(t *testing.T) {
	db := setupDB(t)
	r := NewSQLRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &models.Game{ID: 10, Name: "Chess", Price: 9.99}))

	games, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, models.Game{ID: 10, Name: "Chess", Price: 9.99}, games[0])

	require.NoError(t, r.DeleteByID(ctx, 10))

	games, err = r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, games)

	require.ErrorIs(t, r.DeleteByID(ctx, 10), common.ErrNotFound)
}

func TestGetByID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &models.Game{ID: 7, Name: "Go", Price: 1.50}))

	got, err := r.GetByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Go", got.Name)

	_, err = r.GetByID(ctx, 8)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestCreate_DuplicateID_ViolatesPrimaryKey(t *testing.T) {
	db := setupDB(t)
	r := NewSQLRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &models.Game{ID: 5, Name: "A", Price: 1}))
	require.Error(t, r.Create(ctx, &models.Game{ID: 5, Name: "B", Price: 2}),
		"primary key on id must reject a second row")
}

func TestTotalPrice(t *testing.T) {
	db := setupDB(t)
	r := NewSQLRepository(db)
	ctx := context.Background()

	total, err := r.TotalPrice(ctx)
	require.NoError(t, err)
	assert.Zero(t, total, "empty cart sums to 0")

	require.NoError(t, r.Create(ctx, &models.Game{ID: 1, Name: "A", Price: 9.99}))
	require.NoError(t, r.Create(ctx, &models.Game{ID: 2, Name: "B", Price: 0.01}))

	total, err = r.TotalPrice(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, total, 1e-9)
}

func TestList_DBError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()
	repo := NewSQLRepository(db)

	q := `(?s)^SELECT\s+id,\s*name,\s*price\s+FROM\s+games\s*$`
	mock.ExpectQuery(q).WillReturnError(errors.New("db down"))

	_, err = repo.List(context.Background())
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
