// Package repomanager provides a concrete RepositoryManager for the game
// cart database, wiring together repository constructors and schema
// migrations (via goose). SQLite is the default backend; a postgres:// DSN
// selects PostgreSQL through the pgx driver.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/gamecart/internal/dbx"
	"github.com/dmitrijs2005/gamecart/internal/server/migrations"
	"github.com/dmitrijs2005/gamecart/internal/server/repositories/games"
	"github.com/dmitrijs2005/gamecart/internal/server/repositories/users"
)

// SQLRepositoryManager vends SQL-backed repository implementations and
// exposes a schema migration hook for the dialect it was created with.
type SQLRepositoryManager struct {
	gooseDialect  string
	migrationsDir string
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLRepository(db)
}

// Games returns a games.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Games(db dbx.DBTX) games.Repository {
	return games.NewSQLRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(m.gooseDialect); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, m.migrationsDir); err != nil {
		return err
	}
	return nil
}

// NewSQLiteRepositoryManager constructs a SQLite-backed RepositoryManager.
func NewSQLiteRepositoryManager() RepositoryManager {
	return &SQLRepositoryManager{gooseDialect: "sqlite3", migrationsDir: "sqlite"}
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &SQLRepositoryManager{gooseDialect: "pgx", migrationsDir: "postgres"}
}

// IsPostgresDSN reports whether the DSN selects the PostgreSQL backend.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Open opens the database for the given DSN, runs migrations, and returns
// the manager together with the connection. Anything that is not a
// postgres:// DSN is treated as a SQLite file path (":memory:" works too).
func Open(ctx context.Context, dsn string) (RepositoryManager, *sql.DB, error) {

	driver := "sqlite"
	m := NewSQLiteRepositoryManager()
	if IsPostgresDSN(dsn) {
		driver = "pgx"
		m = NewPostgresRepositoryManager()
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("db open error: %w", err)
	}

	if driver == "sqlite" {
		// sqlite allows a single writer
		db.SetMaxOpenConns(1)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migration error: %w", err)
	}

	return m, db, nil
}
