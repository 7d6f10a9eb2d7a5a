package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gamecart/internal/common"
	"github.com/dmitrijs2005/gamecart/internal/dbx"
	"github.com/dmitrijs2005/gamecart/internal/server/models"
)

// SQLRepository implements Repository against any database/sql backend.
// The queries use $1-style placeholders, which both the pgx and the
// modernc sqlite drivers accept.
type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (username, salt, password_hash)
         VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Username, user.Salt, user.PasswordHash).Scan(&user.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *SQLRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query :=
		`SELECT id, username, salt, password_hash FROM users
		 WHERE username = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(&user.ID, &user.Username, &user.Salt, &user.PasswordHash)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// UpdateCredentials replaces the user's salt and password hash in one
// statement, so the old credential is never observable half-replaced.
func (r *SQLRepository) UpdateCredentials(ctx context.Context, username string, salt, passwordHash []byte) error {
	query :=
		`UPDATE users SET salt = $1, password_hash = $2
		 WHERE username = $3
		 `

	res, err := r.db.ExecContext(ctx, query, salt, passwordHash, username)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}

	return nil
}
