package games

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

func (r *SQLRepository) Create(ctx context.Context, game *models.Game) error {

	query :=
		`INSERT INTO games (id, name, price)
		 VALUES ($1, $2, $3)
		 `

	_, err := r.db.ExecContext(ctx, query, game.ID, game.Name, game.Price)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *SQLRepository) GetByID(ctx context.Context, id int64) (*models.Game, error) {
	query :=
		`SELECT id, name, price FROM games
		 WHERE id = $1
		 `

	game := &models.Game{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&game.ID, &game.Name, &game.Price)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return game, nil
}

func (r *SQLRepository) DeleteByID(ctx context.Context, id int64) error {
	query :=
		`DELETE FROM games
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id)
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

func (r *SQLRepository) List(ctx context.Context) ([]models.Game, error) {
	query :=
		`SELECT id, name, price FROM games
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Game{}
	for rows.Next() {
		var game models.Game
		if err := rows.Scan(&game.ID, &game.Name, &game.Price); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, game)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// TotalPrice pushes the aggregation into the backend; an empty cart sums to 0.
func (r *SQLRepository) TotalPrice(ctx context.Context) (float64, error) {
	query :=
		`SELECT COALESCE(SUM(price), 0) FROM games
		 `

	var total float64
	if err := r.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return total, nil
}
