package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/gamecart/internal/common"
	"github.com/dmitrijs2005/gamecart/internal/dbx"
	"github.com/dmitrijs2005/gamecart/internal/server/catalog"
	"github.com/dmitrijs2005/gamecart/internal/server/models"
	"github.com/dmitrijs2005/gamecart/internal/server/repositories/repomanager"
)

// CartService manages the persisted game cart. Game metadata and pricing
// come from the catalog client; the price stored at insertion time is never
// re-synced.
type CartService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	catalog     catalog.Client
}

func NewCartService(db *sql.DB, m repomanager.RepositoryManager, c catalog.Client) *CartService {
	return &CartService{db: db, repomanager: m, catalog: c}
}

// Search passes the keyword through to the catalog.
func (s *CartService) Search(ctx context.Context, keyword string) ([]models.Game, error) {
	return s.catalog.Search(ctx, keyword)
}

// AddGame resolves the id against the catalog and persists the game.
// A non-positive id yields common.ErrValidation, an unknown catalog id
// common.ErrNotFound, an id already in the cart common.ErrAlreadyExists.
// The duplicate check and insert run in one transaction; the primary key
// on id is the backstop.
func (s *CartService) AddGame(ctx context.Context, id int64) (*models.Game, error) {

	if id <= 0 {
		return nil, common.ErrValidation
	}

	game, err := s.catalog.GameInfo(ctx, id)
	if err != nil {
		return nil, err
	}
	if game.Price < 0 {
		return nil, common.ErrValidation
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Games(tx)

		if _, err := repo.GetByID(ctx, game.ID); err == nil {
			return common.ErrAlreadyExists
		} else if !errors.Is(err, common.ErrNotFound) {
			return err
		}

		return repo.Create(ctx, game)
	})
	if err != nil {
		return nil, err
	}

	return game, nil
}

// RemoveGame deletes the game with the given id from the cart.
func (s *CartService) RemoveGame(ctx context.Context, id int64) error {

	if id <= 0 {
		return common.ErrValidation
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Games(tx).DeleteByID(ctx, id)
	})
}

// ListGames returns a snapshot of all games currently in the cart.
func (s *CartService) ListGames(ctx context.Context) ([]models.Game, error) {
	return s.repomanager.Games(s.db).List(ctx)
}

// TotalPrice returns the sum of the prices of all games in the cart.
func (s *CartService) TotalPrice(ctx context.Context) (float64, error) {
	return s.repomanager.Games(s.db).TotalPrice(ctx)
}
