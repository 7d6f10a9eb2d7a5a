package games

import (
	"context"

	"github.com/dmitrijs2005/gamecart/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, game *models.Game) error
	GetByID(ctx context.Context, id int64) (*models.Game, error)
	DeleteByID(ctx context.Context, id int64) error
	List(ctx context.Context) ([]models.Game, error)
	TotalPrice(ctx context.Context) (float64, error)
}
