package users

import (
	"context"

	"github.com/dmitrijs2005/gamecart/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateCredentials(ctx context.Context, username string, salt, passwordHash []byte) error
}
