package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gamecart/internal/dbx"
	"github.com/dmitrijs2005/gamecart/internal/server/repositories/games"
	"github.com/dmitrijs2005/gamecart/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Games(db dbx.DBTX) games.Repository
}
