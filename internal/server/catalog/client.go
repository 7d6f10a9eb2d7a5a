// Package catalog integrates with the external game catalog (CheapShark).
// The cart service consumes it through the Client interface and never talks
// to the network directly.
package catalog

import (
	"context"

	"github.com/dmitrijs2005/gamecart/internal/server/models"
)

// Client looks up game metadata and pricing.
//
// GameInfo returns common.ErrNotFound when the id does not correspond to a
// catalog game; transport or decoding failures map to common.ErrUpstream so
// callers can tell the two apart.
type Client interface {
	Search(ctx context.Context, keyword string) ([]models.Game, error)
	GameInfo(ctx context.Context, id int64) (*models.Game, error)
}
