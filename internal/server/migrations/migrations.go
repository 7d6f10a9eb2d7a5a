// Package migrations embeds the goose schema migrations for the game cart
// database. The sqlite and postgres directories hold the same schema in the
// respective dialect; the repository manager picks the directory matching
// the configured driver.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS
