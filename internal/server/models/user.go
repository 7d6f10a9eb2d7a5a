// Package models defines the persistent entities of the game cart server.
package models

import "time"

type User struct {
	ID           int64
	Username     string
	Salt         []byte
	PasswordHash []byte
	CreatedAt    time.Time
}
