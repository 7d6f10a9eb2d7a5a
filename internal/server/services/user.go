// Package services contains server-side business logic. This file implements
// UserService, which handles account creation, credential checks, and
// password updates.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/gamecart/internal/common"
	"github.com/dmitrijs2005/gamecart/internal/dbx"
	"github.com/dmitrijs2005/gamecart/internal/server/auth"
	"github.com/dmitrijs2005/gamecart/internal/server/config"
	"github.com/dmitrijs2005/gamecart/internal/server/models"
	pwd "github.com/dmitrijs2005/gamecart/internal/server/password"
	"github.com/dmitrijs2005/gamecart/internal/server/repositories/repomanager"
)

// UserService provides account-related operations:
//   - Register: create users with salted password hashes
//   - Login: verify credentials and mint a session token
//   - UpdatePassword: replace the stored credential atomically
type UserService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:            db,
		repomanager:   m,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// Register creates a new user. An empty username or password yields
// common.ErrValidation, a taken username common.ErrAlreadyExists. The
// existence check and insert run in one transaction; the unique index on
// username is the backstop for concurrent registrations.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {

	if username == "" || password == "" {
		return nil, common.ErrValidation
	}

	var created *models.User

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		if _, err := repo.GetByUsername(ctx, username); err == nil {
			return common.ErrAlreadyExists
		} else if !errors.Is(err, common.ErrNotFound) {
			return err
		}

		salt, err := pwd.GenerateSalt()
		if err != nil {
			return err
		}

		user := &models.User{
			Username:     username,
			Salt:         salt,
			PasswordHash: pwd.Hash(password, salt),
		}

		created, err = repo.Create(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Login verifies the supplied credentials and returns a signed session
// token. An unknown username yields common.ErrNotFound and a wrong password
// common.ErrUnauthorized; the HTTP layer presents both identically.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {

	user, err := s.repomanager.Users(s.db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrNotFound
		}
		return "", err
	}

	if !pwd.Verify(password, user.Salt, user.PasswordHash) {
		return "", common.ErrUnauthorized
	}

	return auth.GenerateToken(user.Username, s.jwtSecret, s.tokenValidity)
}

// UpdatePassword regenerates the salt and hash for the user and replaces
// both in one transaction, so the old credential is never observable
// half-updated. An unknown username yields common.ErrNotFound.
func (s *UserService) UpdatePassword(ctx context.Context, username, newPassword string) error {

	if username == "" || newPassword == "" {
		return common.ErrValidation
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		salt, err := pwd.GenerateSalt()
		if err != nil {
			return err
		}
		return s.repomanager.Users(tx).UpdateCredentials(ctx, username, salt, pwd.Hash(newPassword, salt))
	})
}
