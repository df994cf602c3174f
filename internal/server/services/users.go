// Package services implements the application core behind the HTTP surface:
// account sign-up and login, post publication, the social graph, and
// timeline aggregation.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/miniter/internal/common"
	"github.com/dmitrijs2005/miniter/internal/server/auth"
	"github.com/dmitrijs2005/miniter/internal/server/config"
	"github.com/dmitrijs2005/miniter/internal/server/models"
	"github.com/dmitrijs2005/miniter/internal/server/repositories/repomanager"
)

type UserService struct {
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	jwtSecret      []byte
	accessTokenTTL time.Duration
	now            func() time.Time
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:             db,
		repomanager:    m,
		jwtSecret:      []byte(cfg.SecretKey),
		accessTokenTTL: cfg.AccessTokenTTL,
		now:            time.Now,
	}
}

// SignUp hashes the password and stores a new account. The returned record
// carries the generated id; the hash stays server-side.
func (s *UserService) SignUp(ctx context.Context, name, email, profile, password string) (*models.User, error) {

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		Profile:      profile,
		PasswordHash: hash,
	}

	repo := s.repomanager.Users(s.db)

	user, err = repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and mints an access token. An unknown
// email and a wrong password are indistinguishable to the caller: both map
// to common.ErrorUnauthorized. A corrupt stored hash maps to
// common.ErrorInternal so it can be alerted on, not shown to the user.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	ok, err := auth.VerifyPassword(user.PasswordHash, password)
	if err != nil {
		return "", common.ErrorInternal
	}
	if !ok {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenTTL, s.now())
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}
