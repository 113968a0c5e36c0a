// Package services contains server-side business logic. This file implements
// UserService, which handles signup, login, logout via a token denylist, and
// profile reads and updates.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mockview/mockview/internal/common"
	"github.com/mockview/mockview/internal/server/auth"
	"github.com/mockview/mockview/internal/server/cache"
	"github.com/mockview/mockview/internal/server/config"
	"github.com/mockview/mockview/internal/server/models"
	"github.com/mockview/mockview/internal/server/repositories/repomanager"
)

// UserService provides authentication and profile operations.
type UserService struct {
	db                  *sql.DB
	repomanager         repomanager.RepositoryManager
	cache               *cache.Cache
	jwtSecret           []byte
	accessTokenValidity time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, c *cache.Cache, cfg *config.Config) *UserService {
	return &UserService{
		db:                  db,
		repomanager:         m,
		cache:               c,
		jwtSecret:           []byte(cfg.SecretKey),
		accessTokenValidity: cfg.AccessTokenValidity,
	}
}

// Signup creates a new account and returns the user together with a freshly
// minted access token. Duplicate emails yield ErrAlreadyExists.
func (s *UserService) Signup(ctx context.Context, email, password, name, skillLevel, jobRole string) (*models.User, string, error) {
	repo := s.repomanager.Users(s.db)

	if skillLevel == "" {
		skillLevel = common.SkillBeginner
	}
	if jobRole == "" {
		jobRole = common.DefaultJobRole
	}

	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return nil, "", common.ErrAlreadyExists
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, "", common.ErrInternal
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("error hashing password: %v", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		SkillLevel:   skillLevel,
		JobRole:      jobRole,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, "", common.ErrAlreadyExists
		}
		return nil, "", fmt.Errorf("error creating user: %v", err)
	}

	token, err := auth.GenerateToken(u.ID, s.jwtSecret, s.accessTokenValidity)
	if err != nil {
		return nil, "", fmt.Errorf("error generating token: %v", err)
	}
	return u, token, nil
}

// Login verifies the credentials and, on success, returns the user and a new
// access token. Unknown emails and wrong passwords both yield ErrUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, "", common.ErrUnauthorized
		}
		return nil, "", common.ErrInternal
	}

	ok, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil || !ok {
		return nil, "", common.ErrUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidity)
	if err != nil {
		return nil, "", fmt.Errorf("error generating token: %v", err)
	}
	return user, token, nil
}

// Logout denylists the presented token for its remaining validity so it can
// no longer authenticate requests.
func (s *UserService) Logout(ctx context.Context, token string) error {
	return s.cache.DenyToken(ctx, token, auth.TokenRemainingValidity(token))
}

// Profile returns the user identified by id.
func (s *UserService) Profile(ctx context.Context, userID string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, userID)
}

// UpdateProfile applies the non-empty fields to the user's profile and
// returns the updated record.
func (s *UserService) UpdateProfile(ctx context.Context, userID, name, skillLevel, jobRole string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		user.Name = name
	}
	if skillLevel != "" {
		user.SkillLevel = skillLevel
	}
	if jobRole != "" {
		user.JobRole = jobRole
	}
	user.UpdatedAt = time.Now().UTC()

	return repo.Update(ctx, user)
}
