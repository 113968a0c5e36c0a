// Package session persists the client's authentication state: the access
// token and the logged-in user's profile. The two values live and die
// together; login and signup write both, logout and 401 handling clear both.
package session

import (
	"context"

	"github.com/mockview/mockview/internal/client/models"
)

// Store is the injectable session persistence boundary.
type Store interface {
	SaveToken(ctx context.Context, token string) error
	Token(ctx context.Context) (string, error)
	SaveUser(ctx context.Context, user *models.User) error
	// User returns (nil, nil) when no user is stored or the stored value
	// cannot be decoded.
	User(ctx context.Context) (*models.User, error)
	Clear(ctx context.Context) error
	Authenticated(ctx context.Context) (bool, error)
	Close() error
}
