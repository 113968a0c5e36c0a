package api

import (
	"context"
	"net/http"

	"github.com/mockview/mockview/internal/client/models"
)

type signupRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	SkillLevel string `json:"skill_level,omitempty"`
	JobRole    string `json:"job_role,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup registers a new account and stores the returned session locally.
func (c *Client) Signup(ctx context.Context, email, password, name, skillLevel, jobRole string) (*AuthResult, error) {
	req := signupRequest{Email: email, Password: password, Name: name, SkillLevel: skillLevel, JobRole: jobRole}
	var res AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/signup", req, &res); err != nil {
		return nil, err
	}
	if err := c.persistAuth(ctx, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Login authenticates and stores the returned session locally.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var res AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &res); err != nil {
		return nil, err
	}
	if err := c.persistAuth(ctx, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Logout revokes the server session. The local session is cleared even
// when the server cannot be reached, so a logout always takes effect.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	if clearErr := c.store.Clear(ctx); clearErr != nil {
		c.logger.Warn(ctx, "failed to clear local session", "error", clearErr)
	}
	return err
}

// Profile fetches the authenticated user's profile.
func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

type updateProfileRequest struct {
	Name       string `json:"name,omitempty"`
	SkillLevel string `json:"skill_level,omitempty"`
	JobRole    string `json:"job_role,omitempty"`
}

// UpdateProfile changes the writable profile fields and refreshes the
// locally stored user.
func (c *Client) UpdateProfile(ctx context.Context, name, skillLevel, jobRole string) (*models.User, error) {
	req := updateProfileRequest{Name: name, SkillLevel: skillLevel, JobRole: jobRole}
	var user models.User
	if err := c.do(ctx, http.MethodPut, "/auth/profile", req, &user); err != nil {
		return nil, err
	}
	if err := c.store.SaveUser(ctx, &user); err != nil {
		c.logger.Warn(ctx, "failed to store user", "error", err)
	}
	return &user, nil
}

func (c *Client) persistAuth(ctx context.Context, res *AuthResult) error {
	token := res.AccessToken
	if token == "" {
		token = res.Token
	}
	if token != "" {
		if err := c.store.SaveToken(ctx, token); err != nil {
			return err
		}
	}
	if res.User != nil {
		if err := c.store.SaveUser(ctx, res.User); err != nil {
			c.logger.Warn(ctx, "failed to store user", "error", err)
		}
	}
	return nil
}
