package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/mockview/mockview/internal/common"
	"github.com/mockview/mockview/internal/logging"
	"github.com/mockview/mockview/internal/server/auth"
	"github.com/mockview/mockview/internal/server/models"
)

const maxBodyBytes = 1 << 20

// UserOperator is the slice of the user service the auth handlers need.
type UserOperator interface {
	Signup(ctx context.Context, email, password, name, skillLevel, jobRole string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Logout(ctx context.Context, token string) error
	Profile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID, name, skillLevel, jobRole string) (*models.User, error)
}

// AuthHandler serves signup, login, logout, and profile endpoints.
type AuthHandler struct {
	users  UserOperator
	logger logging.Logger
}

func NewAuthHandler(users UserOperator, logger logging.Logger) *AuthHandler {
	return &AuthHandler{users: users, logger: logger}
}

type signupRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	SkillLevel string `json:"skill_level"`
	JobRole    string `json:"job_role"`
}

func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !decodeBody(w, r, maxBodyBytes, &req) {
		return
	}

	email := strings.TrimSpace(req.Email)
	password := strings.TrimSpace(req.Password)
	name := strings.TrimSpace(req.Name)

	if email == "" || password == "" || name == "" {
		writeFailure(w, http.StatusBadRequest, "Email, password, and name are required")
		return
	}
	if !auth.ValidEmail(email) {
		writeFailure(w, http.StatusBadRequest, "Invalid email format")
		return
	}
	if ok, message := auth.ValidatePassword(password); !ok {
		writeFailure(w, http.StatusBadRequest, message)
		return
	}

	user, token, err := h.users.Signup(r.Context(), email, password, name, req.SkillLevel, req.JobRole)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			writeFailure(w, http.StatusBadRequest, "Email already exists")
			return
		}
		h.logger.Error(r.Context(), "signup failed", "error", err)
		writeInternal(w, "Signup failed", err)
		return
	}

	writeSuccess(w, http.StatusCreated, "User created successfully", map[string]any{
		"user":         user,
		"access_token": token,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, maxBodyBytes, &req) {
		return
	}

	email := strings.TrimSpace(req.Email)
	password := strings.TrimSpace(req.Password)

	if email == "" || password == "" {
		writeFailure(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, token, err := h.users.Login(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			writeFailure(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.logger.Error(r.Context(), "login failed", "error", err)
		writeInternal(w, "Login failed", err)
		return
	}

	writeSuccess(w, http.StatusOK, "Login successful", map[string]any{
		"user":         user,
		"access_token": token,
	})
}

func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	token, _ := TokenFromContext(r.Context())

	if err := h.users.Logout(r.Context(), token); err != nil {
		h.logger.Error(r.Context(), "logout failed", "error", err)
		writeInternal(w, "Logout failed", err)
		return
	}

	writeSuccess(w, http.StatusOK, "Logged out successfully", nil)
}

func (h *AuthHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	user, err := h.users.Profile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "User not found", "User not found", "Failed to get profile")
		return
	}

	writeData(w, user)
}

type updateProfileRequest struct {
	Name       string `json:"name"`
	SkillLevel string `json:"skill_level"`
	JobRole    string `json:"job_role"`
}

func (h *AuthHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	var req updateProfileRequest
	if !decodeBody(w, r, maxBodyBytes, &req) {
		return
	}

	user, err := h.users.UpdateProfile(r.Context(), userID, req.Name, req.SkillLevel, req.JobRole)
	if err != nil {
		writeServiceError(w, err, "User not found", "User not found", "Failed to update profile")
		return
	}

	writeSuccess(w, http.StatusOK, "Profile updated successfully", user)
}
