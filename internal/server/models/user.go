// Package models defines the server-side entities persisted by the
// repositories and shaped into API responses by the handlers. JSON tags use
// snake_case to match the wire contract.
package models

import "time"

// User is a registered account with interview preferences.
// PasswordHash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	SkillLevel   string    `json:"skill_level"`
	JobRole      string    `json:"job_role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
