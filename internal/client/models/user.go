// Package models holds the client-side view of server entities.
package models

import "time"

// User mirrors the profile payload returned by the backend.
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	SkillLevel string    `json:"skill_level"`
	JobRole    string    `json:"job_role"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
