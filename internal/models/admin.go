package models

import "time"

// Admin model - a row per user holding elevated privileges.
// Duplicate user IDs are rejected by the MakeAdmin mutation, not by the schema.
type Admin struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index" json:"user_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type MakeAdminRequest struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
