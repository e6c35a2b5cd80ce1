package models

import "time"

type Comment struct {
	ID              int       `gorm:"primaryKey" json:"id"`
	ThreadID        int       `gorm:"index;not null" json:"thread_id"`
	Author          string    `json:"author"`
	Content         string    `gorm:"not null" json:"content"`
	ParentCommentID *int      `json:"parent_comment_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type CreateCommentRequest struct {
	Content         string `json:"content"`
	ParentCommentID *int   `json:"parent_comment_id,omitempty"`
}
