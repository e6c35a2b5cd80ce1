package models

import "time"

// Vote directions as stored in the votes table.
const (
	VoteUp   = "upvote"
	VoteDown = "downvote"
)

// Vote model - tracks a user's single active vote on a thread
type Vote struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index:idx_user_thread" json:"user_id"`
	ThreadID  int       `gorm:"index:idx_user_thread" json:"thread_id"`
	VoteType  string    `json:"vote_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
