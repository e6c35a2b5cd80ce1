package forum

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Coding-Mohamed/Forum/internal/models"
)

func TestCanEdit(t *testing.T) {
	thread := &models.Thread{ID: 1, AuthorID: "user-a"}

	assert.True(t, CanEdit(thread, "user-a"))
	assert.False(t, CanEdit(thread, "user-b"))
	assert.False(t, CanEdit(thread, ""))
}

func TestCanEditEmptyAuthor(t *testing.T) {
	// A thread without an owner is editable by nobody, not everybody.
	thread := &models.Thread{ID: 2, AuthorID: ""}
	assert.False(t, CanEdit(thread, ""))
}

func TestCanDelete(t *testing.T) {
	thread := &models.Thread{ID: 1, AuthorID: "user-a"}

	tests := []struct {
		name    string
		userID  string
		isAdmin bool
		want    bool
	}{
		{"author without admin", "user-a", false, true},
		{"author with admin", "user-a", true, true},
		{"admin on someone else's thread", "user-b", true, true},
		{"non-author non-admin", "user-b", false, false},
		{"anonymous", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanDelete(thread, tt.userID, tt.isAdmin))
		})
	}
}
