package forum

import "github.com/Coding-Mohamed/Forum/internal/models"

// CanEdit reports whether userID is the thread's author. Only authors may
// edit their threads, admins included.
func CanEdit(thread *models.Thread, userID string) bool {
	return userID != "" && thread.AuthorID == userID
}

// CanDelete reports whether userID may delete the thread: the author or any
// member of the admin directory.
func CanDelete(thread *models.Thread, userID string, isAdmin bool) bool {
	return CanEdit(thread, userID) || isAdmin
}
