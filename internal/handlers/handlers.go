package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Coding-Mohamed/Forum/internal/apperror"
	"github.com/Coding-Mohamed/Forum/internal/forum"
)

// Handler combines all handler types
type Handler struct {
	Auth    *AuthHandler
	Thread  *ThreadHandler
	Comment *CommentHandler
	Admin   *AdminHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(db *gorm.DB, svc *forum.Service) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(db),
		Thread:  NewThreadHandler(svc),
		Comment: NewCommentHandler(svc),
		Admin:   NewAdminHandler(svc),
	}
}

// respondError maps service errors onto HTTP status codes:
// validation 400, forbidden 403, conflict 409, not found 404,
// anything else is a store failure and surfaces as 500.
func respondError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(appErr, apperror.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(appErr, apperror.ErrForbidden):
			status = http.StatusForbidden
		case errors.Is(appErr, apperror.ErrConflict):
			status = http.StatusConflict
		case errors.Is(appErr, apperror.ErrNotFound):
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
}

func extractUserID(c *gin.Context) (string, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	id, ok := raw.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

func extractUsername(c *gin.Context) string {
	if raw, exists := c.Get("username"); exists {
		if name, ok := raw.(string); ok {
			return name
		}
	}
	return ""
}
