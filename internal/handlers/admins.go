package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Coding-Mohamed/Forum/internal/forum"
	"github.com/Coding-Mohamed/Forum/internal/models"
)

type AdminHandler struct {
	svc *forum.Service
}

func NewAdminHandler(svc *forum.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// MakeAdmin grants admin rights to a user (PROTECTED - admin routes only).
// A second call for the same user rejects with 409.
func (h *AdminHandler) MakeAdmin(c *gin.Context) {
	var input models.MakeAdminRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, err := h.svc.MakeAdmin(c.Request.Context(), input.UserID, input.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, admin)
}

// CheckAdmin reports whether the authenticated caller is an admin.
// Used by the UI to gate admin links.
func (h *AdminHandler) CheckAdmin(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	isAdmin, err := h.svc.IsAdmin(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_admin": isAdmin})
}
