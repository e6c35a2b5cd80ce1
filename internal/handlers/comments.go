package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Coding-Mohamed/Forum/internal/forum"
	"github.com/Coding-Mohamed/Forum/internal/models"
)

type CommentHandler struct {
	svc *forum.Service
}

func NewCommentHandler(svc *forum.Service) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// GetComments returns all comments for a thread
func (h *CommentHandler) GetComments(c *gin.Context) {
	threadID, ok := threadParam(c)
	if !ok {
		return
	}

	comments, err := h.svc.GetComments(c.Request.Context(), threadID)
	if err != nil {
		respondError(c, err)
		return
	}

	if comments == nil {
		comments = []models.Comment{}
	}
	c.JSON(http.StatusOK, comments)
}

// CreateComment creates a new comment on a thread (PROTECTED).
// Content is run through the moderation filter before it is stored.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	threadID, ok := threadParam(c)
	if !ok {
		return
	}

	if _, ok := extractUserID(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input models.CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.svc.CreateComment(c.Request.Context(), threadID, extractUsername(c), input.Content, input.ParentCommentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}
