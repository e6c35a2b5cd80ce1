package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Coding-Mohamed/Forum/internal/forum"
	"github.com/Coding-Mohamed/Forum/internal/models"
)

type ThreadHandler struct {
	svc *forum.Service
}

func NewThreadHandler(svc *forum.Service) *ThreadHandler {
	return &ThreadHandler{svc: svc}
}

func threadParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid thread id"})
		return 0, false
	}
	return id, true
}

// GetThreads returns all threads with their comment counts
func (h *ThreadHandler) GetThreads(c *gin.Context) {
	threads, err := h.svc.GetThreads(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	// If no threads, return empty array not null
	if threads == nil {
		threads = []forum.ThreadWithCount{}
	}
	c.JSON(http.StatusOK, threads)
}

// GetThread returns a single thread by ID
func (h *ThreadHandler) GetThread(c *gin.Context) {
	threadID, ok := threadParam(c)
	if !ok {
		return
	}

	thread, err := h.svc.GetThreadByID(c.Request.Context(), threadID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, thread)
}

// GetCategories returns the distinct, case-normalized category list
func (h *ThreadHandler) GetCategories(c *gin.Context) {
	categories, err := h.svc.GetCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if categories == nil {
		categories = []string{}
	}
	c.JSON(http.StatusOK, categories)
}

// CreateThread creates a new thread (PROTECTED - requires authentication)
func (h *ThreadHandler) CreateThread(c *gin.Context) {
	var input models.CreateThreadRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	thread, err := h.svc.CreateThread(c.Request.Context(), extractUsername(c), userID, input.Title, input.Content, input.Category)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, thread)
}

// EditThread patches title/content (PROTECTED - author only)
func (h *ThreadHandler) EditThread(c *gin.Context) {
	threadID, ok := threadParam(c)
	if !ok {
		return
	}

	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input models.EditThreadRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	thread, err := h.svc.EditThread(c.Request.Context(), threadID, userID, input.Title, input.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, thread)
}

// DeleteThread deletes a thread (PROTECTED - author or admin)
func (h *ThreadHandler) DeleteThread(c *gin.Context) {
	threadID, ok := threadParam(c)
	if !ok {
		return
	}

	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.svc.DeleteThread(c.Request.Context(), threadID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Thread deleted successfully"})
}

// UpvoteThread runs the vote toggle in the upvote direction
func (h *ThreadHandler) UpvoteThread(c *gin.Context) {
	h.vote(c, models.VoteUp)
}

// DownvoteThread runs the vote toggle in the downvote direction
func (h *ThreadHandler) DownvoteThread(c *gin.Context) {
	h.vote(c, models.VoteDown)
}

func (h *ThreadHandler) vote(c *gin.Context, direction string) {
	threadID, ok := threadParam(c)
	if !ok {
		return
	}

	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	thread, err := h.svc.ApplyVote(c.Request.Context(), threadID, userID, direction)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"upvotes":   thread.Upvotes,
		"downvotes": thread.Downvotes,
	})
}

// GetUserVote returns the caller's current vote on a thread, if any
func (h *ThreadHandler) GetUserVote(c *gin.Context) {
	threadID, ok := threadParam(c)
	if !ok {
		return
	}

	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	voteType, err := h.svc.GetUserVote(c.Request.Context(), threadID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	if voteType == "" {
		c.JSON(http.StatusOK, gin.H{"vote": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vote": voteType})
}
