package forum

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Coding-Mohamed/Forum/internal/apperror"
	"github.com/Coding-Mohamed/Forum/internal/models"
)

// CreateComment screens the content against the blocklist and inserts the
// comment. parentCommentID is stored when given but no query reads it back
// yet. Comments are immutable once created.
func (s *Service) CreateComment(ctx context.Context, threadID int, author, content string, parentCommentID *int) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperror.ValidationFailed("content", "content is required")
	}
	if strings.TrimSpace(author) == "" {
		return nil, apperror.ValidationFailed("author", "author is required")
	}

	// Verify the thread exists before attaching a comment to it.
	if _, err := s.getThread(ctx, threadID); err != nil {
		return nil, err
	}

	filtered := FilterContent(content, s.blockedWords)
	if filtered != content {
		s.logger.Info("comment censored", slog.Int("thread_id", threadID))
	}

	comment := models.Comment{
		ThreadID:        threadID,
		Author:          author,
		Content:         filtered,
		ParentCommentID: parentCommentID,
	}

	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, err
	}

	s.logger.Info("comment created", slog.Int("id", comment.ID), slog.Int("thread_id", threadID))
	return &comment, nil
}

func (s *Service) GetComments(ctx context.Context, threadID int) ([]models.Comment, error) {
	var comments []models.Comment
	if err := s.db.WithContext(ctx).
		Where("thread_id = ?", threadID).Order("created_at asc").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
