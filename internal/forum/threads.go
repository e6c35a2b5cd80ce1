package forum

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"gorm.io/gorm"

	"github.com/Coding-Mohamed/Forum/internal/apperror"
	"github.com/Coding-Mohamed/Forum/internal/models"
)

// ThreadWithCount is a thread plus its computed comment count, as served by
// the thread list.
type ThreadWithCount struct {
	models.Thread
	CommentCount int `json:"comment_count"`
}

func (s *Service) CreateThread(ctx context.Context, author, authorID, title, content, category string) (*models.Thread, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	category = strings.TrimSpace(category)

	if title == "" {
		return nil, apperror.ValidationFailed("title", "title is required")
	}
	if content == "" {
		return nil, apperror.ValidationFailed("content", "content is required")
	}
	if category == "" {
		return nil, apperror.ValidationFailed("category", "category is required")
	}
	if strings.TrimSpace(authorID) == "" {
		return nil, apperror.ValidationFailed("author_id", "author id is required")
	}

	thread := models.Thread{
		Title:    title,
		Content:  content,
		Author:   author,
		AuthorID: authorID,
		Category: category,
	}

	if err := s.db.WithContext(ctx).Create(&thread).Error; err != nil {
		return nil, err
	}

	s.logger.Info("thread created",
		slog.Int("id", thread.ID),
		slog.String("author_id", authorID),
		slog.String("category", category),
	)

	return &thread, nil
}

// EditThread patches title and content, author only.
func (s *Service) EditThread(ctx context.Context, threadID int, userID, title, content string) (*models.Thread, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return nil, apperror.ValidationFailed("title", "title is required")
	}
	if content == "" {
		return nil, apperror.ValidationFailed("content", "content is required")
	}

	thread, err := s.getThread(ctx, threadID)
	if err != nil {
		return nil, err
	}

	if !CanEdit(thread, userID) {
		return nil, apperror.Forbidden("you can only edit your own threads")
	}

	if err := s.db.WithContext(ctx).Model(thread).
		Updates(map[string]any{"title": title, "content": content}).Error; err != nil {
		return nil, err
	}
	thread.Title = title
	thread.Content = content

	s.logger.Info("thread edited", slog.Int("id", thread.ID), slog.String("user_id", userID))
	return thread, nil
}

// DeleteThread removes the thread row if the caller owns it or is an admin.
// Comments and votes referencing the thread are left in place (no cascade),
// matching the original behavior.
func (s *Service) DeleteThread(ctx context.Context, threadID int, userID string) error {
	thread, err := s.getThread(ctx, threadID)
	if err != nil {
		return err
	}

	isAdmin, err := s.IsAdmin(ctx, userID)
	if err != nil {
		return err
	}

	if !CanDelete(thread, userID, isAdmin) {
		return apperror.Forbidden("you can only delete your own threads")
	}

	if err := s.db.WithContext(ctx).Delete(thread).Error; err != nil {
		return err
	}

	s.logger.Info("thread deleted",
		slog.Int("id", thread.ID),
		slog.String("user_id", userID),
		slog.Bool("as_admin", isAdmin && thread.AuthorID != userID),
	)
	return nil
}

// GetThreads returns all threads with their comment counts, newest first.
func (s *Service) GetThreads(ctx context.Context) ([]ThreadWithCount, error) {
	var threads []models.Thread
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&threads).Error; err != nil {
		return nil, err
	}

	result := make([]ThreadWithCount, 0, len(threads))
	for _, thread := range threads {
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.Comment{}).
			Where("thread_id = ?", thread.ID).Count(&count).Error; err != nil {
			return nil, err
		}
		result = append(result, ThreadWithCount{Thread: thread, CommentCount: int(count)})
	}
	return result, nil
}

func (s *Service) GetThreadByID(ctx context.Context, threadID int) (*models.Thread, error) {
	return s.getThread(ctx, threadID)
}

// GetCategories returns the distinct thread categories, case-normalized
// (first letter upper, rest lower) and deduplicated.
func (s *Service) GetCategories(ctx context.Context) ([]string, error) {
	var raw []string
	if err := s.db.WithContext(ctx).Model(&models.Thread{}).
		Distinct("category").Order("category").Pluck("category", &raw).Error; err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(raw))
	categories := make([]string, 0, len(raw))
	for _, c := range raw {
		normalized := normalizeCategory(c)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		categories = append(categories, normalized)
	}
	return categories, nil
}

func (s *Service) getThread(ctx context.Context, threadID int) (*models.Thread, error) {
	var thread models.Thread
	if err := s.db.WithContext(ctx).First(&thread, threadID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("thread", threadID)
		}
		return nil, err
	}
	return &thread, nil
}

func normalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return ""
	}
	runes := []rune(category)
	return strings.ToUpper(string(runes[0])) + strings.ToLower(string(runes[1:]))
}
