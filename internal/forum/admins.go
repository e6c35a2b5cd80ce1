package forum

import (
	"context"
	"log/slog"
	"strings"

	"gorm.io/gorm"

	"github.com/Coding-Mohamed/Forum/internal/apperror"
	"github.com/Coding-Mohamed/Forum/internal/models"
)

// MakeAdmin grants elevated privileges to a user. Rejects with a conflict
// when a row for that user already exists. The existence check and the
// insert run in one transaction, but without a unique index on user_id this
// is still check-then-insert; two calls racing on a fresh user ID can both
// pass the check.
func (s *Service) MakeAdmin(ctx context.Context, userID, email string) (*models.Admin, error) {
	userID = strings.TrimSpace(userID)
	email = strings.TrimSpace(email)
	if userID == "" {
		return nil, apperror.ValidationFailed("user_id", "user id is required")
	}
	if email == "" {
		return nil, apperror.ValidationFailed("email", "email is required")
	}

	admin := models.Admin{UserID: userID, Email: email}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Admin{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperror.Conflict("user is already an admin")
		}
		return tx.Create(&admin).Error
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("admin granted", slog.String("user_id", userID), slog.String("email", email))
	return &admin, nil
}

// IsAdmin reports whether a row for userID exists in the admin directory.
func (s *Service) IsAdmin(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Admin{}).
		Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
