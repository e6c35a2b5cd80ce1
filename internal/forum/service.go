// Package forum holds the business rules of the board: the vote toggle,
// ownership and admin checks, comment moderation and the admin directory.
// Handlers stay HTTP-only and call into this service.
package forum

import (
	"log/slog"

	"gorm.io/gorm"
)

type Service struct {
	db           *gorm.DB
	logger       *slog.Logger
	blockedWords []string
}

func NewService(db *gorm.DB, logger *slog.Logger) *Service {
	return &Service{
		db:           db,
		logger:       logger,
		blockedWords: blockedWordsFromEnv(),
	}
}
