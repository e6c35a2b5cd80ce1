package forum

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Coding-Mohamed/Forum/internal/apperror"
	"github.com/Coding-Mohamed/Forum/internal/models"
)

// ApplyVote runs the vote toggle for one (user, thread) pair:
//
//	no existing vote            -> insert, counter +1
//	same direction again        -> delete (retraction), counter -1
//	opposite direction          -> flip in place, old counter -1, new +1
//
// The lookup and the counter patch run in one transaction with the thread
// row locked, so concurrent toggles for the same pair serialize instead of
// racing between the read and the write. At most one vote row ever exists
// per pair and counters stay equal to the vote rows per direction.
func (s *Service) ApplyVote(ctx context.Context, threadID int, userID, direction string) (*models.Thread, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperror.ValidationFailed("user_id", "user id is required")
	}
	if direction != models.VoteUp && direction != models.VoteDown {
		return nil, apperror.ValidationFailed("vote_type", "vote type must be upvote or downvote")
	}

	var thread models.Thread
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&thread, threadID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("thread", threadID)
			}
			return err
		}

		var vote models.Vote
		lookupErr := tx.Where("user_id = ? AND thread_id = ?", userID, threadID).First(&vote).Error

		switch {
		case lookupErr == nil && vote.VoteType == direction:
			// Same vote again - retract it
			if err := tx.Delete(&vote).Error; err != nil {
				return err
			}
			adjustCounter(&thread, direction, -1)

		case lookupErr == nil:
			// Opposite vote - flip it in place
			previous := vote.VoteType
			vote.VoteType = direction
			if err := tx.Save(&vote).Error; err != nil {
				return err
			}
			adjustCounter(&thread, previous, -1)
			adjustCounter(&thread, direction, +1)

		case errors.Is(lookupErr, gorm.ErrRecordNotFound):
			vote = models.Vote{UserID: userID, ThreadID: threadID, VoteType: direction}
			if err := tx.Create(&vote).Error; err != nil {
				return err
			}
			adjustCounter(&thread, direction, +1)

		default:
			return lookupErr
		}

		return tx.Model(&models.Thread{}).Where("id = ?", thread.ID).
			Updates(map[string]any{"upvotes": thread.Upvotes, "downvotes": thread.Downvotes}).Error
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("vote applied",
		slog.Int("thread_id", thread.ID),
		slog.String("user_id", userID),
		slog.String("direction", direction),
	)

	return &thread, nil
}

// GetUserVote returns the caller's current vote direction on a thread, or
// the empty string when no vote exists.
func (s *Service) GetUserVote(ctx context.Context, threadID int, userID string) (string, error) {
	var vote models.Vote
	err := s.db.WithContext(ctx).Where("user_id = ? AND thread_id = ?", userID, threadID).First(&vote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return vote.VoteType, nil
}

func adjustCounter(thread *models.Thread, direction string, delta int) {
	if direction == models.VoteUp {
		thread.Upvotes += delta
	} else {
		thread.Downvotes += delta
	}
}
