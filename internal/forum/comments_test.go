package forum

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Coding-Mohamed/Forum/internal/apperror"
	"github.com/Coding-Mohamed/Forum/internal/models"
)

func TestCreateCommentStoresCleanContent(t *testing.T) {
	svc := newTestService(t)
	thread := mustCreateThread(t, svc, "user-alice")

	comment, err := svc.CreateComment(context.Background(), thread.ID, "bob", "great write-up, thanks", nil)
	require.NoError(t, err)

	assert.Equal(t, "great write-up, thanks", comment.Content)
	assert.Equal(t, "bob", comment.Author)
	assert.Equal(t, thread.ID, comment.ThreadID)
	assert.Nil(t, comment.ParentCommentID)
	assert.False(t, comment.CreatedAt.IsZero())
}

func TestCreateCommentCensorsBlockedTerms(t *testing.T) {
	svc := newTestService(t)
	thread := mustCreateThread(t, svc, "user-alice")

	comment, err := svc.CreateComment(context.Background(), thread.ID, "bob", "this is damn good", nil)
	require.NoError(t, err)

	// The stored row carries the notice, never the original text.
	assert.Equal(t, CensoredNotice, comment.Content)

	var stored models.Comment
	require.NoError(t, testDB.First(&stored, comment.ID).Error)
	assert.Equal(t, CensoredNotice, stored.Content)
}

func TestCreateCommentStoresParent(t *testing.T) {
	svc := newTestService(t)
	thread := mustCreateThread(t, svc, "user-alice")
	ctx := context.Background()

	parent, err := svc.CreateComment(ctx, thread.ID, "bob", "parent comment", nil)
	require.NoError(t, err)

	reply, err := svc.CreateComment(ctx, thread.ID, "carol", "a reply", &parent.ID)
	require.NoError(t, err)

	require.NotNil(t, reply.ParentCommentID)
	assert.Equal(t, parent.ID, *reply.ParentCommentID)
}

func TestCreateCommentValidation(t *testing.T) {
	svc := newTestService(t)
	thread := mustCreateThread(t, svc, "user-alice")
	ctx := context.Background()

	_, err := svc.CreateComment(ctx, thread.ID, "bob", "  ", nil)
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = svc.CreateComment(ctx, thread.ID, "", "content", nil)
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestCreateCommentUnknownThread(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateComment(context.Background(), 123456, "bob", "hello", nil)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGetCommentsReturnsThreadCommentsOnly(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first := mustCreateThread(t, svc, "user-alice")
	second := mustCreateThread(t, svc, "user-bob")

	_, err := svc.CreateComment(ctx, first.ID, "bob", "on the first thread", nil)
	require.NoError(t, err)
	_, err = svc.CreateComment(ctx, second.ID, "carol", "on the second thread", nil)
	require.NoError(t, err)

	comments, err := svc.GetComments(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "on the first thread", comments[0].Content)
}
