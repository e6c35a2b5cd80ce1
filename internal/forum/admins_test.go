package forum

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Coding-Mohamed/Forum/internal/apperror"
	"github.com/Coding-Mohamed/Forum/internal/models"
)

func TestMakeAdmin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	admin, err := svc.MakeAdmin(ctx, "user-mod", "mod@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user-mod", admin.UserID)
	assert.Equal(t, "mod@example.com", admin.Email)

	isAdmin, err := svc.IsAdmin(ctx, "user-mod")
	require.NoError(t, err)
	assert.True(t, isAdmin)
}

func TestMakeAdminDuplicateRejected(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.MakeAdmin(ctx, "user-mod", "mod@example.com")
	require.NoError(t, err)

	_, err = svc.MakeAdmin(ctx, "user-mod", "other@example.com")
	assert.ErrorIs(t, err, apperror.ErrConflict)

	// Directory size unchanged by the rejected call.
	var count int64
	require.NoError(t, testDB.Model(&models.Admin{}).Where("user_id = ?", "user-mod").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestMakeAdminValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.MakeAdmin(ctx, "", "mod@example.com")
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = svc.MakeAdmin(ctx, "user-mod", "  ")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestIsAdmin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	isAdmin, err := svc.IsAdmin(ctx, "user-nobody")
	require.NoError(t, err)
	assert.False(t, isAdmin)

	// Empty caller is never an admin, and never hits the store.
	isAdmin, err = svc.IsAdmin(ctx, "")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}
