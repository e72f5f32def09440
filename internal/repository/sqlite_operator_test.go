package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/pincecheck/internal/domain"
	"github.com/alexanderramin/pincecheck/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOperator(username string) *domain.Operator {
	return &domain.Operator{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Scheme:       domain.SchemeBcrypt,
		CreatedAt:    time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestOperatorRepo_GetByUsername_SeededAdmin(t *testing.T) {
	repo := NewSQLiteOperatorRepo(testutil.NewTestDB(t))

	admin, err := repo.GetByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.ID)
	assert.Equal(t, domain.SchemeSHA256, admin.Scheme)
	assert.Len(t, admin.PasswordHash, 64)
}

func TestOperatorRepo_CreateAndGet(t *testing.T) {
	repo := NewSQLiteOperatorRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	op := newTestOperator("ali")
	require.NoError(t, repo.Create(ctx, op))

	got, err := repo.GetByUsername(ctx, "ali")
	require.NoError(t, err)
	assert.Equal(t, op.ID, got.ID)
	assert.Equal(t, op.PasswordHash, got.PasswordHash)
	assert.Equal(t, domain.SchemeBcrypt, got.Scheme)
	assert.True(t, op.CreatedAt.Equal(got.CreatedAt))
}

func TestOperatorRepo_GetByUsername_NotFound(t *testing.T) {
	repo := NewSQLiteOperatorRepo(testutil.NewTestDB(t))

	_, err := repo.GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOperatorRepo_Create_DuplicateUsername(t *testing.T) {
	repo := NewSQLiteOperatorRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestOperator("ali")))
	err := repo.Create(ctx, newTestOperator("ali"))
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestOperatorRepo_List_SortedByUsername(t *testing.T) {
	repo := NewSQLiteOperatorRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestOperator("zineb")))
	require.NoError(t, repo.Create(ctx, newTestOperator("ali")))

	ops, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 3)
	assert.Equal(t, "admin", ops[0].Username)
	assert.Equal(t, "ali", ops[1].Username)
	assert.Equal(t, "zineb", ops[2].Username)
}
