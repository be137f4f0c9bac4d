package repository

import (
	"context"
	"testing"
	"time"

	"wecare/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_ListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "amina")

	base := time.Now().Add(-time.Hour)
	for i, content := range []string{"oldest", "middle", "newest"} {
		post := &models.Post{
			Content:   content,
			UserID:    user.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Create(ctx, post))
	}

	posts, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "newest", posts[0].Content)
	assert.Equal(t, "middle", posts[1].Content)
	assert.Equal(t, "oldest", posts[2].Content)
}

func TestPostRepository_ListPreloadsAuthor(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "amina")
	require.NoError(t, repo.Create(ctx, &models.Post{Content: "hello", UserID: user.ID}))

	posts, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "amina", posts[0].User.Username)
}

func TestPostRepository_ListPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "amina")
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &models.Post{
			Content:   "post",
			UserID:    user.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	page, err := repo.List(ctx, 2, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)
}

func TestPostRepository_GetByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	amina := createTestUser(t, db, "amina")
	brian := createTestUser(t, db, "brian")

	require.NoError(t, repo.Create(ctx, &models.Post{Content: "mine", UserID: amina.ID}))
	require.NoError(t, repo.Create(ctx, &models.Post{Content: "theirs", UserID: brian.ID}))

	posts, err := repo.GetByUserID(ctx, amina.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "mine", posts[0].Content)
}

func TestPostRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	_, err := repo.GetByID(context.Background(), 42)
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestPostRepository_AnonymousFlagPersists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "amina")
	require.NoError(t, repo.Create(ctx, &models.Post{Content: "private worry", UserID: user.ID, Anonymous: true}))

	posts, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.True(t, posts[0].Anonymous)
	// True author is still recorded for moderation purposes.
	assert.Equal(t, user.ID, posts[0].UserID)
}
