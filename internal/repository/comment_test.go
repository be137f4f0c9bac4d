package repository

import (
	"context"
	"testing"
	"time"

	"wecare/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_ListByPostOldestFirst(t *testing.T) {
	db := setupTestDB(t)
	posts := NewPostRepository(db)
	comments := NewCommentRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "amina")
	post := &models.Post{Content: "post", UserID: user.ID}
	require.NoError(t, posts.Create(ctx, post))

	base := time.Now().Add(-time.Hour)
	for i, content := range []string{"first", "second", "third"} {
		require.NoError(t, comments.Create(ctx, &models.Comment{
			Content:   content,
			UserID:    user.ID,
			PostID:    post.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	list, err := comments.ListByPost(ctx, post.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "first", list[0].Content)
	assert.Equal(t, "second", list[1].Content)
	assert.Equal(t, "third", list[2].Content)
}

func TestCommentRepository_ListByPostScopedToPost(t *testing.T) {
	db := setupTestDB(t)
	posts := NewPostRepository(db)
	comments := NewCommentRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "amina")
	postA := &models.Post{Content: "a", UserID: user.ID}
	postB := &models.Post{Content: "b", UserID: user.ID}
	require.NoError(t, posts.Create(ctx, postA))
	require.NoError(t, posts.Create(ctx, postB))

	require.NoError(t, comments.Create(ctx, &models.Comment{Content: "on a", UserID: user.ID, PostID: postA.ID}))
	require.NoError(t, comments.Create(ctx, &models.Comment{Content: "on b", UserID: user.ID, PostID: postB.ID}))

	list, err := comments.ListByPost(ctx, postA.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "on a", list[0].Content)
}

func TestCommentRepository_ListByPostEmpty(t *testing.T) {
	db := setupTestDB(t)
	comments := NewCommentRepository(db)

	list, err := comments.ListByPost(context.Background(), 42, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}
