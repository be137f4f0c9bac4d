package service

import (
	"context"
	"fmt"
	"strings"

	"wecare/internal/models"
	"wecare/internal/observability"
	"wecare/internal/repository"
	"wecare/internal/safety"
)

// AnonymousAuthor is the display name for posts shared without attribution.
const AnonymousAuthor = "Anonymous"

type PostService struct {
	postRepo   repository.PostRepository
	userRepo   repository.UserRepository
	moderation *safety.ModerationEngine
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, moderation *safety.ModerationEngine) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo, moderation: moderation}
}

type CreatePostInput struct {
	UserID    uint
	Content   string
	Anonymous bool
}

// CreatePost publishes a forum post after moderation. The true author is
// always recorded; the anonymous flag only changes display attribution.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, models.NewValidationError("Post content cannot be empty")
	}

	if decision := s.moderation.Classify(content); !decision.Allowed {
		observability.ModerationBlocks.WithLabelValues("post").Inc()
		return nil, moderationError("post", decision.Matches)
	}

	post := &models.Post{
		Content:   content,
		UserID:    in.UserID,
		Anonymous: in.Anonymous,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts returns the newest posts with display attribution resolved.
func (s *PostService) ListPosts(ctx context.Context, limit, offset int) ([]models.PostView, error) {
	posts, err := s.postRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	views := make([]models.PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, models.PostView{
			ID:         post.ID,
			Content:    post.Content,
			AuthorName: s.attribution(ctx, post.Anonymous, post.UserID, post.User.Username),
			Anonymous:  post.Anonymous,
			CreatedAt:  post.CreatedAt,
		})
	}
	return views, nil
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.PostView, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := models.PostView{
		ID:         post.ID,
		Content:    post.Content,
		AuthorName: s.attribution(ctx, post.Anonymous, post.UserID, post.User.Username),
		Anonymous:  post.Anonymous,
		CreatedAt:  post.CreatedAt,
	}
	return &view, nil
}

// attribution resolves the display name for a post or comment author.
// Anonymous posts hide the author, and a missing author record degrades to
// the sentinel name instead of failing the listing.
func (s *PostService) attribution(ctx context.Context, anonymous bool, userID uint, preloaded string) string {
	if anonymous {
		return AnonymousAuthor
	}
	if preloaded != "" {
		return preloaded
	}
	if name, ok := s.userRepo.ResolveUsername(ctx, userID); ok {
		return name
	}
	return models.UnknownAuthor
}

// moderationError reports a blocked submission, naming the matched terms so
// the member knows what to remove.
func moderationError(kind string, matches []string) *models.AppError {
	return models.NewModerationError(fmt.Sprintf(
		"Your %s was not published because it contains content that is not allowed: %s",
		kind, strings.Join(matches, ", "),
	))
}
