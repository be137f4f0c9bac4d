package service

import (
	"context"
	"strings"

	"wecare/internal/models"
	"wecare/internal/observability"
	"wecare/internal/repository"
	"wecare/internal/safety"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
	moderation  *safety.ModerationEngine
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	moderation *safety.ModerationEngine,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		moderation:  moderation,
	}
}

type CreateCommentInput struct {
	UserID  uint
	PostID  uint
	Content string
}

// CreateComment attaches a moderated reply to an existing post.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, models.NewValidationError("Comment content cannot be empty")
	}

	// The parent must exist before moderation runs, so a blocked comment on
	// a missing post still reports the right error.
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	if decision := s.moderation.Classify(content); !decision.Allowed {
		observability.ModerationBlocks.WithLabelValues("comment").Inc()
		return nil, moderationError("comment", decision.Matches)
	}

	comment := &models.Comment{
		Content: content,
		UserID:  in.UserID,
		PostID:  in.PostID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns a post's thread oldest-first with attribution resolved.
// Comments are never anonymous; only the top-level post supports that flag.
func (s *CommentService) ListComments(ctx context.Context, postID uint, limit, offset int) ([]models.CommentView, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID, limit, offset)
	if err != nil {
		return nil, err
	}

	views := make([]models.CommentView, 0, len(comments))
	for _, comment := range comments {
		name := comment.User.Username
		if name == "" {
			if resolved, ok := s.userRepo.ResolveUsername(ctx, comment.UserID); ok {
				name = resolved
			} else {
				name = models.UnknownAuthor
			}
		}
		views = append(views, models.CommentView{
			ID:         comment.ID,
			PostID:     comment.PostID,
			Content:    comment.Content,
			AuthorName: name,
			CreatedAt:  comment.CreatedAt,
		})
	}
	return views, nil
}
