package community

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdugdh24/lifestyle-connect/internal/domain"
	"github.com/gdugdh24/lifestyle-connect/internal/repository"
	"go.uber.org/zap"
)

type CommunityUseCase struct {
	postRepo repository.PostRepository
	notifier repository.PostNotifier
	logger   *zap.Logger
}

func NewCommunityUseCase(
	postRepo repository.PostRepository,
	notifier repository.PostNotifier,
	logger *zap.Logger,
) *CommunityUseCase {
	return &CommunityUseCase{
		postRepo: postRepo,
		notifier: notifier,
		logger:   logger,
	}
}

// CreatePostRequest represents a new prayer request or testimonial
type CreatePostRequest struct {
	Kind domain.PostKind `json:"kind" binding:"required,post_kind"`
	Body string          `json:"body" binding:"required,min=1,max=2000"`
}

// CreatePost stores the post and pushes it to live subscribers
func (uc *CommunityUseCase) CreatePost(ctx context.Context, authorID int, req *CreatePostRequest) (*domain.Post, error) {
	body := strings.TrimSpace(req.Body)
	if !req.Kind.Valid() || body == "" {
		return nil, domain.ErrInvalidInput
	}

	post := &domain.Post{
		AuthorID: authorID,
		Kind:     req.Kind,
		Body:     body,
	}
	if err := uc.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	if err := uc.notifier.Publish(ctx, post); err != nil {
		uc.logger.Warn("failed to publish post", zap.Int("post_id", post.ID), zap.Error(err))
	}

	return post, nil
}

// ListPosts returns posts of one kind, newest first
func (uc *CommunityUseCase) ListPosts(ctx context.Context, kind domain.PostKind, limit, offset int) ([]*domain.Post, error) {
	if !kind.Valid() {
		return nil, domain.ErrInvalidInput
	}
	posts, err := uc.postRepo.List(ctx, kind, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// Subscribe streams new posts until ctx is done
func (uc *CommunityUseCase) Subscribe(ctx context.Context) (<-chan domain.Post, error) {
	return uc.notifier.Subscribe(ctx)
}
