package community

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gdugdh24/lifestyle-connect/internal/domain"
)

type stubPostRepo struct {
	posts []*domain.Post
}

func (r *stubPostRepo) Create(ctx context.Context, post *domain.Post) error {
	post.ID = len(r.posts) + 1
	post.CreatedAt = time.Now()
	r.posts = append(r.posts, post)
	return nil
}

func (r *stubPostRepo) List(ctx context.Context, kind domain.PostKind, limit, offset int) ([]*domain.Post, error) {
	out := []*domain.Post{}
	for _, p := range r.posts {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out, nil
}

type stubNotifier struct {
	published []*domain.Post
	err       error
	ch        chan domain.Post
}

func (n *stubNotifier) Publish(ctx context.Context, post *domain.Post) error {
	n.published = append(n.published, post)
	return n.err
}

func (n *stubNotifier) Subscribe(ctx context.Context) (<-chan domain.Post, error) {
	return n.ch, nil
}

func TestCreatePost_PublishesAfterStore(t *testing.T) {
	repo := &stubPostRepo{}
	notifier := &stubNotifier{}
	uc := NewCommunityUseCase(repo, notifier, zap.NewNop())

	post, err := uc.CreatePost(context.Background(), 3, &CreatePostRequest{Kind: domain.PostKindPrayer, Body: "  Pray for my exams  "})
	require.NoError(t, err)
	assert.Equal(t, 1, post.ID)
	assert.Equal(t, "Pray for my exams", post.Body)
	require.Len(t, notifier.published, 1)
	assert.Equal(t, post.ID, notifier.published[0].ID)
}

func TestCreatePost_PublishFailureIsNotFatal(t *testing.T) {
	repo := &stubPostRepo{}
	uc := NewCommunityUseCase(repo, &stubNotifier{err: errors.New("redis down")}, zap.NewNop())

	_, err := uc.CreatePost(context.Background(), 3, &CreatePostRequest{Kind: domain.PostKindTestimonial, Body: "We met here!"})
	require.NoError(t, err)
	assert.Len(t, repo.posts, 1)
}

func TestCreatePost_Invalid(t *testing.T) {
	uc := NewCommunityUseCase(&stubPostRepo{}, &stubNotifier{}, zap.NewNop())

	_, err := uc.CreatePost(context.Background(), 3, &CreatePostRequest{Kind: "event", Body: "Braai on Saturday"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreatePost(context.Background(), 3, &CreatePostRequest{Kind: domain.PostKindPrayer, Body: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListPosts(t *testing.T) {
	repo := &stubPostRepo{}
	uc := NewCommunityUseCase(repo, &stubNotifier{}, zap.NewNop())
	ctx := context.Background()

	_, err := uc.CreatePost(ctx, 1, &CreatePostRequest{Kind: domain.PostKindPrayer, Body: "a"})
	require.NoError(t, err)
	_, err = uc.CreatePost(ctx, 1, &CreatePostRequest{Kind: domain.PostKindTestimonial, Body: "b"})
	require.NoError(t, err)

	posts, err := uc.ListPosts(ctx, domain.PostKindPrayer, 10, 0)
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	_, err = uc.ListPosts(ctx, "vendor", 10, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
