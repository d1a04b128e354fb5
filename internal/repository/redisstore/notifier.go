package redisstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gdugdh24/lifestyle-connect/internal/domain"
	"github.com/gdugdh24/lifestyle-connect/internal/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const postsChannel = "community:posts"

type postNotifier struct {
	client *redis.Client
	logger *zap.Logger
}

func NewPostNotifier(client *redis.Client, logger *zap.Logger) repository.PostNotifier {
	return &postNotifier{client: client, logger: logger}
}

func (n *postNotifier) Publish(ctx context.Context, post *domain.Post) error {
	raw, err := json.Marshal(post)
	if err != nil {
		return fmt.Errorf("failed to encode post: %w", err)
	}
	return n.client.Publish(ctx, postsChannel, raw).Err()
}

// Subscribe streams posts until ctx is done. The returned channel is closed
// when the subscription ends.
func (n *postNotifier) Subscribe(ctx context.Context) (<-chan domain.Post, error) {
	sub := n.client.Subscribe(ctx, postsChannel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", postsChannel, err)
	}

	out := make(chan domain.Post)
	go func() {
		defer close(out)
		defer sub.Close()

		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var post domain.Post
				if err := json.Unmarshal([]byte(msg.Payload), &post); err != nil {
					n.logger.Warn("dropping malformed post notification", zap.Error(err))
					continue
				}
				select {
				case out <- post:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
