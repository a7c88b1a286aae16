package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyStore records Idempotency-Key → created item id mappings so a
// retried report submission returns the original item instead of inserting
// a duplicate. Key format: idem:<key>
type IdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore creates an IdempotencyStore wrapping the given client.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Lookup returns the item id recorded for key, or "" when the key is unseen.
func (s *IdempotencyStore) Lookup(ctx context.Context, key string) (string, error) {
	id, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("idempotency lookup: %w", err)
	}
	return id, nil
}

// Remember records the item created for key (expires after idempotencyTTL).
func (s *IdempotencyStore) Remember(ctx context.Context, key, itemID string) error {
	return s.client.Set(ctx, s.key(key), itemID, idempotencyTTL).Err()
}

func (s *IdempotencyStore) key(key string) string {
	return "idem:" + key
}
