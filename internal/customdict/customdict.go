package customdict

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
)

const defaultKey = "sentcorrect:custom_words"

// Store keeps user-supplied dictionary words in a Redis set. Words from the
// store are merged into the base vocabulary when the corrector is built, so
// they are never dropped by frequency filtering.
type Store struct {
	client *redis.Client
	key    string
}

// New creates a Store backed by the provided Redis client.
func New(client *redis.Client) *Store {
	return &Store{client: client, key: defaultKey}
}

// Add inserts a lowercased word into the store.
func (s *Store) Add(ctx context.Context, word string) error {
	return s.client.SAdd(ctx, s.key, strings.ToLower(word)).Err()
}

// Remove deletes a word from the store.
func (s *Store) Remove(ctx context.Context, word string) error {
	return s.client.SRem(ctx, s.key, strings.ToLower(word)).Err()
}

// All returns every word in the store.
func (s *Store) All(ctx context.Context) ([]string, error) {
	return s.client.SMembers(ctx, s.key).Result()
}

// Count returns the number of stored words.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.client.SCard(ctx, s.key).Result()
}
