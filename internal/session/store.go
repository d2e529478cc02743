package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"taskhub/internal/auth"
)

var ErrNotFound = errors.New("session not found")

// Store keeps one redis record per live session, keyed by the token's jti.
// A token whose record is gone (logout or expiry) no longer authenticates.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func key(jti string) string {
	return "session:" + jti
}

func (s *Store) Create(ctx context.Context, jti string, userID int) error {
	return s.rdb.Set(ctx, key(jti), strconv.Itoa(userID), auth.SessionTTL).Err()
}

// Lookup returns the user ID bound to a live session.
func (s *Store) Lookup(ctx context.Context, jti string) (int, error) {
	val, err := s.rdb.Get(ctx, key(jti)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up session: %w", err)
	}

	userID, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("corrupt session record: %w", err)
	}
	return userID, nil
}

func (s *Store) Revoke(ctx context.Context, jti string) error {
	return s.rdb.Del(ctx, key(jti)).Err()
}
