// Package session keeps login sessions in Redis, keyed by opaque tokens.
package session

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const ttl = 24 * time.Hour

type Store struct {
	rdb *redis.Client
}

func New(addr string) *Store {
	return &Store{rdb: redis.NewClient(&redis.Options{Addr: addr})}
}

// Create issues a fresh token bound to the account number.
func (s *Store) Create(ctx context.Context, number int64) (string, error) {
	token := uuid.New().String()
	err := s.rdb.Set(ctx, key(token), strconv.FormatInt(number, 10), ttl).Err()
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *Store) Lookup(ctx context.Context, token string) (int64, error) {
	v, err := s.rdb.Get(ctx, key(token)).Result()
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(v, 10, 64)
}

func (s *Store) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, key(token)).Err()
}

func key(token string) string {
	return "session:" + token
}
