package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Store struct {
	rdb *redis.Client
}

func New(addr, password string, db int) *Store {
	return &Store{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.rdb.Close()
}

func blogViewKey(slug string) string {
	return fmt.Sprintf("blog:views:%s", slug)
}

// IncrBlogView bumps the view counter for a published post and returns the new
// total.
func (s *Store) IncrBlogView(ctx context.Context, slug string) (int64, error) {
	cctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.rdb.Incr(cctx, blogViewKey(slug)).Result()
}

func (s *Store) BlogViews(ctx context.Context, slug string) (int64, error) {
	cctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	n, err := s.rdb.Get(cctx, blogViewKey(slug)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return n, err
}
