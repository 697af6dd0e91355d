package redissvc

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisService struct {
	rdb *redis.Client
}

func NewRedisService(addr string) *RedisService {
	return &RedisService{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (s *RedisService) Rdb() *redis.Client {
	return s.rdb
}

// Ping reports whether the server answers within a short timeout.
func (s *RedisService) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return s.rdb.Ping(ctx).Err()
}

func (s *RedisService) Close() error {
	return s.rdb.Close()
}
