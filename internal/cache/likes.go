// Package cache keeps post likes in redis sets keyed posts:likes:<post id>.
package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"socialapi/internal/config"
)

const likeKeyPrefix = "posts:likes:"

// LikeStore records which members liked which posts.
type LikeStore interface {
	// Toggle adds memberID to the post's like set, or removes it when already present.
	// It reports whether the member likes the post afterwards and the new like count.
	Toggle(ctx context.Context, postID, memberID int64) (bool, int64, error)
	Count(ctx context.Context, postID int64) (int64, error)
	Clear(ctx context.Context, postID int64) error
}

// NewRedisClient opens a client and verifies it with PING.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}

type RedisLikeStore struct {
	rdb redis.Cmdable
}

func NewRedisLikeStore(rdb redis.Cmdable) *RedisLikeStore {
	return &RedisLikeStore{rdb: rdb}
}

var _ LikeStore = (*RedisLikeStore)(nil)

func likeKey(postID int64) string {
	return likeKeyPrefix + strconv.FormatInt(postID, 10)
}

// toggleLikeSrc flips membership of ARGV[1] in the set KEYS[1] and returns
// {liked, count} in one atomic step.
const toggleLikeSrc = `
if redis.call('SADD', KEYS[1], ARGV[1]) == 1 then
  return {1, redis.call('SCARD', KEYS[1])}
end
redis.call('SREM', KEYS[1], ARGV[1])
return {0, redis.call('SCARD', KEYS[1])}
`

var toggleLike = redis.NewScript(toggleLikeSrc)

func (s *RedisLikeStore) Toggle(ctx context.Context, postID, memberID int64) (bool, int64, error) {
	res, err := toggleLike.Run(ctx, s.rdb, []string{likeKey(postID)}, memberID).Int64Slice()
	if err != nil {
		return false, 0, fmt.Errorf("toggle like on post %d: %w", postID, err)
	}
	if len(res) != 2 {
		return false, 0, fmt.Errorf("toggle like on post %d: unexpected reply %v", postID, res)
	}
	return res[0] == 1, res[1], nil
}

func (s *RedisLikeStore) Count(ctx context.Context, postID int64) (int64, error) {
	n, err := s.rdb.SCard(ctx, likeKey(postID)).Result()
	if err != nil {
		return 0, fmt.Errorf("count likes of post %d: %w", postID, err)
	}
	return n, nil
}

func (s *RedisLikeStore) Clear(ctx context.Context, postID int64) error {
	if err := s.rdb.Del(ctx, likeKey(postID)).Err(); err != nil {
		return fmt.Errorf("clear likes of post %d: %w", postID, err)
	}
	return nil
}
