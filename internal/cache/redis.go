package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/barber-booking/internal/config"
)

// ErrMiss is returned by Get when nothing is cached under the key.
var ErrMiss = errors.New("cache miss")

// NewRedisClient returns nil when Redis is not configured or does not
// answer; callers then run without a cache.
func NewRedisClient(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, response cache disabled")
		_ = client.Close()
		return nil
	}
	return client
}

// Store keeps response bodies under a generation number. Bumping the
// generation invalidates every entry at once.
type Store struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

func NewStore(rdb *redis.Client, prefix string, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &Store{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (s *Store) genKey() string {
	return s.prefix + ":gen"
}

func (s *Store) Generation(ctx context.Context) (int64, error) {
	v, err := s.rdb.Get(ctx, s.genKey()).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(v, 10, 64)
}

func (s *Store) Bump(ctx context.Context) error {
	return s.rdb.Incr(ctx, s.genKey()).Err()
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.rdb.Get(ctx, s.prefix+":"+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	return b, err
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.rdb.Set(ctx, s.prefix+":"+key, value, s.ttl).Err()
}
