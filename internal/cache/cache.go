package cache

//go:generate mockgen -destination=../../mocks/mock_cache.go -package=mocks github.com/pribylovaa/credit-dispute/internal/cache StatsCache

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/pribylovaa/credit-dispute/internal/models"
	"github.com/redis/go-redis/v9"
)

var (
	// ErrStale — the cache was invalidated after the version passed to Set
	// was read; the value is not stored.
	ErrStale = errors.New("stats changed since read")

	// ErrBadTTL — Set called with a non-positive TTL.
	ErrBadTTL = errors.New("ttl must be positive")
)

// StatsCache — cache of the admin dispute overview.
//
// Every Invalidate bumps a version counter. A reader takes Version before
// computing fresh stats and hands it to Set, which stores the value only if
// no invalidation happened in between.
type StatsCache interface {
	// Get returns the cached stats and whether they were present.
	Get(ctx context.Context) (*models.DisputeStats, bool, error)
	// Version returns the current invalidation counter.
	Version(ctx context.Context) (int64, error)
	// Set stores stats with the given TTL if the counter still equals version.
	Set(ctx context.Context, s *models.DisputeStats, version int64, ttl time.Duration) error
	// Invalidate drops the cached value and bumps the counter.
	Invalidate(ctx context.Context) error
	// Close closes the Redis client.
	Close() error
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
}

const (
	fieldTotal        = "total"
	fieldRecent       = "recent"
	fieldStatusPrefix = "s:"
)

// NewRedisCache creates a Redis client from a URL (e.g. redis://:pass@host:6379/0).
// An empty prefix defaults to "disputes:".
func NewRedisCache(ctx context.Context, redisURL, prefix string) (StatsCache, error) {
	if prefix == "" {
		prefix = "disputes:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return &redisCache{rdb: rdb, prefix: prefix}, nil
}

func (c *redisCache) key() string        { return c.prefix + "stats" }
func (c *redisCache) versionKey() string { return c.prefix + "stats:version" }

// Stored as a Redis hash: total, recent and s:<status> per status.
func (c *redisCache) Get(ctx context.Context) (*models.DisputeStats, bool, error) {
	m, err := c.rdb.HGetAll(ctx, c.key()).Result()
	if err != nil {
		return nil, false, err
	}

	if len(m) == 0 {
		return nil, false, nil
	}

	stats := &models.DisputeStats{ByStatus: make(map[models.DisputeStatus]int64, len(models.DisputeStatuses))}
	for _, st := range models.DisputeStatuses {
		stats.ByStatus[st] = 0
	}

	for k, v := range m {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, false, err
		}

		switch {
		case k == fieldTotal:
			stats.Total = n
		case k == fieldRecent:
			stats.Recent = n
		case strings.HasPrefix(k, fieldStatusPrefix):
			stats.ByStatus[models.DisputeStatus(strings.TrimPrefix(k, fieldStatusPrefix))] = n
		}
	}

	return stats, true, nil
}

func (c *redisCache) Version(ctx context.Context) (int64, error) {
	v, err := c.rdb.Get(ctx, c.versionKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	return v, err
}

func (c *redisCache) Set(ctx context.Context, s *models.DisputeStats, version int64, ttl time.Duration) error {
	if ttl <= 0 {
		return ErrBadTTL
	}

	kv := map[string]string{
		fieldTotal:  strconv.FormatInt(s.Total, 10),
		fieldRecent: strconv.FormatInt(s.Recent, 10),
	}
	for st, n := range s.ByStatus {
		kv[fieldStatusPrefix+string(st)] = strconv.FormatInt(n, 10)
	}

	err := c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, c.versionKey()).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != version {
			return ErrStale
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, c.key())
			pipe.HSet(ctx, c.key(), kv)
			pipe.Expire(ctx, c.key(), ttl)
			return nil
		})
		return err
	}, c.versionKey())

	// WATCH fired: an Invalidate ran between the check and EXEC.
	if errors.Is(err, redis.TxFailedErr) {
		return ErrStale
	}

	return err
}

func (c *redisCache) Invalidate(ctx context.Context) error {
	pipe := c.rdb.TxPipeline()
	pipe.Del(ctx, c.key())
	pipe.Incr(ctx, c.versionKey())

	_, err := pipe.Exec(ctx)
	return err
}

func (c *redisCache) Close() error { return c.rdb.Close() }
