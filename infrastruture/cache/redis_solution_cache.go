// Package cache keeps computed solutions in Redis so identical mazes are solved once.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/mazebot-solver/domain"
	"github.com/beka-birhanu/mazebot-solver/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	keyPrefix  = "mazebot:solution:"
	lockSuffix = ":solve_lock"
	lockExpiry = 30 * time.Second
)

// RedisSolutionCache stores bson-encoded solutions keyed by maze fingerprint.
type RedisSolutionCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisSolutionCache initializes a cache whose entries live ttlSeconds.
func NewRedisSolutionCache(client *redis.Client, ttlSeconds int) (*RedisSolutionCache, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if ttlSeconds <= 0 {
		return nil, fmt.Errorf("invalid cache ttl %d", ttlSeconds)
	}

	cache := &RedisSolutionCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	cache.locker = redsync.New(pool)
	return cache, nil
}

// Get returns the solution cached for fingerprint.
func (c *RedisSolutionCache) Get(ctx context.Context, fingerprint string) (*dmn.Solution, error) {
	raw, err := c.client.Get(ctx, solutionKey(fingerprint)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", i.ErrCacheMiss, fingerprint)
		}
		return nil, err
	}
	return decode(raw)
}

// Set caches solution under its fingerprint, replacing any earlier entry.
func (c *RedisSolutionCache) Set(ctx context.Context, solution *dmn.Solution) error {
	raw, err := encode(solution)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, solutionKey(solution.Fingerprint), raw, c.ttl).Err()
}

// Lock takes the solve mutex of fingerprint.
func (c *RedisSolutionCache) Lock(ctx context.Context, fingerprint string) (func(context.Context) error, error) {
	mutex := c.locker.NewMutex(solutionKey(fingerprint)+lockSuffix, redsync.WithExpiry(lockExpiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	return func(ctx context.Context) error {
		_, err := mutex.UnlockContext(ctx)
		return err
	}, nil
}

func solutionKey(fingerprint string) string {
	return keyPrefix + fingerprint
}

func encode(solution *dmn.Solution) ([]byte, error) {
	raw, err := bson.Marshal(solution)
	if err != nil {
		return nil, fmt.Errorf("encoding solution: %w", err)
	}
	return raw, nil
}

func decode(raw []byte) (*dmn.Solution, error) {
	var solution dmn.Solution
	if err := bson.Unmarshal(raw, &solution); err != nil {
		return nil, fmt.Errorf("decoding cached solution: %w", err)
	}
	return &solution, nil
}
