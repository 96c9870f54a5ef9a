package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"time"

	"emy-orders/internal/domain/cart"
	"emy-orders/internal/pkg/config"
	"emy-orders/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps one cart per browsing session under "cart:<session>".
// Carts expire with their session; a miss is not an error, it resolves
// to a fresh empty cart.
type RedisStore struct {
	client  *redis.Client
	baseTTL time.Duration
}

func NewRedisStore(client *redis.Client, cfg config.RedisConfig) *RedisStore {
	return &RedisStore{
		client:  client,
		baseTTL: cfg.CartTTL,
	}
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func (r *RedisStore) Get(ctx context.Context, sessionID string) (*cart.Cart, error) {
	data, err := r.client.Get(ctx, cacheKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return cart.New(), nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "redis get failed")
	}

	var c cart.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errs.Wrap(err, "unmarshal cart failed")
	}
	if c.Entries == nil {
		c.Entries = make(map[string]cart.Entry)
	}
	return &c, nil
}

func (r *RedisStore) Save(ctx context.Context, sessionID string, c *cart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return errs.Wrap(err, "marshal cart failed")
	}

	// Jitter spreads expirations so a burst of sessions created together
	// does not expire together.
	jitter := time.Duration(rand.Intn(300)) * time.Second
	if err := r.client.Set(ctx, cacheKey(sessionID), data, r.baseTTL+jitter).Err(); err != nil {
		return errs.Wrap(err, "redis set failed")
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, cacheKey(sessionID)).Err(); err != nil {
		return errs.Wrap(err, "redis delete failed")
	}
	return nil
}

func cacheKey(sessionID string) string {
	return "cart:" + sessionID
}
