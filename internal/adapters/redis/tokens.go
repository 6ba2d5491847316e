package redisad

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"restful_booker/internal/adapters/observability"
	"restful_booker/internal/domain"
)

const keyPrefix = "token:"

// Tokens keeps session tokens in redis, expiring them with the key TTL.
type Tokens struct{ c *redis.Client }

var _ domain.TokenStore = (*Tokens)(nil)

func New(addr, pass string, db int) *Tokens {
	return &Tokens{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

func (r *Tokens) Ping(ctx context.Context) error { return r.c.Ping(ctx).Err() }

func (r *Tokens) Close() error { return r.c.Close() }

// Put stores the token; ttl <= 0 keeps it until logout.
func (r *Tokens) Put(ctx context.Context, token string, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	observability.ObserveToken("redis", "put")
	return r.c.Set(ctx, keyPrefix+token, 1, ttl).Err()
}

func (r *Tokens) Valid(ctx context.Context, token string) (bool, error) {
	if token == "" {
		observability.ObserveToken("redis", "miss")
		return false, nil
	}
	n, err := r.c.Exists(ctx, keyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	if n == 0 {
		observability.ObserveToken("redis", "miss")
		return false, nil
	}
	observability.ObserveToken("redis", "hit")
	return true, nil
}

func (r *Tokens) Delete(ctx context.Context, token string) error {
	observability.ObserveToken("redis", "del")
	return r.c.Del(ctx, keyPrefix+token).Err()
}
