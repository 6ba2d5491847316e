package memory

import (
	"context"
	"sync"
	"time"

	"restful_booker/internal/adapters/observability"
	"restful_booker/internal/domain"
)

// Tokens is an expiring token set. A zero ttl never expires.
type Tokens struct {
	mu  sync.Mutex
	exp map[string]time.Time
	now func() time.Time
}

var _ domain.TokenStore = (*Tokens)(nil)

func NewTokens() *Tokens {
	return &Tokens{exp: map[string]time.Time{}, now: time.Now}
}

func (t *Tokens) Put(_ context.Context, token string, ttl time.Duration) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	var at time.Time
	if ttl > 0 {
		at = t.now().Add(ttl)
	}
	t.exp[token] = at
	observability.ObserveToken("memory", "put")
	return nil
}

func (t *Tokens) Valid(_ context.Context, token string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	at, ok := t.exp[token]
	if !ok {
		observability.ObserveToken("memory", "miss")
		return false, nil
	}
	if !at.IsZero() && !t.now().Before(at) {
		delete(t.exp, token)
		observability.ObserveToken("memory", "miss")
		return false, nil
	}
	observability.ObserveToken("memory", "hit")
	return true, nil
}

func (t *Tokens) Delete(_ context.Context, token string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.exp, token)
	observability.ObserveToken("memory", "del")
	return nil
}
