package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisad "restful_booker/internal/adapters/redis"
)

func newTokens(t *testing.T) (*redisad.Tokens, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	tk := redisad.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = tk.Close() })
	return tk, mr
}

func TestTokens_PutValidDelete(t *testing.T) {
	tk, mr := newTokens(t)
	ctx := context.Background()
	require.NoError(t, tk.Ping(ctx))

	ok, err := tk.Valid(ctx, "abcdefghijklmnop")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, tk.Put(ctx, "abcdefghijklmnop", time.Hour))
	assert.True(t, mr.Exists("token:abcdefghijklmnop"))

	ok, err = tk.Valid(ctx, "abcdefghijklmnop")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, tk.Delete(ctx, "abcdefghijklmnop"))
	ok, err = tk.Valid(ctx, "abcdefghijklmnop")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTokens_Expire(t *testing.T) {
	tk, mr := newTokens(t)
	ctx := context.Background()

	require.NoError(t, tk.Put(ctx, "short", time.Minute))
	require.NoError(t, tk.Put(ctx, "forever", 0))
	mr.FastForward(2 * time.Minute)

	ok, err := tk.Valid(ctx, "short")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = tk.Valid(ctx, "forever")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTokens_EmptyTokenNeverValid(t *testing.T) {
	tk, _ := newTokens(t)
	ok, err := tk.Valid(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTokens_ServerDown(t *testing.T) {
	tk, mr := newTokens(t)
	mr.Close()
	_, err := tk.Valid(context.Background(), "x")
	assert.Error(t, err)
}
