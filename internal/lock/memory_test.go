package lock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test: 取得中のキーは2回目が弾かれ、解放すればまた取れる
func TestMemoryLockerAcquireAndRelease(t *testing.T) {
	l := NewMemoryLocker()
	ctx := context.Background()
	key := OrderCreateKey(1)

	ok, err := l.Acquire(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.Acquire(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, l.Release(ctx, key))

	ok, err = l.Acquire(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

// Test: キーが違えば（ユーザー・操作が違えば）干渉しない
func TestMemoryLockerIndependentKeys(t *testing.T) {
	l := NewMemoryLocker()
	ctx := context.Background()

	ok, err := l.Acquire(ctx, OrderCreateKey(1), time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.Acquire(ctx, OrderCreateKey(2), time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.Acquire(ctx, CartCreateKey(1), time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

// Test: TTLが切れたキーは取り直せる
func TestMemoryLockerTTLExpiry(t *testing.T) {
	l := NewMemoryLocker()
	ctx := context.Background()
	key := CartCreateKey(1)

	ok, err := l.Acquire(ctx, key, 10*time.Millisecond)
	require.NoError(t, err)
	assert.True(t, ok)

	time.Sleep(20 * time.Millisecond)

	ok, err = l.Acquire(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLockKeys(t *testing.T) {
	assert.Equal(t, "cart_create_lock:user:42", CartCreateKey(42))
	assert.Equal(t, "order_create_lock:user:42", OrderCreateKey(42))
}
