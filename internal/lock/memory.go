package lock

import (
	"context"
	"sync"
	"time"
)

// redis無しで動かすためのインメモリ実装（dev・テスト用）。
// TTL切れのキーはAcquire時に掃除する。
type MemoryLocker struct {
	mu      sync.Mutex
	expires map[string]time.Time
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{expires: map[string]time.Time{}}
}

func (l *MemoryLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if exp, ok := l.expires[key]; ok && now.Before(exp) {
		return false, nil
	}

	l.expires[key] = now.Add(ttl)
	return true, nil
}

func (l *MemoryLocker) Release(ctx context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.expires, key)
	return nil
}
