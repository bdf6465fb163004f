package lock

import (
	"context"
	"fmt"
	"time"
)

// ユーザー×操作種別ごとの排他ロック。
// Acquireは「無ければ置く」だけの単純なプリミティブで、
// 同一ユーザーの連打を潰すのが目的。在庫の正しさはDBトランザクション側で守る。
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// 操作ごとのロックキー。ユーザーが違えば絶対に衝突しない。
func CartCreateKey(userID int64) string {
	return fmt.Sprintf("cart_create_lock:user:%d", userID)
}

func OrderCreateKey(userID int64) string {
	return fmt.Sprintf("order_create_lock:user:%d", userID)
}
