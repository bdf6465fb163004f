package middleware

import (
	"net/http"
	"time"

	"app/internal/lock"

	"github.com/labstack/echo/v4"
)

// ロックが取れなかったときのレスポンスbody。
// JSONオブジェクトではなく文字列そのものを返す（既存クライアントとの互換）。
const LockedMessage = "처리중입니다."

// 同一ユーザーからの連打を1リクエストに潰すガード。
// 取れなければ何もせず423。取れたらどの経路で抜けても必ず解放する。
// ユーザーが違えばキーが違うので待たされることはない。
func UserLock(locker lock.Locker, key func(userID int64) string, ttl time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := c.Get(CtxUserIDKey).(int64)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			ctx := c.Request().Context()
			lockKey := key(userID)

			acquired, err := locker.Acquire(ctx, lockKey, ttl)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, errorJSON("lock error"))
			}
			if !acquired {
				return c.JSON(http.StatusLocked, LockedMessage)
			}

			defer func() {
				if err := locker.Release(ctx, lockKey); err != nil {
					c.Logger().Errorf("release lock %s: %v", lockKey, err)
				}
			}()

			return next(c)
		}
	}
}
