package server

import (
	"app/internal/config"
	"app/internal/handler"
	"app/internal/lock"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Newはechoを組み立ててルートを登録する。
func New(
	cfg config.Config,
	locker lock.Locker,
	authH *handler.AuthHandler,
	productH *handler.ProductHandler,
	cartH *handler.CartHandler,
	orderH *handler.OrderHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	authH.RegisterRoutes(e)
	productH.RegisterRoutes(e)
	cartH.RegisterRoutes(e, cfg, locker)
	orderH.RegisterRoutes(e, cfg, locker)

	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
