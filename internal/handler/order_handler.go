package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/lock"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type CreateOrderRequest struct {
	CartIDs             []int64 `json:"cart_ids"`
	ShippingAddress     string  `json:"shipping_address"`
	ShippingRequestNote string  `json:"shipping_request_note"`
	PayMethod           string  `json:"pay_method"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, locker lock.Locker) {
	g := e.Group("/users/me/orders")
	g.Use(middleware.AuthJWT(cfg))

	g.POST("", h.create, middleware.UserLock(locker, lock.OrderCreateKey, lockTTL))
}

func (h *OrderHandler) create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateOrder(c.Request().Context(), userID, usecase.CreateOrderInput{
		CartIDs:             req.CartIDs,
		ShippingAddress:     req.ShippingAddress,
		ShippingRequestNote: req.ShippingRequestNote,
		PayMethod:           req.PayMethod,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}
