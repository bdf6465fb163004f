package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (model.Order, error)

	// 注文明細の一括作成
	CreateProducts(ctx context.Context, products []model.OrderProduct) ([]model.OrderProduct, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment model.Payment) (model.Payment, error)
}
