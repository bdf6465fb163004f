package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 一覧検索
type ProductListQuery struct {
	Page       int
	Limit      int
	OrderBy    string // id / -id / name / -name
	IsOnSale   *bool
	ProviderID *int64
}

// 商品の永続化（取得）だけを約束。
type ProductRepository interface {
	ListPublic(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	FindOptionByID(ctx context.Context, optionID int64) (model.ProductOption, error)
}
