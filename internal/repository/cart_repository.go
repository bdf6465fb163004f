package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartRepository interface {
	Create(ctx context.Context, c model.Cart) (model.Cart, error)

	// (user, product_option) は一意
	ExistsByUserAndOption(ctx context.Context, userID int64, optionID int64) (bool, error)

	ListByUserID(ctx context.Context, userID int64, page int, limit int) ([]model.Cart, int64, error)

	// 本人のcartだけをoption/product/provider込みで取得。
	// 存在しないidや他人のidは結果に含まれない（件数差で検出する）。
	FindByIDsForUser(ctx context.Context, userID int64, ids []int64) ([]model.Cart, error)
}
