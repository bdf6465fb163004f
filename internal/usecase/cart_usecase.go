package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// CartUsecase は /users/me/carts の業務ロジックです。
type CartUsecase struct {
	carts    repo.CartRepository
	products repo.ProductRepository
}

// DI
func NewCartUsecase(carts repo.CartRepository, products repo.ProductRepository) *CartUsecase {
	return &CartUsecase{carts: carts, products: products}
}

type AddCartInput struct {
	ProductOptionID int64
	Quantity        int64
}

type CartOutput struct {
	ID            int64                   `json:"id"`
	UserID        int64                   `json:"user_id"`
	Quantity      int64                   `json:"quantity"`
	ProductOption OptionWithProductOutput `json:"product_option"`
}

type CartListOutput struct {
	Items []CartOutput `json:"items"`
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
}

// 新しい順でページング
func (u *CartUsecase) ListCarts(ctx context.Context, userID int64, page int, limit int) (CartListOutput, error) {
	if userID <= 0 {
		return CartListOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if page < 1 {
		return CartListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if limit < 1 || limit > 100 {
		return CartListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	items, total, err := u.carts.ListByUserID(ctx, userID, page, limit)
	if err != nil {
		return CartListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]CartOutput, 0, len(items))
	for _, c := range items {
		outs = append(outs, toCartOutput(c))
	}

	return CartListOutput{Items: outs, Total: total, Page: page, Limit: limit}, nil
}

// 追加時は在庫チェックだけで、在庫の引き当てはしない。
// 実際の引き当てはチェックアウト（order側）が行う。
func (u *CartUsecase) AddToCart(ctx context.Context, userID int64, in AddCartInput) (CartOutput, error) {
	if userID <= 0 {
		return CartOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ProductOptionID <= 0 {
		return CartOutput{}, NewFieldError("product_option_id", "이 필드는 필수 항목입니다.")
	}
	if in.Quantity < 1 {
		return CartOutput{}, NewFieldError("quantity", "0보다 큰 값을 입력 해주세요.")
	}

	// 1. オプションが存在するか
	opt, err := u.products.FindOptionByID(ctx, in.ProductOptionID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartOutput{}, NewFieldError(
			"product_option_id",
			fmt.Sprintf("유효하지 않은 pk \"%d\" - 객체가 존재하지 않습니다.", in.ProductOptionID),
		)
	}
	if err != nil {
		return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// 2. 既にカートに入っていないか
	exists, err := u.carts.ExistsByUserAndOption(ctx, userID, in.ProductOptionID)
	if err != nil {
		return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if exists {
		return CartOutput{}, NewNonFieldError("이미 장바구니에 있는 상품 옵션입니다.")
	}

	// 3. 在庫が足りるか
	if in.Quantity > opt.Stock {
		return CartOutput{}, NewNonFieldError("해당 옵션의 재고가 부족합니다.")
	}

	created, err := u.carts.Create(ctx, model.Cart{
		UserID:          userID,
		ProductOptionID: in.ProductOptionID,
		Quantity:        in.Quantity,
	})
	if err != nil {
		return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toCartOutput(created), nil
}

func toCartOutput(c model.Cart) CartOutput {
	return CartOutput{
		ID:            c.ID,
		UserID:        c.UserID,
		Quantity:      c.Quantity,
		ProductOption: toOptionWithProductOutput(c.ProductOption),
	}
}
