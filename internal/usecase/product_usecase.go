package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ProductUsecase struct {
	products repo.ProductRepository
}

// DI
func NewProductUsecase(products repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{products: products}
}

// GET /productsの入力DTO
type ListProductsInput struct {
	Page       int
	Limit      int
	OrderBy    string
	IsOnSale   *bool
	ProviderID *int64
}

type ProviderOutput struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

type ProductOptionOutput struct {
	ID    int64  `json:"id"`
	Stock int64  `json:"stock"`
	Name  string `json:"name"`
}

type ProductOutput struct {
	ID            int64                 `json:"id"`
	Name          string                `json:"name"`
	Price         int64                 `json:"price"`
	ShippingPrice int64                 `json:"shipping_price"`
	IsOnSale      bool                  `json:"is_on_sale"`
	CanBundle     bool                  `json:"can_bundle"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
	Provider      ProviderOutput        `json:"provider"`
	Options       []ProductOptionOutput `json:"options"`
}

// options無しの商品表現（cart・orderのネスト用）
type ProductWithoutOptionsOutput struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	Price         int64          `json:"price"`
	ShippingPrice int64          `json:"shipping_price"`
	IsOnSale      bool           `json:"is_on_sale"`
	CanBundle     bool           `json:"can_bundle"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	Provider      ProviderOutput `json:"provider"`
}

type OptionWithProductOutput struct {
	ID      int64                       `json:"id"`
	Stock   int64                       `json:"stock"`
	Name    string                      `json:"name"`
	Product ProductWithoutOptionsOutput `json:"product"`
}

type ProductListOutput struct {
	Items []ProductOutput `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

func (u *ProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if in.Page < 1 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	items, total, err := u.products.ListPublic(ctx, repo.ProductListQuery{
		Page:       in.Page,
		Limit:      in.Limit,
		OrderBy:    in.OrderBy,
		IsOnSale:   in.IsOnSale,
		ProviderID: in.ProviderID,
	})
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]ProductOutput, 0, len(items))
	for _, p := range items {
		outs = append(outs, toProductOutput(p))
	}

	return ProductListOutput{Items: outs, Total: total, Page: in.Page, Limit: in.Limit}, nil
}

func toProviderOutput(p model.Provider) ProviderOutput {
	return ProviderOutput{
		ID:          p.ID,
		Name:        p.Name,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
	}
}

func toProductOutput(p model.Product) ProductOutput {
	options := make([]ProductOptionOutput, 0, len(p.Options))
	for _, opt := range p.Options {
		options = append(options, ProductOptionOutput{
			ID:    opt.ID,
			Stock: opt.Stock,
			Name:  opt.Name,
		})
	}

	return ProductOutput{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		ShippingPrice: p.ShippingPrice,
		IsOnSale:      p.IsOnSale,
		CanBundle:     p.CanBundle,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Provider:      toProviderOutput(p.Provider),
		Options:       options,
	}
}

func toOptionWithProductOutput(opt model.ProductOption) OptionWithProductOutput {
	p := opt.Product
	return OptionWithProductOutput{
		ID:    opt.ID,
		Stock: opt.Stock,
		Name:  opt.Name,
		Product: ProductWithoutOptionsOutput{
			ID:            p.ID,
			Name:          p.Name,
			Price:         p.Price,
			ShippingPrice: p.ShippingPrice,
			IsOnSale:      p.IsOnSale,
			CanBundle:     p.CanBundle,
			CreatedAt:     p.CreatedAt,
			UpdatedAt:     p.UpdatedAt,
			Provider:      toProviderOutput(p.Provider),
		},
	}
}
