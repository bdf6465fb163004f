package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 公開商品一覧（provider・options込み）
func (r *ProductGormRepository) ListPublic(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	base := r.db.WithContext(ctx).Model(&model.Product{})

	if q.IsOnSale != nil {
		base = base.Where("is_on_sale = ?", *q.IsOnSale)
	}
	if q.ProviderID != nil {
		base = base.Where("provider_id = ?", *q.ProviderID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return []model.Product{}, 0, err
	}

	order := "id desc"
	switch q.OrderBy {
	case "id":
		order = "id asc"
	case "-id":
		order = "id desc"
	case "name":
		order = "name asc"
	case "-name":
		order = "name desc"
	}

	offset := (q.Page - 1) * q.Limit

	var items []model.Product
	err := base.
		Preload("Provider").
		Preload("Options").
		Order(order).
		Limit(q.Limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return []model.Product{}, 0, err
	}

	return items, total, nil
}

// オプションをproduct・provider込みで取得
func (r *ProductGormRepository) FindOptionByID(ctx context.Context, optionID int64) (model.ProductOption, error) {
	var opt model.ProductOption
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Provider").
		Where("id = ?", optionID).
		First(&opt).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ProductOption{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ProductOption{}, err
	}
	return opt, nil
}
