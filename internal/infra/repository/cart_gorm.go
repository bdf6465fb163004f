package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

func (r *CartGormRepository) Create(ctx context.Context, c model.Cart) (model.Cart, error) {
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return model.Cart{}, err
	}

	// レスポンス用にoption/product/providerを読み直す
	var created model.Cart
	err := r.db.WithContext(ctx).
		Preload("ProductOption").
		Preload("ProductOption.Product").
		Preload("ProductOption.Product.Provider").
		Where("id = ?", c.ID).
		First(&created).Error
	if err != nil {
		return model.Cart{}, err
	}
	return created, nil
}

func (r *CartGormRepository) ExistsByUserAndOption(ctx context.Context, userID int64, optionID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Cart{}).
		Where("user_id = ? AND product_option_id = ?", userID, optionID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CartGormRepository) ListByUserID(ctx context.Context, userID int64, page int, limit int) ([]model.Cart, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Cart{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return []model.Cart{}, 0, err
	}

	offset := (page - 1) * limit

	var items []model.Cart
	err := r.db.WithContext(ctx).
		Preload("ProductOption").
		Preload("ProductOption.Product").
		Preload("ProductOption.Product.Provider").
		Where("user_id = ?", userID).
		Order("id desc").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return []model.Cart{}, 0, err
	}

	return items, total, nil
}

// 本人のcartだけを返す。見つからなかったidは黙って落ちる。
func (r *CartGormRepository) FindByIDsForUser(ctx context.Context, userID int64, ids []int64) ([]model.Cart, error) {
	var items []model.Cart
	err := r.db.WithContext(ctx).
		Preload("ProductOption").
		Preload("ProductOption.Product").
		Preload("ProductOption.Product.Provider").
		Where("user_id = ? AND id IN ?", userID, ids).
		Find(&items).Error
	if err != nil {
		return []model.Cart{}, err
	}
	return items, nil
}
