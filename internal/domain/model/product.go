package model

import "time"

type Product struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	ProviderID    int64           `gorm:"not null;index" json:"provider_id"`
	Provider      Provider        `gorm:"foreignKey:ProviderID" json:"provider"`
	Name          string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Price         int64           `gorm:"not null" json:"price"`
	ShippingPrice int64           `gorm:"not null;default:0" json:"shipping_price"`
	IsOnSale      bool            `gorm:"not null;default:true" json:"is_on_sale"`
	CanBundle     bool            `gorm:"not null;default:true" json:"can_bundle"`
	Options       []ProductOption `gorm:"foreignKey:ProductID" json:"options"`
	CreatedAt     time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// 在庫はオプション単位で持つ。チェックアウト時に競合するのはここ。
type ProductOption struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64   `gorm:"not null;index;uniqueIndex:uniq_option_per_product" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"-"`
	Stock     int64   `gorm:"not null;default:0" json:"stock"`
	Name      string  `gorm:"type:varchar(50);not null;uniqueIndex:uniq_option_per_product" json:"name"`
}
