package model

import "time"

// 1ユーザーにつき同じオプションは1行だけ
type Cart struct {
	ID              int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          int64         `gorm:"not null;index;uniqueIndex:uniq_option_per_user" json:"user_id"`
	User            User          `gorm:"foreignKey:UserID" json:"-"`
	ProductOptionID int64         `gorm:"not null;uniqueIndex:uniq_option_per_user" json:"product_option_id"`
	ProductOption   ProductOption `gorm:"foreignKey:ProductOptionID" json:"product_option"`
	Quantity        int64         `gorm:"not null" json:"quantity"`
	CreatedAt       time.Time     `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time     `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
