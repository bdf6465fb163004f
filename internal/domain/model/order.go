package model

import "time"

type OrderProductStatus string

const (
	OrderProductStatusPending       OrderProductStatus = "PENDING"
	OrderProductStatusNotPaid       OrderProductStatus = "NOT_PAID"
	OrderProductStatusPaid          OrderProductStatus = "PAID"
	OrderProductStatusRefund        OrderProductStatus = "REFUND"
	OrderProductStatusPartialRefund OrderProductStatus = "PARTIAL_REFUND"
)

// チェックアウト1回につき1行。作成後は不変。
// is_paid を立てるのは決済側の仕事でこのコアでは触らない。
type Order struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID              int64     `gorm:"not null;index" json:"user_id"`
	User                User      `gorm:"foreignKey:UserID" json:"-"`
	OrderUID            string    `gorm:"column:order_uid;type:varchar(64);uniqueIndex;not null" json:"order_uid"`
	ShippingPrice       int64     `gorm:"not null" json:"shipping_price"`
	ShippingAddress     string    `gorm:"type:varchar(255);not null" json:"shipping_address"`
	ShippingRequestNote string    `gorm:"type:varchar(255)" json:"shipping_request_note"`
	IsPaid              bool      `gorm:"not null;default:false" json:"is_paid"`
	CreatedAt           time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// 注文時点の価格・数量のスナップショット。
// cartへの参照は弱い参照（cart行が消えたらNULL）。
type OrderProduct struct {
	ID              int64              `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID         int64              `gorm:"not null;index" json:"order_id"`
	UserID          int64              `gorm:"not null;index" json:"user_id"`
	CartID          *int64             `gorm:"index" json:"-"`
	ProductOptionID int64              `gorm:"not null" json:"product_option_id"`
	ProductOption   ProductOption      `gorm:"foreignKey:ProductOptionID" json:"product_option"`
	ProductPrice    int64              `gorm:"not null" json:"product_price"`
	OrderedQuantity int64              `gorm:"not null" json:"ordered_quantity"`
	OrderedPrice    int64              `gorm:"not null" json:"ordered_price"`
	Status          OrderProductStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt       time.Time          `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time          `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
