package model

import "time"

type PayMethod string

const (
	PayMethodCard  PayMethod = "CARD"
	PayMethodKakao PayMethod = "KAKAO"
)

// pay_methodとして受け付ける値かどうか
func (m PayMethod) Valid() bool {
	switch m {
	case PayMethodCard, PayMethodKakao:
		return true
	}
	return false
}

// Orderと1:1。pay_price = shipping_price + Σ ordered_price。
type Payment struct {
	ID                    int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID               int64     `gorm:"not null;uniqueIndex" json:"order_id"`
	PayPrice              int64     `gorm:"not null" json:"pay_price"`
	PayMethod             PayMethod `gorm:"type:varchar(20);not null" json:"pay_method"`
	AdditionalInformation string    `gorm:"type:varchar(255)" json:"additional_information"`
	CreatedAt             time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
