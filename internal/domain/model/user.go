package model

import "time"

type User struct {
	ID           int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string     `gorm:"type:varchar(16);uniqueIndex;not null" json:"username"`
	Name         string     `gorm:"type:varchar(50);not null" json:"name"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber  string     `gorm:"type:varchar(11);uniqueIndex;not null" json:"phone_number"`
	PasswordHash string     `gorm:"column:password_hash;not null" json:"-"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	LastLoginAt  *time.Time `json:"-"`
	CreatedAt    time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
