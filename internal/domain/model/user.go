package model

import "time"

type Role string

const (
	RoleCustomer    Role = "customer"
	RoleVendor      Role = "vendor"
	RoleAdmin       Role = "admin"
	RoleDeliveryBoy Role = "delivery_boy"
)

type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"type:varchar(255);not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Phone        string `gorm:"type:varchar(30);index" json:"phone"`
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`
	Role         Role   `gorm:"type:varchar(20);not null;default:'customer'" json:"role"`
	IsBanned     bool   `gorm:"not null;default:false" json:"is_banned"`

	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
