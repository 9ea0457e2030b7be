package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type CartStatus string

const (
	CartStatusActive     CartStatus = "active"
	CartStatusCheckedOut CartStatus = "checked_out"
)

// 1ユーザーにつきactiveは1つ。
// checked_outになったカートは二度とactiveに戻らない。
type Cart struct {
	ID     int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID int64      `gorm:"not null;index" json:"user_id"`
	Status CartStatus `gorm:"type:varchar(20);not null;index" json:"status"`

	//集計はrecalculateだけが書く
	TotalItems int64           `gorm:"not null;default:0" json:"total_items"`
	Subtotal   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"subtotal"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
