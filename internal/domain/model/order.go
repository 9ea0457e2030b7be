package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// statusは自由文字列（completedだけ終端）。
const (
	OrderStatusPending            = "pending"
	OrderStatusAssignedDeliveryer = "assigned deliveryman"
	OrderStatusProcessing         = "processing"
	OrderStatusCompleted          = "completed"
	OrderStatusCancelled          = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// チェックアウト時点のカートのスナップショット。削除しない。
type Order struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int64  `gorm:"not null;index" json:"user_id"`
	OrderNumber string `gorm:"type:varchar(30);not null;uniqueIndex" json:"order_number"`

	Status        string        `gorm:"type:varchar(50);not null;index" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);not null;default:'unpaid'" json:"payment_status"`

	//顧客・配送先スナップショット
	CustomerName    string   `gorm:"type:varchar(255)" json:"customer_name"`
	CustomerPhone   string   `gorm:"type:varchar(50)" json:"customer_phone"`
	ShippingAddress string   `gorm:"type:varchar(1000)" json:"shipping_address"`
	Zone            string   `gorm:"type:varchar(100)" json:"zone"`
	District        string   `gorm:"type:varchar(100)" json:"district"`
	Area            string   `gorm:"type:varchar(100)" json:"area"`
	Lat             *float64 `json:"lat"`
	Lon             *float64 `json:"lon"`

	Subtotal    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"subtotal"`
	ShippingFee decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"shipping_fee"`
	Discount    decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"discount"`
	Total       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`

	Note string `gorm:"type:text" json:"note"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
