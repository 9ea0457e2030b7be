package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 注文明細。チェックアウト時点のCartItem＋商品情報のスナップショット。
// 後から商品が変更・削除されても明細は変わらない。
type OrderItem struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64 `gorm:"not null;index" json:"order_id"`
	ProductID int64 `gorm:"not null;index" json:"product_id"`
	ShopID    int64 `gorm:"index" json:"shop_id"`

	ProductName string `gorm:"type:varchar(255)" json:"product_name"`
	SKU         string `gorm:"type:varchar(100)" json:"sku"`

	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	Qty       int64           `gorm:"not null" json:"qty"`
	LineTotal decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"line_total"`

	Status string `gorm:"type:varchar(50);not null;default:'pending'" json:"status"`

	//ベンダー精算済みフラグ（settleだけが立てる）
	IsSettleWithSeller bool `gorm:"not null;default:false" json:"is_settle_with_seller"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
