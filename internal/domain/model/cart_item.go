package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// カート明細。
// unit_priceは追加（またはマージ）時点の価格スナップショット。
type CartItem struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    int64 `gorm:"not null;index" json:"cart_id"`
	ProductID int64 `gorm:"not null;index" json:"product_id"`
	ShopID    int64 `gorm:"index" json:"shop_id"`

	Qty       int64           `gorm:"not null" json:"qty"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	LineTotal decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"line_total"`

	Status string `gorm:"type:varchar(20);not null;default:'active'" json:"status"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
