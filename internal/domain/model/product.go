package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	ShopID int64 `gorm:"index" json:"shop_id"`

	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	SKU         string `gorm:"type:varchar(100)" json:"sku"`
	Description string `gorm:"type:text" json:"description"`

	Price decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`

	//0なら割引なし扱い
	SalePrice decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"sale_price"`

	IsActive  bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// カート追加時点の単価スナップショット。
// sale_priceが正ならsale_price、そうでなければprice。
func (p *Product) CurrentPrice() decimal.Decimal {
	if p.SalePrice.IsPositive() {
		return p.SalePrice
	}
	return p.Price
}
