package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TrxType string

const (
	TrxTypeCredit TrxType = "credit"
	TrxTypeDebit  TrxType = "debit"
)

const (
	TrxSourceCOD           = "cod"
	TrxSourceOnlinePayment = "online_payment"
	TrxSourceWallet        = "wallet"
	TrxSourceSettlement    = "settlement"
)

// 金銭台帳。追記のみで、更新・削除はしない。
type Transaction struct {
	ID     int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Amount decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`

	//精算ならベンダーID等の参照
	RefID string `gorm:"type:varchar(255)" json:"ref_id"`
	TrxID string `gorm:"type:varchar(255)" json:"trx_id"`

	TrxType TrxType `gorm:"type:varchar(10);not null;index" json:"trx_type"`
	Status  string  `gorm:"type:varchar(20);not null;index" json:"status"`
	Source  string  `gorm:"type:varchar(100);not null" json:"source"`

	OrderID *int64 `gorm:"index" json:"order_id"`
	Type    string `gorm:"type:varchar(100)" json:"type"`
	Note    string `gorm:"type:text" json:"note"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"created_at"`
}
