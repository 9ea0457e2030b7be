package validator

import (
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// 台帳クエリの入力を検証
func ValidateLedgerQuery(startDate string, endDate string) FieldErrors {
	errs := FieldErrors{}

	if startDate != "" {
		if _, err := time.Parse(dateLayout, startDate); err != nil {
			errs.Add("start_date", "The start date does not match the format Y-m-d.")
		}
	}
	if endDate != "" {
		if _, err := time.Parse(dateLayout, endDate); err != nil {
			errs.Add("end_date", "The end date does not match the format Y-m-d.")
		}
	}

	return errs
}

// 精算の入力を検証
func ValidateSettle(vendorID int64, amount decimal.Decimal, orderItemIDs []int64) FieldErrors {
	errs := FieldErrors{}

	if vendorID <= 0 {
		errs.Add("vendor_id", "The vendor id field is required.")
	}
	if !amount.IsPositive() {
		errs.Add("amount", "The amount must be greater than 0.")
	}
	if len(orderItemIDs) == 0 {
		errs.Add("order_item_ids", "The order item ids field is required.")
	}
	for _, id := range orderItemIDs {
		if id <= 0 {
			errs.Add("order_item_ids", "The order item ids must contain valid ids.")
			break
		}
	}

	return errs
}
