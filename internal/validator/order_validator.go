package validator

import "strings"

// チェックアウトの入力を検証。住所系は任意（スナップショットなので空でも通す）
func ValidateCheckout(userID int64, customerName string, customerPhone string) FieldErrors {
	errs := FieldErrors{}

	if userID <= 0 {
		errs.Add("user_id", "The user id field is required.")
	}
	if len(customerName) > 255 {
		errs.Add("customer_name", "The customer name may not be greater than 255 characters.")
	}
	if len(customerPhone) > 20 {
		errs.Add("customer_phone", "The customer phone may not be greater than 20 characters.")
	}

	return errs
}

// ステータス更新の入力を検証
func ValidateOrderStatus(status string) FieldErrors {
	errs := FieldErrors{}

	s := strings.TrimSpace(status)
	if s == "" {
		errs.Add("status", "The status field is required.")
	}
	if len(s) > 50 {
		errs.Add("status", "The status may not be greater than 50 characters.")
	}

	return errs
}
