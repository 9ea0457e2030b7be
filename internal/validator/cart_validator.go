package validator

// カート追加の入力を検証
func ValidateAddCartItem(userID int64, productID int64, qty int64) FieldErrors {
	errs := FieldErrors{}

	if userID <= 0 {
		errs.Add("user_id", "The user id field is required.")
	}
	if productID <= 0 {
		errs.Add("product_id", "The product id field is required.")
	}
	if qty < 1 {
		errs.Add("qty", "The qty must be at least 1.")
	}

	return errs
}

// 数量変更の入力を検証。qty=0は削除として許す
func ValidateUpdateCartItemQty(qty int64) FieldErrors {
	errs := FieldErrors{}

	if qty < 0 {
		errs.Add("qty", "The qty must be at least 0.")
	}

	return errs
}
